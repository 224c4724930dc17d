package optionscli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	appbase "github.com/blessnetwork/blessnet/app/base"
	"github.com/blessnetwork/blessnet/app/base/util"
	"github.com/blessnetwork/blessnet/blsapi"
	"github.com/blessnetwork/blessnet/pkg/logging"
	"github.com/blessnetwork/blessnet/pkg/tracing"
)

var buildCmdDef = &cli.Command{
	Name:      "build",
	Usage:     "Run the project's build command and check that it produced the artifact",
	ArgsUsage: "[project-dir]",
	Action:    util.StandardMiddleware(cmdBuild),
}

func cmdBuild(c *cli.Context) (err error) {
	log := logging.Ctx(c.Context)
	state, err := appbase.State(c)
	if err != nil {
		return err
	}
	dir := util.ProjectDir(c, state)
	p, err := util.LoadProject(dir)
	if err != nil {
		return err
	}

	command := p.BuildCommand()
	ctx, span := tracing.Start(c.Context, "build", trace.WithAttributes(
		tracing.AttrFullExecNameBuild,
		attribute.String(tracing.AttrKeyBlessnetProjectName, p.Name),
	))
	defer func() { tracing.EndWithStatus(span, err) }()

	log.Info("build", "running %q in %s", command, dir)
	if err := util.RunShell(ctx, dir, command, log.InfoWriter("build"), log.InfoWriter("build")); err != nil {
		return err
	}

	artifact := filepath.Join(dir, p.ArtifactPath())
	if _, err := os.Stat(artifact); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return blsapi.ErrorIo("build finished without producing the artifact", artifact, err)
		}
		return blsapi.ErrorIo("unable to stat artifact", artifact, err)
	}
	log.Out("Build complete: %s", artifact)
	return nil
}
