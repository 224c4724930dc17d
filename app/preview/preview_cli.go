package previewcli

import (
	"path/filepath"

	"github.com/urfave/cli/v2"

	appbase "github.com/blessnetwork/blessnet/app/base"
	"github.com/blessnetwork/blessnet/app/base/util"
	"github.com/blessnetwork/blessnet/pkg/blsruntime"
	"github.com/blessnetwork/blessnet/pkg/config"
	"github.com/blessnetwork/blessnet/pkg/logging"
)

func init() {
	appbase.App.Commands = append(appbase.App.Commands, previewCmdDef)
}

var previewCmdDef = &cli.Command{
	Name:      "preview",
	Usage:     "Run the built project with the local runtime",
	ArgsUsage: "[project-dir]",
	Action:    util.StandardMiddleware(cmdPreview),
	Subcommands: []*cli.Command{
		serveCmdDef,
	},
}

// invocationFor resolves the project of c and the runtime to run it with.
func invocationFor(c *cli.Context) (blsruntime.Invocation, string, error) {
	state, err := appbase.State(c)
	if err != nil {
		return blsruntime.Invocation{}, "", err
	}
	dir := util.ProjectDir(c, state)
	p, err := util.LoadProject(dir)
	if err != nil {
		return blsruntime.Invocation{}, "", err
	}
	return blsruntime.Invocation{
		Binary:   config.RuntimePath(state),
		Artifact: filepath.Join(dir, p.ArtifactPath()),
		Dir:      dir,
	}, p.Name, nil
}

func cmdPreview(c *cli.Context) error {
	log := logging.Ctx(c.Context)
	inv, name, err := invocationFor(c)
	if err != nil {
		return err
	}
	log.Info("preview", "running %s", name)
	inv.Stdin = c.App.Reader
	inv.Stdout = c.App.Writer
	inv.Stderr = c.App.ErrWriter
	return blsruntime.Run(c.Context, inv)
}
