package deploycli

import (
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	appbase "github.com/blessnetwork/blessnet/app/base"
	"github.com/blessnetwork/blessnet/app/base/util"
	"github.com/blessnetwork/blessnet/pkg/config"
	"github.com/blessnetwork/blessnet/pkg/descriptor"
	"github.com/blessnetwork/blessnet/pkg/logging"
	"github.com/blessnetwork/blessnet/pkg/publish"
	"github.com/blessnetwork/blessnet/pkg/tracing"
)

func init() {
	appbase.App.Commands = append(appbase.App.Commands, deployCmdDef)
}

var deployCmdDef = &cli.Command{
	Name:      "deploy",
	Usage:     "Publish the built project to the BLESS network",
	ArgsUsage: "[project-dir]",
	Action:    util.StandardMiddleware(cmdDeploy),
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "Web2 host to record with the deployment (defaults to $" + config.EnvGatewayHost + ")",
		},
	},
}

// Replaced in tests.
var (
	newPublisher = publish.FromConfig
	now          = time.Now
)

type deployResult struct {
	Name    string `json:"name"`
	Cid     string `json:"cid"`
	Created string `json:"created"`
	Host    string `json:"host,omitempty"`
}

func cmdDeploy(c *cli.Context) (err error) {
	log := logging.Ctx(c.Context)
	state, err := appbase.State(c)
	if err != nil {
		return err
	}
	if _, err := util.ReadAuthToken(state); err != nil {
		return err
	}
	dir := util.ProjectDir(c, state)
	p, err := util.LoadProject(dir)
	if err != nil {
		return err
	}

	ctx, span := tracing.Start(c.Context, "deploy", trace.WithAttributes(
		attribute.String(tracing.AttrKeyBlessnetProjectName, p.Name),
	))
	defer func() { tracing.EndWithStatus(span, err) }()

	pub, err := newPublisher(ctx, state)
	if err != nil {
		return err
	}
	artifact := filepath.Join(dir, p.ArtifactPath())
	log.Info("deploy", "publishing %s", artifact)
	id, err := publish.Push(ctx, pub, artifact)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String(tracing.AttrKeyBlessnetCid, id.String()))

	host := c.String("host")
	if host == "" {
		host = config.GatewayHost(state)
	}
	d := descriptor.Deployment{
		Cid:     id.String(),
		Created: descriptor.Timestamp{Time: now().UTC()},
		Host:    host,
	}
	p.AddDeployment(d)
	if err := descriptor.Save(dir, config.DescriptorFilename, p); err != nil {
		return err
	}

	if log.JSON() {
		return log.Result(deployResult{
			Name:    p.Name,
			Cid:     d.Cid,
			Created: d.Created.UTC().Format(time.RFC3339),
			Host:    d.Host,
		})
	}
	log.Out("%s %s", color.GreenString("Deployed"), p.Name)
	log.Out("%s %s", color.YellowString("CID:"), d.Cid)
	if d.Host != "" {
		log.Out("%s https://%s", color.YellowString("Web2 Host:"), d.Host)
	}
	return nil
}
