package managecli

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-version"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	appbase "github.com/blessnetwork/blessnet/app/base"
	"github.com/blessnetwork/blessnet/app/base/util"
	"github.com/blessnetwork/blessnet/blsapi"
	"github.com/blessnetwork/blessnet/pkg/config"
	"github.com/blessnetwork/blessnet/pkg/descriptor"
	"github.com/blessnetwork/blessnet/pkg/logging"
)

func init() {
	appbase.App.Commands = append(appbase.App.Commands, manageCmdDef)
}

var manageCmdDef = &cli.Command{
	Name:   "manage",
	Usage:  "Show or change the project settings",
	Action: util.StandardMiddleware(cmdManageShow),
	Subcommands: []*cli.Command{
		{
			Name:   "show",
			Usage:  "Print the project settings",
			Action: util.StandardMiddleware(cmdManageShow),
		},
		{
			Name:      "set",
			Usage:     "Change one project setting",
			ArgsUsage: "<" + strings.Join(Fields, "|") + "> <value>",
			Action:    util.StandardMiddleware(cmdManageSet),
		},
	},
}

// Fields are the settings `manage set` accepts.
var Fields = []string{"name", "version", "type", "build.command", "build.output"}

// Set assigns value to the named field of p.
//
// Errors:
//
//   - blessnet-error-invalid -- unknown field, or a value the field can't hold
func Set(p *descriptor.Project, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return blsapi.ErrorInvalid(fmt.Sprintf("%s cannot be empty", field), [2]string{"field", field})
	}
	switch field {
	case "name":
		p.Name = value
	case "version":
		v, err := version.NewSemver(value)
		if err != nil {
			return blsapi.ErrorInvalid(fmt.Sprintf("%q is not a semantic version", value),
				[2]string{"field", field}, [2]string{"value", value})
		}
		p.Version = v.Original()
	case "type":
		p.Type = value
	case "build.command", "build.output":
		if p.Build == nil {
			p.Build = &descriptor.Build{}
		}
		if field == "build.command" {
			p.Build.Command = value
		} else {
			p.Build.Output = value
		}
	default:
		return blsapi.ErrorInvalid(fmt.Sprintf("unknown setting %q; expected one of %s", field, strings.Join(Fields, ", ")),
			[2]string{"field", field})
	}
	return nil
}

func cmdManageShow(c *cli.Context) error {
	log := logging.Ctx(c.Context)
	state, err := appbase.State(c)
	if err != nil {
		return err
	}
	p, err := util.LoadProject(state.WorkingDirectory)
	if err != nil {
		return err
	}
	if log.JSON() {
		return log.Result(p)
	}
	table := tablewriter.NewWriter(c.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Setting", "Value"})
	table.AppendBulk([][]string{
		{"name", p.Name},
		{"version", p.Version},
		{"type", p.Type},
		{"build.command", p.BuildCommand()},
		{"build.output", p.ArtifactPath()},
		{"deployments", fmt.Sprint(len(p.Deployments))},
	})
	table.Render()
	log.Out("Change a setting with: blessnet manage set <%s> <value>", strings.Join(Fields, "|"))
	return nil
}

func cmdManageSet(c *cli.Context) error {
	log := logging.Ctx(c.Context)
	if c.NArg() != 2 {
		return blsapi.ErrorInvalid("manage set takes a setting name and a value")
	}
	state, err := appbase.State(c)
	if err != nil {
		return err
	}
	p, err := util.LoadProject(state.WorkingDirectory)
	if err != nil {
		return err
	}
	field, value := c.Args().Get(0), c.Args().Get(1)
	if err := Set(&p, field, value); err != nil {
		return err
	}
	if err := descriptor.Save(state.WorkingDirectory, config.DescriptorFilename, p); err != nil {
		return err
	}
	log.Out("Updated %s to %q", field, value)
	return nil
}
