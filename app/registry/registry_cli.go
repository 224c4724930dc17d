package registrycli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	appbase "github.com/blessnetwork/blessnet/app/base"
	"github.com/blessnetwork/blessnet/app/base/util"
	"github.com/blessnetwork/blessnet/blsapi"
	"github.com/blessnetwork/blessnet/pkg/descriptor"
	"github.com/blessnetwork/blessnet/pkg/logging"
	"github.com/blessnetwork/blessnet/pkg/publish"
)

func init() {
	appbase.App.Commands = append(appbase.App.Commands, registryCmdDef)
}

var registryCmdDef = &cli.Command{
	Name:   "registry",
	Usage:  "Inspect the deployments recorded for this project",
	Action: util.StandardMiddleware(cmdRegistryList),
	Subcommands: []*cli.Command{
		{
			Name:      "list",
			Usage:     "List recorded deployments, newest first",
			ArgsUsage: "[project-dir]",
			Action:    util.StandardMiddleware(cmdRegistryList),
		},
		{
			Name:      "show",
			Usage:     "Describe a content identifier and where it was deployed",
			ArgsUsage: "<cid>",
			Action:    util.StandardMiddleware(cmdRegistryShow),
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "remote",
					Usage: "Also ask the publishing gateway whether it holds the content",
				},
			},
		},
	},
}

var newPublisher = publish.FromConfig

func cmdRegistryList(c *cli.Context) error {
	log := logging.Ctx(c.Context)
	state, err := appbase.State(c)
	if err != nil {
		return err
	}
	p, err := util.LoadProject(util.ProjectDir(c, state))
	if err != nil {
		return err
	}
	if log.JSON() {
		return log.Result(p.Deployments)
	}
	if len(p.Deployments) == 0 {
		log.Out("%s has no deployments yet; run %s", p.Name, color.GreenString("blessnet deploy"))
		return nil
	}
	table := tablewriter.NewWriter(c.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"CID", "Created", "Host"})
	for _, d := range p.Deployments {
		table.Append([]string{d.Cid, d.Created.Display(nil), d.Host})
	}
	table.Render()
	return nil
}

type cidInfo struct {
	Cid      string                 `json:"cid"`
	Version  uint64                 `json:"version"`
	Codec    string                 `json:"codec"`
	Hash     string                 `json:"hash"`
	Deployed *descriptor.Deployment `json:"deployed,omitempty"`
	Remote   *bool                  `json:"remote,omitempty"`
}

// codecName is the multicodec table name of code, or its hex value when unknown.
func codecName(code uint64) string {
	name := multicodec.Code(code).String()
	if strings.HasPrefix(name, "Code(") {
		return fmt.Sprintf("0x%x", code)
	}
	return name
}

// Describe decodes id and looks it up among p's deployments.
func Describe(id cid.Cid, p *descriptor.Project) (cidInfo, error) {
	info := cidInfo{
		Cid:     id.String(),
		Version: id.Version(),
		Codec:   codecName(id.Type()),
	}
	decoded, err := multihash.Decode(id.Hash())
	if err != nil {
		return cidInfo{}, blsapi.ErrorInvalid("undecodable multihash: "+err.Error(), [2]string{"cid", id.String()})
	}
	info.Hash = decoded.Name
	if p != nil {
		for i := range p.Deployments {
			if recorded, err := cid.Decode(p.Deployments[i].Cid); err == nil && recorded.Equals(id) {
				d := p.Deployments[i]
				info.Deployed = &d
				break
			}
		}
	}
	return info, nil
}

func cmdRegistryShow(c *cli.Context) error {
	log := logging.Ctx(c.Context)
	if c.NArg() != 1 {
		return blsapi.ErrorInvalid("registry show takes exactly one content identifier")
	}
	id, err := publish.ParseCID(c.Args().First())
	if err != nil {
		return err
	}
	state, err := appbase.State(c)
	if err != nil {
		return err
	}
	var project *descriptor.Project
	if p, err := util.LoadProject(state.WorkingDirectory); err == nil {
		project = &p
	} else {
		log.Debug("registry", "no project to match against: %s", err)
	}
	info, err := Describe(id, project)
	if err != nil {
		return err
	}
	if c.Bool("remote") {
		pub, err := newPublisher(c.Context, state)
		if err != nil {
			return err
		}
		has, err := pub.Has(c.Context, id)
		if err != nil {
			return err
		}
		info.Remote = &has
	}

	if log.JSON() {
		return log.Result(info)
	}
	log.Out("%s %s", color.YellowString("CID:"), info.Cid)
	log.Out("%s v%d, %s, %s", color.YellowString("Format:"), info.Version, info.Codec, info.Hash)
	if info.Deployed != nil {
		log.Out("%s %s", color.YellowString("Deployed:"), info.Deployed.Created.Display(nil))
		if info.Deployed.Host != "" {
			log.Out("%s https://%s", color.YellowString("Web2 Host:"), info.Deployed.Host)
		}
	} else {
		log.Out("%s not recorded in this project", color.YellowString("Deployed:"))
	}
	if info.Remote != nil {
		if *info.Remote {
			log.Out("%s %s", color.YellowString("Gateway:"), color.GreenString("available"))
		} else {
			log.Out("%s %s", color.YellowString("Gateway:"), color.RedString("missing"))
		}
	}
	return nil
}
