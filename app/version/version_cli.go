package versioncli

import (
	"github.com/urfave/cli/v2"

	appbase "github.com/blessnetwork/blessnet/app/base"
)

func init() {
	appbase.App.Commands = append(appbase.App.Commands, versionCmdDef)
}

var versionCmdDef = &cli.Command{
	Name:  "version",
	Usage: "Show the current version",
	Action: func(c *cli.Context) error {
		appbase.PrintVersion(c.App.Writer, c.App)
		return nil
	},
}
