package optionscli

import (
	"github.com/urfave/cli/v2"

	appbase "github.com/blessnetwork/blessnet/app/base"
)

func init() {
	appbase.App.Commands = append(appbase.App.Commands, optionsCmdDef)
}

// These subcommands work without the runtime installed and without a project descriptor.
var optionsCmdDef = &cli.Command{
	Name:  "options",
	Usage: "Manage your account and wallet, build projects, check the installation",
	Subcommands: []*cli.Command{
		walletCmdDef,
		accountCmdDef,
		buildCmdDef,
		healthCmdDef,
	},
}
