package optionscli

import (
	"os"

	"github.com/urfave/cli/v2"

	appbase "github.com/blessnetwork/blessnet/app/base"
	"github.com/blessnetwork/blessnet/app/base/util"
	"github.com/blessnetwork/blessnet/pkg/config"
	"github.com/blessnetwork/blessnet/pkg/logging"
)

var walletCmdDef = &cli.Command{
	Name:   "wallet",
	Usage:  "Show the local wallet",
	Action: util.StandardMiddleware(cmdWalletShow),
	Subcommands: []*cli.Command{
		{
			Name:   "show",
			Usage:  "Print the wallet file location and whether it exists",
			Action: util.StandardMiddleware(cmdWalletShow),
		},
	},
}

func cmdWalletShow(c *cli.Context) error {
	log := logging.Ctx(c.Context)
	state, err := appbase.State(c)
	if err != nil {
		return err
	}
	path := config.WalletPath(state)
	_, statErr := os.Stat(path)
	exists := statErr == nil
	if log.JSON() {
		return log.Result(struct {
			Path   string `json:"path"`
			Exists bool   `json:"exists"`
		}{path, exists})
	}
	log.Out("Wallet: %s", path)
	if exists {
		log.Out("Status: present")
	} else {
		log.Out("Status: not created")
	}
	return nil
}
