package optionscli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/serum-errors/go-serum"
	"github.com/urfave/cli/v2"

	appbase "github.com/blessnetwork/blessnet/app/base"
	"github.com/blessnetwork/blessnet/app/base/util"
	"github.com/blessnetwork/blessnet/blsapi"
	"github.com/blessnetwork/blessnet/pkg/config"
	"github.com/blessnetwork/blessnet/pkg/logging"
)

var accountCmdDef = &cli.Command{
	Name:  "account",
	Usage: "Log in to or out of bless.network",
	Subcommands: []*cli.Command{
		{
			Name:   "login",
			Usage:  "Store an auth token",
			Action: util.StandardMiddleware(cmdAccountLogin),
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "token",
					Usage: "Auth token to store; asked for when omitted",
				},
			},
		},
		{
			Name:   "logout",
			Usage:  "Remove the stored auth token",
			Action: util.StandardMiddleware(cmdAccountLogout),
		},
		{
			Name:   "status",
			Usage:  "Show whether an auth token is stored",
			Action: util.StandardMiddleware(cmdAccountStatus),
		},
	},
}

func cmdAccountLogin(c *cli.Context) error {
	log := logging.Ctx(c.Context)
	state, err := appbase.State(c)
	if err != nil {
		return err
	}
	token := c.String("token")
	if token == "" {
		token = appbase.Prompter(c).Ask("Auth token: ")
	}
	if token == "" {
		return blsapi.ErrorInvalid("no auth token given")
	}
	path := config.AuthTokenPath(state)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return blsapi.ErrorIo("unable to create installation directory", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(token+"\n"), 0600); err != nil {
		return blsapi.ErrorIo("unable to store auth token", path, err)
	}
	log.Out("You are now %s to %s", color.GreenString("logged in"), color.YellowString("bless.network"))
	return nil
}

func cmdAccountLogout(c *cli.Context) error {
	log := logging.Ctx(c.Context)
	state, err := appbase.State(c)
	if err != nil {
		return err
	}
	path := config.AuthTokenPath(state)
	err = os.Remove(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Out("You are already logged out")
		return nil
	case err != nil:
		return blsapi.ErrorIo("unable to remove auth token", path, err)
	}
	log.Out("You are now %s of %s", color.RedString("logged out"), color.YellowString("bless.network"))
	return nil
}

func cmdAccountStatus(c *cli.Context) error {
	log := logging.Ctx(c.Context)
	state, err := appbase.State(c)
	if err != nil {
		return err
	}
	_, err = util.ReadAuthToken(state)
	loggedIn := err == nil
	if err != nil && serum.Code(err) != blsapi.CodeNotLoggedIn {
		return err
	}
	if log.JSON() {
		return log.Result(struct {
			LoggedIn bool `json:"loggedIn"`
		}{loggedIn})
	}
	if loggedIn {
		log.Out("you are currently %s to %s", color.GreenString("logged in"), color.YellowString("bless.network"))
	} else {
		log.Out("you are currently %s to %s", color.RedString("logged out"), color.YellowString("bless.network"))
	}
	return nil
}
