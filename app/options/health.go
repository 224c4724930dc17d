package optionscli

import (
	"github.com/urfave/cli/v2"

	appbase "github.com/blessnetwork/blessnet/app/base"
	"github.com/blessnetwork/blessnet/app/base/util"
	"github.com/blessnetwork/blessnet/blsapi"
	"github.com/blessnetwork/blessnet/pkg/healthcheck"
	"github.com/blessnetwork/blessnet/pkg/logging"
)

var healthCmdDef = &cli.Command{
	Name:   "health",
	Usage:  "Check the local installation for problems",
	Action: util.StandardMiddleware(cmdHealth),
}

func cmdHealth(c *cli.Context) error {
	log := logging.Ctx(c.Context)
	state, err := appbase.State(c)
	if err != nil {
		return err
	}
	hc := healthcheck.Default(state)
	if err := hc.Run(c.Context); err != nil {
		return err
	}
	log.Debug("health", "runners=%d, results=%d", len(hc.Runners), len(hc.Results))
	if err := hc.Fprint(c.App.Writer); err != nil {
		return err
	}
	if hc.Failed() {
		return blsapi.ErrorInvalid("health check found problems")
	}
	return nil
}
