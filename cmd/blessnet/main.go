package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/blessnetwork/blessnet/app"
	appbase "github.com/blessnetwork/blessnet/app/base"
	"github.com/blessnetwork/blessnet/pkg/blsruntime"
	"github.com/blessnetwork/blessnet/pkg/bootstrap"
	"github.com/blessnetwork/blessnet/pkg/config"
	"github.com/blessnetwork/blessnet/pkg/prompt"
)

// launcher carries the process surroundings of one invocation.
type launcher struct {
	state     config.State
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	installer blsruntime.Installer
}

// releaseInstaller resolves the runtime release only when an install is actually confirmed.
func releaseInstaller(state config.State) blsruntime.Installer {
	return blsruntime.InstallerFunc(func(ctx context.Context) error {
		release, err := blsruntime.NewRelease(state)
		if err != nil {
			return err
		}
		return release.Install(ctx)
	})
}

// run walks the pre-dispatch sequence and then, unless it ended the invocation,
// hands over to the command router. It returns the process exit code.
func (l launcher) run(ctx context.Context, args []string) int {
	inv := bootstrap.Probe(l.state, args)
	prompter := prompt.NewLine(l.stdin, l.stdout)
	orchestrator := &bootstrap.Orchestrator{
		Prompter:  prompter,
		Installer: l.installer,
		Out:       l.stdout,
		Err:       l.stderr,
	}
	decision, err := orchestrator.Run(ctx, inv)
	if err != nil {
		fmt.Fprintf(l.stderr, "error: %s\n", err)
		return 1
	}

	if decision.Action == bootstrap.ActionExit {
		return decision.Code
	}
	// A version token anywhere wins over whatever command it rides along with.
	if bootstrap.Classify(args).Version {
		appbase.PrintVersion(l.stdout, app.App)
		return 0
	}
	if decision.Action == bootstrap.ActionInit {
		rewritten := append([]string{args[0]}, globalFlags(app.App.Flags, args)...)
		rewritten = append(rewritten, "init")
		args = append(rewritten, decision.Args...)
	}

	a := app.App
	a.Reader = l.stdin
	a.Writer = l.stdout
	a.ErrWriter = l.stderr
	a.Metadata = map[string]interface{}{
		appbase.MetadataState:    l.state,
		appbase.MetadataLoggedIn: inv.LoggedIn,
		appbase.MetadataPrompter: prompter,
	}
	if err := a.RunContext(ctx, args); err != nil {
		return 1
	}
	return 0
}

// globalFlags returns the leading flag tokens of args, with the values of flags
// that take one, so they survive rewriting the invocation to init.
func globalFlags(flags []cli.Flag, args []string) []string {
	takesValue := map[string]bool{}
	for _, f := range flags {
		df, ok := f.(cli.DocGenerationFlag)
		for _, name := range f.Names() {
			takesValue[name] = ok && df.TakesValue()
		}
	}
	var out []string
	for i := 1; i < len(args); i++ {
		tok := args[i]
		if tok == "-" || tok == "--" || !strings.HasPrefix(tok, "-") {
			break
		}
		out = append(out, tok)
		name := strings.TrimLeft(tok, "-")
		if !strings.Contains(name, "=") && takesValue[name] && i+1 < len(args) {
			i++
			out = append(out, args[i])
		}
	}
	return out
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	state, err := config.NewState()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
	l := launcher{
		state:     state,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		installer: releaseInstaller(state),
	}
	code := l.run(ctx, os.Args)
	stop()
	os.Exit(code)
}
