package bootstrap

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"github.com/blessnetwork/blessnet/pkg/blsruntime"
	"github.com/blessnetwork/blessnet/pkg/descriptor"
	"github.com/blessnetwork/blessnet/pkg/prompt"
	"github.com/blessnetwork/blessnet/pkg/tracing"
)

func runtimeGateMessage() string {
	return color.YellowString("BLESS environment not found. Do you want to install it? (yes/no): ")
}

func descriptorGateMessage() string {
	return fmt.Sprintf("Run %s for more information.\n\n%s\n%s",
		color.BlueString("blessnet help"),
		color.RedString("No bls.toml file detected in the current directory."),
		color.YellowString("Initialize project? (yes/no): "),
	)
}

// Orchestrator runs the pre-dispatch sequence. Every collaborator is injected.
type Orchestrator struct {
	Prompter  prompt.Prompter
	Installer blsruntime.Installer
	// Load reads the descriptor; descriptor.Load when nil.
	Load func(dir, filename string) (descriptor.Project, error)
	Out  io.Writer
	Err  io.Writer
	// Location for rendering timestamps; time.Local when nil.
	Location *time.Location
}

// Run walks the sequence for inv and returns where the invocation ends up.
// The only error returned is a descriptor that fails to load on the status path.
func (o *Orchestrator) Run(ctx context.Context, inv Invocation) (_ Decision, err error) {
	ctx, span := tracing.Start(ctx, "bootstrap")
	defer func() { tracing.EndWithStatus(span, err) }()

	intent := Classify(inv.Args)

	if intent.needsRuntime() && !inv.RuntimePresent {
		return o.acquireRuntime(ctx), nil
	}

	if intent.Init {
		return Init(append(inv.initFlags(), inv.lastToken())...), nil
	}

	if inv.DescriptorPresent {
		if intent.reportsStatus() {
			return o.reportStatus(inv)
		}
		return Route(), nil
	}

	if intent.offersInit() {
		if !o.Prompter.Confirm(descriptorGateMessage()) {
			return Exit(1), nil
		}
		return Init(), nil
	}
	return Route(), nil
}

// acquireRuntime asks before installing and always ends the invocation:
// after an install the user re-runs the command.
func (o *Orchestrator) acquireRuntime(ctx context.Context) Decision {
	if !o.Prompter.Confirm(runtimeGateMessage()) {
		return Exit(1)
	}
	if err := o.Installer.Install(ctx); err != nil {
		fmt.Fprintf(o.Err, "Failed to download bls-runtime: %s\n", err)
		return Exit(1)
	}
	fmt.Fprintln(o.Out, "BLESS environment installed successfully.")
	fmt.Fprintln(o.Out, "You can now use the `blessnet` command.")
	return Exit(0)
}

func (o *Orchestrator) reportStatus(inv Invocation) (Decision, error) {
	load := o.Load
	if load == nil {
		load = descriptor.Load
	}
	p, err := load(filepath.Dir(inv.DescriptorPath), filepath.Base(inv.DescriptorPath))
	if err != nil {
		return Decision{}, err
	}
	Reporter{Out: o.Out, Location: o.Location}.Report(p, inv.LoggedIn)
	return Exit(0), nil
}
