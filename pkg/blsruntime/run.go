package blsruntime

import (
	"context"
	"io"
	"os/exec"

	"go.opentelemetry.io/otel/trace"

	"github.com/blessnetwork/blessnet/blsapi"
	"github.com/blessnetwork/blessnet/pkg/tracing"
)

// Invocation describes one execution of a module by the runtime.
type Invocation struct {
	Binary   string
	Artifact string
	Dir      string
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
}

// Run executes the artifact with the runtime and waits for it to exit.
//
// Errors:
//
//    - blessnet-error-runtime-unusable -- the runtime binary cannot be executed
//    - blessnet-error-runtime-execution -- the runtime exited with failure
func Run(ctx context.Context, inv Invocation) (err error) {
	ctx, span := tracing.Start(ctx, "runtime exec", trace.WithAttributes(tracing.AttrFullExecNameRuntime))
	defer func() { tracing.EndWithStatus(span, err) }()

	if err := Check(inv.Binary); err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, inv.Binary, inv.Artifact)
	cmd.Dir = inv.Dir
	cmd.Stdin = inv.Stdin
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr
	if err := cmd.Run(); err != nil {
		return blsapi.ErrorRuntimeExecution(inv.Binary, err)
	}
	return nil
}
