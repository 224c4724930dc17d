package util

import (
	"context"
	"io"
	"strings"

	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/blessnetwork/blessnet/blsapi"
)

// RunShell runs command as a POSIX shell script in dir.
// The script is parsed completely before anything runs.
//
// Errors:
//
//   - blessnet-error-invalid -- the command does not parse
//   - blessnet-error-internal -- the interpreter could not be set up
//   - blessnet-error-runtime-execution -- the script exited non-zero
func RunShell(ctx context.Context, dir, command string, stdout, stderr io.Writer) error {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return blsapi.ErrorInvalid("command does not parse: "+err.Error(), [2]string{"command", command})
	}
	r, err := interp.New(
		interp.StdIO(nil, stdout, stderr),
		interp.Dir(dir),
	)
	if err != nil {
		return blsapi.ErrorInternal("failed to initialize shell interpreter", err)
	}
	if err := r.Run(ctx, file); err != nil {
		return blsapi.ErrorRuntimeExecution(command, err)
	}
	return nil
}
