//go:build !windows

package blsruntime

import (
	"github.com/serum-errors/go-serum"
	"golang.org/x/sys/unix"
)

const windows = false

func executionAccess(path string) error {
	err := unix.Access(path, unix.X_OK)
	if err != nil {
		return serum.Error(CodeRuntimeUnusable, serum.WithCause(err),
			serum.WithMessageTemplate("blessnet does not have execution access to file {{path|q}}"),
			serum.WithDetail("path", path),
		)
	}
	return nil
}
