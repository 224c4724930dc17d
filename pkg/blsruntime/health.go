package blsruntime

import (
	"io/fs"
	"os"

	"github.com/serum-errors/go-serum"
)

const CodeRuntimeUnusable = "blessnet-error-runtime-unusable"

func isExecutable(m fs.FileMode) bool {
	return m&0111 != 0
}

// Check verifies that path is a regular file this process may execute.
//
// Errors:
//
//    - blessnet-error-runtime-unusable -- missing, not a regular file, or not executable
func Check(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return serum.Error(CodeRuntimeUnusable, serum.WithCause(err),
			serum.WithMessageTemplate("could not find bls-runtime at path {{path|q}}; run `blessnet` to install it"),
			serum.WithDetail("path", path),
		)
	}
	mode := fi.Mode()
	if !mode.IsRegular() {
		return serum.Error(CodeRuntimeUnusable,
			serum.WithMessageTemplate("file {{path|q}} is not a regular file"),
			serum.WithDetail("path", path),
		)
	}
	if !isExecutable(mode) && !windows {
		return serum.Error(CodeRuntimeUnusable,
			serum.WithMessageTemplate("file {{path|q}} is not executable"),
			serum.WithDetail("path", path),
		)
	}
	return executionAccess(path)
}

// Present reports whether anything exists at path. Used by the environment probe,
// which only cares about existence.
func Present(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

