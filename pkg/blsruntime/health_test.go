//go:build !windows

package blsruntime

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"

	"github.com/blessnetwork/blessnet/blsapi"
)

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	qt.Assert(t, serum.Code(Check(filepath.Join(dir, "nope"))), qt.Equals, CodeRuntimeUnusable)
	qt.Assert(t, serum.Code(Check(dir)), qt.Equals, CodeRuntimeUnusable)

	plain := filepath.Join(dir, "plain")
	qt.Assert(t, os.WriteFile(plain, []byte("x"), 0644), qt.IsNil)
	qt.Assert(t, serum.Code(Check(plain)), qt.Equals, CodeRuntimeUnusable)

	exe := filepath.Join(dir, "exe")
	qt.Assert(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0755), qt.IsNil)
	qt.Assert(t, Check(exe), qt.IsNil)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	fake := filepath.Join(dir, "bls-runtime")
	script := "#!/bin/sh\necho \"running $1\"\ncat\n"
	qt.Assert(t, os.WriteFile(fake, []byte(script), 0755), qt.IsNil)

	var out bytes.Buffer
	err := Run(context.Background(), Invocation{
		Binary:   fake,
		Artifact: "build/app.wasm",
		Dir:      dir,
		Stdin:    strings.NewReader("from stdin\n"),
		Stdout:   &out,
	})
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, out.String(), qt.Equals, "running build/app.wasm\nfrom stdin\n")
}

func TestRunFailure(t *testing.T) {
	dir := t.TempDir()
	fake := filepath.Join(dir, "bls-runtime")
	qt.Assert(t, os.WriteFile(fake, []byte("#!/bin/sh\nexit 3\n"), 0755), qt.IsNil)
	err := Run(context.Background(), Invocation{Binary: fake, Artifact: "x.wasm", Dir: dir})
	qt.Assert(t, serum.Code(err), qt.Equals, blsapi.CodeRuntimeExecution)
}
