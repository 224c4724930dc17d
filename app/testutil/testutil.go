/*
Package testutil runs the blessnet app in-process against a throwaway
installation directory and working directory.

Only commands whose packages are linked into the test binary are available,
so command packages test themselves through here.
*/
package testutil

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"

	appbase "github.com/blessnetwork/blessnet/app/base"
	"github.com/blessnetwork/blessnet/pkg/config"
	"github.com/blessnetwork/blessnet/pkg/prompt"
)

// Harness holds the environment one or more invocations run in.
type Harness struct {
	t *testing.T
	// Home is used as BLESSNET_HOME.
	Home string
	// Dir is the working directory.
	Dir string
	Env map[string]string
	// Answers are handed out to prompts in order.
	Answers []string
	// Asked collects every prompt shown, across runs.
	Asked []string
}

type Result struct {
	Stdout string
	Stderr string
	Code   int
	Err    error
}

func New(t *testing.T) *Harness {
	color.NoColor = true
	home := t.TempDir()
	return &Harness{
		t:    t,
		Home: home,
		Dir:  t.TempDir(),
		Env:  map[string]string{config.EnvBlessnetHome: home},
	}
}

func (h *Harness) State() config.State {
	env := make(map[string]string, len(h.Env))
	for k, v := range h.Env {
		env[k] = v
	}
	return config.State{
		Env:              env,
		HomeDirectory:    h.Home,
		WorkingDirectory: h.Dir,
		ExecutablePath:   "blessnet",
		TempDir:          os.TempDir(),
	}
}

// WriteFile creates a file relative to Dir, making parent directories.
func (h *Harness) WriteFile(name, body string, mode os.FileMode) string {
	path := filepath.Join(h.Dir, name)
	qt.Assert(h.t, os.MkdirAll(filepath.Dir(path), 0755), qt.IsNil)
	qt.Assert(h.t, os.WriteFile(path, []byte(body), mode), qt.IsNil)
	return path
}

// Login stores an auth token in Home.
func (h *Harness) Login(token string) {
	path := config.AuthTokenPath(h.State())
	qt.Assert(h.t, os.MkdirAll(filepath.Dir(path), 0755), qt.IsNil)
	qt.Assert(h.t, os.WriteFile(path, []byte(token), 0600), qt.IsNil)
}

// Run invokes the app with args, which exclude the program name.
//
// Warning! Impure function! Cannot safely be used in parallel!
// This mutates the shared App value to wire the IO streams.
func (h *Harness) Run(args ...string) Result {
	t := h.t
	var stdout, stderr bytes.Buffer
	scripted := &prompt.Scripted{Answers: h.Answers}
	state := h.State()

	app := appbase.App
	app.Reader = strings.NewReader("")
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.Metadata = map[string]interface{}{
		appbase.MetadataState:    state,
		appbase.MetadataPrompter: scripted,
		appbase.MetadataLoggedIn: fileExists(config.AuthTokenPath(state)),
	}
	err := app.RunContext(context.Background(), append([]string{"blessnet"}, args...))
	h.Answers = scripted.Answers
	h.Asked = append(h.Asked, scripted.Asked...)

	res := Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
	if err != nil {
		res.Code = 1
	}

	t.Logf("Args: %v", args)
	for e := err; e != nil; e = errors.Unwrap(e) {
		t.Logf("Code: %s", serum.Code(e))
		t.Logf("Message: %s", serum.Message(e))
		t.Logf("Details: %v", serum.Details(e))
	}
	t.Logf("⌄⌄⌄ stdout ⌄⌄⌄\n%s", res.Stdout)
	t.Logf("⌄⌄⌄ stderr ⌄⌄⌄\n%s", res.Stderr)
	return res
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
