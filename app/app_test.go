package app_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/blessnetwork/blessnet/app"
	"github.com/blessnetwork/blessnet/app/testutil"
)

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range app.App.Commands {
		names[cmd.Name] = true
	}
	for _, want := range []string{"init", "preview", "manage", "deploy", "registry", "options", "version"} {
		qt.Check(t, names[want], qt.IsTrue, qt.Commentf("command %q", want))
	}
}

func TestHelpIsFramed(t *testing.T) {
	h := testutil.New(t)
	res := h.Run("--help")
	qt.Assert(t, res.Err, qt.IsNil)
	qt.Assert(t, res.Stdout, qt.Contains, "blessnet init <project-name>")
	qt.Assert(t, res.Stdout, qt.Contains, "COMMANDS:")
	qt.Assert(t, res.Stdout, qt.Contains, "you are currently logged out to bless.network")
	qt.Assert(t, res.Stdout, qt.Contains, "To login, run blessnet options account login")
}

func TestHelpReflectsLogin(t *testing.T) {
	h := testutil.New(t)
	h.Login("tok")
	res := h.Run("help")
	qt.Assert(t, res.Err, qt.IsNil)
	qt.Assert(t, res.Stdout, qt.Contains, "you are currently logged in to bless.network")
}

func TestNoCommandShowsHelp(t *testing.T) {
	h := testutil.New(t)
	res := h.Run()
	qt.Assert(t, res.Err, qt.IsNil)
	qt.Assert(t, res.Stdout, qt.Contains, "USAGE:")
}

func TestCommandHelpIsNotFramed(t *testing.T) {
	h := testutil.New(t)
	res := h.Run("deploy", "--help")
	qt.Assert(t, res.Err, qt.IsNil)
	qt.Assert(t, res.Stdout, qt.Contains, "blessnet deploy")
	qt.Assert(t, res.Stdout, qt.Not(qt.Contains), "blessnet init <project-name>")
}
