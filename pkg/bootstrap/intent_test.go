package bootstrap

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestClassify(t *testing.T) {
	type testcase struct {
		args   []string
		expect Intent
	}
	for _, tc := range []testcase{
		{args: nil, expect: Intent{}},
		{args: []string{"blessnet"}, expect: Intent{}},
		{args: []string{"blessnet", "frobnicate", "--loud"}, expect: Intent{}},
		{args: []string{"blessnet", "version"}, expect: Intent{Version: true}},
		{args: []string{"blessnet", "-v"}, expect: Intent{Version: true}},
		{args: []string{"blessnet", "--version"}, expect: Intent{Version: true}},
		{args: []string{"blessnet", "help"}, expect: Intent{Help: true}},
		{args: []string{"blessnet", "-h"}, expect: Intent{Help: true}},
		{args: []string{"blessnet", "--help"}, expect: Intent{Help: true}},
		{args: []string{"blessnet", "options", "build"}, expect: Intent{Options: true, Build: true}},
		{args: []string{"blessnet", "options", "account", "login"}, expect: Intent{Options: true}},
		{args: []string{"blessnet", "init"}, expect: Intent{Init: true}},
		{args: []string{"blessnet", "init", "my-app"}, expect: Intent{Init: true}},
		{args: []string{"blessnet", "preview", "serve"}, expect: Intent{Preview: true}},
		{args: []string{"blessnet", "manage"}, expect: Intent{Manage: true}},
		{args: []string{"blessnet", "registry"}, expect: Intent{Registry: true}},
		{args: []string{"blessnet", "deploy"}, expect: Intent{Deploy: true}},
		{args: []string{"blessnet", "deploy", "mytarget"}, expect: Intent{Deploy: true, DeployTarget: true}},
		// The target heuristic counts tokens; a flag is enough.
		{args: []string{"blessnet", "deploy", "--verbose"}, expect: Intent{Deploy: true, DeployTarget: true}},
		{args: []string{"blessnet", "deploy", "-h"}, expect: Intent{Deploy: true, DeployTarget: true, Help: true}},
		// Keywords are whole tokens only.
		{args: []string{"blessnet", "deployment", "versions", "-vv"}, expect: Intent{}},
		// The program name is never classified.
		{args: []string{"deploy"}, expect: Intent{}},
	} {
		qt.Check(t, Classify(tc.args), qt.DeepEquals, tc.expect, qt.Commentf("args %q", tc.args))
	}
}

func TestIntentPredicates(t *testing.T) {
	qt.Check(t, Intent{}.needsRuntime(), qt.IsTrue)
	qt.Check(t, Intent{Version: true}.needsRuntime(), qt.IsFalse)
	qt.Check(t, Intent{Options: true}.needsRuntime(), qt.IsFalse)
	qt.Check(t, Intent{Build: true}.needsRuntime(), qt.IsFalse)
	qt.Check(t, Intent{Help: true}.needsRuntime(), qt.IsTrue)

	qt.Check(t, Intent{}.reportsStatus(), qt.IsTrue)
	qt.Check(t, Intent{Registry: true}.reportsStatus(), qt.IsTrue)
	qt.Check(t, Intent{Help: true}.reportsStatus(), qt.IsFalse)
	qt.Check(t, Intent{Deploy: true}.reportsStatus(), qt.IsFalse)

	qt.Check(t, Intent{}.offersInit(), qt.IsTrue)
	qt.Check(t, Intent{Deploy: true}.offersInit(), qt.IsTrue)
	qt.Check(t, Intent{Deploy: true, DeployTarget: true}.offersInit(), qt.IsFalse)
	qt.Check(t, Intent{Registry: true}.offersInit(), qt.IsFalse)
	qt.Check(t, Intent{Help: true}.offersInit(), qt.IsFalse)
}
