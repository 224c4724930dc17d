package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"
	"github.com/warpfork/go-testmark"

	"github.com/blessnetwork/blessnet/blsapi"
	"github.com/blessnetwork/blessnet/pkg/blsruntime"
	"github.com/blessnetwork/blessnet/pkg/config"
	"github.com/blessnetwork/blessnet/pkg/descriptor"
	"github.com/blessnetwork/blessnet/pkg/prompt"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type fixture struct {
	prompter  *prompt.Scripted
	installs  int
	installFn func() error
	loads     int
	project   descriptor.Project
	loadErr   error
	out, err  bytes.Buffer
}

func (f *fixture) orchestrator() *Orchestrator {
	return &Orchestrator{
		Prompter: f.prompter,
		Installer: blsruntime.InstallerFunc(func(ctx context.Context) error {
			f.installs++
			if f.installFn != nil {
				return f.installFn()
			}
			return nil
		}),
		Load: func(dir, filename string) (descriptor.Project, error) {
			f.loads++
			return f.project, f.loadErr
		},
		Out:      &f.out,
		Err:      &f.err,
		Location: time.UTC,
	}
}

func newFixture(answers ...string) *fixture {
	return &fixture{
		prompter: &prompt.Scripted{Answers: answers},
		project:  descriptor.Project{Name: "demo", Version: "1.0.0", Type: "function"},
	}
}

func inv(runtime, descriptorFile, loggedIn bool, args ...string) Invocation {
	return Invocation{
		Args:              append([]string{"blessnet"}, args...),
		WorkingDirectory:  "/work",
		DescriptorPath:    "/work/bls.toml",
		RuntimePath:       "/home/u/.blessnet/bin/bls-runtime",
		AuthTokenPath:     "/home/u/.blessnet/auth_token",
		RuntimePresent:    runtime,
		DescriptorPresent: descriptorFile,
		LoggedIn:          loggedIn,
	}
}

func TestVersionSkipsEverything(t *testing.T) {
	for _, args := range [][]string{{"version"}, {"-v"}, {"--version"}, {"manage", "-v"}} {
		for _, runtime := range []bool{true, false} {
			for _, desc := range []bool{true, false} {
				f := newFixture()
				d, err := f.orchestrator().Run(context.Background(), inv(runtime, desc, false, args...))
				qt.Assert(t, err, qt.IsNil)
				qt.Assert(t, d, qt.DeepEquals, Route(), qt.Commentf("args %q runtime=%t descriptor=%t", args, runtime, desc))
				qt.Assert(t, f.prompter.Asked, qt.HasLen, 0)
				qt.Assert(t, f.installs, qt.Equals, 0)
				qt.Assert(t, f.loads, qt.Equals, 0)
			}
		}
	}
}

func TestRuntimeGateDeclined(t *testing.T) {
	for _, answer := range []string{"", "no", "n", "maybe", "yess"} {
		f := newFixture(answer)
		d, err := f.orchestrator().Run(context.Background(), inv(false, true, false, "deploy"))
		qt.Assert(t, err, qt.IsNil)
		qt.Assert(t, d, qt.DeepEquals, Exit(1))
		qt.Assert(t, f.prompter.Asked, qt.HasLen, 1)
		qt.Assert(t, f.prompter.Asked[0], qt.Contains, "BLESS environment not found")
		qt.Assert(t, f.installs, qt.Equals, 0)
		qt.Assert(t, f.loads, qt.Equals, 0)
	}
}

func TestRuntimeGateDeclinedWritesNothing(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	state := config.State{HomeDirectory: home, WorkingDirectory: work, Env: map[string]string{}}
	f := newFixture("no")
	o := f.orchestrator()
	o.Installer = mustRelease(t, state)

	d, err := o.Run(context.Background(), Probe(state, []string{"blessnet"}))
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, d, qt.DeepEquals, Exit(1))

	for _, dir := range []string{home, work} {
		entries, err := os.ReadDir(dir)
		qt.Assert(t, err, qt.IsNil)
		qt.Assert(t, entries, qt.HasLen, 0)
	}
}

func mustRelease(t *testing.T, state config.State) blsruntime.Installer {
	r, err := blsruntime.NewRelease(state)
	qt.Assert(t, err, qt.IsNil)
	return r
}

func TestRuntimeGateConfirmed(t *testing.T) {
	for _, answer := range []string{"yes", "Y", "YES", "y"} {
		f := newFixture(answer)
		d, err := f.orchestrator().Run(context.Background(), inv(false, false, false))
		qt.Assert(t, err, qt.IsNil)
		qt.Assert(t, d, qt.DeepEquals, Exit(0))
		qt.Assert(t, f.installs, qt.Equals, 1)
		qt.Assert(t, f.out.String(), qt.Contains, "BLESS environment installed successfully.")
		// Terminal: the descriptor gate never gets asked.
		qt.Assert(t, f.prompter.Asked, qt.HasLen, 1)
	}
}

func TestRuntimeGateInstallFails(t *testing.T) {
	f := newFixture("y")
	f.installFn = func() error { return errors.New("connection reset") }
	d, err := f.orchestrator().Run(context.Background(), inv(false, true, false, "init", "app"))
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, d, qt.DeepEquals, Exit(1))
	qt.Assert(t, f.installs, qt.Equals, 1)
	qt.Assert(t, f.err.String(), qt.Equals, "Failed to download bls-runtime: connection reset\n")
}

func TestRuntimeGateExemptions(t *testing.T) {
	for _, args := range [][]string{{"options"}, {"options", "build"}, {"build"}, {"options", "account", "login"}} {
		f := newFixture()
		d, err := f.orchestrator().Run(context.Background(), inv(false, false, false, args...))
		qt.Assert(t, err, qt.IsNil)
		qt.Assert(t, d, qt.DeepEquals, Route(), qt.Commentf("args %q", args))
		qt.Assert(t, f.prompter.Asked, qt.HasLen, 0)
	}
}

func TestInitUsesLastToken(t *testing.T) {
	for _, tc := range []struct {
		args   []string
		expect []string
	}{
		{[]string{"init"}, []string{"init"}},
		{[]string{"init", "my-app"}, []string{"my-app"}},
		{[]string{"--verbose", "init", "site"}, []string{"site"}},
		{[]string{"init", "--git", "my-app"}, []string{"--git", "my-app"}},
		{[]string{"init", "--git"}, []string{"--git"}},
	} {
		for _, desc := range []bool{true, false} {
			f := newFixture()
			d, err := f.orchestrator().Run(context.Background(), inv(true, desc, false, tc.args...))
			qt.Assert(t, err, qt.IsNil)
			qt.Assert(t, d, qt.DeepEquals, Init(tc.expect...))
			qt.Assert(t, f.prompter.Asked, qt.HasLen, 0)
			qt.Assert(t, f.loads, qt.Equals, 0)
		}
	}
}

func TestInitAfterRuntimeDeclined(t *testing.T) {
	f := newFixture("no")
	d, err := f.orchestrator().Run(context.Background(), inv(false, false, false, "init", "x"))
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, d, qt.DeepEquals, Exit(1))
}

func TestStatusReport(t *testing.T) {
	for _, args := range [][]string{nil, {"registry"}, {"frobnicate"}} {
		f := newFixture()
		d, err := f.orchestrator().Run(context.Background(), inv(true, true, true, args...))
		qt.Assert(t, err, qt.IsNil)
		qt.Assert(t, d, qt.DeepEquals, Exit(0), qt.Commentf("args %q", args))
		qt.Assert(t, f.loads, qt.Equals, 1)
		qt.Assert(t, f.out.String(), qt.Contains, "demo")
		qt.Assert(t, f.out.String(), qt.Contains, "Deployment Status: Not Deployed")
		qt.Assert(t, f.prompter.Asked, qt.HasLen, 0)
	}
}

func TestStatusLoadFailurePropagates(t *testing.T) {
	f := newFixture()
	f.loadErr = blsapi.ErrorSerialization("unable to parse project descriptor", errors.New("bad toml"))
	_, err := f.orchestrator().Run(context.Background(), inv(true, true, false))
	qt.Assert(t, serum.Code(err), qt.Equals, blsapi.CodeSerialization)
}

func TestDescriptorPresentRoutes(t *testing.T) {
	for _, args := range [][]string{{"help"}, {"-h"}, {"preview"}, {"manage"}, {"deploy"}, {"options", "wallet"}, {"build"}} {
		f := newFixture()
		d, err := f.orchestrator().Run(context.Background(), inv(true, true, false, args...))
		qt.Assert(t, err, qt.IsNil)
		qt.Assert(t, d, qt.DeepEquals, Route(), qt.Commentf("args %q", args))
		qt.Assert(t, f.loads, qt.Equals, 0)
	}
}

func TestDeployWithTargetRoutes(t *testing.T) {
	// node-style ["node","cli","deploy","mytarget"] is ["blessnet","deploy","mytarget"] here.
	for _, desc := range []bool{true, false} {
		f := newFixture()
		i := inv(true, desc, false, "deploy", "mytarget")
		d, err := f.orchestrator().Run(context.Background(), i)
		qt.Assert(t, err, qt.IsNil)
		qt.Assert(t, d, qt.DeepEquals, Route())
		qt.Assert(t, i.Args, qt.DeepEquals, []string{"blessnet", "deploy", "mytarget"})
		qt.Assert(t, f.loads, qt.Equals, 0)
		qt.Assert(t, f.prompter.Asked, qt.HasLen, 0)
	}
}

func TestDescriptorGate(t *testing.T) {
	f := newFixture("yes")
	d, err := f.orchestrator().Run(context.Background(), inv(true, false, false))
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, d.Action, qt.Equals, ActionInit)
	qt.Assert(t, d.Args, qt.HasLen, 0)
	qt.Assert(t, f.prompter.Asked, qt.HasLen, 1)
	qt.Assert(t, f.prompter.Asked[0], qt.Contains, "Initialize project? (yes/no)")

	f = newFixture("nah")
	d, err = f.orchestrator().Run(context.Background(), inv(true, false, false, "preview"))
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, d, qt.DeepEquals, Exit(1))
}

func TestDescriptorGateExemptions(t *testing.T) {
	for _, args := range [][]string{{"help"}, {"--help"}, {"registry"}, {"options"}, {"build"}, {"deploy", "../site"}} {
		f := newFixture()
		d, err := f.orchestrator().Run(context.Background(), inv(true, false, false, args...))
		qt.Assert(t, err, qt.IsNil)
		qt.Assert(t, d, qt.DeepEquals, Route(), qt.Commentf("args %q", args))
		qt.Assert(t, f.prompter.Asked, qt.HasLen, 0)
	}
}

func TestProbe(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	state := config.State{HomeDirectory: home, WorkingDirectory: work, Env: map[string]string{}}
	args := []string{"blessnet", "deploy"}

	i := Probe(state, args)
	qt.Assert(t, i.RuntimePresent, qt.IsFalse)
	qt.Assert(t, i.DescriptorPresent, qt.IsFalse)
	qt.Assert(t, i.LoggedIn, qt.IsFalse)
	qt.Assert(t, i.DescriptorPath, qt.Equals, filepath.Join(work, "bls.toml"))

	args[1] = "mutated"
	qt.Assert(t, i.Args[1], qt.Equals, "deploy")

	qt.Assert(t, os.MkdirAll(filepath.Dir(config.RuntimePath(state)), 0755), qt.IsNil)
	qt.Assert(t, os.WriteFile(config.RuntimePath(state), []byte{}, 0755), qt.IsNil)
	qt.Assert(t, os.WriteFile(config.AuthTokenPath(state), []byte("tok"), 0600), qt.IsNil)
	qt.Assert(t, os.WriteFile(filepath.Join(work, "bls.toml"), []byte("name = \"x\"\n"), 0644), qt.IsNil)

	i = Probe(state, []string{"blessnet"})
	qt.Assert(t, i.RuntimePresent, qt.IsTrue)
	qt.Assert(t, i.DescriptorPresent, qt.IsTrue)
	qt.Assert(t, i.LoggedIn, qt.IsTrue)
}

func loadFixture(t *testing.T, name string) descriptor.Project {
	doc, err := testmark.ReadFile("../descriptor/testdata/descriptors.md")
	qt.Assert(t, err, qt.IsNil)
	hunk, ok := doc.HunksByName[name]
	qt.Assert(t, ok, qt.IsTrue)
	p, err := descriptor.Parse(hunk.Body)
	qt.Assert(t, err, qt.IsNil)
	return p
}

func TestReporterDeployed(t *testing.T) {
	var out bytes.Buffer
	Reporter{Out: &out, Location: time.UTC}.Report(loadFixture(t, "deployed/bls.toml"), true)
	s := out.String()
	qt.Assert(t, s, qt.Contains, "Project Name")
	qt.Assert(t, s, qt.Contains, "hello-bless")
	qt.Assert(t, s, qt.Contains, "1.2.0")
	qt.Assert(t, s, qt.Contains, "Deployment Status: Deployed\n")
	qt.Assert(t, s, qt.Contains, "CID: bafkreihdwdcefgh4dqkjv67uzcmw7ojee6xedzdetojuzjevtenxquvyku\n")
	qt.Assert(t, s, qt.Contains, "Created:  11/14/2023, 10:13:20 PM\n")
	qt.Assert(t, s, qt.Contains, "Web2 Host: https://hello-bless.bls.dev\n")
	qt.Assert(t, s, qt.Not(qt.Contains), "bafkreidgvpkjawlxz6sffxzwgooowe5yt7i6wsyg236mfoks77nywkptdq")
	qt.Assert(t, s, qt.Contains, "you are currently logged in to bless.network")
	qt.Assert(t, s, qt.Not(qt.Contains), "To log in")
	qt.Assert(t, s, qt.Contains, "To log out, run blessnet options account logout")
}

func TestReporterNotDeployed(t *testing.T) {
	var out bytes.Buffer
	Reporter{Out: &out, Location: time.UTC}.Report(loadFixture(t, "fresh/bls.toml"), false)
	s := out.String()
	qt.Assert(t, s, qt.Contains, "Deployment Status: Not Deployed")
	qt.Assert(t, s, qt.Not(qt.Contains), "CID:")
	qt.Assert(t, s, qt.Contains, "you are currently logged out to bless.network")
	qt.Assert(t, s, qt.Contains, "To log in, run blessnet options account login")
}

func TestReporterNoHost(t *testing.T) {
	var out bytes.Buffer
	Reporter{Out: &out, Location: time.UTC}.Report(loadFixture(t, "datetime/bls.toml"), false)
	qt.Assert(t, out.String(), qt.Contains, "Created:  3/5/2024, 8:09:10 AM")
	qt.Assert(t, out.String(), qt.Not(qt.Contains), "Web2 Host")
}
