package versioncli

import (
	"testing"

	qt "github.com/frankban/quicktest"

	appbase "github.com/blessnetwork/blessnet/app/base"
	"github.com/blessnetwork/blessnet/app/testutil"
)

func TestVersionCommandMatchesFlag(t *testing.T) {
	h := testutil.New(t)
	want := "Current version: " + appbase.App.Version + "\n"

	for _, args := range [][]string{{"version"}, {"--version"}, {"-v"}} {
		res := h.Run(args...)
		qt.Check(t, res.Err, qt.IsNil)
		qt.Check(t, res.Stdout, qt.Equals, want, qt.Commentf("args %v", args))
	}
}
