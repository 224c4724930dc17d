package registrycli

import (
	"context"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"

	"github.com/blessnetwork/blessnet/app/testutil"
	"github.com/blessnetwork/blessnet/blsapi"
	"github.com/blessnetwork/blessnet/pkg/config"
	"github.com/blessnetwork/blessnet/pkg/publish"
)

const (
	latestCid   = "bafkreihdwdcefgh4dqkjv67uzcmw7ojee6xedzdetojuzjevtenxquvyku"
	unknownCid  = "bafkreigzfgfbbunqonmdpxcl3bo2yza3b46o6j5epzovhjkpf47vwl6p7i"
	deployments = `name = "demo"
version = "1.0.0"
type = "site"

[[deployments]]
cid = "` + latestCid + `"
created = 1700000000000
host = "hello-bless.bls.dev"
`
)

func TestRegistryListEmpty(t *testing.T) {
	h := testutil.New(t)
	h.WriteFile(config.DescriptorFilename, "name = \"demo\"\nversion = \"1.0.0\"\ntype = \"site\"\n", 0644)
	res := h.Run("registry")
	qt.Assert(t, res.Err, qt.IsNil)
	qt.Assert(t, res.Stdout, qt.Contains, "demo has no deployments yet")
}

func TestRegistryList(t *testing.T) {
	h := testutil.New(t)
	h.WriteFile(config.DescriptorFilename, deployments, 0644)
	res := h.Run("registry", "list")
	qt.Assert(t, res.Err, qt.IsNil)
	qt.Assert(t, res.Stdout, qt.Contains, latestCid)
	qt.Assert(t, res.Stdout, qt.Contains, "hello-bless.bls.dev")
}

func TestRegistryShowRecorded(t *testing.T) {
	h := testutil.New(t)
	h.WriteFile(config.DescriptorFilename, deployments, 0644)
	res := h.Run("registry", "show", latestCid)
	qt.Assert(t, res.Err, qt.IsNil)
	qt.Assert(t, res.Stdout, qt.Contains, "Format: v1, raw, sha2-256")
	qt.Assert(t, res.Stdout, qt.Contains, "Web2 Host: https://hello-bless.bls.dev")
}

func TestRegistryShowUnknown(t *testing.T) {
	h := testutil.New(t)
	res := h.Run("registry", "show", unknownCid)
	qt.Assert(t, res.Err, qt.IsNil)
	qt.Assert(t, res.Stdout, qt.Contains, "not recorded in this project")
}

func TestRegistryShowInvalid(t *testing.T) {
	h := testutil.New(t)
	res := h.Run("registry", "show", "not-a-cid")
	qt.Assert(t, serum.Code(res.Err), qt.Equals, blsapi.CodeInvalid)
}

func TestRegistryShowRemote(t *testing.T) {
	mock := publish.NewMock()
	mock.Published[latestCid] = filepath.Join("build", "demo.wasm")
	prev := newPublisher
	newPublisher = func(ctx context.Context, state config.State) (publish.Publisher, error) {
		return mock, nil
	}
	t.Cleanup(func() { newPublisher = prev })

	h := testutil.New(t)
	res := h.Run("registry", "show", "--remote", latestCid)
	qt.Assert(t, res.Err, qt.IsNil)
	qt.Assert(t, res.Stdout, qt.Contains, "Gateway: available")

	res = h.Run("--json", "registry", "show", "--remote", unknownCid)
	qt.Assert(t, res.Err, qt.IsNil)
	qt.Assert(t, res.Stdout, qt.Contains, `"remote":false`)
	qt.Assert(t, res.Stdout, qt.Contains, `"codec":"raw"`)
}

func TestCodecName(t *testing.T) {
	qt.Assert(t, codecName(0x55), qt.Equals, "raw")
	qt.Assert(t, codecName(0x70), qt.Equals, "dag-pb")
	qt.Assert(t, codecName(0xfffffff), qt.Equals, "0xfffffff")
}
