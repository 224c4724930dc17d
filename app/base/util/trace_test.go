package util

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"

	"github.com/blessnetwork/blessnet/blsapi"
)

func TestTracingDisabledByDefault(t *testing.T) {
	tp, err := newTracingProvider(context.Background(), "0.0.0", TraceOptions{})
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, tp, qt.IsNil)
}

func TestTraceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.json")
	ctx := context.Background()
	tp, err := newTracingProvider(ctx, "0.0.0", TraceOptions{File: path})
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, tp, qt.Not(qt.IsNil))

	_, span := tp.Tracer(Module).Start(ctx, "blessnet deploy")
	span.End()
	qt.Assert(t, tp.Shutdown(ctx), qt.IsNil)

	data, err := os.ReadFile(path)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, string(data), qt.Contains, `"Name": "blessnet deploy"`)
	qt.Assert(t, string(data), qt.Contains, "blessnet.os")
}

func TestTraceFileUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "trace.json")
	_, err := newTracingProvider(context.Background(), "0.0.0", TraceOptions{File: path})
	qt.Assert(t, serum.Code(err), qt.Equals, blsapi.CodeIo)
}
