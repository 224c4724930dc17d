package config

import (
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestBlessnetDir(t *testing.T) {
	state := State{HomeDirectory: "/home/alice", Env: map[string]string{}}
	qt.Assert(t, BlessnetDir(state), qt.Equals, filepath.Join("/home/alice", ".blessnet"))
	qt.Assert(t, AuthTokenPath(state), qt.Equals, filepath.Join("/home/alice", ".blessnet", "auth_token"))

	state.Env[EnvBlessnetHome] = "/opt/bless"
	qt.Assert(t, BlessnetDir(state), qt.Equals, "/opt/bless")
	qt.Assert(t, filepath.Dir(RuntimePath(state)), qt.Equals, filepath.Join("/opt/bless", "bin"))
}

func TestRuntimeBinaryName(t *testing.T) {
	qt.Assert(t, RuntimeBinaryName("windows"), qt.Equals, "bls-runtime.exe")
	qt.Assert(t, RuntimeBinaryName("linux"), qt.Equals, "bls-runtime")
	qt.Assert(t, RuntimeBinaryName("darwin"), qt.Equals, "bls-runtime")
}

func TestGatewayDefaults(t *testing.T) {
	cfg := Gateway(State{Env: map[string]string{EnvS3Bucket: "sites"}})
	qt.Assert(t, cfg.Region, qt.Equals, DefaultS3Region)
	qt.Assert(t, cfg.Bucket, qt.Equals, "sites")
	qt.Assert(t, cfg.Endpoint, qt.Equals, "")
}

func TestRuntimeVersionPin(t *testing.T) {
	qt.Assert(t, RuntimeVersion(State{}), qt.Equals, DefaultRuntimeVersion)
	qt.Assert(t, RuntimeVersion(State{Env: map[string]string{EnvRuntimeVersion: "v0.4.0"}}), qt.Equals, "v0.4.0")
	qt.Assert(t, RuntimeURLOverride(State{}), qt.IsNil)
}

func TestNewStateIsACopy(t *testing.T) {
	a, err := NewState()
	qt.Assert(t, err, qt.IsNil)
	a.Env["scribble"] = "x"
	b, err := NewState()
	qt.Assert(t, err, qt.IsNil)
	_, found := b.Env["scribble"]
	qt.Assert(t, found, qt.IsFalse)
}
