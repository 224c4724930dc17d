package config

import (
	"path/filepath"
	"runtime"
)

// BlessnetDir is the installation directory holding the runtime and credentials.
func BlessnetDir(state State) string {
	if dir, ok := state.Env[EnvBlessnetHome]; ok && dir != "" {
		return dir
	}
	return filepath.Join(state.HomeDirectory, ".blessnet")
}

// RuntimeBinaryName is the platform-specific executable name of the runtime.
func RuntimeBinaryName(goos string) string {
	if goos == "windows" {
		return "bls-runtime.exe"
	}
	return "bls-runtime"
}

func RuntimePath(state State) string {
	return filepath.Join(BlessnetDir(state), "bin", RuntimeBinaryName(runtime.GOOS))
}

func AuthTokenPath(state State) string {
	return filepath.Join(BlessnetDir(state), "auth_token")
}

func WalletPath(state State) string {
	return filepath.Join(BlessnetDir(state), "wallet.json")
}

func DescriptorPath(state State) string {
	return filepath.Join(state.WorkingDirectory, DescriptorFilename)
}

func RuntimeVersion(state State) string {
	if v, ok := state.Env[EnvRuntimeVersion]; ok && v != "" {
		return v
	}
	return DefaultRuntimeVersion
}

// RuntimeURLOverride returns nil unless a download URL was set explicitly.
func RuntimeURLOverride(state State) *string {
	value, ok := state.Env[EnvRuntimeURL]
	if !ok {
		return nil
	}
	return &value
}

// S3Config is the gateway configuration used by deploy.
// Endpoint and Bucket are empty when publishing is not configured.
type S3Config struct {
	Endpoint string
	Bucket   string
	Region   string
}

func Gateway(state State) S3Config {
	cfg := S3Config{
		Endpoint: state.Env[EnvS3Endpoint],
		Bucket:   state.Env[EnvS3Bucket],
		Region:   state.Env[EnvS3Region],
	}
	if cfg.Region == "" {
		cfg.Region = DefaultS3Region
	}
	return cfg
}

func GatewayHost(state State) string {
	return state.Env[EnvGatewayHost]
}
