package config

const (
	// EnvBlessnetHome overrides the installation directory (default ~/.blessnet)
	EnvBlessnetHome = "BLESSNET_HOME"
	// EnvRuntimeVersion pins the bls-runtime release to download
	EnvRuntimeVersion = "BLESSNET_RUNTIME_VERSION"
	// EnvRuntimeURL overrides the full download URL of the runtime archive
	EnvRuntimeURL = "BLESSNET_RUNTIME_URL"
	// EnvS3Endpoint is the S3-compatible gateway used by deploy
	EnvS3Endpoint = "BLESSNET_S3_ENDPOINT"
	// EnvS3Bucket is the bucket deploy publishes into
	EnvS3Bucket = "BLESSNET_S3_BUCKET"
	// EnvS3Region is the signing region of the gateway
	EnvS3Region = "BLESSNET_S3_REGION"
	// EnvGatewayHost is the web2 host recorded on deployments
	EnvGatewayHost = "BLESSNET_GATEWAY_HOST"
)

// NOTE: keep this up to date or the config loader won't load them
var envKeys = []string{
	EnvBlessnetHome,
	EnvRuntimeVersion,
	EnvRuntimeURL,
	EnvS3Endpoint,
	EnvS3Bucket,
	EnvS3Region,
	EnvGatewayHost,
}

const (
	// DescriptorFilename is the project descriptor looked up in the working directory.
	DescriptorFilename = "bls.toml"
	// DefaultRuntimeVersion is the bls-runtime release installed when no pin is set.
	DefaultRuntimeVersion = "v0.3.5"
	// DefaultS3Region is used when a gateway is configured without a region.
	DefaultS3Region = "us-east-1"
	// DocsURL is printed in help and status output.
	DocsURL = "https://docs.bless.network"
)
