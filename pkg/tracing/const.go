package tracing

import "go.opentelemetry.io/otel/attribute"

// Span attribute keys used by blessnet
const (
	AttrKeyBlessnetErrorCode   = "blessnet.error.code"
	AttrKeyBlessnetProjectName = "blessnet.project.name"
	AttrKeyBlessnetCid         = "blessnet.cid"
	AttrKeyBlessnetRuntimeURL  = "blessnet.runtime.url"
	AttrKeyBlessnetExecName    = "blessnet.exec.name"
)

// Attribute values
const (
	AttrValueExecNameRuntime = "bls-runtime"
	AttrValueExecNameBuild   = "build"
)

// Enumerated attributes
var (
	AttrFullExecNameRuntime = attribute.String(AttrKeyBlessnetExecName, AttrValueExecNameRuntime)
	AttrFullExecNameBuild   = attribute.String(AttrKeyBlessnetExecName, AttrValueExecNameBuild)
)
