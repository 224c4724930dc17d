package util

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/serum-errors/go-serum"
	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/blessnetwork/blessnet/blsapi"
	"github.com/blessnetwork/blessnet/pkg/logging"
	"github.com/blessnetwork/blessnet/pkg/tracing"
)

// The module name used for unique strings, such as tracing identifiers.
const Module = "github.com/blessnetwork/blessnet"

// TraceOptions are the global trace.* flags.
type TraceOptions struct {
	File         string
	HTTP         bool
	HTTPInsecure bool
	HTTPEndpoint string
}

// TraceOptionsFrom reads the trace.* flags of the running app.
func TraceOptionsFrom(c *cli.Context) TraceOptions {
	return TraceOptions{
		File:         c.String("trace.file"),
		HTTP:         c.Bool("trace.http.enable"),
		HTTPInsecure: c.Bool("trace.http.insecure"),
		HTTPEndpoint: c.String("trace.http.endpoint"),
	}
}

// Enabled reports whether any exporter is configured.
func (o TraceOptions) Enabled() bool {
	return o.File != "" || o.HTTP
}

func setSpanError(ctx context.Context, err error) {
	if serum.Code(err) == "" {
		err = blsapi.ErrorUnknown("command failed", err)
	}
	tracing.SetSpanError(ctx, err)
}

// newResource describes this process to trace collectors.
// Environment attributes (OTEL_RESOURCE_ATTRIBUTES) win over ours.
func newResource(version string) (*resource.Resource, error) {
	res := resource.Default()
	for _, r := range []*resource.Resource{
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(Module),
			semconv.ServiceVersionKey.String(version),
			attribute.String("blessnet.os", runtime.GOOS),
			attribute.String("blessnet.arch", runtime.GOARCH),
		),
		resource.Environment(),
	} {
		var err error
		res, err = resource.Merge(res, r)
		if err != nil {
			return nil, blsapi.ErrorInternal("unable to merge trace resources", err)
		}
	}
	return res, nil
}

// newTracingProvider builds a provider exporting to every destination in opts.
// Returns nil when opts enables nothing.
//
// Errors:
//
//   - blessnet-error-io -- the trace file cannot be created
//   - blessnet-error-internal -- an exporter cannot be set up
func newTracingProvider(ctx context.Context, version string, opts TraceOptions) (_ *sdktrace.TracerProvider, retErr error) {
	if !opts.Enabled() {
		return nil, nil
	}
	log := logging.Ctx(ctx)
	res, err := newResource(version)
	if err != nil {
		return nil, err
	}
	providerOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	}

	if opts.File != "" {
		log.Debug("trace", "writing spans to %s", opts.File)
		exp, err := newFileSpanExporter(opts.File)
		if err != nil {
			return nil, err
		}
		defer func() {
			if retErr != nil {
				exp.Shutdown(ctx)
			}
		}()
		providerOpts = append(providerOpts, sdktrace.WithBatcher(exp))
	}

	if opts.HTTP {
		var httpOpts []otlptracehttp.Option
		if opts.HTTPInsecure {
			httpOpts = append(httpOpts, otlptracehttp.WithInsecure())
		}
		if opts.HTTPEndpoint != "" {
			log.Debug("trace", "exporting spans to %s", opts.HTTPEndpoint)
			httpOpts = append(httpOpts, otlptracehttp.WithEndpoint(opts.HTTPEndpoint))
		}
		exp, err := otlptrace.New(ctx, otlptracehttp.NewClient(httpOpts...))
		if err != nil {
			return nil, blsapi.ErrorInternal("unable to start otlp exporter", err)
		}
		providerOpts = append(providerOpts, sdktrace.WithBatcher(exp))
	}
	return sdktrace.NewTracerProvider(providerOpts...), nil
}

// fileSpanExporter closes its file once the wrapped exporter has flushed.
type fileSpanExporter struct {
	sdktrace.SpanExporter
	file io.Closer
}

// Shutdown flushes pending spans and closes the file.
//
// Errors:
//
//   - blessnet-error-internal -- when an error occurs during tracing shutdown
func (e *fileSpanExporter) Shutdown(ctx context.Context) error {
	defer e.file.Close()
	if err := e.SpanExporter.Shutdown(ctx); err != nil {
		return blsapi.ErrorInternal("tracing shutdown failed", err)
	}
	return nil
}

// newFileSpanExporter truncates path and pretty-prints spans into it.
//
// Errors:
//
//   - blessnet-error-io -- the file cannot be created
//   - blessnet-error-internal -- the exporter cannot be set up
func newFileSpanExporter(path string) (*fileSpanExporter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, blsapi.ErrorIo("unable to create trace file", path, err)
	}
	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(f),
		stdouttrace.WithPrettyPrint(),
		stdouttrace.WithoutTimestamps(),
	)
	if err != nil {
		f.Close()
		return nil, blsapi.ErrorInternal("unable to start trace file exporter", err)
	}
	return &fileSpanExporter{SpanExporter: exp, file: f}, nil
}
