/* Tracing wraps go.opentelemetry.io/otel/trace for setting and retrieving tracers in a context.Context

Commands get their tracer from the context rather than from package globals,
so a command run without tracing configured gets a no-op tracer for free.
*/
package tracing
