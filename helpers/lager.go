package helpers

import (
	"context"

	"code.cloudfoundry.org/lager/v3"
	"go.opentelemetry.io/otel/trace"
)

// AddTraceID copies the W3C trace id of the span in ctx into data, when there is one.
func AddTraceID(ctx context.Context, data lager.Data) lager.Data {
	spanContext := trace.SpanFromContext(ctx).SpanContext()
	if spanContext.HasTraceID() {
		data["w3c_trace-id"] = spanContext.TraceID().String()
	}
	return data
}
