// Package telemetry provides graph.Observer implementations for the
// core's pluggable begin/end span hook (spec.md §6). The core itself
// never imports this package — callers wire an implementation in at
// graph.CreateStore time via graph.WithObserver, the same inversion
// trigo uses for its own span recorder collaborator.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/knowgraph/semcore/pkg/graph"
)

// OTelObserver records each store operation as an OpenTelemetry span
// under the given tracer name.
type OTelObserver struct {
	tracer trace.Tracer
}

// NewOTelObserver returns an Observer backed by the global OTel tracer
// provider, named instrumentationName (typically the importing binary's
// module path).
func NewOTelObserver(instrumentationName string) *OTelObserver {
	return &OTelObserver{tracer: otel.Tracer(instrumentationName)}
}

// Begin starts a span named op and returns a graph.Span that ends it.
func (o *OTelObserver) Begin(op string) graph.Span {
	_, span := o.tracer.Start(context.Background(), op)
	return otelSpan{span: span}
}

type otelSpan struct {
	span trace.Span
}

func (s otelSpan) End(err error) {
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	}
	s.span.End()
}
