package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("football-tables/internal/usecase")

// startUsecaseSpan opens a child span only when the caller is already traced,
// so plain cli runs stay span free.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if name == "" || !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func seasonAttributes(input SeasonInput) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("season.country", input.Country),
		attribute.String("season.league", input.League),
		attribute.String("season.year", input.Season),
	}
}
