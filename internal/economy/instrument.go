package economy

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/tradeworld/internal/failure"
	"github.com/samdwyer/tradeworld/internal/telemetry"
)

var operations = telemetry.Counter(telemetry.Meter("economy"),
	"economy.operations", "Economy operations by name and outcome")

func startOp(ctx context.Context, name, tileID string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := telemetry.Tracer("economy").Start(ctx, name)
	span.SetAttributes(attribute.String("tile.id", tileID))
	span.SetAttributes(attrs...)
	return ctx, span
}

func finishOp(ctx context.Context, span trace.Span, op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = failure.KindOf(err).String()
		span.SetAttributes(
			attribute.Bool("failed", true),
			attribute.String("failure.kind", outcome),
		)
		span.SetStatus(codes.Error, failure.Reason(err))
	}
	operations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", op),
		attribute.String("outcome", outcome),
	))
	span.End()
}
