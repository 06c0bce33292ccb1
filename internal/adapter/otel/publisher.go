package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

// TracingPublisher wraps a domain.NotificationPublisher with OpenTelemetry tracing.
type TracingPublisher struct {
	next   domain.NotificationPublisher
	tracer trace.Tracer
}

var _ domain.NotificationPublisher = (*TracingPublisher)(nil)

// NewTracingPublisher creates a tracing decorator around the given publisher.
func NewTracingPublisher(next domain.NotificationPublisher) *TracingPublisher {
	return &TracingPublisher{
		next:   next,
		tracer: otel.Tracer(instrumentationName),
	}
}

func (p *TracingPublisher) Publish(ctx context.Context, n domain.Notification) error {
	ctx, span := p.tracer.Start(ctx, "NotificationPublisher.Publish",
		trace.WithAttributes(
			attribute.String("notification.type", string(n.Type)),
			attribute.String("business.id", n.BusinessID),
			attribute.String("user.id", n.TargetUserID),
		),
	)
	defer span.End()

	return recordErr(span, p.next.Publish(ctx, n))
}
