package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

// MetricsAuditRecorder counts applied lifecycle transitions in the
// localbook.business.transitions counter, then forwards the entry.
type MetricsAuditRecorder struct {
	next        domain.AuditRecorder
	transitions metric.Int64Counter
}

var _ domain.AuditRecorder = (*MetricsAuditRecorder)(nil)

// NewMetricsAuditRecorder creates a metrics decorator. next may be nil.
func NewMetricsAuditRecorder(next domain.AuditRecorder) (*MetricsAuditRecorder, error) {
	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"localbook.business.transitions",
		metric.WithDescription("Applied business lifecycle transitions"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transitions counter: %w", err)
	}

	return &MetricsAuditRecorder{next: next, transitions: counter}, nil
}

func (r *MetricsAuditRecorder) Record(ctx context.Context, entry domain.AuditEntry) {
	r.transitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event", string(entry.Event)),
		attribute.String("from", string(entry.From)),
		attribute.String("to", string(entry.To)),
		attribute.Bool("override_region", entry.OverrideRegion),
	))

	if r.next != nil {
		r.next.Record(ctx, entry)
	}
}
