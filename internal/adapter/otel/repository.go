package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

const instrumentationName = "github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/adapter/otel"

// TracingBusinessRepository wraps a domain.BusinessRepository with
// OpenTelemetry tracing. Each method creates a span and records errors.
type TracingBusinessRepository struct {
	next   domain.BusinessRepository
	tracer trace.Tracer
}

var _ domain.BusinessRepository = (*TracingBusinessRepository)(nil)

// NewTracingBusinessRepository creates a tracing decorator around the given repository.
func NewTracingBusinessRepository(next domain.BusinessRepository) *TracingBusinessRepository {
	return &TracingBusinessRepository{
		next:   next,
		tracer: otel.Tracer(instrumentationName),
	}
}

func (r *TracingBusinessRepository) Create(ctx context.Context, b domain.Business) error {
	ctx, span := r.tracer.Start(ctx, "BusinessRepository.Create",
		trace.WithAttributes(
			attribute.String("business.id", b.ID),
			attribute.String("business.status", string(b.Status)),
		),
	)
	defer span.End()

	return recordErr(span, r.next.Create(ctx, b))
}

func (r *TracingBusinessRepository) GetByID(ctx context.Context, id string) (domain.Business, error) {
	ctx, span := r.tracer.Start(ctx, "BusinessRepository.GetByID",
		trace.WithAttributes(attribute.String("business.id", id)),
	)
	defer span.End()

	b, err := r.next.GetByID(ctx, id)
	return b, recordErr(span, err)
}

func (r *TracingBusinessRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Business, error) {
	ctx, span := r.tracer.Start(ctx, "BusinessRepository.List",
		trace.WithAttributes(
			attribute.Int("filter.limit", filter.Limit),
			attribute.Int("filter.offset", filter.Offset),
		),
	)
	defer span.End()

	if filter.Status != nil {
		span.SetAttributes(attribute.String("filter.status", string(*filter.Status)))
	}

	businesses, err := r.next.List(ctx, filter)
	if err == nil {
		span.SetAttributes(attribute.Int("result.count", len(businesses)))
	}
	return businesses, recordErr(span, err)
}

func (r *TracingBusinessRepository) Update(ctx context.Context, b domain.Business) error {
	ctx, span := r.tracer.Start(ctx, "BusinessRepository.Update",
		trace.WithAttributes(
			attribute.String("business.id", b.ID),
			attribute.String("business.status", string(b.Status)),
		),
	)
	defer span.End()

	return recordErr(span, r.next.Update(ctx, b))
}

func (r *TracingBusinessRepository) Delete(ctx context.Context, id string) error {
	ctx, span := r.tracer.Start(ctx, "BusinessRepository.Delete",
		trace.WithAttributes(attribute.String("business.id", id)),
	)
	defer span.End()

	return recordErr(span, r.next.Delete(ctx, id))
}

func recordErr(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
