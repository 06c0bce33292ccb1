package app

import (
	"context"
	"fmt"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/analytics"
	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

// AnalyticsService assembles dataset snapshots and computes reports.
type AnalyticsService struct {
	businesses domain.BusinessRepository
	users      domain.UserRepository
	bookings   domain.BookingRepository
	engine     *analytics.Engine
	opts       options
}

// NewAnalyticsService creates a report service over the given repositories.
func NewAnalyticsService(
	businesses domain.BusinessRepository,
	users domain.UserRepository,
	bookings domain.BookingRepository,
	engine *analytics.Engine,
	opts ...Option,
) *AnalyticsService {
	return &AnalyticsService{
		businesses: businesses,
		users:      users,
		bookings:   bookings,
		engine:     engine,
		opts:       buildOptions(opts),
	}
}

// Report computes the analytics report for tf as of the service clock.
func (s *AnalyticsService) Report(ctx context.Context, tf analytics.Timeframe) (analytics.Report, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return analytics.Report{}, err
	}
	return s.engine.Compute(tf, s.opts.now(), snap)
}

func (s *AnalyticsService) snapshot(ctx context.Context) (analytics.Snapshot, error) {
	businesses, err := s.businesses.List(ctx, domain.ListFilter{})
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("listing businesses: %w", err)
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("listing users: %w", err)
	}
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return analytics.Snapshot{}, fmt.Errorf("listing bookings: %w", err)
	}
	return analytics.Snapshot{Businesses: businesses, Users: users, Bookings: bookings}, nil
}
