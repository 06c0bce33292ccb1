package analytics_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/analytics"
	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

func TestGrowthRate(t *testing.T) {
	cases := []struct {
		current, previous int
		want              float64
	}{
		{0, 0, 0},
		{5, 0, 100},
		{10, 5, 100},
		{5, 10, -50},
		{3, 3, 0},
		{0, 4, -100},
	}

	for _, tc := range cases {
		if got := analytics.GrowthRate(tc.current, tc.previous); got != tc.want {
			t.Errorf("GrowthRate(%d, %d) = %v, want %v", tc.current, tc.previous, got, tc.want)
		}
	}
}

func TestCompute_EmptyDataset(t *testing.T) {
	_, err := analytics.New(analytics.DefaultOptions()).Compute(analytics.TimeframeAll, now, analytics.Snapshot{})
	if !errors.Is(err, analytics.ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestCompute_UnknownTimeframe(t *testing.T) {
	snap := analytics.Snapshot{Users: []domain.User{{ID: "u-1", Role: domain.RoleClient}}}
	_, err := analytics.New(analytics.DefaultOptions()).Compute(analytics.Timeframe("NEVER"), now, snap)
	var tfErr *analytics.UnknownTimeframeError
	if !errors.As(err, &tfErr) {
		t.Fatalf("expected UnknownTimeframeError, got %v", err)
	}
}

func TestCompute_StatusCountsOverWholeDataset(t *testing.T) {
	snap := analytics.Snapshot{Businesses: []domain.Business{
		{ID: "1", Status: domain.StatusPending, Town: "Carlow"},
		{ID: "2", Status: domain.StatusActive},
		{ID: "3", Status: domain.StatusRejected},
	}}

	r, err := analytics.New(analytics.DefaultOptions()).Compute(analytics.TimeframeAll, now, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Metrics.PendingBusinesses != 1 {
		t.Errorf("PendingBusinesses = %d, want 1", r.Metrics.PendingBusinesses)
	}
	if r.Metrics.ActiveBusinesses != 1 {
		t.Errorf("ActiveBusinesses = %d, want 1", r.Metrics.ActiveBusinesses)
	}
	if r.Metrics.RejectedBusinesses != 1 {
		t.Errorf("RejectedBusinesses = %d, want 1", r.Metrics.RejectedBusinesses)
	}
	if r.Metrics.RegionBusinesses != 1 || r.Metrics.NonRegionBusinesses != 2 {
		t.Errorf("region split = %d/%d, want 1/2", r.Metrics.RegionBusinesses, r.Metrics.NonRegionBusinesses)
	}
}

func TestCompute_WindowedCountsAndGrowth(t *testing.T) {
	day := 24 * time.Hour
	snap := analytics.Snapshot{
		Businesses: []domain.Business{
			{ID: "b1", Status: domain.StatusActive, CreatedAt: now.Add(-1 * day)},
			{ID: "b2", Status: domain.StatusActive, CreatedAt: now.Add(-2 * day)},
			{ID: "b3", Status: domain.StatusPending, CreatedAt: now.Add(-10 * day)},
			{ID: "b4", Status: domain.StatusPending, CreatedAt: now.Add(-30 * day)},
		},
		Users: []domain.User{
			{ID: "u1", Role: domain.RoleClient, CreatedAt: now.Add(-3 * day)},
			{ID: "u2", Role: domain.RoleBusinessOwner, CreatedAt: now.Add(-3 * day)},
			{ID: "u3", Role: domain.RoleClient, CreatedAt: now.Add(-9 * day)},
			{ID: "u4", Role: domain.RoleClient, CreatedAt: now.Add(-12 * day)},
		},
		Bookings: []domain.Booking{
			{ID: "k1", OccursAt: now},
			{ID: "k2", OccursAt: now.Add(-8 * day)},
		},
	}

	r, err := analytics.New(analytics.DefaultOptions()).Compute(analytics.TimeframeWeek, now, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := r.Metrics
	if m.NewBusinesses != 2 || m.PreviousNewBusinesses != 1 {
		t.Errorf("businesses = %d/%d, want 2/1", m.NewBusinesses, m.PreviousNewBusinesses)
	}
	if m.BusinessGrowth != 100 {
		t.Errorf("BusinessGrowth = %v, want 100", m.BusinessGrowth)
	}
	if m.NewClients != 1 || m.PreviousNewClients != 2 {
		t.Errorf("clients = %d/%d, want 1/2", m.NewClients, m.PreviousNewClients)
	}
	if m.ClientGrowth != -50 {
		t.Errorf("ClientGrowth = %v, want -50", m.ClientGrowth)
	}
	if m.TotalBookings != 1 || m.PreviousBookings != 1 {
		t.Errorf("bookings = %d/%d, want 1/1", m.TotalBookings, m.PreviousBookings)
	}
	if m.BookingGrowth != 0 {
		t.Errorf("BookingGrowth = %v, want 0", m.BookingGrowth)
	}
	if r.Label != "Last 7 Days" || !r.GeneratedAt.Equal(now) {
		t.Errorf("report header = %q @ %v", r.Label, r.GeneratedAt)
	}
}

func TestCompute_AllGrowsAgainstZero(t *testing.T) {
	snap := analytics.Snapshot{
		Businesses: []domain.Business{{ID: "b1", CreatedAt: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)}},
		Users:      []domain.User{{ID: "u1", Role: domain.RoleAdmin, CreatedAt: now}},
	}

	r, err := analytics.New(analytics.DefaultOptions()).Compute(analytics.TimeframeAll, now, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Metrics.PreviousNewBusinesses != 0 {
		t.Errorf("PreviousNewBusinesses = %d, want 0", r.Metrics.PreviousNewBusinesses)
	}
	if r.Metrics.BusinessGrowth != 100 {
		t.Errorf("BusinessGrowth = %v, want 100", r.Metrics.BusinessGrowth)
	}
	if r.Metrics.ClientGrowth != 0 {
		t.Errorf("ClientGrowth = %v, want 0", r.Metrics.ClientGrowth)
	}
}

func TestCompute_ZeroTimestampsFallOutsideWindows(t *testing.T) {
	snap := analytics.Snapshot{Businesses: []domain.Business{{ID: "b1", Status: domain.StatusActive}}}

	r, err := analytics.New(analytics.DefaultOptions()).Compute(analytics.TimeframeAll, now, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Metrics.NewBusinesses != 0 {
		t.Errorf("NewBusinesses = %d, want 0", r.Metrics.NewBusinesses)
	}
	if r.Metrics.ActiveBusinesses != 1 {
		t.Errorf("ActiveBusinesses = %d, want 1", r.Metrics.ActiveBusinesses)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	snap := analytics.Snapshot{
		Businesses: []domain.Business{
			{ID: "1", Category: "Hair", Town: "carlow", CreatedAt: now.Add(-time.Hour)},
			{ID: "2", Category: "Nails", PostalPrefix: "R93", CreatedAt: now.Add(-48 * time.Hour)},
		},
		Bookings: []domain.Booking{{ID: "k", OccursAt: now}},
	}
	engine := analytics.New(analytics.DefaultOptions())

	first, err := engine.Compute(analytics.TimeframeMonth, now, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.Compute(analytics.TimeframeMonth, now, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("reports differ:\n%+v\n%+v", first, second)
	}
}
