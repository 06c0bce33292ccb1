package analytics

import (
	"errors"
	"time"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

// DefaultTopCategories is how many categories the report keeps by default.
const DefaultTopCategories = 6

// ErrEmptyDataset is returned when businesses, users and bookings are all empty.
var ErrEmptyDataset = errors.New("no businesses, users or bookings to report on")

// Snapshot is a consistent read of the three collections the report covers.
// Collections are complete, not pre-filtered by time.
type Snapshot struct {
	Businesses []domain.Business
	Users      []domain.User
	Bookings   []domain.Booking
}

func (s Snapshot) empty() bool {
	return len(s.Businesses) == 0 && len(s.Users) == 0 && len(s.Bookings) == 0
}

// Options tunes presentation aspects of the report.
type Options struct {
	// TopCategories caps the category distribution; 0 keeps every category.
	TopCategories int
}

// DefaultOptions returns the options the admin console uses.
func DefaultOptions() Options {
	return Options{TopCategories: DefaultTopCategories}
}

// Metrics are the scalar figures of a report.
type Metrics struct {
	TotalBookings int
	NewBusinesses int
	NewClients    int

	PreviousBookings      int
	PreviousNewBusinesses int
	PreviousNewClients    int

	// Whole-dataset counts, not limited to the window.
	RegionBusinesses    int
	NonRegionBusinesses int
	ActiveBusinesses    int
	PendingBusinesses   int
	RejectedBusinesses  int

	BusinessGrowth float64
	ClientGrowth   float64
	BookingGrowth  float64
}

// Report is a snapshot of platform analytics for one timeframe.
type Report struct {
	Timeframe            Timeframe
	Label                string
	GeneratedAt          time.Time
	Window               Window
	Metrics              Metrics
	CategoryDistribution []DistributionEntry
	RegionDistribution   []DistributionEntry
}

// Engine computes reports. It holds only its options and is safe for
// concurrent use.
type Engine struct {
	opts Options
}

// New creates an engine with the given options.
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Compute builds the report for tf as of now.
func (e *Engine) Compute(tf Timeframe, now time.Time, snap Snapshot) (Report, error) {
	window, err := NewWindow(tf, now)
	if err != nil {
		return Report{}, err
	}
	if snap.empty() {
		return Report{}, ErrEmptyDataset
	}

	var m Metrics

	for _, b := range snap.Businesses {
		if window.Contains(b.CreatedAt) {
			m.NewBusinesses++
		}
		if window.ContainsPrevious(b.CreatedAt) {
			m.PreviousNewBusinesses++
		}
		if domain.IsInRegion(b) {
			m.RegionBusinesses++
		} else {
			m.NonRegionBusinesses++
		}
		switch b.Status {
		case domain.StatusActive:
			m.ActiveBusinesses++
		case domain.StatusPending:
			m.PendingBusinesses++
		case domain.StatusRejected:
			m.RejectedBusinesses++
		}
	}

	for _, u := range snap.Users {
		if u.Role != domain.RoleClient {
			continue
		}
		if window.Contains(u.CreatedAt) {
			m.NewClients++
		}
		if window.ContainsPrevious(u.CreatedAt) {
			m.PreviousNewClients++
		}
	}

	for _, bk := range snap.Bookings {
		if window.Contains(bk.OccursAt) {
			m.TotalBookings++
		}
		if window.ContainsPrevious(bk.OccursAt) {
			m.PreviousBookings++
		}
	}

	m.BusinessGrowth = GrowthRate(m.NewBusinesses, m.PreviousNewBusinesses)
	m.ClientGrowth = GrowthRate(m.NewClients, m.PreviousNewClients)
	m.BookingGrowth = GrowthRate(m.TotalBookings, m.PreviousBookings)

	return Report{
		Timeframe:            tf,
		Label:                tf.Label(),
		GeneratedAt:          now,
		Window:               window,
		Metrics:              m,
		CategoryDistribution: CategoryDistribution(snap.Businesses, e.opts.TopCategories),
		RegionDistribution:   RegionDistribution(snap.Businesses),
	}, nil
}

// GrowthRate is the percentage change from previous to current. A zero
// base yields 100 when there is any current activity and 0 otherwise.
func GrowthRate(current, previous int) float64 {
	switch {
	case previous > 0:
		return float64(current-previous) / float64(previous) * 100
	case current > 0:
		return 100
	default:
		return 0
	}
}
