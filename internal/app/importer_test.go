package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/adapter/fsm"
	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/app"
	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

func timePtr(t time.Time) *time.Time { return &t }

func boolPtr(b bool) *bool { return &b }

func TestImport_NormalizesAndStores(t *testing.T) {
	repo, users, bookings := newMockRepo(), newMockUsers(), newMockBookings()
	svc := app.NewImportService(repo, users, bookings)

	created := now.AddDate(0, 0, -2)
	res, err := svc.Import(context.Background(), app.ImportBatch{
		Businesses: []domain.RawBusiness{
			{ID: "b-1", BusinessName: "Barrow Barbers", IsApproved: boolPtr(true), Town: "carlow", RegistrationDate: timePtr(created)},
			{ID: "b-2", Name: "Liffey Nails", Status: "rejected"},
			{ID: "b-3", Status: "SUSPENDED"},
			{Name: "No ID"},
		},
		Users: []domain.RawUser{
			{ID: "u-1", Role: "client", CreatedAt: timePtr(created)},
			{ID: "u-2", Role: "superuser"},
		},
		Bookings: []domain.RawBooking{
			{ID: "k-1", BusinessID: "b-1", Price: price("25.50"), Date: timePtr(created)},
			{ID: "k-2", BusinessID: "b-1", Price: price("-1")},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Businesses != 2 || res.Users != 1 || res.Bookings != 1 {
		t.Errorf("stored = %d/%d/%d, want 2/1/1", res.Businesses, res.Users, res.Bookings)
	}
	if len(res.Skipped) != 4 {
		t.Fatalf("skipped %d records, want 4: %+v", len(res.Skipped), res.Skipped)
	}
	if res.Skipped[0].Kind != "business" || res.Skipped[0].ID != "b-3" {
		t.Errorf("first skipped = %+v", res.Skipped[0])
	}

	b1, err := repo.GetByID(context.Background(), "b-1")
	if err != nil {
		t.Fatalf("b-1 not stored: %v", err)
	}
	if b1.Status != domain.StatusActive || b1.Name != "Barrow Barbers" || !b1.CreatedAt.Equal(created) {
		t.Errorf("unexpected b-1: %+v", b1)
	}

	if got := bookings.bookings["k-1"]; !got.OccursAt.Equal(created) || !got.PriceAtBooking.Equal(price("25.5")) {
		t.Errorf("unexpected booking: %+v", got)
	}
}

func TestImport_RefreshesExistingAndSkipsRemoved(t *testing.T) {
	repo := newMockRepo()
	repo.put(carlowBusiness("b-1"))
	repo.removed["gone"] = true
	svc := app.NewImportService(repo, newMockUsers(), newMockBookings(), app.WithClock(clock))

	res, err := svc.Import(context.Background(), app.ImportBatch{
		Businesses: []domain.RawBusiness{
			{ID: "b-1", Name: "Renamed", Category: "Barber", Town: "carlow"},
			{ID: "gone", Name: "Zombie"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Businesses != 1 {
		t.Errorf("stored = %d, want 1", res.Businesses)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].ID != "gone" {
		t.Errorf("unexpected skipped: %+v", res.Skipped)
	}

	b1, _ := repo.GetByID(context.Background(), "b-1")
	if b1.Name != "Renamed" || b1.Category != "Barber" {
		t.Errorf("b-1 not refreshed: %+v", b1)
	}
	if b1.OwnerID != "owner-1" || !b1.CreatedAt.Equal(now.AddDate(0, 0, -3)) || !b1.UpdatedAt.Equal(now) {
		t.Errorf("b-1 identity or timestamps wrong: %+v", b1)
	}
	if _, err := repo.GetByID(context.Background(), "gone"); !errors.Is(err, domain.ErrBusinessNotFound) {
		t.Errorf("removed business reappeared: %v", err)
	}
}

func TestImport_ExistingBusinessKeepsLifecycleState(t *testing.T) {
	rejected := carlowBusiness("b-rej")
	rejected.Status = domain.StatusRejected
	rejected.RejectionReason = "Missing photos"
	rejected.RejectedAt = now.AddDate(0, 0, -1)

	tests := []struct {
		name   string
		stored domain.Business
		raw    domain.RawBusiness
	}{
		{
			name:   "out-of-region pending stays pending",
			stored: dublinBusiness("b-dub"),
			raw:    domain.RawBusiness{ID: "b-dub", Name: "Liffey Nails", Status: "ACTIVE", Town: "Dublin"},
		},
		{
			name:   "pending is not rejected without a reason",
			stored: carlowBusiness("b-pend"),
			raw:    domain.RawBusiness{ID: "b-pend", Name: "Barrow Barbers", Status: "REJECTED"},
		},
		{
			name:   "rejected keeps its reason",
			stored: rejected,
			raw:    domain.RawBusiness{ID: "b-rej", Name: "Barrow Barbers", IsApproved: boolPtr(true)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo()
			repo.put(tt.stored)
			svc := app.NewImportService(repo, newMockUsers(), newMockBookings(), app.WithClock(clock))

			if _, err := svc.Import(context.Background(), app.ImportBatch{
				Businesses: []domain.RawBusiness{tt.raw},
			}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got, _ := repo.GetByID(context.Background(), tt.stored.ID)
			if got.Status != tt.stored.Status {
				t.Errorf("Status = %q, want %q", got.Status, tt.stored.Status)
			}
			if got.RejectionReason != tt.stored.RejectionReason || !got.RejectedAt.Equal(tt.stored.RejectedAt) {
				t.Errorf("rejection = %q at %v, want %q at %v",
					got.RejectionReason, got.RejectedAt, tt.stored.RejectionReason, tt.stored.RejectedAt)
			}
		})
	}
}

func TestImport_ReimportDoesNotBypassRegionGate(t *testing.T) {
	repo := newMockRepo()
	locks := app.NewKeyedLocks()
	imports := app.NewImportService(repo, newMockUsers(), newMockBookings(), app.WithClock(clock), app.WithLocks(locks))
	businesses := app.NewBusinessService(repo, &mockPublisher{}, domain.NewLifecycle(fsm.New()), &mockAudit{},
		app.WithClock(clock), app.WithLocks(locks))

	for _, status := range []string{"", "ACTIVE"} {
		if _, err := imports.Import(context.Background(), app.ImportBatch{
			Businesses: []domain.RawBusiness{{ID: "b-1", Name: "Liffey Nails", Town: "Dublin", PostalPrefix: "D01", Status: status}},
		}); err != nil {
			t.Fatalf("import %q: %v", status, err)
		}
	}

	_, err := businesses.Transition(context.Background(), "b-1", domain.Command{Event: domain.EventApprove})
	var regionErr *domain.RegionMismatchError
	if !errors.As(err, &regionErr) {
		t.Fatalf("expected RegionMismatchError, got %v", err)
	}
}
