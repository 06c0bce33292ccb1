package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

// ImportBatch is a set of raw records in any of the accepted legacy shapes.
type ImportBatch struct {
	Businesses []domain.RawBusiness
	Users      []domain.RawUser
	Bookings   []domain.RawBooking
}

// ImportIssue describes a record that was not stored.
type ImportIssue struct {
	Kind   string
	ID     string
	Reason string
}

// ImportResult counts stored records and lists skipped ones.
type ImportResult struct {
	Businesses int
	Users      int
	Bookings   int
	Skipped    []ImportIssue
}

// ImportService normalizes raw records and stores them.
type ImportService struct {
	businesses domain.BusinessRepository
	users      domain.UserRepository
	bookings   domain.BookingRepository
	opts       options
}

// NewImportService creates an import service over the given repositories.
func NewImportService(
	businesses domain.BusinessRepository,
	users domain.UserRepository,
	bookings domain.BookingRepository,
	opts ...Option,
) *ImportService {
	return &ImportService{
		businesses: businesses,
		users:      users,
		bookings:   bookings,
		opts:       buildOptions(opts),
	}
}

// Import stores every valid record of the batch. Invalid records and
// businesses that were previously removed are skipped and reported. A
// business that already exists keeps its stored lifecycle state; only its
// descriptive fields are refreshed, since status changes go through
// BusinessService.Transition. Storage failures abort the import.
func (s *ImportService) Import(ctx context.Context, batch ImportBatch) (ImportResult, error) {
	var res ImportResult

	for _, raw := range batch.Businesses {
		b, err := raw.Normalize()
		if err != nil {
			res.skip("business", raw.ID, err)
			continue
		}

		err = s.storeBusiness(ctx, b)
		switch {
		case errors.Is(err, domain.ErrBusinessRemoved):
			res.skip("business", b.ID, err)
			continue
		case err != nil:
			return res, fmt.Errorf("storing business %s: %w", b.ID, err)
		}
		res.Businesses++
	}

	for _, raw := range batch.Users {
		u, err := raw.Normalize()
		if err != nil {
			res.skip("user", raw.ID, err)
			continue
		}
		if err := s.users.Upsert(ctx, u); err != nil {
			return res, fmt.Errorf("storing user %s: %w", u.ID, err)
		}
		res.Users++
	}

	for _, raw := range batch.Bookings {
		bk, err := raw.Normalize()
		if err != nil {
			res.skip("booking", raw.ID, err)
			continue
		}
		if err := s.bookings.Upsert(ctx, bk); err != nil {
			return res, fmt.Errorf("storing booking %s: %w", bk.ID, err)
		}
		res.Bookings++
	}

	s.opts.logger.Info("import finished",
		zap.Int("businesses", res.Businesses),
		zap.Int("users", res.Users),
		zap.Int("bookings", res.Bookings),
		zap.Int("skipped", len(res.Skipped)),
	)
	return res, nil
}

// storeBusiness creates b, or refreshes the descriptive fields of the
// stored business with the same id under the per-business lock.
func (s *ImportService) storeBusiness(ctx context.Context, b domain.Business) error {
	unlock := s.opts.locks.Lock(b.ID)
	defer unlock()

	err := s.businesses.Create(ctx, b)
	if !errors.Is(err, domain.ErrBusinessExists) {
		return err
	}

	stored, err := s.businesses.GetByID(ctx, b.ID)
	if err != nil {
		return err
	}
	if b.Status != stored.Status {
		s.opts.logger.Info("import kept stored status",
			zap.String("business_id", b.ID),
			zap.String("stored", string(stored.Status)),
			zap.String("imported", string(b.Status)),
		)
	}

	stored.Name = b.Name
	stored.Category = b.Category
	stored.Town = b.Town
	stored.LocationText = b.LocationText
	stored.AddressText = b.AddressText
	stored.PostalPrefix = b.PostalPrefix
	stored.UpdatedAt = s.opts.now()

	return s.businesses.Update(ctx, stored)
}

func (r *ImportResult) skip(kind, id string, err error) {
	r.Skipped = append(r.Skipped, ImportIssue{Kind: kind, ID: id, Reason: err.Error()})
}
