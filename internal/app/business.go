package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

// RegisterInput is the data an owner submits for a new business.
type RegisterInput struct {
	Name         string
	OwnerID      string
	Category     string
	Town         string
	LocationText string
	AddressText  string
	PostalPrefix string
}

// Eligibility is the geographic verdict for one business.
type Eligibility struct {
	BusinessID  string
	InRegion    bool
	RegionLabel string
}

// BusinessService orchestrates business registration and lifecycle operations.
type BusinessService struct {
	repo      domain.BusinessRepository
	publisher domain.NotificationPublisher
	lifecycle *domain.Lifecycle
	audit     domain.AuditRecorder
	opts      options
}

// NewBusinessService creates a service with the given adapters. audit may be nil.
func NewBusinessService(
	repo domain.BusinessRepository,
	publisher domain.NotificationPublisher,
	lifecycle *domain.Lifecycle,
	audit domain.AuditRecorder,
	opts ...Option,
) *BusinessService {
	return &BusinessService{
		repo:      repo,
		publisher: publisher,
		lifecycle: lifecycle,
		audit:     audit,
		opts:      buildOptions(opts),
	}
}

// Register persists a new PENDING business.
func (s *BusinessService) Register(ctx context.Context, in RegisterInput) (domain.Business, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Business{}, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	ownerID := strings.TrimSpace(in.OwnerID)
	if ownerID == "" {
		return domain.Business{}, &domain.ValidationError{Field: "owner_id", Reason: "must not be empty"}
	}

	b := domain.NewBusiness(uuid.NewString(), name, ownerID, s.opts.now())
	b.Category = strings.TrimSpace(in.Category)
	b.Town = strings.TrimSpace(in.Town)
	b.LocationText = strings.TrimSpace(in.LocationText)
	b.AddressText = strings.TrimSpace(in.AddressText)
	b.PostalPrefix = strings.ToUpper(strings.TrimSpace(in.PostalPrefix))

	if err := s.repo.Create(ctx, b); err != nil {
		return domain.Business{}, fmt.Errorf("creating business: %w", err)
	}
	return b, nil
}

// GetByID returns a business by its unique identifier.
func (s *BusinessService) GetByID(ctx context.Context, id string) (domain.Business, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns businesses matching the given filter.
func (s *BusinessService) List(ctx context.Context, filter domain.ListFilter) ([]domain.Business, error) {
	return s.repo.List(ctx, filter)
}

// Eligibility reports whether a business lies in the served region.
func (s *BusinessService) Eligibility(ctx context.Context, id string) (Eligibility, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Eligibility{}, err
	}
	return Eligibility{
		BusinessID:  b.ID,
		InRegion:    domain.IsInRegion(b),
		RegionLabel: domain.RegionLabel(b),
	}, nil
}

// Transition applies a lifecycle command to a business. Commands for the
// same business run one at a time; the stored record is re-read under the
// lock so a stale status can never be transitioned.
//
// Notification delivery is best-effort: once the new state is stored, a
// publish failure is logged and does not fail the transition.
func (s *BusinessService) Transition(ctx context.Context, id string, cmd domain.Command) (domain.Outcome, error) {
	unlock := s.opts.locks.Lock(id)
	defer unlock()

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Outcome{}, err
	}

	out, err := s.lifecycle.Apply(ctx, b, cmd, s.opts.now())
	if err != nil {
		return domain.Outcome{}, err
	}

	if out.Removed {
		if err := s.repo.Delete(ctx, id); err != nil {
			return domain.Outcome{}, fmt.Errorf("deleting business: %w", err)
		}
	} else if err := s.repo.Update(ctx, out.Business); err != nil {
		return domain.Outcome{}, fmt.Errorf("updating business: %w", err)
	}

	for _, n := range out.Notifications {
		if err := s.publisher.Publish(ctx, n); err != nil {
			s.opts.logger.Error("publishing notification",
				zap.String("business_id", id),
				zap.String("type", string(n.Type)),
				zap.Error(err),
			)
		}
	}

	if s.audit != nil {
		s.audit.Record(ctx, out.Audit)
	}

	return out, nil
}
