package app_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

var now = time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

// --- Mocks ---

type mockRepo struct {
	mu         sync.Mutex
	businesses map[string]domain.Business
	removed    map[string]bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		businesses: make(map[string]domain.Business),
		removed:    make(map[string]bool),
	}
}

func (m *mockRepo) Create(_ context.Context, b domain.Business) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.removed[b.ID] {
		return domain.ErrBusinessRemoved
	}
	if _, ok := m.businesses[b.ID]; ok {
		return domain.ErrBusinessExists
	}
	m.businesses[b.ID] = b
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id string) (domain.Business, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.businesses[id]
	if !ok {
		return domain.Business{}, domain.ErrBusinessNotFound
	}
	return b, nil
}

func (m *mockRepo) List(_ context.Context, _ domain.ListFilter) ([]domain.Business, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Business, 0, len(m.businesses))
	for _, b := range m.businesses {
		out = append(out, b)
	}
	return out, nil
}

func (m *mockRepo) Update(_ context.Context, b domain.Business) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.businesses[b.ID]; !ok {
		return domain.ErrBusinessNotFound
	}
	m.businesses[b.ID] = b
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.businesses[id]; !ok {
		return domain.ErrBusinessNotFound
	}
	delete(m.businesses, id)
	m.removed[id] = true
	return nil
}

func (m *mockRepo) put(b domain.Business) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.businesses[b.ID] = b
}

type mockPublisher struct {
	mu        sync.Mutex
	published []domain.Notification
	fail      bool
}

func (m *mockPublisher) Publish(_ context.Context, n domain.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return fmt.Errorf("queue unavailable")
	}
	m.published = append(m.published, n)
	return nil
}

type mockAudit struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (m *mockAudit) Record(_ context.Context, e domain.AuditEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
}

type mockUsers struct {
	users map[string]domain.User
	order []string
}

func newMockUsers() *mockUsers { return &mockUsers{users: make(map[string]domain.User)} }

func (m *mockUsers) Upsert(_ context.Context, u domain.User) error {
	if _, ok := m.users[u.ID]; !ok {
		m.order = append(m.order, u.ID)
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUsers) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.users[id])
	}
	return out, nil
}

type mockBookings struct {
	bookings map[string]domain.Booking
	order    []string
}

func newMockBookings() *mockBookings { return &mockBookings{bookings: make(map[string]domain.Booking)} }

func (m *mockBookings) Upsert(_ context.Context, b domain.Booking) error {
	if _, ok := m.bookings[b.ID]; !ok {
		m.order = append(m.order, b.ID)
	}
	m.bookings[b.ID] = b
	return nil
}

func (m *mockBookings) List(_ context.Context) ([]domain.Booking, error) {
	out := make([]domain.Booking, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.bookings[id])
	}
	return out, nil
}

type mockNotifications struct {
	byUser map[string][]domain.Notification
}

func (m *mockNotifications) Create(_ context.Context, n domain.Notification) error {
	m.byUser[n.TargetUserID] = append(m.byUser[n.TargetUserID], n)
	return nil
}

func (m *mockNotifications) ListByUser(_ context.Context, userID string) ([]domain.Notification, error) {
	return m.byUser[userID], nil
}

func carlowBusiness(id string) domain.Business {
	b := domain.NewBusiness(id, "Barrow Barbers", "owner-1", now.AddDate(0, 0, -3))
	b.Category = "Hair"
	b.Town = "Carlow"
	b.PostalPrefix = "R93"
	return b
}

func dublinBusiness(id string) domain.Business {
	b := domain.NewBusiness(id, "Liffey Nails", "owner-2", now.AddDate(0, 0, -3))
	b.Category = "Nails"
	b.Town = "Dublin"
	b.PostalPrefix = "D02"
	return b
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }
