package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

// Compile-time check: BookingRepository implements domain.BookingRepository.
var _ domain.BookingRepository = (*BookingRepository)(nil)

// BookingRepository implements domain.BookingRepository using SQLite.
// Prices are stored as decimal strings to avoid float rounding.
type BookingRepository struct {
	db *sql.DB
}

func (r *BookingRepository) Upsert(ctx context.Context, b domain.Booking) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO bookings (id, business_id, price_at_booking, occurs_at, created_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET business_id = excluded.business_id,
		   price_at_booking = excluded.price_at_booking,
		   occurs_at = excluded.occurs_at,
		   created_at = excluded.created_at`,
		b.ID, b.BusinessID, b.PriceAtBooking.String(), formatTime(b.OccursAt), formatTime(b.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, business_id, price_at_booking, occurs_at, created_at FROM bookings ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		var price, occursAt, createdAt string
		if err := rows.Scan(&b.ID, &b.BusinessID, &price, &occursAt, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning booking row: %w", err)
		}
		if b.PriceAtBooking, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("parsing booking price: %w", err)
		}
		if b.OccursAt, err = parseTime(occursAt); err != nil {
			return nil, fmt.Errorf("parsing booking occurs_at: %w", err)
		}
		if b.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing booking created_at: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}
