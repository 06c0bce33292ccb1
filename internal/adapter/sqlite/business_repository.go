package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

// Compile-time check: BusinessRepository implements domain.BusinessRepository.
var _ domain.BusinessRepository = (*BusinessRepository)(nil)

// BusinessRepository implements domain.BusinessRepository using SQLite.
type BusinessRepository struct {
	db *sql.DB
}

const businessColumns = `id, name, status, category, town, location_text, address_text, postal_prefix,
	rejection_reason, rejected_at, owner_id, created_at, updated_at`

func (r *BusinessRepository) Create(ctx context.Context, b domain.Business) error {
	var tombstoned int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM business_tombstones WHERE id = ?`, b.ID,
	).Scan(&tombstoned)
	if err != nil {
		return fmt.Errorf("checking tombstones: %w", err)
	}
	if tombstoned > 0 {
		return domain.ErrBusinessRemoved
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO businesses (`+businessColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Name, string(b.Status), b.Category,
		b.Town, b.LocationText, b.AddressText, b.PostalPrefix,
		b.RejectionReason, formatTime(b.RejectedAt), b.OwnerID,
		formatTime(b.CreatedAt), formatTime(b.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrBusinessExists
		}
		return fmt.Errorf("inserting business: %w", err)
	}
	return nil
}

func (r *BusinessRepository) GetByID(ctx context.Context, id string) (domain.Business, error) {
	b, err := scanBusiness(r.db.QueryRowContext(ctx,
		`SELECT `+businessColumns+` FROM businesses WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Business{}, domain.ErrBusinessNotFound
	}
	return b, err
}

func (r *BusinessRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses`
	var args []any

	if filter.Status != nil {
		query += ` WHERE status = ?`
		args = append(args, string(*filter.Status))
	}

	// rowid keeps insertion order stable for equal timestamps.
	query += ` ORDER BY created_at DESC, rowid DESC`

	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	if filter.Offset > 0 {
		if filter.Limit <= 0 {
			query += ` LIMIT -1`
		}
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing businesses: %w", err)
	}
	defer rows.Close()

	businesses := make([]domain.Business, 0)
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, b)
	}

	return businesses, rows.Err()
}

func (r *BusinessRepository) Update(ctx context.Context, b domain.Business) error {
	updatedAt := b.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE businesses SET name = ?, status = ?, category = ?, town = ?, location_text = ?,
		 address_text = ?, postal_prefix = ?, rejection_reason = ?, rejected_at = ?, owner_id = ?, updated_at = ?
		 WHERE id = ?`,
		b.Name, string(b.Status), b.Category, b.Town, b.LocationText,
		b.AddressText, b.PostalPrefix, b.RejectionReason, formatTime(b.RejectedAt), b.OwnerID,
		formatTime(updatedAt), b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating business: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBusinessNotFound
	}

	return nil
}

func (r *BusinessRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning delete: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `DELETE FROM businesses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting business: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBusinessNotFound
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO business_tombstones (id, removed_at) VALUES (?, ?)`,
		id, formatTime(time.Now()),
	); err != nil {
		return fmt.Errorf("recording tombstone: %w", err)
	}

	return tx.Commit()
}

// scanBusiness scans a single business row from QueryRow or Rows.
func scanBusiness(row scanner) (domain.Business, error) {
	var b domain.Business
	var status, rejectedAt, createdAt, updatedAt string

	err := row.Scan(&b.ID, &b.Name, &status, &b.Category,
		&b.Town, &b.LocationText, &b.AddressText, &b.PostalPrefix,
		&b.RejectionReason, &rejectedAt, &b.OwnerID, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Business{}, err
		}
		return domain.Business{}, fmt.Errorf("scanning business: %w", err)
	}

	b.Status = domain.Status(status)
	if b.RejectedAt, err = parseTime(rejectedAt); err != nil {
		return domain.Business{}, fmt.Errorf("parsing rejected_at: %w", err)
	}
	if b.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Business{}, fmt.Errorf("parsing created_at: %w", err)
	}
	if b.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.Business{}, fmt.Errorf("parsing updated_at: %w", err)
	}

	return b, nil
}
