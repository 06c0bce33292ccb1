package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

// Compile-time check: UserRepository implements domain.UserRepository.
var _ domain.UserRepository = (*UserRepository)(nil)

// UserRepository implements domain.UserRepository using SQLite.
type UserRepository struct {
	db *sql.DB
}

func (r *UserRepository) Upsert(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, role, created_at) VALUES (?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET role = excluded.role, created_at = excluded.created_at`,
		u.ID, string(u.Role), formatTime(u.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting user: %w", err)
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, role, created_at FROM users ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		var role, createdAt string
		if err := rows.Scan(&u.ID, &role, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		u.Role = domain.Role(role)
		if u.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing user created_at: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
