package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/gocalendar/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, email, password_hash, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query, user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if hasCode(err, uniqueViolation) {
			return model.User{}, model.ErrAlreadyExists
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT id, email, password_hash, created_at, updated_at
			  FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT id, email, password_hash, created_at, updated_at
			  FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if err := r.loadHistory(ctx, &user); err != nil {
		return model.User{}, err
	}

	return user, nil
}

func (r *UserRepository) AppendAuthEvent(ctx context.Context, userID uuid.UUID, kind model.AuthEventKind, at time.Time) error {
	query := `INSERT INTO auth_events (user_id, kind, occurred_at) VALUES ($1, $2, $3)`

	_, err := r.db.ExecContext(ctx, query, userID, string(kind), at)
	if err != nil {
		if hasCode(err, foreignKeyViolation) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to append %s event: %w", kind, err)
	}

	return nil
}

func (r *UserRepository) loadHistory(ctx context.Context, user *model.User) error {
	query := `SELECT kind, occurred_at FROM auth_events
			  WHERE user_id = $1 ORDER BY occurred_at, id`

	rows, err := r.db.QueryContext(ctx, query, user.ID)
	if err != nil {
		return fmt.Errorf("failed to query auth history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			kind string
			at   time.Time
		)
		if err := rows.Scan(&kind, &at); err != nil {
			return fmt.Errorf("failed to scan auth event: %w", err)
		}
		switch model.AuthEventKind(kind) {
		case model.AuthEventLogin:
			user.LoginHistory = append(user.LoginHistory, at)
		case model.AuthEventLogout:
			user.LogoutHistory = append(user.LogoutHistory, at)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate auth history: %w", err)
	}

	return nil
}

func scanUser(row *sql.Row) (model.User, error) {
	var user model.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}
