package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dtroode/gocalendar/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(conn *Connection) *UserRepository {
	return &UserRepository{db: conn.DB}
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	rec := userRecord{
		ID:           user.ID.String(),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrAlreadyExists
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).Where("email = ?", email).Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return toUser(rec)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).Where("id = ?", id.String()).Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	user, err := toUser(rec)
	if err != nil {
		return model.User{}, err
	}

	var events []authEventRecord
	err = r.db.WithContext(ctx).
		Where("user_id = ?", rec.ID).
		Order("occurred_at, id").
		Find(&events).Error
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query auth history: %w", err)
	}

	for _, ev := range events {
		switch model.AuthEventKind(ev.Kind) {
		case model.AuthEventLogin:
			user.LoginHistory = append(user.LoginHistory, ev.OccurredAt)
		case model.AuthEventLogout:
			user.LogoutHistory = append(user.LogoutHistory, ev.OccurredAt)
		}
	}

	return user, nil
}

func (r *UserRepository) AppendAuthEvent(ctx context.Context, userID uuid.UUID, kind model.AuthEventKind, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&userRecord{}).Where("id = ?", userID.String()).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check user: %w", err)
		}
		if count == 0 {
			return model.ErrNotFound
		}

		ev := authEventRecord{UserID: userID.String(), Kind: string(kind), OccurredAt: at}
		if err := tx.Create(&ev).Error; err != nil {
			return fmt.Errorf("failed to append %s event: %w", kind, err)
		}
		return nil
	})
}

func toUser(rec userRecord) (model.User, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to parse user id: %w", err)
	}
	return model.User{
		ID:           id,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}, nil
}
