package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dtroode/gocalendar/internal/model"
)

var _ model.EntryStore = (*EntryRepository)(nil)

type EntryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(conn *Connection) *EntryRepository {
	return &EntryRepository{db: conn.DB}
}

func (r *EntryRepository) Create(ctx context.Context, entry model.Entry) (model.Entry, error) {
	rec := fromEntry(entry)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return model.Entry{}, fmt.Errorf("failed to create entry: %w", err)
	}
	return entry, nil
}

func (r *EntryRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Entry, error) {
	var recs []entryRecord
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID.String()).
		Order("date DESC, created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	entries := make([]model.Entry, 0, len(recs))
	for _, rec := range recs {
		e, err := toEntry(rec)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *EntryRepository) UpdateOwned(ctx context.Context, entry model.Entry) (model.Entry, error) {
	var rec entryRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entryRecord{}).
			Where("id = ? AND owner_id = ?", entry.ID.String(), entry.OwnerID.String()).
			Updates(map[string]any{
				"email":       entry.Email,
				"date":        entry.Date,
				"description": entry.Description,
				"updated_at":  entry.UpdatedAt,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to update entry: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return model.ErrNotFound
		}
		if err := tx.Where("id = ?", entry.ID.String()).Take(&rec).Error; err != nil {
			return fmt.Errorf("failed to reload entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Entry{}, err
	}

	return toEntry(rec)
}

func (r *EntryRepository) DeleteOwned(ctx context.Context, ownerID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id.String(), ownerID.String()).
		Delete(&entryRecord{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func fromEntry(e model.Entry) entryRecord {
	return entryRecord{
		ID:          e.ID.String(),
		OwnerID:     e.OwnerID.String(),
		Email:       e.Email,
		Date:        e.Date.UTC(),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toEntry(rec entryRecord) (model.Entry, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return model.Entry{}, fmt.Errorf("failed to parse entry id: %w", err)
	}
	ownerID, err := uuid.Parse(rec.OwnerID)
	if err != nil {
		return model.Entry{}, fmt.Errorf("failed to parse owner id: %w", err)
	}
	return model.Entry{
		ID:          id,
		OwnerID:     ownerID,
		Email:       rec.Email,
		Date:        rec.Date.UTC(),
		Description: rec.Description,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}, nil
}
