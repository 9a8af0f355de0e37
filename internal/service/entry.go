package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/gocalendar/internal/apperrors"
	"github.com/dtroode/gocalendar/internal/ics"
	"github.com/dtroode/gocalendar/internal/logger"
	"github.com/dtroode/gocalendar/internal/model"
)

type Entry struct {
	entryStore model.EntryStore
	notifier   model.Notifier
	logger     *logger.Logger
	now        func() time.Time
}

func NewEntry(entryStore model.EntryStore, notifier model.Notifier, logger *logger.Logger) *Entry {
	return &Entry{
		entryStore: entryStore,
		notifier:   notifier,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new entry for ownerID and hands it to the notifier.
func (s *Entry) Create(ctx context.Context, ownerID uuid.UUID, params model.EntryParams) (model.Entry, error) {
	fields, err := validateEntry(params)
	if err != nil {
		return model.Entry{}, err
	}

	now := s.now()
	entry, err := s.entryStore.Create(ctx, model.Entry{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Email:       fields.email,
		Date:        fields.date,
		Description: fields.description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.logger.Error("Entry service: failed to create entry",
			"user_id", ownerID,
			"error", err.Error())
		return model.Entry{}, fmt.Errorf("failed to create entry: %w", err)
	}

	s.notifier.Notify(model.Notification{
		Email:       entry.Email,
		Date:        entry.Date,
		Description: entry.Description,
	})

	s.logger.Info("Entry service: entry created",
		"user_id", ownerID,
		"entry_id", entry.ID)

	return entry, nil
}

// List returns the owner's entries, latest date first.
func (s *Entry) List(ctx context.Context, ownerID uuid.UUID) ([]model.Entry, error) {
	entries, err := s.entryStore.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	return entries, nil
}

// Update overwrites all fields of an entry owned by ownerID.
func (s *Entry) Update(ctx context.Context, ownerID, entryID uuid.UUID, params model.EntryParams) (model.Entry, error) {
	fields, err := validateEntry(params)
	if err != nil {
		return model.Entry{}, err
	}

	entry, err := s.entryStore.UpdateOwned(ctx, model.Entry{
		ID:          entryID,
		OwnerID:     ownerID,
		Email:       fields.email,
		Date:        fields.date,
		Description: fields.description,
		UpdatedAt:   s.now(),
	})
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("Entry service: update of missing or foreign entry",
			"user_id", ownerID,
			"entry_id", entryID)
		return model.Entry{}, apperrors.NewErrEntryNotFound()
	}
	if err != nil {
		return model.Entry{}, fmt.Errorf("failed to update entry: %w", err)
	}

	return entry, nil
}

// Delete removes an entry owned by ownerID.
func (s *Entry) Delete(ctx context.Context, ownerID, entryID uuid.UUID) error {
	err := s.entryStore.DeleteOwned(ctx, ownerID, entryID)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("Entry service: delete of missing or foreign entry",
			"user_id", ownerID,
			"entry_id", entryID)
		return apperrors.NewErrEntryNotFound()
	}
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	s.logger.Info("Entry service: entry deleted",
		"user_id", ownerID,
		"entry_id", entryID)

	return nil
}

// Export renders the owner's entries as an iCalendar document.
func (s *Entry) Export(ctx context.Context, ownerID uuid.UUID) (string, error) {
	entries, err := s.List(ctx, ownerID)
	if err != nil {
		return "", err
	}
	return ics.Export(entries, s.now()), nil
}
