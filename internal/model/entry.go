package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EntryStore defines persistence operations for calendar entries.
// Update and delete only touch rows owned by the given owner.
type EntryStore interface {
	Create(ctx context.Context, entry Entry) (Entry, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Entry, error)
	UpdateOwned(ctx context.Context, entry Entry) (Entry, error)
	DeleteOwned(ctx context.Context, ownerID, id uuid.UUID) error
}

// Entry is a dated calendar note owned by exactly one user.
type Entry struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Email       string
	Date        time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EntryParams carries raw entry fields as submitted by a client.
type EntryParams struct {
	Email       string
	Date        string
	Description string
}
