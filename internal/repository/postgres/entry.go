package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/gocalendar/internal/model"
)

var _ model.EntryStore = (*EntryRepository)(nil)

const entryColumns = `id, owner_id, email, date, description, created_at, updated_at`

type EntryRepository struct {
	db DBTX
}

func NewEntryRepository(db DBTX) *EntryRepository {
	return &EntryRepository{
		db: db,
	}
}

func (r *EntryRepository) Create(ctx context.Context, entry model.Entry) (model.Entry, error) {
	query := `INSERT INTO calendar_entries (` + entryColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.OwnerID, entry.Email, entry.Date, entry.Description, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return model.Entry{}, fmt.Errorf("failed to create entry: %w", err)
	}

	return entry, nil
}

// ListByOwner returns entries newest date first.
func (r *EntryRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM calendar_entries
			  WHERE owner_id = $1
			  ORDER BY date DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	entries := make([]model.Entry, 0)
	for rows.Next() {
		var e model.Entry
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Email, &e.Date, &e.Description, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return entries, nil
}

// UpdateOwned overwrites email, date and description of the entry matching
// both entry.ID and entry.OwnerID.
func (r *EntryRepository) UpdateOwned(ctx context.Context, entry model.Entry) (model.Entry, error) {
	query := `UPDATE calendar_entries
			  SET email = $3, date = $4, description = $5, updated_at = $6
			  WHERE id = $1 AND owner_id = $2
			  RETURNING ` + entryColumns

	var e model.Entry
	err := r.db.QueryRowContext(ctx, query,
		entry.ID, entry.OwnerID, entry.Email, entry.Date, entry.Description, entry.UpdatedAt,
	).Scan(&e.ID, &e.OwnerID, &e.Email, &e.Date, &e.Description, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Entry{}, model.ErrNotFound
		}
		return model.Entry{}, fmt.Errorf("failed to update entry: %w", err)
	}

	return e, nil
}

func (r *EntryRepository) DeleteOwned(ctx context.Context, ownerID, id uuid.UUID) error {
	query := `DELETE FROM calendar_entries WHERE id = $1 AND owner_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}

	return nil
}
