package context

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/gocalendar/internal/model"
)

type contextKey string

const userIDKey contextKey = "user_id"

var _ model.ContextManager = (*Manager)(nil)

// Manager keeps the authenticated user ID in request contexts.
type Manager struct{}

// NewManager creates a new context manager.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserIDToContext returns a copy of ctx carrying userID.
func (m *Manager) SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext returns the user ID stored by SetUserIDToContext.
// A missing or nil ID reports false.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
