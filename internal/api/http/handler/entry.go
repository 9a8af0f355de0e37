package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/gocalendar/internal/api/http/response"
	"github.com/dtroode/gocalendar/internal/apperrors"
	"github.com/dtroode/gocalendar/internal/logger"
	"github.com/dtroode/gocalendar/internal/model"
)

// EntryService defines operations on the caller's calendar entries.
type EntryService interface {
	Create(ctx context.Context, ownerID uuid.UUID, params model.EntryParams) (model.Entry, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Entry, error)
	Update(ctx context.Context, ownerID, entryID uuid.UUID, params model.EntryParams) (model.Entry, error)
	Delete(ctx context.Context, ownerID, entryID uuid.UUID) error
	Export(ctx context.Context, ownerID uuid.UUID) (string, error)
}

// Entry handles HTTP endpoints for calendar entries.
type Entry struct {
	entryService   EntryService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewEntry creates a new Entry handler.
func NewEntry(entryService EntryService, contextManager model.ContextManager, logger *logger.Logger) *Entry {
	return &Entry{
		entryService:   entryService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Entry) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req entryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	entry, err := h.entryService.Create(r.Context(), userID, req.params())
	if err != nil {
		h.logError("create", userID, err)
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, entryEnvelope{
		Message: "Entry created successfully",
		Entry:   toEntryResponse(entry),
	})
}

func (h *Entry) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	entries, err := h.entryService.List(r.Context(), userID)
	if err != nil {
		h.logError("list", userID, err)
		handleError(w, err)
		return
	}

	resp := entriesEnvelope{Entries: make([]entryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, toEntryResponse(e))
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *Entry) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	// Unparseable IDs cannot name an existing entry.
	entryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, apperrors.NewErrEntryNotFound())
		return
	}

	var req entryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	entry, err := h.entryService.Update(r.Context(), userID, entryID, req.params())
	if err != nil {
		h.logError("update", userID, err)
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, entryEnvelope{
		Message: "Entry updated successfully",
		Entry:   toEntryResponse(entry),
	})
}

func (h *Entry) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	entryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, apperrors.NewErrEntryNotFound())
		return
	}

	if err := h.entryService.Delete(r.Context(), userID, entryID); err != nil {
		h.logError("delete", userID, err)
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageBody{Message: "Entry deleted successfully"})
}

// Export serves the caller's entries as an iCalendar file.
func (h *Entry) Export(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	doc, err := h.entryService.Export(r.Context(), userID)
	if err != nil {
		h.logError("export", userID, err)
		handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="calendar.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

func (h *Entry) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		response.Error(w, apperrors.NewErrMissingAuthorizationToken())
	}
	return userID, ok
}

func (h *Entry) logError(op string, userID uuid.UUID, err error) {
	if _, ok := apperrors.As(err); ok {
		h.logger.Debug("Entry handler: request rejected",
			"op", op,
			"user_id", userID,
			"error", err.Error())
		return
	}
	h.logger.Error("Entry handler: request failed",
		"op", op,
		"user_id", userID,
		"error", err.Error())
}
