package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/gocalendar/internal/apperrors"
	"github.com/dtroode/gocalendar/internal/model"
)

const maxBodyBytes = 1 << 20

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type entryRequest struct {
	Email       string `json:"email"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

func (r entryRequest) params() model.EntryParams {
	return model.EntryParams{Email: r.Email, Date: r.Date, Description: r.Description}
}

type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type profileResponse struct {
	ID            uuid.UUID   `json:"id"`
	Email         string      `json:"email"`
	LoginHistory  []time.Time `json:"loginHistory"`
	LogoutHistory []time.Time `json:"logoutHistory"`
	CreatedAt     time.Time   `json:"createdAt"`
}

type authResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
}

type entryResponse struct {
	ID          uuid.UUID `json:"_id"`
	Email       string    `json:"email"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	UserID      uuid.UUID `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type entryEnvelope struct {
	Message string        `json:"message"`
	Entry   entryResponse `json:"entry"`
}

type entriesEnvelope struct {
	Entries []entryResponse `json:"entries"`
}

func toUserResponse(u model.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email}
}

func toProfileResponse(u model.User) profileResponse {
	p := profileResponse{
		ID:            u.ID,
		Email:         u.Email,
		LoginHistory:  u.LoginHistory,
		LogoutHistory: u.LogoutHistory,
		CreatedAt:     u.CreatedAt,
	}
	if p.LoginHistory == nil {
		p.LoginHistory = []time.Time{}
	}
	if p.LogoutHistory == nil {
		p.LogoutHistory = []time.Time{}
	}
	return p
}

func toEntryResponse(e model.Entry) entryResponse {
	return entryResponse{
		ID:          e.ID,
		Email:       e.Email,
		Date:        e.Date,
		Description: e.Description,
		UserID:      e.OwnerID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// decodeJSON reads a single JSON object from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.NewErrValidation("Request body is required")
		}
		return apperrors.NewErrValidation("Invalid request body")
	}
	return nil
}
