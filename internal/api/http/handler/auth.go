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

// AuthService defines user registration, login and logout operations.
type AuthService interface {
	Register(ctx context.Context, email, password string) (model.AuthResult, error)
	Login(ctx context.Context, email, password string) (model.AuthResult, error)
	Logout(ctx context.Context, userID uuid.UUID)
	Me(ctx context.Context, userID uuid.UUID) (model.User, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register creates an account and answers with a token.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	result, err := h.authService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"error", err.Error())
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, authResponse{
		Message: "User registered successfully",
		Token:   result.Token,
		User:    toUserResponse(result.User),
	})
}

// Login verifies credentials and answers with a token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"error", err.Error())
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, authResponse{
		Message: "Login successful",
		Token:   result.Token,
		User:    toUserResponse(result.User),
	})
}

// Logout records a logout event. The token itself stays valid until it expires.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		response.Error(w, apperrors.NewErrMissingAuthorizationToken())
		return
	}

	h.authService.Logout(r.Context(), userID)

	response.JSON(w, http.StatusOK, response.MessageBody{Message: "Logout successful"})
}

// Me returns the caller's profile with auth history.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		response.Error(w, apperrors.NewErrMissingAuthorizationToken())
		return
	}

	user, err := h.authService.Me(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]profileResponse{"user": toProfileResponse(user)})
}
