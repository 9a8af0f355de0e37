package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/gocalendar/internal/apperrors"
	"github.com/dtroode/gocalendar/internal/logger"
	"github.com/dtroode/gocalendar/internal/model"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger
	now          func() time.Time
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Register creates an account and returns a token for it.
func (a *Auth) Register(ctx context.Context, email, password string) (model.AuthResult, error) {
	email = normalizeEmail(email)

	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	if err := validateEmail(email); err != nil {
		return model.AuthResult{}, err
	}
	if password == "" {
		return model.AuthResult{}, apperrors.NewErrValidation("password is required")
	}
	if len(password) > maxPasswordBytes {
		return model.AuthResult{}, apperrors.NewErrValidation("password is too long")
	}

	_, err := a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return model.AuthResult{}, apperrors.NewErrEmailIsTaken()
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.now()
	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		a.logger.Info("Auth service: lost registration race",
			"email", email)
		return model.AuthResult{}, apperrors.NewErrEmailIsTaken()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokenManager.GenerateAccessToken(user.ID)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"email", email,
		"user_id", user.ID)

	return model.AuthResult{Token: token, User: user}, nil
}

// Login verifies credentials, records the login and returns a token.
// Unknown emails and wrong passwords produce the same error.
func (a *Auth) Login(ctx context.Context, email, password string) (model.AuthResult, error) {
	email = normalizeEmail(email)

	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	// user.PasswordHash is empty for unknown emails; Compare still does the work.
	if !a.hasher.Compare(user.PasswordHash, password) || user.ID == uuid.Nil {
		a.logger.Info("Auth service: invalid credentials",
			"email", email)
		return model.AuthResult{}, apperrors.NewErrInvalidCredentials()
	}

	if err := a.userStore.AppendAuthEvent(ctx, user.ID, model.AuthEventLogin, a.now()); err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to record login: %w", err)
	}

	token, err := a.tokenManager.GenerateAccessToken(user.ID)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed successfully",
		"user_id", user.ID)

	return model.AuthResult{Token: token, User: user}, nil
}

// Logout records a logout event. It never fails; tokens stay valid until expiry.
func (a *Auth) Logout(ctx context.Context, userID uuid.UUID) {
	err := a.userStore.AppendAuthEvent(ctx, userID, model.AuthEventLogout, a.now())
	switch {
	case errors.Is(err, model.ErrNotFound):
		a.logger.Info("Auth service: logout for unknown user",
			"user_id", userID)
	case err != nil:
		a.logger.Error("Auth service: failed to record logout",
			"user_id", userID,
			"error", err.Error())
	default:
		a.logger.Info("Auth service: logout recorded",
			"user_id", userID)
	}
}

// GetUserID resolves the user a bearer token was issued to.
func (a *Auth) GetUserID(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := a.tokenManager.ParseAccessToken(token)
	if err != nil {
		a.logger.Debug("Auth service: token rejected",
			"error", err.Error())
		return uuid.Nil, apperrors.NewErrInvalidAuthorizationToken()
	}
	return userID, nil
}

// Me returns the user profile including login and logout history.
func (a *Auth) Me(ctx context.Context, userID uuid.UUID) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apperrors.NewErrUserNotFound()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}
