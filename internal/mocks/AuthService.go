package mocks

import (
	context "context"

	model "github.com/dtroode/gocalendar/internal/model"
	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// AuthService is a mock type for the AuthService type
type AuthService struct {
	mock.Mock
}

func (_m *AuthService) Register(ctx context.Context, email string, password string) (model.AuthResult, error) {
	ret := _m.Called(ctx, email, password)
	return ret.Get(0).(model.AuthResult), ret.Error(1)
}

func (_m *AuthService) Login(ctx context.Context, email string, password string) (model.AuthResult, error) {
	ret := _m.Called(ctx, email, password)
	return ret.Get(0).(model.AuthResult), ret.Error(1)
}

func (_m *AuthService) Logout(ctx context.Context, userID uuid.UUID) {
	_m.Called(ctx, userID)
}

func (_m *AuthService) Me(ctx context.Context, userID uuid.UUID) (model.User, error) {
	ret := _m.Called(ctx, userID)
	return ret.Get(0).(model.User), ret.Error(1)
}

// NewAuthService creates a new instance of AuthService. It also registers a cleanup function to assert the mocks expectations.
func NewAuthService(t testingT) *AuthService {
	m := &AuthService{}
	register(&m.Mock, t)
	return m
}
