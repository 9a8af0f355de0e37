package mocks

import (
	context "context"

	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// TokenService is a mock type for the TokenService type
type TokenService struct {
	mock.Mock
}

func (_m *TokenService) GetUserID(ctx context.Context, token string) (uuid.UUID, error) {
	ret := _m.Called(ctx, token)
	return ret.Get(0).(uuid.UUID), ret.Error(1)
}

// NewTokenService creates a new instance of TokenService. It also registers a cleanup function to assert the mocks expectations.
func NewTokenService(t testingT) *TokenService {
	m := &TokenService{}
	register(&m.Mock, t)
	return m
}
