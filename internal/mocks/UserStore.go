package mocks

import (
	context "context"
	time "time"

	model "github.com/dtroode/gocalendar/internal/model"
	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// UserStore is a mock type for the UserStore type
type UserStore struct {
	mock.Mock
}

func (_m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	ret := _m.Called(ctx, user)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	ret := _m.Called(ctx, email)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *UserStore) AppendAuthEvent(ctx context.Context, userID uuid.UUID, kind model.AuthEventKind, at time.Time) error {
	ret := _m.Called(ctx, userID, kind, at)
	return ret.Error(0)
}

// NewUserStore creates a new instance of UserStore. It also registers a cleanup function to assert the mocks expectations.
func NewUserStore(t testingT) *UserStore {
	m := &UserStore{}
	register(&m.Mock, t)
	return m
}
