package mocks

import (
	context "context"

	model "github.com/dtroode/gocalendar/internal/model"
	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// EntryStore is a mock type for the EntryStore type
type EntryStore struct {
	mock.Mock
}

func (_m *EntryStore) Create(ctx context.Context, entry model.Entry) (model.Entry, error) {
	ret := _m.Called(ctx, entry)
	return ret.Get(0).(model.Entry), ret.Error(1)
}

func (_m *EntryStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Entry, error) {
	ret := _m.Called(ctx, ownerID)
	entries, _ := ret.Get(0).([]model.Entry)
	return entries, ret.Error(1)
}

func (_m *EntryStore) UpdateOwned(ctx context.Context, entry model.Entry) (model.Entry, error) {
	ret := _m.Called(ctx, entry)
	return ret.Get(0).(model.Entry), ret.Error(1)
}

func (_m *EntryStore) DeleteOwned(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	ret := _m.Called(ctx, ownerID, id)
	return ret.Error(0)
}

// NewEntryStore creates a new instance of EntryStore. It also registers a cleanup function to assert the mocks expectations.
func NewEntryStore(t testingT) *EntryStore {
	m := &EntryStore{}
	register(&m.Mock, t)
	return m
}
