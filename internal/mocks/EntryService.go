package mocks

import (
	context "context"

	model "github.com/dtroode/gocalendar/internal/model"
	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// EntryService is a mock type for the EntryService type
type EntryService struct {
	mock.Mock
}

func (_m *EntryService) Create(ctx context.Context, ownerID uuid.UUID, params model.EntryParams) (model.Entry, error) {
	ret := _m.Called(ctx, ownerID, params)
	return ret.Get(0).(model.Entry), ret.Error(1)
}

func (_m *EntryService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Entry, error) {
	ret := _m.Called(ctx, ownerID)
	entries, _ := ret.Get(0).([]model.Entry)
	return entries, ret.Error(1)
}

func (_m *EntryService) Update(ctx context.Context, ownerID uuid.UUID, entryID uuid.UUID, params model.EntryParams) (model.Entry, error) {
	ret := _m.Called(ctx, ownerID, entryID, params)
	return ret.Get(0).(model.Entry), ret.Error(1)
}

func (_m *EntryService) Delete(ctx context.Context, ownerID uuid.UUID, entryID uuid.UUID) error {
	ret := _m.Called(ctx, ownerID, entryID)
	return ret.Error(0)
}

func (_m *EntryService) Export(ctx context.Context, ownerID uuid.UUID) (string, error) {
	ret := _m.Called(ctx, ownerID)
	return ret.String(0), ret.Error(1)
}

// NewEntryService creates a new instance of EntryService. It also registers a cleanup function to assert the mocks expectations.
func NewEntryService(t testingT) *EntryService {
	m := &EntryService{}
	register(&m.Mock, t)
	return m
}
