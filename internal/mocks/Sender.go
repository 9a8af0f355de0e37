package mocks

import (
	context "context"

	model "github.com/dtroode/gocalendar/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// Sender is a mock type for the Sender type
type Sender struct {
	mock.Mock
}

func (_m *Sender) Send(ctx context.Context, msg model.MailMessage) error {
	ret := _m.Called(ctx, msg)
	return ret.Error(0)
}

// NewSender creates a new instance of Sender. It also registers a cleanup function to assert the mocks expectations.
func NewSender(t testingT) *Sender {
	m := &Sender{}
	register(&m.Mock, t)
	return m
}
