package mocks

import (
	model "github.com/dtroode/gocalendar/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// Notifier is a mock type for the Notifier type
type Notifier struct {
	mock.Mock
}

func (_m *Notifier) Notify(n model.Notification) {
	_m.Called(n)
}

// NewNotifier creates a new instance of Notifier. It also registers a cleanup function to assert the mocks expectations.
func NewNotifier(t testingT) *Notifier {
	m := &Notifier{}
	register(&m.Mock, t)
	return m
}
