package mocks

import mock "github.com/stretchr/testify/mock"

// PasswordHasher is a mock type for the PasswordHasher type
type PasswordHasher struct {
	mock.Mock
}

func (_m *PasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)
	return ret.String(0), ret.Error(1)
}

func (_m *PasswordHasher) Compare(hash string, password string) bool {
	ret := _m.Called(hash, password)
	return ret.Bool(0)
}

// NewPasswordHasher creates a new instance of PasswordHasher. It also registers a cleanup function to assert the mocks expectations.
func NewPasswordHasher(t testingT) *PasswordHasher {
	m := &PasswordHasher{}
	register(&m.Mock, t)
	return m
}
