package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockStorageGateway struct {
	mock.Mock
}

func (m *MockStorageGateway) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockStorageGateway) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStorageGateway) Remove(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}
