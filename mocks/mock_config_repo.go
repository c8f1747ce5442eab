package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"anupalan/internal/domain"
)

// MockConfigRepo is a mock implementation of port.ConfigRepository.
type MockConfigRepo struct {
	mock.Mock
}

func (m *MockConfigRepo) Insert(ctx context.Context, cfg *domain.StatutoryConfiguration) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *MockConfigRepo) ListActive(ctx context.Context, tenantID uuid.UUID) ([]domain.StatutoryConfiguration, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatutoryConfiguration), args.Error(1)
}

func (m *MockConfigRepo) ListByKey(ctx context.Context, tenantID uuid.UUID, key string) ([]domain.StatutoryConfiguration, error) {
	args := m.Called(ctx, tenantID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatutoryConfiguration), args.Error(1)
}

func (m *MockConfigRepo) Deactivate(ctx context.Context, tenantID, configID uuid.UUID) error {
	args := m.Called(ctx, tenantID, configID)
	return args.Error(0)
}
