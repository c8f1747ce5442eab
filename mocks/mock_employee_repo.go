package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"anupalan/internal/domain"
)

// MockEmployeeRepo is a mock implementation of port.EmployeeRepository.
type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepo) GetByID(ctx context.Context, tenantID, employeeID uuid.UUID) (*domain.Employee, error) {
	args := m.Called(ctx, tenantID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepo) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*domain.Employee, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepo) ListActive(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Employee, int, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Employee), args.Int(1), args.Error(2)
}

func (m *MockEmployeeRepo) Update(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepo) Deactivate(ctx context.Context, tenantID, employeeID uuid.UUID) error {
	args := m.Called(ctx, tenantID, employeeID)
	return args.Error(0)
}

// MockCompensationRepo is a mock implementation of port.CompensationRepository.
type MockCompensationRepo struct {
	mock.Mock
}

func (m *MockCompensationRepo) Create(ctx context.Context, comp *domain.CompensationStructure) error {
	args := m.Called(ctx, comp)
	return args.Error(0)
}

func (m *MockCompensationRepo) GetEffective(ctx context.Context, tenantID, employeeID uuid.UUID, asOf time.Time) (*domain.CompensationStructure, error) {
	args := m.Called(ctx, tenantID, employeeID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompensationStructure), args.Error(1)
}

func (m *MockCompensationRepo) ListByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) ([]domain.CompensationStructure, error) {
	args := m.Called(ctx, tenantID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompensationStructure), args.Error(1)
}
