package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"anupalan/internal/domain"
)

// MockDeclarationRepo is a mock implementation of port.DeclarationRepository.
type MockDeclarationRepo struct {
	mock.Mock
}

func (m *MockDeclarationRepo) Create(ctx context.Context, decl *domain.TaxDeclaration) error {
	args := m.Called(ctx, decl)
	return args.Error(0)
}

func (m *MockDeclarationRepo) Get(ctx context.Context, tenantID, employeeID uuid.UUID, financialYear int) (*domain.TaxDeclaration, error) {
	args := m.Called(ctx, tenantID, employeeID, financialYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxDeclaration), args.Error(1)
}

func (m *MockDeclarationRepo) Update(ctx context.Context, decl *domain.TaxDeclaration) error {
	args := m.Called(ctx, decl)
	return args.Error(0)
}

func (m *MockDeclarationRepo) MarkVerified(ctx context.Context, tenantID, declarationID, verifiedBy uuid.UUID, at time.Time) error {
	args := m.Called(ctx, tenantID, declarationID, verifiedBy, at)
	return args.Error(0)
}
