package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"anupalan/internal/domain"
)

// MockComplianceRepo is a mock implementation of port.ComplianceRepository.
type MockComplianceRepo struct {
	mock.Mock
}

func (m *MockComplianceRepo) ReplacePFRecord(ctx context.Context, rec *domain.ProvidentFundRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockComplianceRepo) ReplaceESIRecord(ctx context.Context, rec *domain.ESIRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockComplianceRepo) ReplaceIncomeTaxRecord(ctx context.Context, rec *domain.IncomeTaxRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockComplianceRepo) ReplacePTRecord(ctx context.Context, rec *domain.ProfessionalTaxRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockComplianceRepo) GetPFRecord(ctx context.Context, tenantID, employeeID uuid.UUID, monthYear string) (*domain.ProvidentFundRecord, error) {
	args := m.Called(ctx, tenantID, employeeID, monthYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProvidentFundRecord), args.Error(1)
}

func (m *MockComplianceRepo) GetIncomeTaxRecord(ctx context.Context, tenantID, employeeID uuid.UUID, financialYear int) (*domain.IncomeTaxRecord, error) {
	args := m.Called(ctx, tenantID, employeeID, financialYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeTaxRecord), args.Error(1)
}

func (m *MockComplianceRepo) PFBalance(ctx context.Context, tenantID, employeeID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, tenantID, employeeID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockComplianceRepo) ClosePF(ctx context.Context, tenantID, employeeID uuid.UUID) error {
	args := m.Called(ctx, tenantID, employeeID)
	return args.Error(0)
}

func (m *MockComplianceRepo) CreateWithdrawal(ctx context.Context, w *domain.PFWithdrawal) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockComplianceRepo) ListWithdrawals(ctx context.Context, tenantID, employeeID uuid.UUID) ([]domain.PFWithdrawal, error) {
	args := m.Called(ctx, tenantID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PFWithdrawal), args.Error(1)
}
