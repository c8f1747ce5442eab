package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"anupalan/internal/domain"
	"anupalan/internal/port"
)

// MockReportRepo is a mock implementation of port.ReportRepository.
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) PFLines(ctx context.Context, tenantID uuid.UUID, monthYear string) ([]port.ContributionLine, error) {
	args := m.Called(ctx, tenantID, monthYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.ContributionLine), args.Error(1)
}

func (m *MockReportRepo) ESILines(ctx context.Context, tenantID uuid.UUID, monthYear string) ([]port.ContributionLine, error) {
	args := m.Called(ctx, tenantID, monthYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.ContributionLine), args.Error(1)
}

func (m *MockReportRepo) PTLines(ctx context.Context, tenantID uuid.UUID, monthYear string) ([]port.ContributionLine, error) {
	args := m.Called(ctx, tenantID, monthYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.ContributionLine), args.Error(1)
}

func (m *MockReportRepo) Form16Rows(ctx context.Context, tenantID uuid.UUID, financialYear int) ([]domain.Form16Row, error) {
	args := m.Called(ctx, tenantID, financialYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Form16Row), args.Error(1)
}

func (m *MockReportRepo) SaveReport(ctx context.Context, report *domain.ComplianceReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepo) GetReport(ctx context.Context, tenantID, reportID uuid.UUID) (*domain.ComplianceReport, error) {
	args := m.Called(ctx, tenantID, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComplianceReport), args.Error(1)
}

func (m *MockReportRepo) ListReports(ctx context.Context, tenantID uuid.UUID, financialYear int) ([]domain.ComplianceReport, error) {
	args := m.Called(ctx, tenantID, financialYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ComplianceReport), args.Error(1)
}

func (m *MockReportRepo) MarkSubmitted(ctx context.Context, tenantID, reportID uuid.UUID, at time.Time) error {
	args := m.Called(ctx, tenantID, reportID, at)
	return args.Error(0)
}
