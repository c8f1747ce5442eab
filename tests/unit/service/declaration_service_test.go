package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"anupalan/internal/domain"
	"anupalan/internal/service"
	"anupalan/mocks"
)

func TestDeclarationService_Upsert_CreatesDraft(t *testing.T) {
	repo := new(mocks.MockDeclarationRepo)
	employeeRepo := new(mocks.MockEmployeeRepo)
	svc := service.NewDeclarationService(repo, employeeRepo)

	tenantID, employeeID := uuid.New(), uuid.New()
	employeeRepo.On("GetByID", mock.Anything, tenantID, employeeID).Return(&domain.Employee{ID: employeeID}, nil)
	repo.On("Get", mock.Anything, tenantID, employeeID, 2024).Return(nil, domain.ErrNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.TaxDeclaration")).Return(nil)

	decl, err := svc.Upsert(context.Background(), tenantID, employeeID, service.DeclarationInput{
		FinancialYear: 2024,
		Section80C:    decimal.NewFromInt(150000),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.DeclarationDraft, decl.Status)
	assert.True(t, decl.Section80C.Equal(decimal.NewFromInt(150000)))
}

func TestDeclarationService_Upsert_SubmitFlagSetsStatus(t *testing.T) {
	repo := new(mocks.MockDeclarationRepo)
	employeeRepo := new(mocks.MockEmployeeRepo)
	svc := service.NewDeclarationService(repo, employeeRepo)

	tenantID, employeeID := uuid.New(), uuid.New()
	employeeRepo.On("GetByID", mock.Anything, tenantID, employeeID).Return(&domain.Employee{ID: employeeID}, nil)
	repo.On("Get", mock.Anything, tenantID, employeeID, 2024).Return(nil, domain.ErrNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.TaxDeclaration")).Return(nil)

	decl, err := svc.Upsert(context.Background(), tenantID, employeeID, service.DeclarationInput{
		FinancialYear: 2024,
		Submit:        true,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.DeclarationSubmitted, decl.Status)
}

func TestDeclarationService_Upsert_RevisesExisting(t *testing.T) {
	repo := new(mocks.MockDeclarationRepo)
	employeeRepo := new(mocks.MockEmployeeRepo)
	svc := service.NewDeclarationService(repo, employeeRepo)

	tenantID, employeeID := uuid.New(), uuid.New()
	employeeRepo.On("GetByID", mock.Anything, tenantID, employeeID).Return(&domain.Employee{ID: employeeID}, nil)
	repo.On("Get", mock.Anything, tenantID, employeeID, 2024).Return(&domain.TaxDeclaration{
		ID:            uuid.New(),
		TenantID:      tenantID,
		EmployeeID:    employeeID,
		FinancialYear: 2024,
		Section80C:    decimal.NewFromInt(100000),
		Status:        domain.DeclarationDraft,
	}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.TaxDeclaration")).Return(nil)

	decl, err := svc.Upsert(context.Background(), tenantID, employeeID, service.DeclarationInput{
		FinancialYear: 2024,
		Section80C:    decimal.NewFromInt(150000),
		Submit:        true,
	})

	assert.NoError(t, err)
	assert.True(t, decl.Section80C.Equal(decimal.NewFromInt(150000)))
	assert.Equal(t, domain.DeclarationSubmitted, decl.Status)
}

func TestDeclarationService_Upsert_VerifiedIsLocked(t *testing.T) {
	repo := new(mocks.MockDeclarationRepo)
	employeeRepo := new(mocks.MockEmployeeRepo)
	svc := service.NewDeclarationService(repo, employeeRepo)

	tenantID, employeeID := uuid.New(), uuid.New()
	employeeRepo.On("GetByID", mock.Anything, tenantID, employeeID).Return(&domain.Employee{ID: employeeID}, nil)
	repo.On("Get", mock.Anything, tenantID, employeeID, 2024).Return(&domain.TaxDeclaration{
		ID:     uuid.New(),
		Status: domain.DeclarationVerified,
	}, nil)

	decl, err := svc.Upsert(context.Background(), tenantID, employeeID, service.DeclarationInput{
		FinancialYear: 2024,
		Section80C:    decimal.NewFromInt(150000),
	})

	assert.Nil(t, decl)
	assert.ErrorIs(t, err, domain.ErrDeclarationLocked)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeclarationService_Verify_DelegatesWithTimestamp(t *testing.T) {
	repo := new(mocks.MockDeclarationRepo)
	svc := service.NewDeclarationService(repo, new(mocks.MockEmployeeRepo))

	tenantID, declID, verifier := uuid.New(), uuid.New(), uuid.New()
	repo.On("MarkVerified", mock.Anything, tenantID, declID, verifier, mock.AnythingOfType("time.Time")).Return(nil)

	assert.NoError(t, svc.Verify(context.Background(), tenantID, declID, verifier))
	repo.AssertExpectations(t)
}
