package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"anupalan/internal/domain"
	"anupalan/internal/port"
)

// DeclarationInput is the DTO for creating or revising a tax declaration.
type DeclarationInput struct {
	FinancialYear int             `json:"financial_year" binding:"required"`
	Section80C    decimal.Decimal `json:"section_80c"`
	Section80D    decimal.Decimal `json:"section_80d"`
	Section80G    decimal.Decimal `json:"section_80g"`
	Section80E    decimal.Decimal `json:"section_80e"`
	HRAClaim      decimal.Decimal `json:"hra_claim"`
	Submit        bool            `json:"submit"`
}

// DeclarationService defines the tax declaration lifecycle contract.
type DeclarationService interface {
	Upsert(ctx context.Context, tenantID, employeeID uuid.UUID, input DeclarationInput) (*domain.TaxDeclaration, error)
	Get(ctx context.Context, tenantID, employeeID uuid.UUID, financialYear int) (*domain.TaxDeclaration, error)
	Verify(ctx context.Context, tenantID, declarationID, verifiedBy uuid.UUID) error
}

type declarationService struct {
	repo         port.DeclarationRepository
	employeeRepo port.EmployeeRepository
}

// NewDeclarationService creates a new DeclarationService implementation.
func NewDeclarationService(repo port.DeclarationRepository, employeeRepo port.EmployeeRepository) DeclarationService {
	return &declarationService{repo: repo, employeeRepo: employeeRepo}
}

// Upsert creates the declaration for the financial year if none exists, or
// revises it while it is still mutable. Verified declarations are locked.
func (s *declarationService) Upsert(ctx context.Context, tenantID, employeeID uuid.UUID, input DeclarationInput) (*domain.TaxDeclaration, error) {
	if _, err := s.employeeRepo.GetByID(ctx, tenantID, employeeID); err != nil {
		return nil, err
	}

	status := domain.DeclarationDraft
	if input.Submit {
		status = domain.DeclarationSubmitted
	}

	existing, err := s.repo.Get(ctx, tenantID, employeeID, input.FinancialYear)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		decl := &domain.TaxDeclaration{
			TenantID:      tenantID,
			EmployeeID:    employeeID,
			FinancialYear: input.FinancialYear,
			Section80C:    input.Section80C,
			Section80D:    input.Section80D,
			Section80G:    input.Section80G,
			Section80E:    input.Section80E,
			HRAClaim:      input.HRAClaim,
			Status:        status,
		}
		if err := s.repo.Create(ctx, decl); err != nil {
			return nil, err
		}
		return decl, nil
	}

	if existing.Status == domain.DeclarationVerified {
		return nil, domain.ErrDeclarationLocked
	}

	existing.Section80C = input.Section80C
	existing.Section80D = input.Section80D
	existing.Section80G = input.Section80G
	existing.Section80E = input.Section80E
	existing.HRAClaim = input.HRAClaim
	existing.Status = status
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *declarationService) Get(ctx context.Context, tenantID, employeeID uuid.UUID, financialYear int) (*domain.TaxDeclaration, error) {
	return s.repo.Get(ctx, tenantID, employeeID, financialYear)
}

func (s *declarationService) Verify(ctx context.Context, tenantID, declarationID, verifiedBy uuid.UUID) error {
	return s.repo.MarkVerified(ctx, tenantID, declarationID, verifiedBy, time.Now().UTC())
}
