package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"anupalan/internal/domain"
	"anupalan/internal/port"
)

// CreateEmployeeInput is the DTO for onboarding an employee.
type CreateEmployeeInput struct {
	Code        string           `json:"code" binding:"required"`
	FullName    string           `json:"full_name" binding:"required"`
	Email       string           `json:"email" binding:"required,email"`
	PAN         string           `json:"pan" binding:"required,len=10"`
	StateCode   string           `json:"state_code" binding:"required,len=2,uppercase"`
	TaxRegime   domain.TaxRegime `json:"tax_regime" binding:"required,oneof=old new"`
	JoiningDate time.Time        `json:"joining_date" binding:"required"`
}

// UpdateEmployeeInput is the DTO for updating an employee.
type UpdateEmployeeInput struct {
	FullName  *string           `json:"full_name"`
	Email     *string           `json:"email"`
	PAN       *string           `json:"pan"`
	StateCode *string           `json:"state_code"`
	TaxRegime *domain.TaxRegime `json:"tax_regime"`
	ExitDate  *time.Time        `json:"exit_date"`
}

// CompensationInput is the DTO for recording a new wage structure version.
type CompensationInput struct {
	BasicSalary        decimal.Decimal `json:"basic_salary" binding:"required"`
	DearnessAllowance  decimal.Decimal `json:"dearness_allowance"`
	HouseRentAllowance decimal.Decimal `json:"house_rent_allowance"`
	SpecialAllowance   decimal.Decimal `json:"special_allowance"`
	OtherAllowance     decimal.Decimal `json:"other_allowance"`
	EffectiveFrom      time.Time       `json:"effective_from" binding:"required"`
}

// EmployeeService defines the employee management contract.
type EmployeeService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input CreateEmployeeInput) (*domain.Employee, error)
	GetByID(ctx context.Context, tenantID, employeeID uuid.UUID) (*domain.Employee, error)
	ListActive(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Employee, int, error)
	Update(ctx context.Context, tenantID, employeeID uuid.UUID, input UpdateEmployeeInput) (*domain.Employee, error)
	Deactivate(ctx context.Context, tenantID, employeeID uuid.UUID) error

	AddCompensation(ctx context.Context, tenantID, employeeID uuid.UUID, input CompensationInput) (*domain.CompensationStructure, error)
	GetEffectiveCompensation(ctx context.Context, tenantID, employeeID uuid.UUID, asOf time.Time) (*domain.CompensationStructure, error)
	CompensationHistory(ctx context.Context, tenantID, employeeID uuid.UUID) ([]domain.CompensationStructure, error)
}

type employeeService struct {
	employeeRepo port.EmployeeRepository
	compRepo     port.CompensationRepository
}

// NewEmployeeService creates a new EmployeeService implementation.
func NewEmployeeService(employeeRepo port.EmployeeRepository, compRepo port.CompensationRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo, compRepo: compRepo}
}

func (s *employeeService) Create(ctx context.Context, tenantID uuid.UUID, input CreateEmployeeInput) (*domain.Employee, error) {
	employee := &domain.Employee{
		TenantID:    tenantID,
		Code:        input.Code,
		FullName:    input.FullName,
		Email:       input.Email,
		PAN:         input.PAN,
		StateCode:   input.StateCode,
		TaxRegime:   input.TaxRegime,
		JoiningDate: input.JoiningDate,
		IsActive:    true,
	}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) GetByID(ctx context.Context, tenantID, employeeID uuid.UUID) (*domain.Employee, error) {
	return s.employeeRepo.GetByID(ctx, tenantID, employeeID)
}

func (s *employeeService) ListActive(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Employee, int, error) {
	return s.employeeRepo.ListActive(ctx, tenantID, offset, limit)
}

func (s *employeeService) Update(ctx context.Context, tenantID, employeeID uuid.UUID, input UpdateEmployeeInput) (*domain.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, tenantID, employeeID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		employee.FullName = *input.FullName
	}
	if input.Email != nil {
		employee.Email = *input.Email
	}
	if input.PAN != nil {
		employee.PAN = *input.PAN
	}
	if input.StateCode != nil {
		employee.StateCode = *input.StateCode
	}
	if input.TaxRegime != nil {
		employee.TaxRegime = *input.TaxRegime
	}
	if input.ExitDate != nil {
		employee.ExitDate = input.ExitDate
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) Deactivate(ctx context.Context, tenantID, employeeID uuid.UUID) error {
	return s.employeeRepo.Deactivate(ctx, tenantID, employeeID)
}

func (s *employeeService) AddCompensation(ctx context.Context, tenantID, employeeID uuid.UUID, input CompensationInput) (*domain.CompensationStructure, error) {
	// Employee must exist in this tenant before a wage structure is attached.
	if _, err := s.employeeRepo.GetByID(ctx, tenantID, employeeID); err != nil {
		return nil, err
	}

	comp := &domain.CompensationStructure{
		TenantID:           tenantID,
		EmployeeID:         employeeID,
		BasicSalary:        input.BasicSalary,
		DearnessAllowance:  input.DearnessAllowance,
		HouseRentAllowance: input.HouseRentAllowance,
		SpecialAllowance:   input.SpecialAllowance,
		OtherAllowance:     input.OtherAllowance,
		EffectiveFrom:      input.EffectiveFrom,
	}
	if err := s.compRepo.Create(ctx, comp); err != nil {
		return nil, err
	}
	return comp, nil
}

func (s *employeeService) GetEffectiveCompensation(ctx context.Context, tenantID, employeeID uuid.UUID, asOf time.Time) (*domain.CompensationStructure, error) {
	return s.compRepo.GetEffective(ctx, tenantID, employeeID, asOf)
}

func (s *employeeService) CompensationHistory(ctx context.Context, tenantID, employeeID uuid.UUID) ([]domain.CompensationStructure, error) {
	return s.compRepo.ListByEmployee(ctx, tenantID, employeeID)
}
