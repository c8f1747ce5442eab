package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"anupalan/internal/domain"
	"anupalan/internal/port"
	"anupalan/internal/statutory"
)

var twelve = decimal.NewFromInt(12)

// TaxComputeInput is the DTO for running the annual income tax computation.
type TaxComputeInput struct {
	FinancialYear  int             `json:"financial_year" binding:"required"`
	TDSDeducted    decimal.Decimal `json:"tds_deducted"`
	AdvanceTaxPaid decimal.Decimal `json:"advance_tax_paid"`
}

// WithdrawalInput is the DTO for settling a PF withdrawal.
type WithdrawalInput struct {
	WithdrawalType domain.WithdrawalType `json:"withdrawal_type" binding:"required,oneof=retirement resignation medical"`
}

// MonthlyRunSummary reports the outcome of a tenant-wide monthly run.
type MonthlyRunSummary struct {
	MonthYear string   `json:"month_year"`
	Processed int      `json:"processed"`
	Skipped   []string `json:"skipped,omitempty"`
}

// ComplianceService orchestrates the statutory calculations: it loads the
// employee, the wage structure effective at the given date and the resolved
// configuration snapshot, runs the pure calculators, and replaces the stored
// records with the freshly computed results.
type ComplianceService interface {
	ComputePF(ctx context.Context, tenantID, employeeID uuid.UUID, asOf time.Time) (*domain.ProvidentFundRecord, error)
	ComputeESI(ctx context.Context, tenantID, employeeID uuid.UUID, asOf time.Time) (*domain.ESIRecord, error)
	ComputeProfessionalTax(ctx context.Context, tenantID, employeeID uuid.UUID, asOf time.Time) (*domain.ProfessionalTaxRecord, error)
	ComputeIncomeTax(ctx context.Context, tenantID, employeeID uuid.UUID, input TaxComputeInput) (*domain.IncomeTaxRecord, error)
	RunMonthly(ctx context.Context, tenantID uuid.UUID, asOf time.Time) (*MonthlyRunSummary, error)

	GetPFRecord(ctx context.Context, tenantID, employeeID uuid.UUID, monthYear string) (*domain.ProvidentFundRecord, error)
	GetIncomeTaxRecord(ctx context.Context, tenantID, employeeID uuid.UUID, financialYear int) (*domain.IncomeTaxRecord, error)
	PFBalance(ctx context.Context, tenantID, employeeID uuid.UUID) (decimal.Decimal, error)
	Withdraw(ctx context.Context, tenantID, employeeID uuid.UUID, input WithdrawalInput) (*domain.PFWithdrawal, error)
	ListWithdrawals(ctx context.Context, tenantID, employeeID uuid.UUID) ([]domain.PFWithdrawal, error)
}

type complianceService struct {
	employeeRepo    port.EmployeeRepository
	compRepo        port.CompensationRepository
	declarationRepo port.DeclarationRepository
	complianceRepo  port.ComplianceRepository
	configService   ConfigService
}

// NewComplianceService creates a new ComplianceService implementation.
func NewComplianceService(
	employeeRepo port.EmployeeRepository,
	compRepo port.CompensationRepository,
	declarationRepo port.DeclarationRepository,
	complianceRepo port.ComplianceRepository,
	configService ConfigService,
) ComplianceService {
	return &complianceService{
		employeeRepo:    employeeRepo,
		compRepo:        compRepo,
		declarationRepo: declarationRepo,
		complianceRepo:  complianceRepo,
		configService:   configService,
	}
}

func (s *complianceService) ComputePF(ctx context.Context, tenantID, employeeID uuid.UUID, asOf time.Time) (*domain.ProvidentFundRecord, error) {
	comp, snap, err := s.loadInputs(ctx, tenantID, employeeID, asOf)
	if err != nil {
		return nil, err
	}

	ceiling := snap.Ceiling(statutory.KeyPFCeiling, asOf)
	result, err := statutory.ComputePF(comp.BasicSalary, comp.DearnessAllowance, ceiling)
	if err != nil {
		return nil, fmt.Errorf("compliance.ComputePF: %w", err)
	}

	rec := &domain.ProvidentFundRecord{
		TenantID:                tenantID,
		EmployeeID:              employeeID,
		FinancialYear:           statutory.FinancialYearOf(asOf),
		MonthYear:               statutory.MonthYear(asOf),
		PFWages:                 result.PFWages,
		EmployeeContribution:    result.EmployeeContribution,
		EmployerContributionPF:  result.EmployerContributionPF,
		EmployerContributionEPS: result.EmployerContributionEPS,
		AdminCharges:            result.AdminCharges,
		TotalContribution:       result.TotalContribution,
		Status:                  domain.PFStatusActive,
	}
	if err := s.complianceRepo.ReplacePFRecord(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *complianceService) ComputeESI(ctx context.Context, tenantID, employeeID uuid.UUID, asOf time.Time) (*domain.ESIRecord, error) {
	comp, snap, err := s.loadInputs(ctx, tenantID, employeeID, asOf)
	if err != nil {
		return nil, err
	}

	monthly := monthlyGross(comp)
	ceiling := snap.Ceiling(statutory.KeyESICeiling, asOf)
	result, err := statutory.ComputeESI(monthly, ceiling)
	if err != nil {
		return nil, fmt.Errorf("compliance.ComputeESI: %w", err)
	}

	rec := &domain.ESIRecord{
		TenantID:             tenantID,
		EmployeeID:           employeeID,
		FinancialYear:        statutory.FinancialYearOf(asOf),
		MonthYear:            statutory.MonthYear(asOf),
		ESIWages:             result.ESIWages,
		EmployeeContribution: result.EmployeeContribution,
		EmployerContribution: result.EmployerContribution,
		TotalContribution:    result.TotalContribution,
		IsEligible:           result.IsEligible,
	}
	if err := s.complianceRepo.ReplaceESIRecord(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *complianceService) ComputeProfessionalTax(ctx context.Context, tenantID, employeeID uuid.UUID, asOf time.Time) (*domain.ProfessionalTaxRecord, error) {
	employee, err := s.employeeRepo.GetByID(ctx, tenantID, employeeID)
	if err != nil {
		return nil, err
	}
	comp, snap, err := s.loadInputs(ctx, tenantID, employeeID, asOf)
	if err != nil {
		return nil, err
	}

	fy := statutory.FinancialYearOf(asOf)
	slabs, _ := snap.PTSlabs(employee.StateCode, fy, asOf)
	result, err := statutory.ComputeProfessionalTax(employee.StateCode, monthlyGross(comp), slabs)
	if err != nil {
		return nil, fmt.Errorf("compliance.ComputeProfessionalTax: %w", err)
	}

	rec := &domain.ProfessionalTaxRecord{
		TenantID:      tenantID,
		EmployeeID:    employeeID,
		FinancialYear: fy,
		MonthYear:     statutory.MonthYear(asOf),
		StateCode:     result.StateCode,
		MonthlySalary: result.MonthlySalary,
		PTDeduction:   result.PTDeduction,
		IsExempt:      result.IsExempt,
	}
	if err := s.complianceRepo.ReplacePTRecord(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ComputeIncomeTax annualizes the wage structure effective at the start of
// the financial year, folds in the employee's declaration under the old
// regime, and stores the complete computation for the year.
func (s *complianceService) ComputeIncomeTax(ctx context.Context, tenantID, employeeID uuid.UUID, input TaxComputeInput) (*domain.IncomeTaxRecord, error) {
	employee, err := s.employeeRepo.GetByID(ctx, tenantID, employeeID)
	if err != nil {
		return nil, err
	}

	asOf := statutory.FYStart(input.FinancialYear)
	comp, snap, err := s.loadInputs(ctx, tenantID, employeeID, asOf)
	if err != nil {
		return nil, err
	}

	var declTotals statutory.DeclarationTotals
	decl, err := s.declarationRepo.Get(ctx, tenantID, employeeID, input.FinancialYear)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if decl != nil {
		declTotals = statutory.DeclarationTotals{
			Section80C: decl.Section80C,
			Section80D: decl.Section80D,
			Section80G: decl.Section80G,
			HRAClaim:   decl.HRAClaim,
		}
	}

	taxInput := statutory.TaxInput{
		Annual: statutory.WageComponents{
			BasicSalary:        comp.BasicSalary.Mul(twelve),
			DearnessAllowance:  comp.DearnessAllowance.Mul(twelve),
			HouseRentAllowance: comp.HouseRentAllowance.Mul(twelve),
			SpecialAllowance:   comp.SpecialAllowance.Mul(twelve),
			OtherAllowance:     comp.OtherAllowance.Mul(twelve),
		},
		Regime:         employee.TaxRegime,
		Declaration:    declTotals,
		TDSDeducted:    input.TDSDeducted,
		AdvanceTaxPaid: input.AdvanceTaxPaid,
	}
	slabs := snap.TaxSlabs(employee.TaxRegime, input.FinancialYear, asOf)

	result, err := statutory.ComputeIncomeTax(taxInput, slabs)
	if err != nil {
		return nil, fmt.Errorf("compliance.ComputeIncomeTax: %w", err)
	}

	rec := &domain.IncomeTaxRecord{
		TenantID:          tenantID,
		EmployeeID:        employeeID,
		FinancialYear:     input.FinancialYear,
		Regime:            result.Regime,
		GrossSalary:       result.GrossSalary,
		StandardDeduction: result.StandardDeduction,
		TaxableIncome:     result.TaxableIncome,
		TaxCalculated:     result.TaxCalculated,
		RebateUnder87A:    result.RebateUnder87A,
		TaxAfterRebate:    result.TaxAfterRebate,
		Surcharge:         result.Surcharge,
		Cess:              result.Cess,
		TotalTaxLiability: result.TotalTaxLiability,
		TDSDeducted:       result.TDSDeducted,
		AdvanceTaxPaid:    result.AdvanceTaxPaid,
		TaxRefundable:     result.TaxRefundable,
	}
	if err := s.complianceRepo.ReplaceIncomeTaxRecord(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// RunMonthly computes PF, ESI and professional tax for every active employee
// in the tenant. Employees without a wage structure for the period are
// skipped and reported, not fatal.
func (s *complianceService) RunMonthly(ctx context.Context, tenantID uuid.UUID, asOf time.Time) (*MonthlyRunSummary, error) {
	summary := &MonthlyRunSummary{MonthYear: statutory.MonthYear(asOf)}

	const pageSize = 200
	for offset := 0; ; offset += pageSize {
		employees, total, err := s.employeeRepo.ListActive(ctx, tenantID, offset, pageSize)
		if err != nil {
			return nil, err
		}
		for _, e := range employees {
			if err := s.runEmployeeMonth(ctx, tenantID, e.ID, asOf); err != nil {
				if errors.Is(err, domain.ErrNoCompensation) {
					log.Printf("WARN compliance: skipping %s for %s: no wage structure", e.Code, summary.MonthYear)
					summary.Skipped = append(summary.Skipped, e.Code)
					continue
				}
				return nil, fmt.Errorf("compliance.RunMonthly employee %s: %w", e.Code, err)
			}
			summary.Processed++
		}
		if offset+pageSize >= total || len(employees) == 0 {
			break
		}
	}
	return summary, nil
}

func (s *complianceService) runEmployeeMonth(ctx context.Context, tenantID, employeeID uuid.UUID, asOf time.Time) error {
	if _, err := s.ComputePF(ctx, tenantID, employeeID, asOf); err != nil {
		return err
	}
	if _, err := s.ComputeESI(ctx, tenantID, employeeID, asOf); err != nil {
		return err
	}
	if _, err := s.ComputeProfessionalTax(ctx, tenantID, employeeID, asOf); err != nil {
		return err
	}
	return nil
}

func (s *complianceService) GetPFRecord(ctx context.Context, tenantID, employeeID uuid.UUID, monthYear string) (*domain.ProvidentFundRecord, error) {
	return s.complianceRepo.GetPFRecord(ctx, tenantID, employeeID, monthYear)
}

func (s *complianceService) GetIncomeTaxRecord(ctx context.Context, tenantID, employeeID uuid.UUID, financialYear int) (*domain.IncomeTaxRecord, error) {
	return s.complianceRepo.GetIncomeTaxRecord(ctx, tenantID, employeeID, financialYear)
}

func (s *complianceService) PFBalance(ctx context.Context, tenantID, employeeID uuid.UUID) (decimal.Decimal, error) {
	return s.complianceRepo.PFBalance(ctx, tenantID, employeeID)
}

// Withdraw settles the full PF balance: flat-rate TDS is deducted, the
// withdrawal is recorded, and all contribution months are marked withdrawn.
func (s *complianceService) Withdraw(ctx context.Context, tenantID, employeeID uuid.UUID, input WithdrawalInput) (*domain.PFWithdrawal, error) {
	balance, err := s.complianceRepo.PFBalance(ctx, tenantID, employeeID)
	if err != nil {
		return nil, err
	}
	if !balance.IsPositive() {
		return nil, domain.ErrPFClosed
	}

	snap, err := s.configService.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	result, err := statutory.ComputeWithdrawalTDS(balance, snap.WithdrawalTDSRate(now))
	if err != nil {
		return nil, fmt.Errorf("compliance.Withdraw: %w", err)
	}

	w := &domain.PFWithdrawal{
		TenantID:         tenantID,
		EmployeeID:       employeeID,
		WithdrawalType:   input.WithdrawalType,
		WithdrawalAmount: result.WithdrawalAmount,
		TDSAmount:        result.TDSAmount,
		NetPayable:       result.NetPayable,
		WithdrawalDate:   now,
	}
	if err := s.complianceRepo.CreateWithdrawal(ctx, w); err != nil {
		return nil, err
	}
	if err := s.complianceRepo.ClosePF(ctx, tenantID, employeeID); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *complianceService) ListWithdrawals(ctx context.Context, tenantID, employeeID uuid.UUID) ([]domain.PFWithdrawal, error) {
	return s.complianceRepo.ListWithdrawals(ctx, tenantID, employeeID)
}

func (s *complianceService) loadInputs(ctx context.Context, tenantID, employeeID uuid.UUID, asOf time.Time) (*domain.CompensationStructure, *statutory.Snapshot, error) {
	comp, err := s.compRepo.GetEffective(ctx, tenantID, employeeID, asOf)
	if err != nil {
		return nil, nil, err
	}
	snap, err := s.configService.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}
	return comp, snap, nil
}

func monthlyGross(comp *domain.CompensationStructure) decimal.Decimal {
	return comp.BasicSalary.
		Add(comp.DearnessAllowance).
		Add(comp.HouseRentAllowance).
		Add(comp.SpecialAllowance).
		Add(comp.OtherAllowance)
}
