package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tenant represents an isolated organization.
type Tenant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User represents an authenticated user belonging to a tenant.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TenantID     uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Employee represents a payroll-relevant employee record within a tenant.
type Employee struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	TenantID    uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	Code        string     `db:"code" json:"code"`
	FullName    string     `db:"full_name" json:"full_name"`
	Email       string     `db:"email" json:"email"`
	PAN         string     `db:"pan" json:"pan"`
	StateCode   string     `db:"state_code" json:"state_code"`
	TaxRegime   TaxRegime  `db:"tax_regime" json:"tax_regime"`
	JoiningDate time.Time  `db:"joining_date" json:"joining_date"`
	ExitDate    *time.Time `db:"exit_date" json:"exit_date"`
	IsActive    bool       `db:"is_active" json:"is_active"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// CompensationStructure holds an employee's monthly wage components,
// effective-dated so history survives revisions.
type CompensationStructure struct {
	ID                 uuid.UUID       `db:"id" json:"id"`
	TenantID           uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	EmployeeID         uuid.UUID       `db:"employee_id" json:"employee_id"`
	BasicSalary        decimal.Decimal `db:"basic_salary" json:"basic_salary"`
	DearnessAllowance  decimal.Decimal `db:"dearness_allowance" json:"dearness_allowance"`
	HouseRentAllowance decimal.Decimal `db:"house_rent_allowance" json:"house_rent_allowance"`
	SpecialAllowance   decimal.Decimal `db:"special_allowance" json:"special_allowance"`
	OtherAllowance     decimal.Decimal `db:"other_allowance" json:"other_allowance"`
	EffectiveFrom      time.Time       `db:"effective_from" json:"effective_from"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
}

// StatutoryConfiguration is one effective-dated version of a statutory
// parameter (a ceiling amount or a slab table). Rows are never mutated in
// place; a change is a new row with a later effective_from.
type StatutoryConfiguration struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	TenantID      uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	Key           string          `db:"key" json:"key"`
	Value         json.RawMessage `db:"value" json:"value"`
	FinancialYear int             `db:"financial_year" json:"financial_year"`
	EffectiveFrom time.Time       `db:"effective_from" json:"effective_from"`
	EffectiveTo   *time.Time      `db:"effective_to" json:"effective_to"`
	IsActive      bool            `db:"is_active" json:"is_active"`
	CreatedBy     uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

// TaxDeclaration is an employee's claimed deductions for a financial year.
// Mutable until verification; read-only afterwards.
type TaxDeclaration struct {
	ID            uuid.UUID         `db:"id" json:"id"`
	TenantID      uuid.UUID         `db:"tenant_id" json:"tenant_id"`
	EmployeeID    uuid.UUID         `db:"employee_id" json:"employee_id"`
	FinancialYear int               `db:"financial_year" json:"financial_year"`
	Section80C    decimal.Decimal   `db:"section_80c" json:"section_80c"`
	Section80D    decimal.Decimal   `db:"section_80d" json:"section_80d"`
	Section80G    decimal.Decimal   `db:"section_80g" json:"section_80g"`
	Section80E    decimal.Decimal   `db:"section_80e" json:"section_80e"`
	HRAClaim      decimal.Decimal   `db:"hra_claim" json:"hra_claim"`
	Status        DeclarationStatus `db:"status" json:"status"`
	VerifiedBy    *uuid.UUID        `db:"verified_by" json:"verified_by"`
	VerifiedAt    *time.Time        `db:"verified_at" json:"verified_at"`
	CreatedAt     time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time         `db:"updated_at" json:"updated_at"`
}

// ProvidentFundRecord is the derived PF contribution record for one employee
// and month. Recomputed whenever basic/DA change, never edited incrementally.
type ProvidentFundRecord struct {
	ID                      uuid.UUID       `db:"id" json:"id"`
	TenantID                uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	EmployeeID              uuid.UUID       `db:"employee_id" json:"employee_id"`
	FinancialYear           int             `db:"financial_year" json:"financial_year"`
	MonthYear               string          `db:"month_year" json:"month_year"`
	PFWages                 decimal.Decimal `db:"pf_wages" json:"pf_wages"`
	EmployeeContribution    decimal.Decimal `db:"employee_contribution" json:"employee_contribution"`
	EmployerContributionPF  decimal.Decimal `db:"employer_contribution_pf" json:"employer_contribution_pf"`
	EmployerContributionEPS decimal.Decimal `db:"employer_contribution_eps" json:"employer_contribution_eps"`
	AdminCharges            decimal.Decimal `db:"admin_charges" json:"admin_charges"`
	TotalContribution       decimal.Decimal `db:"total_contribution" json:"total_contribution"`
	TotalBalance            decimal.Decimal `db:"total_balance" json:"total_balance"`
	Status                  PFStatus        `db:"status" json:"status"`
	CreatedAt               time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt               time.Time       `db:"updated_at" json:"updated_at"`
}

// ESIRecord is the derived ESI contribution record for one employee and month.
type ESIRecord struct {
	ID                   uuid.UUID       `db:"id" json:"id"`
	TenantID             uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	EmployeeID           uuid.UUID       `db:"employee_id" json:"employee_id"`
	FinancialYear        int             `db:"financial_year" json:"financial_year"`
	MonthYear            string          `db:"month_year" json:"month_year"`
	ESIWages             decimal.Decimal `db:"esi_wages" json:"esi_wages"`
	EmployeeContribution decimal.Decimal `db:"employee_contribution" json:"employee_contribution"`
	EmployerContribution decimal.Decimal `db:"employer_contribution" json:"employer_contribution"`
	TotalContribution    decimal.Decimal `db:"total_contribution" json:"total_contribution"`
	IsEligible           bool            `db:"is_eligible" json:"is_eligible"`
	CreatedAt            time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time       `db:"updated_at" json:"updated_at"`
}

// IncomeTaxRecord is the derived annual income tax computation for an employee.
type IncomeTaxRecord struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	TenantID          uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	EmployeeID        uuid.UUID       `db:"employee_id" json:"employee_id"`
	FinancialYear     int             `db:"financial_year" json:"financial_year"`
	Regime            TaxRegime       `db:"regime" json:"regime"`
	GrossSalary       decimal.Decimal `db:"gross_salary" json:"gross_salary"`
	StandardDeduction decimal.Decimal `db:"standard_deduction" json:"standard_deduction"`
	TaxableIncome     decimal.Decimal `db:"taxable_income" json:"taxable_income"`
	TaxCalculated     decimal.Decimal `db:"tax_calculated" json:"tax_calculated"`
	RebateUnder87A    decimal.Decimal `db:"rebate_under_87a" json:"rebate_under_87a"`
	TaxAfterRebate    decimal.Decimal `db:"tax_after_rebate" json:"tax_after_rebate"`
	Surcharge         decimal.Decimal `db:"surcharge" json:"surcharge"`
	Cess              decimal.Decimal `db:"cess" json:"cess"`
	TotalTaxLiability decimal.Decimal `db:"total_tax_liability" json:"total_tax_liability"`
	TDSDeducted       decimal.Decimal `db:"tds_deducted" json:"tds_deducted"`
	AdvanceTaxPaid    decimal.Decimal `db:"advance_tax_paid" json:"advance_tax_paid"`
	TaxRefundable     decimal.Decimal `db:"tax_refundable" json:"tax_refundable"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

// ProfessionalTaxRecord is the derived monthly PT deduction for an employee.
type ProfessionalTaxRecord struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	TenantID      uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	EmployeeID    uuid.UUID       `db:"employee_id" json:"employee_id"`
	FinancialYear int             `db:"financial_year" json:"financial_year"`
	MonthYear     string          `db:"month_year" json:"month_year"`
	StateCode     string          `db:"state_code" json:"state_code"`
	MonthlySalary decimal.Decimal `db:"monthly_salary" json:"monthly_salary"`
	PTDeduction   decimal.Decimal `db:"pt_deduction" json:"pt_deduction"`
	IsExempt      bool            `db:"is_exempt" json:"is_exempt"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// PFWithdrawal records a PF withdrawal with flat-rate TDS applied.
type PFWithdrawal struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	TenantID         uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	EmployeeID       uuid.UUID       `db:"employee_id" json:"employee_id"`
	WithdrawalType   WithdrawalType  `db:"withdrawal_type" json:"withdrawal_type"`
	WithdrawalAmount decimal.Decimal `db:"withdrawal_amount" json:"withdrawal_amount"`
	TDSAmount        decimal.Decimal `db:"tds_amount" json:"tds_amount"`
	NetPayable       decimal.Decimal `db:"net_payable" json:"net_payable"`
	WithdrawalDate   time.Time       `db:"withdrawal_date" json:"withdrawal_date"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
}

// ComplianceReport is the organization-level aggregate for one report type and
// period, suitable for PF ECR registers, ESI challans and Form-16 runs.
type ComplianceReport struct {
	ID                   uuid.UUID        `db:"id" json:"id"`
	TenantID             uuid.UUID        `db:"tenant_id" json:"tenant_id"`
	ReportType           ReportType       `db:"report_type" json:"report_type"`
	FinancialYear        int              `db:"financial_year" json:"financial_year"`
	MonthYear            string           `db:"month_year" json:"month_year"`
	Headcount            int              `db:"headcount" json:"headcount"`
	EmployeeContribution decimal.Decimal  `db:"employee_contribution" json:"employee_contribution"`
	EmployerContribution decimal.Decimal  `db:"employer_contribution" json:"employer_contribution"`
	TotalAmount          decimal.Decimal  `db:"total_amount" json:"total_amount"`
	Status               SubmissionStatus `db:"status" json:"status"`
	ArtifactKey          string           `db:"artifact_key" json:"artifact_key"`
	GeneratedAt          time.Time        `db:"generated_at" json:"generated_at"`
	SubmittedAt          *time.Time       `db:"submitted_at" json:"submitted_at"`
}

// Form16Row carries the per-employee certificate figures for a Form-16 run.
// All values come straight off the stored IncomeTaxRecord.
type Form16Row struct {
	EmployeeCode      string          `db:"employee_code" json:"employee_code"`
	EmployeeName      string          `db:"employee_name" json:"employee_name"`
	PAN               string          `db:"pan" json:"pan"`
	GrossSalary       decimal.Decimal `db:"gross_salary" json:"gross_salary"`
	StandardDeduction decimal.Decimal `db:"standard_deduction" json:"standard_deduction"`
	TaxableIncome     decimal.Decimal `db:"taxable_income" json:"taxable_income"`
	TotalTaxLiability decimal.Decimal `db:"total_tax_liability" json:"total_tax_liability"`
	TDSDeducted       decimal.Decimal `db:"tds_deducted" json:"tds_deducted"`
	Cess              decimal.Decimal `db:"cess" json:"cess"`
}

// ContributionRow is one employee's line in a contribution register export.
type ContributionRow struct {
	EmployeeCode         string          `db:"employee_code" json:"employee_code"`
	EmployeeName         string          `db:"employee_name" json:"employee_name"`
	Wages                decimal.Decimal `db:"wages" json:"wages"`
	EmployeeContribution decimal.Decimal `db:"employee_contribution" json:"employee_contribution"`
	EmployerContribution decimal.Decimal `db:"employer_contribution" json:"employer_contribution"`
	TotalContribution    decimal.Decimal `db:"total_contribution" json:"total_contribution"`
}
