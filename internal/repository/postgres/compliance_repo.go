package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"anupalan/internal/domain"
	"anupalan/internal/port"
)

type complianceRepo struct {
	db *sqlx.DB
}

// NewComplianceRepo creates a new PostgreSQL-backed ComplianceRepository.
func NewComplianceRepo(db *sqlx.DB) port.ComplianceRepository {
	return &complianceRepo{db: db}
}

// ReplacePFRecord swaps in a freshly computed record for the employee's month
// and recomputes the running balance across all active months, inside one
// transaction so intermediate states never leak.
func (r *complianceRepo) ReplacePFRecord(ctx context.Context, rec *domain.ProvidentFundRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("complianceRepo.ReplacePFRecord begin: %w", err)
	}
	defer tx.Rollback()

	rec.ID = uuid.New()
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	_, err = tx.ExecContext(ctx,
		`INSERT INTO pf_records
		        (id, tenant_id, employee_id, financial_year, month_year, pf_wages,
		         employee_contribution, employer_contribution_pf, employer_contribution_eps,
		         admin_charges, total_contribution, total_balance, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 0, $12, $13, $14)
		 ON CONFLICT (tenant_id, employee_id, month_year) DO UPDATE SET
		     financial_year = EXCLUDED.financial_year,
		     pf_wages = EXCLUDED.pf_wages,
		     employee_contribution = EXCLUDED.employee_contribution,
		     employer_contribution_pf = EXCLUDED.employer_contribution_pf,
		     employer_contribution_eps = EXCLUDED.employer_contribution_eps,
		     admin_charges = EXCLUDED.admin_charges,
		     total_contribution = EXCLUDED.total_contribution,
		     status = EXCLUDED.status,
		     updated_at = EXCLUDED.updated_at`,
		rec.ID, rec.TenantID, rec.EmployeeID, rec.FinancialYear, rec.MonthYear,
		rec.PFWages, rec.EmployeeContribution, rec.EmployerContributionPF,
		rec.EmployerContributionEPS, rec.AdminCharges, rec.TotalContribution,
		rec.Status, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("complianceRepo.ReplacePFRecord upsert: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE pf_records p SET total_balance = s.running
		 FROM (SELECT id, SUM(total_contribution) OVER (ORDER BY month_year) AS running
		       FROM pf_records
		       WHERE tenant_id = $1 AND employee_id = $2 AND status = 'active') s
		 WHERE p.id = s.id`,
		rec.TenantID, rec.EmployeeID)
	if err != nil {
		return fmt.Errorf("complianceRepo.ReplacePFRecord balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("complianceRepo.ReplacePFRecord commit: %w", err)
	}
	return nil
}

func (r *complianceRepo) ReplaceESIRecord(ctx context.Context, rec *domain.ESIRecord) error {
	rec.ID = uuid.New()
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO esi_records
		        (id, tenant_id, employee_id, financial_year, month_year, esi_wages,
		         employee_contribution, employer_contribution, total_contribution,
		         is_eligible, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (tenant_id, employee_id, month_year) DO UPDATE SET
		     financial_year = EXCLUDED.financial_year,
		     esi_wages = EXCLUDED.esi_wages,
		     employee_contribution = EXCLUDED.employee_contribution,
		     employer_contribution = EXCLUDED.employer_contribution,
		     total_contribution = EXCLUDED.total_contribution,
		     is_eligible = EXCLUDED.is_eligible,
		     updated_at = EXCLUDED.updated_at`,
		rec.ID, rec.TenantID, rec.EmployeeID, rec.FinancialYear, rec.MonthYear,
		rec.ESIWages, rec.EmployeeContribution, rec.EmployerContribution,
		rec.TotalContribution, rec.IsEligible, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("complianceRepo.ReplaceESIRecord: %w", err)
	}
	return nil
}

func (r *complianceRepo) ReplaceIncomeTaxRecord(ctx context.Context, rec *domain.IncomeTaxRecord) error {
	rec.ID = uuid.New()
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO income_tax_records
		        (id, tenant_id, employee_id, financial_year, regime, gross_salary,
		         standard_deduction, taxable_income, tax_calculated, rebate_under_87a,
		         tax_after_rebate, surcharge, cess, total_tax_liability, tds_deducted,
		         advance_tax_paid, tax_refundable, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		 ON CONFLICT (tenant_id, employee_id, financial_year) DO UPDATE SET
		     regime = EXCLUDED.regime,
		     gross_salary = EXCLUDED.gross_salary,
		     standard_deduction = EXCLUDED.standard_deduction,
		     taxable_income = EXCLUDED.taxable_income,
		     tax_calculated = EXCLUDED.tax_calculated,
		     rebate_under_87a = EXCLUDED.rebate_under_87a,
		     tax_after_rebate = EXCLUDED.tax_after_rebate,
		     surcharge = EXCLUDED.surcharge,
		     cess = EXCLUDED.cess,
		     total_tax_liability = EXCLUDED.total_tax_liability,
		     tds_deducted = EXCLUDED.tds_deducted,
		     advance_tax_paid = EXCLUDED.advance_tax_paid,
		     tax_refundable = EXCLUDED.tax_refundable,
		     updated_at = EXCLUDED.updated_at`,
		rec.ID, rec.TenantID, rec.EmployeeID, rec.FinancialYear, rec.Regime,
		rec.GrossSalary, rec.StandardDeduction, rec.TaxableIncome, rec.TaxCalculated,
		rec.RebateUnder87A, rec.TaxAfterRebate, rec.Surcharge, rec.Cess,
		rec.TotalTaxLiability, rec.TDSDeducted, rec.AdvanceTaxPaid, rec.TaxRefundable,
		rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("complianceRepo.ReplaceIncomeTaxRecord: %w", err)
	}
	return nil
}

func (r *complianceRepo) ReplacePTRecord(ctx context.Context, rec *domain.ProfessionalTaxRecord) error {
	rec.ID = uuid.New()
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO professional_tax_records
		        (id, tenant_id, employee_id, financial_year, month_year, state_code,
		         monthly_salary, pt_deduction, is_exempt, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (tenant_id, employee_id, month_year) DO UPDATE SET
		     financial_year = EXCLUDED.financial_year,
		     state_code = EXCLUDED.state_code,
		     monthly_salary = EXCLUDED.monthly_salary,
		     pt_deduction = EXCLUDED.pt_deduction,
		     is_exempt = EXCLUDED.is_exempt,
		     updated_at = EXCLUDED.updated_at`,
		rec.ID, rec.TenantID, rec.EmployeeID, rec.FinancialYear, rec.MonthYear,
		rec.StateCode, rec.MonthlySalary, rec.PTDeduction, rec.IsExempt,
		rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("complianceRepo.ReplacePTRecord: %w", err)
	}
	return nil
}

func (r *complianceRepo) GetPFRecord(ctx context.Context, tenantID, employeeID uuid.UUID, monthYear string) (*domain.ProvidentFundRecord, error) {
	var rec domain.ProvidentFundRecord
	err := r.db.GetContext(ctx, &rec,
		`SELECT * FROM pf_records
		 WHERE tenant_id = $1 AND employee_id = $2 AND month_year = $3`,
		tenantID, employeeID, monthYear)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("complianceRepo.GetPFRecord: %w", err)
	}
	return &rec, nil
}

func (r *complianceRepo) GetIncomeTaxRecord(ctx context.Context, tenantID, employeeID uuid.UUID, financialYear int) (*domain.IncomeTaxRecord, error) {
	var rec domain.IncomeTaxRecord
	err := r.db.GetContext(ctx, &rec,
		`SELECT * FROM income_tax_records
		 WHERE tenant_id = $1 AND employee_id = $2 AND financial_year = $3`,
		tenantID, employeeID, financialYear)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("complianceRepo.GetIncomeTaxRecord: %w", err)
	}
	return &rec, nil
}

func (r *complianceRepo) PFBalance(ctx context.Context, tenantID, employeeID uuid.UUID) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.GetContext(ctx, &balance,
		`SELECT COALESCE(SUM(total_contribution), 0) FROM pf_records
		 WHERE tenant_id = $1 AND employee_id = $2 AND status = 'active'`,
		tenantID, employeeID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("complianceRepo.PFBalance: %w", err)
	}
	return balance, nil
}

func (r *complianceRepo) ClosePF(ctx context.Context, tenantID, employeeID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE pf_records SET status = 'withdrawn', total_balance = 0, updated_at = $1
		 WHERE tenant_id = $2 AND employee_id = $3 AND status = 'active'`,
		time.Now().UTC(), tenantID, employeeID)
	if err != nil {
		return fmt.Errorf("complianceRepo.ClosePF: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrPFClosed
	}
	return nil
}

func (r *complianceRepo) CreateWithdrawal(ctx context.Context, w *domain.PFWithdrawal) error {
	w.ID = uuid.New()
	w.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO pf_withdrawals
		        (id, tenant_id, employee_id, withdrawal_type, withdrawal_amount,
		         tds_amount, net_payable, withdrawal_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		w.ID, w.TenantID, w.EmployeeID, w.WithdrawalType, w.WithdrawalAmount,
		w.TDSAmount, w.NetPayable, w.WithdrawalDate, w.CreatedAt)
	if err != nil {
		return fmt.Errorf("complianceRepo.CreateWithdrawal: %w", err)
	}
	return nil
}

func (r *complianceRepo) ListWithdrawals(ctx context.Context, tenantID, employeeID uuid.UUID) ([]domain.PFWithdrawal, error) {
	var withdrawals []domain.PFWithdrawal
	err := r.db.SelectContext(ctx, &withdrawals,
		`SELECT * FROM pf_withdrawals
		 WHERE tenant_id = $1 AND employee_id = $2
		 ORDER BY withdrawal_date DESC`,
		tenantID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("complianceRepo.ListWithdrawals: %w", err)
	}
	return withdrawals, nil
}
