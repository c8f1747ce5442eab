package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"anupalan/internal/domain"
	"anupalan/internal/port"
)

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new PostgreSQL-backed ReportRepository.
func NewReportRepo(db *sqlx.DB) port.ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) PFLines(ctx context.Context, tenantID uuid.UUID, monthYear string) ([]port.ContributionLine, error) {
	var lines []port.ContributionLine
	err := r.db.SelectContext(ctx, &lines,
		`SELECT p.employee_id, e.code AS employee_code, e.full_name AS employee_name,
		        p.financial_year, p.pf_wages AS wages,
		        p.employee_contribution,
		        p.employer_contribution_pf + p.employer_contribution_eps AS employer_contribution,
		        p.total_contribution
		 FROM pf_records p
		 JOIN employees e ON e.id = p.employee_id AND e.tenant_id = p.tenant_id
		 WHERE p.tenant_id = $1 AND p.month_year = $2
		 ORDER BY e.code`,
		tenantID, monthYear)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.PFLines: %w", err)
	}
	return lines, nil
}

func (r *reportRepo) ESILines(ctx context.Context, tenantID uuid.UUID, monthYear string) ([]port.ContributionLine, error) {
	var lines []port.ContributionLine
	err := r.db.SelectContext(ctx, &lines,
		`SELECT s.employee_id, e.code AS employee_code, e.full_name AS employee_name,
		        s.financial_year, s.esi_wages AS wages,
		        s.employee_contribution, s.employer_contribution, s.total_contribution
		 FROM esi_records s
		 JOIN employees e ON e.id = s.employee_id AND e.tenant_id = s.tenant_id
		 WHERE s.tenant_id = $1 AND s.month_year = $2 AND s.is_eligible = true
		 ORDER BY e.code`,
		tenantID, monthYear)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.ESILines: %w", err)
	}
	return lines, nil
}

func (r *reportRepo) PTLines(ctx context.Context, tenantID uuid.UUID, monthYear string) ([]port.ContributionLine, error) {
	var lines []port.ContributionLine
	err := r.db.SelectContext(ctx, &lines,
		`SELECT t.employee_id, e.code AS employee_code, e.full_name AS employee_name,
		        t.financial_year, t.monthly_salary AS wages,
		        t.pt_deduction AS employee_contribution,
		        0 AS employer_contribution,
		        t.pt_deduction AS total_contribution
		 FROM professional_tax_records t
		 JOIN employees e ON e.id = t.employee_id AND e.tenant_id = t.tenant_id
		 WHERE t.tenant_id = $1 AND t.month_year = $2 AND t.is_exempt = false
		 ORDER BY e.code`,
		tenantID, monthYear)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.PTLines: %w", err)
	}
	return lines, nil
}

func (r *reportRepo) Form16Rows(ctx context.Context, tenantID uuid.UUID, financialYear int) ([]domain.Form16Row, error) {
	var rows []domain.Form16Row
	err := r.db.SelectContext(ctx, &rows,
		`SELECT e.code AS employee_code, e.full_name AS employee_name, e.pan,
		        i.gross_salary, i.standard_deduction, i.taxable_income,
		        i.total_tax_liability, i.tds_deducted, i.cess
		 FROM income_tax_records i
		 JOIN employees e ON e.id = i.employee_id AND e.tenant_id = i.tenant_id
		 WHERE i.tenant_id = $1 AND i.financial_year = $2
		 ORDER BY e.code`,
		tenantID, financialYear)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.Form16Rows: %w", err)
	}
	return rows, nil
}

func (r *reportRepo) SaveReport(ctx context.Context, report *domain.ComplianceReport) error {
	report.ID = uuid.New()
	report.GeneratedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO compliance_reports
		        (id, tenant_id, report_type, financial_year, month_year, headcount,
		         employee_contribution, employer_contribution, total_amount,
		         status, artifact_key, generated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		report.ID, report.TenantID, report.ReportType, report.FinancialYear,
		report.MonthYear, report.Headcount, report.EmployeeContribution,
		report.EmployerContribution, report.TotalAmount, report.Status,
		report.ArtifactKey, report.GeneratedAt)
	if err != nil {
		return fmt.Errorf("reportRepo.SaveReport: %w", err)
	}
	return nil
}

func (r *reportRepo) GetReport(ctx context.Context, tenantID, reportID uuid.UUID) (*domain.ComplianceReport, error) {
	var report domain.ComplianceReport
	err := r.db.GetContext(ctx, &report,
		"SELECT * FROM compliance_reports WHERE tenant_id = $1 AND id = $2",
		tenantID, reportID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reportRepo.GetReport: %w", err)
	}
	return &report, nil
}

func (r *reportRepo) ListReports(ctx context.Context, tenantID uuid.UUID, financialYear int) ([]domain.ComplianceReport, error) {
	var reports []domain.ComplianceReport
	err := r.db.SelectContext(ctx, &reports,
		`SELECT * FROM compliance_reports
		 WHERE tenant_id = $1 AND financial_year = $2
		 ORDER BY generated_at DESC`,
		tenantID, financialYear)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.ListReports: %w", err)
	}
	return reports, nil
}

func (r *reportRepo) MarkSubmitted(ctx context.Context, tenantID, reportID uuid.UUID, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE compliance_reports SET status = 'submitted', submitted_at = $1
		 WHERE tenant_id = $2 AND id = $3 AND status = 'pending'`,
		at, tenantID, reportID)
	if err != nil {
		return fmt.Errorf("reportRepo.MarkSubmitted: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
