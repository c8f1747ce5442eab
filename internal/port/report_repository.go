package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"anupalan/internal/domain"
)

// ContributionLine is one employee's stored contribution figures for a
// period, fed into the aggregation step. Rows are unique per employee and
// period at the database level, so the aggregator never double counts.
type ContributionLine struct {
	EmployeeID           uuid.UUID       `db:"employee_id"`
	EmployeeCode         string          `db:"employee_code"`
	EmployeeName         string          `db:"employee_name"`
	FinancialYear        int             `db:"financial_year"`
	Wages                decimal.Decimal `db:"wages"`
	EmployeeContribution decimal.Decimal `db:"employee_contribution"`
	EmployerContribution decimal.Decimal `db:"employer_contribution"`
	TotalContribution    decimal.Decimal `db:"total_contribution"`
}

// ReportRepository reads stored compliance results for aggregation and
// persists the resulting filing reports.
type ReportRepository interface {
	PFLines(ctx context.Context, tenantID uuid.UUID, monthYear string) ([]ContributionLine, error)
	// ESILines returns only rows for eligible employees; ineligible capped
	// previews never enter a challan.
	ESILines(ctx context.Context, tenantID uuid.UUID, monthYear string) ([]ContributionLine, error)
	PTLines(ctx context.Context, tenantID uuid.UUID, monthYear string) ([]ContributionLine, error)
	Form16Rows(ctx context.Context, tenantID uuid.UUID, financialYear int) ([]domain.Form16Row, error)

	SaveReport(ctx context.Context, report *domain.ComplianceReport) error
	GetReport(ctx context.Context, tenantID, reportID uuid.UUID) (*domain.ComplianceReport, error)
	ListReports(ctx context.Context, tenantID uuid.UUID, financialYear int) ([]domain.ComplianceReport, error)
	MarkSubmitted(ctx context.Context, tenantID, reportID uuid.UUID, at time.Time) error
}
