package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"anupalan/internal/domain"
)

// ComplianceRepository persists the derived statutory records. All writes are
// replace-style: the caller supplies a complete, freshly computed record and
// the repository swaps it in atomically for its (employee, period) key. A
// half-populated record is never visible.
type ComplianceRepository interface {
	ReplacePFRecord(ctx context.Context, rec *domain.ProvidentFundRecord) error
	ReplaceESIRecord(ctx context.Context, rec *domain.ESIRecord) error
	ReplaceIncomeTaxRecord(ctx context.Context, rec *domain.IncomeTaxRecord) error
	ReplacePTRecord(ctx context.Context, rec *domain.ProfessionalTaxRecord) error

	GetPFRecord(ctx context.Context, tenantID, employeeID uuid.UUID, monthYear string) (*domain.ProvidentFundRecord, error)
	GetIncomeTaxRecord(ctx context.Context, tenantID, employeeID uuid.UUID, financialYear int) (*domain.IncomeTaxRecord, error)

	// PFBalance returns the accumulated contribution balance over the
	// employment lifetime, excluding withdrawn/closed months.
	PFBalance(ctx context.Context, tenantID, employeeID uuid.UUID) (decimal.Decimal, error)
	// ClosePF marks all of the employee's PF records withdrawn and resets
	// the running balance.
	ClosePF(ctx context.Context, tenantID, employeeID uuid.UUID) error

	CreateWithdrawal(ctx context.Context, w *domain.PFWithdrawal) error
	ListWithdrawals(ctx context.Context, tenantID, employeeID uuid.UUID) ([]domain.PFWithdrawal, error)
}
