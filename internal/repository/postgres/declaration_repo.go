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

type declarationRepo struct {
	db *sqlx.DB
}

// NewDeclarationRepo creates a new PostgreSQL-backed DeclarationRepository.
func NewDeclarationRepo(db *sqlx.DB) port.DeclarationRepository {
	return &declarationRepo{db: db}
}

func (r *declarationRepo) Create(ctx context.Context, decl *domain.TaxDeclaration) error {
	decl.ID = uuid.New()
	now := time.Now().UTC()
	decl.CreatedAt = now
	decl.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tax_declarations
		        (id, tenant_id, employee_id, financial_year, section_80c, section_80d,
		         section_80g, section_80e, hra_claim, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		decl.ID, decl.TenantID, decl.EmployeeID, decl.FinancialYear,
		decl.Section80C, decl.Section80D, decl.Section80G, decl.Section80E,
		decl.HRAClaim, decl.Status, decl.CreatedAt, decl.UpdatedAt)
	if err != nil {
		return fmt.Errorf("declarationRepo.Create: %w", err)
	}
	return nil
}

func (r *declarationRepo) Get(ctx context.Context, tenantID, employeeID uuid.UUID, financialYear int) (*domain.TaxDeclaration, error) {
	var decl domain.TaxDeclaration
	err := r.db.GetContext(ctx, &decl,
		`SELECT * FROM tax_declarations
		 WHERE tenant_id = $1 AND employee_id = $2 AND financial_year = $3`,
		tenantID, employeeID, financialYear)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("declarationRepo.Get: %w", err)
	}
	return &decl, nil
}

func (r *declarationRepo) Update(ctx context.Context, decl *domain.TaxDeclaration) error {
	decl.UpdatedAt = time.Now().UTC()
	// Verified declarations are immutable; the guard lives in the query so a
	// racing verification cannot slip an edit through.
	res, err := r.db.ExecContext(ctx,
		`UPDATE tax_declarations
		 SET section_80c = $1, section_80d = $2, section_80g = $3, section_80e = $4,
		     hra_claim = $5, status = $6, updated_at = $7
		 WHERE tenant_id = $8 AND id = $9 AND status <> 'verified'`,
		decl.Section80C, decl.Section80D, decl.Section80G, decl.Section80E,
		decl.HRAClaim, decl.Status, decl.UpdatedAt, decl.TenantID, decl.ID)
	if err != nil {
		return fmt.Errorf("declarationRepo.Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrDeclarationLocked
	}
	return nil
}

func (r *declarationRepo) MarkVerified(ctx context.Context, tenantID, declarationID, verifiedBy uuid.UUID, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tax_declarations
		 SET status = 'verified', verified_by = $1, verified_at = $2, updated_at = $2
		 WHERE tenant_id = $3 AND id = $4 AND status = 'submitted'`,
		verifiedBy, at, tenantID, declarationID)
	if err != nil {
		return fmt.Errorf("declarationRepo.MarkVerified: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
