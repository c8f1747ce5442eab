package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"anupalan/internal/domain"
)

// DeclarationRepository persists per-employee tax declarations.
type DeclarationRepository interface {
	Create(ctx context.Context, decl *domain.TaxDeclaration) error
	Get(ctx context.Context, tenantID, employeeID uuid.UUID, financialYear int) (*domain.TaxDeclaration, error)
	Update(ctx context.Context, decl *domain.TaxDeclaration) error
	MarkVerified(ctx context.Context, tenantID, declarationID, verifiedBy uuid.UUID, at time.Time) error
}
