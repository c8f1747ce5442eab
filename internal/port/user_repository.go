package port

import (
	"context"

	"github.com/google/uuid"

	"anupalan/internal/domain"
)

// UserRepository persists tenant-scoped users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, tenantID, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Deactivate(ctx context.Context, tenantID, userID uuid.UUID) error
}
