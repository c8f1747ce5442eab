package port

import (
	"context"

	"github.com/google/uuid"

	"anupalan/internal/domain"
)

// ConfigRepository persists versioned statutory configuration rows. Rows are
// append-only: a change is a new row with a later effective_from, and old
// rows are retained for historical recalculation.
type ConfigRepository interface {
	Insert(ctx context.Context, cfg *domain.StatutoryConfiguration) error
	ListActive(ctx context.Context, tenantID uuid.UUID) ([]domain.StatutoryConfiguration, error)
	ListByKey(ctx context.Context, tenantID uuid.UUID, key string) ([]domain.StatutoryConfiguration, error)
	Deactivate(ctx context.Context, tenantID, configID uuid.UUID) error
}
