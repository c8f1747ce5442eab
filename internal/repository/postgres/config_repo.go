package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"anupalan/internal/domain"
	"anupalan/internal/port"
)

type configRepo struct {
	db *sqlx.DB
}

// NewConfigRepo creates a new PostgreSQL-backed ConfigRepository.
func NewConfigRepo(db *sqlx.DB) port.ConfigRepository {
	return &configRepo{db: db}
}

func (r *configRepo) Insert(ctx context.Context, cfg *domain.StatutoryConfiguration) error {
	cfg.ID = uuid.New()
	cfg.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO statutory_configurations
		        (id, tenant_id, key, value, financial_year, effective_from, effective_to,
		         is_active, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		cfg.ID, cfg.TenantID, cfg.Key, cfg.Value, cfg.FinancialYear,
		cfg.EffectiveFrom, cfg.EffectiveTo, cfg.IsActive, cfg.CreatedBy, cfg.CreatedAt)
	if err != nil {
		return fmt.Errorf("configRepo.Insert: %w", err)
	}
	return nil
}

func (r *configRepo) ListActive(ctx context.Context, tenantID uuid.UUID) ([]domain.StatutoryConfiguration, error) {
	var rows []domain.StatutoryConfiguration
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM statutory_configurations
		 WHERE tenant_id = $1 AND is_active = true
		 ORDER BY key, effective_from`,
		tenantID)
	if err != nil {
		return nil, fmt.Errorf("configRepo.ListActive: %w", err)
	}
	return rows, nil
}

func (r *configRepo) ListByKey(ctx context.Context, tenantID uuid.UUID, key string) ([]domain.StatutoryConfiguration, error) {
	var rows []domain.StatutoryConfiguration
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM statutory_configurations
		 WHERE tenant_id = $1 AND key = $2
		 ORDER BY effective_from DESC`,
		tenantID, key)
	if err != nil {
		return nil, fmt.Errorf("configRepo.ListByKey: %w", err)
	}
	return rows, nil
}

func (r *configRepo) Deactivate(ctx context.Context, tenantID, configID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE statutory_configurations SET is_active = false WHERE tenant_id = $1 AND id = $2",
		tenantID, configID)
	if err != nil {
		return fmt.Errorf("configRepo.Deactivate: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
