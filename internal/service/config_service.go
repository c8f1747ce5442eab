package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"anupalan/internal/domain"
	"anupalan/internal/port"
	"anupalan/internal/statutory"
)

// ConfigInput is the DTO for recording a new statutory configuration version.
type ConfigInput struct {
	Key           string          `json:"key" binding:"required"`
	Value         json.RawMessage `json:"value" binding:"required"`
	FinancialYear int             `json:"financial_year" binding:"required"`
	EffectiveFrom time.Time       `json:"effective_from" binding:"required"`
	EffectiveTo   *time.Time      `json:"effective_to"`
}

// ConfigService manages the versioned statutory configuration store and
// exposes resolved snapshots to the calculation services.
type ConfigService interface {
	Set(ctx context.Context, tenantID, createdBy uuid.UUID, input ConfigInput) (*domain.StatutoryConfiguration, error)
	ListActive(ctx context.Context, tenantID uuid.UUID) ([]domain.StatutoryConfiguration, error)
	History(ctx context.Context, tenantID uuid.UUID, key string) ([]domain.StatutoryConfiguration, error)
	Deactivate(ctx context.Context, tenantID, configID uuid.UUID) error
	Snapshot(ctx context.Context, tenantID uuid.UUID) (*statutory.Snapshot, error)
}

type configService struct {
	repo port.ConfigRepository
}

// NewConfigService creates a new ConfigService implementation.
func NewConfigService(repo port.ConfigRepository) ConfigService {
	return &configService{repo: repo}
}

// Set validates and stores a new configuration version. Existing rows are
// never mutated; resolution picks the row with the latest effective_from
// whose window covers the as-of date.
func (s *configService) Set(ctx context.Context, tenantID, createdBy uuid.UUID, input ConfigInput) (*domain.StatutoryConfiguration, error) {
	key, err := statutory.ParseKey(input.Key)
	if err != nil {
		return nil, fmt.Errorf("config.Set: %w", err)
	}
	if err := validateConfigValue(key, input.Value); err != nil {
		return nil, fmt.Errorf("config.Set: %w", err)
	}
	if input.EffectiveTo != nil && !input.EffectiveTo.After(input.EffectiveFrom) {
		return nil, fmt.Errorf("config.Set: effective_to must be after effective_from")
	}

	cfg := &domain.StatutoryConfiguration{
		TenantID:      tenantID,
		Key:           key.String(),
		Value:         input.Value,
		FinancialYear: input.FinancialYear,
		EffectiveFrom: input.EffectiveFrom,
		EffectiveTo:   input.EffectiveTo,
		IsActive:      true,
		CreatedBy:     createdBy,
	}
	if err := s.repo.Insert(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *configService) ListActive(ctx context.Context, tenantID uuid.UUID) ([]domain.StatutoryConfiguration, error) {
	return s.repo.ListActive(ctx, tenantID)
}

func (s *configService) History(ctx context.Context, tenantID uuid.UUID, key string) ([]domain.StatutoryConfiguration, error) {
	if _, err := statutory.ParseKey(key); err != nil {
		return nil, fmt.Errorf("config.History: %w", err)
	}
	return s.repo.ListByKey(ctx, tenantID, key)
}

func (s *configService) Deactivate(ctx context.Context, tenantID, configID uuid.UUID) error {
	return s.repo.Deactivate(ctx, tenantID, configID)
}

func (s *configService) Snapshot(ctx context.Context, tenantID uuid.UUID) (*statutory.Snapshot, error) {
	rows, err := s.repo.ListActive(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return statutory.NewSnapshot(rows), nil
}

// validateConfigValue rejects payloads the resolver would silently discard at
// read time. Catching them at write time gives the administrator an error
// instead of a log line.
func validateConfigValue(key statutory.Key, raw json.RawMessage) error {
	switch key.(type) {
	case statutory.CeilingKey, statutory.RateKey:
		var v struct {
			Amount *json.Number `json:"amount"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("value for %s: %w", key, err)
		}
		if v.Amount == nil {
			return fmt.Errorf("value for %s: missing amount", key)
		}
		return nil
	case statutory.SlabKey, statutory.StateSlabKey:
		var slabs []statutory.Slab
		if err := json.Unmarshal(raw, &slabs); err != nil {
			return fmt.Errorf("value for %s: %w", key, err)
		}
		if err := statutory.ValidateSlabs(slabs); err != nil {
			return fmt.Errorf("value for %s: %w", key, err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported key type for %s", key)
	}
}
