package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"anupalan/internal/domain"
	"anupalan/internal/service"
	"anupalan/internal/statutory"
	"anupalan/mocks"
)

func TestConfigService_Set_CeilingSuccess(t *testing.T) {
	repo := new(mocks.MockConfigRepo)
	svc := service.NewConfigService(repo)

	tenantID, createdBy := uuid.New(), uuid.New()
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(cfg *domain.StatutoryConfiguration) bool {
		return cfg.Key == "PF_CEILING" && cfg.IsActive && cfg.CreatedBy == createdBy
	})).Return(nil)

	cfg, err := svc.Set(context.Background(), tenantID, createdBy, service.ConfigInput{
		Key:           "PF_CEILING",
		Value:         json.RawMessage(`{"amount": 15000}`),
		FinancialYear: 2024,
		EffectiveFrom: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, "PF_CEILING", cfg.Key)
	repo.AssertExpectations(t)
}

func TestConfigService_Set_UnknownKey(t *testing.T) {
	repo := new(mocks.MockConfigRepo)
	svc := service.NewConfigService(repo)

	cfg, err := svc.Set(context.Background(), uuid.New(), uuid.New(), service.ConfigInput{
		Key:           "GRATUITY_CEILING",
		Value:         json.RawMessage(`{"amount": 2000000}`),
		FinancialYear: 2024,
		EffectiveFrom: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.Nil(t, cfg)
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestConfigService_Set_CeilingMissingAmount(t *testing.T) {
	repo := new(mocks.MockConfigRepo)
	svc := service.NewConfigService(repo)

	cfg, err := svc.Set(context.Background(), uuid.New(), uuid.New(), service.ConfigInput{
		Key:           "ESI_CEILING",
		Value:         json.RawMessage(`{"ceiling": 21000}`),
		FinancialYear: 2024,
		EffectiveFrom: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "missing amount")
}

func TestConfigService_Set_SlabTableValidated(t *testing.T) {
	repo := new(mocks.MockConfigRepo)
	svc := service.NewConfigService(repo)

	// Overlapping brackets must be rejected at write time.
	cfg, err := svc.Set(context.Background(), uuid.New(), uuid.New(), service.ConfigInput{
		Key: "IT_SLAB_NEWREGIME_FY2024",
		Value: json.RawMessage(`[
			{"from": "0", "to": "500000", "rate": "0"},
			{"from": "300000", "to": null, "rate": "0.1"}
		]`),
		FinancialYear: 2024,
		EffectiveFrom: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.Nil(t, cfg)
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestConfigService_Set_EffectiveWindowOrdering(t *testing.T) {
	repo := new(mocks.MockConfigRepo)
	svc := service.NewConfigService(repo)

	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(-time.Hour)
	cfg, err := svc.Set(context.Background(), uuid.New(), uuid.New(), service.ConfigInput{
		Key:           "PF_CEILING",
		Value:         json.RawMessage(`{"amount": 15000}`),
		FinancialYear: 2024,
		EffectiveFrom: from,
		EffectiveTo:   &to,
	})

	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "effective_to")
}

func TestConfigService_History_RejectsUnknownKey(t *testing.T) {
	repo := new(mocks.MockConfigRepo)
	svc := service.NewConfigService(repo)

	rows, err := svc.History(context.Background(), uuid.New(), "NOT_A_KEY")

	assert.Nil(t, rows)
	assert.Error(t, err)
	repo.AssertNotCalled(t, "ListByKey", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfigService_Snapshot_ResolvesStoredCeiling(t *testing.T) {
	repo := new(mocks.MockConfigRepo)
	svc := service.NewConfigService(repo)

	tenantID := uuid.New()
	repo.On("ListActive", mock.Anything, tenantID).Return([]domain.StatutoryConfiguration{
		{
			Key:           "PF_CEILING",
			Value:         json.RawMessage(`{"amount": 18000}`),
			EffectiveFrom: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			IsActive:      true,
		},
	}, nil)

	snap, err := svc.Snapshot(context.Background(), tenantID)

	assert.NoError(t, err)
	ceiling := snap.Ceiling(statutory.KeyPFCeiling, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, ceiling.Equal(decimal.NewFromInt(18000)))
}
