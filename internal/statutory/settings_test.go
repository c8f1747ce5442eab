package statutory

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anupalan/internal/domain"
)

func configRow(key, value string, from time.Time, to *time.Time, active bool) domain.StatutoryConfiguration {
	return domain.StatutoryConfiguration{
		Key:           key,
		Value:         json.RawMessage(value),
		EffectiveFrom: from,
		EffectiveTo:   to,
		IsActive:      active,
	}
}

func date(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestSnapshot_LatestEffectiveFromWins(t *testing.T) {
	snap := NewSnapshot([]domain.StatutoryConfiguration{
		configRow("PF_CEILING", `{"amount":"15000"}`, date(2023, time.April, 1), nil, true),
		configRow("PF_CEILING", `{"amount":"18000"}`, date(2025, time.April, 1), nil, true),
	})

	// Before the second version takes effect.
	got := snap.Ceiling(KeyPFCeiling, date(2024, time.June, 1))
	assert.Equal(t, "15000", got.String())

	// On and after the second version's effective date.
	got = snap.Ceiling(KeyPFCeiling, date(2025, time.April, 1))
	assert.Equal(t, "18000", got.String())
}

func TestSnapshot_ExpiredWindowExcluded(t *testing.T) {
	to := date(2025, time.April, 1)
	snap := NewSnapshot([]domain.StatutoryConfiguration{
		configRow("ESI_CEILING", `{"amount":"25000"}`, date(2024, time.April, 1), &to, true),
	})

	// Inside the window the override applies; effective_to is exclusive.
	assert.Equal(t, "25000", snap.Ceiling(KeyESICeiling, date(2024, time.December, 1)).String())
	assert.Equal(t, "21000", snap.Ceiling(KeyESICeiling, to).String())
}

func TestSnapshot_InactiveRowExcluded(t *testing.T) {
	snap := NewSnapshot([]domain.StatutoryConfiguration{
		configRow("PF_CEILING", `{"amount":"99999"}`, date(2020, time.April, 1), nil, false),
	})
	assert.Equal(t, "15000", snap.Ceiling(KeyPFCeiling, date(2025, time.June, 1)).String())
}

func TestSnapshot_MalformedValueFallsBackToDefault(t *testing.T) {
	snap := NewSnapshot([]domain.StatutoryConfiguration{
		configRow("PF_CEILING", `{"amount":"not-a-number"}`, date(2020, time.April, 1), nil, true),
		configRow("IT_SLAB_NEWREGIME_FY2025", `{"broken"`, date(2025, time.April, 1), nil, true),
	})

	assert.Equal(t, "15000", snap.Ceiling(KeyPFCeiling, date(2025, time.June, 1)).String())

	slabs := snap.TaxSlabs(domain.RegimeNew, 2025, date(2025, time.June, 1))
	require.Len(t, slabs, 5)
	assert.Equal(t, "300000", slabs[1].From.String())
}

func TestSnapshot_InvalidSlabTableFallsBackToDefault(t *testing.T) {
	// Overlapping slabs fail validation and are discarded.
	snap := NewSnapshot([]domain.StatutoryConfiguration{
		configRow("IT_SLAB_OLDREGIME_FY2025",
			`[{"from":"0","to":"500000","rate":"0"},{"from":"400000","to":null,"rate":"0.3"}]`,
			date(2025, time.April, 1), nil, true),
	})
	slabs := snap.TaxSlabs(domain.RegimeOld, 2025, date(2025, time.June, 1))
	require.Len(t, slabs, 4)
	assert.Equal(t, "250000", slabs[1].From.String())
}

func TestSnapshot_ConfiguredSlabTableUsed(t *testing.T) {
	snap := NewSnapshot([]domain.StatutoryConfiguration{
		configRow("IT_SLAB_NEWREGIME_FY2026",
			`[{"from":"0","to":"400000","rate":"0"},{"from":"400000","to":null,"rate":"0.25"}]`,
			date(2026, time.April, 1), nil, true),
	})
	slabs := snap.TaxSlabs(domain.RegimeNew, 2026, date(2026, time.May, 1))
	require.Len(t, slabs, 2)
	assert.Equal(t, "0.25", slabs[1].Rate.String())
}

func TestSnapshot_PTAbsenceMeansExempt(t *testing.T) {
	snap := NewSnapshot(nil)
	slabs, configured := snap.PTSlabs("KA", 2025, date(2025, time.June, 1))
	assert.False(t, configured)
	assert.Nil(t, slabs)
}

func TestSnapshot_WithdrawalTDSRateDefault(t *testing.T) {
	snap := NewSnapshot(nil)
	assert.Equal(t, "0.2", snap.WithdrawalTDSRate(date(2025, time.June, 1)).String())

	snap = NewSnapshot([]domain.StatutoryConfiguration{
		configRow("PF_WITHDRAWAL_TDS_RATE", `{"amount":"0.1"}`, date(2025, time.April, 1), nil, true),
	})
	assert.Equal(t, "0.1", snap.WithdrawalTDSRate(date(2025, time.June, 1)).String())
}
