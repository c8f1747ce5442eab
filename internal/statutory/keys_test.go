package statutory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anupalan/internal/domain"
)

func TestKeyString(t *testing.T) {
	assert.Equal(t, "PF_CEILING", KeyPFCeiling.String())
	assert.Equal(t, "ESI_CEILING", KeyESICeiling.String())
	assert.Equal(t, "PF_WITHDRAWAL_TDS_RATE", KeyWithdrawalTDSRate.String())
	assert.Equal(t, "IT_SLAB_NEWREGIME_FY2025",
		SlabKey{Regime: domain.RegimeNew, FinancialYear: 2025}.String())
	assert.Equal(t, "IT_SLAB_OLDREGIME_FY2024",
		SlabKey{Regime: domain.RegimeOld, FinancialYear: 2024}.String())
	assert.Equal(t, "PT_SLAB_KA_FY2025",
		StateSlabKey{StateCode: "ka", FinancialYear: 2025}.String())
}

func TestParseKey_RoundTrip(t *testing.T) {
	keys := []Key{
		KeyPFCeiling,
		KeyESICeiling,
		KeyWithdrawalTDSRate,
		SlabKey{Regime: domain.RegimeNew, FinancialYear: 2025},
		SlabKey{Regime: domain.RegimeOld, FinancialYear: 2026},
		StateSlabKey{StateCode: "MH", FinancialYear: 2025},
	}
	for _, k := range keys {
		parsed, err := ParseKey(k.String())
		require.NoError(t, err, k.String())
		assert.Equal(t, k, parsed)
	}
}

func TestParseKey_RejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "GRATUITY_RATE", "IT_SLAB_FLATREGIME_FY2025", "PT_SLAB_KARNATAKA_FY2025"} {
		_, err := ParseKey(s)
		assert.Error(t, err, s)
	}
}

func TestFinancialYearOf(t *testing.T) {
	assert.Equal(t, 2025, FinancialYearOf(date(2025, 4, 1)))
	assert.Equal(t, 2025, FinancialYearOf(date(2026, 3, 31)))
	assert.Equal(t, 2024, FinancialYearOf(date(2025, 3, 31)))
	assert.Equal(t, 2025, FinancialYearOf(date(2025, 12, 15)))
}

func TestMonthYear(t *testing.T) {
	assert.Equal(t, "2025-04", MonthYear(date(2025, 4, 30)))
	assert.Equal(t, "2025-12", MonthYear(date(2025, 12, 1)))
}
