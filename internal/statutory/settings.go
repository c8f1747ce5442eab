package statutory

import (
	"encoding/json"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"anupalan/internal/domain"
)

// Snapshot is an immutable, read-only view over a set of statutory
// configuration rows, loaded once per calculation and resolved against an
// explicit as-of date. Malformed or missing configuration is recovered with
// built-in defaults and logged; the caller never sees it as an error.
type Snapshot struct {
	rows map[string][]domain.StatutoryConfiguration
}

// NewSnapshot groups configuration rows by key.
func NewSnapshot(rows []domain.StatutoryConfiguration) *Snapshot {
	grouped := make(map[string][]domain.StatutoryConfiguration)
	for _, r := range rows {
		grouped[r.Key] = append(grouped[r.Key], r)
	}
	return &Snapshot{rows: grouped}
}

// resolve returns the raw value of the active row for key whose
// [effectiveFrom, effectiveTo) window contains asOf, choosing the latest
// effectiveFrom among matches.
func (s *Snapshot) resolve(key string, asOf time.Time) (json.RawMessage, bool) {
	var best *domain.StatutoryConfiguration
	for i := range s.rows[key] {
		r := &s.rows[key][i]
		if !r.IsActive || r.EffectiveFrom.After(asOf) {
			continue
		}
		if r.EffectiveTo != nil && !asOf.Before(*r.EffectiveTo) {
			continue
		}
		if best == nil || r.EffectiveFrom.After(best.EffectiveFrom) {
			best = r
		}
	}
	if best == nil {
		return nil, false
	}
	return best.Value, true
}

// amountValue is the stored shape of a ceiling or rate configuration.
type amountValue struct {
	Amount decimal.Decimal `json:"amount"`
}

func (s *Snapshot) amount(key Key, asOf time.Time, fallback decimal.Decimal) decimal.Decimal {
	raw, ok := s.resolve(key.String(), asOf)
	if !ok {
		return fallback
	}
	var v amountValue
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Printf("WARN statutory: malformed value for %s, using default: %v", key, err)
		return fallback
	}
	if v.Amount.IsNegative() {
		log.Printf("WARN statutory: negative amount for %s, using default", key)
		return fallback
	}
	return v.Amount
}

// Ceiling resolves a monetary ceiling as of the given date.
func (s *Snapshot) Ceiling(key CeilingKey, asOf time.Time) decimal.Decimal {
	switch key {
	case KeyESICeiling:
		return s.amount(key, asOf, DefaultESICeiling)
	default:
		return s.amount(key, asOf, DefaultPFCeiling)
	}
}

// WithdrawalTDSRate resolves the flat PF withdrawal TDS rate.
func (s *Snapshot) WithdrawalTDSRate(asOf time.Time) decimal.Decimal {
	return s.amount(KeyWithdrawalTDSRate, asOf, DefaultWithdrawalTDSRate)
}

// TaxSlabs resolves the income tax slab table for a regime and financial
// year, falling back to the built-in table when none is configured or the
// stored table is malformed.
func (s *Snapshot) TaxSlabs(regime domain.TaxRegime, financialYear int, asOf time.Time) []Slab {
	key := SlabKey{Regime: regime, FinancialYear: financialYear}
	raw, ok := s.resolve(key.String(), asOf)
	if !ok {
		return DefaultTaxSlabs(regime)
	}
	var slabs []Slab
	if err := json.Unmarshal(raw, &slabs); err != nil {
		log.Printf("WARN statutory: malformed slab table for %s, using default: %v", key, err)
		return DefaultTaxSlabs(regime)
	}
	if err := ValidateSlabs(slabs); err != nil {
		log.Printf("WARN statutory: invalid slab table for %s, using default: %v", key, err)
		return DefaultTaxSlabs(regime)
	}
	return slabs
}

// PTSlabs resolves the professional tax slab table for a state and financial
// year. There is no statutory default: absence means the state is exempt,
// reported via the second return value.
func (s *Snapshot) PTSlabs(stateCode string, financialYear int, asOf time.Time) ([]Slab, bool) {
	key := StateSlabKey{StateCode: stateCode, FinancialYear: financialYear}
	raw, ok := s.resolve(key.String(), asOf)
	if !ok {
		return nil, false
	}
	var slabs []Slab
	if err := json.Unmarshal(raw, &slabs); err != nil {
		log.Printf("WARN statutory: malformed PT slab table for %s, treating as exempt: %v", key, err)
		return nil, false
	}
	if err := ValidateSlabs(slabs); err != nil {
		log.Printf("WARN statutory: invalid PT slab table for %s, treating as exempt: %v", key, err)
		return nil, false
	}
	return slabs, true
}
