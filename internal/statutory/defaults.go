package statutory

import (
	"github.com/shopspring/decimal"

	"anupalan/internal/domain"
)

// Built-in fallbacks used when no configuration row matches a key or the
// stored value fails to parse. Professional tax has no statutory default:
// an unconfigured state is simply exempt.
var (
	DefaultPFCeiling         = decimal.NewFromInt(15000)
	DefaultESICeiling        = decimal.NewFromInt(21000)
	DefaultWithdrawalTDSRate = decimal.NewFromFloat(0.20)
)

func dec(v int64) decimal.Decimal     { return decimal.NewFromInt(v) }
func decPtr(v int64) *decimal.Decimal { d := decimal.NewFromInt(v); return &d }
func rate(v float64) decimal.Decimal  { return decimal.NewFromFloat(v) }

// defaultNewRegimeSlabs is the built-in new regime slab table.
var defaultNewRegimeSlabs = []Slab{
	{From: dec(0), To: decPtr(300000), Rate: rate(0)},
	{From: dec(300000), To: decPtr(700000), Rate: rate(0.05)},
	{From: dec(700000), To: decPtr(1000000), Rate: rate(0.10)},
	{From: dec(1000000), To: decPtr(1700000), Rate: rate(0.15)},
	{From: dec(1700000), To: nil, Rate: rate(0.20)},
}

// defaultOldRegimeSlabs is the built-in old regime slab table.
var defaultOldRegimeSlabs = []Slab{
	{From: dec(0), To: decPtr(250000), Rate: rate(0)},
	{From: dec(250000), To: decPtr(500000), Rate: rate(0.05)},
	{From: dec(500000), To: decPtr(1000000), Rate: rate(0.20)},
	{From: dec(1000000), To: nil, Rate: rate(0.30)},
}

// DefaultTaxSlabs returns the built-in slab table for a regime. The slices
// returned are copies so callers cannot corrupt the defaults.
func DefaultTaxSlabs(regime domain.TaxRegime) []Slab {
	var src []Slab
	if regime == domain.RegimeOld {
		src = defaultOldRegimeSlabs
	} else {
		src = defaultNewRegimeSlabs
	}
	out := make([]Slab, len(src))
	copy(out, src)
	return out
}
