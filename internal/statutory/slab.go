package statutory

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Slab is one bracket of a slab table. For income tax the rate is marginal;
// for professional tax it is a flat monthly deduction amount. A nil To marks
// the conventionally unbounded last bracket.
type Slab struct {
	From decimal.Decimal  `json:"from"`
	To   *decimal.Decimal `json:"to"`
	Rate decimal.Decimal  `json:"rate"`
}

// ValidateSlabs checks that a slab table is ordered by From, non-overlapping,
// and that only the last entry is unbounded.
func ValidateSlabs(slabs []Slab) error {
	if len(slabs) == 0 {
		return fmt.Errorf("slab table is empty")
	}
	for i, s := range slabs {
		if s.From.IsNegative() {
			return fmt.Errorf("slab %d: from is negative", i)
		}
		if s.Rate.IsNegative() {
			return fmt.Errorf("slab %d: rate is negative", i)
		}
		if s.To == nil {
			if i != len(slabs)-1 {
				return fmt.Errorf("slab %d: only the last slab may be unbounded", i)
			}
			continue
		}
		if !s.To.GreaterThan(s.From) {
			return fmt.Errorf("slab %d: to must exceed from", i)
		}
		if i+1 < len(slabs) && slabs[i+1].From.LessThan(*s.To) {
			return fmt.Errorf("slab %d: overlaps the next slab", i)
		}
	}
	return nil
}

// marginalTax applies the standard marginal-bracket algorithm: for each slab
// in ascending order, income above the slab's lower bound and at or below its
// upper bound is taxed at the slab's rate. No slab's rate ever applies to
// income below its own threshold.
func marginalTax(taxableIncome decimal.Decimal, slabs []Slab) decimal.Decimal {
	total := decimal.Zero
	for _, s := range slabs {
		if taxableIncome.LessThanOrEqual(s.From) {
			break
		}
		upper := taxableIncome
		if s.To != nil && s.To.LessThan(taxableIncome) {
			upper = *s.To
		}
		total = total.Add(upper.Sub(s.From).Mul(s.Rate))
	}
	return total
}

// flatBandAmount returns the Rate of the first slab whose inclusive
// [From, To] band contains amount. Used for professional tax, where the rate
// is a fixed deduction amount rather than a percentage.
func flatBandAmount(amount decimal.Decimal, slabs []Slab) (decimal.Decimal, bool) {
	for _, s := range slabs {
		if amount.LessThan(s.From) {
			continue
		}
		if s.To == nil || amount.LessThanOrEqual(*s.To) {
			return s.Rate, true
		}
	}
	return decimal.Zero, false
}
