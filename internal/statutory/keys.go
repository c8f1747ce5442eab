// Package statutory implements the statutory payroll compliance calculations:
// Provident Fund and ESI contributions, progressive income tax under both
// regimes, state professional tax, and the aggregation of per-employee results
// into filing totals. Every function is pure: it operates on explicit inputs
// and a resolved configuration snapshot, never on a clock or a database.
package statutory

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"anupalan/internal/domain"
)

// Key is a typed statutory configuration key. The external settings store is
// string-keyed; keys are parsed once at the boundary so the calculators never
// see formatted strings.
type Key interface {
	String() string
}

// CeilingKey identifies a single monetary ceiling value.
type CeilingKey string

const (
	KeyPFCeiling  CeilingKey = "PF_CEILING"
	KeyESICeiling CeilingKey = "ESI_CEILING"
)

func (k CeilingKey) String() string { return string(k) }

// RateKey identifies a single flat rate value.
type RateKey string

// KeyWithdrawalTDSRate configures the flat TDS rate on PF withdrawals.
const KeyWithdrawalTDSRate RateKey = "PF_WITHDRAWAL_TDS_RATE"

func (k RateKey) String() string { return string(k) }

// SlabKey identifies an income tax slab table for a regime and financial year.
type SlabKey struct {
	Regime        domain.TaxRegime
	FinancialYear int
}

func (k SlabKey) String() string {
	return fmt.Sprintf("IT_SLAB_%sREGIME_FY%d", strings.ToUpper(string(k.Regime)), k.FinancialYear)
}

// StateSlabKey identifies a professional tax slab table for a state and
// financial year.
type StateSlabKey struct {
	StateCode     string
	FinancialYear int
}

func (k StateSlabKey) String() string {
	return fmt.Sprintf("PT_SLAB_%s_FY%d", strings.ToUpper(k.StateCode), k.FinancialYear)
}

var (
	itSlabKeyRe = regexp.MustCompile(`^IT_SLAB_(OLD|NEW)REGIME_FY(\d{4})$`)
	ptSlabKeyRe = regexp.MustCompile(`^PT_SLAB_([A-Z]{2})_FY(\d{4})$`)
)

// ParseKey converts the external string form of a configuration key into its
// typed representation. Unknown keys are rejected so administrators cannot
// store configuration that nothing will ever read.
func ParseKey(s string) (Key, error) {
	switch s {
	case string(KeyPFCeiling):
		return KeyPFCeiling, nil
	case string(KeyESICeiling):
		return KeyESICeiling, nil
	case string(KeyWithdrawalTDSRate):
		return KeyWithdrawalTDSRate, nil
	}
	if m := itSlabKeyRe.FindStringSubmatch(s); m != nil {
		fy, _ := strconv.Atoi(m[2])
		regime := domain.RegimeNew
		if m[1] == "OLD" {
			regime = domain.RegimeOld
		}
		return SlabKey{Regime: regime, FinancialYear: fy}, nil
	}
	if m := ptSlabKeyRe.FindStringSubmatch(s); m != nil {
		fy, _ := strconv.Atoi(m[2])
		return StateSlabKey{StateCode: m[1], FinancialYear: fy}, nil
	}
	return nil, fmt.Errorf("unknown statutory configuration key %q", s)
}
