package statutory

import (
	"github.com/shopspring/decimal"

	"anupalan/internal/domain"
)

var (
	// StandardDeduction is flat and regime-independent under current law.
	StandardDeduction = decimal.NewFromInt(50000)

	cessRate           = decimal.NewFromFloat(0.04)
	rebateThresholdNew = decimal.NewFromInt(700000)
	rebateThresholdOld = decimal.NewFromInt(500000)
)

// WageComponents are the raw monthly wage components supplied by payroll.
type WageComponents struct {
	BasicSalary        decimal.Decimal
	DearnessAllowance  decimal.Decimal
	HouseRentAllowance decimal.Decimal
	SpecialAllowance   decimal.Decimal
	OtherAllowance     decimal.Decimal
}

// Gross returns the sum of all wage components.
func (w WageComponents) Gross() decimal.Decimal {
	return w.BasicSalary.
		Add(w.DearnessAllowance).
		Add(w.HouseRentAllowance).
		Add(w.SpecialAllowance).
		Add(w.OtherAllowance)
}

func (w WageComponents) validate() error {
	checks := []struct {
		field string
		value decimal.Decimal
	}{
		{"basicSalary", w.BasicSalary},
		{"dearnessAllowance", w.DearnessAllowance},
		{"houseRentAllowance", w.HouseRentAllowance},
		{"specialAllowance", w.SpecialAllowance},
		{"otherAllowance", w.OtherAllowance},
	}
	for _, c := range checks {
		if err := nonNegative(c.field, c.value); err != nil {
			return err
		}
	}
	return nil
}

// DeclarationTotals are the verified deduction claims that reduce taxable
// income under the old regime. Section 80E is recorded on the declaration but
// does not enter the deduction composition.
type DeclarationTotals struct {
	Section80C decimal.Decimal
	Section80D decimal.Decimal
	Section80G decimal.Decimal
	HRAClaim   decimal.Decimal
}

func (d DeclarationTotals) total() decimal.Decimal {
	return d.Section80C.Add(d.Section80D).Add(d.Section80G).Add(d.HRAClaim)
}

// TaxInput carries everything the income tax calculation needs for one
// employee and financial year. Annual holds annualized wage components.
type TaxInput struct {
	Annual         WageComponents
	Regime         domain.TaxRegime
	Declaration    DeclarationTotals
	TDSDeducted    decimal.Decimal
	AdvanceTaxPaid decimal.Decimal
}

// TaxResult is the complete, internally consistent income tax computation.
type TaxResult struct {
	Regime            domain.TaxRegime
	GrossSalary       decimal.Decimal
	StandardDeduction decimal.Decimal
	TaxableIncome     decimal.Decimal
	TaxCalculated     decimal.Decimal
	RebateUnder87A    decimal.Decimal
	TaxAfterRebate    decimal.Decimal
	Surcharge         decimal.Decimal
	Cess              decimal.Decimal
	TotalTaxLiability decimal.Decimal
	TDSDeducted       decimal.Decimal
	AdvanceTaxPaid    decimal.Decimal
	TaxRefundable     decimal.Decimal
}

// ComputeIncomeTax runs the full annual income tax computation: gross
// aggregation, regime-dependent deduction composition, marginal slab
// taxation, the Section 87A rebate cliff, cess, and TDS/advance tax
// reconciliation. Surcharge is carried as zero in current scope.
func ComputeIncomeTax(in TaxInput, slabs []Slab) (*TaxResult, error) {
	if err := in.Annual.validate(); err != nil {
		return nil, err
	}
	if err := nonNegative("tdsDeducted", in.TDSDeducted); err != nil {
		return nil, err
	}
	if err := nonNegative("advanceTaxPaid", in.AdvanceTaxPaid); err != nil {
		return nil, err
	}
	if in.Regime != domain.RegimeOld && in.Regime != domain.RegimeNew {
		return nil, &ValidationError{Field: "regime", Reason: "must be old or new"}
	}
	if err := ValidateSlabs(slabs); err != nil {
		return nil, &ValidationError{Field: "slabs", Reason: err.Error()}
	}

	gross := in.Annual.Gross()

	deductions := StandardDeduction
	if in.Regime == domain.RegimeOld {
		decl := in.Declaration
		for _, c := range []struct {
			field string
			value decimal.Decimal
		}{
			{"section80C", decl.Section80C},
			{"section80D", decl.Section80D},
			{"section80G", decl.Section80G},
			{"hraClaim", decl.HRAClaim},
		} {
			if err := nonNegative(c.field, c.value); err != nil {
				return nil, err
			}
		}
		deductions = deductions.Add(decl.total())
	}

	taxableIncome := gross.Sub(deductions)
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}

	baseTax := marginalTax(taxableIncome, slabs)

	// Section 87A is an all-or-nothing cliff: at or below the threshold the
	// entire base tax is rebated, one unit above gets nothing.
	threshold := rebateThresholdNew
	if in.Regime == domain.RegimeOld {
		threshold = rebateThresholdOld
	}
	rebate := decimal.Zero
	if taxableIncome.LessThanOrEqual(threshold) {
		rebate = baseTax
	}
	taxAfterRebate := baseTax.Sub(rebate)

	surcharge := decimal.Zero
	cess := taxAfterRebate.Mul(cessRate)
	totalLiability := taxAfterRebate.Add(cess).Add(surcharge)

	refundable := in.TDSDeducted.Add(in.AdvanceTaxPaid).Sub(totalLiability)
	if refundable.IsNegative() {
		refundable = decimal.Zero
	}

	return &TaxResult{
		Regime:            in.Regime,
		GrossSalary:       gross.Round(2),
		StandardDeduction: StandardDeduction.Round(2),
		TaxableIncome:     taxableIncome.Round(2),
		TaxCalculated:     baseTax.Round(2),
		RebateUnder87A:    rebate.Round(2),
		TaxAfterRebate:    taxAfterRebate.Round(2),
		Surcharge:         surcharge.Round(2),
		Cess:              cess.Round(2),
		TotalTaxLiability: totalLiability.Round(2),
		TDSDeducted:       in.TDSDeducted.Round(2),
		AdvanceTaxPaid:    in.AdvanceTaxPaid.Round(2),
		TaxRefundable:     refundable.Round(2),
	}, nil
}
