package statutory

import "github.com/shopspring/decimal"

// PTResult is the monthly professional tax deduction for one employee.
type PTResult struct {
	StateCode     string
	MonthlySalary decimal.Decimal
	PTDeduction   decimal.Decimal
	IsExempt      bool
}

// ComputeProfessionalTax looks up the flat deduction amount for the salary
// band in the state's slab table. A nil table (state not configured) or an
// unmatched band is a valid business state: exempt, zero deduction.
func ComputeProfessionalTax(stateCode string, monthlySalary decimal.Decimal, slabs []Slab) (*PTResult, error) {
	if err := nonNegative("monthlySalary", monthlySalary); err != nil {
		return nil, err
	}

	result := &PTResult{
		StateCode:     stateCode,
		MonthlySalary: monthlySalary.Round(2),
		PTDeduction:   decimal.Zero,
		IsExempt:      true,
	}
	if len(slabs) == 0 {
		return result, nil
	}

	amount, ok := flatBandAmount(monthlySalary, slabs)
	if !ok {
		return result, nil
	}
	result.PTDeduction = amount.Round(2)
	result.IsExempt = amount.IsZero()
	return result, nil
}
