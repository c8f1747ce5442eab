package statutory

import "github.com/shopspring/decimal"

// WithdrawalResult holds the flat-rate TDS breakdown of a PF withdrawal.
type WithdrawalResult struct {
	WithdrawalAmount decimal.Decimal
	TDSAmount        decimal.Decimal
	NetPayable       decimal.Decimal
}

// ComputeWithdrawalTDS applies the flat withdrawal TDS rate uniformly,
// regardless of withdrawal type. The rate comes from configuration
// (default 20%); no graduated tenure-based rule is applied.
func ComputeWithdrawalTDS(amount, taxRate decimal.Decimal) (*WithdrawalResult, error) {
	if err := positive("withdrawalAmount", amount); err != nil {
		return nil, err
	}
	if err := nonNegative("taxRate", taxRate); err != nil {
		return nil, err
	}
	if taxRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, &ValidationError{Field: "taxRate", Reason: "must not exceed 1"}
	}

	tds := amount.Mul(taxRate)
	return &WithdrawalResult{
		WithdrawalAmount: amount.Round(2),
		TDSAmount:        tds.Round(2),
		NetPayable:       amount.Sub(tds).Round(2),
	}, nil
}
