package statutory

import "github.com/shopspring/decimal"

// Statutory contribution rates. These are fixed by the schemes themselves;
// the wage ceilings they apply against come from configuration.
var (
	pfEmployeeRate  = decimal.NewFromFloat(0.12)
	pfEmployerRate  = decimal.NewFromFloat(0.0833)
	epsRate         = decimal.NewFromFloat(0.0167)
	pfAdminRate     = decimal.NewFromFloat(0.0033)
	epsMonthlyCap   = decimal.NewFromInt(1250)
	esiEmployeeRate = decimal.NewFromFloat(0.0075)
	esiEmployerRate = decimal.NewFromFloat(0.0325)
)

// PFResult holds one month's Provident Fund contribution figures. All values
// are rounded to two places; intermediates carry full precision.
type PFResult struct {
	PFWages                 decimal.Decimal
	EmployeeContribution    decimal.Decimal
	EmployerContributionPF  decimal.Decimal
	EmployerContributionEPS decimal.Decimal
	AdminCharges            decimal.Decimal
	TotalContribution       decimal.Decimal
}

// ComputePF calculates the monthly PF contributions over basic + dearness
// allowance, capped at the resolved ceiling. The EPS component is capped at
// the statutory monthly maximum once the uncapped wage base exceeds the same
// resolved ceiling, keeping the cap check consistent with the wage capping.
func ComputePF(basicSalary, dearnessAllowance, ceiling decimal.Decimal) (*PFResult, error) {
	if err := nonNegative("basicSalary", basicSalary); err != nil {
		return nil, err
	}
	if err := nonNegative("dearnessAllowance", dearnessAllowance); err != nil {
		return nil, err
	}
	if err := positive("ceiling", ceiling); err != nil {
		return nil, err
	}

	wageBase := basicSalary.Add(dearnessAllowance)
	pfWages := decimal.Min(wageBase, ceiling)

	employee := pfWages.Mul(pfEmployeeRate)
	employerPF := pfWages.Mul(pfEmployerRate)
	eps := pfWages.Mul(epsRate)
	if wageBase.GreaterThan(ceiling) {
		eps = epsMonthlyCap
	}
	admin := pfWages.Mul(pfAdminRate)
	total := employee.Add(employerPF).Add(eps)

	return &PFResult{
		PFWages:                 pfWages.Round(2),
		EmployeeContribution:    employee.Round(2),
		EmployerContributionPF:  employerPF.Round(2),
		EmployerContributionEPS: eps.Round(2),
		AdminCharges:            admin.Round(2),
		TotalContribution:       total.Round(2),
	}, nil
}

// ESIResult holds one month's ESI contribution figures. Contributions are
// computed even when the employee is over the eligibility ceiling (a capped
// preview); consumers must gate the actual deduction on IsEligible.
type ESIResult struct {
	ESIWages             decimal.Decimal
	EmployeeContribution decimal.Decimal
	EmployerContribution decimal.Decimal
	TotalContribution    decimal.Decimal
	IsEligible           bool
}

// ComputeESI calculates the monthly ESI contributions over the monthly salary
// capped at the resolved ceiling. Eligibility is salary at or below ceiling.
func ComputeESI(monthlySalary, ceiling decimal.Decimal) (*ESIResult, error) {
	if err := nonNegative("monthlySalary", monthlySalary); err != nil {
		return nil, err
	}
	if err := positive("ceiling", ceiling); err != nil {
		return nil, err
	}

	esiWages := decimal.Min(monthlySalary, ceiling)
	employee := esiWages.Mul(esiEmployeeRate)
	employer := esiWages.Mul(esiEmployerRate)

	return &ESIResult{
		ESIWages:             esiWages.Round(2),
		EmployeeContribution: employee.Round(2),
		EmployerContribution: employer.Round(2),
		TotalContribution:    employee.Add(employer).Round(2),
		IsEligible:           monthlySalary.LessThanOrEqual(ceiling),
	}, nil
}
