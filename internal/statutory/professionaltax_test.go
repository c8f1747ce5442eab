package statutory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func karnatakaPTSlabs() []Slab {
	return []Slab{
		boundedSlab("0", "14999", "0"),
		boundedSlab("15000", "24999", "150"),
		openSlab("25000", "200"),
	}
}

func TestComputeProfessionalTax(t *testing.T) {
	tests := []struct {
		name       string
		salary     string
		wantAmount string
		wantExempt bool
	}{
		{"below first band", "12000", "0.00", true},
		{"middle band", "18000", "150.00", false},
		{"band lower edge", "15000", "150.00", false},
		{"band upper edge", "24999", "150.00", false},
		{"top open band", "90000", "200.00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ComputeProfessionalTax("KA", d(tt.salary), karnatakaPTSlabs())
			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, res.PTDeduction.StringFixed(2))
			assert.Equal(t, tt.wantExempt, res.IsExempt)
		})
	}
}

func TestComputeProfessionalTax_UnconfiguredStateIsExempt(t *testing.T) {
	res, err := ComputeProfessionalTax("DL", d("50000"), nil)
	require.NoError(t, err)
	assert.True(t, res.IsExempt)
	assert.Equal(t, "0.00", res.PTDeduction.StringFixed(2))
}

func TestComputeProfessionalTax_RejectsNegativeSalary(t *testing.T) {
	_, err := ComputeProfessionalTax("KA", d("-1"), karnatakaPTSlabs())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "monthlySalary", verr.Field)
}
