package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDiscount(t *testing.T) {
	testCases := []struct {
		name             string
		baseFee          int32
		discountPercent  int32
		expectedDiscount int32
		expectedFinal    int32
	}{
		{
			name:             "20 percent off 500",
			baseFee:          500,
			discountPercent:  20,
			expectedDiscount: 100,
			expectedFinal:    400,
		},
		{
			name:             "No discount",
			baseFee:          500,
			discountPercent:  0,
			expectedDiscount: 0,
			expectedFinal:    500,
		},
		{
			name:             "Full discount is exactly zero",
			baseFee:          999,
			discountPercent:  100,
			expectedDiscount: 999,
			expectedFinal:    0,
		},
		{
			name:             "Rounds half up",
			baseFee:          333,
			discountPercent:  10,
			expectedDiscount: 33,
			expectedFinal:    300,
		},
		{
			name:             "Rounds 0.5 up",
			baseFee:          250,
			discountPercent:  33,
			expectedDiscount: 83,
			expectedFinal:    167,
		},
		{
			name:             "Zero fee stays zero",
			baseFee:          0,
			discountPercent:  50,
			expectedDiscount: 0,
			expectedFinal:    0,
		},
		{
			name:             "Percent above 100 clamps",
			baseFee:          400,
			discountPercent:  150,
			expectedDiscount: 400,
			expectedFinal:    0,
		},
		{
			name:             "Negative percent ignored",
			baseFee:          400,
			discountPercent:  -5,
			expectedDiscount: 0,
			expectedFinal:    400,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			discount, final := ComputeDiscount(tc.baseFee, tc.discountPercent)
			assert.Equal(t, tc.expectedDiscount, discount)
			assert.Equal(t, tc.expectedFinal, final)
		})
	}
}

func TestComputeDiscountMonotonic(t *testing.T) {
	// Raising the percent must never raise the final amount, and the final
	// amount must never go negative.
	base := int32(777)
	prev := base
	for pct := int32(0); pct <= 100; pct++ {
		_, final := ComputeDiscount(base, pct)
		assert.GreaterOrEqual(t, prev, final, "final amount increased at %d%%", pct)
		assert.GreaterOrEqual(t, final, int32(0))
		prev = final
	}
}
