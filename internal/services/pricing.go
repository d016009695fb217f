package services

// ComputeDiscount derives the discount and final payable amount from a base
// fee and a discount percentage. Amounts are in currency minor units.
//
// The discount is rounded half-up; the final amount is floored at zero so a
// 100% coupon always yields exactly zero.
func ComputeDiscount(baseFee int32, discountPercent int32) (discountAmount int32, finalAmount int32) {
	if baseFee <= 0 || discountPercent <= 0 {
		if baseFee < 0 {
			baseFee = 0
		}
		return 0, baseFee
	}
	if discountPercent > 100 {
		discountPercent = 100
	}

	discountAmount = int32((int64(baseFee)*int64(discountPercent) + 50) / 100)
	finalAmount = baseFee - discountAmount
	if finalAmount < 0 {
		finalAmount = 0
	}
	return discountAmount, finalAmount
}
