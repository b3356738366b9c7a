package booking

import (
	"github.com/brightdays/holiday-club-backend/internal/bookingoption"
)

// ComputeSubtotal returns the pre-discount total in minor currency
// units. full_week and single_day are flat per-child prices; multi_day
// is a per-child-per-day rate.
func ComputeSubtotal(optionType bookingoption.OptionType, pricePerChild int64, selectedDateCount, childCount int) (int64, error) {
	switch optionType {
	case bookingoption.TypeFullWeek:
		return pricePerChild * int64(childCount), nil
	case bookingoption.TypeSingleDay:
		if selectedDateCount != 1 {
			return 0, ErrSingleDateRequired
		}
		return pricePerChild * int64(childCount), nil
	case bookingoption.TypeMultiDay:
		return pricePerChild * int64(selectedDateCount) * int64(childCount), nil
	}
	return 0, ErrEmptySelection
}

// ApplyDiscount splits a subtotal into the discounted amount and the
// payable total. All math is integer-only; the single rounding step is
// round-half-up on the discount amount.
func ApplyDiscount(subtotal int64, discountPercent int) (discountAmount, total int64) {
	discountAmount = (subtotal*int64(discountPercent) + 50) / 100
	return discountAmount, subtotal - discountAmount
}
