package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightdays/holiday-club-backend/internal/bookingoption"
)

func TestComputeSubtotal(t *testing.T) {
	tests := []struct {
		name       string
		optType    bookingoption.OptionType
		price      int64
		dateCount  int
		childCount int
		want       int64
	}{
		{"full week flat per child", bookingoption.TypeFullWeek, 9500, 5, 2, 19000},
		{"full week ignores date count", bookingoption.TypeFullWeek, 9500, 3, 2, 19000},
		{"single day flat per child", bookingoption.TypeSingleDay, 3500, 1, 3, 10500},
		{"multi day per child per day", bookingoption.TypeMultiDay, 3500, 2, 2, 14000},
		{"multi day single child", bookingoption.TypeMultiDay, 3500, 4, 1, 14000},
		{"zero price", bookingoption.TypeMultiDay, 0, 3, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeSubtotal(tt.optType, tt.price, tt.dateCount, tt.childCount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("single day rejects other date counts", func(t *testing.T) {
		_, err := ComputeSubtotal(bookingoption.TypeSingleDay, 3500, 2, 1)
		assert.ErrorIs(t, err, ErrSingleDateRequired)

		_, err = ComputeSubtotal(bookingoption.TypeSingleDay, 3500, 0, 1)
		assert.ErrorIs(t, err, ErrSingleDateRequired)
	})

	t.Run("multi day grows with dates and children", func(t *testing.T) {
		base, err := ComputeSubtotal(bookingoption.TypeMultiDay, 3500, 2, 2)
		require.NoError(t, err)

		moreDates, err := ComputeSubtotal(bookingoption.TypeMultiDay, 3500, 3, 2)
		require.NoError(t, err)
		assert.Greater(t, moreDates, base)

		moreChildren, err := ComputeSubtotal(bookingoption.TypeMultiDay, 3500, 2, 3)
		require.NoError(t, err)
		assert.Greater(t, moreChildren, base)
	})
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name         string
		subtotal     int64
		percent      int
		wantDiscount int64
		wantTotal    int64
	}{
		{"ten percent off example", 14000, 10, 1400, 12600},
		{"no promo code", 14000, 0, 0, 14000},
		{"full discount", 14000, 100, 14000, 0},
		{"rounds half up", 999, 5, 50, 949},   // 49.95 -> 50
		{"rounds down below half", 101, 1, 1, 100}, // 1.01 -> 1
		{"zero subtotal", 0, 50, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount, total := ApplyDiscount(tt.subtotal, tt.percent)
			assert.Equal(t, tt.wantDiscount, discount)
			assert.Equal(t, tt.wantTotal, total)
			assert.Equal(t, tt.subtotal, discount+total)
		})
	}

	t.Run("total stays within bounds for all percents", func(t *testing.T) {
		for percent := 0; percent <= 100; percent++ {
			_, total := ApplyDiscount(13337, percent)
			assert.GreaterOrEqual(t, total, int64(0), "percent %d", percent)
			assert.LessOrEqual(t, total, int64(13337), "percent %d", percent)
		}
	})
}
