package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func weekSnapshots() []DaySnapshot {
	return []DaySnapshot{
		{Date: "2025-04-07", IsAvailable: true},
		{Date: "2025-04-08", IsAvailable: true},
		{Date: "2025-04-09", IsAvailable: false},
		{Date: "2025-04-10", IsAvailable: true},
		{Date: "2025-04-11", IsAvailable: true},
	}
}

func TestComputeExtensionPool(t *testing.T) {
	t.Run("excludes booked and unavailable days", func(t *testing.T) {
		booked := NewSelection("2025-04-07", "2025-04-08")
		pool := ComputeExtensionPool(weekSnapshots(), booked)
		assert.Equal(t, []string{"2025-04-10", "2025-04-11"}, pool)
	})

	t.Run("pool is disjoint from booked dates", func(t *testing.T) {
		booked := NewSelection("2025-04-07", "2025-04-10")
		pool := ComputeExtensionPool(weekSnapshots(), booked)
		for _, d := range pool {
			assert.False(t, booked.Has(d), "pool must not contain booked date %s", d)
		}
	})

	t.Run("fully booked club yields empty pool", func(t *testing.T) {
		booked := NewSelection("2025-04-07", "2025-04-08", "2025-04-10", "2025-04-11")
		pool := ComputeExtensionPool(weekSnapshots(), booked)
		assert.Empty(t, pool)
	})

	t.Run("nothing booked returns all available days", func(t *testing.T) {
		pool := ComputeExtensionPool(weekSnapshots(), NewSelection())
		assert.Equal(t, []string{"2025-04-07", "2025-04-08", "2025-04-10", "2025-04-11"}, pool)
	})

	t.Run("no day records yields empty pool", func(t *testing.T) {
		pool := ComputeExtensionPool(nil, NewSelection("2025-04-07"))
		assert.Empty(t, pool)
	})

	t.Run("result is sorted", func(t *testing.T) {
		snapshots := []DaySnapshot{
			{Date: "2025-04-11", IsAvailable: true},
			{Date: "2025-04-07", IsAvailable: true},
			{Date: "2025-04-09", IsAvailable: true},
		}
		pool := ComputeExtensionPool(snapshots, NewSelection())
		assert.Equal(t, []string{"2025-04-07", "2025-04-09", "2025-04-11"}, pool)
	})
}
