package booking

import (
	"sort"
)

// ComputeExtensionPool returns the dates still open for a follow-on
// purchase: available club days minus the dates already paid for. The
// result is disjoint from bookedDates by construction, so an extension
// can never re-bill a date from the original transaction.
//
// An empty pool means the booking already covers every bookable day;
// callers surface that as a terminal state rather than an empty grid.
func ComputeExtensionPool(days []DaySnapshot, bookedDates Selection) []string {
	var pool []string
	for _, d := range days {
		if !d.IsAvailable {
			continue
		}
		if bookedDates.Has(d.Date) {
			continue
		}
		pool = append(pool, d.Date)
	}
	sort.Strings(pool)
	return pool
}
