package booking

import (
	"time"
)

// DayState classifies a single calendar day for rendering.
type DayState string

const (
	DayOutOfRange  DayState = "out_of_range"
	DayUnavailable DayState = "unavailable"
	DayAvailable   DayState = "available"
	DayBooked      DayState = "booked"
	DaySelected    DayState = "selected"
)

// GridSlot is one cell of a month grid. Padding cells carry an empty
// Date so the first day of the month lands in its weekday column.
type GridSlot struct {
	Date  string   `json:"date,omitempty"`
	State DayState `json:"state,omitempty"`
}

// NavDirection selects which adjacent month to navigate to.
type NavDirection string

const (
	NavPrev NavDirection = "prev"
	NavNext NavDirection = "next"
)

// BuildMonthGrid returns the slots for one month, padded with empty
// leading cells so day 1 aligns with its weekday. Weeks start on Monday.
func BuildMonthGrid(year int, month time.Month) []GridSlot {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	slots := make([]GridSlot, 0, mondayOffset(first)+last.Day())
	for i := 0; i < mondayOffset(first); i++ {
		slots = append(slots, GridSlot{})
	}
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		slots = append(slots, GridSlot{Date: d.Format(dateLayout)})
	}
	return slots
}

// Classify resolves the state of one date. Precedence: out of range
// beats everything, then booked, then selected, then available.
func Classify(date string, clubStart, clubEnd time.Time, days map[string]bool, booked, selected Selection) DayState {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return DayOutOfRange
	}
	if d.Before(clubStart) || d.After(clubEnd) {
		return DayOutOfRange
	}
	if booked.Has(date) {
		return DayBooked
	}
	if selected.Has(date) {
		return DaySelected
	}
	if available, ok := days[date]; ok && available {
		return DayAvailable
	}
	return DayUnavailable
}

// CanNavigate reports whether the month adjacent to (year, month) in the
// given direction still overlaps the club's date range. A partial first
// or last month is reachable; months fully outside the range are not.
func CanNavigate(dir NavDirection, year int, month time.Month, clubStart, clubEnd time.Time) bool {
	current := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	switch dir {
	case NavPrev:
		lastOfPrev := current.AddDate(0, 0, -1)
		return !lastOfPrev.Before(clubStart)
	case NavNext:
		firstOfNext := current.AddDate(0, 1, 0)
		return !firstOfNext.After(clubEnd)
	default:
		return false
	}
}

// mondayOffset returns how many empty cells precede the given date in a
// Monday-first week row.
func mondayOffset(t time.Time) int {
	// time.Weekday is Sunday-based.
	return (int(t.Weekday()) + 6) % 7
}
