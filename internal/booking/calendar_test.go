package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBuildMonthGrid(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantPads  int
		wantDays  int
		firstDate string
	}{
		{"april 2025 starts tuesday", 2025, time.April, 1, 30, "2025-04-01"},
		{"september 2025 starts monday", 2025, time.September, 0, 30, "2025-09-01"},
		{"june 2025 starts sunday", 2025, time.June, 6, 30, "2025-06-01"},
		{"february 2024 leap year", 2024, time.February, 3, 29, "2024-02-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := BuildMonthGrid(tt.year, tt.month)
			require.Len(t, slots, tt.wantPads+tt.wantDays)

			for i := 0; i < tt.wantPads; i++ {
				assert.Empty(t, slots[i].Date, "slot %d should be padding", i)
			}
			assert.Equal(t, tt.firstDate, slots[tt.wantPads].Date)
			assert.NotEmpty(t, slots[len(slots)-1].Date)
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	clubStart := date("2025-04-07")
	clubEnd := date("2025-04-17")

	days := map[string]bool{
		"2025-04-08": true,
		"2025-04-09": true,
		"2025-04-10": false,
	}
	booked := NewSelection("2025-04-08")
	selected := NewSelection("2025-04-09")

	tests := []struct {
		name string
		date string
		want DayState
	}{
		{"before club range", "2025-04-01", DayOutOfRange},
		{"after club range", "2025-04-20", DayOutOfRange},
		{"malformed date", "not-a-date", DayOutOfRange},
		{"booked beats selected and available", "2025-04-08", DayBooked},
		{"selected beats available", "2025-04-09", DaySelected},
		{"switched off day", "2025-04-10", DayUnavailable},
		{"in range but no record", "2025-04-11", DayUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.date, clubStart, clubEnd, days, booked, selected)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("out of range wins even when booked and selected", func(t *testing.T) {
		b := NewSelection("2025-04-01")
		s := NewSelection("2025-04-01")
		d := map[string]bool{"2025-04-01": true}
		got := Classify("2025-04-01", clubStart, clubEnd, d, b, s)
		assert.Equal(t, DayOutOfRange, got)
	})

	t.Run("available day with no overlays", func(t *testing.T) {
		got := Classify("2025-04-08", clubStart, clubEnd, days, NewSelection(), NewSelection())
		assert.Equal(t, DayAvailable, got)
	})
}

func TestCanNavigate(t *testing.T) {
	clubStart := date("2025-04-07")
	clubEnd := date("2025-05-17")

	tests := []struct {
		name  string
		dir   NavDirection
		year  int
		month time.Month
		want  bool
	}{
		{"no prev before first month", NavPrev, 2025, time.April, false},
		{"next from first month", NavNext, 2025, time.April, true},
		{"prev from last month", NavPrev, 2025, time.May, true},
		{"no next past last month", NavNext, 2025, time.May, false},
		{"unknown direction", NavDirection("sideways"), 2025, time.April, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanNavigate(tt.dir, tt.year, tt.month, clubStart, clubEnd)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("partial edge months stay reachable", func(t *testing.T) {
		// Club ends May 17: May is reachable from April even though it
		// only has bookable days in its first half.
		assert.True(t, CanNavigate(NavNext, 2025, time.April, clubStart, clubEnd))
	})
}
