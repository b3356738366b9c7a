package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brightdays/holiday-club-backend/internal/bookingoption"
)

func TestApplySingleDay(t *testing.T) {
	t.Run("available date replaces the whole selection", func(t *testing.T) {
		sel := NewSelection("2025-04-09")
		got := Apply(sel, "2025-04-10", bookingoption.TypeSingleDay, DayAvailable, nil)
		assert.Equal(t, []string{"2025-04-10"}, got.Dates())
	})

	t.Run("clicking the selected date is a no-op", func(t *testing.T) {
		sel := NewSelection("2025-04-09")
		got := Apply(sel, "2025-04-09", bookingoption.TypeSingleDay, DaySelected, nil)
		assert.Equal(t, []string{"2025-04-09"}, got.Dates())
	})

	t.Run("first pick on empty selection", func(t *testing.T) {
		got := Apply(NewSelection(), "2025-04-09", bookingoption.TypeSingleDay, DayAvailable, nil)
		assert.Equal(t, []string{"2025-04-09"}, got.Dates())
	})
}

func TestApplyMultiDay(t *testing.T) {
	t.Run("available date toggles in", func(t *testing.T) {
		sel := NewSelection("2025-04-08")
		got := Apply(sel, "2025-04-09", bookingoption.TypeMultiDay, DayAvailable, nil)
		assert.Equal(t, []string{"2025-04-08", "2025-04-09"}, got.Dates())
	})

	t.Run("selected date toggles out", func(t *testing.T) {
		sel := NewSelection("2025-04-08", "2025-04-09")
		got := Apply(sel, "2025-04-09", bookingoption.TypeMultiDay, DaySelected, nil)
		assert.Equal(t, []string{"2025-04-08"}, got.Dates())
	})

	t.Run("add then remove is identity", func(t *testing.T) {
		sel := NewSelection("2025-04-08")
		added := Apply(sel, "2025-04-09", bookingoption.TypeMultiDay, DayAvailable, nil)
		removed := Apply(added, "2025-04-09", bookingoption.TypeMultiDay, DaySelected, nil)
		assert.Equal(t, sel.Dates(), removed.Dates())
	})

	t.Run("input selection is never mutated", func(t *testing.T) {
		sel := NewSelection("2025-04-08")
		_ = Apply(sel, "2025-04-09", bookingoption.TypeMultiDay, DayAvailable, nil)
		assert.Equal(t, []string{"2025-04-08"}, sel.Dates())
	})
}

func TestApplyFullWeek(t *testing.T) {
	pool := []string{"2025-04-07", "2025-04-08", "2025-04-09", "2025-04-10", "2025-04-11"}

	t.Run("selection is pinned to the pool", func(t *testing.T) {
		got := Apply(NewSelection("2025-04-08"), "2025-04-09", bookingoption.TypeFullWeek, DaySelected, pool)
		assert.Equal(t, pool, got.Dates())
	})

	t.Run("click state is irrelevant", func(t *testing.T) {
		for _, state := range []DayState{DayAvailable, DaySelected, DayBooked, DayUnavailable, DayOutOfRange} {
			got := Apply(NewSelection(), "2025-04-09", bookingoption.TypeFullWeek, state, pool)
			assert.Equal(t, pool, got.Dates(), "state %s", state)
		}
	})
}

func TestApplyIgnoresDeadStates(t *testing.T) {
	sel := NewSelection("2025-04-08")

	for _, optType := range []bookingoption.OptionType{bookingoption.TypeSingleDay, bookingoption.TypeMultiDay} {
		for _, state := range []DayState{DayBooked, DayUnavailable, DayOutOfRange} {
			got := Apply(sel, "2025-04-09", optType, state, nil)
			assert.Equal(t, sel.Dates(), got.Dates(), "type %s state %s", optType, state)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		sel     Selection
		optType bookingoption.OptionType
		wantErr error
	}{
		{"full week always valid", NewSelection(), bookingoption.TypeFullWeek, nil},
		{"single day with one date", NewSelection("2025-04-09"), bookingoption.TypeSingleDay, nil},
		{"single day empty", NewSelection(), bookingoption.TypeSingleDay, ErrEmptySelection},
		{"single day with two dates", NewSelection("2025-04-09", "2025-04-10"), bookingoption.TypeSingleDay, ErrSingleDateRequired},
		{"multi day with two dates", NewSelection("2025-04-09", "2025-04-10"), bookingoption.TypeMultiDay, nil},
		{"multi day empty", NewSelection(), bookingoption.TypeMultiDay, ErrEmptySelection},
		{"multi day with one date is incomplete", NewSelection("2025-04-09"), bookingoption.TypeMultiDay, ErrIncompleteSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.sel, tt.optType)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
