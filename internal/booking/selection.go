package booking

import (
	"sort"

	"github.com/brightdays/holiday-club-backend/internal/bookingoption"
)

// Selection is the set of dates chosen within one booking session,
// keyed by ISO date string.
type Selection map[string]struct{}

func NewSelection(dates ...string) Selection {
	s := make(Selection, len(dates))
	for _, d := range dates {
		s[d] = struct{}{}
	}
	return s
}

func (s Selection) Has(date string) bool {
	_, ok := s[date]
	return ok
}

func (s Selection) Count() int {
	return len(s)
}

// Dates returns the selected dates in ascending order.
func (s Selection) Dates() []string {
	out := make([]string, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

func (s Selection) clone() Selection {
	out := make(Selection, len(s))
	for d := range s {
		out[d] = struct{}{}
	}
	return out
}

// Apply resolves a date click against the current selection and returns
// the resulting selection. The input is never mutated.
//
// Per option type:
//   - single_day: an available date replaces the whole selection;
//     clicking the already-selected date is a no-op.
//   - multi_day: available dates toggle in, selected dates toggle out.
//   - full_week: the selection is pinned to the full pool regardless of
//     the click.
//
// Clicks on booked, unavailable or out-of-range dates never change the
// selection.
func Apply(sel Selection, date string, optionType bookingoption.OptionType, state DayState, pool []string) Selection {
	if optionType == bookingoption.TypeFullWeek {
		return NewSelection(pool...)
	}

	if state != DayAvailable && state != DaySelected {
		return sel
	}

	switch optionType {
	case bookingoption.TypeSingleDay:
		if state == DaySelected {
			return sel
		}
		return NewSelection(date)

	case bookingoption.TypeMultiDay:
		next := sel.clone()
		if state == DaySelected {
			delete(next, date)
		} else {
			next[date] = struct{}{}
		}
		return next
	}

	return sel
}

// Validate checks whether the selection is complete enough to submit.
func Validate(sel Selection, optionType bookingoption.OptionType) error {
	switch optionType {
	case bookingoption.TypeFullWeek:
		// Set is fixed to the pool; nothing for the user to get wrong.
		return nil
	case bookingoption.TypeSingleDay:
		if sel.Count() == 0 {
			return ErrEmptySelection
		}
		if sel.Count() > 1 {
			return ErrSingleDateRequired
		}
		return nil
	case bookingoption.TypeMultiDay:
		if sel.Count() == 0 {
			return ErrEmptySelection
		}
		if sel.Count() < 2 {
			return ErrIncompleteSelection
		}
		return nil
	}
	return ErrEmptySelection
}
