package date

import (
	"iter"
	"slices"
	"sort"
)

// History stores a chronological series of daily closing prices.
// It ensures that dates are unique and the series is always sorted,
// so consecutive values yield well-defined periodic returns.
type History struct {
	days   []Date
	values []float64
}

// Len returns the number of observations in the history.
func (h *History) Len() int { return len(h.days) }

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History) Latest() (day Date, value float64) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, 0
	}
	return h.days[last], h.values[last]
}

// chronological is a private implementation to keep the history sorted.
type chronological struct{ *History }

func (s chronological) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }

func (s chronological) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

// Append adds an observation to the history.
//
// An existing value at that date is overwritten, giving priority to the
// latest data.
func (h *History) Append(on Date, v float64) *History {
	if i := slices.Index(h.days, on); i >= 0 {
		h.values[i] = v
		return h
	}
	h.days, h.values = append(h.days, on), append(h.values, v)
	sort.Sort(chronological{h})
	return h
}

// Get returns the value at 'day' and true, or zero and false.
func (h *History) Get(day Date) (float64, bool) {
	if i := slices.Index(h.days, day); i >= 0 {
		return h.values[i], true
	}
	return 0, false
}

// Values returns an iterator over all date/value pairs in chronological order.
func (h *History) Values() iter.Seq2[Date, float64] {
	return func(yield func(Date, float64) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Window returns the sub-history of observations within [from, to], boundaries
// included. The returned history shares storage with h and must not be
// appended to.
func (h *History) Window(from, to Date) *History {
	cmp := func(d, t Date) int {
		if d.After(t) {
			return 1
		}
		if d.Before(t) {
			return -1
		}
		return 0
	}
	// The days slice is sorted, locate both boundaries by binary search.
	lo, _ := slices.BinarySearchFunc(h.days, from, cmp)
	hi, found := slices.BinarySearchFunc(h.days, to, cmp)
	if found {
		hi++
	}
	return &History{days: h.days[lo:hi], values: h.values[lo:hi]}
}
