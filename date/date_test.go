package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Date
		err  bool
	}{
		{in: "2025-01-02", want: New(2025, time.January, 2)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "not-a-date", err: true},
		{in: "2025-13-40", err: true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("Parse(%q) error = %v, want error = %v", tt.in, err, tt.err)
			continue
		}
		if !tt.err && got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDate_AddMonths(t *testing.T) {
	tests := []struct {
		d      Date
		months int
		want   Date
	}{
		{New(2025, time.June, 15), -3, New(2025, time.March, 15)},
		{New(2025, time.January, 10), -6, New(2024, time.July, 10)},
		{New(2025, time.March, 31), -1, New(2025, time.March, 3)}, // normalized like time.Date
		{New(2024, time.February, 29), 12, New(2025, time.March, 1)},
	}
	for _, tt := range tests {
		if got := tt.d.AddMonths(tt.months); got != tt.want {
			t.Errorf("%v.AddMonths(%d) = %v, want %v", tt.d, tt.months, got, tt.want)
		}
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := New(2025, time.August, 29)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(b) != `"2025-08-29"` {
		t.Errorf("MarshalJSON() = %s, want %q", b, "2025-08-29")
	}
	var got Date
	if err := got.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if got != d {
		t.Errorf("round trip = %v, want %v", got, d)
	}
}
