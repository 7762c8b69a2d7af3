package schedule

import "testing"

func TestToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"07:00", 420},
		{"13:45", 825},
		{"23:59", 1439},
		{"24:00", 1440},
	}
	for _, c := range cases {
		if got := ToMinutes(c.in); got != c.want {
			t.Errorf("ToMinutes(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestMinutesToTime(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{420, "07:00"},
		{1439, "23:59"},
		{1440, "00:00"}, // end of day normalizes to canonical form
	}
	for _, c := range cases {
		if got := MinutesToTime(c.in); got != c.want {
			t.Errorf("MinutesToTime(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEndDisplay(t *testing.T) {
	if got := EndDisplay(1440); got != "24:00" {
		t.Errorf("EndDisplay(1440) = %q, want \"24:00\"", got)
	}
	if got := EndDisplay(420); got != "07:00" {
		t.Errorf("EndDisplay(420) = %q, want \"07:00\"", got)
	}
}

func TestDayArithmetic(t *testing.T) {
	if got := PrevDay(0); got != 6 {
		t.Errorf("PrevDay(0) = %d, want 6", got)
	}
	if got := NextDay(6); got != 0 {
		t.Errorf("NextDay(6) = %d, want 0", got)
	}
	for d := 0; d < 7; d++ {
		if got := PrevDay(NextDay(d)); got != d {
			t.Errorf("PrevDay(NextDay(%d)) = %d, want %d", d, got, d)
		}
	}
}

func TestDayIndex(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"monday", 0, true},
		{"Sunday", 6, true},
		{"wed", 2, true},
		{"  friday ", 4, true},
		{"noday", 0, false},
	}
	for _, c := range cases {
		got, ok := DayIndex(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("DayIndex(%q) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}
