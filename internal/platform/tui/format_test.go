package tui

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{9.5, "9.50"},
		{999.99, "999.99"},
		{1000, "1.00K"},
		{12345, "12.35K"},
		{999999, "1000.00K"},
		{1000000, "1.00M"},
		{2500000, "2.50M"},
	}

	for _, c := range cases {
		if got := formatNumber(c.in); got != c.want {
			t.Errorf("formatNumber(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0s"},
		{45, "45s"},
		{60, "1m00s"},
		{185, "3m05s"},
		{3600, "1h00m"},
		{8040, "2h14m"},
	}

	for _, c := range cases {
		if got := formatDuration(c.in); got != c.want {
			t.Errorf("formatDuration(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
