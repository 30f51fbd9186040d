package utils

import "testing"

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "₹0"},
		{500, "₹500"},
		{2500, "₹2,500"},
		{150000, "₹150,000"},
		{-1200, "-₹1,200"},
	}
	for _, tc := range cases {
		if got := FormatINR(tc.in); got != tc.want {
			t.Errorf("FormatINR(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatTripDate(t *testing.T) {
	if got := FormatTripDate("2025-08-15"); got != "Aug 15, 2025" {
		t.Errorf("FormatTripDate = %q", got)
	}
	if got := FormatTripDate("not-a-date"); got != "not-a-date" {
		t.Errorf("unparsable date should pass through, got %q", got)
	}
}
