package domain

import "testing"

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{2550, "25.50"},
		{1200, "12.00"},
		{99999999, "999999.99"},
	}
	for _, tc := range cases {
		if got := FormatCents(tc.cents); got != tc.want {
			t.Errorf("FormatCents(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestParseAmountCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"19.99", 1999},
		{"12", 1200},
		{"0.05", 5},
		{"25.50", 2550},
	}
	for _, tc := range cases {
		got, err := ParseAmountCents(tc.in)
		if err != nil {
			t.Errorf("ParseAmountCents(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAmountCents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseAmountCents_Rejects(t *testing.T) {
	for _, in := range []string{"19.999", "0.001", "abc", ""} {
		if _, err := ParseAmountCents(in); err == nil {
			t.Errorf("ParseAmountCents(%q): expected error", in)
		}
	}
}
