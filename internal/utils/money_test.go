package utils

import "testing"

func TestMajorUnits(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{99, "0.99"},
		{100, "1.00"},
		{32550, "325.50"},
		{10000000, "100000.00"},
		{-1500, "-15.00"},
	}
	for _, c := range cases {
		if got := MajorUnits(c.cents); got != c.want {
			t.Errorf("MajorUnits(%d) = %q, want %q", c.cents, got, c.want)
		}
	}
}

func TestMaskAccountNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"6201234567890", "*********7890"},
		{"12345", "*2345"},
		{"1234", "1234"},
		{"", ""},
	}
	for _, c := range cases {
		if got := MaskAccountNumber(c.in); got != c.want {
			t.Errorf("MaskAccountNumber(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPayoutReference(t *testing.T) {
	if got := PayoutReference(7001); got != "PO7001" {
		t.Errorf("PayoutReference(7001) = %q", got)
	}
	if PayoutReference(1) == PayoutReference(2) {
		t.Error("references must be distinct per payout")
	}
}
