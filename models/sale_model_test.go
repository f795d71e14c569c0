package models

import "testing"

func TestNormalizeTotal(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"10", "10"},
		{"10.50", "10.5"},
		{" 7.5 ", "7.5"},
		{"0.01", "0.01"},
	}
	for _, tc := range cases {
		got, err := NormalizeTotal(tc.in)
		if err != nil {
			t.Fatalf("NormalizeTotal(%q) error: %v", tc.in, err)
		}
		if got != tc.expected {
			t.Fatalf("NormalizeTotal(%q) expected %s, got %s", tc.in, tc.expected, got)
		}
	}
}

func TestNormalizeTotal_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "10,50"} {
		if _, err := NormalizeTotal(in); err == nil {
			t.Fatalf("NormalizeTotal(%q) error = nil, want error", in)
		}
	}
}

func TestSumTotals(t *testing.T) {
	sales := []Sale{
		{Total: "10.50"},
		{Total: "20"},
		{Total: "2.50"},
	}
	if got := SumTotals(sales); got != "33.00" {
		t.Fatalf("SumTotals expected 33.00, got %s", got)
	}
}

func TestSumTotals_SkipsUnparseable(t *testing.T) {
	sales := []Sale{
		{Total: "10"},
		{Total: "not a number"},
		{Total: "5"},
	}
	if got := SumTotals(sales); got != "15.00" {
		t.Fatalf("SumTotals expected 15.00, got %s", got)
	}
}

func TestSumTotals_Empty(t *testing.T) {
	if got := SumTotals(nil); got != "0.00" {
		t.Fatalf("SumTotals(nil) expected 0.00, got %s", got)
	}
}
