package format

import (
	"math"
	"testing"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		code     string
		expected string
	}{
		{"Positive dollars", 1234.56, "USD", "$1,234.56"},
		{"Negative dollars", -4072.056059, "USD", "-$4,072.06"},
		{"Zero", 0, "USD", "$0.00"},
		{"Rounds half up", 0.125, "USD", "$0.13"},
		{"Millions", 4000000, "USD", "$4,000,000.00"},
		{"Euro", 1500.5, "EUR", "€1,500.50"},
		{"Lower-case code", 1234.56, "jpy", "¥1,235"},
		{"Unknown code", 1234.56, "XYZ", "1,234.56XYZ"},
		{"Empty code", 1234.56, "", "1,234.56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount, tt.code); got != tt.expected {
				t.Errorf("Currency(%v, %s) = %q, expected %q", tt.amount, tt.code, got, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{1234.56, "1,234.56"},
		{-1234.567, "-1,234.57"},
		{0, "0.00"},
		{25772.056059420578, "25,772.06"},
		{999.994, "999.99"},
	}

	for _, tt := range tests {
		if got := NumericCurrency(tt.amount); got != tt.expected {
			t.Errorf("NumericCurrency(%v) = %q, expected %q", tt.amount, got, tt.expected)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(0.0526920945); got != "5.27%" {
		t.Errorf("Percent() = %q, expected 5.27%%", got)
	}
	if got := Percent(0.8); got != "80.00%" {
		t.Errorf("Percent() = %q, expected 80.00%%", got)
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0.8518932021, "0.85x"},
		{1.2, "1.20x"},
		{2.6e14, "n/a"},
		{math.Inf(1), "n/a"},
		{math.NaN(), "n/a"},
	}

	for _, tt := range tests {
		if got := Ratio(tt.value); got != tt.expected {
			t.Errorf("Ratio(%v) = %q, expected %q", tt.value, got, tt.expected)
		}
	}
}
