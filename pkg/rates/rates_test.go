package rates

import (
	"math"
	"testing"
)

func TestAnnualToMonthlySimple(t *testing.T) {
	if got := AnnualToMonthlySimple(18.0); got != 0.015 {
		t.Fatalf("AnnualToMonthlySimple(18.0) = %v, expected 0.015", got)
	}

	tests := []struct {
		name     string
		annual   float64
		expected float64
	}{
		{"Twelve percent", 12.0, 0.01},
		{"Six percent", 6.0, 0.005},
		{"Zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnnualToMonthlySimple(tt.annual)
			if math.Abs(result-tt.expected) > 1e-12 {
				t.Errorf("AnnualToMonthlySimple(%v) = %v, expected %v", tt.annual, result, tt.expected)
			}
		})
	}
}

func TestAnnualToMonthlyCompound(t *testing.T) {
	// 1.24^(1/12) - 1 = 0.018087..., truncated rather than rounded.
	if got := AnnualToMonthlyCompound(24.0); got != 1.8 {
		t.Fatalf("AnnualToMonthlyCompound(24.0) = %v, expected 1.8", got)
	}

	tests := []struct {
		name     string
		annual   float64
		expected float64
	}{
		// 1.18^(1/12) - 1 = 0.013888...
		{"Eighteen percent", 18.0, 1.38},
		// 1.12^(1/12) - 1 = 0.009488...
		{"Twelve percent", 12.0, 0.94},
		{"Zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnnualToMonthlyCompound(tt.annual)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("AnnualToMonthlyCompound(%v) = %v, expected %v", tt.annual, result, tt.expected)
			}
		})
	}
}

func TestCompoundNeverExceedsSimple(t *testing.T) {
	for _, annual := range []float64{1, 5.5, 12, 18, 24, 36} {
		simplePercent := AnnualToMonthlySimple(annual) * 100
		if compound := AnnualToMonthlyCompound(annual); compound > simplePercent {
			t.Errorf("annual %v: compound %v exceeds simple %v", annual, compound, simplePercent)
		}
	}
}

func TestInterest(t *testing.T) {
	tests := []struct {
		name     string
		balance  float64
		rate     float64
		expected float64
	}{
		{"First period of reference plan", 1000000, 0.015, 15000},
		{"Fraction dropped", 915000, 0.015, 13725},
		{"Fraction not rounded up", 828725, 0.015, 12430},
		{"Zero balance", 0, 0.015, 0},
		{"Zero rate", 1000, 0, 0},
		{"Below one unit", 50, 0.015, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Interest(tt.balance, tt.rate); result != tt.expected {
				t.Errorf("Interest(%v, %v) = %v, expected %v", tt.balance, tt.rate, result, tt.expected)
			}
		})
	}
}
