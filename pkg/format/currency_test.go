package format

import "testing"

func TestAmount(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{90265, "90,265"},
		{1000000, "1,000,000"},
		{1197815, "1,197,815"},
		{-1234567, "-1,234,567"},
	}

	for _, tt := range tests {
		if result := Amount(tt.input); result != tt.expected {
			t.Errorf("Amount(%v) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{1.5, "1.50%"},
		{1.38, "1.38%"},
		{18, "18.00%"},
		{0, "0.00%"},
	}

	for _, tt := range tests {
		if result := Percent(tt.input); result != tt.expected {
			t.Errorf("Percent(%v) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
