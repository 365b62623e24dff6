package revolver_test

import (
	"testing"

	"github.com/iwvelando/loan-revolver/pkg/revolver"
	"github.com/iwvelando/loan-revolver/pkg/testutil"
)

func TestGenerateInvariants(t *testing.T) {
	tests := []struct {
		name      string
		totalDebt int64
		rate      float64
		payment   int64
	}{
		{"Reference fast", 1000000, 18.0, 100000},
		{"Reference slow", 1000000, 18.0, 50000},
		{"Single payment covers all", 1000, 12.0, 15015},
		{"Payment barely above interest", 100, 12.0, 2},
		{"Zero rate", 1200, 0, 100},
		{"Zero rate with remainder", 1000, 0, 300},
		{"Fractional rate", 250000, 7.25, 5000},
		{"High rate", 5000, 99.9, 1000},
		{"One unit debt", 1, 18.0, 1},
		{"Zero debt", 0, 18.0, 0},
		{"Largest debt with exact balances", 8874087935705411, 18.0, 4000000000000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := revolver.Generate(tt.totalDebt, tt.rate, tt.payment)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			testutil.CheckPlanInvariants(t, plan)
		})
	}
}

func TestByTimesInvariants(t *testing.T) {
	for _, rate := range []float64{0, 3.5, 18.0, 29.9} {
		for _, count := range []int{1, 2, 11, 12, 24, 60, 360} {
			plan, err := revolver.ByTimes(1000000, rate, count)
			if err != nil {
				t.Fatalf("ByTimes(1000000, %v, %d) error = %v", rate, count, err)
			}
			testutil.CheckPlanInvariants(t, plan)

			// Truncated interest only shortens a plan; the rounded payment can
			// add at most one period.
			if plan.PeriodCount < 1 || plan.PeriodCount > count+1 {
				t.Errorf("ByTimes(1000000, %v, %d) took %d periods", rate, count, plan.PeriodCount)
			}
		}
	}
}
