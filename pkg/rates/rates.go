// Package rates converts nominal annual rates into monthly rates and applies
// the per-period interest truncation rule.
package rates

import (
	"math"

	"github.com/iwvelando/loan-revolver/pkg/constants"
	"github.com/iwvelando/loan-revolver/pkg/mathutil"
)

// AnnualToMonthlySimple divides a nominal annual percentage evenly over twelve
// months and returns it as a fraction, e.g. 18.0 -> 0.015. This is the rate
// the schedule simulation runs on.
func AnnualToMonthlySimple(annualRate float64) float64 {
	return annualRate / constants.MonthsPerYear / constants.PercentageMultiplier
}

// AnnualToMonthlyCompound returns the monthly rate that compounds to the annual
// rate over twelve months, as a percentage truncated (not rounded) to two
// decimal places, e.g. 24.0 -> 1.8. Display only.
func AnnualToMonthlyCompound(annualRate float64) float64 {
	raw := math.Pow(1+annualRate/constants.PercentageMultiplier, 1.0/constants.MonthsPerYear) - 1
	return mathutil.TruncateTo(raw, constants.RatePrecision, constants.PercentageMultiplier)
}

// Interest is the interest accrued on balance over one period. Fractions of a
// currency unit are dropped.
func Interest(balance, monthlyRate float64) float64 {
	return mathutil.Floor(balance * monthlyRate)
}
