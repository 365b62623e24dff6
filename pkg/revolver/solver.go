package revolver

import (
	"math"

	"github.com/iwvelando/loan-revolver/pkg/mathutil"
	"github.com/iwvelando/loan-revolver/pkg/rates"
	"go.uber.org/zap"
)

// Solve returns the level payment that retires totalDebt at annualRate in
// periodCount months, rounded to the nearest whole unit. Interest accrual
// truncates while this rounds; the two are separate policies.
//
// With a zero rate the annuity formula is undefined and the debt is split
// evenly, rounding up so the last period does not overrun.
func Solve(totalDebt int64, annualRate float64, periodCount int) (int64, error) {
	const op = "revolver.Solve"

	if err := validateAmounts(op, totalDebt, annualRate); err != nil {
		return 0, err
	}
	if periodCount <= 0 {
		return 0, InvalidInput(op, "period count must be positive, got %d", periodCount)
	}

	debt := float64(totalDebt)
	r := rates.AnnualToMonthlySimple(annualRate)
	if r == 0 {
		return int64(math.Ceil(debt / float64(periodCount))), nil
	}

	growth := math.Pow(1+r, float64(periodCount))
	payment := debt * r * growth / (growth - 1)
	if !mathutil.IsFinite(payment) {
		return 0, InvalidInput(op, "no finite payment for %d periods at %v%%", periodCount, annualRate)
	}
	return mathutil.RoundToInt(payment), nil
}

// ByTimes solves the payment for periodCount months and generates the plan for
// it. The plan's PeriodCount is not guaranteed to equal periodCount: rounding
// the payment down can add one period, and truncated interest can retire the
// debt a few periods early on long high-rate plans.
func (g *Generator) ByTimes(totalDebt int64, annualRate float64, periodCount int) (*Plan, error) {
	payment, err := Solve(totalDebt, annualRate, periodCount)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("solved level payment",
		zap.String("op", "revolver.ByTimes"),
		zap.Int("requestedPeriods", periodCount),
		zap.Int64("payment", payment),
	)
	return g.Generate(totalDebt, annualRate, payment)
}

// ByTimes is Generator.ByTimes on a generator that does not log.
func ByTimes(totalDebt int64, annualRate float64, periodCount int) (*Plan, error) {
	return defaultGenerator.ByTimes(totalDebt, annualRate, periodCount)
}
