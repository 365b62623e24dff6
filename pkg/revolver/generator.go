package revolver

import (
	"math"

	"github.com/iwvelando/loan-revolver/pkg/constants"
	"github.com/iwvelando/loan-revolver/pkg/mathutil"
	"github.com/iwvelando/loan-revolver/pkg/rates"
	"go.uber.org/zap"
)

// maxExactAmount is the largest amount a float64 can hold without losing whole
// units. It bounds the debt plus its first month of interest, the largest
// balance a plan ever carries.
const maxExactAmount = 1 << 53

// maxPlanPeriods bounds the schedule length. A by-count request at
// constants.MaxPeriodCount may finish one period late once its payment is
// rounded.
const maxPlanPeriods = constants.MaxPeriodCount + 1

// Generator produces repayment schedules. A Generator holds no mutable state
// and may be shared between goroutines.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator creates a new generator instance
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

var defaultGenerator = NewGenerator(nil)

// Generate is Generator.Generate on a generator that does not log.
func Generate(totalDebt int64, annualRate float64, payment int64) (*Plan, error) {
	return defaultGenerator.Generate(totalDebt, annualRate, payment)
}

// ByAmount builds the plan for a fixed monthly payment. It is the by-amount
// mode and equivalent to Generate.
func ByAmount(totalDebt int64, annualRate float64, payment int64) (*Plan, error) {
	return defaultGenerator.Generate(totalDebt, annualRate, payment)
}

// Generate simulates repayment of totalDebt at annualRate (a percentage) with a
// fixed payment each month until the balance reaches zero. The last payment
// is reduced to exactly the outstanding balance plus its interest.
//
// It fails with ErrInsufficientPayment when payment does not exceed the first
// month's interest, and with ErrInvalidInput when the debt would take more
// than maxPlanPeriods months to retire.
func (g *Generator) Generate(totalDebt int64, annualRate float64, payment int64) (*Plan, error) {
	const op = "revolver.Generate"

	if err := validateAmounts(op, totalDebt, annualRate); err != nil {
		return nil, err
	}
	if payment < 0 {
		return nil, InvalidInput(op, "payment must not be negative, got %d", payment)
	}
	if payment > maxExactAmount {
		return nil, InvalidInput(op, "payment %d exceeds %d", payment, int64(maxExactAmount))
	}

	monthlyRate := rates.AnnualToMonthlySimple(annualRate)
	plan := &Plan{
		TotalDebt:           totalDebt,
		AnnualRate:          annualRate,
		MonthlySimpleRate:   annualRate / constants.MonthsPerYear,
		MonthlyCompoundRate: rates.AnnualToMonthlyCompound(annualRate),
	}

	balance := float64(totalDebt)
	if totalDebt == 0 {
		plan.Periods = []Period{{}}
		g.logger.Debug("no debt to repay, returning single period plan",
			zap.String("op", op),
		)
		return plan, nil
	}

	nextInterest := rates.Interest(balance, monthlyRate)
	amount := float64(payment)
	if nextInterest >= amount {
		return nil, insufficientPayment(op, payment, nextInterest)
	}

	periods := make([]Period, 0, estimatePeriods(balance, monthlyRate, amount)+1)
	periods = append(periods, Period{
		Index:               0,
		BalanceBefore:       balance,
		BalanceAfter:        balance,
		NextInterestAccrued: nextInterest,
	})

	var totalPaid, totalInterest int64
	for index := 1; balance > 0; index++ {
		if index > maxPlanPeriods {
			return nil, InvalidInput(op, "payment %d does not retire the debt within %d periods", payment, maxPlanPeriods)
		}
		interest := nextInterest
		accrued := balance + interest
		applied := amount
		after := accrued - applied
		if after <= 0 {
			applied = accrued
			after = 0
			g.logger.Debug("clamping final payment to outstanding balance",
				zap.String("op", op),
				zap.Int("period", index),
				zap.Float64("payment", applied),
			)
		}
		nextInterest = rates.Interest(after, monthlyRate)

		periods = append(periods, Period{
			Index:               index,
			BalanceBefore:       balance,
			BalanceAfter:        after,
			Payment:             applied,
			PrincipalPaid:       applied - interest,
			InterestAccrued:     interest,
			NextInterestAccrued: nextInterest,
		})
		totalPaid += int64(applied)
		totalInterest += int64(interest)
		balance = after
	}

	plan.Periods = periods
	plan.PeriodCount = len(periods) - 1
	plan.TotalPaid = totalPaid
	plan.TotalInterest = totalInterest

	g.logger.Debug("generated repayment plan",
		zap.String("op", op),
		zap.Int64("totalDebt", totalDebt),
		zap.Float64("annualRate", annualRate),
		zap.Int64("payment", payment),
		zap.Int("periods", plan.PeriodCount),
		zap.Int64("totalPaid", plan.TotalPaid),
		zap.Int64("totalInterest", plan.TotalInterest),
	)
	return plan, nil
}

func validateAmounts(op string, totalDebt int64, annualRate float64) error {
	if totalDebt < 0 {
		return InvalidInput(op, "total debt must not be negative, got %d", totalDebt)
	}
	if totalDebt > maxExactAmount {
		return InvalidInput(op, "total debt %d exceeds %d", totalDebt, int64(maxExactAmount))
	}
	if !mathutil.IsFinite(annualRate) {
		return InvalidInput(op, "annual rate must be a finite number, got %v", annualRate)
	}
	if annualRate < 0 {
		return InvalidInput(op, "annual rate must not be negative, got %v", annualRate)
	}
	debt := float64(totalDebt)
	interest := rates.Interest(debt, rates.AnnualToMonthlySimple(annualRate))
	if !mathutil.IsFinite(interest) || interest > maxExactAmount-debt {
		return InvalidInput(op, "total debt %d plus one month of interest at %v%% exceeds %d",
			totalDebt, annualRate, int64(maxExactAmount))
	}
	return nil
}

// estimatePeriods sizes the schedule up front from the untruncated annuity
// relation. It is only a capacity hint.
func estimatePeriods(balance, monthlyRate, payment float64) int {
	var n float64
	if monthlyRate == 0 {
		n = math.Ceil(balance / payment)
	} else {
		n = math.Ceil(-math.Log(1-balance*monthlyRate/payment) / math.Log1p(monthlyRate))
	}
	if !mathutil.IsFinite(n) || n < 1 {
		return 1
	}
	if n > maxPlanPeriods {
		return maxPlanPeriods
	}
	return int(n)
}
