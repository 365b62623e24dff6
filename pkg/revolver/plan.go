// Package revolver builds repayment schedules for revolving loans: a fixed
// payment is applied every month against a balance that accrues simple
// monthly interest until the balance reaches zero.
//
// All monetary values are whole currency units carried in float64. Interest is
// always truncated, never rounded, so every value in a plan is integral.
package revolver

// Period is one row of a repayment schedule. Index 0 is the state before any
// payment; index k is the state after the k-th payment.
type Period struct {
	Index               int     `json:"index"`
	BalanceBefore       float64 `json:"balance_before"`
	BalanceAfter        float64 `json:"balance_after"`
	Payment             float64 `json:"payment"`
	PrincipalPaid       float64 `json:"principal_paid"`
	InterestAccrued     float64 `json:"interest_accrued"`
	NextInterestAccrued float64 `json:"next_interest_accrued"`
}

// Plan is a complete repayment schedule. A Plan is built once by a Generator
// and never modified afterwards.
type Plan struct {
	TotalDebt           int64    `json:"total_debt"`
	AnnualRate          float64  `json:"annual_rate"`
	MonthlySimpleRate   float64  `json:"monthly_simple_rate"`
	MonthlyCompoundRate float64  `json:"monthly_compound_rate"`
	TotalPaid           int64    `json:"total_paid"`
	TotalInterest       int64    `json:"total_interest"`
	PeriodCount         int      `json:"period_count"`
	Periods             []Period `json:"periods"`
}

// BalancesAfter returns the balance_after column of the schedule.
func (p *Plan) BalancesAfter() []float64 {
	out := make([]float64, len(p.Periods))
	for i, period := range p.Periods {
		out[i] = period.BalanceAfter
	}
	return out
}

// FinalPayment is the clamped payment of the last period, or 0 for an empty
// debt.
func (p *Plan) FinalPayment() float64 {
	if len(p.Periods) == 0 {
		return 0
	}
	return p.Periods[len(p.Periods)-1].Payment
}
