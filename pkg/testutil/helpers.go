// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/loan-revolver/pkg/revolver"
)

// CheckPlanInvariants fails t for every way plan breaks the schedule rules:
// balance chaining and identity, no negative balance, a zero final balance,
// lookahead interest consumed by the next period, and aggregates that add up
// with principal summing to exactly the debt.
func CheckPlanInvariants(t testing.TB, plan *revolver.Plan) {
	t.Helper()

	if plan == nil || len(plan.Periods) == 0 {
		t.Fatalf("expected a plan with at least one period, got %+v", plan)
	}
	if plan.PeriodCount != len(plan.Periods)-1 {
		t.Fatalf("PeriodCount = %d with %d periods", plan.PeriodCount, len(plan.Periods))
	}
	if plan.Periods[0].BalanceBefore != float64(plan.TotalDebt) {
		t.Errorf("first BalanceBefore = %v, expected %d", plan.Periods[0].BalanceBefore, plan.TotalDebt)
	}
	if last := plan.Periods[len(plan.Periods)-1]; last.BalanceAfter != 0 && plan.TotalDebt != 0 {
		t.Errorf("last BalanceAfter = %v, expected 0", last.BalanceAfter)
	}

	var paid, interest, principal int64
	for i, period := range plan.Periods {
		if period.Index != i {
			t.Errorf("period %d has index %d", i, period.Index)
		}
		if period.BalanceAfter < 0 {
			t.Errorf("period %d has negative balance %v", i, period.BalanceAfter)
		}
		if period.BalanceAfter != period.BalanceBefore+period.InterestAccrued-period.Payment {
			t.Errorf("period %d: %v != %v + %v - %v", i, period.BalanceAfter,
				period.BalanceBefore, period.InterestAccrued, period.Payment)
		}
		if period.PrincipalPaid != period.Payment-period.InterestAccrued {
			t.Errorf("period %d: principal %v != payment %v - interest %v", i,
				period.PrincipalPaid, period.Payment, period.InterestAccrued)
		}
		if i > 0 {
			prev := plan.Periods[i-1]
			if period.BalanceBefore != prev.BalanceAfter {
				t.Errorf("period %d starts at %v, previous ended at %v", i, period.BalanceBefore, prev.BalanceAfter)
			}
			if period.BalanceAfter > prev.BalanceAfter {
				t.Errorf("balance increased at period %d: %v -> %v", i, prev.BalanceAfter, period.BalanceAfter)
			}
			if period.InterestAccrued != prev.NextInterestAccrued {
				t.Errorf("period %d interest %v differs from lookahead %v", i, period.InterestAccrued, prev.NextInterestAccrued)
			}
		}
		paid += int64(period.Payment)
		interest += int64(period.InterestAccrued)
		principal += int64(period.PrincipalPaid)
	}

	if paid != plan.TotalPaid {
		t.Errorf("sum of payments %d != TotalPaid %d", paid, plan.TotalPaid)
	}
	if interest != plan.TotalInterest {
		t.Errorf("sum of interest %d != TotalInterest %d", interest, plan.TotalInterest)
	}
	if principal != plan.TotalDebt {
		t.Errorf("sum of principal %d != TotalDebt %d", principal, plan.TotalDebt)
	}
	if plan.TotalPaid != plan.TotalDebt+plan.TotalInterest {
		t.Errorf("TotalPaid %d != TotalDebt %d + TotalInterest %d", plan.TotalPaid, plan.TotalDebt, plan.TotalInterest)
	}
}
