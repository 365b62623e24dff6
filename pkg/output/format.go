// Package output provides utilities for formatting and displaying repayment plans.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iwvelando/loan-revolver/pkg/constants"
	"github.com/iwvelando/loan-revolver/pkg/format"
	"github.com/iwvelando/loan-revolver/pkg/revolver"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Render writes plan to w in the named output format.
func Render(w io.Writer, outputFormat string, plan *revolver.Plan) error {
	switch outputFormat {
	case constants.OutputFormatJSON:
		return JSONFormat(w, plan)
	case constants.OutputFormatPretty:
		return PrettyFormat(w, plan)
	case constants.OutputFormatCSV:
		return CsvFormat(w, plan)
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

// JSONFormat writes the plan as a single JSON document followed by a newline.
func JSONFormat(w io.Writer, plan *revolver.Plan) error {
	return json.NewEncoder(w).Encode(plan)
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, plan *revolver.Plan) error {
	p := message.NewPrinter(language.English)
	if _, err := p.Fprintf(w, "--- Repayment plan for %d at %.2f%% annual ---\n", plan.TotalDebt, plan.AnnualRate); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Monthly rate: %s simple, %s compound\n",
		format.Percent(plan.MonthlySimpleRate), format.Percent(plan.MonthlyCompoundRate)); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "Months: %d | Total paid: %d | Total interest: %d\n\n",
		plan.PeriodCount, plan.TotalPaid, plan.TotalInterest); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%5s | %13s | %11s | %11s | %11s | %13s\n",
		"Month", "Balance", "Interest", "Payment", "Principal", "Remaining"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%5s | %13s | %11s | %11s | %11s | %13s\n",
		"_____", "_______", "________", "_______", "_________", "_________"); err != nil {
		return err
	}
	for _, period := range plan.Periods {
		if _, err := fmt.Fprintf(w, "%5d | %13s | %11s | %11s | %11s | %13s\n",
			period.Index,
			format.Amount(period.BalanceBefore),
			format.Amount(period.InterestAccrued),
			format.Amount(period.Payment),
			format.Amount(period.PrincipalPaid),
			format.Amount(period.BalanceAfter),
		); err != nil {
			return err
		}
	}
	return nil
}

// CsvFormat outputs in comma-separated value format, one row per period.
func CsvFormat(w io.Writer, plan *revolver.Plan) error {
	if _, err := fmt.Fprintf(w, `"index","balance_before","interest_accrued","payment","principal_paid","balance_after","next_interest_accrued"`+"\n"); err != nil {
		return err
	}
	for _, period := range plan.Periods {
		if _, err := fmt.Fprintf(w, `"%d","%.0f","%.0f","%.0f","%.0f","%.0f","%.0f"`+"\n",
			period.Index,
			period.BalanceBefore,
			period.InterestAccrued,
			period.Payment,
			period.PrincipalPaid,
			period.BalanceAfter,
			period.NextInterestAccrued,
		); err != nil {
			return err
		}
	}
	return nil
}
