package revolver

import (
	"strings"

	"github.com/iwvelando/loan-revolver/pkg/constants"
)

// Mode selects how the monthly payment is determined.
type Mode string

const (
	// ModeByAmount uses Request.Value as the monthly payment.
	ModeByAmount Mode = constants.ModeByAmount
	// ModeByCount uses Request.Value as the target number of months.
	ModeByCount Mode = constants.ModeByCount
)

// ParseMode accepts a mode name or its single-letter alias, case-insensitively.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case constants.ModeLetterByAmount, constants.ModeByAmount:
		return ModeByAmount, nil
	case constants.ModeLetterByCount, constants.ModeByCount:
		return ModeByCount, nil
	default:
		return "", UnsupportedMode("revolver.ParseMode", value)
	}
}

// Request is one plan computation.
type Request struct {
	Mode       Mode    `json:"mode"`
	TotalDebt  int64   `json:"total_debt"`
	AnnualRate float64 `json:"annual_rate"`
	// Value is the payment for ModeByAmount or the period count for ModeByCount.
	Value int64 `json:"value"`
}
