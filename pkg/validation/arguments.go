package validation

import (
	"strconv"
	"strings"

	"github.com/iwvelando/loan-revolver/pkg/mathutil"
	"github.com/iwvelando/loan-revolver/pkg/revolver"
)

// ArgumentCount is the number of positional arguments ParseArguments expects:
// mode, total debt, annual rate and payment or period count.
const ArgumentCount = 4

// ParseArguments turns `MODE TOTAL_DEBT ANNUAL_RATE AMOUNT_OR_COUNT` into a
// plan request. The mode is checked first so an unknown selector is
// reported as such even when the numbers are also malformed.
func ParseArguments(args []string) (revolver.Request, error) {
	const op = "validation.ParseArguments"

	if len(args) != ArgumentCount {
		return revolver.Request{}, revolver.InvalidInput(op,
			"expected %d arguments (MODE TOTAL_DEBT ANNUAL_RATE AMOUNT_OR_COUNT), got %d", ArgumentCount, len(args))
	}

	mode, err := revolver.ParseMode(args[0])
	if err != nil {
		return revolver.Request{}, err
	}
	return BuildRequest(mode, args[1], args[2], args[3])
}

// BuildRequest parses the three numeric arguments of a request and checks the
// result with ValidateRequest.
func BuildRequest(mode revolver.Mode, totalDebt, annualRate, value string) (revolver.Request, error) {
	const op = "validation.BuildRequest"

	debt, err := parseWholeNumber(op, "total debt", totalDebt)
	if err != nil {
		return revolver.Request{}, err
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(annualRate), 64)
	if err != nil {
		return revolver.Request{}, &revolver.Error{
			Kind: revolver.KindInvalidInput,
			Op:   op,
			Msg:  "annual rate " + strconv.Quote(annualRate) + " is not a number",
			Err:  err,
		}
	}

	v, err := parseWholeNumber(op, valueName(mode), value)
	if err != nil {
		return revolver.Request{}, err
	}

	req := revolver.Request{Mode: mode, TotalDebt: debt, AnnualRate: rate, Value: v}
	if err := ValidateRequest(req); err != nil {
		return revolver.Request{}, err
	}
	return req, nil
}

// ValidateRequest checks a typed request from any source. Debt and the amount
// or count must be positive; the rate must be a positive finite number.
func ValidateRequest(req revolver.Request) error {
	const op = "validation.ValidateRequest"

	if req.Mode != revolver.ModeByAmount && req.Mode != revolver.ModeByCount {
		return revolver.UnsupportedMode(op, string(req.Mode))
	}
	if req.TotalDebt <= 0 {
		return revolver.InvalidInput(op, "total debt must be positive, got %d", req.TotalDebt)
	}
	if !mathutil.IsFinite(req.AnnualRate) || req.AnnualRate <= 0 {
		return revolver.InvalidInput(op, "annual rate must be a positive number, got %v", req.AnnualRate)
	}
	if req.Value <= 0 {
		return revolver.InvalidInput(op, "%s must be positive, got %d", valueName(req.Mode), req.Value)
	}
	return nil
}

func valueName(mode revolver.Mode) string {
	if mode == revolver.ModeByCount {
		return "period count"
	}
	return "payment"
}

func parseWholeNumber(op, name, raw string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &revolver.Error{
			Kind: revolver.KindInvalidInput,
			Op:   op,
			Msg:  name + " " + strconv.Quote(raw) + " is not a whole number",
			Err:  err,
		}
	}
	return n, nil
}
