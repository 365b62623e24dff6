// Package format renders plan values as display strings.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Amount returns a whole-unit amount with thousands separators (e.g., "-1,234,567").
// Plan amounts are integral, so no decimals are shown.
func Amount(amount float64) string {
	formatted := groupThousands(fmt.Sprintf("%.0f", math.Abs(amount)))
	if amount < 0 {
		return "-" + formatted
	}
	return formatted
}

// Percent returns a rate given in percent with two decimals and a percent sign (e.g., "1.38%").
func Percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate)
}

func groupThousands(intPart string) string {
	if len(intPart) <= 3 {
		return intPart
	}
	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
