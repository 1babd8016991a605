package calculator

import (
	"fmt"
	"strconv"
)

// Greet returns the banner printed before a session.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// FormatResult renders an expression and its value to two decimal places.
func FormatResult(expression string, result float64) string {
	return fmt.Sprintf("%s = %.2f", expression, result)
}

// FormatCalculation renders a history entry as "a + b = result".
func FormatCalculation(c Calculation) string {
	return fmt.Sprintf("%s + %s = %s", formatNumber(c.A), formatNumber(c.B), formatNumber(c.Result))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ValidateNumber reports whether s looks like a decimal number: at least one
// digit, at most one '.', and nothing besides digits, '.', '+' and '-'.
func ValidateNumber(s string) bool {
	if s == "" {
		return false
	}

	hasDecimal := false
	hasDigit := false

	for _, r := range s {
		switch {
		case r == '.':
			if hasDecimal {
				return false
			}
			hasDecimal = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '+' || r == '-':
		default:
			return false
		}
	}

	return hasDigit
}
