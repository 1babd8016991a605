package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreet(t *testing.T) {
	assert.Equal(t, "Hello, Go Calculator!", Greet("Go Calculator"))
}

func TestFormatResult(t *testing.T) {
	assert.Equal(t, "10 + 5 = 15.00", FormatResult("10 + 5", 15))
	assert.Equal(t, "1 / 3 = 0.33", FormatResult("1 / 3", 1.0/3))
}

func TestFormatCalculation(t *testing.T) {
	assert.Equal(t, "10 + 5 = 15", FormatCalculation(Calculation{A: 10, B: 5, Result: 15}))
	assert.Equal(t, "-0.5 + 2 = 1.5", FormatCalculation(Calculation{A: -0.5, B: 2, Result: 1.5}))
}

func TestValidateNumber(t *testing.T) {
	tests := map[string]bool{
		"":      false,
		"42":    true,
		"-3.14": true,
		"+7":    true,
		".5":    true,
		"1.2.3": false,
		"12a":   false,
		"-":     false,
		".":     false,
		"1e10":  false,
	}

	for in, want := range tests {
		assert.Equal(t, want, ValidateNumber(in), "ValidateNumber(%q)", in)
	}
}
