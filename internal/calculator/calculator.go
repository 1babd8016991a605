package calculator

import (
	"errors"
	"fmt"
	"io"
)

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

const historyCapacity = 100

// Calculation is one recorded operation: both operands and the outcome.
type Calculation struct {
	A      float64 `json:"a"`
	B      float64 `json:"b"`
	Result float64 `json:"result"`
}

// Calculator performs binary arithmetic and keeps an append-only history of
// every successful call. It is not safe for concurrent use.
type Calculator struct {
	history []Calculation
}

func New() *Calculator {
	return &Calculator{
		history: make([]Calculation, 0, historyCapacity),
	}
}

// Add returns a + b.
func (c *Calculator) Add(a, b float64) float64 {
	return c.record(a, b, a+b)
}

// Subtract returns a - b.
func (c *Calculator) Subtract(a, b float64) float64 {
	return c.record(a, b, a-b)
}

// Multiply returns a * b.
func (c *Calculator) Multiply(a, b float64) float64 {
	return c.record(a, b, a*b)
}

// Divide returns a / b. A zero divisor fails with ErrDivisionByZero and
// leaves the history untouched.
func (c *Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%g / %g: %w", a, b, ErrDivisionByZero)
	}
	return c.record(a, b, a/b), nil
}

// History returns the recorded calculations in call order. The returned
// slice is a copy.
func (c *Calculator) History() []Calculation {
	out := make([]Calculation, len(c.history))
	copy(out, c.history)
	return out
}

func (c *Calculator) Len() int {
	return len(c.history)
}

// PrintHistory writes a header and then every entry to w, one per line.
//
// TODO: every line carries the "+" label whatever operation produced it;
// record the operator on Calculation once consumers of this output accept
// the new format.
func (c *Calculator) PrintHistory(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "\nCalculation History:"); err != nil {
		return fmt.Errorf("write history header: %w", err)
	}
	for _, calc := range c.history {
		if _, err := fmt.Fprintln(w, FormatCalculation(calc)); err != nil {
			return fmt.Errorf("write history entry: %w", err)
		}
	}
	return nil
}

func (c *Calculator) record(a, b, result float64) float64 {
	c.history = append(c.history, Calculation{A: a, B: b, Result: result})
	return result
}
