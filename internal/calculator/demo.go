package calculator

import (
	"fmt"
	"io"
)

// RunDemo runs the fixed add / multiply / divide sequence against a fresh
// Calculator, writing each result and then the full history to w.
func RunDemo(w io.Writer, name string) (*Calculator, error) {
	calc := New()

	if _, err := fmt.Fprintln(w, Greet(name)); err != nil {
		return nil, err
	}

	sum := calc.Add(10, 5)
	if _, err := fmt.Fprintln(w, FormatResult("10 + 5", sum)); err != nil {
		return nil, err
	}

	product := calc.Multiply(sum, 2)
	if _, err := fmt.Fprintln(w, FormatResult("(10 + 5) * 2", product)); err != nil {
		return nil, err
	}

	quotient, err := calc.Divide(product, 3)
	if err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(w, FormatResult("(10 + 5) * 2 / 3", quotient)); err != nil {
		return nil, err
	}

	if err := calc.PrintHistory(w); err != nil {
		return nil, err
	}

	return calc, nil
}
