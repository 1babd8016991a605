package calculator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemoOutput(t *testing.T) {
	var buf bytes.Buffer

	calc, err := RunDemo(&buf, "Go Calculator")
	require.NoError(t, err)

	want := "Hello, Go Calculator!\n" +
		"10 + 5 = 15.00\n" +
		"(10 + 5) * 2 = 30.00\n" +
		"(10 + 5) * 2 / 3 = 10.00\n" +
		"\nCalculation History:\n" +
		"10 + 5 = 15\n" +
		"15 + 2 = 30\n" +
		"30 + 3 = 10\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 3, calc.Len())
}
