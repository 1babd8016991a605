package calculator

import (
	"net/http"
	"sync"
	"testing"

	"go-chi-calculator/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceSerialisesConcurrentCalls(t *testing.T) {
	svc := NewService(nil)

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := testutil.ExecuteRequest(
				testutil.NewJSONRequest(http.MethodPost, "/calculator/add", `{"a":1,"b":2}`),
				http.HandlerFunc(svc.Add),
			)
			assert.Equal(t, http.StatusOK, w.Code)
		}()
	}
	wg.Wait()

	history := svc.History()
	require.Len(t, history, workers)
	for _, c := range history {
		assert.Equal(t, Calculation{A: 1, B: 2, Result: 3}, c)
	}
}

func TestServiceUsesProvidedCalculator(t *testing.T) {
	calc := New()
	calc.Multiply(3, 3)

	svc := NewService(calc)

	assert.Equal(t, []Calculation{{A: 3, B: 3, Result: 9}}, svc.History())
}

func TestServiceSubtractHandler(t *testing.T) {
	svc := NewService(nil)

	w := testutil.ExecuteRequest(
		testutil.NewJSONRequest(http.MethodPost, "/calculator/subtract", `{"a":9,"b":4}`),
		http.HandlerFunc(svc.Subtract),
	)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp CalcResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)
	assert.Equal(t, CalcResponse{Operation: "subtract", A: 9, B: 4, Result: 5}, resp)
}

func TestServiceChainRejectsEmptySteps(t *testing.T) {
	svc := NewService(nil)

	w := testutil.ExecuteRequest(
		testutil.NewJSONRequest(http.MethodPost, "/calculator/chain", `{"initial":1,"steps":[]}`),
		http.HandlerFunc(svc.Chain),
	)
	testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.History())
}
