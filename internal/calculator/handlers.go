package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"go-chi-calculator/internal/handlers"
	"go-chi-calculator/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Service exposes one shared Calculator over HTTP. The Calculator itself is
// single-owner, so every access goes through mu.
type Service struct {
	mu   sync.Mutex
	calc *Calculator
}

func NewService(calc *Calculator) *Service {
	if calc == nil {
		calc = New()
	}
	return &Service{calc: calc}
}

// History returns a snapshot of the shared calculator's history.
func (s *Service) History() []Calculation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calc.History()
}

// apply runs op against the calculator under the lock and reports the
// history length afterwards.
func (s *Service) apply(op string, a, b float64) (float64, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		result float64
		err    error
	)
	switch op {
	case "add":
		result = s.calc.Add(a, b)
	case "subtract":
		result = s.calc.Subtract(a, b)
	case "multiply":
		result = s.calc.Multiply(a, b)
	case "divide":
		result, err = s.calc.Divide(a, b)
	default:
		err = fmt.Errorf("unknown operation %q", op)
	}
	return result, s.calc.Len(), err
}

// ---------------------------------------------------------------------------
// Handlers: binary operations
// ---------------------------------------------------------------------------

// Add handles POST /calculator/add
func (s *Service) Add(w http.ResponseWriter, r *http.Request) {
	s.handleBinaryOp(w, r, "add")
}

// Subtract handles POST /calculator/subtract
func (s *Service) Subtract(w http.ResponseWriter, r *http.Request) {
	s.handleBinaryOp(w, r, "subtract")
}

// Multiply handles POST /calculator/multiply
func (s *Service) Multiply(w http.ResponseWriter, r *http.Request) {
	s.handleBinaryOp(w, r, "multiply")
}

// Divide handles POST /calculator/divide. A zero divisor is a 400 and is not
// recorded in the history.
func (s *Service) Divide(w http.ResponseWriter, r *http.Request) {
	s.handleBinaryOp(w, r, "divide")
}

func (s *Service) handleBinaryOp(w http.ResponseWriter, r *http.Request, opName string) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", opName),
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if !finite(req.A) || !finite(req.B) {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid numeric input", fmt.Errorf("a=%g b=%g", req.A, req.B), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Float64("calculator.operand.a", req.A),
		attribute.Float64("calculator.operand.b", req.B),
	)

	start := time.Now()
	result, size, err := s.apply(opName, req.A, req.B)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, http.StatusBadRequest, w)
		return
	}

	recordSuccess(ctx, opName, result, elapsed, size)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator operation completed",
		zap.String("operation", opName),
		zap.Float64("a", req.A),
		zap.Float64("b", req.B),
		zap.Float64("result", result),
		zap.Int("history_size", size),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, CalcResponse{
		Operation: opName,
		A:         req.A,
		B:         req.B,
		Result:    result,
	})
}

// ---------------------------------------------------------------------------
// Handler: history
// ---------------------------------------------------------------------------

// HistoryHandler handles GET /calculator/history
func (s *Service) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	entries := s.History()

	observability.LoggerWithTrace(r.Context()).Debug("history requested",
		zap.Int("count", len(entries)),
		zap.String("request_id", observability.RequestIDFromContext(r.Context())),
	)

	handlers.WriteJSON(w, http.StatusOK, HistoryResponse{
		Count:   len(entries),
		Entries: entries,
	})
}

// ---------------------------------------------------------------------------
// Handler: chained operations
// ---------------------------------------------------------------------------

// Chain handles POST /calculator/chain. Each step is applied to the running
// total through the shared calculator, so every completed step lands in the
// history. Steps before a failing one stay recorded.
func (s *Service) Chain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.chain",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req ChainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "chain", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if len(req.Steps) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "chain", "no steps provided", errors.New("steps array is empty"), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Float64("chain.initial", req.Initial),
		attribute.Int("chain.steps_count", len(req.Steps)),
	)

	logger.Info("starting chained calculation",
		zap.Float64("initial", req.Initial),
		zap.Int("steps", len(req.Steps)),
		zap.String("request_id", requestID),
	)

	running := req.Initial
	results := make([]ChainResult, 0, len(req.Steps))

	for i, step := range req.Steps {
		_, stepSpan := tracer.Start(ctx, fmt.Sprintf("calculator.chain.step.%d.%s", i, step.Op),
			trace.WithAttributes(
				attribute.Int("chain.step.index", i),
				attribute.String("chain.step.operation", step.Op),
				attribute.Float64("chain.step.input", running),
				attribute.Float64("chain.step.value", step.Value),
			),
		)

		stepStart := time.Now()
		prev := running

		var (
			size int
			err  error
		)
		if !finite(step.Value) {
			err = fmt.Errorf("invalid numeric input at step %d", i)
		} else {
			running, size, err = s.apply(step.Op, prev, step.Value)
			if err != nil {
				err = fmt.Errorf("step %d: %w", i, err)
			}
		}

		stepElapsed := float64(time.Since(stepStart).Microseconds()) / 1000.0

		if err != nil {
			stepSpan.RecordError(err)
			stepSpan.SetStatus(codes.Error, err.Error())
			stepSpan.End()

			observability.RecordError(ctx, span, logger, errorCounter, step.Op, fmt.Sprintf("failed at step %d", i), err, http.StatusBadRequest, w)
			return
		}

		recordSuccess(ctx, step.Op, running, stepElapsed, size)

		stepSpan.AddEvent("step.complete", trace.WithAttributes(
			attribute.Float64("input", prev),
			attribute.Float64("result", running),
		))
		stepSpan.SetAttributes(attribute.Float64("chain.step.result", running))
		stepSpan.SetStatus(codes.Ok, "")
		stepSpan.End()

		logger.Info("chain step completed",
			zap.Int("step", i),
			zap.String("operation", step.Op),
			zap.Float64("input", prev),
			zap.Float64("value", step.Value),
			zap.Float64("result", running),
			zap.Float64("duration_ms", stepElapsed),
		)

		results = append(results, ChainResult{
			Op:     step.Op,
			Value:  step.Value,
			Result: running,
		})
	}

	span.AddEvent("chain.complete", trace.WithAttributes(
		attribute.Float64("final_result", running),
		attribute.Int("total_steps", len(req.Steps)),
	))
	span.SetAttributes(attribute.Float64("chain.result", running))
	span.SetStatus(codes.Ok, "")

	logger.Info("chained calculation completed",
		zap.Float64("initial", req.Initial),
		zap.Float64("result", running),
		zap.Int("steps", len(req.Steps)),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, ChainResponse{
		Initial: req.Initial,
		Steps:   results,
		Result:  running,
	})
}

func recordSuccess(ctx context.Context, opName string, result, elapsed float64, size int) {
	attrs := metric.WithAttributes(attribute.String("operation", opName))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result, attrs)
	historyGauge.Record(ctx, int64(size))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
