package observability

import (
	"context"
	"errors"
	"fmt"

	"go-chi-calculator/internal/config"
)

// Setup initialises logging, tracing, metrics and log export in order and
// returns a single shutdown that flushes all of them. On error, anything
// already started is shut down before returning.
func Setup(ctx context.Context, cfg config.Config) (func(context.Context) error, error) {
	if err := InitLogger(cfg); err != nil {
		return nil, err
	}

	var shutdowns []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		SyncLogger()
		return errors.Join(errs...)
	}

	steps := []struct {
		name string
		init func(context.Context, config.Config) (func(context.Context) error, error)
	}{
		{"tracing", InitTracing},
		{"metrics", InitMetrics},
		{"logging", InitLogging},
	}

	for _, step := range steps {
		fn, err := step.init(ctx, cfg)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("init %s: %w", step.name, err), shutdown(ctx))
		}
		shutdowns = append(shutdowns, fn)
	}

	return shutdown, nil
}
