package readiness

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"gongsil-api/internal/pkg/config"
	"gongsil-api/internal/pkg/errs"

	"github.com/cenkalti/backoff/v5"
)

const checkTimeout = 2 * time.Second

// Check is a named dependency probe.
type Check struct {
	Name  string
	Check func(context.Context) error
}

// Gate is a one-shot future: it resolves when every check passes once during startup,
// or with an error once the readiness timeout runs out.
type Gate struct {
	cfg    config.ReadinessConfig
	checks []Check
	logger *slog.Logger

	once sync.Once
	done chan struct{}
	err  error
}

func NewGate(cfg config.ReadinessConfig, logger *slog.Logger, checks ...Check) *Gate {
	return &Gate{
		cfg:    cfg,
		checks: checks,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Start polls the checks in the background until they pass or the timeout expires.
func (g *Gate) Start(ctx context.Context) {
	go g.run(ctx)
}

func (g *Gate) run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	attempts := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempts++
		return struct{}{}, g.Probe(ctx)
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(g.cfg.Interval)),
		backoff.WithMaxElapsedTime(g.cfg.Timeout),
		backoff.WithNotify(func(err error, next time.Duration) {
			g.logger.Debug("dependencies not ready", slog.String("error", err.Error()), slog.Duration("retry_in", next))
		}),
	)

	if err != nil {
		g.logger.Error("dependencies did not become ready", slog.Int("attempts", attempts), slog.String("error", err.Error()))
	} else {
		g.logger.Info("dependencies ready", slog.Int("attempts", attempts))
	}
	g.resolve(err)
}

func (g *Gate) resolve(err error) {
	g.once.Do(func() {
		g.err = err
		close(g.done)
	})
}

// Wait blocks until the gate resolves or ctx ends.
func (g *Gate) Wait(ctx context.Context) error {
	select {
	case <-g.done:
		return g.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Resolved reports whether startup finished, and with which result.
func (g *Gate) Resolved() (bool, error) {
	select {
	case <-g.done:
		return true, g.err
	default:
		return false, nil
	}
}

// Probe runs every check once. The error names each failing dependency.
func (g *Gate) Probe(ctx context.Context) error {
	var failures []string
	for _, c := range g.checks {
		if c.Check == nil {
			continue
		}
		cctx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := c.Check(cctx)
		cancel()
		if err != nil {
			name := c.Name
			if name == "" {
				name = "dependency"
			}
			failures = append(failures, name+": "+err.Error())
		}
	}
	if len(failures) > 0 {
		return errs.New(strings.Join(failures, "; "))
	}
	return nil
}
