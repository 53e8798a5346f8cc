// SPDX-License-Identifier: MIT

package validation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ErrAssertion marks a check whose expectation did not hold.
var ErrAssertion = errors.New("validation: assertion failed")

// ErrPanic marks a check that panicked.
var ErrPanic = errors.New("validation: check panicked")

// Check is a single named expectation.
type Check struct {
	Name string
	Run  func(ctx context.Context) error
}

// Result is the outcome of one check.
type Result struct {
	Name    string
	Err     error
	Elapsed time.Duration
}

// Passed reports whether the check succeeded.
func (r Result) Passed() bool { return r.Err == nil }

// Report aggregates results in registration order.
type Report struct {
	Results []Result
	Passed  int
	Failed  int
}

// OK reports whether every check passed.
func (r Report) OK() bool { return r.Failed == 0 }

// String renders a one-line summary in the form printed by the CLI.
func (r Report) String() string {
	return fmt.Sprintf("TEST RESULTS: %d passed, %d failed", r.Passed, r.Failed)
}

// ExitCode is 0 when every check passed and 1 otherwise.
func (r Report) ExitCode() int {
	if r.OK() {
		return 0
	}

	return 1
}

// Suite runs checks with a bounded degree of parallelism.
type Suite struct {
	checks   []Check
	log      zerolog.Logger
	parallel int
}

// SuiteOption configures a Suite.
type SuiteOption func(*Suite)

// WithParallel runs up to n checks at once. Panics on n < 1.
func WithParallel(n int) SuiteOption {
	if n < 1 {
		panic("validation: WithParallel: n must be >= 1")
	}
	return func(s *Suite) { s.parallel = n }
}

// NewSuite builds a suite over checks.
func NewSuite(log zerolog.Logger, checks []Check, opts ...SuiteOption) *Suite {
	s := &Suite{
		checks:   checks,
		log:      log.With().Str("component", "validation").Logger(),
		parallel: 1,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run executes every check and returns the report. It never returns early:
// a cancelled ctx fails the checks that have not started yet.
func (s *Suite) Run(ctx context.Context) Report {
	results := make([]Result, len(s.checks))

	runCheck := func(ctx context.Context, i int) {
		c := s.checks[i]
		start := time.Now()
		err := ctx.Err()
		if err == nil {
			err = safeRun(ctx, c)
		}
		results[i] = Result{Name: c.Name, Err: err, Elapsed: time.Since(start)}

		if err != nil {
			s.log.Error().Str("check", c.Name).Str("status", "fail").
				Dur("elapsed", results[i].Elapsed).Err(err).Msg("check finished")
		} else {
			s.log.Info().Str("check", c.Name).Str("status", "pass").
				Dur("elapsed", results[i].Elapsed).Msg("check finished")
		}
	}

	if s.parallel > 1 {
		g, gCtx := errgroup.WithContext(ctx)
		g.SetLimit(s.parallel)
		for i := range s.checks {
			i := i
			g.Go(func() error {
				runCheck(gCtx, i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range s.checks {
			runCheck(ctx, i)
		}
	}

	rep := Report{Results: results}
	for _, r := range results {
		if r.Passed() {
			rep.Passed++
		} else {
			rep.Failed++
		}
	}
	s.log.Info().Int("passed", rep.Passed).Int("failed", rep.Failed).Msg("suite finished")

	return rep
}

// safeRun converts a panic inside the check into ErrPanic.
func safeRun(ctx context.Context, c Check) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v: %w", r, ErrPanic)
		}
	}()
	if c.Run == nil {
		return fmt.Errorf("check %q has no body: %w", c.Name, ErrAssertion)
	}

	return c.Run(ctx)
}

// expect returns an ErrAssertion-wrapped error when cond is false.
func expect(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}

	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrAssertion)
}
