// Package saga runs an ordered list of steps that span independently owned
// services. Steps run sequentially in the caller's goroutine; the first failure
// stops the run. Completed steps can optionally be compensated in reverse order.
package saga

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var stepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "polyglot_saga_steps_total",
	Help: "Saga step executions by saga, step and outcome",
}, []string{"saga", "step", "outcome"})

// Step is one unit of work. Compensate is optional.
type Step struct {
	// Name is the step kind and the metric label, so it must come from a
	// fixed set.
	Name string
	// Detail tells repeated steps of one kind apart in results and logs,
	// for example the product an edge step writes.
	Detail     string
	Execute    func(ctx context.Context) error
	Compensate func(ctx context.Context) error
	// Timeout overrides Config.StepTimeout for this step.
	Timeout time.Duration
}

// Config tunes a Saga.
type Config struct {
	// StepTimeout bounds each step. Zero leaves the caller's deadline in charge.
	StepTimeout         time.Duration
	CompensationTimeout time.Duration
	CompensateOnFail    bool
	Logger              *slog.Logger
}

// CompensationError records a compensation that itself failed.
type CompensationError struct {
	Step string
	Err  error
}

// Result describes a run.
type Result struct {
	Completed          []string
	FailedStep         string
	Compensated        []string
	CompensationErrors []CompensationError
	Duration           time.Duration
}

// StepError is returned when a step fails. It carries the steps that had
// already completed, whose side effects remain unless compensated.
type StepError struct {
	Saga      string
	Step      string
	Completed []string
	Err       error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("saga %s failed at step %q: %v", e.Saga, e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// label names the step in results and errors.
func (st Step) label() string {
	if st.Detail == "" {
		return st.Name
	}
	return st.Name + ":" + st.Detail
}

// Saga is a named sequence of steps. A Saga is built per run; it holds no
// state between Execute calls.
type Saga struct {
	name   string
	config Config
	steps  []Step
}

// New creates a saga.
func New(name string, config Config, steps ...Step) *Saga {
	if config.CompensationTimeout <= 0 {
		config.CompensationTimeout = 30 * time.Second
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Saga{name: name, config: config, steps: steps}
}

// Execute runs the steps in order and stops at the first failure.
func (s *Saga) Execute(ctx context.Context) (*Result, error) {
	start := time.Now()
	res := &Result{Completed: make([]string, 0, len(s.steps))}
	completed := make([]Step, 0, len(s.steps))

	for _, step := range s.steps {
		err := ctx.Err()
		if err == nil {
			err = s.run(ctx, step)
		}
		if err != nil {
			stepsTotal.WithLabelValues(s.name, step.Name, "failed").Inc()
			res.FailedStep = step.label()
			s.config.Logger.WarnContext(ctx, "saga step failed",
				"saga", s.name,
				"step", step.Name,
				"detail", step.Detail,
				"completed", res.Completed,
				"error", err,
			)
			if s.config.CompensateOnFail {
				s.compensate(ctx, completed, res)
			}
			res.Duration = time.Since(start)
			return res, &StepError{Saga: s.name, Step: step.label(), Completed: append([]string(nil), res.Completed...), Err: err}
		}
		stepsTotal.WithLabelValues(s.name, step.Name, "completed").Inc()
		completed = append(completed, step)
		res.Completed = append(res.Completed, step.label())
	}

	res.Duration = time.Since(start)
	return res, nil
}

func (s *Saga) run(ctx context.Context, step Step) error {
	if step.Execute == nil {
		return errors.New("step has no Execute")
	}
	timeout := step.Timeout
	if timeout <= 0 {
		timeout = s.config.StepTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return step.Execute(ctx)
}

// compensate walks completed steps in reverse. It uses a fresh context so a
// cancelled caller does not prevent cleanup.
func (s *Saga) compensate(ctx context.Context, completed []Step, res *Result) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.CompensationTimeout)
	defer cancel()

	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(cctx); err != nil {
			stepsTotal.WithLabelValues(s.name, step.Name, "compensation_failed").Inc()
			res.CompensationErrors = append(res.CompensationErrors, CompensationError{Step: step.label(), Err: err})
			s.config.Logger.ErrorContext(ctx, "saga compensation failed",
				"saga", s.name, "step", step.Name, "detail", step.Detail, "error", err)
			continue
		}
		stepsTotal.WithLabelValues(s.name, step.Name, "compensated").Inc()
		res.Compensated = append(res.Compensated, step.label())
	}
}
