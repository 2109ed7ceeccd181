package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/johnwards/learnseed/internal/store"
)

// Opener connects to the store a run writes to.
type Opener func(ctx context.Context) (store.Store, error)

// Orchestrator executes the units of a Registry.
type Orchestrator struct {
	registry *Registry
	open     Opener
	logger   *slog.Logger
	reporter Reporter
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger passed to units.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option {
	return func(o *Orchestrator) { o.reporter = r }
}

// New creates an Orchestrator.
func New(reg *Registry, open Opener, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		registry: reg,
		open:     open,
		logger:   slog.Default(),
		reporter: NopReporter{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Registry returns the units this orchestrator runs.
func (o *Orchestrator) Registry() *Registry { return o.registry }

// RunAll executes every unit in dependency order. The first failing unit
// stops the run; the returned error names it.
func (o *Orchestrator) RunAll(ctx context.Context) (*Summary, error) {
	return o.run(ctx, ModeAll, o.registry.Order())
}

// RunOne executes only the named unit. Its prerequisites are read from the
// store as left by an earlier run. An unknown name fails before connecting.
func (o *Orchestrator) RunOne(ctx context.Context, name string) (*Summary, error) {
	if _, ok := o.registry.Unit(name); !ok {
		err := &UnknownUnitError{Name: name, Valid: o.registry.Order()}
		return &Summary{Mode: ModeSingle, State: StateFailed, Err: err}, err
	}

	sum, err := o.run(ctx, ModeSingle, []string{name})
	if err == nil {
		if deps := o.registry.Dependents(name); len(deps) > 0 {
			o.logger.Warn("dependent collections still reference the previous records; re-run them or run all",
				"unit", name, "dependents", deps)
		}
	}
	return sum, err
}

func (o *Orchestrator) run(ctx context.Context, mode Mode, names []string) (sum *Summary, err error) {
	start := time.Now()
	sum = &Summary{Mode: mode, Planned: names, State: StateIdle}
	defer func() {
		sum.Duration = time.Since(start)
		if err != nil {
			sum.Err = err
			o.transition(sum, StateFailed)
		} else {
			o.transition(sum, StateSucceeded)
		}
		o.reporter.Finished(sum)
	}()

	o.transition(sum, StateConnecting)
	s, err := o.open(ctx)
	if err != nil {
		return sum, fmt.Errorf("connect: %w", err)
	}
	defer func() {
		// Disconnect even when ctx was cancelled mid-run.
		if derr := s.Disconnect(context.WithoutCancel(ctx)); derr != nil {
			o.logger.Error("disconnect failed", "error", derr)
		}
	}()

	o.transition(sum, StateExecuting)
	o.reporter.Started(mode, len(names))

	outputs := make(map[string][]store.Document, len(names))
	for i, name := range names {
		step := i + 1
		u, _ := o.registry.Unit(name)

		if cerr := ctx.Err(); cerr != nil {
			sum.Failed = name
			o.reporter.UnitFailed(step, len(names), u, cerr)
			return sum, fmt.Errorf("seed %s: %w", name, cerr)
		}

		o.reporter.UnitStarted(step, len(names), u)
		o.logger.Debug("unit started", "unit", name, "step", step, "total", len(names))

		env := &Env{
			Store:    s,
			Logger:   o.logger,
			unit:     u,
			registry: o.registry,
			outputs:  outputs,
		}
		unitStart := time.Now()
		docs, rerr := u.Run(ctx, env)
		if rerr != nil {
			sum.Failed = name
			o.logger.Error("unit failed", "unit", name, "error", rerr)
			o.reporter.UnitFailed(step, len(names), u, rerr)
			return sum, fmt.Errorf("seed %s: %w", name, rerr)
		}

		outputs[name] = docs
		res := Result{
			Unit:       name,
			Label:      u.Label(),
			Collection: u.Collection(),
			Created:    len(docs),
			Skipped:    env.skipped,
			Duration:   time.Since(unitStart),
		}
		sum.Results = append(sum.Results, res)
		o.logger.Debug("unit finished", "unit", name, "created", res.Created, "skipped", res.Skipped)
		o.reporter.UnitFinished(step, len(names), res)
	}

	o.transition(sum, StateReporting)
	return sum, nil
}

func (o *Orchestrator) transition(sum *Summary, to State) {
	o.logger.Debug("pipeline state", "from", sum.State, "to", to)
	sum.State = to
}
