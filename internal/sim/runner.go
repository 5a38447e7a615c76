package sim

import (
	"context"
	"fmt"

	"github.com/kws/galaxy/internal/body"
	"github.com/kws/galaxy/internal/metrics"
	"github.com/kws/galaxy/internal/physics"
)

// Observer is notified after each completed step.
type Observer interface {
	OnStep(galaxies []*body.Galaxy, step int, t float64)
}

// Config controls a batch run. ResetEvery discards and regenerates the
// collection every that many steps (0 disables); regeneration requires a
// reset function on the Runner.
type Config struct {
	Steps      int
	ResetEvery int
}

// Result collects per-run outputs: the final metric values plus the full
// per-step series for each metric, for plotting and export.
type Result struct {
	StepsTaken int
	Resets     int
	Metrics    map[string]float64
	Series     map[string][]float64
	Times      []float64
}

// Runner is the host loop: it owns the galaxy collection, drives the
// integrator, applies the reset policy and feeds metrics and observers.
// A step is atomic; cancellation is only honored between steps.
type Runner struct {
	integ     *physics.Integrator
	galaxies  []*body.Galaxy
	reset     func() []*body.Galaxy
	metrics   []metrics.Metric
	observers []Observer
}

func New(integ *physics.Integrator, galaxies []*body.Galaxy) *Runner {
	return &Runner{integ: integ, galaxies: galaxies}
}

func (r *Runner) AddMetric(m metrics.Metric) { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer)     { r.observers = append(r.observers, o) }

// SetReset installs the factory used by the reset policy to regenerate
// the collection.
func (r *Runner) SetReset(f func() []*body.Galaxy) { r.reset = f }

// Galaxies exposes the current collection; callers must not reshape it
// while Run is in flight.
func (r *Runner) Galaxies() []*body.Galaxy { return r.galaxies }

// Step advances the collection by one step without touching metrics,
// observers or the reset policy. Used by interactive hosts that drive
// their own cadence.
func (r *Runner) Step() {
	r.integ.UpdateGalaxies(r.galaxies)
}

func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := r.validate(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Metrics: make(map[string]float64),
		Series:  make(map[string][]float64, len(r.metrics)),
		Times:   make([]float64, 0, cfg.Steps),
	}

	for _, m := range r.metrics {
		m.Reset()
		result.Series[m.Name()] = make([]float64, 0, cfg.Steps)
	}

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if cfg.ResetEvery > 0 && r.reset != nil && i > 0 && i%cfg.ResetEvery == 0 {
			r.galaxies = r.reset()
			result.Resets++
		}

		r.integ.UpdateGalaxies(r.galaxies)
		t := float64(i+1) * r.integ.Dt
		result.StepsTaken++
		result.Times = append(result.Times, t)

		for _, m := range r.metrics {
			m.Observe(r.galaxies, t)
			result.Series[m.Name()] = append(result.Series[m.Name()], m.Value())
		}
		for _, o := range r.observers {
			o.OnStep(r.galaxies, i, t)
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (r *Runner) validate(cfg Config) error {
	if cfg.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	if len(r.galaxies) == 0 {
		return fmt.Errorf("no galaxies to simulate")
	}
	if cfg.ResetEvery < 0 {
		return fmt.Errorf("reset interval must be non-negative, got %d", cfg.ResetEvery)
	}
	return nil
}
