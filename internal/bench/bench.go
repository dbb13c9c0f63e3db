// SPDX-License-Identifier: MPL-2.0

// Package bench is the timing harness: it calls an operation a configured
// number of times, records per-call wall-clock durations and reduces them to
// summary statistics. The measured operations come from the ops table over
// the user codec engines; the harness itself knows nothing about what it
// times beyond the checksum contract below.
package bench

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

type (
	// Op is one measurable operation. Fn must return a value derived from the
	// work it performed; the runner accumulates those values into a checksum
	// so the timed work is observably consumed and cannot be elided.
	Op struct {
		// Name is the operation name ("marshal", "unmarshal", ...).
		Name string
		// Engine is the codec engine the operation runs on.
		Engine string
		// Iterations overrides the runner's iteration count when positive.
		// Whole-corpus operations use it to stay within a sane run time.
		Iterations Iterations
		// Fn performs one call.
		Fn func() (uint64, error)
	}

	// Result is the measured outcome of one Op.
	Result struct {
		Operation  string  `json:"operation" toml:"operation"`
		Engine     string  `json:"engine" toml:"engine"`
		Iterations int     `json:"iterations" toml:"iterations"`
		Checksum   uint64  `json:"checksum" toml:"checksum"`
		Stats      Summary `json:"stats" toml:"stats"`
	}

	// Runner measures Ops with a fixed iteration and warmup policy.
	Runner struct {
		Iterations Iterations
		Warmup     Warmup
		// Logger receives per-operation debug diagnostics. Nil disables them.
		Logger *log.Logger
	}
)

// Label renders the result's "engine op" pair for tables and logs.
func (r Result) Label() string {
	return r.Engine + " " + r.Operation
}

// Measure times one operation: Warmup untimed calls, then per-call sampling
// over the effective iteration count. The first failing call aborts the
// measurement.
func (r *Runner) Measure(op Op) (Result, error) {
	iters := r.Iterations
	if op.Iterations > 0 {
		iters = op.Iterations
	}
	if err := iters.Validate(); err != nil {
		return Result{}, err
	}
	if err := r.Warmup.Validate(); err != nil {
		return Result{}, err
	}
	if op.Fn == nil {
		return Result{}, fmt.Errorf("operation %q has no function", op.Name)
	}

	var sink uint64
	for i := 0; i < int(r.Warmup); i++ {
		v, err := op.Fn()
		if err != nil {
			return Result{}, fmt.Errorf("warming up %s %s: %w", op.Engine, op.Name, err)
		}
		sink += v
	}

	samples := make([]float64, int(iters))
	for i := range samples {
		start := time.Now()
		v, err := op.Fn()
		elapsed := time.Since(start)
		if err != nil {
			return Result{}, fmt.Errorf("measuring %s %s at iteration %d: %w", op.Engine, op.Name, i, err)
		}
		sink += v
		samples[i] = float64(elapsed.Nanoseconds()) / 1e3
	}

	res := Result{
		Operation:  op.Name,
		Engine:     op.Engine,
		Iterations: int(iters),
		Checksum:   sink,
		Stats:      Compute(samples),
	}
	if r.Logger != nil {
		r.Logger.Debug("measured",
			"op", op.Name,
			"engine", op.Engine,
			"iterations", int(iters),
			"mean_us", res.Stats.Mean,
			"checksum", sink,
		)
	}
	return res, nil
}

// MeasureAll measures each op in order, stopping at the first failure.
func (r *Runner) MeasureAll(ops []Op) ([]Result, error) {
	results := make([]Result, 0, len(ops))
	for _, op := range ops {
		res, err := r.Measure(op)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Speedup reports how many times faster a ran than b, by mean time per call.
func Speedup(a, b Result) float64 {
	if a.Stats.Mean == 0 {
		return 0
	}
	return b.Stats.Mean / a.Stats.Mean
}
