// SPDX-License-Identifier: MPL-2.0

package bench

import (
	"errors"
	"testing"

	"userbench/internal/dataset"
	"userbench/pkg/user"
)

func TestIterationsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value     Iterations
		wantValid bool
	}{
		{1, true},
		{100000, true},
		{0, false},
		{-5, false},
	}

	for _, tt := range tests {
		err := tt.value.Validate()
		if (err == nil) != tt.wantValid {
			t.Errorf("Iterations(%d).Validate() error = %v, wantValid %v", tt.value, err, tt.wantValid)
		}
		if err != nil && !errors.Is(err, ErrInvalidIterations) {
			t.Errorf("error does not wrap ErrInvalidIterations: %v", err)
		}
	}
}

func TestWarmupValidate(t *testing.T) {
	t.Parallel()

	if err := Warmup(0).Validate(); err != nil {
		t.Errorf("Warmup(0).Validate() error = %v, want nil", err)
	}
	err := Warmup(-1).Validate()
	if err == nil {
		t.Fatal("Warmup(-1).Validate() returned nil")
	}
	if !errors.Is(err, ErrInvalidWarmup) {
		t.Errorf("error does not wrap ErrInvalidWarmup: %v", err)
	}
}

func TestRunnerMeasure(t *testing.T) {
	t.Parallel()

	calls := 0
	r := &Runner{Iterations: 50, Warmup: 5}
	res, err := r.Measure(Op{
		Name:   "count",
		Engine: "test",
		Fn: func() (uint64, error) {
			calls++
			return 2, nil
		},
	})
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}

	if calls != 55 {
		t.Errorf("Fn called %d times, want 55 (5 warmup + 50 timed)", calls)
	}
	if res.Iterations != 50 {
		t.Errorf("Result.Iterations = %d, want 50", res.Iterations)
	}
	if res.Checksum != 110 {
		t.Errorf("Result.Checksum = %d, want 110", res.Checksum)
	}
	if res.Operation != "count" || res.Engine != "test" {
		t.Errorf("Result identity = %s/%s, want count/test", res.Operation, res.Engine)
	}
	if res.Stats.Min < 0 || res.Stats.Max < res.Stats.Min || res.Stats.Mean < 0 {
		t.Errorf("implausible stats: %+v", res.Stats)
	}
}

func TestRunnerMeasureOpIterationsOverride(t *testing.T) {
	t.Parallel()

	calls := 0
	r := &Runner{Iterations: 1000}
	res, err := r.Measure(Op{
		Name:       "override",
		Engine:     "test",
		Iterations: 7,
		Fn: func() (uint64, error) {
			calls++
			return 0, nil
		},
	})
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if calls != 7 || res.Iterations != 7 {
		t.Errorf("override ignored: calls = %d, Result.Iterations = %d, want 7", calls, res.Iterations)
	}
}

func TestRunnerMeasureErrors(t *testing.T) {
	t.Parallel()

	t.Run("invalid iterations", func(t *testing.T) {
		t.Parallel()

		r := &Runner{Iterations: 0}
		_, err := r.Measure(Op{Name: "x", Engine: "test", Fn: func() (uint64, error) { return 0, nil }})
		if !errors.Is(err, ErrInvalidIterations) {
			t.Errorf("Measure() error = %v, want ErrInvalidIterations", err)
		}
	})

	t.Run("failing op aborts", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		r := &Runner{Iterations: 10}
		_, err := r.Measure(Op{Name: "x", Engine: "test", Fn: func() (uint64, error) { return 0, boom }})
		if !errors.Is(err, boom) {
			t.Errorf("Measure() error = %v, want wrapped boom", err)
		}
	})

	t.Run("nil fn", func(t *testing.T) {
		t.Parallel()

		r := &Runner{Iterations: 10}
		if _, err := r.Measure(Op{Name: "x", Engine: "test"}); err == nil {
			t.Error("Measure() accepted an Op with no function")
		}
	})
}

func TestSpeedup(t *testing.T) {
	t.Parallel()

	fast := Result{Stats: Summary{Mean: 2}}
	slow := Result{Stats: Summary{Mean: 8}}
	if got := Speedup(fast, slow); got != 4 {
		t.Errorf("Speedup() = %v, want 4", got)
	}
	if got := Speedup(Result{}, slow); got != 0 {
		t.Errorf("Speedup() with zero mean = %v, want 0", got)
	}
}

func TestOpsCoverBothEngines(t *testing.T) {
	t.Parallel()

	corpus := dataset.Users(dataset.DefaultSeed, 100)
	for _, c := range user.Codecs() {
		ops, err := Ops(c, corpus, 100000)
		if err != nil {
			t.Fatalf("Ops(%s) error = %v", c.Name(), err)
		}
		if len(ops) != len(OpNames()) {
			t.Fatalf("Ops(%s) returned %d ops, want %d", c.Name(), len(ops), len(OpNames()))
		}
		for i, op := range ops {
			if op.Name != OpNames()[i] {
				t.Errorf("op %d = %q, want %q", i, op.Name, OpNames()[i])
			}
			if op.Engine != c.Name() {
				t.Errorf("op %q has engine %q, want %q", op.Name, op.Engine, c.Name())
			}
			if _, err := op.Fn(); err != nil {
				t.Errorf("op %q failed: %v", op.Name, err)
			}
		}
	}
}

// The checksums prove the engines did equivalent work: for every operation,
// running the direct and reflect ops through the same runner must accumulate
// identical checksums.
func TestOpsChecksumParity(t *testing.T) {
	t.Parallel()

	corpus := dataset.Users(dataset.DefaultSeed, 500)
	r := &Runner{Iterations: 3}

	byEngine := make(map[string]map[string]uint64)
	for _, c := range user.Codecs() {
		ops, err := Ops(c, corpus, 3000)
		if err != nil {
			t.Fatalf("Ops(%s) error = %v", c.Name(), err)
		}
		sums := make(map[string]uint64, len(ops))
		for _, op := range ops {
			res, err := r.Measure(op)
			if err != nil {
				t.Fatalf("Measure(%s %s) error = %v", op.Engine, op.Name, err)
			}
			sums[op.Name] = res.Checksum
		}
		byEngine[c.Name()] = sums
	}

	for _, name := range OpNames() {
		d := byEngine[user.EngineDirect][name]
		rv := byEngine[user.EngineReflect][name]
		if d != rv {
			t.Errorf("checksum mismatch for %q: direct %d, reflect %d", name, d, rv)
		}
	}
}

func TestSelectOps(t *testing.T) {
	t.Parallel()

	corpus := dataset.Users(dataset.DefaultSeed, 10)
	ops, err := Ops(user.DirectCodec{}, corpus, 1000)
	if err != nil {
		t.Fatalf("Ops() error = %v", err)
	}

	selected, err := SelectOps(ops, []string{OpCopy, OpMarshal})
	if err != nil {
		t.Fatalf("SelectOps() error = %v", err)
	}
	if len(selected) != 2 || selected[0].Name != OpMarshal || selected[1].Name != OpCopy {
		t.Errorf("SelectOps() kept %v, want canonical-order marshal, copy", opNamesOf(selected))
	}

	if all, err := SelectOps(ops, nil); err != nil || len(all) != len(ops) {
		t.Errorf("SelectOps(nil) = %d ops, error %v; want all %d", len(all), err, len(ops))
	}

	if _, err := SelectOps(ops, []string{"serialize"}); err == nil {
		t.Error("SelectOps accepted an unknown operation name")
	}
}

func opNamesOf(ops []Op) []string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name
	}
	return names
}
