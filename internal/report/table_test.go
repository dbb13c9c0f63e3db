// SPDX-License-Identifier: MPL-2.0

package report

import (
	"bytes"
	"strings"
	"testing"

	"userbench/internal/bench"
	"userbench/pkg/user"
)

// fixedResults builds a small, deterministic result set with both engines.
func fixedResults() []bench.Result {
	return []bench.Result{
		{
			Operation:  bench.OpMarshal,
			Engine:     user.EngineDirect,
			Iterations: 1000,
			Checksum:   83000,
			Stats:      bench.Summary{Mean: 0.5, Median: 0.45, Stdev: 0.1, Min: 0.4, Max: 1.2},
		},
		{
			Operation:  bench.OpUnmarshal,
			Engine:     user.EngineDirect,
			Iterations: 1000,
			Checksum:   30000,
			Stats:      bench.Summary{Mean: 1, Median: 0.9, Stdev: 0.2, Min: 0.8, Max: 2.5},
		},
		{
			Operation:  bench.OpMarshal,
			Engine:     user.EngineReflect,
			Iterations: 1000,
			Checksum:   83000,
			Stats:      bench.Summary{Mean: 2, Median: 1.8, Stdev: 0.3, Min: 1.5, Max: 4},
		},
		{
			Operation:  bench.OpUnmarshal,
			Engine:     user.EngineReflect,
			Iterations: 1000,
			Checksum:   30000,
			Stats:      bench.Summary{Mean: 3, Median: 2.7, Stdev: 0.4, Min: 2.2, Max: 6},
		},
	}
}

func TestTable_ContainsHeaderAndRows(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Table(&buf, fixedResults()); err != nil {
		t.Fatalf("Table() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Operation", "Mean (µs)", "Median (µs)", "Stdev", "Min (µs)", "Max (µs)",
		"direct marshal", "direct unmarshal", "reflect marshal", "reflect unmarshal",
		strings.Repeat("-", 20),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Table() output missing %q:\n%s", want, out)
		}
	}
}

func TestTable_RowFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Table(&buf, fixedResults()); err != nil {
		t.Fatalf("Table() error = %v", err)
	}

	// Data rows carry no styling, so the exact fixed-width rendering is
	// stable regardless of terminal detection.
	var row string
	for line := range strings.Lines(buf.String()) {
		if strings.HasPrefix(line, "direct marshal") {
			row = strings.TrimSuffix(line, "\n")
			break
		}
	}
	if row == "" {
		t.Fatalf("Table() output has no direct marshal row:\n%s", buf.String())
	}

	want := "direct marshal                 0.50         0.45         0.10       0.40       1.20      "
	if row != want {
		t.Errorf("Table() row = %q, want %q", row, want)
	}
}

func TestTable_EmptyResults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Table(&buf, nil); err != nil {
		t.Fatalf("Table() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Operation") {
		t.Errorf("Table() with no results should still print the header, got:\n%s", buf.String())
	}
}

func TestSpeedups(t *testing.T) {
	t.Parallel()

	speedups := Speedups(fixedResults(), user.EngineDirect, user.EngineReflect)
	if len(speedups) != 2 {
		t.Fatalf("Speedups() returned %d entries, want 2", len(speedups))
	}

	if speedups[0].Operation != bench.OpMarshal || speedups[1].Operation != bench.OpUnmarshal {
		t.Errorf("Speedups() order = [%s %s], want [marshal unmarshal]",
			speedups[0].Operation, speedups[1].Operation)
	}
	if got := speedups[0].Factor; got != 4 {
		t.Errorf("Speedups() marshal factor = %v, want 4", got)
	}
	if got := speedups[1].Factor; got != 3 {
		t.Errorf("Speedups() unmarshal factor = %v, want 3", got)
	}
}

func TestSpeedups_SingleEngine(t *testing.T) {
	t.Parallel()

	direct := fixedResults()[:2]
	if speedups := Speedups(direct, user.EngineDirect, user.EngineReflect); len(speedups) != 0 {
		t.Errorf("Speedups() with one engine = %v, want none", speedups)
	}
}

func TestSpeedups_SkipsUnpairedOperations(t *testing.T) {
	t.Parallel()

	results := fixedResults()[:3] // reflect unmarshal missing
	speedups := Speedups(results, user.EngineDirect, user.EngineReflect)
	if len(speedups) != 1 || speedups[0].Operation != bench.OpMarshal {
		t.Errorf("Speedups() = %v, want only the marshal pair", speedups)
	}
}
