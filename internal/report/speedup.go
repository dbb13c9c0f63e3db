// SPDX-License-Identifier: MPL-2.0

package report

import "userbench/internal/bench"

// Speedup is one operation's mean-time ratio between two engines.
type Speedup struct {
	Operation string
	Factor    float64
}

// Speedups pairs results across two engines and reports, per operation, how
// many times faster engine ran than baseline. Operations missing a result
// for either engine are skipped; order follows engine's result order. A
// factor below 1 means engine was slower.
func Speedups(results []bench.Result, engine, baseline string) []Speedup {
	base := make(map[string]bench.Result, len(results))
	for _, r := range results {
		if r.Engine == baseline {
			base[r.Operation] = r
		}
	}

	var out []Speedup
	for _, r := range results {
		if r.Engine != engine {
			continue
		}
		b, ok := base[r.Operation]
		if !ok {
			continue
		}
		out = append(out, Speedup{Operation: r.Operation, Factor: bench.Speedup(r, b)})
	}
	return out
}
