// SPDX-License-Identifier: MPL-2.0

package report

import (
	"encoding/json"
	"io"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"userbench/internal/bench"
)

type (
	// Meta carries the run parameters behind a set of results.
	Meta struct {
		Iterations int
		Warmup     int
		Seed       int64
		Count      int
	}

	// Report is the exportable form of one benchmark run: run identity, the
	// environment it ran in, the parameters and the measured results.
	Report struct {
		RunID      uuid.UUID      `json:"run_id" toml:"run_id"`
		StartedAt  time.Time      `json:"started_at" toml:"started_at"`
		GoVersion  string         `json:"go_version" toml:"go_version"`
		OS         string         `json:"os" toml:"os"`
		Arch       string         `json:"arch" toml:"arch"`
		Iterations int            `json:"iterations" toml:"iterations"`
		Warmup     int            `json:"warmup" toml:"warmup"`
		Seed       int64          `json:"seed" toml:"seed"`
		Count      int            `json:"count" toml:"count"`
		Results    []bench.Result `json:"results" toml:"results"`
	}
)

// New assembles a report for the current run: fresh run ID, UTC start time
// and the running toolchain's version and platform.
func New(results []bench.Result, meta Meta) Report {
	return Report{
		RunID:      uuid.New(),
		StartedAt:  time.Now().UTC(),
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		Iterations: meta.Iterations,
		Warmup:     meta.Warmup,
		Seed:       meta.Seed,
		Count:      meta.Count,
		Results:    results,
	}
}

// WriteJSON writes the report as two-space-indented JSON with a trailing
// newline.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteTOML writes the report as TOML.
func WriteTOML(w io.Writer, r Report) error {
	return toml.NewEncoder(w).Encode(r)
}
