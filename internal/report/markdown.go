// SPDX-License-Identifier: MPL-2.0

package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"userbench/pkg/user"
)

// Markdown renders the report as a markdown document: a metadata preamble,
// the results table and, when both engines ran, the speedup summary.
func Markdown(r Report) string {
	var b strings.Builder
	b.WriteString("# userbench results\n\n")
	fmt.Fprintf(&b, "- Run ID: `%s`\n", r.RunID)
	fmt.Fprintf(&b, "- Started: %s\n", r.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "- Go: %s (%s/%s)\n", r.GoVersion, r.OS, r.Arch)
	fmt.Fprintf(&b, "- Iterations: %d (warmup %d)\n", r.Iterations, r.Warmup)
	fmt.Fprintf(&b, "- Corpus: %d records, seed %d\n", r.Count, r.Seed)

	b.WriteString("\n## Results\n\n")
	b.WriteString("| Operation | Mean (µs) | Median (µs) | Stdev | Min (µs) | Max (µs) |\n")
	b.WriteString("|---|---:|---:|---:|---:|---:|\n")
	for _, res := range r.Results {
		fmt.Fprintf(&b, "| %s | %.2f | %.2f | %.2f | %.2f | %.2f |\n",
			res.Label(), res.Stats.Mean, res.Stats.Median, res.Stats.Stdev,
			res.Stats.Min, res.Stats.Max)
	}

	if speedups := Speedups(r.Results, user.EngineDirect, user.EngineReflect); len(speedups) > 0 {
		b.WriteString("\n## Speedup (direct vs reflect)\n\n")
		for _, s := range speedups {
			fmt.Fprintf(&b, "- %s: %.2fx faster\n", s.Operation, s.Factor)
		}
	}
	return b.String()
}

// RenderMarkdown displays markdown with terminal-appropriate glamour
// styling. A positive width enables word wrap.
func RenderMarkdown(md string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}
