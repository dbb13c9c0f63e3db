// SPDX-License-Identifier: MPL-2.0

package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"userbench/internal/bench"
)

// Column widths for the results table. The operation column fits the longest
// label ("reflect marshal-indent"); the numeric columns fit two-decimal
// microsecond values well past realistic magnitudes.
const (
	opColWidth   = 30
	meanColWidth = 12
	numColWidth  = 10
)

var (
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#7C3AED"))

	tableRuleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// Table writes the results as a fixed-width table, one row per measured
// operation labeled "<engine> <operation>", all timings in microseconds.
// Styling wraps whole lines only, so escape sequences never disturb the
// column alignment.
func Table(w io.Writer, results []bench.Result) error {
	header := fmt.Sprintf("%-*s %-*s %-*s %-*s %-*s %-*s",
		opColWidth, "Operation",
		meanColWidth, "Mean (µs)",
		meanColWidth, "Median (µs)",
		numColWidth, "Stdev",
		numColWidth, "Min (µs)",
		numColWidth, "Max (µs)")

	var b strings.Builder
	b.WriteString(tableHeaderStyle.Render(header))
	b.WriteByte('\n')
	b.WriteString(tableRuleStyle.Render(strings.Repeat("-", utf8.RuneCountInString(header))))
	b.WriteByte('\n')
	for _, r := range results {
		fmt.Fprintf(&b, "%-*s %-*.2f %-*.2f %-*.2f %-*.2f %-*.2f\n",
			opColWidth, r.Label(),
			meanColWidth, r.Stats.Mean,
			meanColWidth, r.Stats.Median,
			numColWidth, r.Stats.Stdev,
			numColWidth, r.Stats.Min,
			numColWidth, r.Stats.Max)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
