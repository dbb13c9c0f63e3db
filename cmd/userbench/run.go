// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"userbench/internal/bench"
	"userbench/internal/config"
	"userbench/internal/dataset"
	"userbench/internal/issue"
	"userbench/internal/report"
	"userbench/pkg/user"
)

// bannerWidth is the width of the ===/--- rules framing the run output.
const bannerWidth = 94

var (
	runEngine     string
	runFormat     string
	runOut        string
	runIterations int
	runWarmup     int
	runCount      int
	runSeed       int64

	// runCmd measures the codec engines and reports the results.
	runCmd = &cobra.Command{
		Use:   "run [operation...]",
		Short: "Measure the codec engines and report the results",
		Long: `Measure every operation on both codec engines and report the results.

Operations run in a fixed order: baseline, construct, marshal,
marshal-indent, unmarshal, mapping, copy, access. Naming operations as
arguments restricts the run to those; --engine restricts it to a single
engine. Settings resolve as flag > config file > default.

The access operation aggregates a generated corpus through each engine's
own field-access path; when both engines run, their aggregations must
agree before any results are reported.

Examples:
  userbench run                          Full suite, results table
  userbench run marshal unmarshal        Two operations only
  userbench run --engine reflect         Reflection engine only
  userbench run --iterations 5000        Faster, noisier run
  userbench run --format json --out r.json   Export the report`,
		ValidArgs: bench.OpNames(),
		Args:      cobra.OnlyValidArgs,
		RunE:      runRun,
	}
)

func init() {
	runCmd.Flags().StringVar(&runEngine, "engine", "", "measure a single engine (direct or reflect)")
	runCmd.Flags().StringVar(&runFormat, "format", "table", "output format (table, json, markdown, toml)")
	runCmd.Flags().StringVar(&runOut, "out", "", "write the report to a file")
	runCmd.Flags().IntVar(&runIterations, "iterations", 100000, "timed calls per operation")
	runCmd.Flags().IntVar(&runWarmup, "warmup", 1000, "untimed calls before sampling")
	runCmd.Flags().IntVar(&runCount, "count", 100000, "generated records in the aggregation corpus")
	runCmd.Flags().Int64Var(&runSeed, "seed", 42, "corpus generator seed")
}

func runRun(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	// Effective settings: flag > config file > default.
	iterations := int(cfg.Iterations)
	if flags.Changed("iterations") {
		iterations = runIterations
	}
	warmup := int(cfg.Warmup)
	if flags.Changed("warmup") {
		warmup = runWarmup
	}
	count := int(cfg.Dataset.Count)
	if flags.Changed("count") {
		count = runCount
	}
	seed := cfg.Dataset.Seed
	if flags.Changed("seed") {
		seed = runSeed
	}
	format := cfg.Output.Format
	if flags.Changed("format") {
		format = config.OutputFormat(runFormat)
	}
	outPath := cfg.Output.Path.String()
	if flags.Changed("out") {
		outPath = runOut
	}

	iters := bench.Iterations(iterations)
	if err := iters.Validate(); err != nil {
		return err
	}
	warm := bench.Warmup(warmup)
	if err := warm.Validate(); err != nil {
		return err
	}
	if valid, errs := config.DatasetCount(count).IsValid(); !valid {
		return errors.Join(errs...)
	}
	if valid, errs := format.IsValid(); !valid {
		return errors.Join(errs...)
	}
	if outPath != "" && format == config.OutputFormatTable {
		return fmt.Errorf("format %q has no file form: choose json, toml or markdown for --out", format)
	}

	codecs := user.Codecs()
	if runEngine != "" {
		c, ok := user.ByName(runEngine)
		if !ok {
			return fmt.Errorf("unknown engine %q (have %s and %s)", runEngine, user.EngineDirect, user.EngineReflect)
		}
		codecs = []user.Codec{c}
	}

	// JSON and TOML on stdout must stay clean for piping, so the human
	// display moves to stderr for those runs.
	display := cmd.OutOrStdout()
	if outPath == "" && (format == config.OutputFormatJSON || format == config.OutputFormatTOML) {
		display = cmd.ErrOrStderr()
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "bench"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	p := message.NewPrinter(language.English)
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(display, rule)
	fmt.Fprintln(display, TitleStyle.Render("Benchmark: direct vs reflect User codec"))
	p.Fprintf(display, "Iterations: %d\n", iterations)
	if len(codecs) == 1 {
		fmt.Fprintf(display, "Engine: %s\n", codecs[0].Name())
	}
	fmt.Fprintln(display, rule)

	if verbose {
		fmt.Fprintln(display, VerboseStyle.Render(p.Sprintf("generating %d records with seed %d", count, seed)))
	}
	corpus := dataset.Users(seed, count)

	type engineOps struct {
		codec user.Codec
		ops   []bench.Op
	}
	engines := make([]engineOps, 0, len(codecs))
	for _, c := range codecs {
		ops, err := bench.Ops(c, corpus, iters)
		if err != nil {
			return err
		}
		selected, err := bench.SelectOps(ops, args)
		if err != nil {
			return err
		}
		engines = append(engines, engineOps{codec: c, ops: selected})
	}

	runner := &bench.Runner{Iterations: iters, Warmup: warm, Logger: logger}
	var results []bench.Result
	for i := range engines[0].ops {
		fmt.Fprintf(display, "\n--- %s ---\n", sectionTitle(engines[0].ops[i].Name))
		for _, eng := range engines {
			res, err := runner.Measure(eng.ops[i])
			if err != nil {
				return fmt.Errorf("benchmark failed: %w", err)
			}
			results = append(results, res)
			fmt.Fprintf(display, "  %s: %.2f µs (mean)\n", CmdStyle.Render(res.Engine), res.Stats.Mean)
		}
	}

	// Engine parity: before any results are reported, both engines must
	// produce the same aggregation over the same corpus.
	if len(codecs) == 2 {
		direct := user.Summarize(corpus)
		reflected := user.SummarizeReflect(corpus)
		if direct != reflected {
			rendered, rerr := issue.Get(issue.EngineMismatchId).Render(glamourScheme())
			if rerr == nil {
				fmt.Fprint(cmd.ErrOrStderr(), rendered)
			}
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return &ExitError{Code: 1, Err: fmt.Errorf(
				"aggregation mismatch: direct total_age=%d active_count=%d, reflect total_age=%d active_count=%d",
				direct.TotalAge, direct.ActiveCount, reflected.TotalAge, reflected.ActiveCount)}
		}
		fmt.Fprintf(display, "\n%s engines agree: total_age=%d active_count=%d\n",
			successIcon, direct.TotalAge, direct.ActiveCount)
	}

	fmt.Fprintln(display)
	if err := report.Table(display, results); err != nil {
		return err
	}

	if speedups := report.Speedups(results, user.EngineDirect, user.EngineReflect); len(speedups) > 0 {
		fmt.Fprintln(display)
		fmt.Fprintln(display, rule)
		fmt.Fprintln(display, TitleStyle.Render("Speedup Summary (direct vs reflect)"))
		fmt.Fprintln(display, rule)
		for _, s := range speedups {
			fmt.Fprintf(display, "  %s: %.2fx faster\n", CmdStyle.Render(s.Operation), s.Factor)
		}
	}

	if format == config.OutputFormatTable {
		return nil
	}
	rep := report.New(results, report.Meta{Iterations: iterations, Warmup: warmup, Seed: seed, Count: count})
	if err := exportReport(cmd.OutOrStdout(), rep, format, outPath); err != nil {
		rendered, rerr := issue.Get(issue.ReportWriteFailedId).Render(glamourScheme())
		if rerr == nil {
			fmt.Fprint(cmd.ErrOrStderr(), rendered)
		}
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1, Err: err}
	}
	if outPath != "" {
		fmt.Fprintf(display, "\n%s Report written to %s\n", successIcon, outPath)
	}
	return nil
}

// sectionTitle names the progress section for one operation.
func sectionTitle(op string) string {
	switch op {
	case bench.OpBaseline:
		return "Call Overhead Baseline"
	case bench.OpConstruct:
		return "Construct from Map"
	case bench.OpMarshal:
		return "JSON Serialization (compact)"
	case bench.OpMarshalIndent:
		return "JSON Serialization (pretty)"
	case bench.OpUnmarshal:
		return "JSON Deserialization"
	case bench.OpMapping:
		return "Convert to Ordered Fields"
	case bench.OpCopy:
		return "Copy with Modifications"
	case bench.OpAccess:
		return "Aggregation over Corpus"
	default:
		return op
	}
}

// exportReport writes rep in the requested format, to outPath when set and
// to stdout otherwise.
func exportReport(stdout io.Writer, rep report.Report, format config.OutputFormat, outPath string) error {
	if outPath == "" {
		return writeReport(stdout, rep, format, false)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := writeReport(f, rep, format, true); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}

// writeReport renders rep in the requested format. Markdown written to a
// terminal goes through glamour; written to a file it stays raw.
func writeReport(w io.Writer, rep report.Report, format config.OutputFormat, toFile bool) error {
	switch format {
	case config.OutputFormatJSON:
		return report.WriteJSON(w, rep)
	case config.OutputFormatTOML:
		return report.WriteTOML(w, rep)
	case config.OutputFormatMarkdown:
		md := report.Markdown(rep)
		if toFile {
			_, err := io.WriteString(w, md)
			return err
		}
		rendered, err := report.RenderMarkdown(md, 0)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, rendered)
		return err
	default:
		return fmt.Errorf("format %q has no export form", format)
	}
}

// glamourScheme maps the configured color scheme onto a glamour style name.
func glamourScheme() string {
	if cfg.Output.ColorScheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}
