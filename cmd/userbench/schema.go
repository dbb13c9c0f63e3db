// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/cobra"
	"userbench/internal/issue"
	"userbench/pkg/user"
)

var (
	// schemaCmd prints the record's JSON Schema.
	schemaCmd = &cobra.Command{
		Use:   "schema",
		Short: "Print the record's JSON Schema",
		Long: `Print the JSON Schema (draft 2020-12) describing the User wire form.

The schema is a diagnostic companion to the decoders: it encodes the
same contract, but the decoders remain the authority on accept/reject.

Examples:
  userbench schema
  userbench schema check users.jsonl`,
		Args: cobra.NoArgs,
		RunE: runSchema,
	}

	// schemaCheckCmd validates files against the schema and cross-checks the
	// decoder's verdict.
	schemaCheckCmd = &cobra.Command{
		Use:   "check <file>...",
		Short: "Check JSON files against the record schema",
		Long: `Check each file against the record's JSON Schema. A file may hold a
single JSON document or a stream of documents, one per line, as
'userbench gen' produces.

Every document is also decoded with the record decoder; when the two
disagree the verdict follows the decoder, and the schema's differing
opinion is noted.

Examples:
  userbench gen -n 3 > users.jsonl && userbench schema check users.jsonl
  userbench schema check a.json b.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSchemaCheck,
	}
)

func init() {
	schemaCmd.AddCommand(schemaCheckCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), user.Schema)
	return nil
}

func runSchemaCheck(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	sch, err := jsonschema.CompileString("user.json", user.Schema)
	if err != nil {
		return fmt.Errorf("failed to compile record schema: %w", err)
	}

	total, failed := 0, 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stdout, "%s %s: %v\n", errorIcon, path, err)
			total++
			failed++
			continue
		}
		t, f := checkDocuments(stdout, sch, path, data)
		total += t
		failed += f
	}

	fmt.Fprintln(stdout)
	if failed > 0 {
		fmt.Fprintf(stdout, "%s %d of %d check(s) failed\n", errorIcon, failed, total)
		rendered, rerr := issue.Get(issue.SchemaViolationId).Render(glamourScheme())
		if rerr == nil {
			fmt.Fprint(cmd.ErrOrStderr(), rendered)
		}
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1, Err: fmt.Errorf("%d of %d check(s) failed", failed, total)}
	}
	fmt.Fprintf(stdout, "%s %d check(s) passed\n", successIcon, total)
	return nil
}

// checkDocuments validates every JSON document in data, one line of output
// per document. The record decoder is the authority on accept/reject; a
// schema opinion that differs is noted but does not change the verdict.
func checkDocuments(w io.Writer, sch *jsonschema.Schema, path string, data []byte) (total, failed int) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var prev int64
	for docIndex := 1; ; docIndex++ {
		var v any
		err := dec.Decode(&v)
		if err == io.EOF {
			if total == 0 {
				fmt.Fprintf(w, "%s %s: no JSON documents\n", errorIcon, path)
				return 1, 1
			}
			return total, failed
		}
		total++
		label := path
		if docIndex > 1 || dec.More() {
			label = fmt.Sprintf("%s #%d", path, docIndex)
		}
		if err != nil {
			fmt.Fprintf(w, "%s %s: %v\n", errorIcon, label, err)
			return total, failed + 1
		}

		raw := strings.TrimSpace(string(data[prev:dec.InputOffset()]))
		prev = dec.InputOffset()

		schemaErr := sch.Validate(v)
		_, decodeErr := user.FromJSON(raw)
		switch {
		case decodeErr == nil && schemaErr == nil:
			fmt.Fprintf(w, "%s %s\n", successIcon, label)
		case decodeErr != nil && schemaErr != nil:
			fmt.Fprintf(w, "%s %s: %v\n", errorIcon, label, decodeErr)
			failed++
		case decodeErr != nil:
			fmt.Fprintf(w, "%s %s: %v %s\n", errorIcon, label, decodeErr,
				WarningStyle.Render("(schema accepts this document)"))
			failed++
		default:
			fmt.Fprintf(w, "%s %s %s\n", successIcon, label,
				WarningStyle.Render("(decoder accepts, schema disagrees)"))
		}
	}
}
