// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"userbench/internal/dataset"
	"userbench/internal/issue"
	"userbench/pkg/user"
)

// demoCmd walks through the record API and checks the engines against each
// other as it goes. Every line it prints is also an assertion; a failing
// check aborts the walkthrough.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the User record API",
	Long: `Walk through the User record API: construction, canonical text,
field access, both JSON forms, the ordered mapping, decoding,
copy-with-overrides and aggregation. Each step doubles as a check that
the two codec engines agree; with --verbose, the error-taxonomy steps
also explain the two failure classes in detail.

Examples:
  userbench demo
  userbench demo --verbose`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	fmt.Fprintln(stdout, TitleStyle.Render("=== Constructing a Record ==="))
	u := user.New(1, "Alice Johnson", "alice@example.com", 30, true)
	fmt.Fprintf(stdout, "%s constructed: %s\n", successIcon, u)
	fmt.Fprintf(stdout, "  id: %d\n  name: %s\n  email: %s\n  age: %d\n  active: %v\n",
		u.ID, u.Name, u.Email, u.Age, u.Active)

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, TitleStyle.Render("=== JSON Wire Forms ==="))
	compact := u.JSON()
	fmt.Fprintf(stdout, "%s compact: %s\n", successIcon, compact)
	fmt.Fprintf(stdout, "%s pretty:\n%s\n", successIcon, u.JSONIndent())
	if da, _ := (user.DirectCodec{}).Encode(u); !bytes.Equal(da, mustReflectEncode(u)) {
		return fmt.Errorf("engines disagree on the compact form of %s", u)
	}
	fmt.Fprintf(stdout, "%s both engines produce identical bytes\n", successIcon)

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, TitleStyle.Render("=== Ordered Mapping ==="))
	for _, f := range u.Fields() {
		fmt.Fprintf(stdout, "  %s = %v\n", CmdStyle.Render(f.Name), f.Value)
	}
	fmt.Fprintf(stdout, "%s fields iterate in wire order\n", successIcon)

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, TitleStyle.Render("=== Decoding ==="))
	decoded, err := user.FromJSON(compact)
	if err != nil {
		return fmt.Errorf("decoding the canonical form failed: %w", err)
	}
	if decoded != u {
		return fmt.Errorf("round trip changed the record: %s", decoded)
	}
	fmt.Fprintf(stdout, "%s decoded back to an identical record: %s\n", successIcon, decoded)

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, TitleStyle.Render("=== Copy with Overrides ==="))
	modified := u.With(user.PatchName("Alice Smith").Merge(user.PatchAge(31)))
	fmt.Fprintf(stdout, "%s modified copy: %s (age %d)\n", successIcon, modified, modified.Age)
	fmt.Fprintf(stdout, "%s original unchanged: %s (age %d)\n", successIcon, u, u.Age)
	dynamic, err := user.ApplyOverrides(u, map[string]any{"age": 31})
	if err != nil {
		return fmt.Errorf("dynamic override failed: %w", err)
	}
	fmt.Fprintf(stdout, "%s dynamic override agrees: age %d\n", successIcon, dynamic.Age)

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, TitleStyle.Render("=== Aggregation ==="))
	corpus := dataset.Users(dataset.DefaultSeed, 1000)
	direct := user.Summarize(corpus)
	reflected := user.SummarizeReflect(corpus)
	if direct != reflected {
		return fmt.Errorf("aggregation mismatch: direct %+v, reflect %+v", direct, reflected)
	}
	fmt.Fprintf(stdout, "%s 1000 records aggregated: total_age=%d active_count=%d\n",
		successIcon, direct.TotalAge, direct.ActiveCount)
	fmt.Fprintf(stdout, "%s both access paths agree\n", successIcon)

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, TitleStyle.Render("=== Error Taxonomy ==="))
	var perr *user.ParseError
	if _, err := user.FromJSON(`{"id":1,`); !errors.As(err, &perr) {
		return fmt.Errorf("expected a parse error, got %v", err)
	}
	fmt.Fprintf(stdout, "%s malformed text is a parse error: %v\n", successIcon, perr)
	var verr *user.ValidationError
	if _, err := user.FromJSON(`{"id":1,"email":"alice@example.com","age":30,"active":true}`); !errors.As(err, &verr) {
		return fmt.Errorf("expected a validation error, got %v", err)
	}
	fmt.Fprintf(stdout, "%s incomplete record is a validation error: %v\n", successIcon, verr)
	if verbose {
		for _, id := range []issue.Id{issue.RecordParseErrorId, issue.RecordInvalidId} {
			rendered, rerr := issue.Get(id).Render(glamourScheme())
			if rerr != nil {
				return fmt.Errorf("failed to render explanation: %w", rerr)
			}
			fmt.Fprint(stdout, rendered)
		}
	}

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%s All checks passed\n", successIcon)
	return nil
}

// mustReflectEncode encodes through the reflect engine, which cannot fail for
// an already-typed record.
func mustReflectEncode(u user.User) []byte {
	data, err := (user.ReflectCodec{}).Encode(u)
	if err != nil {
		panic(err)
	}
	return data
}
