// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	RecordParseErrorId
	RecordInvalidId
	EngineMismatchId
	SchemaViolationId
	ReportWriteFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the userbench configuration file.

## Configuration file locations:
- Linux: ~/.config/userbench/config.cue
- macOS: ~/Library/Application Support/userbench/config.cue
- Windows: %APPDATA%\userbench\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ userbench config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/userbench/config.cue
~~~

## Example configuration:
~~~cue
iterations: 100000
warmup: 1000

dataset: {
  count: 100000
  seed: 42
}

output: {
  format: "table"
  color_scheme: "auto"
}
~~~`,
	}

	recordParseErrorIssue = &Issue{
		id: RecordParseErrorId,
		mdMsg: `
# Malformed JSON input!

The input text is not well-formed JSON, so no record could be decoded from it.

## Common causes:
- Trailing commas or missing commas between members
- Unquoted keys or single-quoted strings
- Truncated documents (unclosed braces or strings)
- Trailing bytes after the closing brace

## Things you can try:
- Check the reported byte offset for the exact location
- Validate the document with a JSON linter
- Generate a known-good record to compare against:
~~~
$ userbench gen --count 1
~~~`,
	}

	recordInvalidIssue = &Issue{
		id: RecordInvalidId,
		mdMsg: `
# Record validation failed!

The input was well-formed JSON but does not describe a valid user record.

## A valid record has exactly these fields:
- **id**: integer
- **name**: string
- **email**: string
- **age**: integer
- **active**: boolean

## Common causes:
- A missing field (null counts as missing)
- An unknown extra field
- A value of the wrong type (e.g. a fractional number for age)
- A non-object document (array, string, number, ...)

## Things you can try:
- Check the reported field name in the error message
- Print the expected shape:
~~~
$ userbench schema
~~~

- Validate files wholesale:
~~~
$ userbench schema check users.json
~~~`,
	}

	engineMismatchIssue = &Issue{
		id: EngineMismatchId,
		mdMsg: `
# Codec engines disagree!

The direct and reflect codec engines produced different results for the same
input. The engines are required to be interchangeable, so this is a bug in
userbench itself rather than in your input.

## Things you can try:
- Re-run with verbose diagnostics:
~~~
$ userbench run --verbose
~~~

- Re-run with a fixed seed to confirm the mismatch is deterministic:
~~~
$ userbench run --seed 42
~~~

- Compare the engines one operation at a time:
~~~
$ userbench demo
~~~`,
	}

	schemaViolationIssue = &Issue{
		id: SchemaViolationId,
		mdMsg: `
# Schema check failed!

One or more documents did not conform to the user record schema.

## Things you can try:
- Check the per-file messages above for the failing keyword and location
- Print the schema to see the exact constraints:
~~~
$ userbench schema
~~~

- Generate conforming documents to compare against:
~~~
$ userbench gen --count 3
~~~`,
	}

	reportWriteFailedIssue = &Issue{
		id: ReportWriteFailedId,
		mdMsg: `
# Failed to write report!

The benchmark finished but the report could not be written to the requested path.

## Common causes:
- The parent directory does not exist
- Missing write permission on the target directory
- The path points at a directory

## Things you can try:
- Create the parent directory first
- Write to a path you own:
~~~
$ userbench run --out ~/userbench-results.json
~~~

- Drop the path to print to standard output instead`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		recordParseErrorIssue.Id():  recordParseErrorIssue,
		recordInvalidIssue.Id():     recordInvalidIssue,
		engineMismatchIssue.Id():    engineMismatchIssue,
		schemaViolationIssue.Id():   schemaViolationIssue,
		reportWriteFailedIssue.Id(): reportWriteFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
