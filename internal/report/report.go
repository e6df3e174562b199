// Package report partitions the diagnostics of a run and renders them.
//
// Output never carries timestamps or run identifiers, so a report over
// unchanged content is byte-identical from one run to the next.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// Status lines printed at the end of a text report.
const (
	PassedLine = "✓ Validation passed"
	FailedLine = "✗ Validation failed"
)

// Report is the outcome of one validation run.
type Report struct {
	Errors   []lint.Diagnostic
	Warnings []lint.Diagnostic
}

// New partitions diagnostics by severity, keeping emission order within
// each group.
func New(diags []lint.Diagnostic) *Report {
	r := &Report{}
	for _, d := range diags {
		if d.IsError() {
			r.Errors = append(r.Errors, d)
		} else {
			r.Warnings = append(r.Warnings, d)
		}
	}
	return r
}

// Passed reports whether the run produced no errors. Warnings never fail a run.
func (r *Report) Passed() bool {
	return len(r.Errors) == 0
}

// ExitCode returns the process exit status for the run.
func (r *Report) ExitCode() int {
	if r.Passed() {
		return 0
	}
	return 1
}

// StatusLine returns the final line of a text report.
func (r *Report) StatusLine() string {
	if r.Passed() {
		return PassedLine
	}
	return FailedLine
}

// Line formats a single diagnostic as it appears in a text report,
// without indentation.
func Line(d lint.Diagnostic) string {
	return fmt.Sprintf("%s: [%s] %s", d.Location(), d.RuleID, d.Message)
}

// Heading returns the group heading for n diagnostics of the given severity,
// e.g. "2 Error(s)".
func Heading(n int, sev lint.Severity) string {
	label := "Warning(s)"
	if sev == lint.SeverityError {
		label = "Error(s)"
	}
	return fmt.Sprintf("%d %s", n, label)
}

// WriteText writes the plain text report: errors, then warnings, then the
// status line. Both groups are always printed.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder
	writeGroup(&b, Heading(len(r.Errors), lint.SeverityError), r.Errors, "  ")
	writeGroup(&b, Heading(len(r.Warnings), lint.SeverityWarning), r.Warnings, "  ")
	b.WriteString(r.StatusLine())
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteMarkdown writes the report as a Markdown document.
func (r *Report) WriteMarkdown(w io.Writer) error {
	var b strings.Builder
	b.WriteString("# Content Validation\n\n")
	for _, group := range []struct {
		diags []lint.Diagnostic
		sev   lint.Severity
	}{
		{r.Errors, lint.SeverityError},
		{r.Warnings, lint.SeverityWarning},
	} {
		fmt.Fprintf(&b, "## %s\n\n", Heading(len(group.diags), group.sev))
		for _, d := range group.diags {
			fmt.Fprintf(&b, "- `%s` **%s** %s\n", d.Location(), d.RuleID, d.Message)
		}
		if len(group.diags) > 0 {
			b.WriteString("\n")
		}
	}
	fmt.Fprintf(&b, "**%s**\n", r.StatusLine())
	_, err := io.WriteString(w, b.String())
	return err
}

// JSONDiagnostic is a diagnostic as written by WriteJSON.
type JSONDiagnostic struct {
	lint.Diagnostic
	Severity string `json:"severity"`
}

// JSONSummary holds the counts of a JSON report.
type JSONSummary struct {
	Errors   int  `json:"errors"`
	Warnings int  `json:"warnings"`
	Passed   bool `json:"passed"`
}

// JSONReport is the document written by WriteJSON.
type JSONReport struct {
	Summary     JSONSummary      `json:"summary"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
}

// JSON returns the machine-readable form of the report. Errors precede
// warnings.
func (r *Report) JSON() JSONReport {
	out := JSONReport{
		Summary: JSONSummary{
			Errors:   len(r.Errors),
			Warnings: len(r.Warnings),
			Passed:   r.Passed(),
		},
		Diagnostics: make([]JSONDiagnostic, 0, len(r.Errors)+len(r.Warnings)),
	}
	for _, group := range [][]lint.Diagnostic{r.Errors, r.Warnings} {
		for _, d := range group {
			out.Diagnostics = append(out.Diagnostics, JSONDiagnostic{Diagnostic: d, Severity: d.Severity.String()})
		}
	}
	return out
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.JSON())
}

func writeGroup(b *strings.Builder, heading string, diags []lint.Diagnostic, indent string) {
	b.WriteString(heading)
	b.WriteString("\n")
	for _, d := range diags {
		b.WriteString(indent)
		b.WriteString(Line(d))
		b.WriteString("\n")
	}
}
