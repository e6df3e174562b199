package output

import (
	"github.com/leapstack-labs/contentlint/internal/report"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// Report writes a validation report in the renderer's mode. Plain text
// output is identical to report.WriteText; on a terminal the same layout
// is coloured.
func (r *Renderer) Report(rep *report.Report) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		return rep.WriteJSON(r.out)
	case ModeMarkdown:
		return rep.WriteMarkdown(r.out)
	}
	if !r.isTTY {
		return rep.WriteText(r.out)
	}

	s := r.styles
	groups := []struct {
		diags []lint.Diagnostic
		sev   lint.Severity
	}{
		{rep.Errors, lint.SeverityError},
		{rep.Warnings, lint.SeverityWarning},
	}
	for _, g := range groups {
		heading := s.Warning
		if g.sev == lint.SeverityError {
			heading = s.Error
		}
		r.Println(heading.Render(report.Heading(len(g.diags), g.sev)))
		for _, d := range g.diags {
			r.Printf("  %s: %s %s\n", s.Path.Render(d.Location()), s.Rule.Render("["+d.RuleID+"]"), d.Message)
		}
	}
	if rep.Passed() {
		r.Println(s.Success.Render(rep.StatusLine()))
	} else {
		r.Println(s.Error.Render(rep.StatusLine()))
	}
	return nil
}
