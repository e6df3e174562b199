package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// categoryDescriptions provides human-readable descriptions for rule categories.
var categoryDescriptions = map[lint.Category]string{
	lint.CategoryParse:       "Files that cannot be decoded into a lesson, course or question bank.",
	lint.CategorySchema:      "Missing fields, malformed IDs and values outside their enumeration.",
	lint.CategoryReference:   "Lessons, gating requirements and prerequisites that do not resolve.",
	lint.CategoryUniqueness:  "IDs that collide in the global namespace or within one document.",
	lint.CategoryPedagogical: "Heuristics about lesson flow, pacing and difficulty. Always warnings.",
	lint.CategoryDiscovery:   "Content directories that yield no files.",
}

// generateRuleDocs generates the rule catalogue page.
func generateRuleDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rules := lint.AllRules()
	errors := 0
	for _, r := range rules {
		if r.Severity == lint.SeverityError {
			errors++
		}
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Validation Rules", "Every check contentlint runs")
	w.GeneratedMarker()

	w.Header(1, "Validation Rules")
	w.Paragraph(fmt.Sprintf("contentlint runs **%d rules**: %d errors and %d warnings.",
		len(rules), errors, len(rules)-errors))

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Description"},
		[][]string{
			{InlineCode("error"), "Fails the run with exit status 1"},
			{InlineCode("warning"), "Reported, never affects the exit status"},
		},
	)

	w.Header(2, "Configuration")
	w.Paragraph("Warning rules can be skipped in `contentlint.yaml`. Error rules cannot be disabled.")
	w.CodeBlock("yaml", `lint:
  title_max: 100
  description_max: 500
  duration_tolerance: 0.2
  disabled: [LS09, CR12]`)

	for _, category := range lint.AllCategories() {
		catRules := lint.RulesByCategory(category)
		if len(catRules) == 0 {
			continue
		}

		w.Line(fmt.Sprintf("## %s {#%s}", capitalizeFirst(string(category)), category))
		w.Newline()
		if desc, ok := categoryDescriptions[category]; ok {
			w.Paragraph(desc)
		}

		for _, rule := range catRules {
			writeRuleDoc(w, rule)
		}
	}

	if err := os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated index.md")
	return nil
}

// capitalizeFirst capitalizes the first letter of a string.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, rule lint.Rule) {
	// Rule header with anchor: ### CR05 - course.lesson-not-found {#CR05}
	w.Line(fmt.Sprintf("### %s - %s {#%s}", rule.ID, rule.Name, rule.ID))
	w.Newline()

	w.Line(fmt.Sprintf("**Severity:** %s", InlineCode(rule.Severity.String())))
	w.Newline()

	w.Paragraph(cleanDescription(rule.Description))

	if rationale := rule.Rationale; rationale != "" {
		w.Header(4, "Why This Matters")
		w.Paragraph(strings.TrimSpace(rationale))
	}

	if rule.BadExample != "" {
		w.Header(4, "Bad")
		w.CodeBlock("yaml", rule.BadExample)
	}

	if rule.GoodExample != "" {
		w.Header(4, "Good")
		w.CodeBlock("yaml", rule.GoodExample)
	}

	w.Line("---")
	w.Newline()
}
