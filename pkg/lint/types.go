package lint

import (
	"fmt"
	"sort"
)

// =============================================================================
// Rule Definitions
// =============================================================================

// Rule describes one kind of finding the validators can emit.
type Rule struct {
	ID          string   // Unique identifier, e.g., "CR05"
	Name        string   // Human-readable name, e.g., "course.lesson-not-found"
	Category    Category // Taxonomy bucket
	Severity    Severity // Fixed severity; validators never override it
	Description string   // One-line description

	// Documentation fields
	Rationale   string
	BadExample  string
	GoodExample string
}

// catalogue holds every registered rule, keyed by ID.
var catalogue = map[string]Rule{}

// Register adds a rule to the catalogue.
// It panics on a duplicate ID; registration happens from init().
func Register(rule Rule) {
	if _, exists := catalogue[rule.ID]; exists {
		panic(fmt.Sprintf("lint: rule %s registered twice", rule.ID))
	}
	catalogue[rule.ID] = rule
}

// GetRule returns a rule by its ID.
func GetRule(id string) (Rule, bool) {
	rule, ok := catalogue[id]
	return rule, ok
}

// AllRules returns all registered rules sorted by ID.
func AllRules() []Rule {
	rules := make([]Rule, 0, len(catalogue))
	for _, rule := range catalogue {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID < rules[j].ID
	})
	return rules
}

// RulesByCategory returns the rules of one category sorted by ID.
func RulesByCategory(category Category) []Rule {
	var rules []Rule
	for _, rule := range AllRules() {
		if rule.Category == category {
			rules = append(rules, rule)
		}
	}
	return rules
}

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostic is a single validation finding. It is immutable once emitted.
type Diagnostic struct {
	RuleID   string   `json:"rule"`
	Category Category `json:"category"`
	Severity Severity `json:"-"`
	Message  string   `json:"message"`
	File     string   `json:"file"`
	Pointer  string   `json:"pointer,omitempty"` // e.g. "modules[2].kind"
}

// Location returns the file-qualified position of the diagnostic.
func (d Diagnostic) Location() string {
	if d.Pointer == "" {
		return d.File
	}
	return d.File + "#" + d.Pointer
}

// IsError reports whether the diagnostic fails the run.
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}
