package lint

import "strings"

// Severity indicates whether a diagnostic fails the run.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityError fails the run.
	SeverityError Severity = iota
	// SeverityWarning is reported but never affects the exit status.
	SeverityWarning
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string to a Severity value.
// Returns the severity and true if valid, or SeverityWarning and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, true
	case "warning":
		return SeverityWarning, true
	default:
		return SeverityWarning, false
	}
}

// Category classifies a diagnostic within the error taxonomy.
type Category string

// Diagnostic categories.
const (
	CategoryParse       Category = "parse"
	CategorySchema      Category = "schema"
	CategoryReference   Category = "reference"
	CategoryUniqueness  Category = "uniqueness"
	CategoryPedagogical Category = "pedagogical"
	CategoryDiscovery   Category = "discovery"
)

// AllCategories returns the categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryParse,
		CategorySchema,
		CategoryReference,
		CategoryUniqueness,
		CategoryPedagogical,
		CategoryDiscovery,
	}
}
