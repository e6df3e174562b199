package lint

import "fmt"

// Collector accumulates diagnostics for a single validation run
// in emission order.
type Collector struct {
	config *Config
	diags  []Diagnostic
}

// NewCollector creates an empty collector. A nil config enables every rule.
func NewCollector(config *Config) *Collector {
	return &Collector{config: config}
}

// Report records a diagnostic for rule ruleID. Severity and category come
// from the catalogue. Unknown rule IDs panic, since they are programming errors.
func (c *Collector) Report(ruleID, file, pointer, format string, args ...any) {
	rule, ok := GetRule(ruleID)
	if !ok {
		panic(fmt.Sprintf("lint: unknown rule %q", ruleID))
	}
	if c.config.IsDisabled(ruleID) {
		return
	}
	c.diags = append(c.diags, Diagnostic{
		RuleID:   rule.ID,
		Category: rule.Category,
		Severity: rule.Severity,
		Message:  fmt.Sprintf(format, args...),
		File:     file,
		Pointer:  pointer,
	})
}

// Diagnostics returns a copy of the collected diagnostics.
func (c *Collector) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	return len(c.diags)
}

// ErrorCount returns the number of error-severity diagnostics.
func (c *Collector) ErrorCount() int {
	n := 0
	for _, d := range c.diags {
		if d.IsError() {
			n++
		}
	}
	return n
}
