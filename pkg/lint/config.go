package lint

// Config controls which warning rules are reported.
// Error rules cannot be disabled: they define whether content is valid.
type Config struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules: make(map[string]bool),
	}
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	if !c.DisabledRules[ruleID] {
		return false
	}
	rule, ok := GetRule(ruleID)
	return ok && rule.Severity == SeverityWarning
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[ruleID] = true
	return c
}
