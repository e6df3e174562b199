// Package config loads contentlint settings from defaults, the project
// config file, a project .env file, CONTENTLINT_* environment variables
// and command-line flags, in increasing order of precedence.
package config

import (
	"github.com/leapstack-labs/contentlint/internal/validate"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// Config holds all CLI configuration options.
type Config struct {
	LessonsDir   string     `koanf:"lessons_dir"`
	CoursesDir   string     `koanf:"courses_dir"`
	InterviewDir string     `koanf:"interview_dir"`
	Verbose      bool       `koanf:"verbose"`
	OutputFormat string     `koanf:"output"`
	Lint         LintConfig `koanf:"lint"`

	// ProjectRoot is the directory content paths are resolved against
	ProjectRoot string `koanf:"-"`
	// ConfigFile is the config file that was read, if any
	ConfigFile string `koanf:"-"`
}

// LintConfig tunes the heuristics and silences warning rules.
type LintConfig struct {
	TitleMax          int      `koanf:"title_max"`
	DescriptionMax    int      `koanf:"description_max"`
	DurationTolerance float64  `koanf:"duration_tolerance"`
	Disabled          []string `koanf:"disabled"`
}

// Default configuration values.
const (
	DefaultLessonsDir   = "content/lessons"
	DefaultCoursesDir   = "content/courses"
	DefaultInterviewDir = "content/interview"
	DefaultOutput       = "auto" // TTY gets colour, pipes get plain text
	EnvPrefix           = "CONTENTLINT_"
)

// ConfigNames are the file names searched for in the project root.
var ConfigNames = []string{"contentlint.yaml", "contentlint.yml"}

// Options returns the heuristic limits for the validators.
func (c *Config) Options() validate.Options {
	return validate.Options{
		TitleMax:          c.Lint.TitleMax,
		DescriptionMax:    c.Lint.DescriptionMax,
		DurationTolerance: c.Lint.DurationTolerance,
	}
}

// LintRules returns the rule configuration with disabled rules applied.
func (c *Config) LintRules() *lint.Config {
	rules := lint.NewConfig()
	for _, id := range c.Lint.Disabled {
		rules.Disable(id)
	}
	return rules
}
