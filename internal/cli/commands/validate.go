package commands

import (
	"github.com/leapstack-labs/contentlint/internal/engine"
	"github.com/spf13/cobra"
)

const outputHelp = `
Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Plain text, identical across runs
  - JSON/Markdown: select with --output`

// NewLessonsCommand creates the lessons command.
func NewLessonsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lessons",
		Short: "Validate lessons",
		Long: `Validate every lesson under the lessons directory.

Checks required fields, ID format and uniqueness, modules, lesson flow,
Bloom levels and worked-example fading.
` + outputHelp,
		Example: `  # Validate lessons in content/lessons
  contentlint lessons

  # Validate another directory
  contentlint lessons --lessons-dir ./drafts/lessons`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidation(cmd, engine.ScopeLessons)
		},
	}
}

// NewCoursesCommand creates the courses command.
func NewCoursesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "courses",
		Short: "Validate courses against the lessons they reference",
		Long: `Validate every course under the courses directory.

Lessons are loaded first so course references can be resolved, but only
course findings are reported. Checks lesson references and ordering,
gating rules, duration estimates, difficulty progression and
prerequisites.
` + outputHelp,
		Example: `  # Validate courses
  contentlint courses

  # Machine-readable output for CI annotations
  contentlint courses --output json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidation(cmd, engine.ScopeCourses)
		},
	}
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate all content together",
		Long: `Validate lessons, courses and interview question banks in one run.

All three kinds share one ID namespace, so a course, lesson or bank that
reuses another's ID is reported. Exits with status 1 when any error is
found; warnings never fail the run.
` + outputHelp,
		Example: `  # Full validation, as run in CI
  contentlint check

  # With an explicit config file
  contentlint check --config ./contentlint.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidation(cmd, engine.ScopeAll)
		},
	}
}
