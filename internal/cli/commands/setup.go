package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/contentlint/internal/cli/config"
	"github.com/leapstack-labs/contentlint/internal/cli/output"
	"github.com/leapstack-labs/contentlint/internal/engine"
	"github.com/spf13/cobra"
)

// ErrValidationFailed is returned when a run reports at least one error.
// The report has already been written; callers only need the exit status.
var ErrValidationFailed = errors.New("validation failed")

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Session  *engine.Session
	Renderer *output.Renderer
}

// NewCommandContext builds the command dependencies from the config and
// logger the root command stored in the context. When the root did not
// run (tests invoking a subcommand directly) config is loaded here.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := config.FromContext(cmd.Context())
	if cfg == nil {
		var err error
		if cfg, err = config.Load("", nil); err != nil {
			return nil, err
		}
	}
	logger := config.GetLogger(cmd.Context())

	mode, err := output.ParseMode(cfg.OutputFormat)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Session:  newSession(cfg, logger),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
	}, nil
}

// WithFormat overrides the renderer mode when a command-local --format
// flag is set.
func (c *CommandContext) WithFormat(cmd *cobra.Command, format string) error {
	if format == "" {
		return nil
	}
	mode, err := output.ParseMode(format)
	if err != nil {
		return err
	}
	c.Renderer = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
	return nil
}

func newSession(cfg *config.Config, logger *slog.Logger) *engine.Session {
	return engine.NewSession(engine.Config{
		Root:         cfg.ProjectRoot,
		LessonsDir:   cfg.LessonsDir,
		CoursesDir:   cfg.CoursesDir,
		InterviewDir: cfg.InterviewDir,
		Options:      cfg.Options(),
		Lint:         cfg.LintRules(),
		Logger:       logger,
	})
}

// runValidation runs one scope, writes the report and maps a failed
// report to ErrValidationFailed.
func runValidation(cmd *cobra.Command, scope engine.Scope) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	res, err := cmdCtx.Session.Run(scope)
	if err != nil {
		return err
	}
	if err := cmdCtx.Renderer.Report(res.Report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if !res.Report.Passed() {
		return ErrValidationFailed
	}
	return nil
}
