// Package cli provides the command-line interface for contentlint.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/leapstack-labs/contentlint/internal/cli/commands"
	"github.com/leapstack-labs/contentlint/internal/cli/config"
	"github.com/leapstack-labs/contentlint/internal/cli/output"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// ErrValidationFailed is returned when validation reports errors.
var ErrValidationFailed = commands.ErrValidationFailed

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "contentlint",
		Short: "contentlint - content integrity checks",
		Long: `contentlint validates the authored content of the learning app:
lessons, courses and interview question banks.

It enforces schemas, resolves references between courses and lessons,
detects ID collisions across all content, and applies pedagogical
heuristics. It exits with status 1 when any error is found.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			if cfg.ConfigFile != "" {
				logger.Debug("using config file", "path", cfg.ConfigFile)
			}
			logger.Debug("content directories",
				"lessons", cfg.LessonsDir, "courses", cfg.CoursesDir, "interview", cfg.InterviewDir)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: contentlint.yaml in the project root)")
	rootCmd.PersistentFlags().String("lessons-dir", "", "Path to lessons directory")
	rootCmd.PersistentFlags().String("courses-dir", "", "Path to courses directory")
	rootCmd.PersistentFlags().String("interview-dir", "", "Path to interview question banks directory")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|markdown|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.AllModes(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewLessonsCommand())
	rootCmd.AddCommand(commands.NewCoursesCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewGraphCommand())
	rootCmd.AddCommand(commands.NewRulesCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command with the process arguments and returns
// the exit status.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the root command with args and returns the exit status:
// 0 on success, 1 when validation fails or the command errors.
func Run(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return ExitCode(stderr, rootCmd.Execute())
}

// ExitCode maps a command error to a process exit status. Validation
// failures are already described by the report; other errors are printed.
func ExitCode(stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if !errors.Is(err, ErrValidationFailed) {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for contentlint.

To load completions:

Bash:
  $ source <(contentlint completion bash)

Zsh:
  $ contentlint completion zsh > "${fpath[1]}/_contentlint"

Fish:
  $ contentlint completion fish | source

PowerShell:
  PS> contentlint completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
