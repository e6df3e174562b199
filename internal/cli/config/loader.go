package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/leapstack-labs/contentlint/internal/cli/output"
	"github.com/leapstack-labs/contentlint/internal/validate"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/spf13/pflag"
)

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// pathFlags are flags holding paths. When set on the command line they are
// resolved against the working directory instead of the project root.
var pathFlags = map[string]string{
	"lessons-dir":   "lessons_dir",
	"courses-dir":   "courses_dir",
	"interview-dir": "interview_dir",
}

// configExistsIn returns the config file in dir, or "".
func configExistsIn(dir string) string {
	for _, name := range ConfigNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// findProjectRootUpward searches upward from startDir for a config file.
// Returns empty strings if not found within maxUpwardSearchLevels.
func findProjectRootUpward(startDir string) (root, cfgFile string) {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if f := configExistsIn(dir); f != "" {
			return dir, f
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

// resolvePathRelativeTo resolves a path relative to baseDir if it's not absolute.
func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// Load loads configuration from defaults, file, .env, environment and flags.
// Precedence (highest to lowest): flags > env vars > .env > config file > defaults.
// An explicit cfgFile must exist; its directory becomes the project root.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	var projectRoot string
	if cfgFile != "" {
		abs, err := filepath.Abs(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path %s: %w", cfgFile, err)
		}
		if _, err := os.Stat(abs); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
		cfgFile = abs
		projectRoot = filepath.Dir(abs)
	} else {
		projectRoot, cfgFile = findProjectRootUpward(cwd)
		if projectRoot == "" {
			projectRoot = cwd
		}
	}

	// 1. Defaults
	def := validate.DefaultOptions()
	if err := k.Load(confmap.Provider(map[string]any{
		"lessons_dir":             DefaultLessonsDir,
		"courses_dir":             DefaultCoursesDir,
		"interview_dir":           DefaultInterviewDir,
		"verbose":                 false,
		"output":                  DefaultOutput,
		"lint.title_max":          def.TitleMax,
		"lint.description_max":    def.DescriptionMax,
		"lint.duration_tolerance": def.DurationTolerance,
		"lint.disabled":           []string{},
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. Project .env (CONTENTLINT_ keys only; never exported to the process)
	dotenv, err := readDotEnv(filepath.Join(projectRoot, ".env"))
	if err != nil {
		return nil, err
	}
	if len(dotenv) > 0 {
		if err := k.Load(confmap.Provider(dotenv, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	// 4. Environment variables
	// Transform: CONTENTLINT_LESSONS_DIR -> lessons_dir, CONTENTLINT_LINT_TITLE_MAX -> lint.title_max
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 5. Flags (highest priority). Path flags are made absolute against
	// the working directory before the root-relative resolution below.
	flagPaths := map[string]string{}
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if pathKey, ok := pathFlags[f.Name]; ok {
				if abs, err := filepath.Abs(f.Value.String()); err == nil {
					flagPaths[pathKey] = abs
				}
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 6. Unmarshal
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.ProjectRoot = projectRoot
	cfg.ConfigFile = cfgFile
	cfg.Lint.Disabled = splitList(cfg.Lint.Disabled)

	resolve := func(key, value string) string {
		if abs, ok := flagPaths[key]; ok {
			return abs
		}
		return resolvePathRelativeTo(value, projectRoot)
	}
	cfg.LessonsDir = resolve("lessons_dir", cfg.LessonsDir)
	cfg.CoursesDir = resolve("courses_dir", cfg.CoursesDir)
	cfg.InterviewDir = resolve("interview_dir", cfg.InterviewDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be enforced by decoding alone.
func (c *Config) Validate() error {
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		return err
	}
	if c.Lint.TitleMax <= 0 {
		return fmt.Errorf("lint.title_max must be positive, got %d", c.Lint.TitleMax)
	}
	if c.Lint.DescriptionMax <= 0 {
		return fmt.Errorf("lint.description_max must be positive, got %d", c.Lint.DescriptionMax)
	}
	if t := c.Lint.DurationTolerance; t <= 0 || t > 1 {
		return fmt.Errorf("lint.duration_tolerance must be in (0, 1], got %g", t)
	}
	for _, id := range c.Lint.Disabled {
		rule, ok := lint.GetRule(id)
		if !ok {
			return fmt.Errorf("lint.disabled: unknown rule %q", id)
		}
		if rule.Severity == lint.SeverityError {
			return fmt.Errorf("lint.disabled: rule %s reports errors and cannot be disabled", id)
		}
	}
	return nil
}

// envKey maps an environment variable name to a config key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "lint_"); ok {
		return "lint." + rest
	}
	return key
}

// readDotEnv returns the CONTENTLINT_ entries of a .env file as config keys.
// A missing file yields nothing.
func readDotEnv(path string) (map[string]any, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	out := make(map[string]any, len(values))
	for name, value := range values {
		if strings.HasPrefix(name, EnvPrefix) {
			out[envKey(name)] = value
		}
	}
	return out, nil
}

// splitList splits comma-separated entries, as produced by env vars and
// single-string flags, and trims blanks.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, strings.ToUpper(part))
			}
		}
	}
	return out
}

// NewLogger returns a text logger on w: debug level when verbose,
// warnings and above otherwise.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// configKey is used to store the loaded config in context.
type configKey struct{}

// WithConfig returns a copy of ctx carrying cfg.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config stored by WithConfig, or nil.
func FromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey{}).(*Config); ok {
		return c
	}
	return nil
}
