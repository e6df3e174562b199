package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/contentlint/internal/cli"
	"github.com/leapstack-labs/contentlint/internal/cli/config"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// contentDir describes one content tree and how to relocate it.
type contentDir struct {
	name  string
	def   string
	flag  string
	key   string
	holds string
}

var contentDirs = []contentDir{
	{"Lessons", config.DefaultLessonsDir, "--lessons-dir", "lessons_dir", "One lesson per file"},
	{"Courses", config.DefaultCoursesDir, "--courses-dir", "courses_dir", "One course per file"},
	{"Interview", config.DefaultInterviewDir, "--interview-dir", "interview_dir", "One question bank per file"},
}

// commandPrefixes maps each validation command to the rule ID prefixes its
// report can contain. Loader (CL) and identity (ID) rules run in every phase.
var commandPrefixes = map[string][]string{
	"lessons": {"CL", "ID", "LS"},
	"courses": {"CL", "ID", "CR"},
	"check":   {"CL", "ID", "LS", "CR", "IV"},
	"graph":   {"CL", "ID", "CR"},
}

// generateCLIDocs writes an index page plus one page per command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	pages := map[string][]byte{"index.md": cliIndex(root)}
	for _, cmd := range visibleCommands(root) {
		pages[cmd.Name()+".md"] = commandPage(cmd)
	}

	for name, data := range pages {
		if err := os.WriteFile(filepath.Join(outDir, name), data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		log.Printf("  Generated %s", name)
	}
	return nil
}

func visibleCommands(root *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Hidden || cmd.Name() == "help" {
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func cliIndex(root *cobra.Command) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line reference for contentlint")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(cleanDescription(root.Long) + ".")
	w.CodeBlock("bash", "go install github.com/leapstack-labs/contentlint/cmd/contentlint@latest\ncontentlint check")

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range visibleCommands(root) {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](%s.md)", InlineCode(cmd.Name()), cmd.Name()),
			cleanDescription(cmd.Short),
		})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Content Layout")
	w.Paragraph("Paths are relative to the project root: the directory holding `" +
		config.ConfigNames[0] + "`, found by searching upward from the working directory. " +
		"Files ending in `.json`, `.yaml` or `.yml` are read recursively in sorted order; hidden directories are skipped.")
	rows = nil
	for _, d := range contentDirs {
		rows = append(rows, []string{
			d.name,
			InlineCode(d.def),
			InlineCode(d.flag),
			InlineCode(config.EnvPrefix + strings.ToUpper(d.key)),
			d.holds,
		})
	}
	w.Table([]string{"Tree", "Default", "Flag", "Environment", "Contents"}, rows)
	w.Paragraph("Lessons are always loaded first so courses can resolve them. A missing or empty directory is a `" +
		lint.RuleNoContent + "` warning, not an error.")

	w.Header(2, "Global Options")
	flagTable(w, root.PersistentFlags())

	w.Header(2, "Exit Status")
	w.Table([]string{"Status", "Meaning"}, [][]string{
		{InlineCode("0"), "No error diagnostics; warnings may be present"},
		{InlineCode("1"), "At least one error diagnostic, or the command failed (see stderr)"},
	})

	return w.Bytes()
}

func commandPage(cmd *cobra.Command) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, "contentlint "+cmd.Name())
	long := cmd.Long
	if long == "" {
		long = cmd.Short
	}
	w.Paragraph(strings.TrimSpace(long))

	w.Header(2, "Usage")
	w.CodeBlock("bash", "contentlint "+strings.TrimPrefix(cmd.UseLine(), "contentlint "))

	if cmd.HasLocalFlags() {
		w.Header(2, "Options")
		flagTable(w, cmd.LocalFlags())
	}

	if prefixes, ok := commandPrefixes[cmd.Name()]; ok {
		w.Header(2, "Rules")
		w.Paragraph("Diagnostics this command can report. See `contentlint rules <ID>` for details.")
		w.Table([]string{"Rule", "Name", "Severity", "Description"}, ruleRows(prefixes))
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedent(cmd.Example))
	}

	return w.Bytes()
}

// ruleRows lists catalogue rules whose ID starts with one of prefixes.
func ruleRows(prefixes []string) [][]string {
	var rows [][]string
	for _, rule := range lint.AllRules() {
		for _, p := range prefixes {
			if strings.HasPrefix(rule.ID, p) {
				rows = append(rows, []string{
					fmt.Sprintf("[%s](../rules/index.md#%s)", rule.ID, rule.ID),
					InlineCode(rule.Name),
					rule.Severity.String(),
					cleanDescription(rule.Description),
				})
				break
			}
		}
	}
	return rows
}

func flagTable(w *MarkdownWriter, flags *pflag.FlagSet) {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		name := InlineCode("--" + f.Name)
		if f.Shorthand != "" {
			name = InlineCode("-"+f.Shorthand) + ", " + name
		}
		def := f.DefValue
		if def != "" && def != "false" && def != "[]" {
			def = InlineCode(def)
		} else {
			def = ""
		}
		rows = append(rows, []string{name, def, cleanDescription(f.Usage)})
	})
	w.Table([]string{"Flag", "Default", "Description"}, rows)
}

// dedent strips the two-space indent cobra examples are written with.
func dedent(example string) string {
	lines := strings.Split(strings.TrimSpace(example), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, "  ")
	}
	return strings.Join(lines, "\n")
}
