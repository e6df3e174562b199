package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/contentlint/internal/cli/output"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/spf13/cobra"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Category string // Filter by category
	Severity string // Filter by severity: error, warning
	Verbose  bool   // Show full documentation
	Format   string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List validation rules",
		Long: `List every rule contentlint reports, with its category and severity.

Error rules fail the run. Warning rules are advisory and can be
silenced with lint.disabled in contentlint.yaml.
` + outputHelp,
		Example: `  # List all rules
  contentlint rules

  # Show details for a specific rule
  contentlint rules CR05

  # List pedagogical rules only
  contentlint rules --category pedagogical

  # Output as JSON
  contentlint rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Filter by category: parse, schema, reference, uniqueness, pedagogical, discovery")
	cmd.Flags().StringVar(&opts.Severity, "severity", "", "Filter by severity: error, warning")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	_ = cmd.RegisterFlagCompletionFunc("category", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, c := range lint.AllCategories() {
			names = append(names, string(c))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func rulesRenderer(cmd *cobra.Command, opts *RulesOptions) (*output.Renderer, error) {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return nil, err
	}
	if err := cmdCtx.WithFormat(cmd, opts.Format); err != nil {
		return nil, err
	}
	return cmdCtx.Renderer, nil
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r, err := rulesRenderer(cmd, opts)
	if err != nil {
		return err
	}

	rules, err := filterRules(lint.AllRules(), opts)
	if err != nil {
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listRulesJSON(r, rules)
	case output.ModeMarkdown:
		return listRulesMarkdown(r, rules, opts.Verbose)
	default:
		return listRulesText(r, rules, opts.Verbose)
	}
}

func filterRules(rules []lint.Rule, opts *RulesOptions) ([]lint.Rule, error) {
	var severity lint.Severity
	if opts.Severity != "" {
		s, ok := lint.ParseSeverity(opts.Severity)
		if !ok {
			return nil, fmt.Errorf("unknown severity %q (expected error or warning)", opts.Severity)
		}
		severity = s
	}
	category := lint.Category(strings.ToLower(opts.Category))

	var filtered []lint.Rule
	for _, rule := range rules {
		if category != "" && rule.Category != category {
			continue
		}
		if opts.Severity != "" && rule.Severity != severity {
			continue
		}
		filtered = append(filtered, rule)
	}
	return filtered, nil
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	r, err := rulesRenderer(cmd, opts)
	if err != nil {
		return err
	}

	rule, ok := lint.GetRule(strings.ToUpper(ruleID))
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(toRuleJSON(rule))
	case output.ModeMarkdown:
		return showRuleMarkdown(r, rule)
	default:
		return showRuleText(r, rule)
	}
}

// listRulesText outputs rules as a table.
func listRulesText(r *output.Renderer, rules []lint.Rule, verbose bool) error {
	styles := r.Styles()

	errors, warnings := countSeverities(rules)
	r.Println(styles.Header1.Render(fmt.Sprintf("Validation Rules (%d errors, %d warnings)", errors, warnings)))

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	header := table.Row{"ID", "Name", "Category", "Severity"}
	if verbose {
		header = append(header, "Description")
	}
	t.AppendHeader(header)
	for _, rule := range rules {
		row := table.Row{rule.ID, rule.Name, string(rule.Category),
			severityStyle(styles, rule.Severity).Render(rule.Severity.String())}
		if verbose {
			row = append(row, rule.Description)
		}
		t.AppendRow(row)
	}
	t.Render()

	r.Println(styles.Muted.Render("Use 'contentlint rules <rule-id>' for detailed documentation"))
	return nil
}

// listRulesMarkdown outputs rules in markdown format, grouped by category.
func listRulesMarkdown(r *output.Renderer, rules []lint.Rule, verbose bool) error {
	r.Println(output.FormatHeader(1, "Validation Rules"))
	r.Println("")

	for _, category := range lint.AllCategories() {
		var group []lint.Rule
		for _, rule := range rules {
			if rule.Category == category {
				group = append(group, rule)
			}
		}
		if len(group) == 0 {
			continue
		}

		r.Println(output.FormatHeader(2, output.Title(string(category))))
		r.Println("")
		for _, rule := range group {
			r.Printf("- **%s** - %s (`%s`)\n", rule.ID, rule.Name, rule.Severity.String())
			if verbose {
				r.Println("  " + rule.Description)
				if rule.Rationale != "" {
					r.Println("  > " + rule.Rationale)
				}
			}
		}
		r.Println("")
	}
	return nil
}

// RuleJSON is the JSON form of a rule.
type RuleJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Rationale   string `json:"rationale,omitempty"`
	BadExample  string `json:"bad_example,omitempty"`
	GoodExample string `json:"good_example,omitempty"`
}

// RulesJSONOutput is the JSON output structure for rules listing.
type RulesJSONOutput struct {
	Rules []RuleJSON `json:"rules"`
	Count struct {
		Errors   int `json:"errors"`
		Warnings int `json:"warnings"`
		Total    int `json:"total"`
	} `json:"count"`
}

func toRuleJSON(rule lint.Rule) RuleJSON {
	return RuleJSON{
		ID:          rule.ID,
		Name:        rule.Name,
		Category:    string(rule.Category),
		Severity:    rule.Severity.String(),
		Description: rule.Description,
		Rationale:   rule.Rationale,
		BadExample:  rule.BadExample,
		GoodExample: rule.GoodExample,
	}
}

// listRulesJSON outputs rules in JSON format.
func listRulesJSON(r *output.Renderer, rules []lint.Rule) error {
	out := RulesJSONOutput{Rules: make([]RuleJSON, 0, len(rules))}
	for _, rule := range rules {
		out.Rules = append(out.Rules, toRuleJSON(rule))
	}
	out.Count.Errors, out.Count.Warnings = countSeverities(rules)
	out.Count.Total = len(rules)
	return r.JSON(out)
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, rule lint.Rule) error {
	styles := r.Styles()

	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	r.Println("")
	r.Printf("  %s: %s\n", styles.Bold.Render("Category"), rule.Category)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), severityStyle(styles, rule.Severity).Render(rule.Severity.String()))
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		r.Println("  " + rule.Rationale)
		r.Println("")
	}
	if rule.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(rule.BadExample, "\n") {
			r.Println(styles.Muted.Render("  " + line))
		}
		r.Println("")
	}
	if rule.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(rule.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println("")
	}
	return nil
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, rule lint.Rule) error {
	r.Printf("# %s - %s\n\n", rule.ID, rule.Name)
	r.Printf("%s | %s\n\n",
		output.FormatKeyValue("Category", string(rule.Category)),
		output.FormatKeyValue("Severity", "`"+rule.Severity.String()+"`"))
	r.Println(rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println("## Why This Matters")
		r.Println("")
		r.Println(rule.Rationale)
		r.Println("")
	}
	if rule.BadExample != "" {
		r.Println("## Bad Example")
		r.Println("")
		r.Println("```yaml")
		r.Println(rule.BadExample)
		r.Println("```")
		r.Println("")
	}
	if rule.GoodExample != "" {
		r.Println("## Good Example")
		r.Println("")
		r.Println("```yaml")
		r.Println(rule.GoodExample)
		r.Println("```")
		r.Println("")
	}
	return nil
}

func countSeverities(rules []lint.Rule) (errors, warnings int) {
	for _, rule := range rules {
		if rule.Severity == lint.SeverityError {
			errors++
		} else {
			warnings++
		}
	}
	return errors, warnings
}

func severityStyle(styles *output.Styles, sev lint.Severity) lipgloss.Style {
	switch sev {
	case lint.SeverityError:
		return styles.Error
	case lint.SeverityWarning:
		return styles.Warning
	default:
		return styles.Muted
	}
}
