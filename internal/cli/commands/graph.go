package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/contentlint/internal/cli/output"
	"github.com/leapstack-labs/contentlint/internal/dag"
	"github.com/leapstack-labs/contentlint/internal/engine"
	"github.com/leapstack-labs/contentlint/internal/validate"
	"github.com/leapstack-labs/contentlint/pkg/content"
	"github.com/spf13/cobra"
)

// NewGraphCommand creates the graph command.
func NewGraphCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Show the course prerequisite graph",
		Long: `Display course prerequisites grouped by level.

Level 0 holds courses without prerequisites in the course directory;
every other course sits one level above its deepest prerequisite.
Prerequisites that point outside the course directory are not shown.
` + outputHelp,
		Example: `  # Show prerequisite levels
  contentlint graph

  # Output as JSON
  contentlint graph --output json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGraph(cmd)
		},
	}
	return cmd
}

func runGraph(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	res, err := cmdCtx.Session.Run(engine.ScopeCourses)
	if err != nil {
		return err
	}
	if n := len(res.Report.Errors); n > 0 {
		r.Warning(fmt.Sprintf("course validation reported %d error(s); run 'contentlint courses' for details", n))
	}

	graph := validate.PrerequisiteGraph(res.Courses)
	levels, err := graph.Levels()
	if err != nil {
		return fmt.Errorf("failed to order courses: %w", err)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return graphJSON(r, graph, levels)
	case output.ModeMarkdown:
		return graphMarkdown(r, graph, levels)
	default:
		return graphText(r, graph, levels)
	}
}

func courseTitle(g *dag.Graph, id string) string {
	if node, ok := g.GetNode(id); ok {
		if c, ok := node.Data.(*content.Course); ok {
			return c.Title
		}
	}
	return ""
}

func orDash(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}
	return strings.Join(ids, ", ")
}

// graphText outputs the prerequisite levels as a table.
func graphText(r *output.Renderer, g *dag.Graph, levels [][]string) error {
	styles := r.Styles()

	r.Header(1, "Course Prerequisites")
	if len(levels) == 0 {
		r.Muted("No courses found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Level", "Course", "Title", "Requires", "Unlocks"})
	for i, level := range levels {
		for _, id := range level {
			t.AppendRow(table.Row{i, styles.Path.Render(id), courseTitle(g, id), orDash(g.GetParents(id)), orDash(g.GetChildren(id))})
		}
		if i < len(levels)-1 {
			t.AppendSeparator()
		}
	}
	t.Render()

	r.Println(styles.Muted.Render(fmt.Sprintf("Total: %d courses, %d prerequisites", g.NodeCount(), g.EdgeCount())))
	return nil
}

// graphMarkdown outputs the prerequisite levels in markdown format.
func graphMarkdown(r *output.Renderer, g *dag.Graph, levels [][]string) error {
	r.Println(output.FormatHeader(1, "Course Prerequisites"))
	r.Println("")

	for i, level := range levels {
		levelName := fmt.Sprintf("Level %d", i)
		if i == 0 {
			levelName = "Level 0 (Entry Points)"
		}
		r.Println(output.FormatHeader(2, levelName))

		for _, id := range level {
			r.Printf("- %s\n", id)
			if deps := g.GetParents(id); len(deps) > 0 {
				r.Printf("  - requires: %s\n", strings.Join(deps, ", "))
			}
			if children := g.GetChildren(id); len(children) > 0 {
				r.Printf("  - unlocks: %s\n", strings.Join(children, ", "))
			}
		}
		r.Println("")
	}

	r.Println(output.FormatHeader(2, "Summary"))
	r.Println(output.FormatKeyValue("Total Courses", fmt.Sprintf("%d", g.NodeCount())))
	r.Println(output.FormatKeyValue("Total Prerequisites", fmt.Sprintf("%d", g.EdgeCount())))
	return nil
}

// GraphCourse is one course in the JSON graph output.
type GraphCourse struct {
	ID       string   `json:"id"`
	Title    string   `json:"title,omitempty"`
	Requires []string `json:"requires"`
	Unlocks  []string `json:"unlocks"`
	// Upstream lists every direct and transitive prerequisite
	Upstream []string `json:"upstream"`
}

// GraphLevel is one level in the JSON graph output.
type GraphLevel struct {
	Level   int           `json:"level"`
	Courses []GraphCourse `json:"courses"`
}

// GraphOutput is the JSON output of the graph command.
type GraphOutput struct {
	Levels        []GraphLevel `json:"levels"`
	TotalCourses  int          `json:"total_courses"`
	Prerequisites int          `json:"total_prerequisites"`
}

// graphJSON outputs the prerequisite levels in JSON format.
func graphJSON(r *output.Renderer, g *dag.Graph, levels [][]string) error {
	out := GraphOutput{
		Levels:        make([]GraphLevel, 0, len(levels)),
		TotalCourses:  g.NodeCount(),
		Prerequisites: g.EdgeCount(),
	}
	for i, level := range levels {
		gl := GraphLevel{Level: i, Courses: make([]GraphCourse, 0, len(level))}
		for _, id := range level {
			gl.Courses = append(gl.Courses, GraphCourse{
				ID:       id,
				Title:    courseTitle(g, id),
				Requires: nonNil(g.GetParents(id)),
				Unlocks:  nonNil(g.GetChildren(id)),
				Upstream: nonNil(g.GetUpstreamNodes(id)),
			})
		}
		out.Levels = append(out.Levels, gl)
	}
	return r.JSON(out)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
