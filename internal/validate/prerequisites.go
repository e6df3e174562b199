package validate

import (
	"strings"

	"github.com/leapstack-labs/contentlint/internal/dag"
	"github.com/leapstack-labs/contentlint/pkg/content"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// Prerequisites checks course-to-course prerequisites across one batch of
// courses. A prerequisite outside the batch may exist elsewhere, so it is
// only a warning. Cycles among the batch are errors.
func (v *Validator) Prerequisites(courses []*content.Course) {
	known := make(map[string]bool, len(courses))
	for _, c := range courses {
		if c.ID != "" {
			known[c.ID] = true
		}
	}

	for _, c := range courses {
		file := c.SourcePath()
		for k, p := range c.Prerequisites {
			at := pointer("prerequisites", k)

			if p.Structured {
				if p.CourseID == "" {
					v.diags.Report(lint.RulePrerequisiteMissingField, file, at, "prerequisite is missing courseId")
				}
				if cr := p.CompletionRequired; cr.Set && !cr.Valid {
					v.diags.Report(lint.RulePrerequisiteCompletion, file, at,
						"completionRequired must be a number, got %s", cr.Raw)
				}
			}

			if p.CourseID != "" && !known[p.CourseID] {
				v.diags.Report(lint.RulePrerequisiteUnresolved, file, at,
					"prerequisite course %q not found", p.CourseID)
			}
		}
	}

	g := PrerequisiteGraph(courses)
	if hasCycle, path := g.HasCycle(); hasCycle {
		file := ""
		if node, ok := g.GetNode(path[0]); ok {
			file = node.Data.(*content.Course).SourcePath()
		}
		v.diags.Report(lint.RulePrerequisiteCycle, file, "prerequisites",
			"prerequisite cycle: %s", strings.Join(path, " -> "))
	}
}

// PrerequisiteGraph builds the prerequisite graph of a batch of courses.
// Each course is a node carrying its *content.Course; an edge runs from a
// prerequisite to the course that requires it. Prerequisites outside the
// batch are left out. When two courses share an ID the first one wins.
func PrerequisiteGraph(courses []*content.Course) *dag.Graph {
	g := dag.NewGraph()
	for _, c := range courses {
		if c.ID == "" {
			continue
		}
		if _, exists := g.GetNode(c.ID); !exists {
			g.AddNode(c.ID, c)
		}
	}
	for _, c := range courses {
		node, ok := g.GetNode(c.ID)
		if !ok || node.Data != c {
			continue
		}
		for _, p := range c.Prerequisites {
			if _, ok := g.GetNode(p.CourseID); ok {
				_ = g.AddEdge(p.CourseID, c.ID)
			}
		}
	}
	return g
}
