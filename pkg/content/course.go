package content

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CourseRequired lists the fields every course must declare.
var CourseRequired = []string{"id", "title", "description", "lessons", "difficulty"}

// Course is an ordered sequence of lessons.
type Course struct {
	presence `yaml:"-"`
	Path     string `yaml:"-"`

	ID             string               `yaml:"id"`
	Title          string               `yaml:"title"`
	Description    string               `yaml:"description"`
	Difficulty     Difficulty           `yaml:"difficulty"`
	EstimatedHours Number               `yaml:"estimatedHours"`
	Lessons        []CourseLessonRef    `yaml:"lessons"`
	Prerequisites  []CoursePrerequisite `yaml:"prerequisites"`
}

// RecordID implements Record.
func (c *Course) RecordID() string { return c.ID }

// RecordKind implements Record.
func (c *Course) RecordKind() Kind { return KindCourse }

// SourcePath implements Record.
func (c *Course) SourcePath() string { return c.Path }

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Course) UnmarshalYAML(node *yaml.Node) error {
	if err := expectMapping(node, "course"); err != nil {
		return err
	}
	type plain Course
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*c = Course(p)
	c.presence = presence{missing: missingKeys(node, CourseRequired)}
	return nil
}

// CourseLessonRef places a lesson in a course.
type CourseLessonRef struct {
	LessonID         string      `yaml:"lessonId"`
	Order            Number      `yaml:"order"`
	Gating           *GatingRule `yaml:"gating"`
	EstimatedMinutes Number      `yaml:"estimatedMinutes"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *CourseLessonRef) UnmarshalYAML(node *yaml.Node) error {
	if err := expectMapping(node, "lesson reference"); err != nil {
		return err
	}
	type plain CourseLessonRef
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*r = CourseLessonRef(p)
	return nil
}

// GatingRule lists the requirements that unlock a lesson. It is authored
// either as a list or as {requires: [...]}.
type GatingRule struct {
	Requires []Requirement `yaml:"requires"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *GatingRule) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		return node.Decode(&g.Requires)
	case yaml.MappingNode:
		type plain GatingRule
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*g = GatingRule(p)
		return nil
	default:
		return fmt.Errorf("gating: expected a list or object, got %s (line %d)", kindName(node), node.Line)
	}
}

// Requirement is one gating requirement: either a bare lesson ID meaning
// "must be completed", or a structured {lessonId, condition, threshold}.
type Requirement struct {
	LessonID   string    `yaml:"lessonId"`
	Condition  Condition `yaml:"condition"`
	Threshold  Number    `yaml:"threshold"`
	Structured bool      `yaml:"-"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (q *Requirement) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*q = Requirement{LessonID: node.Value}
		return nil
	}
	if err := expectMapping(node, "gating requirement"); err != nil {
		return err
	}
	type plain Requirement
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*q = Requirement(p)
	q.Structured = true
	return nil
}

// CoursePrerequisite declares that another course must be completed first.
// It is authored as a bare course ID or as {courseId, completionRequired}.
type CoursePrerequisite struct {
	CourseID           string `yaml:"courseId"`
	CompletionRequired Number `yaml:"completionRequired"`
	Structured         bool   `yaml:"-"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *CoursePrerequisite) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*p = CoursePrerequisite{CourseID: node.Value}
		return nil
	}
	if err := expectMapping(node, "prerequisite"); err != nil {
		return err
	}
	type plain CoursePrerequisite
	var v plain
	if err := node.Decode(&v); err != nil {
		return err
	}
	*p = CoursePrerequisite(v)
	p.Structured = true
	return nil
}
