package content

import "gopkg.in/yaml.v3"

// LessonRequired lists the fields every lesson must declare.
var LessonRequired = []string{"id", "title", "description", "modules", "objectives"}

// Lesson is a single authored lesson.
type Lesson struct {
	presence `yaml:"-"`
	Path     string `yaml:"-"`

	ID          string      `yaml:"id"`
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Difficulty  Difficulty  `yaml:"difficulty"` // optional; feeds course difficulty progression
	Modules     []Module    `yaml:"modules"`
	Objectives  []Objective `yaml:"objectives"`
}

// RecordID implements Record.
func (l *Lesson) RecordID() string { return l.ID }

// RecordKind implements Record.
func (l *Lesson) RecordKind() Kind { return KindLesson }

// SourcePath implements Record.
func (l *Lesson) SourcePath() string { return l.Path }

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Lesson) UnmarshalYAML(node *yaml.Node) error {
	if err := expectMapping(node, "lesson"); err != nil {
		return err
	}
	type plain Lesson
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*l = Lesson(p)
	l.presence = presence{missing: missingKeys(node, LessonRequired)}
	return nil
}

// Module is one step of a lesson's instructional flow.
type Module struct {
	ID       string      `yaml:"id"`
	Kind     ModuleKind  `yaml:"kind"`
	Content  any         `yaml:"content"`
	Text     any         `yaml:"text"`
	Question any         `yaml:"question"`
	Fading   *FadingSpec `yaml:"fading"`
	Type     ModuleKind  `yaml:"type"` // legacy spelling of kind
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Module) UnmarshalYAML(node *yaml.Node) error {
	if err := expectMapping(node, "module"); err != nil {
		return err
	}
	type plain Module
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*m = Module(p)
	if m.Kind == "" && m.Type != "" {
		m.Kind = m.Type
	}
	return nil
}

// HasPayload reports whether the module carries content, text or a question.
func (m Module) HasPayload() bool {
	return !emptyPayload(m.Content) || !emptyPayload(m.Text) || !emptyPayload(m.Question)
}

func emptyPayload(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

// FadingSpec describes a fading worked example.
type FadingSpec struct {
	Pattern FadePattern `yaml:"fadePattern"`
	Steps   []FadeStep  `yaml:"steps"`
}

// FadeStep is one step of a fading worked example.
type FadeStep struct {
	Instruction string `yaml:"instruction"`
	Scaffolding Number `yaml:"scaffolding"`
}

// Objective is a learning objective, authored either as plain text or as
// {text, bloomLevel}.
type Objective struct {
	Text       string     `yaml:"text"`
	BloomLevel BloomLevel `yaml:"bloomLevel"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Objective) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		o.Text = node.Value
		return nil
	}
	if err := expectMapping(node, "objective"); err != nil {
		return err
	}
	type plain Objective
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*o = Objective(p)
	return nil
}
