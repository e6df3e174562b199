package content

import "gopkg.in/yaml.v3"

// QuestionBankRequired lists the fields every question bank must declare.
var QuestionBankRequired = []string{"id", "title", "questions"}

// QuestionRequired lists the fields every interview question must declare.
var QuestionRequired = []string{"id", "category", "difficulty", "prompt", "modelAnswer"}

// QuestionBank is a file of interview questions.
type QuestionBank struct {
	presence `yaml:"-"`
	Path     string `yaml:"-"`

	ID        string              `yaml:"id"`
	Title     string              `yaml:"title"`
	Questions []InterviewQuestion `yaml:"questions"`
}

// RecordID implements Record.
func (b *QuestionBank) RecordID() string { return b.ID }

// RecordKind implements Record.
func (b *QuestionBank) RecordKind() Kind { return KindInterviewQuestion }

// SourcePath implements Record.
func (b *QuestionBank) SourcePath() string { return b.Path }

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *QuestionBank) UnmarshalYAML(node *yaml.Node) error {
	if err := expectMapping(node, "question bank"); err != nil {
		return err
	}
	type plain QuestionBank
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*b = QuestionBank(p)
	b.presence = presence{missing: missingKeys(node, QuestionBankRequired)}
	return nil
}

// InterviewQuestion is a single interview prompt with its model answer.
type InterviewQuestion struct {
	presence `yaml:"-"`

	ID          string     `yaml:"id"`
	Category    Category   `yaml:"category"`
	Difficulty  Difficulty `yaml:"difficulty"`
	Prompt      string     `yaml:"prompt"`
	ModelAnswer string     `yaml:"modelAnswer"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (q *InterviewQuestion) UnmarshalYAML(node *yaml.Node) error {
	if err := expectMapping(node, "question"); err != nil {
		return err
	}
	type plain InterviewQuestion
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*q = InterviewQuestion(p)
	q.presence = presence{missing: missingKeys(node, QuestionRequired)}
	return nil
}
