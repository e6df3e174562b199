package validate

import (
	"testing"

	"github.com/leapstack-labs/contentlint/internal/registry"
	"github.com/leapstack-labs/contentlint/pkg/content"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// doc is an authored record before encoding.
type doc = map[string]any

type harness struct {
	v   *Validator
	c   *lint.Collector
	reg *registry.Registry
}

func newHarness() *harness {
	reg := registry.New()
	c := lint.NewCollector(nil)
	return &harness{v: New(reg, c, DefaultOptions()), c: c, reg: reg}
}

// decode encodes d as YAML and decodes it as a record of the given kind,
// exercising the same path as files on disk.
func decode(t *testing.T, kind content.Kind, path string, d doc) content.Record {
	t.Helper()
	data, err := yaml.Marshal(d)
	require.NoError(t, err)
	rec, err := content.Decode(kind, path, data)
	require.NoError(t, err)
	return rec
}

func (h *harness) lesson(t *testing.T, path string, d doc) *content.Lesson {
	t.Helper()
	l := decode(t, content.KindLesson, path, d).(*content.Lesson)
	h.v.Lesson(l)
	return l
}

func (h *harness) course(t *testing.T, path string, d doc) *content.Course {
	t.Helper()
	c := decode(t, content.KindCourse, path, d).(*content.Course)
	h.v.Course(c)
	return c
}

func (h *harness) bank(t *testing.T, path string, d doc) *content.QuestionBank {
	t.Helper()
	b := decode(t, content.KindInterviewQuestion, path, d).(*content.QuestionBank)
	h.v.QuestionBank(b)
	return b
}

// reset drops diagnostics collected so far, keeping the registry.
func (h *harness) reset() {
	h.c = lint.NewCollector(nil)
	h.v.diags = h.c
}

func (h *harness) count(ruleID string) int {
	n := 0
	for _, d := range h.c.Diagnostics() {
		if d.RuleID == ruleID {
			n++
		}
	}
	return n
}

func (h *harness) messages(ruleID string) []string {
	var out []string
	for _, d := range h.c.Diagnostics() {
		if d.RuleID == ruleID {
			out = append(out, d.Message)
		}
	}
	return out
}

func (h *harness) rules() []string {
	var out []string
	for _, d := range h.c.Diagnostics() {
		out = append(out, d.RuleID)
	}
	return out
}

// validLesson returns a lesson that produces no diagnostics.
func validLesson(id string) doc {
	return doc{
		"id":          id,
		"title":       "Optionals",
		"description": "Handling values that may be absent",
		"objectives": []any{
			"Explain what nil means",
			doc{"text": "Unwrap an optional safely", "bloomLevel": "apply"},
		},
		"modules": []any{
			doc{"id": "hook", "kind": "hook", "content": "Why does my app crash?"},
			doc{"id": "concept", "kind": "concept", "content": "Optionals wrap a value"},
			doc{"id": "quiz", "kind": "quiz", "question": "What does ? mean?"},
			doc{"id": "summary", "kind": "summary", "text": "Recap"},
		},
	}
}

// validCourse returns a course over lessons that produces no diagnostics
// once those lessons are registered.
func validCourse(id string, lessonIDs ...string) doc {
	refs := make([]any, 0, len(lessonIDs))
	for i, lid := range lessonIDs {
		refs = append(refs, doc{"lessonId": lid, "order": i + 1})
	}
	return doc{
		"id":          id,
		"title":       "Swift Fundamentals",
		"description": "Start here",
		"difficulty":  "beginner",
		"lessons":     refs,
	}
}

func validBank(id string) doc {
	return doc{
		"id":    id,
		"title": "Swift interview",
		"questions": []any{
			validQuestion("q1"),
			validQuestion("q2"),
		},
	}
}

func validQuestion(id string) doc {
	return doc{
		"id":          id,
		"category":    "swift",
		"difficulty":  "beginner",
		"prompt":      "What is an optional?",
		"modelAnswer": "A type that may hold no value.",
	}
}

func without(d doc, key string) doc {
	out := make(doc, len(d))
	for k, v := range d {
		if k != key {
			out[k] = v
		}
	}
	return out
}

func with(d doc, key string, value any) doc {
	out := make(doc, len(d)+1)
	for k, v := range d {
		out[k] = v
	}
	out[key] = value
	return out
}
