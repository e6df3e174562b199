package validate

import (
	"math"
	"strings"
	"testing"

	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLesson_Valid(t *testing.T) {
	h := newHarness()
	h.lesson(t, "lessons/optionals.yaml", validLesson("optionals"))

	assert.Empty(t, h.c.Diagnostics())
	assert.True(t, h.reg.Exists("optionals"))
}

func TestLesson_RequiredFields(t *testing.T) {
	for _, field := range []string{"id", "title", "description", "modules", "objectives"} {
		t.Run(field, func(t *testing.T) {
			h := newHarness()
			h.lesson(t, "l.yaml", without(validLesson("optionals"), field))

			msgs := h.messages(lint.RuleLessonRequired)
			require.NotEmpty(t, msgs)
			assert.Contains(t, msgs[0], `"`+field+`"`)
			for _, d := range h.c.Diagnostics() {
				if d.RuleID == lint.RuleLessonRequired {
					assert.Equal(t, lint.CategorySchema, d.Category)
					assert.True(t, d.IsError())
				}
			}
		})
	}
}

func TestLesson_AllFieldsMissing(t *testing.T) {
	h := newHarness()
	h.lesson(t, "l.yaml", doc{"difficulty": "beginner"})
	assert.Equal(t, 5, h.count(lint.RuleLessonRequired), "one error per missing field")
}

func TestLesson_IDFormat(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"swift-101", 0},
		{"Swift-101", 1},
		{"swift_101", 1},
		{"swift 101", 1},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			h := newHarness()
			h.lesson(t, "l.yaml", validLesson(tt.id))
			assert.Equal(t, tt.want, h.count(lint.RuleIDFormat))
		})
	}
}

func TestLesson_DuplicateID(t *testing.T) {
	h := newHarness()
	h.lesson(t, "lessons/a.json", validLesson("ios-101"))
	h.lesson(t, "lessons/b.json", validLesson("ios-101"))

	require.Equal(t, []string{lint.RuleDuplicateID}, h.rules())
	d := h.c.Diagnostics()[0]
	assert.Equal(t, "lessons/b.json", d.File)
	assert.Contains(t, d.Message, "lessons/a.json")
	assert.Equal(t, lint.CategoryUniqueness, d.Category)
}

func TestLesson_LengthHeuristics(t *testing.T) {
	tests := []struct {
		name  string
		field string
		size  int
		rule  string
		want  int
	}{
		{"title at limit", "title", 100, lint.RuleLessonTitleLength, 0},
		{"title over limit", "title", 101, lint.RuleLessonTitleLength, 1},
		{"description at limit", "description", 500, lint.RuleLessonDescriptionLength, 0},
		{"description over limit", "description", 501, lint.RuleLessonDescriptionLength, 1},
		{"multibyte title at limit", "title", 100, lint.RuleLessonTitleLength, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			char := "x"
			if strings.HasPrefix(tt.name, "multibyte") {
				char = "é"
			}
			h.lesson(t, "l.yaml", with(validLesson("l"), tt.field, strings.Repeat(char, tt.size)))
			assert.Equal(t, tt.want, h.count(tt.rule))
			assert.Zero(t, h.c.ErrorCount(), "length heuristics are warnings")
		})
	}
}

func TestLesson_Modules(t *testing.T) {
	tests := []struct {
		name    string
		modules []any
		want    map[string]int
	}{
		{
			name:    "empty list",
			modules: []any{},
			want:    map[string]int{lint.RuleLessonNoModules: 1, lint.RuleLessonRequired: 0},
		},
		{
			name: "duplicate module id",
			modules: []any{
				doc{"id": "a", "kind": "hook", "content": "x"},
				doc{"id": "a", "kind": "concept", "content": "x"},
				doc{"id": "b", "kind": "summary", "content": "x"},
			},
			want: map[string]int{lint.RuleModuleDuplicateID: 1},
		},
		{
			name: "missing id and kind",
			modules: []any{
				doc{"id": "a", "kind": "hook", "content": "x"},
				doc{"content": "x"},
				doc{"id": "c", "kind": "concept", "content": "x"},
				doc{"id": "d", "kind": "summary", "content": "x"},
			},
			want: map[string]int{lint.RuleModuleMissingID: 1, lint.RuleModuleKind: 1},
		},
		{
			name: "unknown kind",
			modules: []any{
				doc{"id": "a", "kind": "hook", "content": "x"},
				doc{"id": "b", "kind": "lab", "content": "x"},
				doc{"id": "c", "kind": "concept", "content": "x"},
				doc{"id": "d", "kind": "summary", "content": "x"},
			},
			want: map[string]int{lint.RuleModuleKind: 1},
		},
		{
			name: "no payload",
			modules: []any{
				doc{"id": "a", "kind": "hook"},
				doc{"id": "b", "kind": "concept", "text": ""},
				doc{"id": "c", "kind": "summary", "question": doc{"prompt": "ok?"}},
			},
			want: map[string]int{lint.RuleModuleEmpty: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			h.lesson(t, "l.yaml", with(validLesson("l"), "modules", tt.modules))
			for rule, want := range tt.want {
				assert.Equal(t, want, h.count(rule), rule)
			}
		})
	}
}

func TestLesson_Flow(t *testing.T) {
	mod := func(id, kind string) doc { return doc{"id": id, "kind": kind, "content": "x"} }

	tests := []struct {
		name    string
		modules []any
		want    []string
	}{
		{
			name:    "canonical flow",
			modules: []any{mod("a", "objectives"), mod("b", "concept"), mod("c", "quiz"), mod("d", "checkpoint")},
			want:    nil,
		},
		{
			name:    "opens with concept",
			modules: []any{mod("a", "concept"), mod("b", "transfer")},
			want:    []string{lint.RuleFlowOpening},
		},
		{
			name:    "closes with quiz",
			modules: []any{mod("a", "hook"), mod("b", "concept"), mod("c", "quiz")},
			want:    []string{lint.RuleFlowClosing},
		},
		{
			name:    "quiz before concept",
			modules: []any{mod("a", "hook"), mod("b", "quiz"), mod("c", "concept"), mod("d", "summary")},
			want:    []string{lint.RuleFlowQuizBeforeConcept},
		},
		{
			name:    "no concept at all",
			modules: []any{mod("a", "hook"), mod("b", "quiz"), mod("c", "summary")},
			want:    []string{lint.RuleFlowQuizBeforeConcept, lint.RuleFlowNoConcept},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			h.lesson(t, "l.yaml", with(validLesson("l"), "modules", tt.modules))
			assert.Equal(t, tt.want, h.rules())
			assert.Zero(t, h.c.ErrorCount(), "flow heuristics are warnings")
		})
	}
}

func TestLesson_BloomLevel(t *testing.T) {
	h := newHarness()
	h.lesson(t, "l.yaml", with(validLesson("l"), "objectives", []any{
		doc{"text": "Recall syntax", "bloomLevel": "remember"},
		doc{"text": "Memorise everything", "bloomLevel": "memorize"},
		"Plain text objective",
	}))

	assert.Equal(t, []string{lint.RuleBloomLevel}, h.rules())
	assert.Equal(t, "objectives[1]", h.c.Diagnostics()[0].Pointer)
}

func TestLesson_LessonDifficulty(t *testing.T) {
	h := newHarness()
	h.lesson(t, "l.yaml", with(validLesson("l"), "difficulty", "expert"))
	assert.Equal(t, []string{lint.RuleLessonDifficulty}, h.rules())
}

func TestLesson_Fading(t *testing.T) {
	fadingLesson := func(fading doc) doc {
		return with(validLesson("l"), "modules", []any{
			doc{"id": "a", "kind": "hook", "content": "x"},
			doc{"id": "b", "kind": "concept", "content": "x"},
			doc{"id": "c", "kind": "worked_example", "content": "x", "fading": fading},
			doc{"id": "d", "kind": "summary", "content": "x"},
		})
	}
	step := func(instruction string, scaffolding any) doc {
		return doc{"instruction": instruction, "scaffolding": scaffolding}
	}

	tests := []struct {
		name   string
		fading doc
		want   []string
	}{
		{
			name:   "scaffolding in range",
			fading: doc{"fadePattern": "linear", "steps": []any{step("do it", 0.5)}},
			want:   nil,
		},
		{
			name:   "scaffolding above one",
			fading: doc{"steps": []any{step("do it", 1.5)}},
			want:   []string{lint.RuleFadeScaffolding},
		},
		{
			name:   "scaffolding negative",
			fading: doc{"steps": []any{step("do it", -0.1)}},
			want:   []string{lint.RuleFadeScaffolding},
		},
		{
			name:   "scaffolding not a number",
			fading: doc{"steps": []any{step("do it", "high")}},
			want:   []string{lint.RuleFadeScaffolding},
		},
		{
			name:   "scaffolding NaN",
			fading: doc{"steps": []any{step("do it", math.NaN())}},
			want:   []string{lint.RuleFadeScaffolding},
		},
		{
			name:   "scaffolding infinite",
			fading: doc{"steps": []any{step("do it", math.Inf(1))}},
			want:   []string{lint.RuleFadeScaffolding},
		},
		{
			name:   "bounds are inclusive",
			fading: doc{"steps": []any{step("a", 1), step("b", 0)}},
			want:   nil,
		},
		{
			name:   "unknown pattern",
			fading: doc{"fadePattern": "zigzag", "steps": []any{step("do it", 1)}},
			want:   []string{lint.RuleFadePattern},
		},
		{
			name:   "empty instruction",
			fading: doc{"steps": []any{step("  ", 1)}},
			want:   []string{lint.RuleFadeEmptyInstruction},
		},
		{
			name:   "scaffolding rises",
			fading: doc{"fadePattern": "custom", "steps": []any{step("a", 0.8), step("b", 0.3), step("c", 0.6)}},
			want:   []string{lint.RuleFadeNotDecreasing},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			h.lesson(t, "l.yaml", fadingLesson(tt.fading))
			assert.Equal(t, tt.want, h.rules())
		})
	}
}

func TestLesson_FadingOnlyForWorkedExamples(t *testing.T) {
	h := newHarness()
	h.lesson(t, "l.yaml", with(validLesson("l"), "modules", []any{
		doc{"id": "a", "kind": "hook", "content": "x"},
		doc{"id": "b", "kind": "concept", "content": "x", "fading": doc{"steps": []any{doc{"instruction": "x", "scaffolding": 5}}}},
		doc{"id": "d", "kind": "summary", "content": "x"},
	}))
	assert.Empty(t, h.c.Diagnostics())
}
