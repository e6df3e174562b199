package validate

import (
	"math"
	"testing"

	"github.com/leapstack-labs/contentlint/pkg/content"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withLessons registers valid lessons with the given difficulties and
// clears their diagnostics.
func withLessons(t *testing.T, difficulties map[string]string) *harness {
	t.Helper()
	h := newHarness()
	for id, difficulty := range difficulties {
		l := validLesson(id)
		if difficulty != "" {
			l = with(l, "difficulty", difficulty)
		}
		h.lesson(t, "lessons/"+id+".yaml", l)
	}
	require.Empty(t, h.c.Diagnostics())
	return h
}

func TestCourse_Valid(t *testing.T) {
	h := withLessons(t, map[string]string{"a": "", "b": "", "c": ""})
	h.course(t, "courses/swift.yaml", validCourse("swift", "a", "b", "c"))

	assert.Empty(t, h.c.Diagnostics())
	assert.True(t, h.reg.ExistsAs("swift", content.KindCourse))
}

func TestCourse_RequiredAndEnums(t *testing.T) {
	tests := []struct {
		name string
		doc  doc
		want []string
	}{
		{"missing title", without(validCourse("c", "a"), "title"), []string{lint.RuleCourseRequired}},
		{"missing difficulty", without(validCourse("c", "a"), "difficulty"), []string{lint.RuleCourseRequired}},
		{"missing lessons", without(validCourse("c", "a"), "lessons"), []string{lint.RuleCourseRequired}},
		{"unknown difficulty", with(validCourse("c", "a"), "difficulty", "expert"), []string{lint.RuleCourseDifficulty}},
		{"bad id", validCourse("Swift_Course", "a"), []string{lint.RuleIDFormat}},
		{"zero hours", with(validCourse("c", "a"), "estimatedHours", 0), []string{lint.RuleCourseEstimatedHours}},
		{"negative hours", with(validCourse("c", "a"), "estimatedHours", -2), []string{lint.RuleCourseEstimatedHours}},
		{"textual hours", with(validCourse("c", "a"), "estimatedHours", "two"), []string{lint.RuleCourseEstimatedHours}},
		{"positive hours", with(validCourse("c", "a"), "estimatedHours", 1.5), nil},
		{"infinite hours", with(validCourse("c", "a"), "estimatedHours", math.Inf(1)), []string{lint.RuleCourseEstimatedHours}},
		{"NaN hours", with(validCourse("c", "a"), "estimatedHours", math.NaN()), []string{lint.RuleCourseEstimatedHours}},
		{"empty lessons", with(validCourse("c"), "lessons", []any{}), []string{lint.RuleCourseNoLessons}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := withLessons(t, map[string]string{"a": ""})
			h.course(t, "c.yaml", tt.doc)
			assert.Equal(t, tt.want, h.rules())
		})
	}
}

func TestCourse_LessonReferences(t *testing.T) {
	tests := []struct {
		name    string
		lessons []string
		want    int
	}{
		{"all resolve", []string{"a", "b"}, 0},
		{"one missing", []string{"a", "ghost"}, 1},
		{"two missing", []string{"ghost-1", "a", "ghost-2"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := withLessons(t, map[string]string{"a": "", "b": ""})
			h.course(t, "c.yaml", validCourse("c", tt.lessons...))
			assert.Equal(t, tt.want, h.count(lint.RuleCourseLessonNotFound))
			assert.Equal(t, tt.want, len(h.c.Diagnostics()), "reference errors only")
		})
	}
}

func TestCourse_LessonReferenceToOtherKind(t *testing.T) {
	h := withLessons(t, map[string]string{"a": ""})
	h.course(t, "c1.yaml", validCourse("intro", "a"))
	h.course(t, "c2.yaml", validCourse("next", "intro"))

	assert.Equal(t, []string{lint.RuleCourseLessonNotFound}, h.rules())
	assert.Contains(t, h.c.Diagnostics()[0].Message, `"intro"`)
}

func TestCourse_Order(t *testing.T) {
	tests := []struct {
		name       string
		orders     []any
		duplicates int
		gaps       int
		gapMessage string
	}{
		{"sequential", []any{1, 2, 3}, 0, 0, ""},
		{"unsorted sequential", []any{3, 1, 2}, 0, 0, ""},
		{"duplicate", []any{1, 1, 2}, 1, 0, ""},
		{"gap", []any{1, 3}, 0, 1, "position 2"},
		{"gap at start", []any{2, 3}, 0, 1, "position 1"},
		{"only first gap reported", []any{1, 3, 5, 9}, 0, 1, "position 2"},
		{"duplicate and gap", []any{1, 1, 4}, 1, 1, "position 2"},
		{"zero order is not a gap", []any{0, 1, 2}, 0, 0, ""},
		{"negative orders are not duplicates", []any{-1, -1, 1}, 0, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := withLessons(t, map[string]string{"a": ""})
			refs := make([]any, 0, len(tt.orders))
			for _, o := range tt.orders {
				refs = append(refs, doc{"lessonId": "a", "order": o})
			}
			h.course(t, "c.yaml", with(validCourse("c"), "lessons", refs))

			assert.Equal(t, tt.duplicates, h.count(lint.RuleCourseDuplicateOrder))
			assert.Equal(t, tt.gaps, h.count(lint.RuleCourseOrderGap))
			if tt.gapMessage != "" {
				require.Len(t, h.messages(lint.RuleCourseOrderGap), 1)
				assert.Contains(t, h.messages(lint.RuleCourseOrderGap)[0], tt.gapMessage)
			}
		})
	}
}

func TestCourse_LessonRefFields(t *testing.T) {
	tests := []struct {
		name string
		ref  doc
	}{
		{"missing lessonId", doc{"order": 1}},
		{"missing order", doc{"lessonId": "a"}},
		{"fractional order", doc{"lessonId": "a", "order": 1.5}},
		{"zero order", doc{"lessonId": "a", "order": 0}},
		{"negative order", doc{"lessonId": "a", "order": -3}},
		{"textual minutes", doc{"lessonId": "a", "order": 1, "estimatedMinutes": "ten"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := withLessons(t, map[string]string{"a": ""})
			h.course(t, "c.yaml", with(validCourse("c"), "lessons", []any{tt.ref}))
			assert.Equal(t, 1, h.count(lint.RuleCourseLessonRefField))
		})
	}
}

func TestCourse_Gating(t *testing.T) {
	tests := []struct {
		name   string
		gating any
		want   []string
	}{
		{"bare resolves", []any{"a"}, nil},
		{"bare unresolved", []any{"ghost"}, []string{lint.RuleGatingUnresolved}},
		{"requires form", doc{"requires": []any{"a", "ghost"}}, []string{lint.RuleGatingUnresolved}},
		{"completed", []any{doc{"lessonId": "a", "condition": "completed"}}, nil},
		{"no condition", []any{doc{"lessonId": "a"}}, nil},
		{"structured unresolved", []any{doc{"lessonId": "ghost", "condition": "completed"}}, []string{lint.RuleGatingUnresolved}},
		{"structured missing lessonId", []any{doc{"condition": "completed"}}, []string{lint.RuleGatingUnresolved}},
		{"unknown condition", []any{doc{"lessonId": "a", "condition": "passed"}}, []string{lint.RuleGatingCondition}},
		{"score without threshold", []any{doc{"lessonId": "a", "condition": "score_above"}}, []string{lint.RuleGatingThreshold}},
		{"score with threshold", []any{doc{"lessonId": "a", "condition": "score_above", "threshold": 0.8}}, nil},
		{"score with textual threshold", []any{doc{"lessonId": "a", "condition": "score_above", "threshold": "high"}}, []string{lint.RuleGatingThreshold}},
		{"score with null threshold", []any{doc{"lessonId": "a", "condition": "score_above", "threshold": nil}}, []string{lint.RuleGatingThreshold}},
		{"checkpoints", []any{doc{"lessonId": "a", "condition": "all_checkpoints"}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := withLessons(t, map[string]string{"a": "", "b": ""})
			h.course(t, "c.yaml", with(validCourse("c"), "lessons", []any{
				doc{"lessonId": "a", "order": 1},
				doc{"lessonId": "b", "order": 2, "gating": tt.gating},
			}))
			assert.Equal(t, tt.want, h.rules())
		})
	}
}

func TestCourse_Duration(t *testing.T) {
	tests := []struct {
		name    string
		hours   any
		minutes []any
		want    int
	}{
		{"exact", 2, []any{60, 60}, 0},
		{"within tolerance", 2, []any{100, 10}, 0},
		{"at tolerance", 2, []any{96}, 0},
		{"beyond tolerance", 2, []any{60, 30}, 1},
		{"over estimate", 1, []any{50, 50}, 1},
		{"no minutes", 2, []any{nil, nil}, 0},
		{"no hours", nil, []any{10, 10}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := withLessons(t, map[string]string{"a": ""})
			refs := make([]any, 0, len(tt.minutes))
			for i, m := range tt.minutes {
				ref := doc{"lessonId": "a", "order": i + 1}
				if m != nil {
					ref["estimatedMinutes"] = m
				}
				refs = append(refs, ref)
			}
			course := with(validCourse("c"), "lessons", refs)
			if tt.hours != nil {
				course = with(course, "estimatedHours", tt.hours)
			}
			h.course(t, "c.yaml", course)

			assert.Equal(t, tt.want, h.count(lint.RuleDurationMismatch))
			assert.Zero(t, h.c.ErrorCount())
		})
	}
}

func TestCourse_DurationToleranceOption(t *testing.T) {
	h := withLessons(t, map[string]string{"a": ""})
	h.v.opts.DurationTolerance = 0.5
	h.course(t, "c.yaml", with(with(validCourse("c"), "estimatedHours", 2), "lessons", []any{
		doc{"lessonId": "a", "order": 1, "estimatedMinutes": 90},
	}))
	assert.Zero(t, h.count(lint.RuleDurationMismatch))
}

func TestCourse_DifficultyProgression(t *testing.T) {
	lessons := map[string]string{
		"beg":  "beginner",
		"int":  "intermediate",
		"adv":  "advanced",
		"none": "",
	}

	tests := []struct {
		name    string
		refs    []any
		want    int
		message string
	}{
		{
			name: "gradual",
			refs: []any{doc{"lessonId": "beg", "order": 1}, doc{"lessonId": "int", "order": 2}, doc{"lessonId": "adv", "order": 3}},
			want: 0,
		},
		{
			name:    "jump",
			refs:    []any{doc{"lessonId": "beg", "order": 1}, doc{"lessonId": "adv", "order": 2}},
			want:    1,
			message: `difficulty jumps from beginner to advanced at lesson "adv" (order 2)`,
		},
		{
			name: "walked in order, not list position",
			refs: []any{doc{"lessonId": "adv", "order": 3}, doc{"lessonId": "beg", "order": 1}, doc{"lessonId": "int", "order": 2}},
			want: 0,
		},
		{
			name: "ratchet keeps raised ceiling",
			refs: []any{
				doc{"lessonId": "beg", "order": 1},
				doc{"lessonId": "adv", "order": 2},
				doc{"lessonId": "beg", "order": 3},
				doc{"lessonId": "adv", "order": 4},
			},
			want: 1,
		},
		{
			name: "advanced first",
			refs: []any{doc{"lessonId": "adv", "order": 1}, doc{"lessonId": "beg", "order": 2}},
			want: 0,
		},
		{
			name: "lessons without difficulty are skipped",
			refs: []any{doc{"lessonId": "beg", "order": 1}, doc{"lessonId": "none", "order": 2}, doc{"lessonId": "int", "order": 3}},
			want: 0,
		},
		{
			name: "unresolved lessons are skipped",
			refs: []any{doc{"lessonId": "beg", "order": 1}, doc{"lessonId": "ghost", "order": 2}, doc{"lessonId": "adv", "order": 3}},
			want: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := withLessons(t, lessons)
			h.course(t, "c.yaml", with(validCourse("c"), "lessons", tt.refs))

			assert.Equal(t, tt.want, h.count(lint.RuleDifficultyJump))
			if tt.message != "" {
				assert.Equal(t, []string{tt.message}, h.messages(lint.RuleDifficultyJump))
			}
			for _, d := range h.c.Diagnostics() {
				if d.RuleID == lint.RuleDifficultyJump {
					assert.Equal(t, lint.SeverityWarning, d.Severity)
				}
			}
		})
	}
}

func TestCourse_CollisionWithLesson(t *testing.T) {
	h := withLessons(t, map[string]string{"ios-101": ""})
	h.course(t, "courses/ios.yaml", validCourse("ios-101", "ios-101"))

	require.Equal(t, []string{lint.RuleDuplicateID}, h.rules())
	msg := h.c.Diagnostics()[0].Message
	assert.Contains(t, msg, "lesson lessons/ios-101.yaml")
	assert.Equal(t, "courses/ios.yaml", h.c.Diagnostics()[0].File)
}
