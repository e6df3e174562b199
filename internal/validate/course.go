package validate

import (
	"math"
	"sort"

	"github.com/leapstack-labs/contentlint/pkg/content"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// Course validates a single course against the lessons already registered.
// Prerequisites are checked separately, once the whole batch is known.
func (v *Validator) Course(c *content.Course) {
	file := c.SourcePath()

	v.required(lint.RuleCourseRequired, c)
	v.identify(c)

	if c.Difficulty != "" && !c.Difficulty.Valid() {
		v.diags.Report(lint.RuleCourseDifficulty, file, "difficulty",
			"unknown difficulty %q (expected one of: %s)", c.Difficulty, content.Join(content.AllDifficulties()))
	}
	if h := c.EstimatedHours; h.Set && (!h.Valid || h.Value <= 0) {
		v.diags.Report(lint.RuleCourseEstimatedHours, file, "estimatedHours",
			"estimatedHours must be a positive number, got %s", h.Raw)
	}

	if len(c.Lessons) == 0 {
		if !c.Missing("lessons") {
			v.diags.Report(lint.RuleCourseNoLessons, file, "lessons", "course has no lessons")
		}
		return
	}

	v.lessonRefs(c)
	v.lessonOrder(c)
	for i, ref := range c.Lessons {
		if ref.Gating != nil {
			v.gating(file, pointer("lessons", i), ref.Gating)
		}
	}
	v.duration(c)
	v.difficultyProgression(c)
}

// lessonRefs resolves each lesson reference and checks its field types.
func (v *Validator) lessonRefs(c *content.Course) {
	file := c.SourcePath()
	for i, ref := range c.Lessons {
		at := pointer("lessons", i)

		if ref.LessonID == "" {
			v.diags.Report(lint.RuleCourseLessonRefField, file, at, "lesson reference is missing lessonId")
		} else if !v.reg.ExistsAs(ref.LessonID, content.KindLesson) {
			v.diags.Report(lint.RuleCourseLessonNotFound, file, at, "referenced lesson %q not found", ref.LessonID)
		}

		switch {
		case !ref.Order.Set:
			v.diags.Report(lint.RuleCourseLessonRefField, file, at, "lesson reference is missing order")
		case !ref.Order.IsInteger():
			v.diags.Report(lint.RuleCourseLessonRefField, file, at, "order must be an integer, got %s", ref.Order.Raw)
		case ref.Order.Int() < 1:
			v.diags.Report(lint.RuleCourseLessonRefField, file, at, "order must be 1 or greater, got %s", ref.Order.Raw)
		}

		if m := ref.EstimatedMinutes; m.Set && (!m.Valid || m.Value < 0) {
			v.diags.Report(lint.RuleCourseLessonRefField, file, at,
				"estimatedMinutes must be a non-negative number, got %s", m.Raw)
		}
	}
}

// lessonOrder reports duplicate order values, then the first gap in the
// sorted 1..N sequence. Later gaps are not reported. Orders below 1 are
// reported by lessonRefs and ignored here.
func (v *Validator) lessonOrder(c *content.Course) {
	file := c.SourcePath()

	counts := make(map[int]int)
	for _, ref := range c.Lessons {
		if ref.Order.IsInteger() && ref.Order.Int() >= 1 {
			counts[ref.Order.Int()]++
		}
	}

	orders := make([]int, 0, len(counts))
	for o := range counts {
		orders = append(orders, o)
	}
	sort.Ints(orders)

	for _, o := range orders {
		if counts[o] > 1 {
			v.diags.Report(lint.RuleCourseDuplicateOrder, file, "lessons",
				"lesson order %d is used by %d lessons", o, counts[o])
		}
	}

	for i, o := range orders {
		if position := i + 1; o != position {
			v.diags.Report(lint.RuleCourseOrderGap, file, "lessons",
				"gap in lesson order at position %d (next order is %d)", position, o)
			return
		}
	}
}

// gating checks every requirement of a lesson's gating rule.
func (v *Validator) gating(file, at string, g *content.GatingRule) {
	for j, req := range g.Requires {
		reqAt := at + ".gating." + pointer("requires", j)

		switch {
		case req.LessonID == "":
			v.diags.Report(lint.RuleGatingUnresolved, file, reqAt, "gating requirement is missing lessonId")
		case !v.reg.ExistsAs(req.LessonID, content.KindLesson):
			v.diags.Report(lint.RuleGatingUnresolved, file, reqAt,
				"gating requirement references unknown lesson %q", req.LessonID)
		}

		if !req.Structured {
			continue
		}
		if req.Condition != "" && !req.Condition.Valid() {
			v.diags.Report(lint.RuleGatingCondition, file, reqAt,
				"unknown gating condition %q (expected one of: %s)", req.Condition, content.Join(content.AllConditions()))
		}
		if req.Condition.NeedsThreshold() {
			switch {
			case !req.Threshold.Set:
				v.diags.Report(lint.RuleGatingThreshold, file, reqAt,
					"condition %q requires a numeric threshold", req.Condition)
			case !req.Threshold.Valid:
				v.diags.Report(lint.RuleGatingThreshold, file, reqAt,
					"threshold must be a number, got %s", req.Threshold.Raw)
			}
		}
	}
}

// duration compares estimatedHours with the sum of the lessons'
// estimatedMinutes.
func (v *Validator) duration(c *content.Course) {
	h := c.EstimatedHours
	if !h.Valid || h.Value <= 0 {
		return
	}

	total := 0.0
	for _, ref := range c.Lessons {
		if m := ref.EstimatedMinutes; m.Valid && m.Value > 0 {
			total += m.Value
		}
	}
	if total == 0 {
		return
	}

	expected := h.Value * 60
	if math.Abs(total-expected) > expected*v.opts.DurationTolerance {
		v.diags.Report(lint.RuleDurationMismatch, c.SourcePath(), "estimatedHours",
			"lessons add up to %s minutes but estimatedHours %s is %s minutes (tolerance %s%%)",
			formatNumber(total), h.Raw, formatNumber(expected), formatNumber(v.opts.DurationTolerance*100))
	}
}

// difficultyProgression walks lessons in order with a ratchet: the allowed
// ceiling is one level above the hardest lesson seen so far.
func (v *Validator) difficultyProgression(c *content.Course) {
	refs := make([]content.CourseLessonRef, 0, len(c.Lessons))
	for _, ref := range c.Lessons {
		if ref.Order.IsInteger() {
			refs = append(refs, ref)
		}
	}
	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].Order.Int() < refs[j].Order.Int()
	})

	runningMax := 0
	var ceilingFrom content.Difficulty
	for _, ref := range refs {
		lesson, ok := v.lessons[ref.LessonID]
		if !ok {
			continue
		}
		ordinal := lesson.Difficulty.Ordinal()
		if ordinal == 0 {
			continue
		}
		if runningMax > 0 && ordinal > runningMax+1 {
			v.diags.Report(lint.RuleDifficultyJump, c.SourcePath(), "lessons",
				"difficulty jumps from %s to %s at lesson %q (order %d)",
				ceilingFrom, lesson.Difficulty, ref.LessonID, ref.Order.Int())
		}
		if ordinal > runningMax {
			runningMax = ordinal
			ceilingFrom = lesson.Difficulty
		}
	}
}
