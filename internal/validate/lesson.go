package validate

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/contentlint/pkg/content"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// Lesson validates a single lesson and registers its ID.
func (v *Validator) Lesson(l *content.Lesson) {
	file := l.SourcePath()

	v.required(lint.RuleLessonRequired, l)
	if v.identify(l) {
		v.lessons[l.ID] = l
	}

	if n := utf8.RuneCountInString(l.Title); n > v.opts.TitleMax {
		v.diags.Report(lint.RuleLessonTitleLength, file, "title",
			"title is %d characters (max %d)", n, v.opts.TitleMax)
	}
	if n := utf8.RuneCountInString(l.Description); n > v.opts.DescriptionMax {
		v.diags.Report(lint.RuleLessonDescriptionLength, file, "description",
			"description is %d characters (max %d)", n, v.opts.DescriptionMax)
	}
	if l.Difficulty != "" && !l.Difficulty.Valid() {
		v.diags.Report(lint.RuleLessonDifficulty, file, "difficulty",
			"unknown difficulty %q (expected one of: %s)", l.Difficulty, content.Join(content.AllDifficulties()))
	}

	v.modules(l)
	v.flow(l)

	for i, obj := range l.Objectives {
		if obj.BloomLevel != "" && !obj.BloomLevel.Valid() {
			v.diags.Report(lint.RuleBloomLevel, file, pointer("objectives", i),
				"unknown bloom level %q (expected one of: %s)", obj.BloomLevel, content.Join(content.AllBloomLevels()))
		}
	}

	for i, m := range l.Modules {
		if m.Kind == content.ModuleWorkedExample && m.Fading != nil {
			v.fading(file, pointer("modules", i), m.Fading)
		}
	}
}

func (v *Validator) modules(l *content.Lesson) {
	file := l.SourcePath()
	if len(l.Modules) == 0 {
		if !l.Missing("modules") {
			v.diags.Report(lint.RuleLessonNoModules, file, "modules", "lesson has no modules")
		}
		return
	}

	seen := make(map[string]bool, len(l.Modules))
	for i, m := range l.Modules {
		at := pointer("modules", i)

		if m.ID == "" {
			v.diags.Report(lint.RuleModuleMissingID, file, at, "module is missing an id")
		} else if seen[m.ID] {
			v.diags.Report(lint.RuleModuleDuplicateID, file, at, "duplicate module id %q", m.ID)
		}
		seen[m.ID] = true

		switch {
		case m.Kind == "":
			v.diags.Report(lint.RuleModuleKind, file, at, "module %s is missing a kind", moduleName(m, i))
		case !m.Kind.Valid():
			v.diags.Report(lint.RuleModuleKind, file, at,
				"unknown module kind %q (expected one of: %s)", m.Kind, content.Join(content.AllModuleKinds()))
		}

		if !m.HasPayload() {
			v.diags.Report(lint.RuleModuleEmpty, file, at, "module %s has no content, text or question", moduleName(m, i))
		}
	}
}

// flow applies the instructional flow heuristics to the module sequence.
func (v *Validator) flow(l *content.Lesson) {
	if len(l.Modules) == 0 {
		return
	}
	file := l.SourcePath()

	if first := l.Modules[0]; !first.Kind.Opens() {
		v.diags.Report(lint.RuleFlowOpening, file, pointer("modules", 0),
			"lesson should open with a hook or objectives module, not %q", first.Kind)
	}

	last := len(l.Modules) - 1
	if m := l.Modules[last]; !m.Kind.Closes() {
		v.diags.Report(lint.RuleFlowClosing, file, pointer("modules", last),
			"lesson should close with a summary, transfer or checkpoint module, not %q", m.Kind)
	}

	conceptSeen := false
	for i, m := range l.Modules {
		switch m.Kind {
		case content.ModuleConcept:
			conceptSeen = true
		case content.ModuleQuiz:
			if !conceptSeen {
				v.diags.Report(lint.RuleFlowQuizBeforeConcept, file, pointer("modules", i),
					"quiz %s comes before any concept module", moduleName(m, i))
			}
		}
	}
	if !conceptSeen {
		v.diags.Report(lint.RuleFlowNoConcept, file, "modules", "lesson has no concept module")
	}
}

// fading validates the steps of a fading worked example.
func (v *Validator) fading(file, at string, f *content.FadingSpec) {
	if f.Pattern != "" && !f.Pattern.Valid() {
		v.diags.Report(lint.RuleFadePattern, file, at+".fading",
			"unknown fade pattern %q (expected one of: %s)", f.Pattern, content.Join(content.AllFadePatterns()))
	}

	prev := -1.0
	for i, step := range f.Steps {
		stepAt := at + ".fading." + pointer("steps", i)

		if strings.TrimSpace(step.Instruction) == "" {
			v.diags.Report(lint.RuleFadeEmptyInstruction, file, stepAt, "fade step %d has an empty instruction", i+1)
		}

		s := step.Scaffolding
		if !s.Set {
			continue
		}
		if !s.Valid || s.Value < 0 || s.Value > 1 {
			v.diags.Report(lint.RuleFadeScaffolding, file, stepAt,
				"scaffolding must be a number between 0 and 1, got %s", s.Raw)
			continue
		}
		if prev >= 0 && s.Value > prev {
			v.diags.Report(lint.RuleFadeNotDecreasing, file, stepAt,
				"scaffolding rises from %s to %s; support should fade", formatNumber(prev), formatNumber(s.Value))
		}
		prev = s.Value
	}
}

func moduleName(m content.Module, index int) string {
	if m.ID != "" {
		return `"` + m.ID + `"`
	}
	return "#" + strconv.Itoa(index+1)
}
