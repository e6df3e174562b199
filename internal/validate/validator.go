// Package validate checks decoded content records and reports findings
// to a lint.Collector.
//
// A Validator belongs to one run. It shares the run's ID registry, so lessons
// must be validated before the courses that reference them.
package validate

import (
	"errors"
	"strconv"

	"github.com/leapstack-labs/contentlint/internal/registry"
	"github.com/leapstack-labs/contentlint/pkg/content"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// Options holds the tunable limits of the heuristics.
type Options struct {
	// TitleMax is the longest lesson title, in characters, before a warning
	TitleMax int
	// DescriptionMax is the longest lesson description, in characters
	DescriptionMax int
	// DurationTolerance is the accepted relative gap between a course's
	// estimatedHours and the sum of its lessons' estimatedMinutes
	DurationTolerance float64
}

// DefaultOptions returns the default heuristic limits.
func DefaultOptions() Options {
	return Options{
		TitleMax:          100,
		DescriptionMax:    500,
		DurationTolerance: 0.2,
	}
}

// Validator validates lessons, courses and question banks for one run.
type Validator struct {
	reg   *registry.Registry
	diags *lint.Collector
	opts  Options

	// lessons holds the first lesson registered under each ID, for
	// difficulty progression
	lessons map[string]*content.Lesson
}

// New creates a validator that resolves references through reg and reports
// to diags. Zero option values fall back to the defaults.
func New(reg *registry.Registry, diags *lint.Collector, opts Options) *Validator {
	def := DefaultOptions()
	if opts.TitleMax <= 0 {
		opts.TitleMax = def.TitleMax
	}
	if opts.DescriptionMax <= 0 {
		opts.DescriptionMax = def.DescriptionMax
	}
	if opts.DurationTolerance <= 0 {
		opts.DurationTolerance = def.DurationTolerance
	}
	return &Validator{
		reg:     reg,
		diags:   diags,
		opts:    opts,
		lessons: make(map[string]*content.Lesson),
	}
}

// Record dispatches rec to the validator for its kind.
func (v *Validator) Record(rec content.Record) {
	switch r := rec.(type) {
	case *content.Lesson:
		v.Lesson(r)
	case *content.Course:
		v.Course(r)
	case *content.QuestionBank:
		v.QuestionBank(r)
	}
}

// identify checks the ID format of rec and registers it in the global
// namespace. It reports whether the registration succeeded.
func (v *Validator) identify(rec content.Record) bool {
	id := rec.RecordID()
	if id == "" {
		return false
	}
	file := rec.SourcePath()
	if !content.ValidID(id) {
		v.diags.Report(lint.RuleIDFormat, file, "id",
			"id %q must match %s", id, content.IDPattern.String())
	}
	if err := v.reg.Register(id, rec.RecordKind(), file); err != nil {
		var collision *registry.CollisionError
		if errors.As(err, &collision) {
			v.diags.Report(lint.RuleDuplicateID, file, "id",
				"duplicate id %q: already declared by %s %s",
				id, collision.First.Kind, collision.First.Location)
		}
		return false
	}
	return true
}

// required reports each missing required field of rec under ruleID.
func (v *Validator) required(ruleID string, rec content.Record) {
	for _, field := range rec.MissingFields() {
		v.diags.Report(ruleID, rec.SourcePath(), "",
			"missing required field %q", field)
	}
}

func pointer(field string, index int) string {
	return field + "[" + strconv.Itoa(index) + "]"
}

// formatNumber renders a number without a trailing ".0".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// WithCollector returns a validator that shares v's registry and recorded
// lessons but reports to diags.
func (v *Validator) WithCollector(diags *lint.Collector) *Validator {
	clone := *v
	clone.diags = diags
	return &clone
}
