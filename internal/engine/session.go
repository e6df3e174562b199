// Package engine runs the validation pipeline over a content tree.
//
// A run is strictly phased: lessons are loaded and validated first so the
// registry knows every lesson before courses resolve references against it,
// then courses and their prerequisites, then interview banks. Each run owns
// its registry and diagnostic collector.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/leapstack-labs/contentlint/internal/loader"
	"github.com/leapstack-labs/contentlint/internal/registry"
	"github.com/leapstack-labs/contentlint/internal/report"
	"github.com/leapstack-labs/contentlint/internal/validate"
	"github.com/leapstack-labs/contentlint/pkg/content"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// Scope selects which phases a run reports on.
type Scope int

// Run scopes.
const (
	// ScopeLessons validates lessons only.
	ScopeLessons Scope = iota
	// ScopeCourses validates courses. Lessons are loaded to populate the
	// registry but their own diagnostics are not reported.
	ScopeCourses
	// ScopeAll validates lessons, courses and interview banks together.
	ScopeAll
)

func (s Scope) String() string {
	switch s {
	case ScopeLessons:
		return "lessons"
	case ScopeCourses:
		return "courses"
	case ScopeAll:
		return "all"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// Config holds session configuration.
type Config struct {
	// Root is the project root; reported paths are relative to it
	Root string
	// LessonsDir is the path to the lessons directory
	LessonsDir string
	// CoursesDir is the path to the courses directory
	CoursesDir string
	// InterviewDir is the path to the interview question banks directory
	InterviewDir string
	// Options tunes the heuristics
	Options validate.Options
	// Lint selects disabled warning rules (optional)
	Lint *lint.Config
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// Session runs validations for one configuration.
type Session struct {
	cfg    Config
	logger *slog.Logger
	loader *loader.Loader
}

// Result is the outcome of one run.
type Result struct {
	// ID correlates the run's log lines; it never appears in the report
	ID       string
	Scope    Scope
	Report   *report.Report
	Registry *registry.Registry
	// Courses holds every decoded course, in load order
	Courses []*content.Course
}

// NewSession creates a session.
func NewSession(cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		cfg:    cfg,
		logger: logger,
		loader: loader.New(cfg.Root, logger),
	}
}

// run is the mutable state of a single pipeline execution.
type run struct {
	*Session
	logger    *slog.Logger
	reg       *registry.Registry
	diags     *lint.Collector
	validator *validate.Validator
	courses   []*content.Course
}

// Run executes the phases scope needs and returns the report. An error is
// returned only when a configured content path cannot be walked at all;
// everything wrong with the content itself becomes a diagnostic.
func (s *Session) Run(scope Scope) (*Result, error) {
	id := uuid.NewString()
	r := &run{
		Session: s,
		logger:  s.logger.With("run_id", id),
		reg:     registry.New(),
		diags:   lint.NewCollector(s.cfg.Lint),
	}
	r.validator = validate.New(r.reg, r.diags, s.cfg.Options)

	r.logger.Info("starting validation", "scope", scope.String())

	// Lessons always run: courses resolve their references through the
	// registry the lesson phase fills.
	lessons := r.validator
	lessonDiags := r.diags
	if scope == ScopeCourses {
		lessonDiags = lint.NewCollector(s.cfg.Lint)
		lessons = r.validator.WithCollector(lessonDiags)
	}
	if err := r.lessonPhase(lessons, lessonDiags); err != nil {
		return nil, err
	}

	if scope == ScopeCourses || scope == ScopeAll {
		if err := r.coursePhase(); err != nil {
			return nil, err
		}
	}
	if scope == ScopeAll {
		if err := r.interviewPhase(); err != nil {
			return nil, err
		}
	}

	rep := report.New(r.diags.Diagnostics())
	r.logger.Info("validation finished",
		"ids", r.reg.Count(), "errors", len(rep.Errors), "warnings", len(rep.Warnings))

	return &Result{
		ID:       id,
		Scope:    scope,
		Report:   rep,
		Registry: r.reg,
		Courses:  r.courses,
	}, nil
}

func (r *run) lessonPhase(v *validate.Validator, diags *lint.Collector) error {
	batch, err := r.load(r.cfg.LessonsDir, content.KindLesson)
	if err != nil {
		return err
	}
	batch.Report(diags)

	for _, rec := range batch.Records() {
		v.Record(rec)
	}
	return nil
}

func (r *run) coursePhase() error {
	batch, err := r.load(r.cfg.CoursesDir, content.KindCourse)
	if err != nil {
		return err
	}
	batch.Report(r.diags)

	for _, rec := range batch.Records() {
		c := rec.(*content.Course)
		r.courses = append(r.courses, c)
		r.validator.Course(c)
	}
	r.validator.Prerequisites(r.courses)
	return nil
}

func (r *run) interviewPhase() error {
	batch, err := r.load(r.cfg.InterviewDir, content.KindInterviewQuestion)
	if err != nil {
		return err
	}
	batch.Report(r.diags)

	for _, rec := range batch.Records() {
		r.validator.Record(rec)
	}
	return nil
}

func (r *run) load(dir string, kind content.Kind) (*loader.Batch, error) {
	r.logger.Debug("loading content", "kind", kind.String(), "dir", dir)
	batch, err := r.loader.Load(dir, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s content: %w", kind, err)
	}
	r.logger.Debug("loaded content", "kind", kind.String(),
		"files", len(batch.Results), "failures", batch.Failures())
	return batch, nil
}
