package lint

// Rule IDs emitted by the loader and validators.
const (
	RuleInvalidContent = "CL01"
	RuleNoContent      = "CL02"

	RuleDuplicateID = "ID01"
	RuleIDFormat    = "ID02"

	RuleLessonRequired          = "LS01"
	RuleLessonTitleLength       = "LS02"
	RuleLessonDescriptionLength = "LS03"
	RuleLessonNoModules         = "LS04"
	RuleModuleMissingID         = "LS05"
	RuleModuleDuplicateID       = "LS06"
	RuleModuleKind              = "LS07"
	RuleModuleEmpty             = "LS08"
	RuleFlowOpening             = "LS09"
	RuleFlowNoConcept           = "LS10"
	RuleFlowClosing             = "LS11"
	RuleFlowQuizBeforeConcept   = "LS12"
	RuleBloomLevel              = "LS13"
	RuleFadePattern             = "LS14"
	RuleFadeScaffolding         = "LS15"
	RuleFadeEmptyInstruction    = "LS16"
	RuleFadeNotDecreasing       = "LS17"
	RuleLessonDifficulty        = "LS18"

	RuleCourseRequired           = "CR01"
	RuleCourseDifficulty         = "CR02"
	RuleCourseEstimatedHours     = "CR03"
	RuleCourseNoLessons          = "CR04"
	RuleCourseLessonNotFound     = "CR05"
	RuleCourseDuplicateOrder     = "CR06"
	RuleCourseOrderGap           = "CR07"
	RuleGatingUnresolved         = "CR08"
	RuleGatingCondition          = "CR09"
	RuleGatingThreshold          = "CR10"
	RuleDurationMismatch         = "CR11"
	RuleDifficultyJump           = "CR12"
	RulePrerequisiteUnresolved   = "CR13"
	RulePrerequisiteCompletion   = "CR14"
	RulePrerequisiteCycle        = "CR15"
	RuleCourseLessonRefField     = "CR16"
	RulePrerequisiteMissingField = "CR17"

	RuleBankRequired         = "IV01"
	RuleQuestionRequired     = "IV02"
	RuleQuestionCategory     = "IV03"
	RuleQuestionDifficulty   = "IV04"
	RuleQuestionDuplicateIDs = "IV05"
)

func init() {
	for _, rule := range builtinRules {
		Register(rule)
	}
}

var builtinRules = []Rule{
	// Content loading
	{
		ID:          RuleInvalidContent,
		Name:        "content.invalid",
		Category:    CategoryParse,
		Severity:    SeverityError,
		Description: "Content file is not structurally decodable",
		Rationale:   "A file that cannot be decoded contributes nothing to the content graph.",
	},
	{
		ID:          RuleNoContent,
		Name:        "content.empty-directory",
		Category:    CategoryDiscovery,
		Severity:    SeverityWarning,
		Description: "Content directory contains no content files",
		Rationale:   "Content sets may be partial while authoring; an empty tree is reported, not fatal.",
	},

	// Global identifier namespace
	{
		ID:          RuleDuplicateID,
		Name:        "id.duplicate",
		Category:    CategoryUniqueness,
		Severity:    SeverityError,
		Description: "ID is already used by another lesson, course or question bank",
		Rationale:   "All content IDs share one namespace so links and progress records are unambiguous.",
		BadExample:  "lessons/a.json: {\"id\": \"ios-101\"}\nlessons/b.json: {\"id\": \"ios-101\"}",
		GoodExample: "lessons/a.json: {\"id\": \"ios-101\"}\nlessons/b.json: {\"id\": \"ios-102\"}",
	},
	{
		ID:          RuleIDFormat,
		Name:        "id.format",
		Category:    CategorySchema,
		Severity:    SeverityError,
		Description: "ID must match [a-z0-9-]+",
		BadExample:  "{\"id\": \"iOS_101\"}",
		GoodExample: "{\"id\": \"ios-101\"}",
	},

	// Lessons
	{ID: RuleLessonRequired, Name: "lesson.required-field", Category: CategorySchema, Severity: SeverityError,
		Description: "Lesson is missing a required field (id, title, description, modules, objectives)"},
	{ID: RuleLessonTitleLength, Name: "lesson.title-length", Category: CategoryPedagogical, Severity: SeverityWarning,
		Description: "Lesson title is longer than the configured limit"},
	{ID: RuleLessonDescriptionLength, Name: "lesson.description-length", Category: CategoryPedagogical, Severity: SeverityWarning,
		Description: "Lesson description is longer than the configured limit"},
	{ID: RuleLessonNoModules, Name: "lesson.no-modules", Category: CategorySchema, Severity: SeverityError,
		Description: "Lesson must contain at least one module"},
	{ID: RuleModuleMissingID, Name: "module.missing-id", Category: CategorySchema, Severity: SeverityError,
		Description: "Module has no id"},
	{ID: RuleModuleDuplicateID, Name: "module.duplicate-id", Category: CategoryUniqueness, Severity: SeverityError,
		Description: "Module id is used twice within the lesson"},
	{ID: RuleModuleKind, Name: "module.kind", Category: CategorySchema, Severity: SeverityError,
		Description: "Module kind is missing or not one of the known module kinds"},
	{ID: RuleModuleEmpty, Name: "module.empty", Category: CategoryPedagogical, Severity: SeverityWarning,
		Description: "Module has no content, text or question payload"},
	{
		ID:          RuleFlowOpening,
		Name:        "flow.opening",
		Category:    CategoryPedagogical,
		Severity:    SeverityWarning,
		Description: "First module should be a hook or objectives module",
		Rationale:   "Lessons that open by activating interest or stating goals improve retention.",
	},
	{ID: RuleFlowNoConcept, Name: "flow.no-concept", Category: CategoryPedagogical, Severity: SeverityWarning,
		Description: "Lesson has no concept module"},
	{ID: RuleFlowClosing, Name: "flow.closing", Category: CategoryPedagogical, Severity: SeverityWarning,
		Description: "Last module should be a summary, transfer or checkpoint module"},
	{ID: RuleFlowQuizBeforeConcept, Name: "flow.quiz-before-concept", Category: CategoryPedagogical, Severity: SeverityWarning,
		Description: "Quiz module appears before any concept module"},
	{ID: RuleBloomLevel, Name: "objective.bloom-level", Category: CategorySchema, Severity: SeverityError,
		Description: "Objective bloomLevel is not a Bloom's taxonomy level"},
	{ID: RuleFadePattern, Name: "fading.pattern", Category: CategorySchema, Severity: SeverityError,
		Description: "fadePattern must be linear, exponential or custom"},
	{ID: RuleFadeScaffolding, Name: "fading.scaffolding-range", Category: CategorySchema, Severity: SeverityError,
		Description: "Fade step scaffolding must be a number in [0,1]"},
	{ID: RuleFadeEmptyInstruction, Name: "fading.empty-instruction", Category: CategoryPedagogical, Severity: SeverityWarning,
		Description: "Fade step has an empty instruction"},
	{
		ID:          RuleFadeNotDecreasing,
		Name:        "fading.not-decreasing",
		Category:    CategoryPedagogical,
		Severity:    SeverityWarning,
		Description: "Scaffolding increases between consecutive fade steps",
		Rationale:   "A fading worked example withdraws support step by step.",
		BadExample:  "steps: [{scaffolding: 0.4}, {scaffolding: 0.8}]",
		GoodExample: "steps: [{scaffolding: 0.8}, {scaffolding: 0.4}]",
	},
	{ID: RuleLessonDifficulty, Name: "lesson.difficulty", Category: CategorySchema, Severity: SeverityError,
		Description: "Lesson difficulty must be beginner, intermediate or advanced"},

	// Courses
	{ID: RuleCourseRequired, Name: "course.required-field", Category: CategorySchema, Severity: SeverityError,
		Description: "Course is missing a required field (id, title, description, lessons, difficulty)"},
	{ID: RuleCourseDifficulty, Name: "course.difficulty", Category: CategorySchema, Severity: SeverityError,
		Description: "Course difficulty must be beginner, intermediate or advanced"},
	{ID: RuleCourseEstimatedHours, Name: "course.estimated-hours", Category: CategorySchema, Severity: SeverityError,
		Description: "estimatedHours must be a positive number"},
	{ID: RuleCourseNoLessons, Name: "course.no-lessons", Category: CategorySchema, Severity: SeverityError,
		Description: "Course lessons must be a non-empty list"},
	{ID: RuleCourseLessonNotFound, Name: "course.lesson-not-found", Category: CategoryReference, Severity: SeverityError,
		Description: "Course references a lesson that was not loaded"},
	{ID: RuleCourseDuplicateOrder, Name: "course.duplicate-order", Category: CategoryUniqueness, Severity: SeverityError,
		Description: "Two lesson references share the same order"},
	{
		ID:          RuleCourseOrderGap,
		Name:        "course.order-gap",
		Category:    CategoryPedagogical,
		Severity:    SeverityWarning,
		Description: "Lesson order sequence skips a position",
		BadExample:  "lessons: [{order: 1}, {order: 3}]",
		GoodExample: "lessons: [{order: 1}, {order: 2}]",
	},
	{ID: RuleGatingUnresolved, Name: "gating.unresolved", Category: CategoryReference, Severity: SeverityError,
		Description: "Gating requirement references an unknown lesson"},
	{ID: RuleGatingCondition, Name: "gating.condition", Category: CategorySchema, Severity: SeverityError,
		Description: "Gating condition must be completed, score_above or all_checkpoints"},
	{ID: RuleGatingThreshold, Name: "gating.threshold", Category: CategorySchema, Severity: SeverityError,
		Description: "score_above requires a numeric threshold"},
	{
		ID:          RuleDurationMismatch,
		Name:        "course.duration-mismatch",
		Category:    CategoryPedagogical,
		Severity:    SeverityWarning,
		Description: "Sum of lesson estimatedMinutes disagrees with course estimatedHours",
		Rationale:   "Authors round estimates, so only disagreements beyond the tolerance are reported.",
	},
	{
		ID:          RuleDifficultyJump,
		Name:        "course.difficulty-jump",
		Category:    CategoryPedagogical,
		Severity:    SeverityWarning,
		Description: "Lesson difficulty jumps more than one level above anything seen earlier in the course",
	},
	{ID: RulePrerequisiteUnresolved, Name: "prerequisite.unresolved", Category: CategoryReference, Severity: SeverityWarning,
		Description: "Prerequisite course is not part of this batch"},
	{ID: RulePrerequisiteCompletion, Name: "prerequisite.completion", Category: CategorySchema, Severity: SeverityError,
		Description: "completionRequired must be a number"},
	{
		ID:          RulePrerequisiteCycle,
		Name:        "prerequisite.cycle",
		Category:    CategoryReference,
		Severity:    SeverityError,
		Description: "Course prerequisites form a cycle",
		Rationale:   "A cycle makes every course on it impossible to unlock.",
	},
	{ID: RuleCourseLessonRefField, Name: "course.lesson-ref-field", Category: CategorySchema, Severity: SeverityError,
		Description: "Lesson reference is missing lessonId or an integer order"},
	{ID: RulePrerequisiteMissingField, Name: "prerequisite.missing-course-id", Category: CategorySchema, Severity: SeverityError,
		Description: "Structured prerequisite has no courseId"},

	// Interview question banks
	{ID: RuleBankRequired, Name: "bank.required-field", Category: CategorySchema, Severity: SeverityError,
		Description: "Question bank is missing a required field (id, title, questions)"},
	{ID: RuleQuestionRequired, Name: "question.required-field", Category: CategorySchema, Severity: SeverityError,
		Description: "Question is missing a required field (id, category, difficulty, prompt, modelAnswer)"},
	{ID: RuleQuestionCategory, Name: "question.category", Category: CategorySchema, Severity: SeverityError,
		Description: "Question category is not a known category"},
	{ID: RuleQuestionDifficulty, Name: "question.difficulty", Category: CategorySchema, Severity: SeverityError,
		Description: "Question difficulty must be beginner, intermediate or advanced"},
	{ID: RuleQuestionDuplicateIDs, Name: "question.duplicate-id", Category: CategoryUniqueness, Severity: SeverityError,
		Description: "Question ids are repeated within the bank"},
}
