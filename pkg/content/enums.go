package content

// Enumerations are string-backed so authored values decode unchanged and
// validators can report the offending value. Valid() is the closed check.

// =============================================================================
// Difficulty
// =============================================================================

// Difficulty is the level of a course, lesson or interview question.
type Difficulty string

// Difficulty levels.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// AllDifficulties returns the difficulty levels in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

// Ordinal maps the difficulty to 1..3, or 0 when the value is not a known level.
func (d Difficulty) Ordinal() int {
	switch d {
	case DifficultyBeginner:
		return 1
	case DifficultyIntermediate:
		return 2
	case DifficultyAdvanced:
		return 3
	default:
		return 0
	}
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool { return d.Ordinal() != 0 }

// =============================================================================
// ModuleKind
// =============================================================================

// ModuleKind is the role a module plays in a lesson's instructional flow.
type ModuleKind string

// Module kinds.
const (
	ModuleHook          ModuleKind = "hook"
	ModuleObjectives    ModuleKind = "objectives"
	ModuleRecall        ModuleKind = "recall"
	ModuleConcept       ModuleKind = "concept"
	ModuleWorkedExample ModuleKind = "worked_example"
	ModuleQuiz          ModuleKind = "quiz"
	ModuleCheckpoint    ModuleKind = "checkpoint"
	ModuleSummary       ModuleKind = "summary"
	ModuleTransfer      ModuleKind = "transfer"
)

// AllModuleKinds returns every module kind.
func AllModuleKinds() []ModuleKind {
	return []ModuleKind{
		ModuleHook, ModuleObjectives, ModuleRecall, ModuleConcept, ModuleWorkedExample,
		ModuleQuiz, ModuleCheckpoint, ModuleSummary, ModuleTransfer,
	}
}

// Valid reports whether k is a known module kind.
func (k ModuleKind) Valid() bool {
	switch k {
	case ModuleHook, ModuleObjectives, ModuleRecall, ModuleConcept, ModuleWorkedExample,
		ModuleQuiz, ModuleCheckpoint, ModuleSummary, ModuleTransfer:
		return true
	default:
		return false
	}
}

// Opens reports whether a lesson may start with this kind of module.
func (k ModuleKind) Opens() bool {
	return k == ModuleHook || k == ModuleObjectives
}

// Closes reports whether a lesson may end with this kind of module.
func (k ModuleKind) Closes() bool {
	return k == ModuleSummary || k == ModuleTransfer || k == ModuleCheckpoint
}

// =============================================================================
// BloomLevel
// =============================================================================

// BloomLevel is a cognitive level of Bloom's taxonomy.
type BloomLevel string

// Bloom levels, lowest to highest.
const (
	BloomRemember   BloomLevel = "remember"
	BloomUnderstand BloomLevel = "understand"
	BloomApply      BloomLevel = "apply"
	BloomAnalyze    BloomLevel = "analyze"
	BloomEvaluate   BloomLevel = "evaluate"
	BloomCreate     BloomLevel = "create"
)

// AllBloomLevels returns the Bloom levels in ascending order.
func AllBloomLevels() []BloomLevel {
	return []BloomLevel{BloomRemember, BloomUnderstand, BloomApply, BloomAnalyze, BloomEvaluate, BloomCreate}
}

// Valid reports whether b is a known Bloom level.
func (b BloomLevel) Valid() bool {
	switch b {
	case BloomRemember, BloomUnderstand, BloomApply, BloomAnalyze, BloomEvaluate, BloomCreate:
		return true
	default:
		return false
	}
}

// =============================================================================
// FadePattern
// =============================================================================

// FadePattern describes how scaffolding is withdrawn in a worked example.
type FadePattern string

// Fade patterns.
const (
	FadeLinear      FadePattern = "linear"
	FadeExponential FadePattern = "exponential"
	FadeCustom      FadePattern = "custom"
)

// AllFadePatterns returns every fade pattern.
func AllFadePatterns() []FadePattern {
	return []FadePattern{FadeLinear, FadeExponential, FadeCustom}
}

// Valid reports whether p is a known fade pattern.
func (p FadePattern) Valid() bool {
	switch p {
	case FadeLinear, FadeExponential, FadeCustom:
		return true
	default:
		return false
	}
}

// =============================================================================
// Condition
// =============================================================================

// Condition is the unlock condition of a structured gating requirement.
type Condition string

// Gating conditions.
const (
	ConditionCompleted      Condition = "completed"
	ConditionScoreAbove     Condition = "score_above"
	ConditionAllCheckpoints Condition = "all_checkpoints"
)

// AllConditions returns every gating condition.
func AllConditions() []Condition {
	return []Condition{ConditionCompleted, ConditionScoreAbove, ConditionAllCheckpoints}
}

// Valid reports whether c is a known condition.
func (c Condition) Valid() bool {
	switch c {
	case ConditionCompleted, ConditionScoreAbove, ConditionAllCheckpoints:
		return true
	default:
		return false
	}
}

// NeedsThreshold reports whether the condition carries a numeric threshold.
func (c Condition) NeedsThreshold() bool {
	return c == ConditionScoreAbove
}

// =============================================================================
// Category
// =============================================================================

// Category is the topic of an interview question.
type Category string

// Interview question categories.
const (
	CategorySwift         Category = "swift"
	CategoryIOSSDK        Category = "ios-sdk"
	CategoryMemory        Category = "memory"
	CategoryPatterns      Category = "patterns"
	CategoryBestPractices Category = "best-practices"
	CategoryConcurrency   Category = "concurrency"
	CategoryArchitecture  Category = "architecture"
)

// AllCategories returns every interview question category.
func AllCategories() []Category {
	return []Category{
		CategorySwift, CategoryIOSSDK, CategoryMemory, CategoryPatterns,
		CategoryBestPractices, CategoryConcurrency, CategoryArchitecture,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategorySwift, CategoryIOSSDK, CategoryMemory, CategoryPatterns,
		CategoryBestPractices, CategoryConcurrency, CategoryArchitecture:
		return true
	default:
		return false
	}
}

// Join renders enum values as a comma-separated list for messages.
func Join[T ~string](values []T) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ", "
		}
		out += string(v)
	}
	return out
}
