package validate

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/contentlint/pkg/content"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// QuestionBank validates an interview question bank and registers its ID.
// Question IDs are scoped to the bank.
func (v *Validator) QuestionBank(b *content.QuestionBank) {
	file := b.SourcePath()

	v.required(lint.RuleBankRequired, b)
	v.identify(b)

	counts := make(map[string]int, len(b.Questions))
	var order []string

	for i, q := range b.Questions {
		at := pointer("questions", i)
		name := "#" + strconv.Itoa(i+1)
		if q.ID != "" {
			name = `"` + q.ID + `"`
		}

		for _, field := range q.MissingFields() {
			v.diags.Report(lint.RuleQuestionRequired, file, at,
				"question %s is missing required field %q", name, field)
		}
		if q.Category != "" && !q.Category.Valid() {
			v.diags.Report(lint.RuleQuestionCategory, file, at,
				"question %s has unknown category %q (expected one of: %s)",
				name, q.Category, content.Join(content.AllCategories()))
		}
		if q.Difficulty != "" && !q.Difficulty.Valid() {
			v.diags.Report(lint.RuleQuestionDifficulty, file, at,
				"question %s has unknown difficulty %q (expected one of: %s)",
				name, q.Difficulty, content.Join(content.AllDifficulties()))
		}

		if q.ID == "" {
			continue
		}
		if counts[q.ID] == 0 {
			order = append(order, q.ID)
		}
		counts[q.ID]++
	}

	var duplicates []string
	for _, id := range order {
		if counts[id] > 1 {
			duplicates = append(duplicates, id)
		}
	}
	if len(duplicates) > 0 {
		v.diags.Report(lint.RuleQuestionDuplicateIDs, file, "questions",
			"duplicate question ids: %s", strings.Join(duplicates, ", "))
	}
}
