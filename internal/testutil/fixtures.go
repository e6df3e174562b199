package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes data to path below a test directory, creating parents.
func WriteFile(t testing.TB, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// WriteJSON writes v as indented JSON to path.
func WriteJSON(t testing.TB, path string, v any) {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal %s: %v", path, err)
	}
	WriteFile(t, path, string(data))
}

// Lesson returns a lesson document that passes every check: hook opening,
// a concept, a quiz after it and a summary close.
func Lesson(id string) map[string]any {
	return map[string]any{
		"id":          id,
		"title":       "Lesson " + id,
		"description": "Walks through " + id + ".",
		"difficulty":  "beginner",
		"modules": []any{
			map[string]any{"id": "hook", "kind": "hook", "content": "Why does this matter?"},
			map[string]any{"id": "concept", "kind": "concept", "content": "The idea."},
			map[string]any{"id": "quiz", "kind": "quiz", "question": map[string]any{"prompt": "What is it?"}},
			map[string]any{"id": "summary", "kind": "summary", "text": "Recap."},
		},
		"objectives": []any{
			map[string]any{"text": "Explain the idea", "bloomLevel": "understand"},
		},
	}
}

// Course returns a course document whose lessons are ordered 1..N in the
// given sequence, each estimated at 30 minutes.
func Course(id string, lessonIDs ...string) map[string]any {
	lessons := make([]any, 0, len(lessonIDs))
	for i, lid := range lessonIDs {
		lessons = append(lessons, map[string]any{
			"lessonId":         lid,
			"order":            i + 1,
			"estimatedMinutes": 30,
		})
	}
	return map[string]any{
		"id":             id,
		"title":          "Course " + id,
		"description":    "Covers " + id + ".",
		"difficulty":     "beginner",
		"estimatedHours": float64(len(lessonIDs)) * 0.5,
		"lessons":        lessons,
	}
}

// QuestionBank returns an interview bank with one valid question per ID.
func QuestionBank(id string, questionIDs ...string) map[string]any {
	questions := make([]any, 0, len(questionIDs))
	for _, qid := range questionIDs {
		questions = append(questions, map[string]any{
			"id":          qid,
			"category":    "swift",
			"difficulty":  "intermediate",
			"prompt":      "Explain " + qid + ".",
			"modelAnswer": "It is " + qid + ".",
		})
	}
	return map[string]any{
		"id":        id,
		"title":     "Bank " + id,
		"questions": questions,
	}
}
