package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T) []lint.Diagnostic {
	t.Helper()
	c := lint.NewCollector(nil)
	c.Report(lint.RuleFlowOpening, "lessons/a.yaml", "modules[0]", "lesson should open with a hook")
	c.Report(lint.RuleCourseLessonNotFound, "courses/ios.yaml", "lessons[1]", "referenced lesson %q not found", "ios-102")
	c.Report(lint.RuleNoContent, "interview", "", "no content found")
	c.Report(lint.RuleDuplicateID, "lessons/b.yaml", "id", "duplicate id %q", "ios-101")
	return c.Diagnostics()
}

func TestNew_PartitionsInEmissionOrder(t *testing.T) {
	r := New(collect(t))

	require.Len(t, r.Errors, 2)
	require.Len(t, r.Warnings, 2)
	assert.Equal(t, lint.RuleCourseLessonNotFound, r.Errors[0].RuleID)
	assert.Equal(t, lint.RuleDuplicateID, r.Errors[1].RuleID)
	assert.Equal(t, lint.RuleFlowOpening, r.Warnings[0].RuleID)
	assert.Equal(t, lint.RuleNoContent, r.Warnings[1].RuleID)
}

func TestPassedAndExitCode(t *testing.T) {
	tests := []struct {
		name       string
		diags      []lint.Diagnostic
		wantPassed bool
		wantCode   int
	}{
		{"empty", nil, true, 0},
		{"warnings only", collect(t)[:1], true, 0},
		{"with errors", collect(t), false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.diags)
			assert.Equal(t, tt.wantPassed, r.Passed())
			assert.Equal(t, tt.wantCode, r.ExitCode())
		})
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(collect(t)).WriteText(&buf))

	want := `2 Error(s)
  courses/ios.yaml#lessons[1]: [CR05] referenced lesson "ios-102" not found
  lessons/b.yaml#id: [ID01] duplicate id "ios-101"
2 Warning(s)
  lessons/a.yaml#modules[0]: [LS09] lesson should open with a hook
  interview: [CL02] no content found
✗ Validation failed
`
	assert.Equal(t, want, buf.String())
}

func TestWriteText_Clean(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(nil).WriteText(&buf))
	assert.Equal(t, "0 Error(s)\n0 Warning(s)\n✓ Validation passed\n", buf.String())
}

func TestWriteText_Deterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, New(collect(t)).WriteText(&first))
	require.NoError(t, New(collect(t)).WriteText(&second))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(collect(t)).WriteMarkdown(&buf))

	out := buf.String()
	assert.Contains(t, out, "## 2 Error(s)")
	assert.Contains(t, out, "- `courses/ios.yaml#lessons[1]` **CR05** referenced lesson \"ios-102\" not found")
	assert.Contains(t, out, "## 2 Warning(s)")
	assert.Contains(t, out, "**✗ Validation failed**")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(collect(t)).WriteJSON(&buf))

	var got struct {
		Summary struct {
			Errors   int  `json:"errors"`
			Warnings int  `json:"warnings"`
			Passed   bool `json:"passed"`
		} `json:"summary"`
		Diagnostics []map[string]any `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, 2, got.Summary.Errors)
	assert.Equal(t, 2, got.Summary.Warnings)
	assert.False(t, got.Summary.Passed)
	require.Len(t, got.Diagnostics, 4)
	assert.Equal(t, "CR05", got.Diagnostics[0]["rule"])
	assert.Equal(t, "error", got.Diagnostics[0]["severity"])
	assert.Equal(t, "reference", got.Diagnostics[0]["category"])
	assert.Equal(t, "lessons[1]", got.Diagnostics[0]["pointer"])
	assert.Equal(t, "warning", got.Diagnostics[3]["severity"])
	assert.NotContains(t, got.Diagnostics[3], "pointer")
}

func TestWriteJSON_EmptyDiagnosticsIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(nil).WriteJSON(&buf))
	assert.Contains(t, buf.String(), `"diagnostics": []`)
}
