// application/serviceimpl/ai_service_test.go
package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeStripsMarkupFromPrompt(t *testing.T) {
	upstream := &fakeSummarizer{response: "<br>Summary:<br><ul><li>done</li></ul>"}
	svc := NewAIService(upstream)

	resp := svc.Summarize(context.Background(), "<h1>Plan</h1><p>Ship &amp; celebrate</p>")
	require.True(t, resp.Success)

	prompt := upstream.lastPrompt()
	assert.Contains(t, prompt, "Plan Ship & celebrate")
	assert.NotContains(t, prompt, "<h1>")
	assert.NotContains(t, prompt, "<p>")
}

func TestSummarizeRejectsEmptyContent(t *testing.T) {
	upstream := &fakeSummarizer{}
	svc := NewAIService(upstream)

	resp := svc.Summarize(context.Background(), "<p>   </p>")
	require.False(t, resp.Success)
	assert.Equal(t, "content is empty", resp.Error)
	assert.Zero(t, upstream.callCount(), "no upstream call for empty content")
}

func TestSummarizeTruncatesOverBudgetInput(t *testing.T) {
	upstream := &fakeSummarizer{response: "Summary: long note"}
	svc := NewAIService(upstream)

	content := strings.Repeat("a", summarizeMaxChars+500)
	resp := svc.Summarize(context.Background(), content)
	require.True(t, resp.Success)

	// original length is reported pre-truncation, the prompt carries the
	// truncated text with the ellipsis marker
	assert.Equal(t, summarizeMaxChars+500, resp.OriginalLength)
	assert.Contains(t, upstream.lastPrompt(), strings.Repeat("a", summarizeMaxChars)+"...")
	assert.NotContains(t, upstream.lastPrompt(), strings.Repeat("a", summarizeMaxChars+1))
}

func TestTruncationNeverSplitsARune(t *testing.T) {
	upstream := &fakeSummarizer{response: "Summary: ok"}
	svc := NewAIService(upstream)

	// Multi-byte runes straddling the cut point must be dropped whole, not
	// sliced into invalid UTF-8.
	content := strings.Repeat("é", summarizeMaxChars)
	resp := svc.Summarize(context.Background(), content)
	require.True(t, resp.Success)

	prompt := upstream.lastPrompt()
	assert.True(t, utf8.ValidString(prompt), "truncated prompt must stay valid UTF-8")
	assert.True(t, strings.HasSuffix(prompt, "é..."))

	assert.Equal(t, "short", truncateAtRune("short", summarizeMaxChars))
	assert.Equal(t, "ab...", truncateAtRune("abéx", 3), "cut backs up to the rune start")
}

func TestSummarizeSanitizesModelOutput(t *testing.T) {
	upstream := &fakeSummarizer{
		response: `<br>Summary:<br><script>alert(1)</script><ul><li onclick="x()">safe</li></ul><em>nope</em>`,
	}
	svc := NewAIService(upstream)

	resp := svc.Summarize(context.Background(), "some note text")
	require.True(t, resp.Success)

	assert.NotContains(t, resp.Response, "<script>")
	assert.NotContains(t, resp.Response, "onclick")
	assert.NotContains(t, resp.Response, "<em>")
	assert.Contains(t, resp.Response, "<ul>")
	assert.Contains(t, resp.Response, "<li>safe</li>")
}

func TestSummarizePrefixesMissingHeader(t *testing.T) {
	upstream := &fakeSummarizer{response: "<ul><li>point one</li></ul>"}
	svc := NewAIService(upstream)

	resp := svc.Summarize(context.Background(), "note")
	require.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.Response, "<br>Summary:<br>"), resp.Response)

	// already-prefixed output is left alone
	upstream.response = "<br>Summary:<br><ul><li>x</li></ul>"
	resp = svc.Summarize(context.Background(), "note")
	require.True(t, resp.Success)
	assert.Equal(t, 1, strings.Count(resp.Response, "Summary:"))
}

func TestSummarizeSelectionRejectsOverCap(t *testing.T) {
	upstream := &fakeSummarizer{response: "Summary: short"}
	svc := NewAIService(upstream)

	resp := svc.SummarizeSelection(context.Background(), strings.Repeat("b", selectionMaxChars+1))
	require.False(t, resp.Success)
	assert.Equal(t, errCategoryTooLong, resp.Error)
	assert.Zero(t, upstream.callCount(), "over-cap selection never reaches upstream")

	resp = svc.SummarizeSelection(context.Background(), strings.Repeat("b", selectionMaxChars))
	require.True(t, resp.Success)
}

func TestSummarizeSelectionRejectsEmpty(t *testing.T) {
	svc := NewAIService(&fakeSummarizer{})

	resp := svc.SummarizeSelection(context.Background(), "")
	require.False(t, resp.Success)
	assert.Equal(t, "selection is empty", resp.Error)
}

func TestExtractTasksParsesProseWrappedArray(t *testing.T) {
	upstream := &fakeSummarizer{
		response: `Here are the tasks I found:
[{"task": "buy milk", "priority": "HIGH"}, {"task": "  ", "priority": "low"}, {"task": "call dentist", "priority": "whenever", "dueDate": "2026-09-01"}]
Let me know if you need more.`,
	}
	svc := NewAIService(upstream)

	resp := svc.ExtractTasks(context.Background(), "shopping and errands note")
	require.True(t, resp.Success)
	require.Len(t, resp.Tasks, 2)

	assert.Equal(t, "buy milk", resp.Tasks[0].Task)
	assert.Equal(t, "high", resp.Tasks[0].Priority) // normalized to lowercase
	assert.Equal(t, "call dentist", resp.Tasks[1].Task)
	assert.Equal(t, "medium", resp.Tasks[1].Priority) // unknown level defaults
	assert.Equal(t, "2026-09-01", resp.Tasks[1].DueDate)
	assert.Equal(t, 2, resp.ExtractedLength)
}

func TestExtractTasksHandlesEmptyArray(t *testing.T) {
	upstream := &fakeSummarizer{response: "[]"}
	svc := NewAIService(upstream)

	resp := svc.ExtractTasks(context.Background(), "nothing actionable here")
	require.True(t, resp.Success)
	assert.Empty(t, resp.Tasks)
	assert.Equal(t, 0, resp.ExtractedLength)
}

func TestExtractTasksSoftFailsOnMalformedOutput(t *testing.T) {
	svc := NewAIService(&fakeSummarizer{response: "I could not find any tasks, sorry."})

	resp := svc.ExtractTasks(context.Background(), "note")
	require.False(t, resp.Success)
	assert.Equal(t, "no task array found in AI response", resp.Error)
	assert.Equal(t, "I could not find any tasks, sorry.", resp.Raw)

	svc = NewAIService(&fakeSummarizer{response: `[{"task": 42}]`})
	resp = svc.ExtractTasks(context.Background(), "note")
	require.False(t, resp.Success)
	assert.Equal(t, "AI response was not a valid task array", resp.Error)
	assert.NotEmpty(t, resp.Raw)
}

func TestExtractTasksSkipsBracketsInsideStrings(t *testing.T) {
	upstream := &fakeSummarizer{
		response: `[{"task": "fix array[0] bug", "priority": "low", "description": "see [notes]"}]`,
	}
	svc := NewAIService(upstream)

	resp := svc.ExtractTasks(context.Background(), "note")
	require.True(t, resp.Success)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, "fix array[0] bug", resp.Tasks[0].Task)
}

func TestUpstreamErrorClassification(t *testing.T) {
	cases := []struct {
		name string
		err  string
		want string
	}{
		{"api key", "invalid x-api-key header", errCategoryAPIKey},
		{"auth", "authentication failed", errCategoryAPIKey},
		{"quota", "monthly quota exhausted", errCategoryQuota},
		{"rate limit", "429 rate_limit_error", errCategoryQuota},
		{"too long", "prompt is too long: maximum context length exceeded", errCategoryTooLong},
		{"overloaded", "529 overloaded_error", errCategoryOverloaded},
		{"unknown", "connection reset by peer", errCategoryGeneric},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewAIService(&fakeSummarizer{err: errors.New(tc.err)})
			resp := svc.Summarize(context.Background(), "note text")
			require.False(t, resp.Success)
			assert.Equal(t, tc.want, resp.Error)
		})
	}
}
