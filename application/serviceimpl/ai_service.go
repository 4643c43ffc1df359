// application/serviceimpl/ai_service.go
package serviceimpl

import (
	"context"
	"encoding/json"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/tszwong/notizen-api/domain/dto"
	"github.com/tszwong/notizen-api/domain/port"
	"github.com/tszwong/notizen-api/domain/service"
)

const (
	// summarizeMaxChars - full-document input budget; over-budget input is
	// truncated with an ellipsis before the upstream call.
	summarizeMaxChars = 8000

	// selectionMaxChars - selection-only hard cap; over-cap input is
	// rejected outright instead of truncated.
	selectionMaxChars = 2000

	summarizeMaxTokens = 1024
	extractMaxTokens   = 2048
)

// Upstream error categories. The provider has no structured error contract;
// classification is best-effort substring sniffing on the error message.
const (
	errCategoryAPIKey     = "AI service is not configured correctly (API key). Please contact support."
	errCategoryQuota      = "AI service quota exceeded. Please try again later."
	errCategoryTooLong    = "The note is too long for the AI service to process."
	errCategoryOverloaded = "AI service is overloaded right now. Please try again in a moment."
	errCategoryGeneric    = "AI request failed. Please try again."
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

type aiService struct {
	summarizer port.Summarizer
	sanitizer  *bluemonday.Policy
}

// NewAIService creates the AI action gateway over the upstream model client.
func NewAIService(summarizer port.Summarizer) service.AIService {
	// Model output is untrusted text: allow only the markup the prompt
	// contract promises, strip everything else.
	policy := bluemonday.NewPolicy()
	policy.AllowElements("ul", "ol", "li", "br", "strong")

	return &aiService{
		summarizer: summarizer,
		sanitizer:  policy,
	}
}

// Summarize condenses a whole note. Over-budget input is truncated before
// the call.
func (s *aiService) Summarize(ctx context.Context, content string) *dto.SummarizeResponse {
	text := stripMarkup(content)
	if text == "" {
		return &dto.SummarizeResponse{Success: false, Error: "content is empty"}
	}

	originalLength := len(text)
	text = truncateAtRune(text, summarizeMaxChars)

	return s.summarize(ctx, text, originalLength)
}

// SummarizeSelection condenses a selected passage. Over-cap input is a
// validation error, not a truncation.
func (s *aiService) SummarizeSelection(ctx context.Context, content string) *dto.SummarizeResponse {
	text := stripMarkup(content)
	if text == "" {
		return &dto.SummarizeResponse{Success: false, Error: "selection is empty"}
	}
	if len(text) > selectionMaxChars {
		return &dto.SummarizeResponse{Success: false, Error: errCategoryTooLong}
	}

	return s.summarize(ctx, text, len(text))
}

func (s *aiService) summarize(ctx context.Context, text string, originalLength int) *dto.SummarizeResponse {
	prompt := "Summarize the following note as a concise bullet list. " +
		"Respond with HTML using only <ul>, <ol>, <li>, <br> and <strong> tags — " +
		"no markdown, no emphasis tags. Begin the response with <br>Summary:<br>. " +
		"Always finish the final list item.\n\n" + text

	raw, err := s.summarizer.Complete(ctx, prompt, summarizeMaxTokens)
	if err != nil {
		return &dto.SummarizeResponse{Success: false, Error: classifyUpstreamError(err.Error())}
	}

	out := s.sanitizer.Sanitize(strings.TrimSpace(raw))
	if !strings.Contains(out, "Summary:") {
		out = "<br>Summary:<br>" + out
	}

	return &dto.SummarizeResponse{
		Success:        true,
		Response:       out,
		OriginalLength: originalLength,
		SummaryLength:  len(out),
	}
}

// ExtractTasks asks the model for a JSON array of task objects. The model
// may wrap the array in prose; the first bracket-delimited array substring
// is pulled out before parsing. Parse problems are a soft failure with the
// raw upstream text attached — callers must always be prepared for an
// empty or malformed result.
func (s *aiService) ExtractTasks(ctx context.Context, content string) *dto.ExtractTasksResponse {
	text := stripMarkup(content)
	if text == "" {
		return &dto.ExtractTasksResponse{Success: false, Error: "content is empty"}
	}

	originalLength := len(text)
	text = truncateAtRune(text, summarizeMaxChars)

	prompt := `Extract actionable tasks from the following note. Respond with a JSON array only, no prose. Each element: {"task": string (required), "priority": "low"|"medium"|"high" (required), "dueDate": "YYYY-MM-DD" (optional), "description": string (optional), "tags": [string] (optional)}. Respond with [] if there are no tasks.

` + text

	raw, err := s.summarizer.Complete(ctx, prompt, extractMaxTokens)
	if err != nil {
		return &dto.ExtractTasksResponse{Success: false, Error: classifyUpstreamError(err.Error())}
	}

	arr, ok := extractJSONArray(raw)
	if !ok {
		return &dto.ExtractTasksResponse{
			Success: false,
			Error:   "no task array found in AI response",
			Raw:     raw,
		}
	}

	var parsed []dto.ExtractedTask
	if err := json.Unmarshal([]byte(arr), &parsed); err != nil {
		return &dto.ExtractTasksResponse{
			Success: false,
			Error:   "AI response was not a valid task array",
			Raw:     raw,
		}
	}

	tasks := make([]dto.ExtractedTask, 0, len(parsed))
	for _, t := range parsed {
		t.Task = strings.TrimSpace(t.Task)
		if t.Task == "" {
			continue
		}
		switch strings.ToLower(t.Priority) {
		case "low", "medium", "high":
			t.Priority = strings.ToLower(t.Priority)
		default:
			t.Priority = "medium"
		}
		tasks = append(tasks, t)
	}

	return &dto.ExtractTasksResponse{
		Success:         true,
		Tasks:           tasks,
		OriginalLength:  originalLength,
		ExtractedLength: len(tasks),
	}
}

// stripMarkup flattens rich HTML to plain text for the model.
func stripMarkup(content string) string {
	text := tagPattern.ReplaceAllString(content, " ")
	text = html.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}

// truncateAtRune cuts text to at most max bytes with an ellipsis marker,
// backing up to a rune start so a multi-byte character is never split.
func truncateAtRune(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}

// classifyUpstreamError maps a free-form provider error message onto one of
// the fixed user-facing categories.
func classifyUpstreamError(msg string) string {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "api key") || strings.Contains(lower, "api_key") ||
		strings.Contains(lower, "unauthorized") || strings.Contains(lower, "authentication"):
		return errCategoryAPIKey
	case strings.Contains(lower, "quota") || strings.Contains(lower, "rate limit") ||
		strings.Contains(lower, "rate_limit") || strings.Contains(lower, "429"):
		return errCategoryQuota
	case strings.Contains(lower, "too long") || strings.Contains(lower, "too large") ||
		strings.Contains(lower, "maximum context") || strings.Contains(lower, "prompt is too"):
		return errCategoryTooLong
	case strings.Contains(lower, "overloaded") || strings.Contains(lower, "529") ||
		strings.Contains(lower, "unavailable"):
		return errCategoryOverloaded
	default:
		return errCategoryGeneric
	}
}

// extractJSONArray returns the first bracket-delimited array substring,
// matching brackets by depth while skipping string literals.
func extractJSONArray(raw string) (string, bool) {
	start := strings.IndexByte(raw, '[')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}
	return "", false
}
