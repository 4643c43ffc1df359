// domain/service/ai_service.go
package service

import (
	"context"

	"github.com/tszwong/notizen-api/domain/dto"
)

// AIService - the AI action gateway. Input is raw rich-text content:
// markup is stripped, trimmed and truncated to a provider budget before the
// upstream call. Upstream failures are classified by substring match into a
// small fixed set of user-facing categories.
type AIService interface {
	// Summarize truncates over-budget input (ellipsis-appended) and returns
	// sanitized list/line-break markup prefixed with a Summary marker.
	Summarize(ctx context.Context, content string) *dto.SummarizeResponse

	// SummarizeSelection rejects over-cap input outright instead of
	// truncating.
	SummarizeSelection(ctx context.Context, content string) *dto.SummarizeResponse

	// ExtractTasks asks for a JSON array and tolerates the model wrapping
	// it in prose. Parse problems come back as a soft failure.
	ExtractTasks(ctx context.Context, content string) *dto.ExtractTasksResponse
}
