// domain/dto/ai_dto.go
package dto

// SummarizeRequest - body of POST /api/summarize.
type SummarizeRequest struct {
	Content string `json:"content"`
}

// SummarizeResponse - result envelope for summarization. On failure Error
// carries a classified, human-readable category.
type SummarizeResponse struct {
	Success        bool   `json:"success"`
	Response       string `json:"response,omitempty"` // sanitized html
	OriginalLength int    `json:"originalLength,omitempty"`
	SummaryLength  int    `json:"summaryLength,omitempty"`
	Error          string `json:"error,omitempty"`
}

// ExtractTasksRequest - body of POST /api/extractTasks.
type ExtractTasksRequest struct {
	Content   string `json:"content"`
	UserID    string `json:"userId,omitempty"`
	NoteID    string `json:"noteId,omitempty"`
	NoteTitle string `json:"noteTitle,omitempty"`
}

// ExtractedTask - one task parsed out of the model's JSON array.
type ExtractedTask struct {
	Task        string   `json:"task"`
	Priority    string   `json:"priority"`
	DueDate     string   `json:"dueDate,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// ExtractTasksResponse - result envelope for task extraction. Malformed
// model output is a soft failure: Success=false with Raw carrying the
// upstream text, never an error return.
type ExtractTasksResponse struct {
	Success         bool            `json:"success"`
	Tasks           []ExtractedTask `json:"tasks,omitempty"`
	OriginalLength  int             `json:"originalLength,omitempty"`
	ExtractedLength int             `json:"extractedLength,omitempty"`
	Error           string          `json:"error,omitempty"`
	Raw             string          `json:"raw,omitempty"`
}
