// interfaces/api/handler/ai_handler.go
package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/tszwong/notizen-api/application/editor"
	"github.com/tszwong/notizen-api/domain/service"
	"github.com/tszwong/notizen-api/interfaces/api/middleware"
	"github.com/tszwong/notizen-api/pkg/utils"
)

type AIHandler struct {
	aiService service.AIService
	editors   *editor.Manager
}

func NewAIHandler(aiService service.AIService, editors *editor.Manager) *AIHandler {
	return &AIHandler{
		aiService: aiService,
		editors:   editors,
	}
}

// summarizeBody tolerates arbitrary JSON so a non-string content field can
// be rejected with 400 instead of a parser 422.
type summarizeBody struct {
	Content   json.RawMessage `json:"content"`
	Selection bool            `json:"selection"`
	NoteID    string          `json:"noteId"`
}

func parseContentField(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var content string
	if err := json.Unmarshal(raw, &content); err != nil {
		return "", false
	}
	return content, true
}

// Summarize runs note content through the summarization prompt. With
// selection=true the shorter selection budget applies. When noteId names an
// open editor session the summary is appended to it through the
// programmatic-injection path.
func (h *AIHandler) Summarize(c *fiber.Ctx) error {
	var body summarizeBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	content, ok := parseContentField(body.Content)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Content is required and must be a string",
		})
	}

	var result interface{}
	if body.Selection {
		result = h.aiService.SummarizeSelection(c.Context(), content)
	} else {
		resp := h.aiService.Summarize(c.Context(), content)
		if resp.Success && body.NoteID != "" {
			h.appendToSession(c, body.NoteID, resp.Response)
		}
		result = resp
	}

	return c.JSON(result)
}

// ExtractTasks asks the model for actionable tasks in the content.
func (h *AIHandler) ExtractTasks(c *fiber.Ctx) error {
	var body struct {
		Content   json.RawMessage `json:"content"`
		UserID    string          `json:"userId"`
		NoteID    string          `json:"noteId"`
		NoteTitle string          `json:"noteTitle"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	content, ok := parseContentField(body.Content)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Content is required and must be a string",
		})
	}

	return c.JSON(h.aiService.ExtractTasks(c.Context(), content))
}

// appendToSession pushes the summary into the caller's open editor session.
// Best effort: a missing session just means the client inserts it locally.
func (h *AIHandler) appendToSession(c *fiber.Ctx, noteID, summary string) {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return
	}
	id, err := utils.ParseUUID(noteID)
	if err != nil {
		return
	}
	session, err := h.editors.Session(userID, &id)
	if err != nil {
		return
	}
	session.AppendProgrammatic(summary, nil)
}
