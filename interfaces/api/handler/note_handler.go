// interfaces/api/handler/note_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tszwong/notizen-api/application/editor"
	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/port"
	"github.com/tszwong/notizen-api/domain/service"
	"github.com/tszwong/notizen-api/interfaces/api/middleware"
	"github.com/tszwong/notizen-api/pkg/utils"
)

type NoteHandler struct {
	noteService service.NoteService
	editors     *editor.Manager
	ws          port.WebSocketPort
	prefs       port.PreferenceStore
	activity    service.ActivityService
}

func NewNoteHandler(noteService service.NoteService, editors *editor.Manager, ws port.WebSocketPort, prefs port.PreferenceStore, activity service.ActivityService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
		editors:     editors,
		ws:          ws,
		prefs:       prefs,
		activity:    activity,
	}
}

func lastNoteKey(userID uuid.UUID) string {
	return "lastNote:" + userID.String()
}

// parseNoteRef resolves the :id route param; "new" opens a draft that has
// no persisted identity yet.
func parseNoteRef(c *fiber.Ctx) (*uuid.UUID, error) {
	raw := c.Params("id")
	if raw == "new" {
		return nil, nil
	}
	id, err := utils.ParseUUID(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// CreateNote creates a note immediately, outside the autosave path.
func (h *NoteHandler) CreateNote(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var input struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	note, err := h.noteService.CreateNote(userID, input.Title, input.Content)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	h.activity.RecordToday(userID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Note created successfully",
		"data":    note,
	})
}

// GetNote fetches a single note.
func (h *NoteHandler) GetNote(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	noteID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid note ID: " + err.Error(),
		})
	}

	note, err := h.noteService.GetNote(noteID, userID)
	if err != nil {
		statusCode := fiber.StatusInternalServerError
		if err.Error() == "note not found" {
			statusCode = fiber.StatusNotFound
		}
		return c.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    note,
	})
}

// GetNotes lists the user's notes, newest first.
func (h *NoteHandler) GetNotes(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	var (
		notes []*models.Note
		total int64
	)
	if query := c.Query("q"); query != "" {
		notes, total, err = h.noteService.SearchNotes(userID, query, limit, offset)
	} else {
		notes, total, err = h.noteService.GetUserNotes(userID, limit, offset)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    notes,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// DeleteNote deletes a note, closes its editor session and clears the
// last-open-note preference if it pointed here.
func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	noteID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid note ID: " + err.Error(),
		})
	}

	h.editors.Close(userID, &noteID)

	if err := h.noteService.DeleteNote(noteID, userID); err != nil {
		statusCode := fiber.StatusInternalServerError
		if err.Error() == "note not found" {
			statusCode = fiber.StatusNotFound
		}
		return c.Status(statusCode).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	if last, _ := h.prefs.Get(c.Context(), lastNoteKey(userID)); last == noteID.String() {
		h.prefs.Delete(c.Context(), lastNoteKey(userID))
	}

	h.ws.BroadcastNoteDeleted(userID, noteID)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Note deleted successfully",
	})
}

// OpenDraft opens (or resumes) the editor session for a note and returns
// its live state. Use id "new" for a note that has not been saved yet.
func (h *NoteHandler) OpenDraft(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	noteID, err := parseNoteRef(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid note ID: " + err.Error(),
		})
	}

	session, err := h.editors.Session(userID, noteID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	// last-open-note survives reloads; a fresh draft clears it
	if noteID != nil {
		h.prefs.Set(c.Context(), lastNoteKey(userID), noteID.String())
	} else {
		h.prefs.Delete(c.Context(), lastNoteKey(userID))
	}

	title, content, _ := session.State()
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"noteId":  session.Autosave().NoteID(),
			"title":   title,
			"content": content,
			"saving":  session.Autosave().Saving(),
			"dirty":   session.Autosave().Dirty(),
		},
	})
}

// UpdateDraft applies a direct-keystroke edit to the session. The write is
// debounced; the response reports the pending state, the persisted note
// arrives over the WebSocket once the flush lands.
func (h *NoteHandler) UpdateDraft(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	noteID, err := parseNoteRef(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid note ID: " + err.Error(),
		})
	}

	var input struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	session, err := h.editors.Session(userID, noteID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	session.UserEdit(input.Title, input.Content)
	h.activity.RecordToday(userID)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"noteId": session.Autosave().NoteID(),
			"saving": session.Autosave().Saving(),
			"dirty":  session.Autosave().Dirty(),
		},
	})
}

// FlushDraft forces an immediate save, bypassing the debounce window.
// Used by explicit Ctrl+S style saves and note switches.
func (h *NoteHandler) FlushDraft(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	noteID, err := parseNoteRef(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid note ID: " + err.Error(),
		})
	}

	session, err := h.editors.Session(userID, noteID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	note, err := session.Autosave().Flush()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Save failed: " + err.Error(),
		})
	}

	h.activity.RecordToday(userID)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Note saved",
		"data":    note,
	})
}

// CloseDraft closes the editor session, cancelling any pending debounce.
// Called on note switch and tab close.
func (h *NoteHandler) CloseDraft(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	noteID, err := parseNoteRef(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid note ID: " + err.Error(),
		})
	}

	h.editors.Close(userID, noteID)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Draft closed",
	})
}

// RestoreSelection evaluates the selection-restore decision after the
// client re-rendered programmatic content.
func (h *NoteHandler) RestoreSelection(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	noteID, err := parseNoteRef(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid note ID: " + err.Error(),
		})
	}

	session, err := h.editors.Session(userID, noteID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	hasFocus := c.QueryBool("focus", false)
	selection, restore := session.Restore(hasFocus)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"restore":   restore,
			"selection": selection,
		},
	})
}

// StartSpeech begins a speech-to-text capture cycle on the session.
func (h *NoteHandler) StartSpeech(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	noteID, err := parseNoteRef(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid note ID: " + err.Error(),
		})
	}

	session, err := h.editors.Session(userID, noteID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	session.StartSpeech()

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Speech capture started",
	})
}

// SpeechTranscript applies a cumulative transcript chunk onto the capture
// snapshot.
func (h *NoteHandler) SpeechTranscript(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	noteID, err := parseNoteRef(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid note ID: " + err.Error(),
		})
	}

	var input struct {
		Transcript string            `json:"transcript"`
		Selection  *editor.Selection `json:"selection,omitempty"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	session, err := h.editors.Session(userID, noteID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	session.SpeechTranscript(input.Transcript, input.Selection)

	_, content, _ := session.State()
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"content": content,
		},
	})
}

// StopSpeech ends the capture cycle.
func (h *NoteHandler) StopSpeech(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	noteID, err := parseNoteRef(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid note ID: " + err.Error(),
		})
	}

	session, err := h.editors.Session(userID, noteID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	session.StopSpeech()

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Speech capture stopped",
	})
}
