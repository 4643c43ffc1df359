// interfaces/api/routes/note_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tszwong/notizen-api/interfaces/api/handler"
)

// SetupNoteRoutes mounts the note CRUD and editor-session routes. The :id
// param accepts "new" on draft routes for a note that has no identity yet.
func SetupNoteRoutes(router fiber.Router, noteHandler *handler.NoteHandler, fileHandler *handler.FileHandler, protected fiber.Handler) {
	notes := router.Group("/notes")
	notes.Use(protected)

	// CRUD operations
	notes.Post("/", noteHandler.CreateNote)
	notes.Get("/", noteHandler.GetNotes)

	// Editor session routes (before /:id to avoid conflicts)
	notes.Post("/:id/draft/open", noteHandler.OpenDraft)
	notes.Put("/:id/draft", noteHandler.UpdateDraft)
	notes.Post("/:id/draft/flush", noteHandler.FlushDraft)
	notes.Delete("/:id/draft", noteHandler.CloseDraft)
	notes.Get("/:id/draft/selection", noteHandler.RestoreSelection)

	// Speech-to-text capture
	notes.Post("/:id/speech/start", noteHandler.StartSpeech)
	notes.Post("/:id/speech/transcript", noteHandler.SpeechTranscript)
	notes.Post("/:id/speech/stop", noteHandler.StopSpeech)

	// Attachments referenced by a note
	notes.Get("/:id/attachments", fileHandler.GetNoteAttachments)

	// Dynamic routes last
	notes.Get("/:id", noteHandler.GetNote)
	notes.Delete("/:id", noteHandler.DeleteNote)
}
