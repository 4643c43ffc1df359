// interfaces/api/handler/file_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/repository"
	"github.com/tszwong/notizen-api/domain/service"
	"github.com/tszwong/notizen-api/interfaces/api/middleware"
	"github.com/tszwong/notizen-api/pkg/utils"
)

// MaxImageSize caps editor image uploads at 10MB
const MaxImageSize = 10 * 1024 * 1024

// FileHandler manages editor image attachments
type FileHandler struct {
	storageService service.FileStorageService
	attachmentRepo repository.AttachmentRepository
}

// NewFileHandler creates a new FileHandler
func NewFileHandler(storageService service.FileStorageService, attachmentRepo repository.AttachmentRepository) *FileHandler {
	return &FileHandler{
		storageService: storageService,
		attachmentRepo: attachmentRepo,
	}
}

// UploadImage uploads an editor image and records the attachment
func (h *FileHandler) UploadImage(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No image file in request",
		})
	}

	if file.Size > MaxImageSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"success": false,
			"message": "Image exceeds the 10MB limit",
		})
	}

	var noteIDPtr *uuid.UUID
	if raw := c.FormValue("note_id"); raw != "" {
		noteID, err := utils.ParseUUID(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid note_id format",
			})
		}
		noteIDPtr = &noteID
	}

	result, err := h.storageService.UploadImage(file, c.FormValue("folder", "notes"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Upload failed: " + err.Error(),
		})
	}

	attachment := &models.Attachment{
		OwnerID:  userID,
		NoteID:   noteIDPtr,
		URL:      result.URL,
		PublicID: result.PublicID,
		Format:   result.Format,
		Size:     result.Size,
	}
	if err := h.attachmentRepo.Create(attachment); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to record attachment: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Image uploaded successfully",
		"data":    attachment,
	})
}

// GetNoteAttachments lists the attachments referenced by a note
func (h *FileHandler) GetNoteAttachments(c *fiber.Ctx) error {
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

	attachments, err := h.attachmentRepo.FindByNoteID(noteID, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    attachments,
	})
}

// DeleteAttachment removes an attachment from storage and the database
func (h *FileHandler) DeleteAttachment(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	attachmentID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid attachment ID: " + err.Error(),
		})
	}

	attachment, err := h.attachmentRepo.GetByID(attachmentID, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
	if attachment == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Attachment not found",
		})
	}

	if attachment.PublicID != "" {
		if err := h.storageService.DeleteFile(attachment.PublicID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to delete stored file: " + err.Error(),
			})
		}
	}

	if err := h.attachmentRepo.Delete(attachmentID, userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Attachment deleted successfully",
	})
}
