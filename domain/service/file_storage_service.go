// domain/service/file_storage_service.go
package service

import "mime/multipart"

// FileUploadResult - outcome of a storage upload.
type FileUploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"` // storage handle used for deletion
	Format   string `json:"format"`
	Size     int    `json:"size"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// FileStorageService - external blob storage for editor image attachments.
type FileStorageService interface {
	UploadImage(file *multipart.FileHeader, folder string) (*FileUploadResult, error)
	DeleteFile(publicID string) error
	GetPublicURL(publicID string) string
}
