// infrastructure/storage/cloudinary/cloudinary_storage.go
package cloudinary

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/tszwong/notizen-api/domain/service"
)

const uploadTimeout = 30 * time.Second

// Config holds the Cloudinary credentials.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string // base folder for editor attachments
}

// cloudinaryStorage stores editor image attachments on Cloudinary.
type cloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	config *Config
}

// NewCloudinaryStorage creates a FileStorageService backed by Cloudinary.
func NewCloudinaryStorage(config *Config) (service.FileStorageService, error) {
	cld, err := cloudinary.NewFromParams(config.CloudName, config.APIKey, config.APISecret)
	if err != nil {
		return nil, err
	}

	return &cloudinaryStorage{
		cld:    cld,
		config: config,
	}, nil
}

func boolPtr(b bool) *bool {
	return &b
}

// UploadImage uploads an image and returns the hosted URL.
func (c *cloudinaryStorage) UploadImage(file *multipart.FileHeader, folder string) (*service.FileUploadResult, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if folder == "" {
		folder = c.config.Folder
	}

	uploadParams := uploader.UploadParams{
		Folder:         folder,
		UseFilename:    boolPtr(true),
		UniqueFilename: boolPtr(true),
		ResourceType:   "image",
		Transformation: "q_auto:good",
	}

	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	result, err := c.cld.Upload.Upload(ctx, src, uploadParams)
	if err != nil {
		return nil, err
	}

	return &service.FileUploadResult{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
		Format:   result.Format,
		Size:     int(result.Bytes),
		Width:    result.Width,
		Height:   result.Height,
	}, nil
}

// DeleteFile removes an uploaded asset by its public ID.
func (c *cloudinaryStorage) DeleteFile(publicID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	result, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return err
	}
	if result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("cloudinary destroy failed: %s", result.Result)
	}
	return nil
}

// GetPublicURL builds the delivery URL for a stored asset.
func (c *cloudinaryStorage) GetPublicURL(publicID string) string {
	img, err := c.cld.Image(publicID)
	if err != nil {
		return ""
	}
	url, err := img.String()
	if err != nil {
		return ""
	}
	return url
}
