// pkg/configs/storage_config.go
package configs

import (
	"log"
	"os"

	"github.com/tszwong/notizen-api/domain/service"
	"github.com/tszwong/notizen-api/infrastructure/storage/cloudinary"
)

// SetupStorageService creates the FileStorageService for editor images
func SetupStorageService() (service.FileStorageService, error) {
	log.Println("Setting up Cloudinary storage for editor attachments")

	return cloudinary.NewCloudinaryStorage(&cloudinary.Config{
		CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		Folder:    getEnv("CLOUDINARY_UPLOAD_FOLDER", "notes"),
	})
}
