// domain/repository/user_repository.go
package repository

import (
	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/models"
)

type UserRepository interface {
	// Upsert mirrors an identity-provider account locally, updating the
	// profile fields when the row already exists.
	Upsert(user *models.User) error

	GetByID(id uuid.UUID) (*models.User, error)
}
