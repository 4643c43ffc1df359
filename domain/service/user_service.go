// domain/service/user_service.go
package service

import (
	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/port"
)

// UserService - local mirror of identity-provider accounts.
type UserService interface {
	// SyncIdentity upserts the local row for a verified identity and
	// returns it. Called by the auth middleware on every request.
	SyncIdentity(identity *port.Identity) (*models.User, error)

	GetUser(id uuid.UUID) (*models.User, error)
}
