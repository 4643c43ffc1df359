// application/serviceimpl/user_service.go
package serviceimpl

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/port"
	"github.com/tszwong/notizen-api/domain/repository"
	"github.com/tszwong/notizen-api/domain/service"
)

type userService struct {
	userRepo repository.UserRepository
}

// identityNamespace seeds user ids derived from opaque provider subjects.
// Changing it would orphan every mirrored user row.
var identityNamespace = uuid.MustParse("8f3c1a6e-2b94-4a07-bd55-90c2e4d7a113")

// subjectUUID maps a provider subject onto a stable local user id. A subject
// that already is a UUID is used verbatim; anything else (opaque IdP
// subjects) hashes to the same UUID on every login.
func subjectUUID(sub string) uuid.UUID {
	if id, err := uuid.Parse(sub); err == nil {
		return id
	}
	return uuid.NewSHA1(identityNamespace, []byte(sub))
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo repository.UserRepository) service.UserService {
	return &userService{userRepo: userRepo}
}

// SyncIdentity mirrors a verified identity locally.
func (s *userService) SyncIdentity(identity *port.Identity) (*models.User, error) {
	if identity.ID == "" {
		return nil, errors.New("identity provider returned an empty subject")
	}
	id := subjectUUID(identity.ID)

	now := time.Now()
	user := &models.User{
		ID:          id,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		PhotoURL:    identity.PhotoURL,
		LastSeenAt:  &now,
	}

	if err := s.userRepo.Upsert(user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser fetches the local mirror row.
func (s *userService) GetUser(id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	return user, nil
}
