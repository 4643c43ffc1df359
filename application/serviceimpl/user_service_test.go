// application/serviceimpl/user_service_test.go
package serviceimpl

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tszwong/notizen-api/domain/models"
	"github.com/tszwong/notizen-api/domain/port"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (f *fakeUserRepo) Upsert(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func TestSyncIdentityUsesUUIDSubjectVerbatim(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	sub := uuid.New()
	user, err := svc.SyncIdentity(&port.Identity{ID: sub.String(), Email: "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, sub, user.ID)
}

func TestSyncIdentityDerivesStableIDFromOpaqueSubject(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	// Subjects from managed IdPs are opaque strings, not UUIDs. The mirror
	// must map the same subject onto the same local id on every login.
	first, err := svc.SyncIdentity(&port.Identity{ID: "auth0|64f1c2", Email: "a@b.c"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first.ID)

	second, err := svc.SyncIdentity(&port.Identity{ID: "auth0|64f1c2", Email: "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other, err := svc.SyncIdentity(&port.Identity{ID: "auth0|99zz00", Email: "x@y.z"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestSyncIdentityRejectsEmptySubject(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.SyncIdentity(&port.Identity{ID: "", Email: "a@b.c"})
	require.EqualError(t, err, "identity provider returned an empty subject")
}
