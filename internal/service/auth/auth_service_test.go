package auth

import (
	"context"
	"testing"

	"github.com/ecodesk/greenroi/internal/domain"
	"github.com/ecodesk/greenroi/internal/pkg/constants"
	"github.com/ecodesk/greenroi/internal/pkg/session"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	users  map[string]*domain.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User)}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *domain.User) error {
	f.nextID++
	user.ID = f.nextID
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, constants.ErrDBNotFound
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	viper.Set(constants.ViperSecretKey, "test-secret")

	svc := NewService(newFakeUserStore(), session.NewMemoryStore())
	require.NoError(t, svc.EnsureDemoUser(context.Background()))
	return svc
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, &domain.LoginRequest{Username: "demo", Password: "demo123"})
		require.NoError(t, err)
		assert.Equal(t, "demo", resp.User.Username)
		assert.NotEmpty(t, resp.AuthToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &domain.LoginRequest{Username: "demo", Password: "nope"})
		assert.ErrorIs(t, err, constants.ErrInvalidCredentials)
	})

	t.Run("unknown user maps to the same error", func(t *testing.T) {
		_, err := svc.Login(ctx, &domain.LoginRequest{Username: "ghost", Password: "demo123"})
		assert.ErrorIs(t, err, constants.ErrInvalidCredentials)
	})
}

func TestAuthenticate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &domain.LoginRequest{Username: "demo", Password: "demo123"})
	require.NoError(t, err)

	userID, err := svc.Authenticate(ctx, resp.AuthToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)

	_, err = svc.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, constants.ErrUnauthorized)
}

func TestLogout_RevokesToken(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &domain.LoginRequest{Username: "demo", Password: "demo123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.AuthToken))

	// The token still parses but its session is gone.
	_, err = svc.Authenticate(ctx, resp.AuthToken)
	assert.ErrorIs(t, err, constants.ErrUnauthorized)
}

func TestEnsureDemoUser_Idempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureDemoUser(ctx))

	resp, err := svc.Login(ctx, &domain.LoginRequest{Username: "demo", Password: "demo123"})
	require.NoError(t, err)

	current, err := svc.CurrentUser(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "demo", current.Username)
}
