package services

import (
	"testing"

	"github.com/ly3848/task-manager/internal/models"
	"github.com/ly3848/task-manager/internal/store"
	"github.com/stretchr/testify/require"
)

func setupAuthService(t *testing.T) (*AuthService, *store.DataManager) {
	t.Helper()
	data := store.NewDataManager()
	return NewAuthService(data), data
}

func TestRegister(t *testing.T) {
	auth, _ := setupAuthService(t)

	user, err := auth.Register(RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "ignored",
	})
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, models.RoleUser, user.Role)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	auth, _ := setupAuthService(t)

	_, err := auth.Register(RegisterInput{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = auth.Register(RegisterInput{Username: "alice", Email: "other@example.com"})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth, _ := setupAuthService(t)

	_, err := auth.Register(RegisterInput{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = auth.Register(RegisterInput{Username: "bob", Email: "alice@example.com"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginIgnoresPassword(t *testing.T) {
	auth, data := setupAuthService(t)
	data.CreateUser("alice", "alice@example.com", models.RoleUser)

	// Any password is accepted for a known username.
	user, err := auth.Login("alice", "definitely-wrong")
	require.NoError(t, err)
	require.NotNil(t, user.LastLogin)
	require.True(t, auth.IsAuthenticated())
	require.Equal(t, user, auth.CurrentUser())
	require.Equal(t, 1, auth.SessionCount())
}

func TestLoginUnknownUsername(t *testing.T) {
	auth, _ := setupAuthService(t)

	_, err := auth.Login("nobody", "password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.False(t, auth.IsAuthenticated())
}

func TestLogoutKeepsSessionRecords(t *testing.T) {
	auth, data := setupAuthService(t)
	data.CreateUser("alice", "alice@example.com", models.RoleUser)

	_, err := auth.Login("alice", "pw")
	require.NoError(t, err)
	_, err = auth.Login("alice", "pw")
	require.NoError(t, err)

	auth.Logout()
	require.False(t, auth.IsAuthenticated())
	require.Nil(t, auth.CurrentUser())
	require.Equal(t, 2, auth.SessionCount())
}

func TestHasPermission(t *testing.T) {
	auth, data := setupAuthService(t)
	data.CreateUser("admin", "admin@example.com", models.RoleAdmin)
	data.CreateUser("guest", "guest@example.com", models.RoleGuest)

	// Unauthenticated callers hold no permission at all.
	require.False(t, auth.HasPermission(models.RoleGuest))

	_, err := auth.Login("guest", "pw")
	require.NoError(t, err)
	require.True(t, auth.HasPermission(models.RoleGuest))
	require.False(t, auth.HasPermission(models.RoleUser))
	require.False(t, auth.HasPermission(models.RoleAdmin))

	_, err = auth.Login("admin", "pw")
	require.NoError(t, err)
	require.True(t, auth.HasPermission(models.RoleGuest))
	require.True(t, auth.HasPermission(models.RoleUser))
	require.True(t, auth.HasPermission(models.RoleAdmin))
}
