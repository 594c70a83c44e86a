package service_test

import (
	"testing"

	"newscheck/internal/dto"
	"newscheck/internal/models"
	"newscheck/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserService_ListReturnsAllAccounts(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "one@example.com", models.RoleReader)
	env.seedUser(t, "two@example.com", models.RoleMember)
	env.seedUser(t, "three@example.com", models.RoleAdmin)

	users, err := env.users.List()
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestUserService_UpdateRole(t *testing.T) {
	env := newTestEnv(t)
	reader := env.seedUser(t, "reader@example.com", models.RoleReader)
	admin := env.seedUser(t, "admin@example.com", models.RoleAdmin)

	resp, err := env.users.UpdateRole(reader.ID, models.RoleMember)
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, resp.Role)

	// Self-demotion is allowed; no guard keeps the last admin in place.
	resp, err = env.users.UpdateRole(admin.ID, models.RoleReader)
	require.NoError(t, err)
	assert.Equal(t, models.RoleReader, resp.Role)

	_, err = env.users.UpdateRole("00000000-0000-0000-0000-000000000000", models.RoleMember)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestUserService_UpdateProfileIsPartialAndRoleProof(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "edit@example.com", models.RoleMember)

	resp, err := env.users.UpdateProfile(user.ID, dto.UpdateProfileRequest{
		FirstName: strPtr("Renamed"),
		AvatarURL: strPtr("https://cdn.example.com/a.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", resp.FirstName)
	assert.Equal(t, "User", resp.LastName, "omitted fields are untouched")
	require.NotNil(t, resp.AvatarURL)
	assert.Equal(t, "https://cdn.example.com/a.png", *resp.AvatarURL)
	assert.Equal(t, models.RoleMember, resp.Role)

	// An empty update is a no-op, not an error.
	resp, err = env.users.UpdateProfile(user.ID, dto.UpdateProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", resp.FirstName)
}
