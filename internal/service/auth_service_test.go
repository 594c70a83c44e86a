package service_test

import (
	"testing"

	"newscheck/internal/dto"
	"newscheck/internal/models"
	"newscheck/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterLoginRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	token, user, err := env.auth.Register(dto.RegisterRequest{
		Email:     "new@example.com",
		Password:  "secret123",
		FirstName: "Nora",
		LastName:  "Chan",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, models.RoleReader, user.Role)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")

	// The issued token decodes back to the same identity.
	claims, err := env.auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleReader, claims.Role)

	loginToken, loginUser, err := env.auth.Login("new@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, loginToken)
	assert.Equal(t, user.ID, loginUser.ID)

	_, _, err = env.auth.Login("new@example.com", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, _, err = env.auth.Login("absent@example.com", "secret123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_DuplicateEmailRejected(t *testing.T) {
	env := newTestEnv(t)

	req := dto.RegisterRequest{
		Email:     "taken@example.com",
		Password:  "secret123",
		FirstName: "First",
		LastName:  "In",
	}
	_, _, err := env.auth.Register(req)
	require.NoError(t, err)

	_, _, err = env.auth.Register(req)
	assert.ErrorIs(t, err, service.ErrEmailInUse)
}

func TestAuthService_ValidateTokenRejectsGarbage(t *testing.T) {
	env := newTestEnv(t)

	for _, tok := range []string{
		"",
		"not-a-jwt",
		"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.e30.bogus-signature",
	} {
		_, err := env.auth.ValidateToken(tok)
		assert.ErrorIs(t, err, service.ErrInvalidToken, "token %q", tok)
	}

	// A token signed with a different secret is rejected too.
	otherEnv := newTestEnvWithSecret(t, "a-completely-different-secret-value!")
	foreign, err := otherEnv.auth.GenerateToken("some-id", models.RoleAdmin)
	require.NoError(t, err)
	_, err = env.auth.ValidateToken(foreign)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestAuthService_RolePromotionReflectsInNextToken(t *testing.T) {
	env := newTestEnv(t)

	_, user, err := env.auth.Register(dto.RegisterRequest{
		Email:     "promote@example.com",
		Password:  "secret123",
		FirstName: "Pro",
		LastName:  "Moted",
	})
	require.NoError(t, err)

	_, err = env.users.UpdateRole(user.ID, models.RoleMember)
	require.NoError(t, err)

	// A fresh login carries the new role.
	token, _, err := env.auth.Login("promote@example.com", "secret123")
	require.NoError(t, err)
	claims, err := env.auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, claims.Role)
}
