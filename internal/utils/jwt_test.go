package utils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rajivgeraev/steam-trade-api/internal/domain"
)

func testUser(t *testing.T) *domain.User {
	t.Helper()
	id, err := domain.NewUserID("user-1")
	require.NoError(t, err)
	steamID, err := domain.NewSteamID("76561198000000001")
	require.NoError(t, err)
	user, err := domain.NewUser(id, steamID, "Gabe", "")
	require.NoError(t, err)
	return user
}

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateToken(testUser(t))
	require.NoError(t, err)

	claims, err := service.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "76561198000000001", claims.SteamID)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateToken(testUser(t))
	require.NoError(t, err)

	_, err = service.ParseToken(token + "x")
	require.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateToken(testUser(t))
	require.NoError(t, err)

	_, err = NewJWTService("secret-b").ParseToken(token)
	require.ErrorIs(t, err, domain.ErrInvalidCredential)
}
