package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alee-2021/clear/internal/config"
)

const testJWTSecret = "thisisasecretkeythatis32charslong!!"

func newTestJWTService(t *testing.T, lifetimeMinutes int) *hmacJWTService {
	t.Helper()

	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:            testJWTSecret,
		TokenLifetimeMinutes: lifetimeMinutes,
	})
	require.NoError(t, err)
	return svc.(*hmacJWTService)
}

func TestNewJWTServiceRejectsShortSecret(t *testing.T) {
	_, err := NewJWTService(config.AuthConfig{
		JWTSecret:            "tooshort",
		TokenLifetimeMinutes: 60,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 characters")
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(t, 60)
	userID := uuid.New()

	token, claims, err := svc.GenerateToken(context.Background(), userID, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)

	validated, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, validated.UserID)
	assert.Equal(t, "alice", validated.Username)
	assert.WithinDuration(t, claims.ExpiresAt, validated.ExpiresAt, time.Second)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestJWTService(t, 60)

	issuedAt := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.timeFunc = func() time.Time { return issuedAt }

	token, _, err := svc.GenerateToken(context.Background(), uuid.New(), "alice")
	require.NoError(t, err)

	// Advance past the lifetime plus the clock skew allowance.
	svc.timeFunc = func() time.Time { return issuedAt.Add(time.Hour + 3*time.Minute) }

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWithinClockSkew(t *testing.T) {
	svc := newTestJWTService(t, 60)

	issuedAt := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.timeFunc = func() time.Time { return issuedAt }

	token, _, err := svc.GenerateToken(context.Background(), uuid.New(), "alice")
	require.NoError(t, err)

	// One minute past expiry is still inside the two minute skew allowance.
	svc.timeFunc = func() time.Time { return issuedAt.Add(time.Hour + time.Minute) }

	_, err = svc.ValidateToken(context.Background(), token)
	assert.NoError(t, err)
}

func TestValidateTokenWrongKey(t *testing.T) {
	svc := newTestJWTService(t, 60)

	token, _, err := svc.GenerateToken(context.Background(), uuid.New(), "alice")
	require.NoError(t, err)

	other := newTestJWTService(t, 60)
	other.signingKey = []byte("anentirelydifferentsecretthatis32ch")

	_, err = other.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newTestJWTService(t, 60)

	_, err := svc.ValidateToken(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
