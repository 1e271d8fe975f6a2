package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alee-2021/clear/internal/mocks"
	"github.com/alee-2021/clear/internal/store"
)

func newTestSessions(t *testing.T) (*Sessions, *mocks.TokenStore) {
	t.Helper()

	tokens := mocks.NewTokenStore()
	return NewSessions(newTestJWTService(t, 60), tokens, nil), tokens
}

func TestSessionsIssueAndValidate(t *testing.T) {
	sessions, tokens := newTestSessions(t)
	userID := uuid.New()

	token, err := sessions.Issue(context.Background(), userID, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	registered, err := tokens.Exists(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, registered, "issuing must register the token")

	claims, err := sessions.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestSessionsValidateRejectsRevokedToken(t *testing.T) {
	sessions, _ := newTestSessions(t)

	token, err := sessions.Issue(context.Background(), uuid.New(), "alice")
	require.NoError(t, err)

	require.NoError(t, sessions.Revoke(context.Background(), token))

	_, err = sessions.Validate(context.Background(), token)
	assert.ErrorIs(t, err, ErrRevokedToken, "a revoked token passes signature checks but must still be rejected")
}

func TestSessionsValidateRejectsUnregisteredToken(t *testing.T) {
	sessions, _ := newTestSessions(t)

	// A structurally valid token minted outside Issue never hits the store.
	svc := newTestJWTService(t, 60)
	token, _, err := svc.GenerateToken(context.Background(), uuid.New(), "alice")
	require.NoError(t, err)

	_, err = sessions.Validate(context.Background(), token)
	assert.ErrorIs(t, err, ErrRevokedToken)
}

func TestSessionsValidateRejectsGarbage(t *testing.T) {
	sessions, _ := newTestSessions(t)

	_, err := sessions.Validate(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionsRevokeUnknownToken(t *testing.T) {
	sessions, _ := newTestSessions(t)

	err := sessions.Revoke(context.Background(), "never-issued")
	assert.ErrorIs(t, err, store.ErrTokenNotFound)
}
