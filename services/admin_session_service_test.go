package services

import (
	"context"
	"testing"
	"time"

	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	s := NewAdminSessionService(db)
	require.NoError(t, s.Migrate())

	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	adminID := uuid.Must(uuid.NewV7())
	session, err := s.CreateSession(ctx, adminID, "token-a", "10.0.0.1", "test")
	require.NoError(t, err)
	assert.True(t, session.IsActive)
	assert.Equal(t, now.Add(AdminTokenTTL), session.ExpiresAt)
	assert.NotEqual(t, "token-a", session.TokenHash, "only the hash is stored")

	now = now.Add(time.Hour)
	require.NoError(t, s.Touch(ctx, "token-a"))

	var stored models.AdminSession
	require.NoError(t, db.First(&stored, "id = ?", session.ID).Error)
	assert.True(t, stored.LastActivityAt.Equal(now))

	assert.ErrorIs(t, s.Touch(ctx, "token-unknown"), ErrSessionRevoked)

	require.NoError(t, s.Revoke(ctx, "token-a"))
	assert.ErrorIs(t, s.Touch(ctx, "token-a"), ErrSessionRevoked)
}

func TestAdminSessionExpiryAndCleanup(t *testing.T) {
	ctx := context.Background()
	s := NewAdminSessionService(openTestDB(t))
	require.NoError(t, s.Migrate())

	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	_, err := s.CreateSession(ctx, uuid.Must(uuid.NewV7()), "token-old", "", "")
	require.NoError(t, err)

	now = now.Add(AdminTokenTTL + time.Minute)
	assert.ErrorIs(t, s.Touch(ctx, "token-old"), ErrSessionRevoked, "expired")

	_, err = s.CreateSession(ctx, uuid.Must(uuid.NewV7()), "token-new", "", "")
	require.NoError(t, err)

	removed, err := s.CleanupExpiredSessions(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)
	assert.NoError(t, s.Touch(ctx, "token-new"))
}

func TestAdminSessionWithoutDatabase(t *testing.T) {
	ctx := context.Background()
	s := NewAdminSessionService(nil)

	session, err := s.CreateSession(ctx, uuid.Must(uuid.NewV7()), "token", "", "")
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.NoError(t, s.Touch(ctx, "token"))
	assert.NoError(t, s.Revoke(ctx, "token"))

	removed, err := s.CleanupExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
