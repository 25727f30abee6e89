package services

import (
	"context"
	"testing"

	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityLogFilters(t *testing.T) {
	backends := map[string]func(t *testing.T) *ActivityLogService{
		"memory": func(t *testing.T) *ActivityLogService { return NewActivityLogService(nil) },
		"database": func(t *testing.T) *ActivityLogService {
			s := NewActivityLogService(openTestDB(t))
			require.NoError(t, s.Migrate())
			return s
		},
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)

			other := Actor{AdminID: "admin-2", Email: "baraka@example.com"}
			entries := []LogActivityRequest{
				{Actor: testActor, Action: models.ActionApproveItem, ResourceType: "crafts", ResourceID: "craft-001"},
				{Actor: testActor, Action: models.ActionRejectItem, ResourceType: "crafts", ResourceID: "craft-002", Reason: "duplicate"},
				{Actor: other, Action: models.ActionApproveItem, ResourceType: "artisans", ResourceID: "artisan-001"},
				{Actor: other, Action: models.ActionSuspendItem, ResourceType: "crafts", ResourceID: "craft-001", Reason: "report"},
			}
			for _, req := range entries {
				entry, err := s.LogActivity(ctx, req)
				require.NoError(t, err)
				assert.Equal(t, models.StatusSuccess, entry.Status)
			}

			all, total, err := s.ListActivity(ctx, ActivityFilter{})
			require.NoError(t, err)
			assert.EqualValues(t, 4, total)
			require.Len(t, all, 4)

			byAdmin, total, err := s.ListActivity(ctx, ActivityFilter{AdminID: "admin-2"})
			require.NoError(t, err)
			assert.EqualValues(t, 2, total)
			for _, e := range byAdmin {
				assert.Equal(t, "baraka@example.com", e.AdminEmail)
			}

			item, total, err := s.ListActivity(ctx, ActivityFilter{ResourceType: "crafts", ResourceID: "craft-001"})
			require.NoError(t, err)
			assert.EqualValues(t, 2, total)
			require.Len(t, item, 2)

			approvals, total, err := s.ListActivity(ctx, ActivityFilter{Action: models.ActionApproveItem})
			require.NoError(t, err)
			assert.EqualValues(t, 2, total)
			assert.Len(t, approvals, 2)

			page, total, err := s.ListActivity(ctx, ActivityFilter{Page: 2, Limit: 3})
			require.NoError(t, err)
			assert.EqualValues(t, 4, total)
			assert.Len(t, page, 1)

			beyond, _, err := s.ListActivity(ctx, ActivityFilter{Page: 5, Limit: 3})
			require.NoError(t, err)
			assert.Empty(t, beyond)
		})
	}
}

func TestActivityLogMemoryIsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewActivityLogService(nil)

	for _, id := range []string{"craft-001", "craft-002", "craft-003"} {
		_, err := s.LogActivity(ctx, LogActivityRequest{Actor: testActor, Action: models.ActionApproveItem, ResourceType: "crafts", ResourceID: id})
		require.NoError(t, err)
	}

	entries, _, err := s.ListActivity(ctx, ActivityFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "craft-003", entries[0].ResourceID)
	assert.Equal(t, "craft-001", entries[2].ResourceID)
}

func TestCreateChanges(t *testing.T) {
	changes := CreateChanges(map[string]any{"status": "approved"}, map[string]any{"status": "rejected"})
	assert.Equal(t, map[string]any{"status": "approved"}, changes["before"])
	assert.Equal(t, map[string]any{"status": "rejected"}, changes["after"])
}
