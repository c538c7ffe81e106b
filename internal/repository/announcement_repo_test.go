package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/frontdesk-go-api/internal/models"
)

func TestAnnouncementListActiveWindowAndOrder(t *testing.T) {
	repo := NewAnnouncementRepository(openTestDB(t))
	ctx := context.Background()

	now := time.Now()
	expired := now.Add(-time.Hour)

	announcements := []models.Announcement{
		{Title: "Old", Body: "ok", StartsAt: now.Add(-48 * time.Hour)},
		{Title: "Pinned", Body: "ok", StartsAt: now.Add(-72 * time.Hour), IsPinned: true},
		{Title: "Expired", Body: "ok", StartsAt: now.Add(-48 * time.Hour), EndsAt: &expired},
		{Title: "Future", Body: "ok", StartsAt: now.Add(time.Hour)},
	}
	for i := range announcements {
		require.NoError(t, repo.Create(ctx, &announcements[i]))
	}

	active, err := repo.ListActive(ctx, now)
	require.NoError(t, err)
	require.Len(t, active, 2)
	require.Equal(t, "Pinned", active[0].Title)
	require.Equal(t, "Old", active[1].Title)
}
