package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsrmotors/leadpulse/ent/enttest"
	"github.com/hsrmotors/leadpulse/pkg/domain"

	_ "github.com/mattn/go-sqlite3"
)

func TestLogLeadDeletionRequiresReason(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	service := NewService(client)

	err := service.LogLeadDeletion(context.Background(), DeletionRecord{
		LeadID: 1, Name: "A", Source: "Offline", Status: "Closed Lost",
	})
	assert.True(t, domain.IsValidation(err))
}

func TestRecentDeletionsNewestFirst(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	service := NewService(client)
	ctx := context.Background()

	for i, name := range []string{"First", "Second", "Third"} {
		require.NoError(t, service.LogLeadDeletion(ctx, DeletionRecord{
			LeadID: i + 1,
			Name:   name,
			Source: "Website",
			Status: "Not Interested",
			Reason: "duplicate",
		}))
	}

	entries, err := service.RecentDeletions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "duplicate", entries[0].Reason)
}
