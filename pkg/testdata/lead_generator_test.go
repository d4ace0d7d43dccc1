package testdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsrmotors/leadpulse/ent"
	"github.com/hsrmotors/leadpulse/ent/enttest"
	"github.com/hsrmotors/leadpulse/pkg/assignment"
	"github.com/hsrmotors/leadpulse/pkg/catalog"
	"github.com/hsrmotors/leadpulse/pkg/models"

	_ "github.com/mattn/go-sqlite3"
)

func setupGenerator(t *testing.T) (*Generator, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	require.NoError(t, assignment.NewService(client).SeedRoster(context.Background()))
	return NewGenerator(client, 42), client
}

func TestSeedIfEmpty(t *testing.T) {
	gen, client := setupGenerator(t)
	ctx := context.Background()

	created, err := gen.SeedIfEmpty(ctx, 80)
	require.NoError(t, err)
	assert.Equal(t, 80, created)

	count, err := client.Lead.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 80, count)

	// Second run is a no-op.
	created, err = gen.SeedIfEmpty(ctx, 80)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestSeedUpdatesAssignmentCounters(t *testing.T) {
	gen, client := setupGenerator(t)
	ctx := context.Background()

	_, err := gen.SeedIfEmpty(ctx, 80)
	require.NoError(t, err)

	execs, err := client.SalesExecutive.Query().All(ctx)
	require.NoError(t, err)

	total := 0
	for _, e := range execs {
		assert.Equal(t, 16, e.LeadsAssigned, "80 leads over 5 executives round-robin")
		total += e.LeadsAssigned
	}
	assert.Equal(t, 80, total)
}

func TestSeededLeadsAreInternallyConsistent(t *testing.T) {
	gen, client := setupGenerator(t)
	ctx := context.Background()

	_, err := gen.SeedIfEmpty(ctx, 40)
	require.NoError(t, err)

	leads, err := client.Lead.Query().All(ctx)
	require.NoError(t, err)

	for _, l := range leads {
		assert.Contains(t, catalog.CarModels[string(l.CarInterest)], l.CarModel,
			"car model must belong to the lead's interest category")
		assert.NotEmpty(t, l.Activities)

		// Activities are newest-first and every non-New lead has a trail
		// explaining how it got there.
		for i := 1; i < len(l.Activities); i++ {
			assert.False(t, l.Activities[i].Timestamp.After(l.Activities[i-1].Timestamp))
		}
		oldest := l.Activities[len(l.Activities)-1]
		assert.Equal(t, models.ActivityCreated, oldest.Type)
		if string(l.Status) != catalog.StatusNew {
			assert.Greater(t, len(l.Activities), 1)
		}
		assert.False(t, l.LastActivity.Before(l.CreatedAt))
	}
}

func TestNewArrival(t *testing.T) {
	gen, _ := setupGenerator(t)

	for i := 0; i < 20; i++ {
		req := gen.NewArrival()
		assert.NotEmpty(t, req.Name)
		assert.NotEmpty(t, req.Phone)
		assert.True(t, catalog.ValidSource(req.Source))
		assert.True(t, catalog.ValidInterest(req.CarInterest))
		if req.Source == catalog.SourceFacebook || req.Source == catalog.SourceGoogle {
			assert.Contains(t, catalog.Campaigns, req.CampaignName)
		}
	}
}
