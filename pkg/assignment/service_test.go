package assignment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsrmotors/leadpulse/ent"
	"github.com/hsrmotors/leadpulse/ent/enttest"
	"github.com/hsrmotors/leadpulse/pkg/catalog"
	"github.com/hsrmotors/leadpulse/pkg/domain"
	"github.com/hsrmotors/leadpulse/pkg/models"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	service := NewService(client)
	require.NoError(t, service.SeedRoster(context.Background()))
	return service, client
}

func TestSeedRosterIsIdempotent(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()

	require.NoError(t, service.SeedRoster(ctx))

	count, err := client.SalesExecutive.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestAssignExecutiveRoundRobin(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	execs, err := service.ListExecutives(ctx)
	require.NoError(t, err)
	require.Len(t, execs, 5)

	order := make([]int, 0, 12)
	for i := 0; i < 12; i++ {
		exec, err := service.AssignExecutive(ctx, catalog.SourceWebsite, catalog.InterestSedan)
		require.NoError(t, err)
		order = append(order, exec.ID)
	}

	// The cursor cycles the roster in id order and wraps around: 12
	// assignments walk 1,2,3,4,5,1,2,... with no skips.
	for i, id := range order {
		assert.Equal(t, execs[i%5].ID, id, "assignment %d broke the rotation", i)
	}
}

func TestAssignExecutiveIncrementsCounter(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	exec, err := service.AssignExecutive(ctx, catalog.SourceFacebook, catalog.InterestSUV)
	require.NoError(t, err)
	assert.Equal(t, 1, exec.LeadsAssigned)
}

func TestAssignExecutiveFollowsRule(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	_, err := service.CreateRule(ctx, models.RuleRequest{
		Source:       catalog.SourceFacebook,
		AssignToTeam: "digital",
	})
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		exec, err := service.AssignExecutive(ctx, catalog.SourceFacebook, catalog.InterestSUV)
		require.NoError(t, err)
		assert.Equal(t, "digital", exec.Team)
	}

	// Non-matching source still rotates over the full roster.
	exec, err := service.AssignExecutive(ctx, catalog.SourceOffline, catalog.InterestSUV)
	require.NoError(t, err)
	assert.NotEmpty(t, exec.Name)
}

func TestAssignExecutiveLeastLoadedRule(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()

	rr := false
	_, err := service.CreateRule(ctx, models.RuleRequest{
		CarInterest:  catalog.InterestLuxury,
		AssignToTeam: "showroom",
		RoundRobin:   &rr,
	})
	require.NoError(t, err)

	// Preload one showroom member so the other is the least loaded.
	execs, err := service.ListExecutives(ctx)
	require.NoError(t, err)
	var loaded int
	for _, e := range execs {
		if e.Team == "showroom" {
			loaded = e.ID
			break
		}
	}
	_, err = client.SalesExecutive.UpdateOneID(loaded).AddLeadsAssigned(10).Save(ctx)
	require.NoError(t, err)

	exec, err := service.AssignExecutive(ctx, catalog.SourceWebsite, catalog.InterestLuxury)
	require.NoError(t, err)
	assert.Equal(t, "showroom", exec.Team)
	assert.NotEqual(t, loaded, exec.ID)
}

func TestCreateRuleValidation(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	_, err := service.CreateRule(ctx, models.RuleRequest{AssignToTeam: "digital"})
	assert.True(t, domain.IsValidation(err))

	_, err = service.CreateRule(ctx, models.RuleRequest{Source: catalog.SourceGoogle})
	assert.True(t, domain.IsValidation(err))
}

func TestDeleteRuleNotFound(t *testing.T) {
	service, _ := setupTestService(t)

	err := service.DeleteRule(context.Background(), 9999)
	assert.True(t, domain.IsNotFound(err))
}

func TestGetExecutiveNotFound(t *testing.T) {
	service, _ := setupTestService(t)

	_, err := service.GetExecutive(context.Background(), 9999)
	assert.True(t, domain.IsNotFound(err))
}
