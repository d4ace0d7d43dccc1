package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsrmotors/leadpulse/ent"
	"github.com/hsrmotors/leadpulse/ent/enttest"
	entlead "github.com/hsrmotors/leadpulse/ent/lead"
	"github.com/hsrmotors/leadpulse/pkg/cache"
	"github.com/hsrmotors/leadpulse/pkg/catalog"
	"github.com/hsrmotors/leadpulse/pkg/logger"
	"github.com/hsrmotors/leadpulse/pkg/models"
	"github.com/hsrmotors/leadpulse/pkg/sla"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	service := NewService(client, nil, sla.New(2), nil, logger.Default())
	return service, client
}

func insertLead(t *testing.T, client *ent.Client, name, source, status string, createdAt time.Time, assignedTo int, activities []models.ActivityLog) *ent.Lead {
	l, err := client.Lead.Create().
		SetName(name).
		SetPhone("+919876543210").
		SetSource(entlead.Source(source)).
		SetStatus(entlead.Status(status)).
		SetAssignedTo(assignedTo).
		SetAssignedToName("Test Exec").
		SetActivities(activities).
		SetCreatedAt(createdAt).
		SetLastActivity(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return l
}

func insertExec(t *testing.T, client *ent.Client, name, email string, leadsAssigned int) *ent.SalesExecutive {
	e, err := client.SalesExecutive.Create().
		SetName(name).
		SetAvatar("TE").
		SetEmail(email).
		SetLeadsAssigned(leadsAssigned).
		Save(context.Background())
	require.NoError(t, err)
	return e
}

func TestComputeStatsEmptySet(t *testing.T) {
	service, _ := setupTestService(t)

	stats, err := service.ComputeStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalLeads)
	assert.Equal(t, float64(0), stats.ConversionRate)
	assert.Equal(t, float64(0), stats.AvgResponseTimeHrs)
	assert.Len(t, stats.LeadsOverTime, 30)
	assert.Len(t, stats.LeadsBySource, 5)
	assert.Len(t, stats.Funnel, 5)
	assert.Empty(t, stats.RecentActivity)
}

func TestFunnelExcludesClosedLostButTotalsInclude(t *testing.T) {
	service, client := setupTestService(t)
	now := time.Now()

	insertLead(t, client, "A", catalog.SourceFacebook, catalog.StatusNew, now, 1, nil)
	insertLead(t, client, "B", catalog.SourceGoogle, catalog.StatusContacted, now, 1, nil)
	insertLead(t, client, "C", catalog.SourceWebsite, catalog.StatusClosedWon, now, 1, nil)
	insertLead(t, client, "D", catalog.SourceOffline, catalog.StatusClosedLost, now, 1, nil)

	stats, err := service.ComputeStats(context.Background())
	require.NoError(t, err)

	funnelSum := 0
	for _, f := range stats.Funnel {
		assert.NotEqual(t, "Closed Lost", f.Status)
		funnelSum += f.Count
	}

	// Closed Lost leads vanish from the funnel but never from the totals.
	assert.Equal(t, 3, funnelSum)
	assert.Equal(t, 4, stats.TotalLeads)
	assert.Equal(t, 1, stats.ClosedLostThisMonth)
}

func TestMonthWindows(t *testing.T) {
	service, client := setupTestService(t)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)
	service.now = func() time.Time { return now }

	monthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	insertLead(t, client, "ThisMonth", catalog.SourceFacebook, catalog.StatusClosedWon, monthStart, 1, nil)
	insertLead(t, client, "LastMonthEdge", catalog.SourceFacebook, catalog.StatusClosedWon, monthStart.Add(-time.Second), 1, nil)
	insertLead(t, client, "TwoMonthsAgo", catalog.SourceFacebook, catalog.StatusClosedWon, monthStart.AddDate(0, -2, 0), 1, nil)

	stats, err := service.ComputeStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalLeadsThisMonth)
	assert.Equal(t, 1, stats.TotalLeadsLastMonth)
	assert.Equal(t, 1, stats.ClosedWonThisMonth)
	assert.Equal(t, 1, stats.ClosedWonLastMonth)
	assert.Equal(t, 2, stats.QualifiedLastMonth+stats.QualifiedThisMonth)
}

func TestLeadsOverTimeHasExactly30OldestFirst(t *testing.T) {
	service, client := setupTestService(t)
	now := time.Now()

	insertLead(t, client, "Today", catalog.SourceTwitter, catalog.StatusNew, now, 1, nil)
	insertLead(t, client, "TooOld", catalog.SourceTwitter, catalog.StatusNew, now.AddDate(0, 0, -45), 1, nil)

	stats, err := service.ComputeStats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.LeadsOverTime, 30)
	for i := 1; i < 30; i++ {
		assert.Less(t, stats.LeadsOverTime[i-1].Date, stats.LeadsOverTime[i].Date)
	}

	last := stats.LeadsOverTime[29]
	assert.Equal(t, 1, last.Total)
	assert.Equal(t, 1, last.BySource["Twitter"])

	total := 0
	for _, d := range stats.LeadsOverTime {
		total += d.Total
	}
	assert.Equal(t, 1, total, "45-day-old lead must not appear in the series")
}

func TestAvgResponseTimeFromTrail(t *testing.T) {
	service, client := setupTestService(t)
	created := time.Now().Add(-10 * time.Hour)

	trail := []models.ActivityLog{
		{ID: "2", Type: models.ActivityCallLogged, Timestamp: created.Add(4 * time.Hour)},
		{ID: "1", Type: models.ActivityCreated, Timestamp: created},
	}
	insertLead(t, client, "Responded", catalog.SourceGoogle, catalog.StatusContacted, created, 1, trail)
	insertLead(t, client, "Untouched", catalog.SourceGoogle, catalog.StatusNew, created, 1, []models.ActivityLog{
		{ID: "3", Type: models.ActivityCreated, Timestamp: created},
	})

	stats, err := service.ComputeStats(context.Background())
	require.NoError(t, err)

	// Only the responded lead contributes.
	assert.InDelta(t, 4.0, stats.AvgResponseTimeHrs, 0.01)
}

func TestTeamPerformanceCoversWholeRoster(t *testing.T) {
	service, client := setupTestService(t)
	now := time.Now()

	busy := insertExec(t, client, "Busy Exec", "busy@hsrmotors.com", 7)
	insertExec(t, client, "Idle Exec", "idle@hsrmotors.com", 0)

	insertLead(t, client, "A", catalog.SourceFacebook, catalog.StatusClosedWon, now, busy.ID, nil)
	insertLead(t, client, "B", catalog.SourceFacebook, catalog.StatusContacted, now, busy.ID, nil)

	stats, err := service.ComputeStats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.TeamPerformance, 2)
	assert.Equal(t, 2, stats.TeamPerformance[0].LeadsAssigned)
	assert.Equal(t, 2, stats.TeamPerformance[0].Contacted)
	assert.Equal(t, 1, stats.TeamPerformance[0].ClosedWon)
	assert.InDelta(t, 50.0, stats.TeamPerformance[0].ConversionRate, 0.01)

	// Idle members still appear, with zeroes instead of NaN.
	assert.Equal(t, "Idle Exec", stats.TeamPerformance[1].Name)
	assert.Equal(t, float64(0), stats.TeamPerformance[1].ConversionRate)
}

func TestTeamPerformanceCountsCurrentBookOnly(t *testing.T) {
	service, client := setupTestService(t)
	now := time.Now()

	// The cumulative counter says 10, but only one lead is on the book
	// right now, and it dropped out at Not Interested.
	exec := insertExec(t, client, "Exec", "exec@hsrmotors.com", 10)
	insertLead(t, client, "A", catalog.SourceWebsite, catalog.StatusNotInterested, now, exec.ID, nil)

	stats, err := service.ComputeStats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.TeamPerformance, 1)
	tp := stats.TeamPerformance[0]
	assert.Equal(t, 1, tp.LeadsAssigned)
	assert.Equal(t, 0, tp.Contacted, "Not Interested is not contacted-or-beyond")
	assert.Equal(t, 0, tp.Qualified)
	assert.Equal(t, 0, tp.ClosedWon)

	// Closed Lost does not count as contacted either; Contacted does.
	insertLead(t, client, "B", catalog.SourceWebsite, catalog.StatusClosedLost, now, exec.ID, nil)
	insertLead(t, client, "C", catalog.SourceWebsite, catalog.StatusContacted, now, exec.ID, nil)

	stats, err = service.ComputeStats(context.Background())
	require.NoError(t, err)
	tp = stats.TeamPerformance[0]
	assert.Equal(t, 3, tp.LeadsAssigned)
	assert.Equal(t, 1, tp.Contacted)
}

func TestRecentActivityTop15(t *testing.T) {
	service, client := setupTestService(t)
	now := time.Now()

	for i := 0; i < 4; i++ {
		trail := make([]models.ActivityLog, 0, 5)
		for j := 0; j < 5; j++ {
			trail = append(trail, models.ActivityLog{
				ID:        uidAt(i, j),
				Type:      models.ActivityNoteAdded,
				Timestamp: now.Add(-time.Duration(i*5+j) * time.Minute),
			})
		}
		insertLead(t, client, "Lead", catalog.SourceWebsite, catalog.StatusNew, now.Add(-time.Hour), 1, trail)
	}

	stats, err := service.ComputeStats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.RecentActivity, 15)
	for i := 1; i < len(stats.RecentActivity); i++ {
		assert.False(t, stats.RecentActivity[i].Activity.Timestamp.After(stats.RecentActivity[i-1].Activity.Timestamp))
	}
}

func uidAt(i, j int) string {
	return string(rune('a'+i)) + string(rune('a'+j))
}

func TestComputeStatsUsesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)

	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	service := NewService(client, cacheClient, sla.New(2), nil, logger.Default())
	ctx := context.Background()

	first, err := service.ComputeStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, first.TotalLeads)

	// A write that bypasses the lifecycle does not invalidate the cache,
	// so the cached snapshot is still served.
	insertLead(t, client, "Fresh", catalog.SourceOffline, catalog.StatusNew, time.Now(), 1, nil)

	second, err := service.ComputeStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second.TotalLeads)

	// Once the cache entry is gone the recompute sees the new lead.
	require.NoError(t, cacheClient.DeletePattern(ctx, "dashboard:*"))
	third, err := service.ComputeStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, third.TotalLeads)
}
