package analytics

import (
	"sort"
	"time"

	"github.com/hsrmotors/leadpulse/ent"
	"github.com/hsrmotors/leadpulse/pkg/catalog"
	"github.com/hsrmotors/leadpulse/pkg/models"
)

const recentActivityLimit = 15

// compute derives the full dashboard aggregate from an in-memory snapshot.
// All month and day windows use local midnight boundaries.
func (s *Service) compute(leads []*ent.Lead, execs []*ent.SalesExecutive, now time.Time) *models.DashboardStats {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := monthStart.AddDate(0, -1, 0)

	stats := &models.DashboardStats{
		TotalLeads: len(leads),
	}

	var closedWonTotal int
	var responseSum time.Duration
	var responseCount int

	sourceCounts := make(map[string]int)
	statusCounts := make(map[string]int)

	for _, l := range leads {
		status := string(l.Status)
		source := string(l.Source)
		sourceCounts[source]++
		statusCounts[status]++

		inThisMonth := !l.CreatedAt.Before(monthStart)
		inLastMonth := !l.CreatedAt.Before(lastMonthStart) && l.CreatedAt.Before(monthStart)

		if inThisMonth {
			stats.TotalLeadsThisMonth++
		}
		if inLastMonth {
			stats.TotalLeadsLastMonth++
		}

		qualified := status == catalog.StatusQualified || status == catalog.StatusClosedWon
		if qualified && inThisMonth {
			stats.QualifiedThisMonth++
		}
		if qualified && inLastMonth {
			stats.QualifiedLastMonth++
		}

		if status == catalog.StatusClosedWon {
			closedWonTotal++
			if inThisMonth {
				stats.ClosedWonThisMonth++
			}
			if inLastMonth {
				stats.ClosedWonLastMonth++
			}
		}
		if status == catalog.StatusClosedLost && inThisMonth {
			stats.ClosedLostThisMonth++
		}

		if s.sla.IsStale(status, l.CreatedAt, now) {
			stats.StaleLeads++
		}

		if rt, ok := responseTime(l); ok {
			responseSum += rt
			responseCount++
		}
	}

	if stats.TotalLeads > 0 {
		stats.ConversionRate = float64(closedWonTotal) / float64(stats.TotalLeads) * 100
	}
	if responseCount > 0 {
		stats.AvgResponseTimeHrs = responseSum.Hours() / float64(responseCount)
	}

	stats.LeadsBySource = bySource(sourceCounts)
	stats.LeadsOverTime = overTime(leads, now)
	stats.Funnel = funnel(statusCounts)
	stats.TeamPerformance = teamPerformance(leads, execs)
	stats.RecentActivity = recentActivity(leads)

	return stats
}

// responseTime is the gap between creation and the first call or status
// change on the trail. Leads that were never touched report no response.
func responseTime(l *ent.Lead) (time.Duration, bool) {
	// Activities are stored newest-first; walk from the oldest end.
	for i := len(l.Activities) - 1; i >= 0; i-- {
		a := l.Activities[i]
		if a.Type == models.ActivityCallLogged || a.Type == models.ActivityStatusChange {
			d := a.Timestamp.Sub(l.CreatedAt)
			if d < 0 {
				d = 0
			}
			return d, true
		}
	}
	return 0, false
}

func bySource(counts map[string]int) []models.SourceCount {
	out := make([]models.SourceCount, 0, len(catalog.Sources))
	for _, src := range catalog.Sources {
		out = append(out, models.SourceCount{
			Source: catalog.SourceLabel(src),
			Count:  counts[src],
			Color:  catalog.SourceColors[src],
		})
	}
	return out
}

// overTime buckets arrivals per local day for the trailing 30 days,
// oldest first. Days without arrivals still appear with zero counts.
func overTime(leads []*ent.Lead, now time.Time) []models.DayEntry {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := today.AddDate(0, 0, -29)

	entries := make([]models.DayEntry, 30)
	index := make(map[string]int, 30)
	for i := 0; i < 30; i++ {
		day := start.AddDate(0, 0, i)
		key := day.Format("2006-01-02")
		entries[i] = models.DayEntry{Date: key, BySource: make(map[string]int)}
		index[key] = i
	}

	for _, l := range leads {
		key := l.CreatedAt.In(now.Location()).Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			continue
		}
		entries[i].Total++
		entries[i].BySource[catalog.SourceLabel(string(l.Source))]++
	}

	return entries
}

// funnel covers every pipeline stage except Closed Lost.
func funnel(counts map[string]int) []models.FunnelEntry {
	out := make([]models.FunnelEntry, 0, len(catalog.Statuses)-1)
	for _, st := range catalog.Statuses {
		if st == catalog.StatusClosedLost {
			continue
		}
		out = append(out, models.FunnelEntry{
			Status: catalog.StatusLabel(st),
			Count:  counts[st],
			Color:  catalog.StatusColors[st],
		})
	}
	return out
}

// teamPerformance reports every roster member, including those with no
// leads currently assigned. All counts are over the member's current book;
// the cumulative assignment counter is served on the roster endpoint, not
// here. Contacted means reached Contacted or further along a winning path.
func teamPerformance(leads []*ent.Lead, execs []*ent.SalesExecutive) []models.TeamPerformance {
	type book struct {
		current     int
		contacted   int
		qualified   int
		closedWon   int
		responseSum time.Duration
		responses   int
	}
	books := make(map[int]*book, len(execs))
	for _, e := range execs {
		books[e.ID] = &book{}
	}

	for _, l := range leads {
		b, ok := books[l.AssignedTo]
		if !ok {
			continue
		}
		b.current++
		status := string(l.Status)
		if status == catalog.StatusContacted || status == catalog.StatusQualified || status == catalog.StatusClosedWon {
			b.contacted++
		}
		if status == catalog.StatusQualified || status == catalog.StatusClosedWon {
			b.qualified++
		}
		if status == catalog.StatusClosedWon {
			b.closedWon++
		}
		if rt, ok := responseTime(l); ok {
			b.responseSum += rt
			b.responses++
		}
	}

	out := make([]models.TeamPerformance, 0, len(execs))
	for _, e := range execs {
		b := books[e.ID]
		tp := models.TeamPerformance{
			ExecutiveID:   e.ID,
			Name:          e.Name,
			Avatar:        e.Avatar,
			LeadsAssigned: b.current,
			Contacted:     b.contacted,
			Qualified:     b.qualified,
			ClosedWon:     b.closedWon,
		}
		if b.current > 0 {
			tp.ConversionRate = float64(b.closedWon) / float64(b.current) * 100
		}
		if b.responses > 0 {
			tp.AvgResponseHrs = b.responseSum.Hours() / float64(b.responses)
		}
		out = append(out, tp)
	}
	return out
}

// recentActivity flattens every lead's trail and keeps the newest entries.
func recentActivity(leads []*ent.Lead) []models.RecentActivity {
	all := make([]models.RecentActivity, 0, len(leads)*2)
	for _, l := range leads {
		for _, a := range l.Activities {
			all = append(all, models.RecentActivity{
				LeadID:   l.ID,
				LeadName: l.Name,
				Activity: a,
			})
		}
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].Activity.Timestamp.After(all[j].Activity.Timestamp)
	})

	if len(all) > recentActivityLimit {
		all = all[:recentActivityLimit]
	}
	return all
}
