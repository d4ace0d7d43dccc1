// Package analytics computes the dashboard aggregates.
package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hsrmotors/leadpulse/ent"
	entlead "github.com/hsrmotors/leadpulse/ent/lead"
	"github.com/hsrmotors/leadpulse/ent/salesexecutive"
	"github.com/hsrmotors/leadpulse/pkg/cache"
	"github.com/hsrmotors/leadpulse/pkg/domain"
	"github.com/hsrmotors/leadpulse/pkg/logger"
	"github.com/hsrmotors/leadpulse/pkg/metrics"
	"github.com/hsrmotors/leadpulse/pkg/models"
	"github.com/hsrmotors/leadpulse/pkg/sla"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 60 * time.Second
)

// Service computes dashboard statistics over the full lead set. Results are
// cached briefly; lead mutations invalidate the cache.
type Service struct {
	db      *ent.Client
	cache   *cache.Client
	sla     *sla.Evaluator
	metrics *metrics.Metrics
	log     logger.Logger
	now     func() time.Time
}

// NewService creates a new analytics service. cacheClient and m may be nil.
func NewService(db *ent.Client, cacheClient *cache.Client, slaEval *sla.Evaluator, m *metrics.Metrics, log logger.Logger) *Service {
	return &Service{
		db:      db,
		cache:   cacheClient,
		sla:     slaEval,
		metrics: m,
		log:     log,
		now:     time.Now,
	}
}

// ComputeStats returns the dashboard aggregate, from cache when fresh.
func (s *Service) ComputeStats(ctx context.Context) (*models.DashboardStats, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, statsCacheKey); err == nil && raw != "" {
			var cached models.DashboardStats
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				s.metrics.RecordCacheHit()
				return &cached, nil
			}
		}
		s.metrics.RecordCacheMiss()
	}

	leads, err := s.db.Lead.Query().
		Order(ent.Desc(entlead.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, domain.NewStoreFailure("load leads for stats", err)
	}

	execs, err := s.db.SalesExecutive.Query().
		Order(ent.Asc(salesexecutive.FieldID)).
		All(ctx)
	if err != nil {
		return nil, domain.NewStoreFailure("load roster for stats", err)
	}

	stats := s.compute(leads, execs, s.now())

	if s.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, raw, statsCacheTTL); err != nil {
				s.log.Warn("failed to cache dashboard stats", "error", err)
			}
		}
	}

	return stats, nil
}

// StaleLeadCount returns how many leads currently breach the response SLA.
func (s *Service) StaleLeadCount(ctx context.Context) (int, error) {
	leads, err := s.db.Lead.Query().
		Where(entlead.StatusEQ(entlead.StatusNew)).
		All(ctx)
	if err != nil {
		return 0, domain.NewStoreFailure("load new leads", err)
	}

	now := s.now()
	count := 0
	for _, l := range leads {
		if s.sla.IsStale(string(l.Status), l.CreatedAt, now) {
			count++
		}
	}
	return count, nil
}
