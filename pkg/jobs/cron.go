// Package jobs runs the scheduled background work: the inbound lead
// simulator and the hourly SLA sweep.
package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/hsrmotors/leadpulse/pkg/analytics"
	"github.com/hsrmotors/leadpulse/pkg/lifecycle"
	"github.com/hsrmotors/leadpulse/pkg/testdata"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron      *cron.Cron
	lifecycle *lifecycle.Service
	generator *testdata.Generator
	analytics *analytics.Service
	logger    *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(lc *lifecycle.Service, gen *testdata.Generator, an *analytics.Service, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:      cron.New(),
		lifecycle: lc,
		generator: gen,
		analytics: an,
		logger:    logger,
	}
}

// SetupJobs configures all scheduled jobs. When simulateArrivals is false
// only the SLA sweep is registered.
func (cm *CronManager) SetupJobs(arrivalIntervalSeconds int, simulateArrivals bool) error {
	cm.logger.Println("Setting up cron jobs...")

	if simulateArrivals {
		if arrivalIntervalSeconds <= 0 {
			arrivalIntervalSeconds = 90
		}
		spec := fmt.Sprintf("@every %ds", arrivalIntervalSeconds)
		_, err := cm.cron.AddFunc(spec, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			req := cm.generator.NewArrival()
			lead, err := cm.lifecycle.Create(ctx, req)
			if err != nil {
				cm.logger.Printf("❌ Failed to create simulated lead: %v", err)
				return
			}
			cm.logger.Printf("📥 New lead arrived: %s (%s) → %s", lead.Name, lead.Source, lead.AssignedToName)
		})
		if err != nil {
			return fmt.Errorf("failed to register arrival job: %w", err)
		}
		cm.logger.Printf("✅ Arrival simulator registered (every %ds)", arrivalIntervalSeconds)
	}

	// Hourly: report how many leads currently breach the response SLA.
	_, err := cm.cron.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		count, err := cm.analytics.StaleLeadCount(ctx)
		if err != nil {
			cm.logger.Printf("❌ Failed to count stale leads: %v", err)
			return
		}
		if count > 0 {
			cm.logger.Printf("⚠️ %d leads waiting past the response SLA", count)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to register SLA sweep: %w", err)
	}

	return nil
}

// Start begins running scheduled jobs
func (cm *CronManager) Start() {
	cm.cron.Start()
	cm.logger.Println("✅ Cron jobs started")
}

// Stop gracefully stops all scheduled jobs. Running jobs finish; future
// ticks are cancelled.
func (cm *CronManager) Stop() {
	ctx := cm.cron.Stop()
	<-ctx.Done()
	cm.logger.Println("✅ Cron jobs stopped")
}
