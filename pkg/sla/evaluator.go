// Package sla derives lead staleness from the first-response SLA.
package sla

import (
	"time"

	"github.com/hsrmotors/leadpulse/pkg/catalog"
)

// Evaluator decides whether a lead has breached the first-response SLA.
// Staleness is always derived at read time and never persisted.
type Evaluator struct {
	threshold time.Duration
}

// New creates an evaluator with the given response threshold in hours.
func New(responseHours int) *Evaluator {
	if responseHours <= 0 {
		responseHours = 2
	}
	return &Evaluator{threshold: time.Duration(responseHours) * time.Hour}
}

// Threshold returns the configured SLA window.
func (e *Evaluator) Threshold() time.Duration {
	return e.threshold
}

// IsStale reports whether a lead with the given status and creation time has
// sat untouched past the SLA window. Only leads still in the New status can
// be stale; any recorded touch moves them out of it.
func (e *Evaluator) IsStale(status string, createdAt, now time.Time) bool {
	if status != catalog.StatusNew {
		return false
	}
	return now.Sub(createdAt) >= e.threshold
}
