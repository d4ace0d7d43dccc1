package sla

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hsrmotors/leadpulse/pkg/catalog"
)

func TestIsStale(t *testing.T) {
	eval := New(2)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name      string
		status    string
		createdAt time.Time
		want      bool
	}{
		{"new lead past threshold", catalog.StatusNew, now.Add(-3 * time.Hour), true},
		{"new lead exactly at threshold", catalog.StatusNew, now.Add(-2 * time.Hour), true},
		{"new lead within threshold", catalog.StatusNew, now.Add(-90 * time.Minute), false},
		{"contacted lead past threshold", catalog.StatusContacted, now.Add(-48 * time.Hour), false},
		{"closed won lead past threshold", catalog.StatusClosedWon, now.Add(-48 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eval.IsStale(tt.status, tt.createdAt, now))
		})
	}
}

func TestNewDefaultsInvalidThreshold(t *testing.T) {
	eval := New(0)
	assert.Equal(t, 2*time.Hour, eval.Threshold())

	eval = New(-5)
	assert.Equal(t, 2*time.Hour, eval.Threshold())
}
