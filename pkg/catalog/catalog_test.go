package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueLabelRoundTrip(t *testing.T) {
	for _, s := range Sources {
		v, ok := SourceValue(SourceLabel(s))
		assert.True(t, ok)
		assert.Equal(t, s, v)
	}
	for _, s := range Statuses {
		v, ok := StatusValue(StatusLabel(s))
		assert.True(t, ok)
		assert.Equal(t, s, v)
	}
	for _, ci := range CarInterests {
		v, ok := InterestValue(InterestLabel(ci))
		assert.True(t, ok)
		assert.Equal(t, ci, v)
	}
}

func TestValueAcceptsBothForms(t *testing.T) {
	v, ok := StatusValue("Not Interested")
	assert.True(t, ok)
	assert.Equal(t, StatusNotInterested, v)

	v, ok = StatusValue("not_interested")
	assert.True(t, ok)
	assert.Equal(t, StatusNotInterested, v)

	_, ok = StatusValue("Abandoned")
	assert.False(t, ok)
}

func TestEveryInterestHasModels(t *testing.T) {
	for _, ci := range CarInterests {
		assert.NotEmpty(t, CarModels[ci], "interest %s has no models", ci)
	}
}

func TestColorsCoverEveryValue(t *testing.T) {
	for _, s := range Sources {
		assert.NotEmpty(t, SourceColors[s])
	}
	for _, s := range Statuses {
		assert.NotEmpty(t, StatusColors[s])
	}
}

func TestTerminalNegative(t *testing.T) {
	assert.True(t, TerminalNegative(StatusNotInterested))
	assert.True(t, TerminalNegative(StatusClosedLost))
	assert.False(t, TerminalNegative(StatusClosedWon))
	assert.False(t, TerminalNegative(StatusNew))
}
