package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusStates(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		state  string
	}{
		{"healthy", NewHealthy("catalog", "8 tables loaded"), StateHealthy},
		{"degraded", NewDegraded("synthesizer", "no providers registered"), StateDegraded},
		{"unhealthy", NewUnhealthy("catalog", "no mapping tables loaded"), StateUnhealthy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.state, tt.status.Status)
			assert.Equal(t, tt.state == StateHealthy, tt.status.Healthy)
			assert.False(t, tt.status.Timestamp.IsZero())
		})
	}
}

func TestSanitizeMessage(t *testing.T) {
	s := NewUnhealthy("provider", "fetch from https://waterservices.usgs.gov/nwis failed, token=abc123")
	assert.NotContains(t, s.Message, "waterservices")
	assert.NotContains(t, s.Message, "abc123")
	assert.Contains(t, s.Message, "[URL]")
	assert.Contains(t, s.Message, "[REDACTED]")
}

func TestMonitorOverall(t *testing.T) {
	m := NewMonitor()
	assert.True(t, m.Overall().IsDegraded(), "empty monitor has nothing to report")

	m.UpdateHealthy("catalog", "loaded")
	m.UpdateHealthy("synthesizer", "2 datasources registered")
	assert.True(t, m.Overall().IsHealthy())

	m.UpdateDegraded("synthesizer", "one datasource skipped")
	assert.True(t, m.Overall().IsDegraded())

	m.UpdateUnhealthy("catalog", "reload failed")
	overall := m.Overall()
	assert.True(t, overall.IsUnhealthy())
	assert.Len(t, overall.SubStatuses, 2)

	got, ok := m.Get("catalog")
	require.True(t, ok)
	assert.Equal(t, "catalog", got.Component)
	assert.Len(t, m.GetAll(), 2)
}
