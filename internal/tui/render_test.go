package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/budgetwise/internal/client"
	"github.com/carson-networks/budgetwise/internal/settings"
)

var sampleEntries = []settings.Entry{
	settings.Pending{Tag: "a", Record: settings.Record{Name: "Vault", Type: client.AccountTypeSavings, CreatedAt: time.Now()}},
	settings.Confirmed{ID: "7", Record: settings.Record{Name: "Wallet", Type: client.AccountTypeCash}},
}

func TestRenderList(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name     string
		state    settings.State
		contains []string
		excludes []string
	}{
		{
			name:     "loading",
			state:    settings.State{Phase: settings.PhaseLoading},
			contains: []string{"Loading…"},
		},
		{
			name:     "failed",
			state:    settings.State{Phase: settings.PhaseFailed, Err: "permission denied"},
			contains: []string{"Error: permission denied"},
		},
		{
			name:     "empty",
			state:    settings.State{Phase: settings.PhaseReady},
			contains: []string{"No accounts yet."},
		},
		{
			name:     "rows without delete markers",
			state:    settings.State{Phase: settings.PhaseReady, Entries: sampleEntries[1:]},
			contains: []string{"Wallet · cash"},
			excludes: []string{"delete", "No accounts yet."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.RenderList(tt.state)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderSettings(t *testing.T) {
	r := NewRenderer()

	t.Run("pending rows have no delete marker", func(t *testing.T) {
		out := r.RenderSettings(settings.State{Phase: settings.PhaseReady, Entries: sampleEntries, Submitting: true})

		assert.Contains(t, out, "Vault · savings (saving)")
		assert.Contains(t, out, "[delete 7]")
		assert.NotContains(t, out, "[delete temp-a]")
		assert.Contains(t, out, "Adding...")
	})

	t.Run("error and idle button", func(t *testing.T) {
		out := r.RenderSettings(settings.State{Phase: settings.PhaseReady, Err: "network error"})

		assert.Contains(t, out, "network error")
		assert.Contains(t, out, "No accounts yet.")
		assert.Contains(t, out, "Add")
		assert.NotContains(t, out, "Adding...")
	})

	t.Run("loading", func(t *testing.T) {
		assert.Contains(t, r.RenderSettings(settings.State{}), "Loading…")
	})
}
