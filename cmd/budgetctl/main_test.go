package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budgetwise/internal/config"
)

func TestAccountsCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/accounts", r.URL.Path)
		_, _ = w.Write([]byte(`{"accounts":[{"id":"7","name":"Wallet","type":"cash","created_at":"2025-07-01T12:00:00Z"}]}`))
	}))
	t.Cleanup(server.Close)

	var out bytes.Buffer
	app := newApp(&config.Config{ServerURL: "http://unused.invalid"})
	app.Writer = &out

	err := app.Run([]string{"budgetctl", "--server", server.URL, "accounts"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Wallet · cash")
}

func TestAccountsCommand_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"accounts":[]}`))
	}))
	t.Cleanup(server.Close)

	var out bytes.Buffer
	app := newApp(&config.Config{ServerURL: server.URL})
	app.Writer = &out

	require.NoError(t, app.Run([]string{"budgetctl", "accounts"}))
	assert.Contains(t, out.String(), "No accounts yet.")
}
