package api

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthReturnsStatus(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		w.Write([]byte(`{"status":"ok"}`))
	})

	status, err := client.Health()
	require.NoError(t, err)
	assert.Equal(t, "ok", status)
}

func TestWaitHealthySucceedsFirstTry(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	attempts, err := client.WaitHealthy(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestWaitHealthyRetriesUntilHealthy(t *testing.T) {
	var calls atomic.Int32
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"status":"ok"}`))
	})

	attempts, err := client.WaitHealthy(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestWaitHealthyExhaustsBudget(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"degraded"}`))
	})

	attempts, err := client.WaitHealthy(context.Background(), 2)
	require.Error(t, err)
	assert.Equal(t, 2, attempts)
	assert.Contains(t, err.Error(), "degraded")
}

func TestWaitHealthyHonorsContext(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.WaitHealthy(ctx, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGetStats(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stats", r.URL.Path)
		w.Write(jsonResponse(map[string]any{
			"memories":   42,
			"categories": 5,
			"tags":       17,
			"pinned":     3,
			"storage_mb": "1.8",
		}))
	})

	stats, err := client.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 42, stats.Memories)
	assert.Equal(t, 5, stats.Categories)
	assert.Equal(t, "1.8", stats.StorageMB)
}
