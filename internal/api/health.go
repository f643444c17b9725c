package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Health calls /api/health and returns its status string.
func (c *Client) Health() (string, error) {
	data, err := c.get("/api/health")
	if err != nil {
		return "", err
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return payload.Status, nil
}

// WaitHealthy polls /api/health until it reports "ok", the attempt budget
// runs out, or the context is cancelled. The delay between attempts doubles
// from 500ms up to 4s. It returns the number of attempts made.
func (c *Client) WaitHealthy(ctx context.Context, attempts int) (int, error) {
	if attempts <= 0 {
		attempts = 1
	}
	delay := 500 * time.Millisecond
	maxDelay := 4 * time.Second

	var lastErr error
	for i := 1; i <= attempts; i++ {
		status, err := c.Health()
		if err == nil && status == "ok" {
			return i, nil
		}
		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("server status %q", status)
		}

		if i == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return i, ctx.Err()
		case <-time.After(delay):
		}
		if delay *= 2; delay > maxDelay {
			delay = maxDelay
		}
	}
	return attempts, fmt.Errorf("server not healthy after %d attempts: %w", attempts, lastErr)
}
