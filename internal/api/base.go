package api

import "time"

// DefaultBaseURL is the default engram server target.
const DefaultBaseURL = "http://localhost:7437"

// NewDefaultClient builds a client pointed at the default engram server URL.
func NewDefaultClient(apiKey string, timeout ...time.Duration) *Client {
	return NewClient(DefaultBaseURL, apiKey, timeout...)
}
