package api

import (
	"encoding/json"
	"time"
)

// --- API Response Envelope ---

type apiResponse[T any] struct {
	Data  T       `json:"data"`
	Error *apiErr `json:"error,omitempty"`
}

type apiErr struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// QueryParams carries optional query-string filters.
type QueryParams map[string]string

// JSONMap tolerates metadata fields the server may return either as a JSON
// object or as a string containing JSON.
type JSONMap map[string]any

func (j *JSONMap) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err == nil {
		*j = m
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" || s == "null" {
			*j = make(map[string]any)
			return nil
		}
		return json.Unmarshal([]byte(s), (*map[string]any)(j))
	}
	*j = make(map[string]any)
	return nil
}

// --- Memory ---

// Memory is a single stored memory record in the knowledge graph.
type Memory struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category,omitempty"`
	Tags       []string  `json:"tags"`
	Pinned     bool      `json:"pinned,omitempty"`
	AccessedAt time.Time `json:"accessed_at,omitempty"`
	Metadata   JSONMap   `json:"metadata"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UpdateMemoryInput defines the patchable fields of a memory.
type UpdateMemoryInput struct {
	Title    *string   `json:"title,omitempty"`
	Category *string   `json:"category,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
	Pinned   *bool     `json:"pinned,omitempty"`
}

// BulkTagInput defines the fields for bulk tag updates across memories.
type BulkTagInput struct {
	MemoryIDs []string `json:"memory_ids"`
	Tags      []string `json:"tags"`
	Op        string   `json:"op"`
}

// BulkTagResult returns ids and count for a bulk tag update.
type BulkTagResult struct {
	Updated   int      `json:"updated"`
	MemoryIDs []string `json:"memory_ids"`
}

// --- Category ---

// Category groups memories and carries an optional server-assigned color.
type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Color string `json:"color,omitempty"`
}

// --- Stats ---

// Stats is the aggregate view behind the stats bar.
type Stats struct {
	Memories   int    `json:"memories"`
	Categories int    `json:"categories"`
	Tags       int    `json:"tags"`
	Pinned     int    `json:"pinned"`
	StorageMB  string `json:"storage_mb,omitempty"`
}
