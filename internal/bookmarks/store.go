// Package bookmarks persists the user's saved memories on disk.
package bookmarks

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Bookmark is a saved reference to a memory.
type Bookmark struct {
	ID       string    `json:"id"`
	MemoryID string    `json:"memory_id"`
	Title    string    `json:"title"`
	Category string    `json:"category,omitempty"`
	SavedAt  time.Time `json:"saved_at"`
}

// Store is a file-backed bookmark collection. All mutations write through
// to disk immediately.
type Store struct {
	path  string
	items []Bookmark
}

// Open loads the store at path, creating parent directories as needed.
// A missing or unreadable file yields an empty store rather than an error;
// bookmarks are convenience state, not a system of record.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create bookmarks dir: %w", err)
	}

	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, nil
	}
	if err := json.Unmarshal(data, &s.items); err != nil {
		s.items = nil
	}
	return s, nil
}

// Add saves a bookmark for the given memory and returns it. Adding a memory
// that is already bookmarked returns the existing entry.
func (s *Store) Add(memoryID, title, category string) (Bookmark, error) {
	if existing, ok := s.find(memoryID); ok {
		return existing, nil
	}
	bm := Bookmark{
		ID:       uuid.NewString(),
		MemoryID: memoryID,
		Title:    title,
		Category: category,
		SavedAt:  time.Now().UTC(),
	}
	s.items = append(s.items, bm)
	return bm, s.flush()
}

// Remove deletes the bookmark for a memory. Removing an absent memory is a
// no-op.
func (s *Store) Remove(memoryID string) error {
	kept := s.items[:0]
	for _, bm := range s.items {
		if bm.MemoryID != memoryID {
			kept = append(kept, bm)
		}
	}
	if len(kept) == len(s.items) {
		return nil
	}
	s.items = kept
	return s.flush()
}

// Toggle adds the bookmark if absent and removes it if present. It reports
// whether the memory is bookmarked afterwards.
func (s *Store) Toggle(memoryID, title, category string) (bool, error) {
	if s.IsBookmarked(memoryID) {
		return false, s.Remove(memoryID)
	}
	_, err := s.Add(memoryID, title, category)
	return true, err
}

// IsBookmarked reports whether a memory has a bookmark.
func (s *Store) IsBookmarked(memoryID string) bool {
	_, ok := s.find(memoryID)
	return ok
}

// List returns all bookmarks, newest first.
func (s *Store) List() []Bookmark {
	out := make([]Bookmark, len(s.items))
	copy(out, s.items)
	sort.Slice(out, func(i, j int) bool {
		return out[i].SavedAt.After(out[j].SavedAt)
	})
	return out
}

// Len returns the number of bookmarks.
func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) find(memoryID string) (Bookmark, bool) {
	for _, bm := range s.items {
		if bm.MemoryID == memoryID {
			return bm, true
		}
	}
	return Bookmark{}, false
}

func (s *Store) flush() error {
	data, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal bookmarks: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write bookmarks: %w", err)
	}
	return nil
}
