// Package mylist persists the user's saved titles ("My List").
//
// The Store is the only reader and writer of its storage key. Entries are
// unique per (id, media type); a title without a media type is stored as a
// movie. Every mutation rewrites the whole collection. A missing or
// malformed document reads as an empty list.
package mylist

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/five82/marquee/internal/tmdb"
)

// StorageKey is the key the saved list lives under.
const StorageKey = "my_list"

// Store manages the saved-title collection.
type Store struct {
	mu      sync.Mutex
	storage Storage
	log     *slog.Logger
}

// New returns a Store backed by storage. A nil logger discards output.
func New(storage Storage, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{storage: storage, log: logger}
}

// List returns the saved titles in insertion order.
func (s *Store) List() []tmdb.Title {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Contains reports whether a title with the same (id, kind) is saved.
func (s *Store) Contains(title tmdb.Title) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.load(), title.Key()) >= 0
}

// Add appends title unless an entry with the same (id, kind) exists, and
// returns the resulting collection.
func (s *Store) Add(title tmdb.Title) ([]tmdb.Title, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(s.load(), title)
}

// Remove drops every entry matching title's (id, kind) and returns the
// resulting collection. Removing an absent title is not an error.
func (s *Store) Remove(title tmdb.Title) ([]tmdb.Title, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(s.load(), title)
}

// Toggle removes title when saved and adds it otherwise. It reports whether
// the title is saved afterwards. The membership check and the write happen
// under one lock.
func (s *Store) Toggle(title tmdb.Title) (bool, []tmdb.Title, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.load()
	if indexOf(list, title.Key()) >= 0 {
		kept, err := s.remove(list, title)
		return err != nil, kept, err
	}
	added, err := s.add(list, title)
	return err == nil, added, err
}

// add and remove expect s.mu to be held.

func (s *Store) add(list []tmdb.Title, title tmdb.Title) ([]tmdb.Title, error) {
	if indexOf(list, title.Key()) >= 0 {
		return list, nil
	}
	next := append(list, title.WithMediaType(title.Kind()))
	if err := s.save(next); err != nil {
		return s.load(), err
	}
	return next, nil
}

func (s *Store) remove(list []tmdb.Title, title tmdb.Title) ([]tmdb.Title, error) {
	key := title.Key()
	kept := make([]tmdb.Title, 0, len(list))
	for _, t := range list {
		if t.Key() != key {
			kept = append(kept, t)
		}
	}
	if err := s.save(kept); err != nil {
		return list, err
	}
	return kept, nil
}

func (s *Store) load() []tmdb.Title {
	raw, err := s.storage.Get(StorageKey)
	if err != nil {
		s.log.Warn("my list read failed", "error", err)
		return []tmdb.Title{}
	}
	if len(raw) == 0 {
		return []tmdb.Title{}
	}
	var list []tmdb.Title
	if err := json.Unmarshal(raw, &list); err != nil {
		s.log.Debug("my list is malformed, treating as empty", "error", err)
		return []tmdb.Title{}
	}
	if list == nil {
		return []tmdb.Title{}
	}
	return list
}

func (s *Store) save(list []tmdb.Title) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode my list: %w", err)
	}
	if err := s.storage.Set(StorageKey, data); err != nil {
		return fmt.Errorf("persist my list: %w", err)
	}
	return nil
}

func indexOf(list []tmdb.Title, key tmdb.Key) int {
	for i, t := range list {
		if t.Key() == key {
			return i
		}
	}
	return -1
}
