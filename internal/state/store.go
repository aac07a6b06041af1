package state

import (
	"errors"
	"sync"
	"time"

	"github.com/five82/marquee/internal/tmdb"
)

// Shelf is a named, ordered row of titles.
type Shelf struct {
	Name   string
	Titles []tmdb.Title
}

// ShelfUpdate is the outcome of one shelf's fetch within a batch.
type ShelfUpdate struct {
	Name   string
	Titles []tmdb.Title
	Err    error
}

// Snapshot is the shelf data for one tab.
type Snapshot struct {
	Shelves             []Shelf
	Featured            *tmdb.Title
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// HasData reports whether any shelf of the tab has titles.
func (s Snapshot) HasData() bool {
	for _, shelf := range s.Shelves {
		if len(shelf.Titles) > 0 {
			return true
		}
	}
	return false
}

// Shelf returns the titles of the named shelf.
func (s Snapshot) Shelf(name string) []tmdb.Title {
	for _, shelf := range s.Shelves {
		if shelf.Name == name {
			return shelf.Titles
		}
	}
	return nil
}

// Store holds one snapshot per tab key.
type Store struct {
	mu   sync.RWMutex
	tabs map[string]Snapshot
}

// Update applies a batch to tab. Shelves whose fetch succeeded replace their
// previous content; failed shelves keep whatever they had. The featured
// title is replaced only when featured is non-nil. Any shelf error is
// recorded for visibility.
func (s *Store) Update(tab string, updates []ShelfUpdate, featured *tmdb.Title) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tabs == nil {
		s.tabs = make(map[string]Snapshot)
	}
	snap := s.tabs[tab]

	prev := make(map[string][]tmdb.Title, len(snap.Shelves))
	for _, shelf := range snap.Shelves {
		prev[shelf.Name] = shelf.Titles
	}

	var errs []error
	shelves := make([]Shelf, 0, len(updates))
	for _, u := range updates {
		if u.Err != nil {
			errs = append(errs, u.Err)
			shelves = append(shelves, Shelf{Name: u.Name, Titles: prev[u.Name]})
			continue
		}
		shelves = append(shelves, Shelf{Name: u.Name, Titles: cloneTitles(u.Titles)})
	}
	snap.Shelves = shelves

	if featured != nil {
		f := *featured
		snap.Featured = &f
	}

	snap.LastUpdated = time.Now()
	if len(errs) > 0 {
		snap.LastError = errors.Join(errs...)
		snap.ConsecutiveFailures++
	} else {
		snap.LastError = nil
		snap.ConsecutiveFailures = 0
	}
	s.tabs[tab] = snap
}

// Replace overwrites a tab with a single shelf that cannot fail, such as
// the locally stored list.
func (s *Store) Replace(tab string, shelf Shelf) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tabs == nil {
		s.tabs = make(map[string]Snapshot)
	}
	s.tabs[tab] = Snapshot{
		Shelves:     []Shelf{{Name: shelf.Name, Titles: cloneTitles(shelf.Titles)}},
		LastUpdated: time.Now(),
	}
}

// Snapshot returns a copy of the tab's snapshot.
func (s *Store) Snapshot(tab string) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.tabs[tab]
	out := snap
	if len(snap.Shelves) > 0 {
		out.Shelves = make([]Shelf, len(snap.Shelves))
		for i, shelf := range snap.Shelves {
			out.Shelves[i] = Shelf{Name: shelf.Name, Titles: cloneTitles(shelf.Titles)}
		}
	}
	if snap.Featured != nil {
		f := *snap.Featured
		out.Featured = &f
	}
	return out
}

func cloneTitles(items []tmdb.Title) []tmdb.Title {
	if len(items) == 0 {
		return nil
	}
	dup := make([]tmdb.Title, len(items))
	copy(dup, items)
	return dup
}
