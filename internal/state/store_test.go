package state

import (
	"errors"
	"testing"
	"time"

	"github.com/five82/marquee/internal/tmdb"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	featured := tmdb.Title{ID: 1}
	before := time.Now()
	s.Update("home", []ShelfUpdate{
		{Name: "Trending Now", Titles: []tmdb.Title{{ID: 1}, {ID: 2}}},
		{Name: "Top Rated", Titles: []tmdb.Title{{ID: 3}}},
	}, &featured)

	snap := s.Snapshot("home")
	if len(snap.Shelves) != 2 || snap.Shelves[0].Name != "Trending Now" {
		t.Fatalf("snapshot shelves = %#v, want 2 shelves in order", snap.Shelves)
	}
	if snap.Featured == nil || snap.Featured.ID != 1 {
		t.Fatalf("featured = %#v, want id 1", snap.Featured)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
	if !snap.HasData() {
		t.Fatalf("HasData() = false, want true")
	}

	// Returned snapshot should be independent of the stored one.
	snap.Shelves[0].Titles[0].ID = 999
	snap.Featured.ID = 999
	snap2 := s.Snapshot("home")
	if snap2.Shelves[0].Titles[0].ID != 1 || snap2.Featured.ID != 1 {
		t.Fatalf("Snapshot should clone shelves and featured")
	}
}

func TestStore_FailedShelfKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update("movies", []ShelfUpdate{
		{Name: "Popular Movies", Titles: []tmdb.Title{{ID: 1}}},
		{Name: "Top Rated", Titles: []tmdb.Title{{ID: 2}}},
	}, &tmdb.Title{ID: 1})

	boom := errors.New("boom")
	s.Update("movies", []ShelfUpdate{
		{Name: "Popular Movies", Err: boom},
		{Name: "Top Rated", Titles: []tmdb.Title{{ID: 5}}},
	}, nil)

	snap := s.Snapshot("movies")
	if got := snap.Shelf("Popular Movies"); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("failed shelf = %#v, want previous content", got)
	}
	if got := snap.Shelf("Top Rated"); len(got) != 1 || got[0].ID != 5 {
		t.Fatalf("successful shelf = %#v, want replaced content", got)
	}
	if snap.Featured == nil || snap.Featured.ID != 1 {
		t.Fatalf("featured = %#v, want previous featured kept", snap.Featured)
	}
	if !errors.Is(snap.LastError, boom) {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
}

func TestStore_FirstLoadFailureLeavesShelfEmpty(t *testing.T) {
	var s Store

	s.Update("home", []ShelfUpdate{
		{Name: "Trending Now", Titles: []tmdb.Title{{ID: 1}}},
		{Name: "Popular Movies", Err: errors.New("popular failed")},
	}, nil)

	snap := s.Snapshot("home")
	if len(snap.Shelves) != 2 {
		t.Fatalf("shelves = %d, want 2", len(snap.Shelves))
	}
	if got := snap.Shelf("Popular Movies"); len(got) != 0 {
		t.Fatalf("failed shelf = %#v, want empty", got)
	}
	if snap.LastError == nil {
		t.Fatalf("LastError = nil, want recorded failure")
	}
}

func TestStore_ConsecutiveFailuresResetOnSuccess(t *testing.T) {
	var s Store

	for i := 0; i < 3; i++ {
		s.Update("tv", []ShelfUpdate{{Name: "Popular TV Shows", Err: errors.New("fail")}}, nil)
	}
	if got := s.Snapshot("tv").ConsecutiveFailures; got != 3 {
		t.Fatalf("ConsecutiveFailures = %d, want 3", got)
	}

	s.Update("tv", []ShelfUpdate{{Name: "Popular TV Shows", Titles: []tmdb.Title{{ID: 1}}}}, nil)
	snap := s.Snapshot("tv")
	if snap.ConsecutiveFailures != 0 || snap.LastError != nil {
		t.Fatalf("after success = (%d, %v), want (0, nil)", snap.ConsecutiveFailures, snap.LastError)
	}
}

func TestStore_ReplaceAndUnknownTab(t *testing.T) {
	var s Store

	if snap := s.Snapshot("nope"); snap.HasData() || snap.Featured != nil {
		t.Fatalf("unknown tab snapshot = %#v, want zero", snap)
	}

	s.Replace("mylist", Shelf{Name: "My List", Titles: []tmdb.Title{{ID: 4}}})
	snap := s.Snapshot("mylist")
	if got := snap.Shelf("My List"); len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("Replace shelf = %#v, want id 4", got)
	}
}
