// Package state holds the most recent shelf data for each browse tab.
//
// # Overview
//
// Loads run off the UI loop and settle into a Store; the UI reads
// Snapshots while rendering. Each tab key owns one Snapshot containing its
// ordered shelves, an optional featured title, and load bookkeeping.
//
// # Partial failures
//
// A batch is applied shelf by shelf:
//
//	fetch ok   -> shelf replaced with the new titles
//	fetch fail -> shelf keeps its previous titles (empty on first load)
//
// Any failure in the batch is joined into LastError and bumps
// ConsecutiveFailures; a clean batch resets both.
//
// # Concurrency
//
// Store uses a sync.RWMutex. Snapshot returns deep copies of shelves and
// the featured title so callers can render without holding the lock.
//
// # Usage Example
//
//	var store state.Store
//	store.Update("home", []state.ShelfUpdate{
//	    {Name: "Trending Now", Titles: trending},
//	    {Name: "Popular Movies", Err: err},
//	}, &trending[0])
//
//	snap := store.Snapshot("home")
//	for _, shelf := range snap.Shelves {
//	    render(shelf.Name, shelf.Titles)
//	}
package state
