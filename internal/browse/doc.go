// Package browse coordinates what the user sees: the active tab and its
// shelves, the featured title, search, the detail and trailer overlays, and
// the saved list.
//
// Every asynchronous action is split in three steps. A Begin-style method
// (SelectTab, SearchDue, OpenDetail, BeginPlay) mutates ViewState on the UI
// loop and returns a request stamped with a generation. The request's Fetch
// runs off the loop and only calls the catalog. The matching Apply method
// runs back on the loop and drops results whose generation has been
// superseded, so a slow response can never overwrite a newer one.
//
// Tab batches fan out through a conc pool and settle shelf by shelf: a
// failed call keeps that shelf's previous titles while the rest refresh.
package browse
