package browse

import (
	"context"
	"strings"

	"github.com/five82/marquee/internal/tmdb"
)

// SearchRequest is a pending query issued after the debounce delay.
type SearchRequest struct {
	Query      string
	Generation uint64

	ctx     context.Context
	catalog tmdb.Catalog
}

// SearchResult carries search hits back to the UI loop.
type SearchResult struct {
	Query      string
	Generation uint64
	Results    []tmdb.Title
	Err        error
}

// Fetch runs the query. It only touches the catalog.
func (r *SearchRequest) Fetch() SearchResult {
	page, err := r.catalog.Search(r.ctx, r.Query)
	return SearchResult{Query: r.Query, Generation: r.Generation, Results: page.Results, Err: err}
}

// OpenSearch shows the search overlay.
func (b *Browser) OpenSearch() {
	b.view.SearchOpen = true
	b.view.MenuOpen = false
	b.view.ProfileOpen = false
}

// CloseSearch hides the search overlay and clears the query.
func (b *Browser) CloseSearch() {
	b.view.SearchOpen = false
	b.view.SearchQuery = ""
	b.view.SearchResults = nil
	b.view.Searching = false
	b.searchGen++
	if b.cancelSearch != nil {
		b.cancelSearch()
		b.cancelSearch = nil
	}
}

// QueueSearch records a keystroke and returns the token to hand back to
// SearchDue once SearchDelay has elapsed.
func (b *Browser) QueueSearch(query string) uint64 {
	b.searchGen++
	b.view.SearchQuery = query
	return b.searchGen
}

// SearchDue returns the request for token, or nil when a newer keystroke
// superseded it or the query is blank. A blank query clears the results.
func (b *Browser) SearchDue(ctx context.Context, token uint64) *SearchRequest {
	if token != b.searchGen {
		return nil
	}
	query := strings.TrimSpace(b.view.SearchQuery)
	if query == "" {
		b.view.SearchResults = nil
		b.view.Searching = false
		return nil
	}

	if b.cancelSearch != nil {
		b.cancelSearch()
	}
	searchCtx, cancel := context.WithCancel(ctx)
	b.cancelSearch = cancel
	b.view.Searching = true
	return &SearchRequest{
		Query:      query,
		Generation: token,
		ctx:        searchCtx,
		catalog:    b.catalog,
	}
}

// ApplySearch stores results for the current query. Stale results are
// dropped and a failed search shows no results.
func (b *Browser) ApplySearch(res SearchResult) bool {
	if res.Generation != b.searchGen {
		return false
	}
	if b.cancelSearch != nil {
		b.cancelSearch()
		b.cancelSearch = nil
	}
	b.view.Searching = false
	if res.Err != nil {
		b.log.Warn("search failed", "query", res.Query, "generation", res.Generation, "error", res.Err)
		b.view.SearchResults = nil
		return true
	}
	b.view.SearchResults = append([]tmdb.Title(nil), res.Results...)
	return true
}
