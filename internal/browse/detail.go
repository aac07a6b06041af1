package browse

import (
	"context"

	"github.com/five82/marquee/internal/tmdb"
)

// DetailRequest fetches the full record for the selected title.
type DetailRequest struct {
	Title      tmdb.Title
	Generation uint64

	ctx     context.Context
	catalog tmdb.Catalog
}

// DetailResult carries the detail record back to the UI loop.
type DetailResult struct {
	Generation uint64
	Details    tmdb.Details
	Err        error
}

// Fetch loads the detail record.
func (r *DetailRequest) Fetch() DetailResult {
	d, err := r.catalog.Details(r.ctx, r.Title.ID, r.Title.Kind())
	return DetailResult{Generation: r.Generation, Details: d, Err: err}
}

// OpenDetail selects title, shows the detail overlay with the summary and
// returns the request that enriches it.
func (b *Browser) OpenDetail(ctx context.Context, title tmdb.Title) *DetailRequest {
	sel := title
	b.view.Selected = &sel
	b.view.Detail = nil
	b.view.DetailOpen = true
	b.view.MenuOpen = false
	b.view.ProfileOpen = false
	b.detailGen++
	return &DetailRequest{Title: title, Generation: b.detailGen, ctx: ctx, catalog: b.catalog}
}

// ApplyDetail merges the detail record into the selected title. A failure
// leaves the summary in place.
func (b *Browser) ApplyDetail(res DetailResult) bool {
	if res.Generation != b.detailGen || b.view.Selected == nil {
		return false
	}
	if res.Err != nil {
		b.log.Warn("detail load failed", "id", b.view.Selected.ID, "generation", res.Generation, "error", res.Err)
		return true
	}
	enriched := res.Details.Enrich(*b.view.Selected)
	b.view.Selected = &enriched
	d := res.Details
	b.view.Detail = &d
	return true
}

// PlayRequest resolves the trailer for a title.
type PlayRequest struct {
	Title      tmdb.Title
	Generation uint64

	ctx     context.Context
	catalog tmdb.Catalog
}

// PlayResult carries the trailer lookup back to the UI loop.
type PlayResult struct {
	Generation uint64
	URL        string
	Found      bool
	Err        error
}

// Fetch looks up the trailer URL.
func (r *PlayRequest) Fetch() PlayResult {
	u, ok, err := r.catalog.TrailerURL(r.ctx, r.Title.ID, r.Title.Kind())
	return PlayResult{Generation: r.Generation, URL: u, Found: ok, Err: err}
}

// BeginPlay selects title, closes the detail overlay and returns the
// trailer lookup.
func (b *Browser) BeginPlay(ctx context.Context, title tmdb.Title) *PlayRequest {
	b.CloseDetail()
	sel := title
	b.view.Selected = &sel
	b.view.Notice = ""
	b.playGen++
	return &PlayRequest{Title: title, Generation: b.playGen, ctx: ctx, catalog: b.catalog}
}

// ApplyPlay opens the trailer overlay when a trailer was found. Otherwise a
// notice explains why nothing plays.
func (b *Browser) ApplyPlay(res PlayResult) bool {
	if res.Generation != b.playGen {
		return false
	}
	switch {
	case res.Err != nil:
		b.log.Warn("trailer lookup failed", "generation", res.Generation, "error", res.Err)
		b.view.Notice = NoticeTrailerFailed
	case !res.Found || res.URL == "":
		b.view.Notice = NoticeNoTrailer
	default:
		b.view.TrailerURL = res.URL
		b.view.TrailerOpen = true
	}
	return true
}
