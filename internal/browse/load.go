package browse

import (
	"context"
	"errors"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/tmdb"
)

// Shelf names.
const (
	ShelfTrendingNow    = "Trending Now"
	ShelfPopularMovies  = "Popular Movies"
	ShelfTopRated       = "Top Rated"
	ShelfNewReleases    = "New Releases"
	ShelfActionMovies   = "Action Movies"
	ShelfComedies       = "Comedies"
	ShelfTrendingTV     = "Trending TV"
	ShelfPopularTV      = "Popular TV Shows"
	ShelfTrendingWeekly = "Trending This Week"
	ShelfMyList         = "My List"
)

type shelfFetch struct {
	name  string
	fetch func(ctx context.Context, c tmdb.Catalog) ([]tmdb.Title, error)
}

// tabPlan is the batch issued for a tab. featured indexes the shelf whose
// first title becomes the hero.
type tabPlan struct {
	shelves  []shelfFetch
	featured int
}

func planFor(tab Tab) (tabPlan, bool) {
	switch tab {
	case TabHome:
		return tabPlan{shelves: []shelfFetch{
			{ShelfTrendingNow, trending(tmdb.WindowDay)},
			{ShelfPopularMovies, tagged(tmdb.MediaMovie, tmdb.Catalog.PopularMovies)},
			{ShelfTopRated, tagged(tmdb.MediaMovie, tmdb.Catalog.TopRatedMovies)},
			{ShelfNewReleases, tagged(tmdb.MediaMovie, tmdb.Catalog.NowPlaying)},
			{ShelfActionMovies, genre(tmdb.GenreAction)},
			{ShelfComedies, genre(tmdb.GenreComedy)},
		}}, true
	case TabTV:
		return tabPlan{shelves: []shelfFetch{
			{ShelfTrendingTV, trendingTV},
			{ShelfPopularTV, tagged(tmdb.MediaTV, tmdb.Catalog.PopularTV)},
		}}, true
	case TabMovies:
		return tabPlan{shelves: []shelfFetch{
			{ShelfPopularMovies, tagged(tmdb.MediaMovie, tmdb.Catalog.PopularMovies)},
			{ShelfTopRated, tagged(tmdb.MediaMovie, tmdb.Catalog.TopRatedMovies)},
		}}, true
	case TabNew:
		return tabPlan{shelves: []shelfFetch{
			{ShelfNewReleases, tagged(tmdb.MediaMovie, tmdb.Catalog.NowPlaying)},
			{ShelfTrendingWeekly, trending(tmdb.WindowWeek)},
		}, featured: 1}, true
	default:
		return tabPlan{}, false
	}
}

func trending(window tmdb.TimeWindow) func(context.Context, tmdb.Catalog) ([]tmdb.Title, error) {
	return func(ctx context.Context, c tmdb.Catalog) ([]tmdb.Title, error) {
		page, err := c.Trending(ctx, window)
		if err != nil {
			return nil, err
		}
		return page.Results, nil
	}
}

// trendingTV keeps the tv entries of the daily trending list, falling back
// to the whole list when it has none.
func trendingTV(ctx context.Context, c tmdb.Catalog) ([]tmdb.Title, error) {
	page, err := c.Trending(ctx, tmdb.WindowDay)
	if err != nil {
		return nil, err
	}
	if shows := tmdb.FilterKind(page.Results, tmdb.MediaTV); len(shows) > 0 {
		return shows, nil
	}
	return page.Results, nil
}

type pagedCall func(c tmdb.Catalog, ctx context.Context, page int) (tmdb.Page, error)

func tagged(kind tmdb.MediaType, call pagedCall) func(context.Context, tmdb.Catalog) ([]tmdb.Title, error) {
	return func(ctx context.Context, c tmdb.Catalog) ([]tmdb.Title, error) {
		page, err := call(c, ctx, 1)
		if err != nil {
			return nil, err
		}
		return tmdb.TagMediaType(page.Results, kind), nil
	}
}

func genre(id int) func(context.Context, tmdb.Catalog) ([]tmdb.Title, error) {
	return func(ctx context.Context, c tmdb.Catalog) ([]tmdb.Title, error) {
		page, err := c.DiscoverByGenre(ctx, id, 1, tmdb.MediaMovie)
		if err != nil {
			return nil, err
		}
		return tmdb.TagMediaType(page.Results, tmdb.MediaMovie), nil
	}
}

// LoadRequest is a pending shelf batch for one tab.
type LoadRequest struct {
	Tab        Tab
	Generation uint64

	ctx     context.Context
	catalog tmdb.Catalog
	plan    tabPlan
}

// LoadResult carries a settled batch back to the UI loop.
type LoadResult struct {
	Tab        Tab
	Generation uint64
	Shelves    []state.ShelfUpdate
	Featured   *tmdb.Title
}

// Fetch issues every call of the batch concurrently and waits for all of
// them to settle. It only touches the catalog and is safe to run off the UI
// loop.
func (r *LoadRequest) Fetch() LoadResult {
	updates := make([]state.ShelfUpdate, len(r.plan.shelves))
	p := pool.New().WithMaxGoroutines(len(r.plan.shelves))
	for i, shelf := range r.plan.shelves {
		p.Go(func() {
			titles, err := shelf.fetch(r.ctx, r.catalog)
			if err != nil {
				err = fmt.Errorf("%s: %w", shelf.name, err)
			}
			updates[i] = state.ShelfUpdate{Name: shelf.name, Titles: titles, Err: err}
		})
	}
	p.Wait()

	res := LoadResult{Tab: r.Tab, Generation: r.Generation, Shelves: updates}
	if primary := updates[r.plan.featured]; primary.Err == nil && len(primary.Titles) > 0 {
		f := primary.Titles[0]
		res.Featured = &f
	}
	return res
}

// SelectTab makes tab active, supersedes any in-flight batch and returns the
// batch for the new tab. The saved-list tab is served locally and returns
// nil.
func (b *Browser) SelectTab(ctx context.Context, tab Tab) *LoadRequest {
	if _, ok := ParseTab(string(tab)); !ok {
		tab = TabHome
	}
	b.view.Tab = tab
	b.view.MenuOpen = false

	if b.cancelLoad != nil {
		b.cancelLoad()
		b.cancelLoad = nil
	}
	b.loadGen++

	plan, ok := planFor(tab)
	if !ok {
		b.view.Loading = false
		b.refreshMyList()
		return nil
	}

	loadCtx, cancel := context.WithCancel(ctx)
	b.cancelLoad = cancel
	b.view.Loading = true
	return &LoadRequest{
		Tab:        tab,
		Generation: b.loadGen,
		ctx:        loadCtx,
		catalog:    b.catalog,
		plan:       plan,
	}
}

// Reload re-issues the active tab's batch.
func (b *Browser) Reload(ctx context.Context) *LoadRequest {
	return b.SelectTab(ctx, b.view.Tab)
}

// ApplyLoad settles a batch into the shelf store. Results from superseded
// batches are dropped and ApplyLoad reports false.
func (b *Browser) ApplyLoad(res LoadResult) bool {
	if res.Generation != b.loadGen || res.Tab != b.view.Tab {
		b.log.Debug("dropping stale load", "tab", res.Tab, "generation", res.Generation, "current", b.loadGen)
		return false
	}
	if b.cancelLoad != nil {
		b.cancelLoad()
		b.cancelLoad = nil
	}

	b.shelves.Update(string(res.Tab), res.Shelves, res.Featured)
	b.view.Loading = false

	var errs []error
	for _, u := range res.Shelves {
		if u.Err != nil {
			errs = append(errs, u.Err)
		}
	}
	if len(errs) == 0 {
		b.view.Err = ""
		return true
	}

	err := errors.Join(errs...)
	b.view.Err = err.Error()
	b.log.Warn("shelf load failed",
		"tab", res.Tab,
		"generation", res.Generation,
		"failed", len(errs),
		"unauthorized", tmdb.IsUnauthorized(err),
		"error", err,
	)
	if b.FatalError() == "" {
		b.view.Notice = fmt.Sprintf("Some %s rows could not be refreshed.", res.Tab.Label())
	}
	return true
}

// FatalError returns the error to show full screen: the home tab failed and
// has nothing trending to show. Every other failure is a notice.
func (b *Browser) FatalError() string {
	if b.view.Tab != TabHome || b.view.Loading {
		return ""
	}
	snap := b.shelves.Snapshot(string(TabHome))
	if snap.LastError == nil || len(snap.Shelf(ShelfTrendingNow)) > 0 {
		return ""
	}
	return snap.LastError.Error()
}
