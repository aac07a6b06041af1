package browse

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/spf13/afero"

	"github.com/five82/marquee/internal/mylist"
	"github.com/five82/marquee/internal/tmdb"
)

var errUpstream = errors.New("upstream unavailable")

// fakeCatalog answers each endpoint from a canned page or error and records
// the calls it receives.
type fakeCatalog struct {
	mu    sync.Mutex
	calls []string

	trendingDay  tmdb.Page
	trendingWeek tmdb.Page
	popular      tmdb.Page
	popularTV    tmdb.Page
	topRated     tmdb.Page
	nowPlaying   tmdb.Page
	byGenre      map[int]tmdb.Page

	fail map[string]error

	searchFn  func(query string) (tmdb.Page, error)
	details   tmdb.Details
	trailer   string
	trailerOK bool
}

func (f *fakeCatalog) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	return f.fail[name]
}

func (f *fakeCatalog) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeCatalog) Search(_ context.Context, query string) (tmdb.Page, error) {
	if err := f.record("search:" + query); err != nil {
		return tmdb.Page{}, err
	}
	if f.searchFn != nil {
		return f.searchFn(query)
	}
	return tmdb.Page{}, nil
}

func (f *fakeCatalog) Trending(_ context.Context, window tmdb.TimeWindow) (tmdb.Page, error) {
	name := "trending:" + string(window)
	if err := f.record(name); err != nil {
		return tmdb.Page{}, err
	}
	if window == tmdb.WindowWeek {
		return f.trendingWeek, nil
	}
	return f.trendingDay, nil
}

func (f *fakeCatalog) PopularMovies(context.Context, int) (tmdb.Page, error) {
	if err := f.record("popular"); err != nil {
		return tmdb.Page{}, err
	}
	return f.popular, nil
}

func (f *fakeCatalog) PopularTV(context.Context, int) (tmdb.Page, error) {
	if err := f.record("popular_tv"); err != nil {
		return tmdb.Page{}, err
	}
	return f.popularTV, nil
}

func (f *fakeCatalog) TopRatedMovies(context.Context, int) (tmdb.Page, error) {
	if err := f.record("top_rated"); err != nil {
		return tmdb.Page{}, err
	}
	return f.topRated, nil
}

func (f *fakeCatalog) NowPlaying(context.Context, int) (tmdb.Page, error) {
	if err := f.record("now_playing"); err != nil {
		return tmdb.Page{}, err
	}
	return f.nowPlaying, nil
}

func (f *fakeCatalog) DiscoverByGenre(_ context.Context, genreID, _ int, _ tmdb.MediaType) (tmdb.Page, error) {
	if err := f.record("discover"); err != nil {
		return tmdb.Page{}, err
	}
	return f.byGenre[genreID], nil
}

func (f *fakeCatalog) Details(_ context.Context, id int, kind tmdb.MediaType) (tmdb.Details, error) {
	if err := f.record("details"); err != nil {
		return tmdb.Details{}, err
	}
	d := f.details
	d.ID = id
	d.MediaType = kind
	return d, nil
}

func (f *fakeCatalog) TrailerURL(context.Context, int, tmdb.MediaType) (string, bool, error) {
	if err := f.record("trailer"); err != nil {
		return "", false, err
	}
	return f.trailer, f.trailerOK, nil
}

func page(titles ...tmdb.Title) tmdb.Page {
	return tmdb.Page{Page: 1, TotalPages: 1, TotalResults: len(titles), Results: titles}
}

func movie(id int, name string) tmdb.Title {
	return tmdb.Title{ID: id, Title: name, PosterPath: "/p.jpg"}
}

func show(id int, name string) tmdb.Title {
	return tmdb.Title{ID: id, Name: name, MediaType: tmdb.MediaTV, PosterPath: "/p.jpg"}
}

func newTestBrowser(t *testing.T, catalog *fakeCatalog) *Browser {
	t.Helper()
	store := mylist.New(mylist.NewFileStorage(afero.NewMemMapFs(), "/data"), nil)
	return New(catalog, store, nil)
}

func homeCatalog() *fakeCatalog {
	return &fakeCatalog{
		trendingDay: page(
			movie(1, "Trending One").WithMediaType(tmdb.MediaMovie),
			show(2, "Trending Show"),
		),
		trendingWeek: page(movie(20, "Weekly").WithMediaType(tmdb.MediaMovie)),
		popular:      page(movie(3, "Popular")),
		popularTV:    page(tmdb.Title{ID: 30, Name: "Popular Show"}),
		topRated:     page(movie(4, "Top")),
		nowPlaying:   page(movie(5, "Now")),
		byGenre: map[int]tmdb.Page{
			tmdb.GenreAction: page(movie(6, "Action")),
			tmdb.GenreComedy: page(movie(7, "Comedy")),
		},
	}
}
