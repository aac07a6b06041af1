package browse

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/marquee/internal/tmdb"
)

func TestSearch_OnlyLatestKeystrokeIssuesRequest(t *testing.T) {
	cat := homeCatalog()
	cat.searchFn = func(query string) (tmdb.Page, error) {
		return page(movie(1, query).WithMediaType(tmdb.MediaMovie)), nil
	}
	b := newTestBrowser(t, cat)
	b.OpenSearch()

	var tokens []uint64
	for _, q := range []string{"a", "ab", "abc"} {
		tokens = append(tokens, b.QueueSearch(q))
	}

	ctx := context.Background()
	assert.Nil(t, b.SearchDue(ctx, tokens[0]))
	assert.Nil(t, b.SearchDue(ctx, tokens[1]))
	req := b.SearchDue(ctx, tokens[2])
	require.NotNil(t, req)
	assert.Equal(t, "abc", req.Query)
	assert.True(t, b.View().Searching)

	require.True(t, b.ApplySearch(req.Fetch()))
	if diff := cmp.Diff([]string{"search:abc"}, cat.Calls()); diff != "" {
		t.Fatalf("search calls mismatch (-want +got):\n%s", diff)
	}
	v := b.View()
	assert.False(t, v.Searching)
	require.Len(t, v.SearchResults, 1)
	assert.Equal(t, "abc", v.SearchResults[0].Title)
}

func TestSearch_StaleResultsDropped(t *testing.T) {
	cat := homeCatalog()
	cat.searchFn = func(query string) (tmdb.Page, error) {
		return page(movie(1, query)), nil
	}
	b := newTestBrowser(t, cat)

	req := b.SearchDue(context.Background(), b.QueueSearch("old"))
	require.NotNil(t, req)
	b.QueueSearch("newer")

	assert.False(t, b.ApplySearch(req.Fetch()))
	assert.Empty(t, b.View().SearchResults)
}

func TestSearch_BlankQueryClearsWithoutRequest(t *testing.T) {
	cat := homeCatalog()
	cat.searchFn = func(query string) (tmdb.Page, error) {
		return page(movie(1, query)), nil
	}
	b := newTestBrowser(t, cat)

	req := b.SearchDue(context.Background(), b.QueueSearch("dune"))
	require.True(t, b.ApplySearch(req.Fetch()))
	require.NotEmpty(t, b.View().SearchResults)

	assert.Nil(t, b.SearchDue(context.Background(), b.QueueSearch("   ")))
	assert.Empty(t, b.View().SearchResults)
	assert.Len(t, cat.Calls(), 1)
}

func TestSearch_FailureShowsNoResults(t *testing.T) {
	cat := homeCatalog()
	cat.fail = map[string]error{"search:dune": errUpstream}
	b := newTestBrowser(t, cat)

	req := b.SearchDue(context.Background(), b.QueueSearch("dune"))
	require.NotNil(t, req)
	require.True(t, b.ApplySearch(req.Fetch()))

	v := b.View()
	assert.Empty(t, v.SearchResults)
	assert.False(t, v.Searching)
}

func TestCloseSearch_InvalidatesPendingTimer(t *testing.T) {
	b := newTestBrowser(t, homeCatalog())
	b.OpenSearch()
	token := b.QueueSearch("dune")
	b.CloseSearch()

	assert.Nil(t, b.SearchDue(context.Background(), token))
	assert.False(t, b.View().SearchOpen)
}
