package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Catalog is the read-only surface of the metadata API used by the browser.
// It is implemented by *Client and faked in tests.
type Catalog interface {
	Search(ctx context.Context, query string) (Page, error)
	Trending(ctx context.Context, window TimeWindow) (Page, error)
	PopularMovies(ctx context.Context, page int) (Page, error)
	PopularTV(ctx context.Context, page int) (Page, error)
	TopRatedMovies(ctx context.Context, page int) (Page, error)
	NowPlaying(ctx context.Context, page int) (Page, error)
	DiscoverByGenre(ctx context.Context, genreID, page int, kind MediaType) (Page, error)
	Details(ctx context.Context, id int, kind MediaType) (Details, error)
	TrailerURL(ctx context.Context, id int, kind MediaType) (string, bool, error)
}

// Ensure Client implements Catalog at compile time.
var _ Catalog = (*Client)(nil)

const (
	DefaultBaseURL     = "https://api.themoviedb.org/3"
	DefaultImageBase   = "https://image.tmdb.org/t/p"
	DefaultTrailerBase = "https://www.youtube.com/embed/"
	DefaultLanguage    = "en-US"

	defaultUserAgent = "marquee/0.1"
	requestTimeout   = 10 * time.Second

	trailerType = "Trailer"
	trailerSite = "YouTube"
)

// Options configure a Client. Zero values fall back to the public TMDB
// endpoints.
type Options struct {
	APIKey      string
	BaseURL     string
	ImageBase   string
	TrailerBase string
	Language    string
	HTTPClient  *http.Client
	Timeout     time.Duration
}

// Client talks to the TMDB v3 HTTP API.
type Client struct {
	baseURL     *url.URL
	http        *http.Client
	apiKey      string
	language    string
	imageBase   string
	trailerBase string
	userAgent   string
}

// NewClient builds a Client. A missing API key is accepted; upstream will
// reject the requests and the failures surface as FetchErrors.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = requestTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:     base,
		http:        httpClient,
		apiKey:      strings.TrimSpace(opts.APIKey),
		language:    valueOr(opts.Language, DefaultLanguage),
		imageBase:   strings.TrimRight(valueOr(opts.ImageBase, DefaultImageBase), "/"),
		trailerBase: valueOr(opts.TrailerBase, DefaultTrailerBase),
		userAgent:   defaultUserAgent,
	}, nil
}

// Search runs a multi search. Blank queries return an empty page without
// touching the network. Results are limited to movies and shows that carry
// at least one image, in upstream order.
func (c *Client) Search(ctx context.Context, query string) (Page, error) {
	if strings.TrimSpace(query) == "" {
		return Page{}, nil
	}
	values := url.Values{}
	values.Set("query", query)
	values.Set("page", "1")
	values.Set("include_adult", "false")

	var payload Page
	if err := c.get(ctx, "/search/multi", values, &payload); err != nil {
		return Page{}, err
	}
	payload.Results = filterSearchResults(payload.Results)
	return payload, nil
}

func filterSearchResults(results []Title) []Title {
	out := make([]Title, 0, len(results))
	for _, r := range results {
		if !r.MediaType.Valid() || !r.HasImage() {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Trending lists trending movies and shows for the window.
func (c *Client) Trending(ctx context.Context, window TimeWindow) (Page, error) {
	if window != WindowWeek {
		window = WindowDay
	}
	return c.page(ctx, "/trending/all/"+string(window), nil)
}

// PopularMovies lists popular movies.
func (c *Client) PopularMovies(ctx context.Context, page int) (Page, error) {
	return c.page(ctx, "/movie/popular", pageValues(page))
}

// PopularTV lists popular TV shows.
func (c *Client) PopularTV(ctx context.Context, page int) (Page, error) {
	return c.page(ctx, "/tv/popular", pageValues(page))
}

// TopRatedMovies lists top rated movies.
func (c *Client) TopRatedMovies(ctx context.Context, page int) (Page, error) {
	return c.page(ctx, "/movie/top_rated", pageValues(page))
}

// NowPlaying lists movies currently in theatres.
func (c *Client) NowPlaying(ctx context.Context, page int) (Page, error) {
	return c.page(ctx, "/movie/now_playing", pageValues(page))
}

// DiscoverByGenre lists the most popular titles of kind in a genre.
func (c *Client) DiscoverByGenre(ctx context.Context, genreID, page int, kind MediaType) (Page, error) {
	if !kind.Valid() {
		kind = MediaMovie
	}
	values := pageValues(page)
	values.Set("with_genres", strconv.Itoa(genreID))
	values.Set("sort_by", "popularity.desc")
	return c.page(ctx, "/discover/"+string(kind), values)
}

// Details fetches the extended record for a title.
func (c *Client) Details(ctx context.Context, id int, kind MediaType) (Details, error) {
	if !kind.Valid() {
		kind = MediaMovie
	}
	var payload Details
	if err := c.get(ctx, fmt.Sprintf("/%s/%d", kind, id), nil, &payload); err != nil {
		return Details{}, err
	}
	if payload.MediaType == "" {
		payload.MediaType = kind
	}
	return payload, nil
}

// TrailerURL resolves an embeddable trailer for a title. The boolean is
// false when the title has no suitable trailer; that case is not an error.
func (c *Client) TrailerURL(ctx context.Context, id int, kind MediaType) (string, bool, error) {
	if !kind.Valid() {
		kind = MediaMovie
	}
	var payload VideoList
	if err := c.get(ctx, fmt.Sprintf("/%s/%d/videos", kind, id), nil, &payload); err != nil {
		return "", false, err
	}
	video, ok := SelectTrailer(payload.Results)
	if !ok {
		return "", false, nil
	}
	return c.EmbedURL(video.Key), true, nil
}

// SelectTrailer returns the first YouTube trailer in videos.
func SelectTrailer(videos []Video) (Video, bool) {
	for _, v := range videos {
		if v.Type == trailerType && v.Site == trailerSite && v.Key != "" {
			return v, true
		}
	}
	return Video{}, false
}

// EmbedURL builds the autoplaying embed URL for a video key.
func (c *Client) EmbedURL(key string) string {
	return c.trailerBase + url.PathEscape(key) + "?autoplay=1"
}

// ImageURL builds an image URL against the client's image base.
func (c *Client) ImageURL(path string, size ImageSize) string {
	return buildImageURL(c.imageBase, path, size)
}

func (c *Client) page(ctx context.Context, path string, values url.Values) (Page, error) {
	var payload Page
	if err := c.get(ctx, path, values, &payload); err != nil {
		return Page{}, err
	}
	return payload, nil
}

func (c *Client) get(ctx context.Context, path string, values url.Values, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if values == nil {
		values = url.Values{}
	}
	values.Set("api_key", c.apiKey)
	values.Set("language", c.language)

	rel := &url.URL{Path: path, RawQuery: values.Encode()}
	return c.doURL(ctx, rel, dest)
}

func (c *Client) doURL(ctx context.Context, rel *url.URL, dest any) error {
	reqURL := *c.baseURL
	reqURL.Path = strings.TrimRight(c.baseURL.Path, "/") + rel.Path
	reqURL.RawQuery = rel.RawQuery

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return &FetchError{Endpoint: rel.Path, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Endpoint: rel.Path, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Endpoint: rel.Path, StatusCode: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &FetchError{Endpoint: rel.Path, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// FetchError reports an upstream call that did not succeed: a transport
// failure, a non-2xx status or an undecodable body.
type FetchError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.Err != nil && e.StatusCode == 0:
		return fmt.Sprintf("tmdb %s: %v", e.Endpoint, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("tmdb %s (status %d): %v", e.Endpoint, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("tmdb %s returned status %d", e.Endpoint, e.StatusCode)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsUnauthorized reports whether err is an upstream rejection of the API key.
func IsUnauthorized(err error) bool {
	var fe *FetchError
	if !errors.As(err, &fe) {
		return false
	}
	return fe.StatusCode == http.StatusUnauthorized || fe.StatusCode == http.StatusForbidden
}

func pageValues(page int) url.Values {
	if page < 1 {
		page = 1
	}
	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	return values
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", raw, err)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

func valueOr(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
