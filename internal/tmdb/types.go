package tmdb

import (
	"strconv"
	"strings"
)

// MediaType discriminates movies from TV shows.
type MediaType string

const (
	MediaMovie MediaType = "movie"
	MediaTV    MediaType = "tv"
)

// Valid reports whether the media type is one Marquee can browse.
func (m MediaType) Valid() bool {
	return m == MediaMovie || m == MediaTV
}

// TimeWindow selects the trending window.
type TimeWindow string

const (
	WindowDay  TimeWindow = "day"
	WindowWeek TimeWindow = "week"
)

// Genre IDs used by the discover endpoint.
const (
	GenreAction   = 28
	GenreComedy   = 35
	GenreHorror   = 27
	GenreSciFi    = 878
	GenreThriller = 53
)

// Title is a movie or TV record as returned by list and search endpoints.
type Title struct {
	ID           int       `json:"id"`
	Title        string    `json:"title,omitempty"`
	Name         string    `json:"name,omitempty"`
	Overview     string    `json:"overview"`
	PosterPath   string    `json:"poster_path"`
	BackdropPath string    `json:"backdrop_path"`
	VoteAverage  float64   `json:"vote_average"`
	ReleaseDate  string    `json:"release_date,omitempty"`
	FirstAirDate string    `json:"first_air_date,omitempty"`
	MediaType    MediaType `json:"media_type,omitempty"`
}

// Key identifies a title across the catalog.
type Key struct {
	ID   int
	Kind MediaType
}

// Kind returns the title's media type. List endpoints that serve a single
// kind omit media_type, and every consumer treats a missing value as a movie.
// This is the only place that default lives.
func (t Title) Kind() MediaType {
	if t.MediaType == "" {
		return MediaMovie
	}
	return t.MediaType
}

// Key returns the (id, kind) identity of the title.
func (t Title) Key() Key {
	return Key{ID: t.ID, Kind: t.Kind()}
}

// WithMediaType returns a copy tagged with kind.
func (t Title) WithMediaType(kind MediaType) Title {
	t.MediaType = kind
	return t
}

// DisplayName prefers the movie title and falls back to the show name.
func (t Title) DisplayName() string {
	if name := strings.TrimSpace(t.Title); name != "" {
		return name
	}
	return strings.TrimSpace(t.Name)
}

// Date returns the release or first air date.
func (t Title) Date() string {
	if t.ReleaseDate != "" {
		return t.ReleaseDate
	}
	return t.FirstAirDate
}

// Year returns the four digit year of Date, or 0 when unknown.
func (t Title) Year() int {
	date := t.Date()
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}

// HasImage reports whether the title carries a poster or backdrop.
func (t Title) HasImage() bool {
	return t.PosterPath != "" || t.BackdropPath != ""
}

// TagMediaType returns a copy of titles with kind set on every entry.
func TagMediaType(titles []Title, kind MediaType) []Title {
	if len(titles) == 0 {
		return nil
	}
	out := make([]Title, len(titles))
	for i, t := range titles {
		out[i] = t.WithMediaType(kind)
	}
	return out
}

// FilterKind returns the titles whose media type equals kind.
func FilterKind(titles []Title, kind MediaType) []Title {
	var out []Title
	for _, t := range titles {
		if t.MediaType == kind {
			out = append(out, t)
		}
	}
	return out
}

// Page mirrors the paginated list envelope.
type Page struct {
	Page         int     `json:"page"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
	Results      []Title `json:"results"`
}

// Genre is a named TMDB genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Details is the response from /movie/{id} and /tv/{id}.
type Details struct {
	Title
	Tagline         string  `json:"tagline"`
	Runtime         int     `json:"runtime"`
	EpisodeRunTime  []int   `json:"episode_run_time"`
	NumberOfSeasons int     `json:"number_of_seasons"`
	Status          string  `json:"status"`
	Genres          []Genre `json:"genres"`
}

// Enrich returns summary with the overview and backdrop replaced by the
// detail values when those are present.
func (d Details) Enrich(summary Title) Title {
	if overview := strings.TrimSpace(d.Overview); overview != "" {
		summary.Overview = d.Overview
	}
	if d.BackdropPath != "" {
		summary.BackdropPath = d.BackdropPath
	}
	return summary
}

// GenreNames returns the genre names in upstream order.
func (d Details) GenreNames() []string {
	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		if name := strings.TrimSpace(g.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Video is one entry of the /videos listing.
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// VideoList mirrors /{kind}/{id}/videos.
type VideoList struct {
	ID      int     `json:"id"`
	Results []Video `json:"results"`
}
