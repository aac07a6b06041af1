// Package tmdb is a small read-only client for The Movie Database v3 API.
//
// # Overview
//
// The client issues plain GET requests and decodes the JSON envelopes into
// the records Marquee renders. Every request carries the api_key and
// language query parameters. There are no retries and no caching: a failed
// call returns a *FetchError and the caller decides how to degrade.
//
// # Endpoints
//
//   - Search: /search/multi (movies and shows with at least one image)
//   - Trending: /trending/all/{day|week}
//   - PopularMovies, TopRatedMovies, NowPlaying: /movie/{popular|top_rated|now_playing}
//   - PopularTV: /tv/popular
//   - DiscoverByGenre: /discover/{movie|tv}?with_genres=…
//   - Details: /movie/{id}, /tv/{id}
//   - TrailerURL: /{movie|tv}/{id}/videos
//
// Kind-specific list endpoints omit media_type on their records. Title.Kind
// treats a missing media type as a movie; callers that know better tag the
// records with TagMediaType.
//
// # Images and trailers
//
// ImageURL is pure string construction: base, size token and the record's
// path. An empty path yields NoImage. TrailerURL picks the first YouTube
// video typed "Trailer" and returns an autoplaying embed URL; a title
// without one reports ok=false and a nil error.
//
// # Usage Example
//
//	client, err := tmdb.NewClient(tmdb.Options{APIKey: key})
//	if err != nil {
//		return err
//	}
//	page, err := client.Trending(ctx, tmdb.WindowDay)
//	if err != nil {
//		return err
//	}
//	for _, t := range page.Results {
//		fmt.Println(t.DisplayName(), tmdb.ImageURL(t.PosterPath, tmdb.SizePoster))
//	}
package tmdb
