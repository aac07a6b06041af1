package tmdb

import "strings"

// ImageSize is a TMDB image size token.
type ImageSize string

const (
	SizePoster   ImageSize = "w500"
	SizeOriginal ImageSize = "original"
)

// NoImage is returned by ImageURL when a record has no image path.
const NoImage = ""

// ImageURL builds an image URL against the public TMDB image host.
func ImageURL(path string, size ImageSize) string {
	return buildImageURL(DefaultImageBase, path, size)
}

func buildImageURL(base, path string, size ImageSize) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return NoImage
	}
	if size == "" {
		size = SizePoster
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + "/" + string(size) + path
}
