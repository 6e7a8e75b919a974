package tmdb

// ImageBaseURL is the base URL of TMDB's image CDN.
const ImageBaseURL = "https://image.tmdb.org/t/p"

// ImageSize is a TMDB image size token.
type ImageSize string

const (
	SizeW92      ImageSize = "w92"
	SizeW154     ImageSize = "w154"
	SizeW185     ImageSize = "w185"
	SizeW342     ImageSize = "w342"
	SizeW500     ImageSize = "w500"
	SizeW780     ImageSize = "w780"
	SizeOriginal ImageSize = "original"

	PosterSize    = SizeW342
	ProfileSize   = SizeW780
	ThumbnailSize = SizeW185
)

// ImageURL returns the full CDN URL of an image path, e.g. "/abc.jpg". An empty size selects ProfileSize.
func ImageURL(path string, size ImageSize) string {
	if size == "" {
		size = ProfileSize
	}
	return ImageBaseURL + "/" + string(size) + path
}
