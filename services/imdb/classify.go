// Package imdb ingests IMDb export data (CSV lists, scraped fields) and
// normalizes it into canonical media records.
package imdb

import (
	"strings"
	"unicode"

	"reelsync/models"
)

// Classify maps a free-text "Title Type" label from an IMDb export into the
// canonical taxonomy. The label is taken verbatim from the source, so case
// and internal whitespace are normalized here. Unrecognized labels classify
// as a movie rather than unknown: in practice almost every unmatched entry
// is feature-length content, and classification degrades to a best guess
// instead of failing.
func Classify(label string) models.MediaType {
	normalized := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, label)

	switch normalized {
	case "video",
		"documentary",
		"tvmovie",
		"tvshort",
		"featurefilm",
		"unknownwork",
		"movie",
		"short",
		"tvspecial":
		return models.MediaTypeMovie
	case "tvminiseries", "tvseries":
		return models.MediaTypeShow
	case "tvepisode":
		return models.MediaTypeEpisode
	default:
		// most likely a movie
		return models.MediaTypeMovie
	}
}

// IsBatchExport reports whether the named provider feeds records through the
// bulk-export path. Everything other than a live single-item web lookup is a
// batch export.
func IsBatchExport(provider string) bool {
	return provider != "web"
}
