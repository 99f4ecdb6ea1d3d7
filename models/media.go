package models

// MediaType is the canonical taxonomy every imported record is normalized
// into before it is considered for sync.
type MediaType int

const (
	MediaTypeUnknown MediaType = iota
	MediaTypeMovie
	MediaTypeShow
	MediaTypeEpisode
)

// String returns the lowercase name used in logs and reports.
func (t MediaType) String() string {
	switch t {
	case MediaTypeMovie:
		return "movie"
	case MediaTypeShow:
		return "show"
	case MediaTypeEpisode:
		return "episode"
	default:
		return "unknown"
	}
}

// MediaRecord is the canonical representation of one rateable/watchable item,
// independent of the export format it came from. Only the identifier, title
// and year travel to the sync API; everything else in a source row is
// descriptive metadata and is dropped at ingestion.
type MediaRecord struct {
	// IMDbID is the provider identifier, e.g. "tt0111161".
	IMDbID string    `json:"imdbId"`
	Title  string    `json:"title,omitempty"`
	Year   int       `json:"year,omitempty"`
	Type   MediaType `json:"type"`

	// Rating is the user's rating from the source export (1-10, 0 = unrated).
	Rating int `json:"rating,omitempty"`
	// RatedAt is the source timestamp of the rating, if known (ISO 8601).
	RatedAt string `json:"ratedAt,omitempty"`

	// Episode-only fields. ShowIMDbID identifies the parent show when the
	// record is an episode; Season/Episode are one-based numbers.
	ShowIMDbID string `json:"showImdbId,omitempty"`
	ShowTitle  string `json:"showTitle,omitempty"`
	Season     int    `json:"season,omitempty"`
	Episode    int    `json:"episode,omitempty"`
}

// Syncable reports whether the record carries enough identification for the
// sync API. Records with an unknown type or no identifier are rejected
// server-side (or silently ignored), so dispatch filters them out up front.
func (r MediaRecord) Syncable() bool {
	if r.Type == MediaTypeUnknown {
		return false
	}
	if r.Type == MediaTypeEpisode {
		return r.IMDbID != "" || r.ShowIMDbID != ""
	}
	return r.IMDbID != ""
}
