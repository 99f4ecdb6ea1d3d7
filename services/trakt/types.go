package trakt

import "time"

// IDs holds external identifiers for a media item.
type IDs struct {
	Trakt int    `json:"trakt,omitempty"`
	Slug  string `json:"slug,omitempty"`
	IMDB  string `json:"imdb,omitempty"`
	TMDB  int    `json:"tmdb,omitempty"`
	TVDB  int    `json:"tvdb,omitempty"`
}

// Empty reports whether no identifier is set at all. Entities without any
// external identifier cannot be cross-referenced against local records.
func (i IDs) Empty() bool {
	return i == IDs{}
}

// Movie identifies a movie for sync operations.
type Movie struct {
	Title string `json:"title,omitempty"`
	Year  int    `json:"year,omitempty"`
	IDs   IDs    `json:"ids"`
}

// Show identifies a show for sync operations.
type Show struct {
	Title string `json:"title,omitempty"`
	Year  int    `json:"year,omitempty"`
	IDs   IDs    `json:"ids"`
}

// Season is a season of a show, identified by number within its parent.
type Season struct {
	Number int `json:"number"`
	IDs    IDs `json:"ids,omitempty"`
}

// Episode identifies an episode for sync operations.
type Episode struct {
	Season int    `json:"season,omitempty"`
	Number int    `json:"number,omitempty"`
	Title  string `json:"title,omitempty"`
	IDs    IDs    `json:"ids"`
}

// ShowSeasons pairs a show with season numbers, used by season-level
// watchlist and rating removal.
type ShowSeasons struct {
	Title   string   `json:"title,omitempty"`
	Year    int      `json:"year,omitempty"`
	IDs     IDs      `json:"ids"`
	Seasons []Season `json:"seasons"`
}

// MovieWatched is a movie plus the time it was watched.
type MovieWatched struct {
	Movie
	WatchedAt string `json:"watched_at,omitempty"`
}

// EpisodeWatched is an episode plus the time it was watched.
type EpisodeWatched struct {
	Episode
	WatchedAt string `json:"watched_at,omitempty"`
}

// MovieRating is a movie plus the user's rating.
type MovieRating struct {
	Movie
	Rating  int    `json:"rating"`
	RatedAt string `json:"rated_at,omitempty"`
}

// ShowRating is a show plus the user's rating.
type ShowRating struct {
	Show
	Rating  int    `json:"rating"`
	RatedAt string `json:"rated_at,omitempty"`
}

// EpisodeRating is an episode plus the user's rating.
type EpisodeRating struct {
	Episode
	Rating  int    `json:"rating"`
	RatedAt string `json:"rated_at,omitempty"`
}

// Wire payload envelopes. The sync endpoints take one JSON object whose
// category key names the item kind.

type movieSync struct {
	Movies []Movie `json:"movies"`
}

type showSync struct {
	Shows []Show `json:"shows"`
}

type seasonSync struct {
	Shows []ShowSeasons `json:"shows"`
}

type episodeSync struct {
	Episodes []Episode `json:"episodes"`
}

type movieWatchedSync struct {
	Movies []MovieWatched `json:"movies"`
}

type episodeWatchedSync struct {
	Episodes []EpisodeWatched `json:"episodes"`
}

type movieRatingSync struct {
	Movies []MovieRating `json:"movies"`
}

type showRatingSync struct {
	Shows []ShowRating `json:"shows"`
}

type episodeRatingSync struct {
	Episodes []EpisodeRating `json:"episodes"`
}

// SyncItems carries mixed item kinds for custom-list additions.
type SyncItems struct {
	Movies   []Movie       `json:"movies,omitempty"`
	Shows    []Show        `json:"shows,omitempty"`
	Seasons  []ShowSeasons `json:"seasons,omitempty"`
	Episodes []Episode     `json:"episodes,omitempty"`
}

// Empty reports whether the batch carries no items of any kind.
func (s SyncItems) Empty() bool {
	return len(s.Movies) == 0 && len(s.Shows) == 0 && len(s.Seasons) == 0 && len(s.Episodes) == 0
}

// SyncCounts holds per-category counts reported by the sync API.
type SyncCounts struct {
	Movies   int `json:"movies"`
	Shows    int `json:"shows"`
	Seasons  int `json:"seasons"`
	Episodes int `json:"episodes"`
}

// SyncNotFound lists the submitted items the service could not match.
type SyncNotFound struct {
	Movies   []Movie   `json:"movies"`
	Shows    []Show    `json:"shows"`
	Seasons  []Season  `json:"seasons"`
	Episodes []Episode `json:"episodes"`
}

// SyncResponse is the outcome of one submitted batch. Add operations report
// Added/Existing, remove operations report Deleted.
type SyncResponse struct {
	Added    SyncCounts   `json:"added"`
	Existing SyncCounts   `json:"existing"`
	Deleted  SyncCounts   `json:"deleted"`
	NotFound SyncNotFound `json:"not_found"`
}

// Read-side entity types.

// UserMovieRating is one movie the user has rated.
type UserMovieRating struct {
	RatedAt string `json:"rated_at"`
	Rating  int    `json:"rating"`
	Movie   *Movie `json:"movie"`
}

// UserShowRating is one show the user has rated.
type UserShowRating struct {
	RatedAt string `json:"rated_at"`
	Rating  int    `json:"rating"`
	Show    *Show  `json:"show"`
}

// UserSeasonRating is one season the user has rated.
type UserSeasonRating struct {
	RatedAt string  `json:"rated_at"`
	Rating  int     `json:"rating"`
	Season  *Season `json:"season"`
	Show    *Show   `json:"show"`
}

// UserEpisodeRating is one episode the user has rated.
type UserEpisodeRating struct {
	RatedAt string   `json:"rated_at"`
	Rating  int      `json:"rating"`
	Episode *Episode `json:"episode"`
	Show    *Show    `json:"show"`
}

// MoviePlays is a watched movie with its play count.
type MoviePlays struct {
	Plays         int    `json:"plays"`
	LastWatchedAt string `json:"last_watched_at"`
	Movie         *Movie `json:"movie"`
}

// ShowPlays is a watched show with per-episode play counts.
type ShowPlays struct {
	Plays         int           `json:"plays"`
	LastWatchedAt string        `json:"last_watched_at"`
	Show          *Show         `json:"show"`
	Seasons       []SeasonPlays `json:"seasons"`
}

// SeasonPlays is a season's watched episodes within ShowPlays.
type SeasonPlays struct {
	Number   int            `json:"number"`
	Episodes []EpisodePlays `json:"episodes"`
}

// EpisodePlays is one watched episode's play count.
type EpisodePlays struct {
	Number        int    `json:"number"`
	Plays         int    `json:"plays"`
	LastWatchedAt string `json:"last_watched_at"`
}

// MovieWatchlistItem is one movie on the user's watchlist.
type MovieWatchlistItem struct {
	ListedAt string `json:"listed_at"`
	Movie    *Movie `json:"movie"`
}

// ShowWatchlistItem is one show on the user's watchlist.
type ShowWatchlistItem struct {
	ListedAt string `json:"listed_at"`
	Show     *Show  `json:"show"`
}

// SeasonWatchlistItem is one season on the user's watchlist.
type SeasonWatchlistItem struct {
	ListedAt string  `json:"listed_at"`
	Season   *Season `json:"season"`
	Show     *Show   `json:"show"`
}

// EpisodeWatchlistItem is one episode on the user's watchlist.
type EpisodeWatchlistItem struct {
	ListedAt string   `json:"listed_at"`
	Episode  *Episode `json:"episode"`
	Show     *Show    `json:"show"`
}

// MovieCollected is one movie in the user's collection.
type MovieCollected struct {
	CollectedAt string `json:"collected_at"`
	Movie       *Movie `json:"movie"`
}

// ShowCollected is one show in the user's collection with collected episodes.
type ShowCollected struct {
	LastCollectedAt string            `json:"last_collected_at"`
	Show            *Show             `json:"show"`
	Seasons         []SeasonCollected `json:"seasons"`
}

// SeasonCollected lists collected episodes within a season.
type SeasonCollected struct {
	Number   int `json:"number"`
	Episodes []struct {
		Number      int    `json:"number"`
		CollectedAt string `json:"collected_at"`
	} `json:"episodes"`
}

// List is the payload for creating a custom list.
type List struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Privacy        string `json:"privacy,omitempty"`
	DisplayNumbers bool   `json:"display_numbers"`
	AllowComments  bool   `json:"allow_comments"`
	SortBy         string `json:"sort_by,omitempty"`
	SortHow        string `json:"sort_how,omitempty"`
}

// ListDetail describes an existing custom list.
type ListDetail struct {
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Privacy        string    `json:"privacy"`
	DisplayNumbers bool      `json:"display_numbers"`
	AllowComments  bool      `json:"allow_comments"`
	SortBy         string    `json:"sort_by"`
	SortHow        string    `json:"sort_how"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	ItemCount      int       `json:"item_count"`
	CommentCount   int       `json:"comment_count"`
	Likes          int       `json:"likes"`
	IDs            struct {
		Trakt int    `json:"trakt"`
		Slug  string `json:"slug"`
	} `json:"ids"`
}

// ListItem is one entry of a custom list.
type ListItem struct {
	Rank     int      `json:"rank"`
	ID       int64    `json:"id"`
	ListedAt string   `json:"listed_at"`
	Notes    string   `json:"notes,omitempty"`
	Type     string   `json:"type"`
	Movie    *Movie   `json:"movie,omitempty"`
	Show     *Show    `json:"show,omitempty"`
	Season   *Season  `json:"season,omitempty"`
	Episode  *Episode `json:"episode,omitempty"`
}

// User is the author of a comment.
type User struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	VIP      bool   `json:"vip"`
	Private  bool   `json:"private"`
	IDs      struct {
		Slug string `json:"slug"`
	} `json:"ids"`
}

// Comment is a shout or review.
type Comment struct {
	ID        int64     `json:"id"`
	Text      string    `json:"comment"`
	Spoiler   bool      `json:"spoiler"`
	Review    bool      `json:"review"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      *User     `json:"user,omitempty"`
}

// CommentItem is one comment together with the entity it was made on.
type CommentItem struct {
	Type    string      `json:"type"`
	Comment *Comment    `json:"comment"`
	Movie   *Movie      `json:"movie,omitempty"`
	Show    *Show       `json:"show,omitempty"`
	Season  *Season     `json:"season,omitempty"`
	Episode *Episode    `json:"episode,omitempty"`
	List    *ListDetail `json:"list,omitempty"`
}

// Like is one liked comment or list.
type Like struct {
	LikedAt time.Time   `json:"liked_at"`
	Type    string      `json:"type"`
	Comment *Comment    `json:"comment,omitempty"`
	List    *ListDetail `json:"list,omitempty"`
}

// PausedMovie is a movie with paused playback progress.
type PausedMovie struct {
	ID       int64   `json:"id"`
	Progress float64 `json:"progress"`
	PausedAt string  `json:"paused_at"`
	Movie    *Movie  `json:"movie"`
}

// PausedEpisode is an episode with paused playback progress.
type PausedEpisode struct {
	ID       int64    `json:"id"`
	Progress float64  `json:"progress"`
	PausedAt string   `json:"paused_at"`
	Episode  *Episode `json:"episode"`
	Show     *Show    `json:"show"`
}

// SeasonSummary is one season of a show as returned by the seasons endpoint.
type SeasonSummary struct {
	Number        int       `json:"number"`
	IDs           IDs       `json:"ids"`
	EpisodeCount  int       `json:"episode_count,omitempty"`
	AiredEpisodes int       `json:"aired_episodes,omitempty"`
	Episodes      []Episode `json:"episodes,omitempty"`
}

// EpisodeDetails is an episode search result keyed by an external id.
type EpisodeDetails struct {
	Type    string   `json:"type"`
	Score   float64  `json:"score"`
	Episode *Episode `json:"episode"`
	Show    *Show    `json:"show,omitempty"`
}

// Page is one page of a paginated endpoint, with metadata read from the
// X-Pagination response headers.
type Page[T any] struct {
	Items        []T
	CurrentPage  int
	ItemsPerPage int
	TotalPages   int
	TotalItems   int
}
