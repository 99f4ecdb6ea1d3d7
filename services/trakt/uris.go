package trakt

// Endpoint paths, relative to the API base URL. Templated paths are
// fmt.Sprintf format strings.
const (
	uriLoginOAuth = "/oauth/token"

	uriSyncWatchlist        = "/sync/watchlist"
	uriSyncWatchlistRemove  = "/sync/watchlist/remove"
	uriSyncWatched          = "/sync/history"
	uriSyncWatchedRemove    = "/sync/history/remove"
	uriSyncRatings          = "/sync/ratings"
	uriSyncRatingsRemove    = "/sync/ratings/remove"
	uriSyncCollection       = "/sync/collection"
	uriSyncCollectionRemove = "/sync/collection/remove"
	uriSyncPausedRemove     = "/sync/playback/%d"

	uriRatedMovies   = "/sync/ratings/movies"
	uriRatedShows    = "/sync/ratings/shows"
	uriRatedSeasons  = "/sync/ratings/seasons"
	uriRatedEpisodes = "/sync/ratings/episodes"

	uriWatchedMovies = "/sync/watched/movies"
	uriWatchedShows  = "/sync/watched/shows"

	uriWatchlistMovies   = "/sync/watchlist/movies"
	uriWatchlistShows    = "/sync/watchlist/shows"
	uriWatchlistSeasons  = "/sync/watchlist/seasons"
	uriWatchlistEpisodes = "/sync/watchlist/episodes"

	uriCollectedMovies = "/sync/collection/movies"
	uriCollectedShows  = "/sync/collection/shows"

	uriPausedMovies   = "/sync/playback/movies"
	uriPausedEpisodes = "/sync/playback/episodes"

	uriUserLists        = "/users/%s/lists"
	uriUserListDelete   = "/users/%s/lists/%s"
	uriUserListItems    = "/users/%s/lists/%s/items/%s"
	uriUserListItemsAdd = "/users/%s/lists/%s/items"

	uriUserComments = "/users/%s/comments/%s/%s?extended=%s&page=%d&limit=%d"
	uriUserLikes    = "/users/likes/%s?extended=%s&page=%d&limit=%d"

	uriSeasonSummary = "/shows/%s/seasons?extended=full"
	uriIMDBSearch    = "/search/imdb/%s?type=episode"
)

// Extended-info verbosity levels recognized by the API. Values are
// comma-combinable, e.g. "full,images".
const (
	ExtendedInfoMin    = "min"
	ExtendedInfoFull   = "full"
	ExtendedInfoImages = "images"
)
