package trakt

import (
	"encoding/json"
	"fmt"
)

// Read-side queries. Every entity returned here is guaranteed usable for
// cross-referencing against local records: anything missing a title or
// missing all external identifiers is filtered out before return.

// getArray GETs path and decodes a JSON array of T.
func getArray[T any](c *Client, path string) ([]T, error) {
	body, err := c.getFromTrakt(path)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}
	return items, nil
}

func usableMovie(m *Movie) bool {
	return m != nil && m.Title != "" && !m.IDs.Empty()
}

func usableShow(s *Show) bool {
	return s != nil && s.Title != "" && !s.IDs.Empty()
}

// Ratings

// GetRatedMovies returns the user's rated movies.
func (c *Client) GetRatedMovies() ([]UserMovieRating, error) {
	items, err := getArray[UserMovieRating](c, uriRatedMovies)
	if err != nil {
		return nil, err
	}
	var valid []UserMovieRating
	for _, item := range items {
		if usableMovie(item.Movie) {
			valid = append(valid, item)
		}
	}
	return valid, nil
}

// GetRatedShows returns the user's rated shows.
func (c *Client) GetRatedShows() ([]UserShowRating, error) {
	items, err := getArray[UserShowRating](c, uriRatedShows)
	if err != nil {
		return nil, err
	}
	var valid []UserShowRating
	for _, item := range items {
		if usableShow(item.Show) {
			valid = append(valid, item)
		}
	}
	return valid, nil
}

// GetRatedSeasons returns the user's rated seasons.
func (c *Client) GetRatedSeasons() ([]UserSeasonRating, error) {
	items, err := getArray[UserSeasonRating](c, uriRatedSeasons)
	if err != nil {
		return nil, err
	}
	var valid []UserSeasonRating
	for _, item := range items {
		if usableShow(item.Show) {
			valid = append(valid, item)
		}
	}
	return valid, nil
}

// GetRatedEpisodes returns the user's rated episodes.
func (c *Client) GetRatedEpisodes() ([]UserEpisodeRating, error) {
	items, err := getArray[UserEpisodeRating](c, uriRatedEpisodes)
	if err != nil {
		return nil, err
	}
	var valid []UserEpisodeRating
	for _, item := range items {
		if usableShow(item.Show) {
			valid = append(valid, item)
		}
	}
	return valid, nil
}

// Watched

// GetWatchedMovies returns the user's watched movies with play counts.
func (c *Client) GetWatchedMovies() ([]MoviePlays, error) {
	items, err := getArray[MoviePlays](c, uriWatchedMovies)
	if err != nil {
		return nil, err
	}
	var valid []MoviePlays
	for _, item := range items {
		if usableMovie(item.Movie) {
			valid = append(valid, item)
		}
	}
	return valid, nil
}

// GetWatchedShows returns the user's watched shows with play counts.
func (c *Client) GetWatchedShows() ([]ShowPlays, error) {
	items, err := getArray[ShowPlays](c, uriWatchedShows)
	if err != nil {
		return nil, err
	}
	var valid []ShowPlays
	for _, item := range items {
		if usableShow(item.Show) {
			valid = append(valid, item)
		}
	}
	return valid, nil
}

// Watchlist

// GetWatchlistMovies returns the user's watchlist movies.
func (c *Client) GetWatchlistMovies() ([]MovieWatchlistItem, error) {
	items, err := getArray[MovieWatchlistItem](c, uriWatchlistMovies)
	if err != nil {
		return nil, err
	}
	var valid []MovieWatchlistItem
	for _, item := range items {
		if usableMovie(item.Movie) {
			valid = append(valid, item)
		}
	}
	return valid, nil
}

// GetWatchlistShows returns the user's watchlist shows.
func (c *Client) GetWatchlistShows() ([]ShowWatchlistItem, error) {
	items, err := getArray[ShowWatchlistItem](c, uriWatchlistShows)
	if err != nil {
		return nil, err
	}
	var valid []ShowWatchlistItem
	for _, item := range items {
		if usableShow(item.Show) {
			valid = append(valid, item)
		}
	}
	return valid, nil
}

// GetWatchlistSeasons returns the user's watchlist seasons.
func (c *Client) GetWatchlistSeasons() ([]SeasonWatchlistItem, error) {
	items, err := getArray[SeasonWatchlistItem](c, uriWatchlistSeasons)
	if err != nil {
		return nil, err
	}
	var valid []SeasonWatchlistItem
	for _, item := range items {
		if usableShow(item.Show) {
			valid = append(valid, item)
		}
	}
	return valid, nil
}

// GetWatchlistEpisodes returns the user's watchlist episodes.
func (c *Client) GetWatchlistEpisodes() ([]EpisodeWatchlistItem, error) {
	items, err := getArray[EpisodeWatchlistItem](c, uriWatchlistEpisodes)
	if err != nil {
		return nil, err
	}
	var valid []EpisodeWatchlistItem
	for _, item := range items {
		if usableShow(item.Show) {
			valid = append(valid, item)
		}
	}
	return valid, nil
}

// Collection

// GetCollectedMovies returns the user's collected movies.
func (c *Client) GetCollectedMovies() ([]MovieCollected, error) {
	items, err := getArray[MovieCollected](c, uriCollectedMovies)
	if err != nil {
		return nil, err
	}
	var valid []MovieCollected
	for _, item := range items {
		if usableMovie(item.Movie) {
			valid = append(valid, item)
		}
	}
	return valid, nil
}

// GetCollectedShows returns the user's collected shows.
func (c *Client) GetCollectedShows() ([]ShowCollected, error) {
	items, err := getArray[ShowCollected](c, uriCollectedShows)
	if err != nil {
		return nil, err
	}
	var valid []ShowCollected
	for _, item := range items {
		if usableShow(item.Show) {
			valid = append(valid, item)
		}
	}
	return valid, nil
}

// Paused playback

// GetPausedMovies returns movies with paused playback state.
func (c *Client) GetPausedMovies() ([]PausedMovie, error) {
	return getArray[PausedMovie](c, uriPausedMovies)
}

// GetPausedEpisodes returns episodes with paused playback state.
func (c *Client) GetPausedEpisodes() ([]PausedEpisode, error) {
	return getArray[PausedEpisode](c, uriPausedEpisodes)
}

// Custom lists

// GetCustomLists returns the user's custom lists. Pass "" for the
// authenticated user.
func (c *Client) GetCustomLists(username string) ([]ListDetail, error) {
	if username == "" {
		username = "me"
	}
	return getArray[ListDetail](c, fmt.Sprintf(uriUserLists, username))
}

// DeleteCustomList deletes a custom list by id or slug.
func (c *Client) DeleteCustomList(listID, username string) (bool, error) {
	if username == "" {
		username = "me"
	}
	return c.deleteFromTrakt(fmt.Sprintf(uriUserListDelete, username, listID))
}

// CreateCustomList creates a custom list and returns its detail.
func (c *Client) CreateCustomList(list List, username string) (*ListDetail, error) {
	if username == "" {
		username = "me"
	}
	body, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("marshal list: %w", err)
	}
	response, err := c.postToTrakt(fmt.Sprintf(uriUserLists, username), body, false)
	if err != nil {
		return nil, err
	}
	var detail ListDetail
	if err := json.Unmarshal(response, &detail); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	return &detail, nil
}

// GetCustomListItems returns the items of a custom list. extendedInfo is one
// of the ExtendedInfo values (comma-combinable); "" means min.
func (c *Client) GetCustomListItems(listID, username, extendedInfo string) ([]ListItem, error) {
	if username == "" {
		username = "me"
	}
	if extendedInfo == "" {
		extendedInfo = ExtendedInfoMin
	}
	return getArray[ListItem](c, fmt.Sprintf(uriUserListItems, username, listID, extendedInfo))
}

// AddItemsToList adds items of any kind to a custom list.
func (c *Client) AddItemsToList(listID string, items SyncItems, username string) (*SyncResponse, error) {
	if items.Empty() {
		return nil, nil
	}
	if username == "" {
		username = "me"
	}
	return c.postSync(fmt.Sprintf(uriUserListItemsAdd, username, listID), items)
}

// Comments and likes (paginated)

// GetUserComments returns one page of the user's comments, newest first.
// commentType is all|reviews|shouts, itemType is
// all|movies|shows|seasons|episodes|lists. Zero page/limit default to 1/50.
func (c *Client) GetUserComments(username, commentType, itemType, extendedInfo string, page, limit int) (*Page[CommentItem], error) {
	if username == "" {
		username = "me"
	}
	if commentType == "" {
		commentType = "all"
	}
	if itemType == "" {
		itemType = "all"
	}
	if extendedInfo == "" {
		extendedInfo = ExtendedInfoMin
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}

	path := fmt.Sprintf(uriUserComments, username, commentType, itemType, extendedInfo, page, limit)
	body, headers, err := c.getWithHeaders(path)
	if err != nil {
		return nil, err
	}

	totalPages, totalItems, err := readPageMeta(headers)
	if err != nil {
		return nil, err
	}

	var comments []CommentItem
	if err := json.Unmarshal(body, &comments); err != nil {
		return nil, fmt.Errorf("decode comments response: %w", err)
	}

	return &Page[CommentItem]{
		Items:        comments,
		CurrentPage:  page,
		ItemsPerPage: limit,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
	}, nil
}

// GetLikedItems returns one page of the user's liked comments and lists.
// itemType is all|lists|comments. Zero page/limit default to 1/10.
func (c *Client) GetLikedItems(itemType, extendedInfo string, page, limit int) (*Page[Like], error) {
	if itemType == "" {
		itemType = "all"
	}
	if extendedInfo == "" {
		extendedInfo = ExtendedInfoMin
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	path := fmt.Sprintf(uriUserLikes, itemType, extendedInfo, page, limit)
	body, headers, err := c.getWithHeaders(path)
	if err != nil {
		return nil, err
	}

	totalPages, totalItems, err := readPageMeta(headers)
	if err != nil {
		return nil, err
	}

	var likes []Like
	if err := json.Unmarshal(body, &likes); err != nil {
		return nil, fmt.Errorf("decode likes response: %w", err)
	}

	return &Page[Like]{
		Items:        likes,
		CurrentPage:  page,
		ItemsPerPage: limit,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
	}, nil
}

// Search

// GetShowSeasons returns the seasons of a show. id may be a Trakt id, slug
// or IMDb id.
func (c *Client) GetShowSeasons(id string) ([]SeasonSummary, error) {
	return getArray[SeasonSummary](c, fmt.Sprintf(uriSeasonSummary, id))
}

// GetEpisodeDetails looks up an episode by its IMDb id.
func (c *Client) GetEpisodeDetails(imdbID string) ([]EpisodeDetails, error) {
	return getArray[EpisodeDetails](c, fmt.Sprintf(uriIMDBSearch, imdbID))
}
