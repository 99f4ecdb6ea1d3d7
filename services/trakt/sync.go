package trakt

import (
	"encoding/json"
	"fmt"
	"log"
)

// Batch dispatch. Every operation follows the same contract: a nil or empty
// batch is a valid "nothing to do" state and returns (nil, nil) without
// touching the network; transport and decode failures return (nil, err);
// otherwise the service's per-item outcome is returned. Retries, if any,
// live in the transport layer, not here.

// postSync serializes payload, submits it and decodes the outcome.
func (c *Client) postSync(path string, payload any) (*SyncResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal sync payload: %w", err)
	}

	response, err := c.postToTrakt(path, body, false)
	if err != nil {
		return nil, err
	}

	var result SyncResponse
	if err := json.Unmarshal(response, &result); err != nil {
		return nil, fmt.Errorf("decode sync response: %w", err)
	}
	return &result, nil
}

// Watchlist

// AddMoviesToWatchlist adds movies to the user's watchlist.
func (c *Client) AddMoviesToWatchlist(movies []Movie) (*SyncResponse, error) {
	if len(movies) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncWatchlist, movieSync{Movies: movies})
}

// AddShowsToWatchlist adds shows to the user's watchlist.
func (c *Client) AddShowsToWatchlist(shows []Show) (*SyncResponse, error) {
	if len(shows) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncWatchlist, showSync{Shows: shows})
}

// AddEpisodesToWatchlist adds episodes to the user's watchlist.
func (c *Client) AddEpisodesToWatchlist(episodes []Episode) (*SyncResponse, error) {
	if len(episodes) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncWatchlist, episodeSync{Episodes: episodes})
}

// RemoveMoviesFromWatchlist removes movies from the user's watchlist.
func (c *Client) RemoveMoviesFromWatchlist(movies []Movie) (*SyncResponse, error) {
	if len(movies) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncWatchlistRemove, movieSync{Movies: movies})
}

// RemoveShowsFromWatchlist removes shows from the user's watchlist.
func (c *Client) RemoveShowsFromWatchlist(shows []Show) (*SyncResponse, error) {
	if len(shows) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncWatchlistRemove, showSync{Shows: shows})
}

// RemoveSeasonsFromWatchlist removes seasons from the user's watchlist.
func (c *Client) RemoveSeasonsFromWatchlist(shows []ShowSeasons) (*SyncResponse, error) {
	if len(shows) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncWatchlistRemove, seasonSync{Shows: shows})
}

// RemoveEpisodesFromWatchlist removes episodes from the user's watchlist.
func (c *Client) RemoveEpisodesFromWatchlist(episodes []Episode) (*SyncResponse, error) {
	if len(episodes) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncWatchlistRemove, episodeSync{Episodes: episodes})
}

// Watched history

// AddMoviesToWatchedHistory marks movies as watched.
func (c *Client) AddMoviesToWatchedHistory(movies []MovieWatched) (*SyncResponse, error) {
	if len(movies) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncWatched, movieWatchedSync{Movies: movies})
}

// AddEpisodesToWatchedHistory marks episodes as watched.
func (c *Client) AddEpisodesToWatchedHistory(episodes []EpisodeWatched) (*SyncResponse, error) {
	if len(episodes) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncWatched, episodeWatchedSync{Episodes: episodes})
}

// RemoveMoviesFromWatchedHistory removes movies from the watched history.
func (c *Client) RemoveMoviesFromWatchedHistory(movies []Movie) (*SyncResponse, error) {
	if len(movies) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncWatchedRemove, movieSync{Movies: movies})
}

// RemoveShowsFromWatchedHistory removes every episode of each show from the
// watched history.
func (c *Client) RemoveShowsFromWatchedHistory(shows []Show) (*SyncResponse, error) {
	if len(shows) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncWatchedRemove, showSync{Shows: shows})
}

// Ratings

// AddMoviesToRatings rates movies.
func (c *Client) AddMoviesToRatings(movies []MovieRating) (*SyncResponse, error) {
	if len(movies) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncRatings, movieRatingSync{Movies: movies})
}

// AddShowsToRatings rates shows.
func (c *Client) AddShowsToRatings(shows []ShowRating) (*SyncResponse, error) {
	if len(shows) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncRatings, showRatingSync{Shows: shows})
}

// AddEpisodesToRatings rates episodes.
func (c *Client) AddEpisodesToRatings(episodes []EpisodeRating) (*SyncResponse, error) {
	if len(episodes) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncRatings, episodeRatingSync{Episodes: episodes})
}

// RemoveMoviesFromRatings removes movie ratings.
func (c *Client) RemoveMoviesFromRatings(movies []Movie) (*SyncResponse, error) {
	if len(movies) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncRatingsRemove, movieSync{Movies: movies})
}

// RemoveShowsFromRatings removes show ratings.
func (c *Client) RemoveShowsFromRatings(shows []Show) (*SyncResponse, error) {
	if len(shows) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncRatingsRemove, showSync{Shows: shows})
}

// RemoveSeasonsFromRatings removes season ratings.
func (c *Client) RemoveSeasonsFromRatings(shows []ShowSeasons) (*SyncResponse, error) {
	if len(shows) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncRatingsRemove, seasonSync{Shows: shows})
}

// RemoveEpisodesFromRatings removes episode ratings.
func (c *Client) RemoveEpisodesFromRatings(episodes []Episode) (*SyncResponse, error) {
	if len(episodes) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncRatingsRemove, episodeSync{Episodes: episodes})
}

// Collection

// AddMoviesToCollection adds movies to the user's collection.
func (c *Client) AddMoviesToCollection(movies []Movie) (*SyncResponse, error) {
	if len(movies) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncCollection, movieSync{Movies: movies})
}

// RemoveMoviesFromCollection removes movies from the user's collection.
func (c *Client) RemoveMoviesFromCollection(movies []Movie) (*SyncResponse, error) {
	if len(movies) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncCollectionRemove, movieSync{Movies: movies})
}

// RemoveShowsFromCollection removes every episode of each show from the
// user's collection.
func (c *Client) RemoveShowsFromCollection(shows []Show) (*SyncResponse, error) {
	if len(shows) == 0 {
		return nil, nil
	}
	return c.postSync(uriSyncCollectionRemove, showSync{Shows: shows})
}

// Paused playback

// RemovePausedState deletes one paused playback entry by its numeric id.
func (c *Client) RemovePausedState(id int64) (bool, error) {
	ok, err := c.deleteFromTrakt(fmt.Sprintf(uriSyncPausedRemove, id))
	if err != nil {
		return false, err
	}
	if !ok {
		log.Printf("[trakt] paused state %d not removed", id)
	}
	return ok, nil
}
