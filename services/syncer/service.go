// Package syncer runs one end-to-end reconciliation: canonical records from
// an export are compared against the user's remote state and the differences
// are dispatched in batches.
package syncer

import (
	"encoding/json"
	"fmt"
	"log"

	"reelsync/internal/cache"
	"reelsync/models"
	"reelsync/services/trakt"
)

// Service drives sync runs. Operations are synchronous; one run issues its
// requests strictly in sequence.
type Service struct {
	client *trakt.Client
	cache  *cache.Cache
}

// New creates a syncer around an authenticated client. responseCache may be
// nil, in which case every episode lookup goes to the network.
func New(client *trakt.Client, responseCache *cache.Cache) *Service {
	return &Service{client: client, cache: responseCache}
}

// Outcome summarizes one sync operation.
type Outcome struct {
	Considered int
	Skipped    int // unsyncable, unrated, or already up to date remotely
	Unresolved int // episodes whose identifiers could not be resolved
	Added      int
	Existing   int
	NotFound   int
}

// absorb folds a dispatch response into the running totals.
func (o *Outcome) absorb(resp *trakt.SyncResponse) {
	if resp == nil {
		return
	}
	o.Added += resp.Added.Movies + resp.Added.Shows + resp.Added.Seasons + resp.Added.Episodes
	o.Existing += resp.Existing.Movies + resp.Existing.Shows + resp.Existing.Seasons + resp.Existing.Episodes
	o.NotFound += len(resp.NotFound.Movies) + len(resp.NotFound.Shows) +
		len(resp.NotFound.Seasons) + len(resp.NotFound.Episodes)
}

// SyncRatings pushes the records' ratings, skipping anything the user has
// already rated identically on the remote side.
func (s *Service) SyncRatings(records []models.MediaRecord) (*Outcome, error) {
	ratedMovies, err := s.client.GetRatedMovies()
	if err != nil {
		return nil, fmt.Errorf("fetch rated movies: %w", err)
	}
	ratedShows, err := s.client.GetRatedShows()
	if err != nil {
		return nil, fmt.Errorf("fetch rated shows: %w", err)
	}
	ratedEpisodes, err := s.client.GetRatedEpisodes()
	if err != nil {
		return nil, fmt.Errorf("fetch rated episodes: %w", err)
	}

	movieRatings := make(map[string]int, len(ratedMovies))
	for _, r := range ratedMovies {
		movieRatings[r.Movie.IDs.IMDB] = r.Rating
	}
	showRatings := make(map[string]int, len(ratedShows))
	for _, r := range ratedShows {
		showRatings[r.Show.IDs.IMDB] = r.Rating
	}
	episodeRatings := make(map[string]int, len(ratedEpisodes))
	for _, r := range ratedEpisodes {
		if r.Episode != nil {
			episodeRatings[r.Episode.IDs.IMDB] = r.Rating
		}
	}

	outcome := &Outcome{Considered: len(records)}
	var movies []trakt.MovieRating
	var shows []trakt.ShowRating
	var episodes []trakt.EpisodeRating

	for _, rec := range records {
		if !rec.Syncable() || rec.Rating == 0 {
			outcome.Skipped++
			continue
		}
		switch rec.Type {
		case models.MediaTypeMovie:
			if movieRatings[rec.IMDbID] == rec.Rating {
				outcome.Skipped++
				continue
			}
			movies = append(movies, trakt.MovieRating{
				Movie:   recordMovie(rec),
				Rating:  rec.Rating,
				RatedAt: rec.RatedAt,
			})
		case models.MediaTypeShow:
			if showRatings[rec.IMDbID] == rec.Rating {
				outcome.Skipped++
				continue
			}
			shows = append(shows, trakt.ShowRating{
				Show:    recordShow(rec),
				Rating:  rec.Rating,
				RatedAt: rec.RatedAt,
			})
		case models.MediaTypeEpisode:
			if episodeRatings[rec.IMDbID] == rec.Rating {
				outcome.Skipped++
				continue
			}
			episode, err := s.lookupEpisode(rec.IMDbID)
			if err != nil {
				log.Printf("[syncer] resolve episode %s: %v", rec.IMDbID, err)
				outcome.Unresolved++
				continue
			}
			episodes = append(episodes, trakt.EpisodeRating{
				Episode: *episode,
				Rating:  rec.Rating,
				RatedAt: rec.RatedAt,
			})
		}
	}

	resp, err := s.client.AddMoviesToRatings(movies)
	if err != nil {
		return outcome, fmt.Errorf("sync movie ratings: %w", err)
	}
	outcome.absorb(resp)

	resp, err = s.client.AddShowsToRatings(shows)
	if err != nil {
		return outcome, fmt.Errorf("sync show ratings: %w", err)
	}
	outcome.absorb(resp)

	resp, err = s.client.AddEpisodesToRatings(episodes)
	if err != nil {
		return outcome, fmt.Errorf("sync episode ratings: %w", err)
	}
	outcome.absorb(resp)

	return outcome, nil
}

// SyncWatchlist adds the records to the remote watchlist, skipping anything
// already listed.
func (s *Service) SyncWatchlist(records []models.MediaRecord) (*Outcome, error) {
	listedMovies, err := s.client.GetWatchlistMovies()
	if err != nil {
		return nil, fmt.Errorf("fetch watchlist movies: %w", err)
	}
	listedShows, err := s.client.GetWatchlistShows()
	if err != nil {
		return nil, fmt.Errorf("fetch watchlist shows: %w", err)
	}
	listedEpisodes, err := s.client.GetWatchlistEpisodes()
	if err != nil {
		return nil, fmt.Errorf("fetch watchlist episodes: %w", err)
	}

	onList := make(map[string]bool)
	for _, item := range listedMovies {
		onList[item.Movie.IDs.IMDB] = true
	}
	for _, item := range listedShows {
		onList[item.Show.IDs.IMDB] = true
	}
	for _, item := range listedEpisodes {
		if item.Episode != nil {
			onList[item.Episode.IDs.IMDB] = true
		}
	}

	outcome := &Outcome{Considered: len(records)}
	var movies []trakt.Movie
	var shows []trakt.Show
	var episodes []trakt.Episode

	for _, rec := range records {
		if !rec.Syncable() || onList[rec.IMDbID] {
			outcome.Skipped++
			continue
		}
		switch rec.Type {
		case models.MediaTypeMovie:
			movies = append(movies, recordMovie(rec))
		case models.MediaTypeShow:
			shows = append(shows, recordShow(rec))
		case models.MediaTypeEpisode:
			episode, err := s.lookupEpisode(rec.IMDbID)
			if err != nil {
				log.Printf("[syncer] resolve episode %s: %v", rec.IMDbID, err)
				outcome.Unresolved++
				continue
			}
			episodes = append(episodes, *episode)
		}
	}

	resp, err := s.client.AddMoviesToWatchlist(movies)
	if err != nil {
		return outcome, fmt.Errorf("sync watchlist movies: %w", err)
	}
	outcome.absorb(resp)

	resp, err = s.client.AddShowsToWatchlist(shows)
	if err != nil {
		return outcome, fmt.Errorf("sync watchlist shows: %w", err)
	}
	outcome.absorb(resp)

	resp, err = s.client.AddEpisodesToWatchlist(episodes)
	if err != nil {
		return outcome, fmt.Errorf("sync watchlist episodes: %w", err)
	}
	outcome.absorb(resp)

	return outcome, nil
}

// MarkWatched adds movie and episode records to the watched history, using
// the source rating timestamp as the watched time when present. Show records
// are skipped; a whole show has no single watched time.
func (s *Service) MarkWatched(records []models.MediaRecord) (*Outcome, error) {
	watchedMovies, err := s.client.GetWatchedMovies()
	if err != nil {
		return nil, fmt.Errorf("fetch watched movies: %w", err)
	}

	watched := make(map[string]bool, len(watchedMovies))
	for _, item := range watchedMovies {
		watched[item.Movie.IDs.IMDB] = true
	}

	outcome := &Outcome{Considered: len(records)}
	var movies []trakt.MovieWatched
	var episodes []trakt.EpisodeWatched

	for _, rec := range records {
		if !rec.Syncable() || rec.Type == models.MediaTypeShow || watched[rec.IMDbID] {
			outcome.Skipped++
			continue
		}
		switch rec.Type {
		case models.MediaTypeMovie:
			movies = append(movies, trakt.MovieWatched{
				Movie:     recordMovie(rec),
				WatchedAt: rec.RatedAt,
			})
		case models.MediaTypeEpisode:
			episode, err := s.lookupEpisode(rec.IMDbID)
			if err != nil {
				log.Printf("[syncer] resolve episode %s: %v", rec.IMDbID, err)
				outcome.Unresolved++
				continue
			}
			episodes = append(episodes, trakt.EpisodeWatched{
				Episode:   *episode,
				WatchedAt: rec.RatedAt,
			})
		}
	}

	resp, err := s.client.AddMoviesToWatchedHistory(movies)
	if err != nil {
		return outcome, fmt.Errorf("sync watched movies: %w", err)
	}
	outcome.absorb(resp)

	resp, err = s.client.AddEpisodesToWatchedHistory(episodes)
	if err != nil {
		return outcome, fmt.Errorf("sync watched episodes: %w", err)
	}
	outcome.absorb(resp)

	return outcome, nil
}

// lookupEpisode resolves an episode's identifiers from its IMDb id, going
// through the response cache before the search endpoint.
func (s *Service) lookupEpisode(imdbID string) (*trakt.Episode, error) {
	var details []trakt.EpisodeDetails

	var cachePath string
	if s.cache != nil {
		cachePath = s.cache.SearchResultsPath("trakt", imdbID)
		if payload, ok := s.cache.Get(cachePath); ok {
			if err := json.Unmarshal(payload, &details); err == nil {
				return firstEpisode(details, imdbID)
			}
			// Unreadable entry: drop it and fetch fresh.
			s.cache.Invalidate(cachePath)
		}
	}

	details, err := s.client.GetEpisodeDetails(imdbID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(details); err == nil {
			s.cache.Put(cachePath, payload)
		}
	}

	return firstEpisode(details, imdbID)
}

func firstEpisode(details []trakt.EpisodeDetails, imdbID string) (*trakt.Episode, error) {
	for _, d := range details {
		if d.Episode != nil {
			return d.Episode, nil
		}
	}
	return nil, fmt.Errorf("no episode match for %s", imdbID)
}

func recordMovie(rec models.MediaRecord) trakt.Movie {
	return trakt.Movie{
		Title: rec.Title,
		Year:  rec.Year,
		IDs:   trakt.IDs{IMDB: rec.IMDbID},
	}
}

func recordShow(rec models.MediaRecord) trakt.Show {
	return trakt.Show{
		Title: rec.Title,
		Year:  rec.Year,
		IDs:   trakt.IDs{IMDB: rec.IMDbID},
	}
}
