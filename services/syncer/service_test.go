package syncer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelsync/internal/cache"
	"reelsync/models"
	"reelsync/services/trakt"
)

type ratingsBody struct {
	Movies []struct {
		Title  string `json:"title"`
		Rating int    `json:"rating"`
		IDs    struct {
			IMDB string `json:"imdb"`
		} `json:"ids"`
	} `json:"movies"`
	Episodes []struct {
		Season int `json:"season"`
		Number int `json:"number"`
		Rating int `json:"rating"`
		IDs    struct {
			IMDB string `json:"imdb"`
		} `json:"ids"`
	} `json:"episodes"`
}

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := trakt.NewClientWithBaseURL(server.URL, "id", "secret")
	return New(client, cache.NewWithFs(afero.NewMemMapFs(), "cache"))
}

func TestSyncRatingsSkipsUnchangedAndUnsyncable(t *testing.T) {
	var posted []ratingsBody
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sync/ratings/movies":
			w.Write([]byte(`[{"rating":10,"movie":{"title":"The Shawshank Redemption","ids":{"imdb":"tt0111161"}}}]`))
		case "/sync/ratings/shows", "/sync/ratings/episodes":
			w.Write([]byte(`[]`))
		case "/search/imdb/tt0959621":
			w.Write([]byte(`[{"type":"episode","score":100,"episode":{"season":1,"number":1,"ids":{"imdb":"tt0959621","trakt":73482}}}]`))
		case "/sync/ratings":
			var body ratingsBody
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			posted = append(posted, body)
			w.WriteHeader(http.StatusCreated)
			if len(body.Movies) > 0 {
				w.Write([]byte(`{"added":{"movies":1}}`))
			} else {
				w.Write([]byte(`{"added":{"episodes":1}}`))
			}
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	records := []models.MediaRecord{
		// Already rated identically on the remote side.
		{IMDbID: "tt0111161", Title: "The Shawshank Redemption", Type: models.MediaTypeMovie, Rating: 10},
		// New rating to push.
		{IMDbID: "tt0468569", Title: "The Dark Knight", Year: 2008, Type: models.MediaTypeMovie, Rating: 9},
		// No identifier: filtered before dispatch.
		{Title: "Mystery Item", Type: models.MediaTypeMovie, Rating: 7},
		// Unrated: nothing to sync.
		{IMDbID: "tt0110912", Title: "Pulp Fiction", Type: models.MediaTypeMovie},
		// Episode needing resolution.
		{IMDbID: "tt0959621", Title: "Pilot", Type: models.MediaTypeEpisode, Rating: 8},
	}

	outcome, err := svc.SyncRatings(records)
	require.NoError(t, err)

	assert.Equal(t, 5, outcome.Considered)
	assert.Equal(t, 3, outcome.Skipped)
	assert.Zero(t, outcome.Unresolved)
	assert.Equal(t, 2, outcome.Added)

	// One movie batch and one episode batch were dispatched.
	require.Len(t, posted, 2)
	require.Len(t, posted[0].Movies, 1)
	assert.Equal(t, "tt0468569", posted[0].Movies[0].IDs.IMDB)
	assert.Equal(t, 9, posted[0].Movies[0].Rating)
	require.Len(t, posted[1].Episodes, 1)
	assert.Equal(t, 1, posted[1].Episodes[0].Season)
	assert.Equal(t, 8, posted[1].Episodes[0].Rating)
}

func TestSyncRatingsNothingToDo(t *testing.T) {
	posts := 0
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			posts++
		}
		w.Write([]byte(`[]`))
	})

	outcome, err := svc.SyncRatings([]models.MediaRecord{
		{IMDbID: "tt0111161", Type: models.MediaTypeMovie}, // unrated
	})
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Skipped)
	assert.Zero(t, posts, "empty batches must not be submitted")
}

func TestSyncWatchlistSkipsExisting(t *testing.T) {
	var body struct {
		Movies []trakt.Movie `json:"movies"`
	}
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sync/watchlist/movies":
			w.Write([]byte(`[{"listed_at":"2024-01-01T00:00:00Z","movie":{"title":"Heat","ids":{"imdb":"tt0113277"}}}]`))
		case "/sync/watchlist/shows", "/sync/watchlist/episodes":
			w.Write([]byte(`[]`))
		case "/sync/watchlist":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"added":{"movies":1},"existing":{"movies":0}}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	outcome, err := svc.SyncWatchlist([]models.MediaRecord{
		{IMDbID: "tt0113277", Title: "Heat", Type: models.MediaTypeMovie},
		{IMDbID: "tt0137523", Title: "Fight Club", Year: 1999, Type: models.MediaTypeMovie},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.Skipped)
	assert.Equal(t, 1, outcome.Added)
	require.Len(t, body.Movies, 1)
	assert.Equal(t, "tt0137523", body.Movies[0].IDs.IMDB)
}

func TestLookupEpisodeUsesCache(t *testing.T) {
	searches := 0
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search/imdb/tt0959621", r.URL.Path)
		searches++
		w.Write([]byte(`[{"type":"episode","score":100,"episode":{"season":1,"number":1,"ids":{"imdb":"tt0959621"}}}]`))
	})

	first, err := svc.lookupEpisode("tt0959621")
	require.NoError(t, err)
	second, err := svc.lookupEpisode("tt0959621")
	require.NoError(t, err)

	assert.Equal(t, 1, searches, "second lookup should come from the cache")
	assert.Equal(t, first, second)
}

func TestLookupEpisodeNoMatch(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := svc.lookupEpisode("tt0000000")
	assert.Error(t, err)
}

func TestMarkWatched(t *testing.T) {
	var body struct {
		Movies []struct {
			WatchedAt string `json:"watched_at"`
			IDs       struct {
				IMDB string `json:"imdb"`
			} `json:"ids"`
		} `json:"movies"`
	}
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sync/watched/movies":
			w.Write([]byte(`[{"plays":3,"movie":{"title":"Heat","ids":{"imdb":"tt0113277"}}}]`))
		case "/sync/history":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"added":{"movies":1}}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	outcome, err := svc.MarkWatched([]models.MediaRecord{
		{IMDbID: "tt0113277", Title: "Heat", Type: models.MediaTypeMovie, RatedAt: "2024-10-01"},
		{IMDbID: "tt0137523", Title: "Fight Club", Type: models.MediaTypeMovie, RatedAt: "2024-10-02"},
		{IMDbID: "tt0903747", Title: "Breaking Bad", Type: models.MediaTypeShow},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, outcome.Skipped) // already watched + show record
	assert.Equal(t, 1, outcome.Added)
	require.Len(t, body.Movies, 1)
	assert.Equal(t, "tt0137523", body.Movies[0].IDs.IMDB)
	assert.Equal(t, "2024-10-02", body.Movies[0].WatchedAt)
}
