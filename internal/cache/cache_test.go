package cache

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingPath(t *testing.T) {
	c := NewWithFs(afero.NewMemMapFs(), "cache")

	payload, ok := c.Get(c.ShowInfoPath("71663"))
	assert.False(t, ok)
	assert.Nil(t, payload)
}

func TestPutGetRoundTrip(t *testing.T) {
	c := NewWithFs(afero.NewMemMapFs(), "cache")
	path := c.ShowInfoPath("71663")

	c.Put(path, []byte("<Series><id>71663</id></Series>"))

	payload, ok := c.Get(path)
	require.True(t, ok)
	assert.Equal(t, "<Series><id>71663</id></Series>", string(payload))
}

func TestPutNilPayloadKeepsExisting(t *testing.T) {
	c := NewWithFs(afero.NewMemMapFs(), "cache")
	path := c.ShowRatingsPath()

	c.Put(path, []byte("original"))
	c.Put(path, nil)

	payload, ok := c.Get(path)
	require.True(t, ok)
	assert.Equal(t, "original", string(payload))
}

func TestGetExpired(t *testing.T) {
	fs := afero.NewMemMapFs()
	c := NewWithFs(fs, "cache")
	path := c.EpisodeRatingsPath("71663")

	c.Put(path, []byte("stale"))
	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, fs.Chtimes(path, old, old))

	_, ok := c.Get(path)
	assert.False(t, ok)

	// A wider window still sees it.
	payload, ok := c.GetWithExpiry(path, 72*time.Hour)
	require.True(t, ok)
	assert.Equal(t, "stale", string(payload))
}

func TestInvalidate(t *testing.T) {
	c := NewWithFs(afero.NewMemMapFs(), "cache")
	path := c.SearchResultsPath("tvdb", "buffy")

	c.Put(path, []byte("results"))
	c.Invalidate(path)

	_, ok := c.Get(path)
	assert.False(t, ok)

	// Invalidating a missing file is not an error.
	c.Invalidate(path)
}
