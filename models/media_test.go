package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncable(t *testing.T) {
	assert.True(t, MediaRecord{IMDbID: "tt0111161", Type: MediaTypeMovie}.Syncable())
	assert.True(t, MediaRecord{IMDbID: "tt0903747", Type: MediaTypeShow}.Syncable())

	// Unknown type is never dispatched, identifier or not.
	assert.False(t, MediaRecord{IMDbID: "tt0111161", Type: MediaTypeUnknown}.Syncable())

	// No identifier at all.
	assert.False(t, MediaRecord{Title: "Untitled", Type: MediaTypeMovie}.Syncable())

	// Episodes may be identified by their own id or the parent show's.
	assert.True(t, MediaRecord{IMDbID: "tt0959621", Type: MediaTypeEpisode}.Syncable())
	assert.True(t, MediaRecord{ShowIMDbID: "tt0903747", Season: 1, Episode: 1, Type: MediaTypeEpisode}.Syncable())
	assert.False(t, MediaRecord{Season: 1, Episode: 1, Type: MediaTypeEpisode}.Syncable())
}

func TestMediaTypeString(t *testing.T) {
	assert.Equal(t, "movie", MediaTypeMovie.String())
	assert.Equal(t, "show", MediaTypeShow.String())
	assert.Equal(t, "episode", MediaTypeEpisode.String())
	assert.Equal(t, "unknown", MediaTypeUnknown.String())
}
