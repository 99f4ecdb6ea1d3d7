package imdb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelsync/models"
)

const sampleExport = `Position,Const,Created,Modified,Description,Title,Original Title,URL,Title Type,IMDb Rating,Runtime (mins),Year,Genres,Num Votes,Release Date,Directors,Your Rating,Date Rated
1,tt0111161,2024-10-01,2024-10-01,,The Shawshank Redemption,The Shawshank Redemption,https://www.imdb.com/title/tt0111161/,Movie,9.3,142,1994,Drama,2900000,1994-09-23,Frank Darabont,10,2024-10-01
2,tt0903747,2024-10-02,2024-10-02,,Breaking Bad,Breaking Bad,https://www.imdb.com/title/tt0903747/,TV Series,9.5,49,2008,"Crime, Drama",2200000,2008-01-20,,9,2024-10-02
3,tt0959621,2024-10-03,2024-10-03,,Pilot,Pilot,https://www.imdb.com/title/tt0959621/,TV Episode,9.0,58,2008,"Crime, Drama",55000,2008-01-20,,8,2024-10-03
`

func TestReadList(t *testing.T) {
	records, err := ReadList(strings.NewReader(sampleExport))
	require.NoError(t, err)
	require.Len(t, records, 3)

	movie := records[0]
	assert.Equal(t, "tt0111161", movie.IMDbID)
	assert.Equal(t, "The Shawshank Redemption", movie.Title)
	assert.Equal(t, 1994, movie.Year)
	assert.Equal(t, models.MediaTypeMovie, movie.Type)
	assert.Equal(t, 10, movie.Rating)
	assert.Equal(t, "2024-10-01", movie.RatedAt)

	show := records[1]
	assert.Equal(t, "tt0903747", show.IMDbID)
	assert.Equal(t, models.MediaTypeShow, show.Type)

	episode := records[2]
	assert.Equal(t, "tt0959621", episode.IMDbID)
	assert.Equal(t, models.MediaTypeEpisode, episode.Type)
}

func TestReadListMissingOptionalColumns(t *testing.T) {
	export := "Position,Const,Created,Modified,Description,Title,Original Title,URL,Title Type,IMDb Rating,Runtime (mins),Year,Genres,Num Votes,Release Date,Directors,Your Rating,Date Rated\n" +
		",tt0468569,,,,The Dark Knight,,,Movie,,,,,,,,,\n"

	records, err := ReadList(strings.NewReader(export))
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "tt0468569", rec.IMDbID)
	assert.Zero(t, rec.Year)
	assert.Zero(t, rec.Rating)
	assert.True(t, rec.Syncable())
}

func TestReadListMalformed(t *testing.T) {
	_, err := ReadList(strings.NewReader("Position,Const\n1,tt1,extra-field\n"))
	assert.Error(t, err)
}
