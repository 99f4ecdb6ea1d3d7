package imdb

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/jszwec/csvutil"

	"reelsync/models"
)

// ListRow is one row of an IMDb CSV export. Ratings, watchlist and custom
// list exports all share this header as of late 2024:
//
//	Position,Const,Created,Modified,Description,Title,Original Title,URL,
//	Title Type,IMDb Rating,Runtime (mins),Year,Genres,Num Votes,
//	Release Date,Directors,Your Rating,Date Rated
type ListRow struct {
	Position      *int   `csv:"Position"`
	ID            string `csv:"Const"`
	Created       string `csv:"Created"`
	Modified      string `csv:"Modified"`
	Description   string `csv:"Description"`
	Title         string `csv:"Title"`
	OriginalTitle string `csv:"Original Title"`
	URL           string `csv:"URL"`
	TitleType     string `csv:"Title Type"`
	IMDbRating    string `csv:"IMDb Rating"`
	Runtime       *int   `csv:"Runtime (mins)"`
	Year          *int   `csv:"Year"`
	Genres        string `csv:"Genres"`
	Votes         *int   `csv:"Num Votes"`
	ReleaseDate   string `csv:"Release Date"`
	Directors     string `csv:"Directors"`
	YourRating    *int   `csv:"Your Rating"`
	DateRated     string `csv:"Date Rated"`
}

// Record converts the row to a canonical record. Only the identifier, title,
// year and the user's rating are forwarded; the remaining columns are
// descriptive metadata the sync API has no use for.
func (r ListRow) Record() models.MediaRecord {
	rec := models.MediaRecord{
		IMDbID: r.ID,
		Title:  r.Title,
		Type:   Classify(r.TitleType),
	}
	if r.Year != nil {
		rec.Year = *r.Year
	}
	if r.YourRating != nil {
		rec.Rating = *r.YourRating
	}
	rec.RatedAt = r.DateRated
	return rec
}

// ReadList parses an IMDb CSV export into canonical records. Rows without a
// Const identifier are kept (the dispatcher filters unsyncable records); a
// malformed CSV fails the whole read.
func ReadList(r io.Reader) ([]models.MediaRecord, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true

	dec, err := csvutil.NewDecoder(cr)
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var records []models.MediaRecord
	for {
		var row ListRow
		if err := dec.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("decode csv row: %w", err)
		}
		records = append(records, row.Record())
	}
	return records, nil
}

// ReadListFile reads an IMDb CSV export from disk.
func ReadListFile(path string) ([]models.MediaRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv export: %w", err)
	}
	defer f.Close()
	return ReadList(f)
}
