package dataset

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/jengzang/life-rhythms-go/internal/models"
)

// Column names of the cleaned survey file
const (
	ColCountry       = "country"
	ColYear          = "year"
	ColHour          = "hour"
	ColTimeLabel     = "time_label"
	ColActivityGroup = "activity_group"
	ColValue         = "value"
)

// RequiredColumns lists the columns every source must provide
var RequiredColumns = []string{ColCountry, ColYear, ColHour, ColTimeLabel, ColActivityGroup, ColValue}

var columnTypes = map[string]series.Type{
	ColCountry:       series.String,
	ColYear:          series.String,
	ColHour:          series.Float,
	ColTimeLabel:     series.String,
	ColActivityGroup: series.String,
	ColValue:         series.Float,
}

// missingMarkers are the cell texts read as missing values, as pandas does by default
var missingMarkers = []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL", "<NA>"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadCSV reads the cleaned survey CSV at path
func LoadCSV(path string, policy DuplicatePolicy) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingInputFile, path, err)
	}
	defer f.Close()

	rows, err := ReadCSV(f)
	if err != nil {
		return nil, err
	}
	return New(rows, policy)
}

// ReadCSV decodes observations from CSV with a header row. Extra columns are
// ignored, a leading byte-order mark is skipped and missing cells are rejected.
func ReadCSV(r io.Reader) ([]models.Observation, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	df := dataframe.ReadCSV(br,
		dataframe.WithTypes(columnTypes),
		dataframe.NaNValues(missingMarkers),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDataset, df.Err)
	}

	if err := checkColumns(df.Names()); err != nil {
		return nil, err
	}
	if err := checkMissing(df); err != nil {
		return nil, err
	}

	countries := df.Col(ColCountry).Records()
	years := df.Col(ColYear).Records()
	hours := df.Col(ColHour).Float()
	labels := df.Col(ColTimeLabel).Records()
	activities := df.Col(ColActivityGroup).Records()
	values := df.Col(ColValue).Float()

	rows := make([]models.Observation, df.Nrow())
	for i := range rows {
		year, err := parseYear(years[i])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedDataset, i+1, err)
		}
		rows[i] = models.Observation{
			Country:       strings.TrimSpace(countries[i]),
			Year:          year,
			Hour:          hours[i],
			TimeLabel:     strings.TrimSpace(labels[i]),
			ActivityGroup: strings.TrimSpace(activities[i]),
			Value:         values[i],
		}
	}
	return rows, nil
}

func checkColumns(names []string) error {
	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[strings.TrimSpace(n)] = true
	}

	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing columns %s", ErrMalformedDataset, strings.Join(missing, ", "))
	}
	return nil
}

// checkMissing reports the first required cell that is missing or not a number where one is expected
func checkMissing(df dataframe.DataFrame) error {
	for _, col := range RequiredColumns {
		for i, missing := range df.Col(col).IsNaN() {
			if missing {
				return fmt.Errorf("%w: row %d: missing or invalid %s", ErrMalformedDataset, i+1, col)
			}
		}
	}
	return nil
}

// parseYear accepts "2000" as well as "2000.0" as written by some exporters
func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if y, err := strconv.Atoi(s); err == nil {
		return y, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, errors.New("year " + strconv.Quote(s) + " is not an integer")
	}
	return int(f), nil
}
