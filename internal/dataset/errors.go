package dataset

import "errors"

var (
	// ErrMissingInputFile is returned when the source dataset cannot be located or read.
	ErrMissingInputFile = errors.New("dataset: input file missing or unreadable")

	// ErrMalformedDataset is returned for missing columns or rows that fail validation.
	ErrMalformedDataset = errors.New("dataset: malformed input")

	// ErrDuplicateObservation is returned under the reject policy when a
	// (country, year, activity_group, hour) key appears twice.
	ErrDuplicateObservation = errors.New("dataset: duplicate observation")
)
