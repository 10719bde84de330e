package dataset

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jengzang/life-rhythms-go/internal/database"
	"github.com/jengzang/life-rhythms-go/internal/repository"
)

// Options selects and configures the dataset source
type Options struct {
	Path       string
	Table      string // SQLite sources only
	Duplicates DuplicatePolicy
}

// Load reads the dataset from a CSV file or a SQLite database, chosen by
// the file extension of opts.Path.
func Load(ctx context.Context, opts Options) (*Dataset, error) {
	if _, err := os.Stat(opts.Path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingInputFile, opts.Path, err)
	}

	var (
		ds  *Dataset
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(opts.Path)); ext {
	case ".db", ".sqlite", ".sqlite3":
		ds, err = loadSQLite(ctx, opts)
	default:
		ds, err = LoadCSV(opts.Path, opts.Duplicates)
	}
	if err != nil {
		return nil, err
	}

	log.Printf("Dataset loaded from %s: %d rows, %d countries, %d years, %d activities",
		opts.Path, ds.Len(), len(ds.countries), len(ds.years), len(ds.activities))
	return ds, nil
}

func loadSQLite(ctx context.Context, opts Options) (*Dataset, error) {
	db, err := database.Open(database.Config{Path: opts.Path, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingInputFile, err)
	}
	defer db.Close()

	repo, err := repository.NewObservationRepository(db, opts.Table)
	if err != nil {
		return nil, err
	}

	n, err := repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDataset, err)
	}
	log.Printf("Reading %d observations from table %s", n, opts.Table)

	rows, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDataset, err)
	}
	return New(rows, opts.Duplicates)
}
