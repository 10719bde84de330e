package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/jengzang/life-rhythms-go/internal/models"
)

// DefaultObservationTable is the table written by the upstream cleaning step
const DefaultObservationTable = "observations"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ObservationRepository reads survey observations from SQLite
type ObservationRepository struct {
	db    *sql.DB
	table string
}

// NewObservationRepository creates a new observation repository.
// An empty table name selects DefaultObservationTable.
func NewObservationRepository(db *sql.DB, table string) (*ObservationRepository, error) {
	if table == "" {
		table = DefaultObservationTable
	}
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &ObservationRepository{db: db, table: table}, nil
}

// List returns every observation in insertion order
func (r *ObservationRepository) List(ctx context.Context) ([]models.Observation, error) {
	query := fmt.Sprintf(`SELECT country, year, hour, time_label, activity_group, value
		FROM "%s"
		ORDER BY rowid`, r.table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query observations: %w", err)
	}
	defer rows.Close()

	var observations []models.Observation
	for rows.Next() {
		var o models.Observation
		var timeLabel sql.NullString

		if err := rows.Scan(&o.Country, &o.Year, &o.Hour, &timeLabel, &o.ActivityGroup, &o.Value); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		if timeLabel.Valid {
			o.TimeLabel = timeLabel.String
		}

		observations = append(observations, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate observations: %w", err)
	}

	return observations, nil
}

// Count returns the number of stored observations
func (r *ObservationRepository) Count(ctx context.Context) (int, error) {
	var n int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM "%s"`, r.table)
	if err := r.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count observations: %w", err)
	}
	return n, nil
}
