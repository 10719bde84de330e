package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jengzang/life-rhythms-go/internal/database"
	"github.com/jengzang/life-rhythms-go/internal/models"
)

func seedDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "survey.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE observations (
		country TEXT, year INTEGER, hour REAL, time_label TEXT, activity_group TEXT, value REAL)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO observations VALUES
		('Belgium', 2000, 7.0, '07:00-07:10', 'Sleep', 62.5),
		('Belgium', 2000, 7.1666, '07:10-07:20', 'Sleep', 55.0),
		('France', 2010, 8.0, '08:00-08:10', 'Work', NULL)`)
	require.NoError(t, err)
	return db
}

func TestObservationRepositoryList(t *testing.T) {
	db := seedDB(t)
	_, err := db.Exec(`UPDATE observations SET value = 12.25 WHERE country = 'France'`)
	require.NoError(t, err)

	repo, err := NewObservationRepository(db, "")
	require.NoError(t, err)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, models.Observation{
		Country: "Belgium", Year: 2000, Hour: 7, TimeLabel: "07:00-07:10", ActivityGroup: "Sleep", Value: 62.5,
	}, got[0])
	require.Equal(t, "France", got[2].Country)
	require.Equal(t, 12.25, got[2].Value)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestObservationRepositoryNullValueFailsScan(t *testing.T) {
	repo, err := NewObservationRepository(seedDB(t), "observations")
	require.NoError(t, err)

	_, err = repo.List(context.Background())
	require.Error(t, err)
}

func TestObservationRepositoryRejectsBadTableName(t *testing.T) {
	_, err := NewObservationRepository(nil, `x"; DROP TABLE y; --`)
	require.Error(t, err)
}

func TestObservationRepositoryMissingTable(t *testing.T) {
	repo, err := NewObservationRepository(seedDB(t), "absent")
	require.NoError(t, err)

	_, err = repo.List(context.Background())
	require.Error(t, err)
}
