package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenReadWriteThenReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.db")

	rw, err := Open(Config{Path: path})
	require.NoError(t, err)
	_, err = rw.Exec(`CREATE TABLE t (x INTEGER)`)
	require.NoError(t, err)
	require.NoError(t, rw.Close())

	ro, err := Open(Config{Path: path, ReadOnly: true})
	require.NoError(t, err)
	defer ro.Close()

	_, err = ro.Exec(`INSERT INTO t (x) VALUES (1)`)
	require.Error(t, err, "read-only connection must reject writes")
}

func TestOpenReadOnlyMissingFile(t *testing.T) {
	_, err := Open(Config{Path: filepath.Join(t.TempDir(), "absent.db"), ReadOnly: true})
	require.Error(t, err)
}
