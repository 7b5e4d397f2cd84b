package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenWithMigrations(t *testing.T) {
	t.Run("creates SEND schema", func(t *testing.T) {
		tmpDir := t.TempDir()
		dbPath := filepath.Join(tmpDir, "test.db")

		db, err := OpenWithMigrations(dbPath, nil)
		require.NoError(t, err)
		require.NotNil(t, db)
		defer db.Close()

		for _, table := range []string{"schema_migrations", "dm", "ex", "ts", "ct_terms"} {
			var count int
			err = db.QueryRow(
				"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table,
			).Scan(&count)
			require.NoError(t, err)
			assert.Equal(t, 1, count, "table %s should exist after migrations", table)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		tmpDir := t.TempDir()
		dbPath := filepath.Join(tmpDir, "test.db")

		db, err := OpenWithMigrations(dbPath, nil)
		require.NoError(t, err)
		db.Close()

		// Reopening must skip already-applied migrations
		db, err = OpenWithMigrations(dbPath, nil)
		require.NoError(t, err)
		defer db.Close()

		var applied int
		err = db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied)
		require.NoError(t, err)
		assert.Equal(t, 3, applied)
	})

	t.Run("migrated tables accept SEND rows", func(t *testing.T) {
		tmpDir := t.TempDir()
		dbPath := filepath.Join(tmpDir, "test.db")

		db, err := OpenWithMigrations(dbPath, nil)
		require.NoError(t, err)
		defer db.Close()

		_, err = db.Exec("INSERT INTO dm (studyid, usubjid, sex) VALUES ('S1', 'S1-A1', 'M')")
		require.NoError(t, err)
		_, err = db.Exec("INSERT INTO ex (studyid, usubjid, exseq, exroute) VALUES ('S1', 'S1-A1', 1, 'ORAL')")
		require.NoError(t, err)
		_, err = db.Exec("INSERT INTO ts (studyid, tsseq, tsparmcd, tsval) VALUES ('S1', 1, 'ROUTE', 'ORAL')")
		require.NoError(t, err)
		_, err = db.Exec("INSERT INTO ct_terms (codelist, cd_val) VALUES ('ROUTE', 'ORAL')")
		require.NoError(t, err)
	})
}
