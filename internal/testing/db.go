// Package testing provides shared test helpers for sendigR packages.
package testing

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ksny/sendigR/db"
)

// CreateTestDB creates an in-memory SQLite test database with the full
// SEND schema applied. Automatically registers cleanup via t.Cleanup().
func CreateTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := db.Migrate(conn, nil); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
	})

	return conn
}

// InsertAnimal seeds one DM row.
func InsertAnimal(t *testing.T, conn *sql.DB, studyID, usubjID string) {
	t.Helper()
	if _, err := conn.Exec(
		"INSERT INTO dm (studyid, usubjid) VALUES (?, ?)", studyID, usubjID,
	); err != nil {
		t.Fatalf("Failed to insert animal %s/%s: %v", studyID, usubjID, err)
	}
}

// InsertExposure seeds one EX row with the given route. The sequence
// number is assigned from the current row count of the subject.
func InsertExposure(t *testing.T, conn *sql.DB, studyID, usubjID, route string) {
	t.Helper()
	var seq int
	if err := conn.QueryRow(
		"SELECT COUNT(*) + 1 FROM ex WHERE studyid = ? AND usubjid = ?", studyID, usubjID,
	).Scan(&seq); err != nil {
		t.Fatalf("Failed to compute exseq: %v", err)
	}
	if _, err := conn.Exec(
		"INSERT INTO ex (studyid, usubjid, exseq, exroute) VALUES (?, ?, ?, ?)",
		studyID, usubjID, seq, route,
	); err != nil {
		t.Fatalf("Failed to insert exposure %s/%s: %v", studyID, usubjID, err)
	}
}

// InsertTrialSummary seeds one TS row for the given parameter code.
func InsertTrialSummary(t *testing.T, conn *sql.DB, studyID, paramCode, value string) {
	t.Helper()
	var seq int
	if err := conn.QueryRow(
		"SELECT COUNT(*) + 1 FROM ts WHERE studyid = ? AND tsparmcd = ?", studyID, paramCode,
	).Scan(&seq); err != nil {
		t.Fatalf("Failed to compute tsseq: %v", err)
	}
	if _, err := conn.Exec(
		"INSERT INTO ts (studyid, tsseq, tsparmcd, tsval) VALUES (?, ?, ?, ?)",
		studyID, seq, paramCode, value,
	); err != nil {
		t.Fatalf("Failed to insert trial summary %s/%s: %v", studyID, paramCode, err)
	}
}

// InsertCTTerm seeds one controlled-terminology row.
func InsertCTTerm(t *testing.T, conn *sql.DB, codelist, value string) {
	t.Helper()
	if _, err := conn.Exec(
		"INSERT INTO ct_terms (codelist, cd_val) VALUES (?, ?)", codelist, value,
	); err != nil {
		t.Fatalf("Failed to insert CT term %s/%s: %v", codelist, value, err)
	}
}
