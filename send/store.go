// Package send provides read access to the SEND domain tables (DM, EX, TS)
// of a study database. The store issues bounded read-only queries and
// performs no writes; its failures propagate unmodified to the caller.
package send

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/ksny/sendigR/errors"
)

// ExposureRoute is one subject-level route candidate (an EX.EXROUTE row).
type ExposureRoute struct {
	StudyID string
	USubjID string
	Route   string
}

// TrialSummaryValue is one study-level parameter value (a TS row for a
// given TSPARMCD).
type TrialSummaryValue struct {
	StudyID string
	Value   string
}

// Animal identifies one subject from DM.
type Animal struct {
	StudyID string
	USubjID string
}

// Store reads SEND domain rows from a study database.
type Store struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewStore creates a SEND domain store. logger may be nil for silent
// operation.
func NewStore(db *sql.DB, logger *zap.SugaredLogger) *Store {
	return &Store{db: db, logger: logger}
}

// FetchExposureRoutes returns the non-blank EXROUTE rows of the given
// studies. An empty studyIDs slice means no study restriction.
func (s *Store) FetchExposureRoutes(studyIDs []string) ([]ExposureRoute, error) {
	qb := &queryBuilder{}
	qb.addInClause("studyid", studyIDs)
	qb.addNonBlankClause("exroute")

	query := "SELECT studyid, usubjid, exroute FROM ex" + qb.build()
	rows, err := s.db.Query(query, qb.args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query exposure routes")
	}
	defer rows.Close()

	var out []ExposureRoute
	for rows.Next() {
		var r ExposureRoute
		if err := rows.Scan(&r.StudyID, &r.USubjID, &r.Route); err != nil {
			return nil, errors.Wrap(err, "failed to scan exposure route row")
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate exposure route rows")
	}

	if s.logger != nil {
		s.logger.Debugw("Fetched exposure routes",
			"studies", len(studyIDs),
			"rows", len(out),
		)
	}
	return out, nil
}

// FetchTrialSummaryValues returns the non-blank TS values recorded for the
// given parameter code in the given studies. An empty studyIDs slice means
// no study restriction.
func (s *Store) FetchTrialSummaryValues(paramCode string, studyIDs []string) ([]TrialSummaryValue, error) {
	qb := &queryBuilder{}
	qb.addClause("tsparmcd = ?", paramCode)
	qb.addInClause("studyid", studyIDs)
	qb.addNonBlankClause("tsval")

	query := "SELECT studyid, tsval FROM ts" + qb.build()
	rows, err := s.db.Query(query, qb.args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query trial summary values for %s", paramCode)
	}
	defer rows.Close()

	var out []TrialSummaryValue
	for rows.Next() {
		var v TrialSummaryValue
		if err := rows.Scan(&v.StudyID, &v.Value); err != nil {
			return nil, errors.Wrap(err, "failed to scan trial summary row")
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate trial summary rows")
	}

	if s.logger != nil {
		s.logger.Debugw("Fetched trial summary values",
			"param", paramCode,
			"studies", len(studyIDs),
			"rows", len(out),
		)
	}
	return out, nil
}

// FetchAnimals returns the animals recorded in DM, optionally restricted
// to the given studies. Ordered by study and subject id for stable CLI
// output.
func (s *Store) FetchAnimals(studyIDs []string) ([]Animal, error) {
	qb := &queryBuilder{}
	qb.addInClause("studyid", studyIDs)

	query := "SELECT studyid, usubjid FROM dm" + qb.build() + " ORDER BY studyid, usubjid"
	rows, err := s.db.Query(query, qb.args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query animals")
	}
	defer rows.Close()

	var out []Animal
	for rows.Next() {
		var a Animal
		if err := rows.Scan(&a.StudyID, &a.USubjID); err != nil {
			return nil, errors.Wrap(err, "failed to scan animal row")
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate animal rows")
	}
	return out, nil
}

// FetchStudyIDs returns every study id known to the database (TS union
// DM), sorted.
func (s *Store) FetchStudyIDs() ([]string, error) {
	query := "SELECT studyid FROM ts UNION SELECT studyid FROM dm ORDER BY studyid"
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query study ids")
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "failed to scan study id")
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate study ids")
	}
	return out, nil
}
