// Package ct provides controlled-terminology lookups. A codelist is the
// externally supplied reference vocabulary a resolved attribute value is
// validated against; membership is case-insensitive.
package ct

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/ksny/sendigR/errors"
	"github.com/ksny/sendigR/resolve"
)

// Store reads CDISC controlled terminology from the ct_terms table.
type Store struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewStore creates a controlled-terminology store. logger may be nil for
// silent operation.
func NewStore(db *sql.DB, logger *zap.SugaredLogger) *Store {
	return &Store{db: db, logger: logger}
}

// CodelistValues returns the submission values of the named codelist as a
// case-insensitive set. An unknown codelist yields an empty set, which the
// classifier then reports as invalid per value; query failures propagate.
func (s *Store) CodelistValues(codelist string) (*resolve.ValueSet, error) {
	rows, err := s.db.Query("SELECT cd_val FROM ct_terms WHERE codelist = ?", codelist)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query codelist %s", codelist)
	}
	defer rows.Close()

	set := resolve.NewValueSet()
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, errors.Wrap(err, "failed to scan CT term")
		}
		set.Add(value)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to iterate codelist %s", codelist)
	}

	if s.logger != nil {
		s.logger.Debugw("Loaded codelist",
			"codelist", codelist,
			"terms", set.Len(),
		)
	}
	return set, nil
}
