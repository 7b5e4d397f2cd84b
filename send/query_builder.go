package send

import (
	"strings"
)

// queryBuilder accumulates SQL WHERE clauses and parameters for SEND
// domain queries.
type queryBuilder struct {
	whereClauses []string
	args         []interface{}
}

// addClause appends a WHERE clause with its arguments
func (qb *queryBuilder) addClause(clause string, args ...interface{}) {
	qb.whereClauses = append(qb.whereClauses, clause)
	qb.args = append(qb.args, args...)
}

// addInClause appends "column IN (?, ...)" for the given values.
// No-op for an empty value list (no restriction).
func (qb *queryBuilder) addInClause(column string, values []string) {
	if len(values) == 0 {
		return
	}
	placeholders := make([]string, len(values))
	for i, v := range values {
		placeholders[i] = "?"
		qb.args = append(qb.args, v)
	}
	qb.whereClauses = append(qb.whereClauses, column+" IN ("+strings.Join(placeholders, ", ")+")")
}

// addNonBlankClause restricts a column to non-NULL, non-blank values.
// Blank attribute values are treated as absent by the resolution engine;
// excluding them at the source keeps result sets small.
func (qb *queryBuilder) addNonBlankClause(column string) {
	qb.whereClauses = append(qb.whereClauses, column+" IS NOT NULL AND TRIM("+column+") <> ''")
}

// build returns the WHERE clauses joined with AND, or "" when no clause
// was added.
func (qb *queryBuilder) build() string {
	if len(qb.whereClauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(qb.whereClauses, " AND ")
}
