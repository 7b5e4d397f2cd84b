package sendfilter

import (
	"github.com/ksny/sendigR/dataset"
	"github.com/ksny/sendigR/resolve"
)

// mergeRecords joins engine output back onto the caller's input list. The
// attribute column is appended after the caller's columns; extra caller
// columns pass through untouched. When strict is set (a filter was
// requested) input rows without a record are dropped; otherwise every
// input row is retained with its resolved value, possibly empty.
//
// Reasons are prefixed with the attribute name and merged into msgColumn,
// appending to any message a prior pipeline stage left in a column of the
// same name.
func mergeRecords(input *dataset.Table, records []resolve.Record, attribute string, joinOnSubject, strict bool, msgColumn string) *dataset.Table {
	byKey := make(map[resolve.Key]resolve.Record, len(records))
	for _, r := range records {
		byKey[r.Key] = r
	}

	out := dataset.New(input.Columns()...)
	out.AddColumn(attribute)
	if msgColumn != "" {
		out.AddColumn(msgColumn)
	}

	for _, row := range input.Rows() {
		key := resolve.Key{StudyID: row[ColStudyID]}
		if joinOnSubject {
			key.SubjectID = row[ColUSubjID]
		}

		rec, ok := byKey[key]
		if !ok && strict {
			continue
		}

		merged := make(dataset.Row, len(row)+2)
		for k, v := range row {
			merged[k] = v
		}
		merged[attribute] = rec.Value
		if msgColumn != "" && rec.Reason != "" {
			dataset.AppendMessage(merged, msgColumn, attribute+": "+rec.Reason)
		}
		out.Append(merged)
	}
	return out
}
