package dataset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendDiscoversColumns(t *testing.T) {
	tbl := New("STUDYID", "USUBJID")
	tbl.Append(Row{"STUDYID": "S1", "USUBJID": "S1-A1", "SEX": "M"})

	assert.Equal(t, []string{"STUDYID", "USUBJID", "SEX"}, tbl.Columns())
	assert.Equal(t, 1, tbl.Len())
	assert.Equal(t, "M", tbl.Row(0)["SEX"])
}

func TestAppendCopiesRows(t *testing.T) {
	tbl := New("STUDYID")
	src := Row{"STUDYID": "S1"}
	tbl.Append(src)

	src["STUDYID"] = "mutated"
	assert.Equal(t, "S1", tbl.Row(0)["STUDYID"])
}

func TestAddColumnIsIdempotent(t *testing.T) {
	tbl := New("STUDYID")
	tbl.AddColumn("STUDYID")
	tbl.AddColumn("ROUTE")
	tbl.AddColumn("ROUTE")
	assert.Equal(t, []string{"STUDYID", "ROUTE"}, tbl.Columns())
}

func TestAppendMessage(t *testing.T) {
	row := Row{}

	// absent + absent stays absent
	AppendMessage(row, "UNCERTAIN_MSG", "")
	assert.Equal(t, "", row["UNCERTAIN_MSG"])

	AppendMessage(row, "UNCERTAIN_MSG", "ROUTE: multiple EXROUTE values found")
	assert.Equal(t, "ROUTE: multiple EXROUTE values found", row["UNCERTAIN_MSG"])

	// later stages append with the fixed separator
	AppendMessage(row, "UNCERTAIN_MSG", "SEX: missing")
	assert.Equal(t, "ROUTE: multiple EXROUTE values found|SEX: missing", row["UNCERTAIN_MSG"])
}

func TestMarshalJSON(t *testing.T) {
	tbl := New("STUDYID", "ROUTE")
	tbl.Append(Row{"STUDYID": "S1", "ROUTE": "ORAL"})

	data, err := json.Marshal(tbl)
	require.NoError(t, err)

	var decoded []map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "S1", decoded[0]["STUDYID"])
	assert.Equal(t, "ORAL", decoded[0]["ROUTE"])
}

func TestStringAlignsColumns(t *testing.T) {
	tbl := New("STUDYID", "USUBJID")
	tbl.Append(Row{"STUDYID": "S1", "USUBJID": "S1-ANIMAL-001"})
	out := tbl.String()

	assert.Contains(t, out, "STUDYID")
	assert.Contains(t, out, "S1-ANIMAL-001")
}
