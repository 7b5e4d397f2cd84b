package sendfilter

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksny/sendigR/dataset"
	"github.com/ksny/sendigR/errors"
	sendigrtest "github.com/ksny/sendigR/internal/testing"
)

// seedDesignFixture loads the shared design scenario:
//
//	S1: TS SDESIGN = PARALLEL
//	S2: two TS SDESIGN values (PARALLEL, CROSSOVER)
//	S3: no TS SDESIGN
//	S4: TS SDESIGN = DOSE ESCALATION, absent from the DESIGN codelist
func seedDesignFixture(t *testing.T, conn *sql.DB) *dataset.Table {
	t.Helper()

	studies := dataset.New(ColStudyID)
	for _, id := range []string{"S1", "S2", "S3", "S4"} {
		sendigrtest.InsertAnimal(t, conn, id, id+"-01")
		studies.Append(dataset.Row{ColStudyID: id})
	}

	sendigrtest.InsertTrialSummary(t, conn, "S1", "SDESIGN", "PARALLEL")
	sendigrtest.InsertTrialSummary(t, conn, "S2", "SDESIGN", "PARALLEL")
	sendigrtest.InsertTrialSummary(t, conn, "S2", "SDESIGN", "CROSSOVER")
	sendigrtest.InsertTrialSummary(t, conn, "S4", "SDESIGN", "DOSE ESCALATION")

	sendigrtest.InsertCTTerm(t, conn, "DESIGN", "PARALLEL")
	sendigrtest.InsertCTTerm(t, conn, "DESIGN", "CROSSOVER")

	return studies
}

func designsByStudy(t *testing.T, result *dataset.Table) map[string]dataset.Row {
	t.Helper()
	out := make(map[string]dataset.Row, result.Len())
	for _, row := range result.Rows() {
		out[row[ColStudyID]] = row
	}
	return out
}

func TestStudyDesignNoFilter(t *testing.T) {
	conn := sendigrtest.CreateTestDB(t)
	studies := seedDesignFixture(t, conn)
	svc := NewService(conn, nil)

	result, err := svc.StudyDesign(studies, DesignOptions{ReportUncertainIfNoFilter: true})
	require.NoError(t, err)

	assert.Equal(t, studies.Len(), result.Len())
	assert.True(t, result.HasColumn("SDESIGN"))
	assert.True(t, result.HasColumn(ColNotValidMsg))

	rows := designsByStudy(t, result)
	assert.Equal(t, "PARALLEL", rows["S1"]["SDESIGN"])
	assert.Equal(t, "", rows["S1"][ColNotValidMsg])

	assert.Equal(t, "", rows["S2"]["SDESIGN"])
	assert.Equal(t, "SDESIGN: multiple TS parameter SDESIGN values found", rows["S2"][ColNotValidMsg])

	assert.Equal(t, "", rows["S3"]["SDESIGN"])
	assert.Equal(t, "SDESIGN: TS parameter SDESIGN value is missing", rows["S3"][ColNotValidMsg])

	assert.Equal(t, "DOSE ESCALATION", rows["S4"]["SDESIGN"])
	assert.Equal(t, "SDESIGN: TS parameter SDESIGN value does not contain a valid CT value",
		rows["S4"][ColNotValidMsg])
}

func TestStudyDesignFilter(t *testing.T) {
	conn := sendigrtest.CreateTestDB(t)
	studies := seedDesignFixture(t, conn)
	svc := NewService(conn, nil)

	opts := DefaultDesignOptions()
	opts.TargetValues = []string{"PARALLEL"}
	result, err := svc.StudyDesign(studies, opts)
	require.NoError(t, err)

	rows := designsByStudy(t, result)
	assert.Contains(t, rows, "S1")
	assert.Len(t, rows, 1)
	assert.False(t, result.HasColumn(ColUncertainMsg))
	assert.False(t, result.HasColumn(ColNotValidMsg))
}

func TestStudyDesignFilterInclUncertain(t *testing.T) {
	conn := sendigrtest.CreateTestDB(t)
	studies := seedDesignFixture(t, conn)
	svc := NewService(conn, nil)

	opts := DefaultDesignOptions()
	opts.TargetValues = []string{"CROSSOVER"}
	opts.InclUncertain = true
	result, err := svc.StudyDesign(studies, opts)
	require.NoError(t, err)

	assert.True(t, result.HasColumn(ColUncertainMsg))
	rows := designsByStudy(t, result)
	// No study resolves to CROSSOVER alone; S2, S3 and the CT-invalid S4
	// join through the uncertain union.
	assert.Contains(t, rows, "S2")
	assert.Contains(t, rows, "S3")
	assert.Contains(t, rows, "S4")
	assert.Len(t, rows, 3)
	assert.NotEmpty(t, rows["S2"][ColUncertainMsg])
	assert.Equal(t, "SDESIGN: TS parameter SDESIGN value does not contain a valid CT value",
		rows["S4"][ColUncertainMsg])
}

func TestStudyDesignNilListUsesAllStudies(t *testing.T) {
	conn := sendigrtest.CreateTestDB(t)
	seedDesignFixture(t, conn)
	svc := NewService(conn, nil)

	result, err := svc.StudyDesign(nil, DesignOptions{ReportUncertainIfNoFilter: true})
	require.NoError(t, err)

	rows := designsByStudy(t, result)
	assert.Len(t, rows, 4)
	assert.Equal(t, "PARALLEL", rows["S1"]["SDESIGN"])
}

func TestStudyDesignPreservesExtraColumns(t *testing.T) {
	conn := sendigrtest.CreateTestDB(t)
	sendigrtest.InsertTrialSummary(t, conn, "S1", "SDESIGN", "PARALLEL")
	sendigrtest.InsertCTTerm(t, conn, "DESIGN", "PARALLEL")

	studies := dataset.New(ColStudyID, "SPONSOR")
	studies.Append(dataset.Row{ColStudyID: "S1", "SPONSOR": "ACME"})

	svc := NewService(conn, nil)
	result, err := svc.StudyDesign(studies, DefaultDesignOptions())
	require.NoError(t, err)

	require.Equal(t, 1, result.Len())
	assert.Equal(t, "ACME", result.Row(0)["SPONSOR"])
	assert.Equal(t, "PARALLEL", result.Row(0)["SDESIGN"])
}

func TestStudyDesignInvalidInput(t *testing.T) {
	conn := sendigrtest.CreateTestDB(t)
	svc := NewService(conn, nil)

	missing := dataset.New("STUDY")
	missing.Append(dataset.Row{"STUDY": "S1"})
	_, err := svc.StudyDesign(missing, DefaultDesignOptions())
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
}

func TestStudyDesignCustomCodelist(t *testing.T) {
	conn := sendigrtest.CreateTestDB(t)
	sendigrtest.InsertTrialSummary(t, conn, "S1", "SDESIGN", "PARALLEL")
	sendigrtest.InsertCTTerm(t, conn, "SDESIGN CT", "PARALLEL")

	studies := dataset.New(ColStudyID)
	studies.Append(dataset.Row{ColStudyID: "S1"})

	svc := NewService(conn, nil)
	svc.SetCodelists("", "SDESIGN CT")
	result, err := svc.StudyDesign(studies, DesignOptions{ReportUncertainIfNoFilter: true})
	require.NoError(t, err)

	require.Equal(t, 1, result.Len())
	assert.Equal(t, "", result.Row(0)[ColNotValidMsg])
}
