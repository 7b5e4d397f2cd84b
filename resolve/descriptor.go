package resolve

// Mode selects which precedence branches of the resolver are reachable for
// an attribute.
type Mode int

const (
	// SubjectAndStudyLevel attributes are recorded per animal (fine) and
	// redundantly per study (coarse); subject-level evidence wins.
	SubjectAndStudyLevel Mode = iota

	// StudyLevelOnly attributes exist only at study granularity; records
	// carry no subject id and resolution considers coarse values only.
	StudyLevelOnly
)

// Descriptor describes one resolvable attribute. The labels name the
// underlying SEND sources and drive the wording of classification messages
// (e.g. FineLabel "EXROUTE", CoarseLabel "TS parameter ROUTE").
type Descriptor struct {
	// Attribute is the output column name, e.g. "ROUTE" or "SDESIGN".
	Attribute   string
	FineLabel   string
	CoarseLabel string
	Mode        Mode
}

// Key identifies one record under resolution: an animal within a study, or
// the study itself when the attribute is StudyLevelOnly (empty SubjectID).
type Key struct {
	StudyID   string
	SubjectID string
}

// FineObservation is a candidate attribute value recorded at subject
// granularity, e.g. one EX.EXROUTE row.
type FineObservation struct {
	StudyID   string
	SubjectID string
	Value     string
}

// CoarseObservation is a candidate attribute value recorded at study
// granularity, e.g. one TS parameter row. It applies to every subject of
// the study.
type CoarseObservation struct {
	StudyID string
	Value   string
}
