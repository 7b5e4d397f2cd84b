// Package sendfilter implements the caller-facing attribute filters of
// sendigR: resolving the route of administration per animal and the study
// design per study, optionally restricting the input list to a requested
// set of attribute values.
//
// Both operations run the same generic engine (package resolve); they
// differ only in granularity and in which SEND sources feed it.
package sendfilter

import (
	"github.com/ksny/sendigR/resolve"
)

// Identity and message column names shared by the filter operations.
const (
	ColStudyID = "STUDYID"
	ColUSubjID = "USUBJID"

	// ColUncertainMsg carries reasons when filtering with inclUncertain.
	ColUncertainMsg = "UNCERTAIN_MSG"
	// ColNotValidMsg carries reasons when no filter is requested and the
	// caller asked for a validity report.
	ColNotValidMsg = "NOT_VALID_MSG"
)

// RouteDescriptor describes the route of administration: recorded per
// animal in EX.EXROUTE and redundantly per study as TS parameter ROUTE.
var RouteDescriptor = resolve.Descriptor{
	Attribute:   "ROUTE",
	FineLabel:   "EXROUTE",
	CoarseLabel: "TS parameter ROUTE",
	Mode:        resolve.SubjectAndStudyLevel,
}

// DesignDescriptor describes the study design: recorded only per study as
// TS parameter SDESIGN.
var DesignDescriptor = resolve.Descriptor{
	Attribute:   "SDESIGN",
	CoarseLabel: "TS parameter SDESIGN",
	Mode:        resolve.StudyLevelOnly,
}
