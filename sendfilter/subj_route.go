package sendfilter

import (
	"github.com/ksny/sendigR/dataset"
	"github.com/ksny/sendigR/errors"
	"github.com/ksny/sendigR/resolve"
)

// SubjRoute resolves the route of administration for every animal in the
// caller's list and, when opts.TargetValues is non-empty, filters the list
// to animals whose resolved route is in the target set.
//
// The input table must carry STUDYID and USUBJID; every other column
// passes through to the result. The result appends a ROUTE column and, if
// requested, exactly one of UNCERTAIN_MSG (filtering with InclUncertain)
// or NOT_VALID_MSG (no filter with ReportUncertainIfNoFilter).
func (s *Service) SubjRoute(animals *dataset.Table, opts RouteOptions) (*dataset.Table, error) {
	if animals == nil {
		return nil, errors.NewInvalidInputError("animal list is required")
	}
	for _, col := range []string{ColStudyID, ColUSubjID} {
		if !animals.HasColumn(col) {
			return nil, errors.NewInvalidInputError("animal list missing column %s", col)
		}
	}

	targets := normalizeTargets(opts.TargetValues)
	filtering := len(targets) > 0

	keys := make([]resolve.Key, 0, animals.Len())
	studySet := resolve.NewValueSet()
	for _, row := range animals.Rows() {
		keys = append(keys, resolve.Key{StudyID: row[ColStudyID], SubjectID: row[ColUSubjID]})
		studySet.Add(row[ColStudyID])
	}
	studyIDs := studySet.Values()

	fineRows, err := s.store.FetchExposureRoutes(studyIDs)
	if err != nil {
		return nil, err
	}
	coarseRows, err := s.store.FetchTrialSummaryValues(tsParamRoute, studyIDs)
	if err != nil {
		return nil, err
	}

	fine := make([]resolve.FineObservation, len(fineRows))
	for i, r := range fineRows {
		fine[i] = resolve.FineObservation{StudyID: r.StudyID, SubjectID: r.USubjID, Value: r.Route}
	}
	coarse := make([]resolve.CoarseObservation, len(coarseRows))
	for i, r := range coarseRows {
		coarse[i] = resolve.CoarseObservation{StudyID: r.StudyID, Value: r.Value}
	}

	withReasons := (filtering && opts.InclUncertain) ||
		(!filtering && opts.ReportUncertainIfNoFilter)

	var vocab *resolve.ValueSet
	if withReasons {
		vocab, err = s.terms.CodelistValues(s.routeCodelist)
		if err != nil {
			return nil, err
		}
	}

	engine := resolve.NewEngine(RouteDescriptor, s.logger)
	records := engine.Run(keys, fine, coarse, resolve.RunOptions{
		Target:           targets,
		Exclusively:      opts.Exclusively,
		MatchAll:         opts.MatchAll,
		IncludeUncertain: opts.InclUncertain,
		WithReasons:      withReasons,
		Vocabulary:       vocab,
	})

	msgColumn := ""
	switch {
	case filtering && opts.InclUncertain:
		msgColumn = ColUncertainMsg
	case !filtering && opts.ReportUncertainIfNoFilter:
		msgColumn = ColNotValidMsg
	}

	result := mergeRecords(animals, records, RouteDescriptor.Attribute, true, filtering, msgColumn)

	if s.logger != nil {
		s.logger.Infow("Subject route filter complete",
			"animals_in", animals.Len(),
			"animals_out", result.Len(),
			"filtering", filtering,
		)
	}
	return result, nil
}
