package sendfilter

import (
	"github.com/ksny/sendigR/dataset"
	"github.com/ksny/sendigR/errors"
	"github.com/ksny/sendigR/resolve"
)

// StudyDesign resolves the study design for every study in the caller's
// list and, when opts.TargetValues is non-empty, filters the list to
// studies whose resolved design is in the target set.
//
// studies may be nil, in which case every study known to the database is
// used. A supplied table must carry STUDYID; every other column passes
// through. The result appends an SDESIGN column and, if requested, exactly
// one of UNCERTAIN_MSG or NOT_VALID_MSG.
func (s *Service) StudyDesign(studies *dataset.Table, opts DesignOptions) (*dataset.Table, error) {
	if studies == nil {
		ids, err := s.store.FetchStudyIDs()
		if err != nil {
			return nil, err
		}
		studies = dataset.New(ColStudyID)
		for _, id := range ids {
			studies.Append(dataset.Row{ColStudyID: id})
		}
	} else if !studies.HasColumn(ColStudyID) {
		return nil, errors.NewInvalidInputError("study list missing column %s", ColStudyID)
	}

	targets := normalizeTargets(opts.TargetValues)
	filtering := len(targets) > 0

	keys := make([]resolve.Key, 0, studies.Len())
	studySet := resolve.NewValueSet()
	for _, row := range studies.Rows() {
		keys = append(keys, resolve.Key{StudyID: row[ColStudyID]})
		studySet.Add(row[ColStudyID])
	}
	studyIDs := studySet.Values()

	coarseRows, err := s.store.FetchTrialSummaryValues(tsParamDesign, studyIDs)
	if err != nil {
		return nil, err
	}
	coarse := make([]resolve.CoarseObservation, len(coarseRows))
	for i, r := range coarseRows {
		coarse[i] = resolve.CoarseObservation{StudyID: r.StudyID, Value: r.Value}
	}

	withReasons := (filtering && opts.InclUncertain) ||
		(!filtering && opts.ReportUncertainIfNoFilter)

	var vocab *resolve.ValueSet
	if withReasons {
		vocab, err = s.terms.CodelistValues(s.designCodelist)
		if err != nil {
			return nil, err
		}
	}

	engine := resolve.NewEngine(DesignDescriptor, s.logger)
	records := engine.Run(keys, nil, coarse, resolve.RunOptions{
		Target:           targets,
		Exclusively:      opts.Exclusively,
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

	result := mergeRecords(studies, records, DesignDescriptor.Attribute, false, filtering, msgColumn)

	if s.logger != nil {
		s.logger.Infow("Study design filter complete",
			"studies_in", studies.Len(),
			"studies_out", result.Len(),
			"filtering", filtering,
		)
	}
	return result, nil
}
