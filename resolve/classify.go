package resolve

import (
	"fmt"
	"strings"
)

// ReasonSeparator joins multiple applicable classification conditions into
// one reason string.
const ReasonSeparator = " & "

// Classify produces a human-readable reason when a record's resolution is
// absent, ambiguous, invalid against the reference vocabulary, or derived
// from conflicting sources. Conditions are evaluated in fixed order and
// every applicable one is emitted. An empty string means the resolution is
// clean; missing evidence is itself a classified condition, never an error.
//
// vocab may be nil, in which case the validity check is skipped.
func (d Descriptor) Classify(c Candidates, value string, source Source, vocab *ValueSet) string {
	var reasons []string
	fineCount := c.Fine.Len()
	coarseCount := c.Coarse.Len()

	if source == SourceNone {
		switch {
		case fineCount > 1:
			reasons = append(reasons,
				fmt.Sprintf("multiple %s values found", d.FineLabel))
		case fineCount == 0 && coarseCount > 1:
			if d.Mode == StudyLevelOnly {
				reasons = append(reasons,
					fmt.Sprintf("multiple %s values found", d.CoarseLabel))
			} else {
				reasons = append(reasons,
					fmt.Sprintf("multiple %s values found and no %s value", d.CoarseLabel, d.FineLabel))
			}
		case fineCount == 0 && coarseCount == 0:
			if d.Mode == StudyLevelOnly {
				reasons = append(reasons,
					fmt.Sprintf("%s value is missing", d.CoarseLabel))
			} else {
				reasons = append(reasons,
					fmt.Sprintf("both %s and %s values are missing", d.FineLabel, d.CoarseLabel))
			}
		}
	} else if vocab != nil && !vocab.Contains(value) {
		label := d.FineLabel
		if source == SourceCoarse {
			label = d.CoarseLabel
		}
		reasons = append(reasons,
			fmt.Sprintf("%s value does not contain a valid CT value", label))
	}

	// Source conflict applies whether or not resolution succeeded
	if fineCount > 0 && coarseCount > 0 && !c.Fine.SubsetOf(c.Coarse) {
		reasons = append(reasons,
			fmt.Sprintf("mismatch between %s and %s values", d.FineLabel, d.CoarseLabel))
	}

	return strings.Join(reasons, ReasonSeparator)
}
