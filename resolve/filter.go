package resolve

// FilterOptions controls target-set filtering of resolved records.
type FilterOptions struct {
	// Target is the requested value set (case-insensitive, 1..N values).
	Target []string

	// Exclusively disqualifies a whole study when any of its subjects
	// resolves to a value outside the target set.
	Exclusively bool

	// MatchAll keeps a study only when its matched subjects jointly cover
	// every target value. Meaningless for single-value targets.
	MatchAll bool

	// IncludeUncertain unions in every record carrying a classification
	// reason, regardless of matching. Such records bypass the Exclusively
	// and MatchAll study checks.
	IncludeUncertain bool
}

// Filter selects records whose resolved value is in the target set, then
// applies the study-level Exclusively and MatchAll rules, and finally
// unions in uncertain records when requested. Output is deduplicated by
// key; a record already present from matching is not duplicated by the
// uncertain union. Input order is preserved.
func Filter(records []Record, opts FilterOptions) []Record {
	target := NewValueSet(opts.Target...)

	// Step 1: match on resolved value. Unresolved records never match.
	matched := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Value != "" && target.Contains(r.Value) {
			matched = append(matched, r)
		}
	}

	// Step 2: exclusivity. A study exhibiting any resolved value outside
	// the target disqualifies all its matched records. Studies whose
	// subjects are all unresolved contribute no values and are never
	// disqualified here.
	if opts.Exclusively {
		valuesByStudy := make(map[string]*ValueSet)
		for _, r := range records {
			if r.Value == "" {
				continue
			}
			set, ok := valuesByStudy[r.StudyID]
			if !ok {
				set = NewValueSet()
				valuesByStudy[r.StudyID] = set
			}
			set.Add(r.Value)
		}

		disqualified := make(map[string]bool)
		for study, set := range valuesByStudy {
			for _, v := range set.Values() {
				if !target.Contains(v) {
					disqualified[study] = true
					break
				}
			}
		}

		kept := matched[:0]
		for _, r := range matched {
			if !disqualified[r.StudyID] {
				kept = append(kept, r)
			}
		}
		matched = kept
	}

	// Step 3: match-all. Keep a study only when its matched records cover
	// every distinct target value.
	if opts.MatchAll && target.Len() > 1 {
		coveredByStudy := make(map[string]*ValueSet)
		for _, r := range matched {
			set, ok := coveredByStudy[r.StudyID]
			if !ok {
				set = NewValueSet()
				coveredByStudy[r.StudyID] = set
			}
			set.Add(r.Value)
		}

		kept := matched[:0]
		for _, r := range matched {
			if coveredByStudy[r.StudyID].Len() == target.Len() {
				kept = append(kept, r)
			}
		}
		matched = kept
	}

	// Step 4: uncertain union. Reasons were computed upstream; records
	// flagged uncertain join the result even when their study failed the
	// checks above.
	if opts.IncludeUncertain {
		present := make(map[Key]bool, len(matched))
		for _, r := range matched {
			present[r.Key] = true
		}
		for _, r := range records {
			if r.Reason != "" && !present[r.Key] {
				matched = append(matched, r)
				present[r.Key] = true
			}
		}
	}

	return matched
}
