package resolve

// Candidates holds the distinct candidate value sets gathered for one key:
// its own fine observations and the coarse observations of its study.
type Candidates struct {
	Key    Key
	Fine   *ValueSet
	Coarse *ValueSet
}

// Aggregate groups raw observation rows into per-key candidate sets. The
// keys slice (the caller's subject or study list) drives the output: every
// key yields exactly one Candidates, duplicates collapsed, and keys without
// any observation yield empty sets rather than being dropped. Blank
// observation values never count as candidates.
func Aggregate(keys []Key, fine []FineObservation, coarse []CoarseObservation) []Candidates {
	fineByKey := make(map[Key]*ValueSet)
	for _, o := range fine {
		k := Key{StudyID: o.StudyID, SubjectID: o.SubjectID}
		set, ok := fineByKey[k]
		if !ok {
			set = NewValueSet()
			fineByKey[k] = set
		}
		set.Add(o.Value)
	}

	coarseByStudy := make(map[string]*ValueSet)
	for _, o := range coarse {
		set, ok := coarseByStudy[o.StudyID]
		if !ok {
			set = NewValueSet()
			coarseByStudy[o.StudyID] = set
		}
		set.Add(o.Value)
	}

	out := make([]Candidates, 0, len(keys))
	seen := make(map[Key]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true

		f := fineByKey[k]
		if f == nil {
			f = NewValueSet()
		}
		c := coarseByStudy[k.StudyID]
		if c == nil {
			c = NewValueSet()
		}
		out = append(out, Candidates{Key: k, Fine: f, Coarse: c})
	}
	return out
}
