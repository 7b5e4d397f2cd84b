package resolve

// Source identifies which granularity a resolved value came from.
type Source int

const (
	SourceNone Source = iota
	SourceFine
	SourceCoarse
)

// Record is the resolution outcome for one key. Value is empty when
// resolution failed; Reason is empty when the value is confident. The two
// are never both absent for an uncertain record: classification always
// names why a value is missing or untrustworthy.
type Record struct {
	Key
	Value  string
	Source Source
	Reason string
}

// Resolve picks at most one value for a candidate set. Precedence, first
// match wins:
//
//  1. exactly one fine value -> that value
//  2. no fine value and exactly one coarse value -> that value
//  3. otherwise unresolved (ambiguity is never guessed)
//
// Subject-level evidence always beats study-level evidence; a single fine
// value wins even when it contradicts the coarse values.
func Resolve(c Candidates) (string, Source) {
	if c.Fine.Len() == 1 {
		return c.Fine.Single(), SourceFine
	}
	if c.Fine.Len() == 0 && c.Coarse.Len() == 1 {
		return c.Coarse.Single(), SourceCoarse
	}
	return "", SourceNone
}
