// Package resolve implements the attribute-resolution engine: it collapses
// possibly-conflicting candidate values recorded at subject and study
// granularity into a single resolved value per record, classifies why a
// resolution is absent or untrustworthy, and filters records against a
// requested target value set.
//
// The engine is a pure in-memory transform. It never touches the database;
// callers fetch observation rows and the reference vocabulary up front and
// pass them in.
package resolve

import (
	"sort"
	"strings"
)

// ValueSet is a small case-insensitive set of attribute values. The
// first-seen casing of each value is preserved for output. Empty and
// whitespace-only strings are treated as absent and never enter the set.
type ValueSet struct {
	values map[string]string // folded -> first-seen original
}

// NewValueSet creates a set from the given values.
func NewValueSet(values ...string) *ValueSet {
	s := &ValueSet{values: make(map[string]string)}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func fold(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}

// Add inserts a value. Blank values are ignored.
func (s *ValueSet) Add(v string) {
	key := fold(v)
	if key == "" {
		return
	}
	if _, ok := s.values[key]; !ok {
		s.values[key] = strings.TrimSpace(v)
	}
}

// Len returns the number of distinct values.
func (s *ValueSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Contains reports case-insensitive membership.
func (s *ValueSet) Contains(v string) bool {
	if s == nil {
		return false
	}
	_, ok := s.values[fold(v)]
	return ok
}

// Single returns the sole value of a one-element set, or "" otherwise.
func (s *ValueSet) Single() string {
	if s.Len() != 1 {
		return ""
	}
	for _, v := range s.values {
		return v
	}
	return ""
}

// Values returns the distinct values sorted case-insensitively.
func (s *ValueSet) Values() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = s.values[k]
	}
	return out
}

// SubsetOf reports whether every value of s is also in other.
func (s *ValueSet) SubsetOf(other *ValueSet) bool {
	if s.Len() == 0 {
		return true
	}
	for k := range s.values {
		if !other.Contains(k) {
			return false
		}
	}
	return true
}
