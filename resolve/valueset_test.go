package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueSetCaseInsensitive(t *testing.T) {
	s := NewValueSet("ORAL", "oral", "Oral")
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains("ORAL"))
	assert.True(t, s.Contains("oral"))
	// First-seen casing preserved
	assert.Equal(t, "ORAL", s.Single())
}

func TestValueSetIgnoresBlanks(t *testing.T) {
	s := NewValueSet("", "   ", "ORAL")
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Contains(""))
}

func TestValueSetSingle(t *testing.T) {
	assert.Equal(t, "ORAL", NewValueSet("ORAL").Single())
	assert.Equal(t, "", NewValueSet().Single())
	assert.Equal(t, "", NewValueSet("ORAL", "IV").Single())
}

func TestValueSetValuesSorted(t *testing.T) {
	s := NewValueSet("SUBCUTANEOUS", "ORAL", "INTRAVENOUS")
	assert.Equal(t, []string{"INTRAVENOUS", "ORAL", "SUBCUTANEOUS"}, s.Values())
}

func TestValueSetSubsetOf(t *testing.T) {
	fine := NewValueSet("ORAL")
	coarse := NewValueSet("oral", "ORAL GAVAGE")
	assert.True(t, fine.SubsetOf(coarse))
	assert.False(t, coarse.SubsetOf(fine))

	// Empty set is a subset of anything
	assert.True(t, NewValueSet().SubsetOf(fine))
	assert.True(t, NewValueSet().SubsetOf(NewValueSet()))
}

func TestValueSetNilReceiver(t *testing.T) {
	var s *ValueSet
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains("ORAL"))
	assert.Nil(t, s.Values())
}
