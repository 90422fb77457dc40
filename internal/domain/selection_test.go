package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_Toggle(t *testing.T) {
	var s Selection

	assert.True(t, s.Toggle("A1"))
	assert.True(t, s.Toggle("A3"))
	assert.Equal(t, []string{"A1", "A3"}, s.Labels())

	assert.False(t, s.Toggle("A1"))
	assert.Equal(t, []string{"A3"}, s.Labels())
	assert.False(t, s.Contains("A1"))
	assert.Equal(t, 1, s.Len())
}

func TestSelection_ToggleTwiceRestores(t *testing.T) {
	var s Selection
	s.Toggle("B1")
	s.Toggle("B2")
	before := s.Labels()

	for _, label := range []string{"B1", "B2", "C9"} {
		s.Toggle(label)
		s.Toggle(label)
		assert.ElementsMatch(t, before, s.Labels(), "label %s", label)
	}
}

func TestSelection_KeepsPickOrder(t *testing.T) {
	var s Selection
	s.Toggle("C4")
	s.Toggle("A1")
	s.Toggle("B2")
	assert.Equal(t, []string{"C4", "A1", "B2"}, s.Labels())

	s.Toggle("C4")
	s.Toggle("C4")
	assert.Equal(t, []string{"A1", "B2", "C4"}, s.Labels())
}

func TestSelection_LabelsIsCopy(t *testing.T) {
	var s Selection
	s.Toggle("A1")

	labels := s.Labels()
	labels[0] = "Z9"

	assert.Equal(t, []string{"A1"}, s.Labels())
}
