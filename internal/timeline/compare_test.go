package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agleyzer/lightseq/internal/sequence"
)

func TestPointsIdentical(t *testing.T) {
	a := []Point{{0, 0}, {100, 50}, {200, 100}}

	assert.True(t, PointsIdentical(nil, []Point{}))
	assert.True(t, PointsIdentical(a, []Point{{0, 0}, {100, 50}, {200, 100}}))
	assert.False(t, PointsIdentical(a, a[:2]))
	assert.False(t, PointsIdentical(a, []Point{{0, 0}, {200, 50}, {200, 100}}))
	assert.False(t, PointsIdentical(a, []Point{{0, 0}, {100, 75}, {200, 100}}))
}

func TestPointsIdentical_FromSequences(t *testing.T) {
	e := New(10)
	left := e.Chart(sequence.NewStructured("43", []string{"0A", "64", "14", "00"}))
	same := e.Chart(sequence.NewStructured("44", []string{"0a", "64", "14", "00"}))
	other := e.Chart(sequence.NewStructured("43", []string{"0A", "32", "14", "00"}))

	assert.True(t, PointsIdentical(left.Points, same.Points))
	assert.False(t, PointsIdentical(left.Points, other.Points))
}

func TestMatchSegments(t *testing.T) {
	left := []Point{{0, 0}, {100, 100}, {300, 0}, {400, 50}}
	right := []Point{{0, 0}, {100, 100}, {300, 20}}

	got := MatchSegments(left, right)

	want := []Segment{
		{Index: 0, Left: true, Right: true, Shared: true},
		{Index: 1, Left: true, Right: true, Shared: false},
		{Index: 2, Left: true, Right: false, Shared: false},
	}
	assert.Equal(t, want, got)
}

func TestMatchSegments_Empty(t *testing.T) {
	assert.Empty(t, MatchSegments(nil, nil))
	assert.Empty(t, MatchSegments([]Point{{0, 0}}, nil))
}
