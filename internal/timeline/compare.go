package timeline

// PointsIdentical reports whether two curves have exactly the same knots.
func PointsIdentical(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Segment describes one line segment index of a left/right curve pair.
type Segment struct {
	// Index is the segment number; it joins knot Index and Index+1
	Index int

	// Left and Right report whether each curve has this segment
	Left  bool
	Right bool

	// Shared is true when both curves have the segment with equal endpoints
	Shared bool
}

// MatchSegments classifies every segment of two curves so a renderer can draw
// shared stretches once and divergent stretches per side.
func MatchSegments(left, right []Point) []Segment {
	n := max(len(left), len(right)) - 1
	if n <= 0 {
		return []Segment{}
	}

	segs := make([]Segment, n)
	for s := 0; s < n; s++ {
		lHas := s+1 < len(left)
		rHas := s+1 < len(right)
		segs[s] = Segment{
			Index: s,
			Left:  lHas,
			Right: rHas,
			Shared: lHas && rHas &&
				left[s] == right[s] &&
				left[s+1] == right[s+1],
		}
	}
	return segs
}
