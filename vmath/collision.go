package vmath

// ClosestPointOnSegment projects p onto segment ab, clamped to the segment
// ok is false for a degenerate (zero-length) segment
func ClosestPointOnSegment(p, a, b Vec2) (closest Vec2, ok bool) {
	ab := b.Sub(a)
	length := ab.Len()
	if length == 0 {
		return a, false
	}
	dir := ab.Scale(1 / length)
	proj := Clamp(p.Sub(a).Dot(dir), 0, length)
	return a.Add(dir.Scale(proj)), true
}

// PointSegmentDistance returns the minimum distance from p to segment ab
// ok is false for a degenerate segment, callers treat that as no contact
func PointSegmentDistance(p, a, b Vec2) (dist float64, ok bool) {
	c, ok := ClosestPointOnSegment(p, a, b)
	if !ok {
		return 0, false
	}
	return p.Distance(c), true
}
