package geometry

// SpanFunc derives the span of a polygon. ok is false when the polygon does
// not define one.
type SpanFunc func(pts []Point) (span float64, ok bool)

// VertexSpan measures the plan distance from the first vertex to the first
// later vertex at the same elevation. Vertices opposite the first one
// (index 2 onward) are searched before its immediate successor, so a flat
// rectangle yields its diagonal and a wall yields its length.
//
// The heuristic assumes rectangular footprints listed in boundary order.
func VertexSpan(pts []Point) (float64, bool) {
	if len(pts) < 3 {
		return 0, false
	}
	first := pts[0]
	for _, p := range pts[2:] {
		if sameLevel(first, p) {
			return planDistance(first, p), true
		}
	}
	if sameLevel(first, pts[1]) {
		return planDistance(first, pts[1]), true
	}
	return 0, false
}

// BoundingBoxSpan returns the plan diagonal of the polygon's bounding box.
// It is defined for every polygon with at least three vertices.
func BoundingBoxSpan(pts []Point) (float64, bool) {
	if len(pts) < 3 {
		return 0, false
	}
	props := CalculateProperties(pts)
	return planDistance(
		Point{X: props.MinX, Y: props.MinY},
		Point{X: props.MaxX, Y: props.MaxY},
	), true
}

// SpanMethod resolves a configured span method name. Unknown names fall
// back to VertexSpan.
func SpanMethod(name string) SpanFunc {
	switch name {
	case "bbox", "bounding-box":
		return BoundingBoxSpan
	default:
		return VertexSpan
	}
}
