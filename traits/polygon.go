package traits

import "iter"

// Polygon is an area bounded by rings.
//
// By convention ring 0 is the exterior and the rest are holes. Closure and
// winding order are not checked.
type Polygon[T Coord, P Point[T], L LineString[T, P]] interface {
	// Rings yields every ring, exterior first.
	Rings() iter.Seq[L]
	// NumRings is the number of rings Rings yields.
	NumRings() int
	// Ring returns the i-th ring, or false when i is out of range.
	Ring(i int) (L, bool)
}
