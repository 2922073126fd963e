package traits

import "iter"

// PointSequence is the shared shape of LineString and MultiPoint.
type PointSequence[T Coord, P Point[T]] interface {
	// Points yields every point in order.
	Points() iter.Seq[P]
	// NumPoints is the number of points Points yields.
	NumPoints() int
	// Point returns the i-th point, or false when i is out of range.
	Point(i int) (P, bool)
}

// LineString is an ordered path of points. The order is meaningful.
type LineString[T Coord, P Point[T]] interface {
	PointSequence[T, P]
}

// MultiPoint is a set of points. The order carries no meaning, but Points and
// Point still agree with each other.
type MultiPoint[T Coord, P Point[T]] interface {
	PointSequence[T, P]
}
