package traits

import "iter"

// MultiLineString is an ordered collection of line strings.
type MultiLineString[T Coord, P Point[T], L LineString[T, P]] interface {
	Lines() iter.Seq[L]
	NumLines() int
	// Line returns the i-th line, or false when i is out of range.
	Line(i int) (L, bool)
}

// MultiPolygon is an ordered collection of polygons.
type MultiPolygon[T Coord, P Point[T], L LineString[T, P], Y Polygon[T, P, L]] interface {
	Polygons() iter.Seq[Y]
	NumPolygons() int
	// Polygon returns the i-th polygon, or false when i is out of range.
	Polygon(i int) (Y, bool)
}

// GeometryCollection is the one heterogeneous aggregate. Its items share no
// capability; in a Family they are the family's Geometry type, so they can
// be classified one by one.
type GeometryCollection[G any] interface {
	Geometries() iter.Seq[G]
}
