package geom

import "geotraits/traits"

// Geometry holds exactly one of the seven kinds. Build it with one of the
// From constructors; the zero value is not a valid geometry.
type Geometry[T traits.Coord] struct {
	kind  traits.Kind
	point Point[T]
	line  LineString[T]
	poly  Polygon[T]
	mpt   MultiPoint[T]
	mline MultiLineString[T]
	mpoly MultiPolygon[T]
	coll  GeometryCollection[T]
}

// Type is the classification result of this family.
type Type[T traits.Coord] = traits.GeometryType[Point[T], LineString[T], Polygon[T], MultiPoint[T], MultiLineString[T], MultiPolygon[T], GeometryCollection[T]]

// Family binds the slice-backed types for use with generic algorithms.
func Family[T traits.Coord]() traits.Family[T, Point[T], LineString[T], Polygon[T], MultiPoint[T], MultiLineString[T], MultiPolygon[T], GeometryCollection[T], *Geometry[T]] {
	return traits.Family[T, Point[T], LineString[T], Polygon[T], MultiPoint[T], MultiLineString[T], MultiPolygon[T], GeometryCollection[T], *Geometry[T]]{}
}

func FromPoint[T traits.Coord](p Point[T]) Geometry[T] {
	return Geometry[T]{kind: traits.KindPoint, point: p}
}

func FromLineString[T traits.Coord](ls LineString[T]) Geometry[T] {
	return Geometry[T]{kind: traits.KindLineString, line: ls}
}

func FromPolygon[T traits.Coord](y Polygon[T]) Geometry[T] {
	return Geometry[T]{kind: traits.KindPolygon, poly: y}
}

func FromMultiPoint[T traits.Coord](mp MultiPoint[T]) Geometry[T] {
	return Geometry[T]{kind: traits.KindMultiPoint, mpt: mp}
}

func FromMultiLineString[T traits.Coord](ml MultiLineString[T]) Geometry[T] {
	return Geometry[T]{kind: traits.KindMultiLineString, mline: ml}
}

func FromMultiPolygon[T traits.Coord](my MultiPolygon[T]) Geometry[T] {
	return Geometry[T]{kind: traits.KindMultiPolygon, mpoly: my}
}

// FromCollection drops zero-value members, so every item of the result
// classifies.
func FromCollection[T traits.Coord](gs ...Geometry[T]) Geometry[T] {
	coll := make(GeometryCollection[T], 0, len(gs))
	for _, g := range gs {
		if g.kind.Valid() {
			coll = append(coll, g)
		}
	}
	return Geometry[T]{kind: traits.KindGeometryCollection, coll: coll}
}

// Kind reports the held kind, 0 for the zero value.
func (g *Geometry[T]) Kind() traits.Kind { return g.kind }

// AsType points into g, so g must not be copied between classification and
// use of the result if the caller relies on identity.
func (g *Geometry[T]) AsType() Type[T] {
	f := Family[T]()
	switch g.kind {
	case traits.KindPoint:
		return f.Point(&g.point)
	case traits.KindLineString:
		return f.LineString(&g.line)
	case traits.KindPolygon:
		return f.Polygon(&g.poly)
	case traits.KindMultiPoint:
		return f.MultiPoint(&g.mpt)
	case traits.KindMultiLineString:
		return f.MultiLineString(&g.mline)
	case traits.KindMultiPolygon:
		return f.MultiPolygon(&g.mpoly)
	case traits.KindGeometryCollection:
		return f.GeometryCollection(&g.coll)
	}
	panic(traits.Unclassified(g.kind))
}
