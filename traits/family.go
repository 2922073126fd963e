package traits

// Family binds one concrete type per geometry kind, each checked against its
// capability:
//
//	T   coordinate scalar
//	P   point, buildable from two scalars
//	L   line string of P (also the ring type of Y)
//	Y   polygon of L
//	MP  multi point of P
//	ML  multi line string of L
//	MY  multi polygon of Y
//	GC  collection of G
//	G   the classifiable geometry itself
//
// A Family is a zero-size value. Implementers expose one (for instance
// geom.Family[float64]()) and generic algorithms take it as their first
// argument, so callers never spell the nine type arguments.
type Family[
	T Coord,
	P PointBuilder[T, P],
	L LineString[T, P],
	Y Polygon[T, P, L],
	MP MultiPoint[T, P],
	ML MultiLineString[T, P, L],
	MY MultiPolygon[T, P, L, Y],
	GC GeometryCollection[G],
	G Geometry[P, L, Y, MP, ML, MY, GC],
] struct{}

// The constructors below are the only way to build a non-zero GeometryType.
// Each stores the pointer it is given, so the view aliases the caller's value.

// Point classifies p as a Point.
func (Family[T, P, L, Y, MP, ML, MY, GC, G]) Point(p *P) GeometryType[P, L, Y, MP, ML, MY, GC] {
	return GeometryType[P, L, Y, MP, ML, MY, GC]{kind: KindPoint, ref: p}
}

// LineString classifies l as a LineString.
func (Family[T, P, L, Y, MP, ML, MY, GC, G]) LineString(l *L) GeometryType[P, L, Y, MP, ML, MY, GC] {
	return GeometryType[P, L, Y, MP, ML, MY, GC]{kind: KindLineString, ref: l}
}

// Polygon classifies y as a Polygon.
func (Family[T, P, L, Y, MP, ML, MY, GC, G]) Polygon(y *Y) GeometryType[P, L, Y, MP, ML, MY, GC] {
	return GeometryType[P, L, Y, MP, ML, MY, GC]{kind: KindPolygon, ref: y}
}

// MultiPoint classifies mp as a MultiPoint.
func (Family[T, P, L, Y, MP, ML, MY, GC, G]) MultiPoint(mp *MP) GeometryType[P, L, Y, MP, ML, MY, GC] {
	return GeometryType[P, L, Y, MP, ML, MY, GC]{kind: KindMultiPoint, ref: mp}
}

// MultiLineString classifies ml as a MultiLineString.
func (Family[T, P, L, Y, MP, ML, MY, GC, G]) MultiLineString(ml *ML) GeometryType[P, L, Y, MP, ML, MY, GC] {
	return GeometryType[P, L, Y, MP, ML, MY, GC]{kind: KindMultiLineString, ref: ml}
}

// MultiPolygon classifies my as a MultiPolygon.
func (Family[T, P, L, Y, MP, ML, MY, GC, G]) MultiPolygon(my *MY) GeometryType[P, L, Y, MP, ML, MY, GC] {
	return GeometryType[P, L, Y, MP, ML, MY, GC]{kind: KindMultiPolygon, ref: my}
}

// GeometryCollection classifies gc as a GeometryCollection.
func (Family[T, P, L, Y, MP, ML, MY, GC, G]) GeometryCollection(gc *GC) GeometryType[P, L, Y, MP, ML, MY, GC] {
	return GeometryType[P, L, Y, MP, ML, MY, GC]{kind: KindGeometryCollection, ref: gc}
}

// FromXY builds a family point.
func (Family[T, P, L, Y, MP, ML, MY, GC, G]) FromXY(x, y T) P {
	return FromXY[P](x, y)
}
