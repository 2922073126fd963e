package algo

import (
	"iter"

	"geotraits/traits"
)

// Vertices yields every vertex of g depth-first: polygon rings in order,
// multi members in order, collection items in order.
func Vertices[
	T traits.Coord,
	P traits.PointBuilder[T, P],
	L traits.LineString[T, P],
	Y traits.Polygon[T, P, L],
	MP traits.MultiPoint[T, P],
	ML traits.MultiLineString[T, P, L],
	MY traits.MultiPolygon[T, P, L, Y],
	GC traits.GeometryCollection[G],
	G traits.Geometry[P, L, Y, MP, ML, MY, GC],
](f traits.Family[T, P, L, Y, MP, ML, MY, GC, G], g G) iter.Seq[P] {
	return func(yield func(P) bool) {
		vertices(f, g, yield)
	}
}

func vertices[
	T traits.Coord,
	P traits.PointBuilder[T, P],
	L traits.LineString[T, P],
	Y traits.Polygon[T, P, L],
	MP traits.MultiPoint[T, P],
	ML traits.MultiLineString[T, P, L],
	MY traits.MultiPolygon[T, P, L, Y],
	GC traits.GeometryCollection[G],
	G traits.Geometry[P, L, Y, MP, ML, MY, GC],
](f traits.Family[T, P, L, Y, MP, ML, MY, GC, G], g G, yield func(P) bool) bool {
	gt := g.AsType()
	switch gt.Kind() {
	case traits.KindPoint:
		p, _ := gt.Point()
		return yield(*p)
	case traits.KindLineString:
		l, _ := gt.LineString()
		return each((*l).Points(), yield)
	case traits.KindPolygon:
		y, _ := gt.Polygon()
		return polygonVertices[T, P, L](*y, yield)
	case traits.KindMultiPoint:
		mp, _ := gt.MultiPoint()
		return each((*mp).Points(), yield)
	case traits.KindMultiLineString:
		ml, _ := gt.MultiLineString()
		for l := range (*ml).Lines() {
			if !each(l.Points(), yield) {
				return false
			}
		}
		return true
	case traits.KindMultiPolygon:
		my, _ := gt.MultiPolygon()
		for y := range (*my).Polygons() {
			if !polygonVertices[T, P, L](y, yield) {
				return false
			}
		}
		return true
	case traits.KindGeometryCollection:
		gc, _ := gt.GeometryCollection()
		for item := range (*gc).Geometries() {
			if !vertices(f, item, yield) {
				return false
			}
		}
		return true
	}
	panic(traits.Unclassified(gt.Kind()))
}

func polygonVertices[T traits.Coord, P traits.Point[T], L traits.LineString[T, P], Y traits.Polygon[T, P, L]](y Y, yield func(P) bool) bool {
	for r := range y.Rings() {
		if !each(r.Points(), yield) {
			return false
		}
	}
	return true
}

// each forwards seq to yield and reports whether yield asked for more.
func each[V any](seq iter.Seq[V], yield func(V) bool) bool {
	for v := range seq {
		if !yield(v) {
			return false
		}
	}
	return true
}

// Bounds returns the bounding box of every vertex of g, or false when g has
// no vertices (an empty line string or collection, for instance).
func Bounds[
	T traits.Coord,
	P traits.PointBuilder[T, P],
	L traits.LineString[T, P],
	Y traits.Polygon[T, P, L],
	MP traits.MultiPoint[T, P],
	ML traits.MultiLineString[T, P, L],
	MY traits.MultiPolygon[T, P, L, Y],
	GC traits.GeometryCollection[G],
	G traits.Geometry[P, L, Y, MP, ML, MY, GC],
](f traits.Family[T, P, L, Y, MP, ML, MY, GC, G], g G) (Rect[T], bool) {
	var (
		r     Rect[T]
		found bool
	)
	for p := range Vertices(f, g) {
		if !found {
			r, found = Around(p.X(), p.Y()), true
			continue
		}
		r = r.Extend(p.X(), p.Y())
	}
	return r, found
}

// Kinds yields the kind of g and then, for a collection, the kinds of its
// items depth-first.
func Kinds[
	T traits.Coord,
	P traits.PointBuilder[T, P],
	L traits.LineString[T, P],
	Y traits.Polygon[T, P, L],
	MP traits.MultiPoint[T, P],
	ML traits.MultiLineString[T, P, L],
	MY traits.MultiPolygon[T, P, L, Y],
	GC traits.GeometryCollection[G],
	G traits.Geometry[P, L, Y, MP, ML, MY, GC],
](f traits.Family[T, P, L, Y, MP, ML, MY, GC, G], g G) iter.Seq[traits.Kind] {
	return func(yield func(traits.Kind) bool) {
		kinds(f, g, yield)
	}
}

func kinds[
	T traits.Coord,
	P traits.PointBuilder[T, P],
	L traits.LineString[T, P],
	Y traits.Polygon[T, P, L],
	MP traits.MultiPoint[T, P],
	ML traits.MultiLineString[T, P, L],
	MY traits.MultiPolygon[T, P, L, Y],
	GC traits.GeometryCollection[G],
	G traits.Geometry[P, L, Y, MP, ML, MY, GC],
](f traits.Family[T, P, L, Y, MP, ML, MY, GC, G], g G, yield func(traits.Kind) bool) bool {
	gt := g.AsType()
	if !yield(gt.Kind()) {
		return false
	}
	gc, ok := gt.GeometryCollection()
	if !ok {
		return true
	}
	for item := range (*gc).Geometries() {
		if !kinds(f, item, yield) {
			return false
		}
	}
	return true
}
