package algo

import "geotraits/traits"

// Contains reports whether (x, y) lies inside the area of g by the even-odd
// rule. A polygon contains the point when its exterior ring does and none of
// its holes do. Multi polygons and collections contain it when any member
// does. Points and lines have no area and never contain anything.
//
// Points exactly on an edge may fall either way.
func Contains[
	T traits.Coord,
	P traits.PointBuilder[T, P],
	L traits.LineString[T, P],
	Y traits.Polygon[T, P, L],
	MP traits.MultiPoint[T, P],
	ML traits.MultiLineString[T, P, L],
	MY traits.MultiPolygon[T, P, L, Y],
	GC traits.GeometryCollection[G],
	G traits.Geometry[P, L, Y, MP, ML, MY, GC],
](f traits.Family[T, P, L, Y, MP, ML, MY, GC, G], g G, x, y T) bool {
	gt := g.AsType()
	if poly, ok := gt.Polygon(); ok {
		return inPolygon[T, P, L](*poly, float64(x), float64(y))
	}
	if my, ok := gt.MultiPolygon(); ok {
		for poly := range (*my).Polygons() {
			if inPolygon[T, P, L](poly, float64(x), float64(y)) {
				return true
			}
		}
		return false
	}
	if gc, ok := gt.GeometryCollection(); ok {
		for item := range (*gc).Geometries() {
			if Contains(f, item, x, y) {
				return true
			}
		}
	}
	return false
}

func inPolygon[T traits.Coord, P traits.Point[T], L traits.LineString[T, P], Y traits.Polygon[T, P, L]](poly Y, x, y float64) bool {
	outer, ok := poly.Ring(0)
	if !ok || !inRing[T, P](outer, x, y) {
		return false
	}
	for i := 1; i < poly.NumRings(); i++ {
		if hole, _ := poly.Ring(i); inRing[T, P](hole, x, y) {
			return false
		}
	}
	return true
}

// inRing casts a ray towards +x and counts edge crossings. The ring may be
// open or closed.
func inRing[T traits.Coord, P traits.Point[T], L traits.LineString[T, P]](r L, x, y float64) bool {
	n := r.NumPoints()
	if n < 3 {
		return false
	}
	prev, _ := r.Point(n - 1)
	inside := false
	for cur := range r.Points() {
		xi, yi := float64(cur.X()), float64(cur.Y())
		xj, yj := float64(prev.X()), float64(prev.Y())
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		prev = cur
	}
	return inside
}
