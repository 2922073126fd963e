package algo

import "geotraits/traits"

// Counts summarizes the content of a geometry. Multi kinds count their
// members, so a MultiPolygon of two polygons adds 2 to Polygons.
type Counts struct {
	Points      int
	LineStrings int
	Polygons    int
	Rings       int
	Vertices    int
}

func (c Counts) Add(o Counts) Counts {
	c.Points += o.Points
	c.LineStrings += o.LineStrings
	c.Polygons += o.Polygons
	c.Rings += o.Rings
	c.Vertices += o.Vertices
	return c
}

// Tally counts the members and vertices of g, descending into collections.
func Tally[
	T traits.Coord,
	P traits.PointBuilder[T, P],
	L traits.LineString[T, P],
	Y traits.Polygon[T, P, L],
	MP traits.MultiPoint[T, P],
	ML traits.MultiLineString[T, P, L],
	MY traits.MultiPolygon[T, P, L, Y],
	GC traits.GeometryCollection[G],
	G traits.Geometry[P, L, Y, MP, ML, MY, GC],
](_ traits.Family[T, P, L, Y, MP, ML, MY, GC, G], g G) Counts {
	return traits.Visit[Counts](g.AsType(), tally[T, P, L, Y, MP, ML, MY, GC, G]{})
}

type tally[
	T traits.Coord,
	P traits.PointBuilder[T, P],
	L traits.LineString[T, P],
	Y traits.Polygon[T, P, L],
	MP traits.MultiPoint[T, P],
	ML traits.MultiLineString[T, P, L],
	MY traits.MultiPolygon[T, P, L, Y],
	GC traits.GeometryCollection[G],
	G traits.Geometry[P, L, Y, MP, ML, MY, GC],
] struct{}

func (tally[T, P, L, Y, MP, ML, MY, GC, G]) VisitPoint(*P) Counts {
	return Counts{Points: 1, Vertices: 1}
}

func (tally[T, P, L, Y, MP, ML, MY, GC, G]) VisitLineString(l *L) Counts {
	return Counts{LineStrings: 1, Vertices: (*l).NumPoints()}
}

func (tally[T, P, L, Y, MP, ML, MY, GC, G]) VisitPolygon(y *Y) Counts {
	return polygonCounts[T, P, L](*y)
}

func (tally[T, P, L, Y, MP, ML, MY, GC, G]) VisitMultiPoint(mp *MP) Counts {
	n := (*mp).NumPoints()
	return Counts{Points: n, Vertices: n}
}

func (tally[T, P, L, Y, MP, ML, MY, GC, G]) VisitMultiLineString(ml *ML) Counts {
	var c Counts
	for l := range (*ml).Lines() {
		c.LineStrings++
		c.Vertices += l.NumPoints()
	}
	return c
}

func (tally[T, P, L, Y, MP, ML, MY, GC, G]) VisitMultiPolygon(my *MY) Counts {
	var c Counts
	for y := range (*my).Polygons() {
		c = c.Add(polygonCounts[T, P, L](y))
	}
	return c
}

func (v tally[T, P, L, Y, MP, ML, MY, GC, G]) VisitGeometryCollection(gc *GC) Counts {
	var c Counts
	for item := range (*gc).Geometries() {
		c = c.Add(traits.Visit[Counts](item.AsType(), v))
	}
	return c
}

func polygonCounts[T traits.Coord, P traits.Point[T], L traits.LineString[T, P], Y traits.Polygon[T, P, L]](y Y) Counts {
	c := Counts{Polygons: 1}
	for r := range y.Rings() {
		c.Rings++
		c.Vertices += r.NumPoints()
	}
	return c
}
