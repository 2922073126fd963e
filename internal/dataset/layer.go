package dataset

import (
	"iter"

	"geotraits/internal/algo"
	"geotraits/traits"
)

// layer adapts any traits family to Dataset. Bounds and counts are computed
// once at construction.
type layer[
	T traits.Coord,
	P traits.PointBuilder[T, P],
	L traits.LineString[T, P],
	Y traits.Polygon[T, P, L],
	MP traits.MultiPoint[T, P],
	ML traits.MultiLineString[T, P, L],
	MY traits.MultiPolygon[T, P, L, Y],
	GC traits.GeometryCollection[G],
	G traits.Geometry[P, L, Y, MP, ML, MY, GC],
] struct {
	f      traits.Family[T, P, L, Y, MP, ML, MY, GC, G]
	g      G
	source string
	table  table

	bounds    algo.Rect[float64]
	hasBounds bool
	counts    algo.Counts
}

type table struct {
	columns []string
	rows    [][]string
}

func newLayer[
	T traits.Coord,
	P traits.PointBuilder[T, P],
	L traits.LineString[T, P],
	Y traits.Polygon[T, P, L],
	MP traits.MultiPoint[T, P],
	ML traits.MultiLineString[T, P, L],
	MY traits.MultiPolygon[T, P, L, Y],
	GC traits.GeometryCollection[G],
	G traits.Geometry[P, L, Y, MP, ML, MY, GC],
](f traits.Family[T, P, L, Y, MP, ML, MY, GC, G], g G, source string, t table) *layer[T, P, L, Y, MP, ML, MY, GC, G] {
	d := &layer[T, P, L, Y, MP, ML, MY, GC, G]{f: f, g: g, source: source, table: t}
	if r, ok := algo.Bounds(f, g); ok {
		d.bounds = algo.Rect[float64]{
			MinX: float64(r.MinX), MinY: float64(r.MinY),
			MaxX: float64(r.MaxX), MaxY: float64(r.MaxY),
		}
		d.hasBounds = true
	}
	d.counts = algo.Tally(f, g)
	return d
}

func (d *layer[T, P, L, Y, MP, ML, MY, GC, G]) Source() string    { return d.source }
func (d *layer[T, P, L, Y, MP, ML, MY, GC, G]) Kind() traits.Kind { return d.g.AsType().Kind() }
func (d *layer[T, P, L, Y, MP, ML, MY, GC, G]) Kinds() iter.Seq[traits.Kind] {
	return algo.Kinds(d.f, d.g)
}
func (d *layer[T, P, L, Y, MP, ML, MY, GC, G]) Counts() algo.Counts {
	return d.counts
}
func (d *layer[T, P, L, Y, MP, ML, MY, GC, G]) Columns() []string { return d.table.columns }
func (d *layer[T, P, L, Y, MP, ML, MY, GC, G]) Rows() [][]string  { return d.table.rows }

func (d *layer[T, P, L, Y, MP, ML, MY, GC, G]) Bounds() (algo.Rect[float64], bool) {
	return d.bounds, d.hasBounds
}

func (d *layer[T, P, L, Y, MP, ML, MY, GC, G]) Vertices() iter.Seq[[2]float64] {
	return func(yield func([2]float64) bool) {
		for p := range algo.Vertices(d.f, d.g) {
			if !yield(xy[T](p)) {
				return
			}
		}
	}
}

// Contains rejects points outside the cached bounds before running the
// even-odd test.
func (d *layer[T, P, L, Y, MP, ML, MY, GC, G]) Contains(x, y float64) bool {
	if !d.hasBounds || !d.bounds.Contains(x, y) {
		return false
	}
	return algo.Contains(d.f, d.g, T(x), T(y))
}

func (d *layer[T, P, L, Y, MP, ML, MY, GC, G]) Walk(s Sink) {
	walk(d.f, d.g, s)
}

func walk[
	T traits.Coord,
	P traits.PointBuilder[T, P],
	L traits.LineString[T, P],
	Y traits.Polygon[T, P, L],
	MP traits.MultiPoint[T, P],
	ML traits.MultiLineString[T, P, L],
	MY traits.MultiPolygon[T, P, L, Y],
	GC traits.GeometryCollection[G],
	G traits.Geometry[P, L, Y, MP, ML, MY, GC],
](f traits.Family[T, P, L, Y, MP, ML, MY, GC, G], g G, s Sink) {
	gt := g.AsType()
	switch gt.Kind() {
	case traits.KindPoint:
		p, _ := gt.Point()
		s.Point(float64((*p).X()), float64((*p).Y()))
	case traits.KindLineString:
		l, _ := gt.LineString()
		s.LineString(coords[T]((*l).Points()))
	case traits.KindPolygon:
		y, _ := gt.Polygon()
		s.Polygon(rings[T, P, L](*y))
	case traits.KindMultiPoint:
		mp, _ := gt.MultiPoint()
		for p := range (*mp).Points() {
			s.Point(float64(p.X()), float64(p.Y()))
		}
	case traits.KindMultiLineString:
		ml, _ := gt.MultiLineString()
		for l := range (*ml).Lines() {
			s.LineString(coords[T](l.Points()))
		}
	case traits.KindMultiPolygon:
		my, _ := gt.MultiPolygon()
		for y := range (*my).Polygons() {
			s.Polygon(rings[T, P, L](y))
		}
	case traits.KindGeometryCollection:
		gc, _ := gt.GeometryCollection()
		for item := range (*gc).Geometries() {
			walk(f, item, s)
		}
	default:
		panic(traits.Unclassified(gt.Kind()))
	}
}

func xy[T traits.Coord, P traits.Point[T]](p P) [2]float64 {
	return [2]float64{float64(p.X()), float64(p.Y())}
}

func coords[T traits.Coord, P traits.Point[T]](seq iter.Seq[P]) [][2]float64 {
	var out [][2]float64
	for p := range seq {
		out = append(out, xy[T](p))
	}
	return out
}

func rings[T traits.Coord, P traits.Point[T], L traits.LineString[T, P], Y traits.Polygon[T, P, L]](y Y) [][][2]float64 {
	out := make([][][2]float64, 0, y.NumRings())
	for r := range y.Rings() {
		out = append(out, coords[T](r.Points()))
	}
	return out
}
