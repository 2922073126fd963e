package ctgeom

import (
	"errors"
	"fmt"

	"github.com/ctessum/geom"

	"geotraits/traits"
)

var ErrNilGeometry = errors.New("ctgeom: nil geometry")

type Type = traits.GeometryType[Point, LineString, Polygon, MultiPoint, MultiLineString, MultiPolygon, Collection]

func Family() traits.Family[float64, Point, LineString, Polygon, MultiPoint, MultiLineString, MultiPolygon, Collection, *Geometry] {
	return traits.Family[float64, Point, LineString, Polygon, MultiPoint, MultiLineString, MultiPolygon, Collection, *Geometry]{}
}

// Geometry is a classified geom.Geom.
type Geometry struct {
	kind traits.Kind
	ref  any
}

// Wrap classifies g. Pointer forms of the concrete types are accepted as
// well, since ctessum/geom hands out both.
func Wrap(g geom.Geom) (*Geometry, error) {
	w := &Geometry{}
	switch v := g.(type) {
	case nil:
		return nil, ErrNilGeometry
	case geom.Point:
		p := point(v)
		w.kind, w.ref = traits.KindPoint, &p
	case *geom.Point:
		p := point(*v)
		w.kind, w.ref = traits.KindPoint, &p
	case geom.LineString:
		ls := LineString(v)
		w.kind, w.ref = traits.KindLineString, &ls
	case geom.Polygon:
		y := Polygon(v)
		w.kind, w.ref = traits.KindPolygon, &y
	case geom.MultiPoint:
		mp := MultiPoint(v)
		w.kind, w.ref = traits.KindMultiPoint, &mp
	case geom.MultiLineString:
		ml := MultiLineString(v)
		w.kind, w.ref = traits.KindMultiLineString, &ml
	case geom.MultiPolygon:
		my := MultiPolygon(v)
		w.kind, w.ref = traits.KindMultiPolygon, &my
	case geom.GeometryCollection:
		c := make(Collection, 0, len(v))
		for i, item := range v {
			m, err := Wrap(item)
			if err != nil {
				return nil, fmt.Errorf("ctgeom: collection item %d: %w", i, err)
			}
			c = append(c, m)
		}
		w.kind, w.ref = traits.KindGeometryCollection, &c
	default:
		return nil, fmt.Errorf("ctgeom: unsupported geometry %T", g)
	}
	return w, nil
}

func (g *Geometry) Kind() traits.Kind { return g.kind }

func (g *Geometry) AsType() Type {
	f := Family()
	switch g.kind {
	case traits.KindPoint:
		return f.Point(g.ref.(*Point))
	case traits.KindLineString:
		return f.LineString(g.ref.(*LineString))
	case traits.KindPolygon:
		return f.Polygon(g.ref.(*Polygon))
	case traits.KindMultiPoint:
		return f.MultiPoint(g.ref.(*MultiPoint))
	case traits.KindMultiLineString:
		return f.MultiLineString(g.ref.(*MultiLineString))
	case traits.KindMultiPolygon:
		return f.MultiPolygon(g.ref.(*MultiPolygon))
	case traits.KindGeometryCollection:
		return f.GeometryCollection(g.ref.(*Collection))
	}
	panic(traits.Unclassified(g.kind))
}
