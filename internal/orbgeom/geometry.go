package orbgeom

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"geotraits/traits"
)

var ErrNilGeometry = errors.New("orbgeom: nil geometry")

// Type is the classification result of this family.
type Type = traits.GeometryType[Point, LineString, Polygon, MultiPoint, MultiLineString, MultiPolygon, Collection]

// Family binds the orb-backed types for use with generic algorithms.
func Family() traits.Family[float64, Point, LineString, Polygon, MultiPoint, MultiLineString, MultiPolygon, Collection, *Geometry] {
	return traits.Family[float64, Point, LineString, Polygon, MultiPoint, MultiLineString, MultiPolygon, Collection, *Geometry]{}
}

// Geometry is a classified orb.Geometry.
type Geometry struct {
	kind traits.Kind
	ref  any
}

// Wrap classifies g once. orb.Ring and orb.Bound become Polygons; an
// orb.Collection is wrapped member by member.
func Wrap(g orb.Geometry) (*Geometry, error) {
	w := &Geometry{}
	switch v := g.(type) {
	case nil:
		return nil, ErrNilGeometry
	case orb.Point:
		p := Point(v)
		w.kind, w.ref = traits.KindPoint, &p
	case orb.LineString:
		ls := LineString(v)
		w.kind, w.ref = traits.KindLineString, &ls
	case orb.Ring:
		y := Polygon{v}
		w.kind, w.ref = traits.KindPolygon, &y
	case orb.Polygon:
		y := Polygon(v)
		w.kind, w.ref = traits.KindPolygon, &y
	case orb.Bound:
		y := Polygon(v.ToPolygon())
		w.kind, w.ref = traits.KindPolygon, &y
	case orb.MultiPoint:
		mp := MultiPoint(v)
		w.kind, w.ref = traits.KindMultiPoint, &mp
	case orb.MultiLineString:
		ml := MultiLineString(v)
		w.kind, w.ref = traits.KindMultiLineString, &ml
	case orb.MultiPolygon:
		my := MultiPolygon(v)
		w.kind, w.ref = traits.KindMultiPolygon, &my
	case orb.Collection:
		c := make(Collection, 0, len(v))
		for i, item := range v {
			m, err := Wrap(item)
			if err != nil {
				return nil, fmt.Errorf("orbgeom: collection item %d: %w", i, err)
			}
			c = append(c, m)
		}
		w.kind, w.ref = traits.KindGeometryCollection, &c
	default:
		return nil, fmt.Errorf("orbgeom: unsupported geometry %T", g)
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
