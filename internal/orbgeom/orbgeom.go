// Package orbgeom exposes github.com/paulmach/orb geometries through package
// traits. The named types share orb's memory layout, so wrapping and item
// access convert slice headers instead of copying coordinates.
package orbgeom

import (
	"iter"
	"slices"

	"github.com/paulmach/orb"

	"geotraits/traits"
)

// Point is an orb.Point. orb's own X and Y methods do not carry over to a
// named type, so they are declared again here.
type Point orb.Point

func (p Point) X() float64 { return p[0] }
func (p Point) Y() float64 { return p[1] }

func (Point) FromXY(x, y float64) Point { return Point{x, y} }

func point(p orb.Point) Point { return Point(p) }

type LineString orb.LineString

func (ls LineString) Points() iter.Seq[Point]   { return traits.Map(ls, point) }
func (ls LineString) NumPoints() int            { return len(ls) }
func (ls LineString) Point(i int) (Point, bool) { return traits.AtFunc(ls, i, point) }

type MultiPoint orb.MultiPoint

func (mp MultiPoint) Points() iter.Seq[Point]   { return traits.Map(mp, point) }
func (mp MultiPoint) NumPoints() int            { return len(mp) }
func (mp MultiPoint) Point(i int) (Point, bool) { return traits.AtFunc(mp, i, point) }

// Polygon rings are orb.Rings, seen as LineStrings.
type Polygon orb.Polygon

func ring(r orb.Ring) LineString { return LineString(r) }

func (y Polygon) Rings() iter.Seq[LineString]   { return traits.Map(y, ring) }
func (y Polygon) NumRings() int                 { return len(y) }
func (y Polygon) Ring(i int) (LineString, bool) { return traits.AtFunc(y, i, ring) }

type MultiLineString orb.MultiLineString

func line(ls orb.LineString) LineString { return LineString(ls) }

func (ml MultiLineString) Lines() iter.Seq[LineString]   { return traits.Map(ml, line) }
func (ml MultiLineString) NumLines() int                 { return len(ml) }
func (ml MultiLineString) Line(i int) (LineString, bool) { return traits.AtFunc(ml, i, line) }

type MultiPolygon orb.MultiPolygon

func polygon(y orb.Polygon) Polygon { return Polygon(y) }

func (my MultiPolygon) Polygons() iter.Seq[Polygon]   { return traits.Map(my, polygon) }
func (my MultiPolygon) NumPolygons() int              { return len(my) }
func (my MultiPolygon) Polygon(i int) (Polygon, bool) { return traits.AtFunc(my, i, polygon) }

// Collection holds wrapped members of an orb.Collection.
type Collection []*Geometry

func (c Collection) Geometries() iter.Seq[*Geometry] { return slices.Values(c) }

func (c Collection) NumGeometries() int { return len(c) }
