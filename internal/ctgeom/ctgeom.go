// Package ctgeom exposes github.com/ctessum/geom geometries through package
// traits, and reads ESRI shapefiles into them.
package ctgeom

import (
	"iter"
	"slices"

	"github.com/ctessum/geom"

	"geotraits/traits"
)

// Point wraps geom.Point. The wrapped struct has X and Y fields, which rules
// out a named type with X and Y methods.
type Point struct{ p geom.Point }

func (p Point) X() float64 { return p.p.X }
func (p Point) Y() float64 { return p.p.Y }

func (Point) FromXY(x, y float64) Point { return Point{geom.Point{X: x, Y: y}} }

func point(p geom.Point) Point { return Point{p} }

type LineString geom.LineString

func (ls LineString) Points() iter.Seq[Point]   { return traits.Map(ls, point) }
func (ls LineString) NumPoints() int            { return len(ls) }
func (ls LineString) Point(i int) (Point, bool) { return traits.AtFunc(ls, i, point) }

type MultiPoint geom.MultiPoint

func (mp MultiPoint) Points() iter.Seq[Point]   { return traits.Map(mp, point) }
func (mp MultiPoint) NumPoints() int            { return len(mp) }
func (mp MultiPoint) Point(i int) (Point, bool) { return traits.AtFunc(mp, i, point) }

// Polygon rings are plain []geom.Point in ctessum/geom.
type Polygon geom.Polygon

func ring(r geom.Path) LineString { return LineString(r) }

func (y Polygon) Rings() iter.Seq[LineString]   { return traits.Map(y, ring) }
func (y Polygon) NumRings() int                 { return len(y) }
func (y Polygon) Ring(i int) (LineString, bool) { return traits.AtFunc(y, i, ring) }

type MultiLineString geom.MultiLineString

func line(ls geom.LineString) LineString { return LineString(ls) }

func (ml MultiLineString) Lines() iter.Seq[LineString]   { return traits.Map(ml, line) }
func (ml MultiLineString) NumLines() int                 { return len(ml) }
func (ml MultiLineString) Line(i int) (LineString, bool) { return traits.AtFunc(ml, i, line) }

type MultiPolygon geom.MultiPolygon

func polygon(y geom.Polygon) Polygon { return Polygon(y) }

func (my MultiPolygon) Polygons() iter.Seq[Polygon]   { return traits.Map(my, polygon) }
func (my MultiPolygon) NumPolygons() int              { return len(my) }
func (my MultiPolygon) Polygon(i int) (Polygon, bool) { return traits.AtFunc(my, i, polygon) }

type Collection []*Geometry

func (c Collection) Geometries() iter.Seq[*Geometry] { return slices.Values(c) }
func (c Collection) NumGeometries() int              { return len(c) }
