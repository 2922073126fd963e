// Package geom is the slice-backed geometry family: plain Go slices of
// coordinate pairs, generic over the coordinate scalar.
package geom

import (
	"iter"
	"slices"

	"geotraits/traits"
)

// Point is an x, y pair.
type Point[T traits.Coord] [2]T

func (p Point[T]) X() T { return p[0] }
func (p Point[T]) Y() T { return p[1] }

// FromXY ignores the receiver.
func (Point[T]) FromXY(x, y T) Point[T] { return Point[T]{x, y} }

// LineString is an ordered path.
type LineString[T traits.Coord] []Point[T]

func (ls LineString[T]) Points() iter.Seq[Point[T]]   { return slices.Values(ls) }
func (ls LineString[T]) NumPoints() int               { return len(ls) }
func (ls LineString[T]) Point(i int) (Point[T], bool) { return traits.At(ls, i) }

// MultiPoint is a point set.
type MultiPoint[T traits.Coord] []Point[T]

func (mp MultiPoint[T]) Points() iter.Seq[Point[T]]   { return slices.Values(mp) }
func (mp MultiPoint[T]) NumPoints() int               { return len(mp) }
func (mp MultiPoint[T]) Point(i int) (Point[T], bool) { return traits.At(mp, i) }

// Polygon holds rings, first outer, following holes.
type Polygon[T traits.Coord] []LineString[T]

func (y Polygon[T]) Rings() iter.Seq[LineString[T]]   { return slices.Values(y) }
func (y Polygon[T]) NumRings() int                    { return len(y) }
func (y Polygon[T]) Ring(i int) (LineString[T], bool) { return traits.At(y, i) }

type MultiLineString[T traits.Coord] []LineString[T]

func (ml MultiLineString[T]) Lines() iter.Seq[LineString[T]]   { return slices.Values(ml) }
func (ml MultiLineString[T]) NumLines() int                    { return len(ml) }
func (ml MultiLineString[T]) Line(i int) (LineString[T], bool) { return traits.At(ml, i) }

type MultiPolygon[T traits.Coord] []Polygon[T]

func (my MultiPolygon[T]) Polygons() iter.Seq[Polygon[T]]   { return slices.Values(my) }
func (my MultiPolygon[T]) NumPolygons() int                 { return len(my) }
func (my MultiPolygon[T]) Polygon(i int) (Polygon[T], bool) { return traits.At(my, i) }

// GeometryCollection yields pointers into its own backing array.
type GeometryCollection[T traits.Coord] []Geometry[T]

func (c GeometryCollection[T]) Geometries() iter.Seq[*Geometry[T]] {
	return func(yield func(*Geometry[T]) bool) {
		for i := range c {
			if !yield(&c[i]) {
				return
			}
		}
	}
}

func (c GeometryCollection[T]) NumGeometries() int { return len(c) }

func (c GeometryCollection[T]) Geometry(i int) (*Geometry[T], bool) {
	if i < 0 || i >= len(c) {
		return nil, false
	}
	return &c[i], true
}
