// Package dataset loads geometry files into a representation-independent
// view. Each format is decoded into the family that suits it best and then
// served through the same generic adapter.
package dataset

import (
	"iter"

	"geotraits/internal/algo"
	"geotraits/traits"
)

// Dataset is one loaded geometry with its attribute table.
type Dataset interface {
	// Source is the path or label the data came from.
	Source() string
	Kind() traits.Kind
	// Kinds yields Kind and then, for a collection, the kinds of its items
	// depth-first.
	Kinds() iter.Seq[traits.Kind]
	// Bounds is false when the geometry has no vertices.
	Bounds() (algo.Rect[float64], bool)
	Counts() algo.Counts
	Vertices() iter.Seq[[2]float64]
	Contains(x, y float64) bool
	Walk(s Sink)
	Columns() []string
	Rows() [][]string
}

// Sink receives the drawable parts of a geometry. Multi members and
// collection items are delivered one by one.
type Sink interface {
	Point(x, y float64)
	LineString(pts [][2]float64)
	// Polygon receives the exterior ring first.
	Polygon(rings [][][2]float64)
}

// Layers is a Sink that keeps everything it is given.
type Layers struct {
	Points   [][2]float64
	Lines    [][][2]float64
	Polygons [][][][2]float64
}

func (l *Layers) Point(x, y float64)           { l.Points = append(l.Points, [2]float64{x, y}) }
func (l *Layers) LineString(pts [][2]float64)  { l.Lines = append(l.Lines, pts) }
func (l *Layers) Polygon(rings [][][2]float64) { l.Polygons = append(l.Polygons, rings) }

// Collect walks d into a fresh Layers.
func Collect(d Dataset) *Layers {
	l := new(Layers)
	d.Walk(l)
	return l
}
