package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geotraits/traits"
	"geotraits/traits/traitstest"
)

func sample() []Geometry[float64] {
	square := LineString[float64]{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}
	hole := LineString[float64]{{1, 1}, {2, 1}, {2, 2}, {1, 1}}
	return []Geometry[float64]{
		FromPoint(Point[float64]{1, 2}),
		FromLineString(LineString[float64]{{0, 0}, {1, 1}, {2, 0}}),
		FromLineString(LineString[float64]{}),
		FromPolygon(Polygon[float64]{square, hole}),
		FromMultiPoint(MultiPoint[float64]{{3, 3}, {4, 4}}),
		FromMultiLineString(MultiLineString[float64]{{{0, 0}, {1, 0}}, {{5, 5}, {6, 6}, {7, 5}}}),
		FromMultiPolygon(MultiPolygon[float64]{{square}, {square, hole}}),
		FromCollection(FromPoint(Point[float64]{9, 9}), FromCollection[float64]()),
	}
}

func TestContract(t *testing.T) {
	f := Family[float64]()
	for _, g := range sample() {
		t.Run(g.Kind().String(), func(t *testing.T) {
			traitstest.Geometry(t, f, &g)
		})
	}
}

func TestIntegerFamily(t *testing.T) {
	traitstest.PointRoundTrip[Point[int32]](t, [2]int32{-7, 12}, [2]int32{0, 0})
	traitstest.PointRoundTrip[Point[uint8]](t, [2]uint8{255, 3})

	g := FromPolygon(Polygon[int]{{{0, 0}, {3, 0}, {3, 3}, {0, 0}}})
	traitstest.Geometry(t, Family[int](), &g)
}

func TestExactlyOneAccessor(t *testing.T) {
	// A LineString and a MultiPoint share a shape; classification must not
	// let one pass as the other.
	ls := FromLineString(LineString[float64]{{1, 1}, {2, 2}})
	gt := ls.AsType()
	_, ok := gt.MultiPoint()
	assert.False(t, ok)
	got, ok := gt.LineString()
	require.True(t, ok)
	assert.Equal(t, 2, got.NumPoints())

	mp := FromMultiPoint(MultiPoint[float64]{{1, 1}, {2, 2}})
	_, ok = mp.AsType().LineString()
	assert.False(t, ok)
}

func TestAsTypeAliases(t *testing.T) {
	g := FromLineString(LineString[float64]{{1, 1}, {2, 2}})
	l, ok := g.AsType().LineString()
	require.True(t, ok)
	(*l)[0] = Point[float64]{5, 5}

	again, _ := g.AsType().LineString()
	p, _ := again.Point(0)
	assert.Equal(t, Point[float64]{5, 5}, p)
}

func TestCollectionItemsPointIntoStorage(t *testing.T) {
	g := FromCollection(FromPoint(Point[float64]{1, 1}), FromPoint(Point[float64]{2, 2}))
	gc, ok := g.AsType().GeometryCollection()
	require.True(t, ok)

	first, ok := gc.Geometry(0)
	require.True(t, ok)
	for item := range gc.Geometries() {
		assert.Same(t, first, item)
		break
	}
	_, ok = gc.Geometry(2)
	assert.False(t, ok)
	_, ok = gc.Geometry(-1)
	assert.False(t, ok)
}

func TestZeroGeometryPanics(t *testing.T) {
	var g Geometry[float64]
	assert.Equal(t, traits.Kind(0), g.Kind())
	assert.PanicsWithValue(t, traits.Unclassified(0), func() { g.AsType() })
}

func TestCollectionSkipsZeroMembers(t *testing.T) {
	g := FromCollection(Geometry[float64]{}, FromPoint(Point[float64]{1, 2}), Geometry[float64]{})
	gc, ok := g.AsType().GeometryCollection()
	require.True(t, ok)
	require.Equal(t, 1, gc.NumGeometries())
	item, ok := gc.Geometry(0)
	require.True(t, ok)
	assert.Equal(t, traits.KindPoint, item.Kind())
	assert.NotPanics(t, func() {
		for item := range gc.Geometries() {
			item.AsType()
		}
	})
}

func TestConcurrentReads(t *testing.T) {
	gs := sample()
	f := Family[float64]()
	traitstest.Concurrent(t, func() error {
		for i := range gs {
			traits.Visit[int](gs[i].AsType(), countVisitor{})
		}
		_ = f.FromXY(1, 2)
		return nil
	})
}

type countVisitor struct{}

func (countVisitor) VisitPoint(*Point[float64]) int                        { return 1 }
func (countVisitor) VisitLineString(l *LineString[float64]) int            { return l.NumPoints() }
func (countVisitor) VisitPolygon(y *Polygon[float64]) int                  { return y.NumRings() }
func (countVisitor) VisitMultiPoint(mp *MultiPoint[float64]) int           { return mp.NumPoints() }
func (countVisitor) VisitMultiLineString(ml *MultiLineString[float64]) int { return ml.NumLines() }
func (countVisitor) VisitMultiPolygon(my *MultiPolygon[float64]) int       { return my.NumPolygons() }
func (countVisitor) VisitGeometryCollection(gc *GeometryCollection[float64]) int {
	return gc.NumGeometries()
}
