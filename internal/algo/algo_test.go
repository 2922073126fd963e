package algo_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geotraits/internal/algo"
	"geotraits/internal/geom"
	"geotraits/internal/orbgeom"
	"geotraits/traits"
)

// donut is a 10x10 square with a 2x2 hole in the middle.
var donut = geom.Polygon[float64]{
	{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
	{{4, 4}, {6, 4}, {6, 6}, {4, 6}, {4, 4}},
}

const donutWKT = "POLYGON((0 0,10 0,10 10,0 10,0 0),(4 4,6 4,6 6,4 6,4 4))"

func TestRect(t *testing.T) {
	r := algo.Around(1, 2).Extend(-3, 5)
	assert.Equal(t, algo.Rect[int]{MinX: -3, MinY: 2, MaxX: 1, MaxY: 5}, r)
	assert.Equal(t, 4, r.Width())
	assert.Equal(t, 3, r.Height())
	assert.True(t, r.Valid())
	assert.True(t, r.Contains(-3, 5))
	assert.False(t, r.Contains(2, 2))

	assert.False(t, algo.Around(1.0, 1.0).Valid())
	assert.False(t, algo.Around(1.0, 1.0).Extend(3, 1).Valid())
}

func TestBounds(t *testing.T) {
	f := geom.Family[float64]()

	g := geom.FromPolygon(donut)
	r, ok := algo.Bounds(f, &g)
	require.True(t, ok)
	assert.Equal(t, algo.Rect[float64]{MaxX: 10, MaxY: 10}, r)

	empty := geom.FromLineString(geom.LineString[float64]{})
	_, ok = algo.Bounds(f, &empty)
	assert.False(t, ok)

	nothing := geom.FromCollection[float64]()
	_, ok = algo.Bounds(f, &nothing)
	assert.False(t, ok)
}

func TestVertices(t *testing.T) {
	f := geom.Family[int]()
	g := geom.FromCollection(
		geom.FromPoint(geom.Point[int]{1, 1}),
		geom.FromMultiLineString(geom.MultiLineString[int]{
			{{2, 2}, {3, 3}},
			{{4, 4}},
		}),
	)

	var got []geom.Point[int]
	for p := range algo.Vertices(f, &g) {
		got = append(got, p)
	}
	assert.Equal(t, []geom.Point[int]{{1, 1}, {2, 2}, {3, 3}, {4, 4}}, got)

	for p := range algo.Vertices(f, &g) {
		assert.Equal(t, geom.Point[int]{1, 1}, p, "restart yields the first vertex")
		break
	}
	assert.Equal(t, 4, traits.Count(algo.Vertices(f, &g)))
}

func TestTally(t *testing.T) {
	f := geom.Family[float64]()
	g := geom.FromCollection(
		geom.FromPoint(geom.Point[float64]{1, 1}),
		geom.FromMultiPoint(geom.MultiPoint[float64]{{1, 1}, {2, 2}}),
		geom.FromLineString(geom.LineString[float64]{{0, 0}, {1, 1}, {2, 0}}),
		geom.FromMultiPolygon(geom.MultiPolygon[float64]{donut, donut[:1]}),
		geom.FromCollection(geom.FromPolygon(donut)),
	)
	assert.Equal(t, algo.Counts{
		Points:      3,
		LineStrings: 1,
		Polygons:    3,
		Rings:       5,
		Vertices:    3 + 3 + 5*5,
	}, algo.Tally(f, &g))
}

func TestKinds(t *testing.T) {
	f := geom.Family[float64]()
	g := geom.FromCollection(
		geom.FromPoint(geom.Point[float64]{1, 1}),
		geom.FromCollection(geom.FromPolygon(donut)),
		geom.FromMultiPoint(geom.MultiPoint[float64]{}),
	)
	assert.Equal(t, []traits.Kind{
		traits.KindGeometryCollection,
		traits.KindPoint,
		traits.KindGeometryCollection,
		traits.KindPolygon,
		traits.KindMultiPoint,
	}, slices.Collect(algo.Kinds(f, &g)))
}

func TestContains(t *testing.T) {
	f := geom.Family[float64]()
	g := geom.FromPolygon(donut)

	cases := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 2, 2, true},
		{"in hole", 5, 5, false},
		{"outside", 11, 5, false},
		{"between hole and edge", 8, 5, true},
		{"below", 5, -1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, algo.Contains(f, &g, tc.x, tc.y))
		})
	}

	line := geom.FromLineString(geom.LineString[float64]{{0, 0}, {10, 10}})
	assert.False(t, algo.Contains(f, &line, 5, 5))

	multi := geom.FromMultiPolygon(geom.MultiPolygon[float64]{
		{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}},
		{{{20, 20}, {30, 20}, {30, 30}, {20, 30}}},
	})
	assert.True(t, algo.Contains(f, &multi, 25, 25), "open rings are accepted")
	assert.False(t, algo.Contains(f, &multi, 15, 15))

	coll := geom.FromCollection(geom.FromPoint(geom.Point[float64]{5, 5}), g)
	assert.True(t, algo.Contains(f, &coll, 1, 9))
}

func TestContainsIntegerCoords(t *testing.T) {
	f := geom.Family[int]()
	g := geom.FromPolygon(geom.Polygon[int]{{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}})
	assert.True(t, algo.Contains(f, &g, 1, 3))
	assert.False(t, algo.Contains(f, &g, 5, 3))
}

// The same algorithms give the same answers whatever backs the geometry.
func TestFamiliesAgree(t *testing.T) {
	sliceGeom := geom.FromPolygon(donut)
	orbGeom, err := orbgeom.ParseWKT(donutWKT)
	require.NoError(t, err)

	sf, of := geom.Family[float64](), orbgeom.Family()

	assert.Equal(t, algo.Tally(sf, &sliceGeom), algo.Tally(of, orbGeom))

	sb, _ := algo.Bounds(sf, &sliceGeom)
	ob, _ := algo.Bounds(of, orbGeom)
	assert.Equal(t, sb, ob)

	for _, xy := range [][2]float64{{2, 2}, {5, 5}, {8, 5}, {-1, 0}} {
		assert.Equal(t,
			algo.Contains(sf, &sliceGeom, xy[0], xy[1]),
			algo.Contains(of, orbGeom, xy[0], xy[1]),
			"contains %v", xy)
	}
}
