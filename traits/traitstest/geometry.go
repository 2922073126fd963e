package traitstest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geotraits/traits"
)

// Classification checks that g classifies into exactly one of the seven
// kinds, that a second call agrees on kind and referent, and returns the kind.
func Classification[
	T traits.Coord,
	P traits.PointBuilder[T, P],
	L traits.LineString[T, P],
	Y traits.Polygon[T, P, L],
	MP traits.MultiPoint[T, P],
	ML traits.MultiLineString[T, P, L],
	MY traits.MultiPolygon[T, P, L, Y],
	GC traits.GeometryCollection[G],
	G traits.Geometry[P, L, Y, MP, ML, MY, GC],
](t testing.TB, _ traits.Family[T, P, L, Y, MP, ML, MY, GC, G], g G) traits.Kind {
	t.Helper()

	gt := g.AsType()
	require.True(t, gt.Valid(), "AsType returned an unclassified view: %v", gt.Kind())

	matched := 0
	if _, ok := gt.Point(); ok {
		matched++
	}
	if _, ok := gt.LineString(); ok {
		matched++
	}
	if _, ok := gt.Polygon(); ok {
		matched++
	}
	if _, ok := gt.MultiPoint(); ok {
		matched++
	}
	if _, ok := gt.MultiLineString(); ok {
		matched++
	}
	if _, ok := gt.MultiPolygon(); ok {
		matched++
	}
	if _, ok := gt.GeometryCollection(); ok {
		matched++
	}
	assert.Equal(t, 1, matched, "%s: exactly one accessor should match", gt.Kind())

	again := g.AsType()
	assert.Equal(t, gt.Kind(), again.Kind(), "classification is not stable")
	assert.Same(t, gt.Ref(), again.Ref(), "classification returned a different referent")
	return gt.Kind()
}

// Geometry checks the classification of g and then the capability contract of
// the matched kind, descending into collections.
func Geometry[
	T traits.Coord,
	P traits.PointBuilder[T, P],
	L traits.LineString[T, P],
	Y traits.Polygon[T, P, L],
	MP traits.MultiPoint[T, P],
	ML traits.MultiLineString[T, P, L],
	MY traits.MultiPolygon[T, P, L, Y],
	GC traits.GeometryCollection[G],
	G traits.Geometry[P, L, Y, MP, ML, MY, GC],
](t testing.TB, f traits.Family[T, P, L, Y, MP, ML, MY, GC, G], g G) {
	t.Helper()

	gt := g.AsType()
	switch Classification(t, f, g) {
	case traits.KindPoint:
		p, _ := gt.Point()
		PointRoundTrip[P](t, [2]T{(*p).X(), (*p).Y()})
	case traits.KindLineString:
		l, _ := gt.LineString()
		LineString[T, P](t, *l)
	case traits.KindPolygon:
		y, _ := gt.Polygon()
		Polygon[T, P, L](t, *y)
	case traits.KindMultiPoint:
		mp, _ := gt.MultiPoint()
		MultiPoint[T, P](t, *mp)
	case traits.KindMultiLineString:
		ml, _ := gt.MultiLineString()
		MultiLineString[T, P, L](t, *ml)
	case traits.KindMultiPolygon:
		my, _ := gt.MultiPolygon()
		MultiPolygon[T, P, L, Y](t, *my)
	case traits.KindGeometryCollection:
		gc, _ := gt.GeometryCollection()
		for item := range (*gc).Geometries() {
			Geometry(t, f, item)
		}
	default:
		panic(traits.Unclassified(gt.Kind()))
	}
}
