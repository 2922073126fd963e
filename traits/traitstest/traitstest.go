// Package traitstest checks a geometry representation against the rules of
// package traits. Implementers call these from their own tests with values of
// their own types.
package traitstest

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"geotraits/traits"
)

// Readers is the number of goroutines Concurrent starts.
const Readers = 8

// Sequence checks one sequence capability given its three operations.
// It verifies count/iteration consistency, positional agreement, absence
// past the end and before the start, and that the sequence restarts from the
// first item after an early break.
func Sequence[V any](t testing.TB, name string, n int, all iter.Seq[V], at func(int) (V, bool)) {
	t.Helper()

	var items []V
	for v := range all {
		items = append(items, v)
	}
	require.Len(t, items, n, "%s: count and iteration disagree", name)

	for i, want := range items {
		got, ok := at(i)
		require.True(t, ok, "%s: item %d of %d reported absent", name, i, n)
		assert.Equal(t, want, got, "%s: item %d differs from iteration order", name, i)
	}

	for _, i := range []int{n, n + 1, n + 100, -1} {
		_, ok := at(i)
		assert.False(t, ok, "%s: item %d of %d should be absent", name, i, n)
	}

	if n == 0 {
		return
	}
	for v := range all {
		assert.Equal(t, items[0], v, "%s: first item after restart", name)
		break
	}
	assert.Equal(t, n, traits.Count(all), "%s: second full pass", name)
}

// PointRoundTrip checks that FromXY followed by X and Y returns the inputs.
func PointRoundTrip[P traits.PointBuilder[T, P], T traits.Coord](t testing.TB, pairs ...[2]T) {
	t.Helper()
	for _, xy := range pairs {
		p := traits.FromXY[P](xy[0], xy[1])
		assert.Equal(t, xy[0], p.X(), "FromXY(%v, %v).X()", xy[0], xy[1])
		assert.Equal(t, xy[1], p.Y(), "FromXY(%v, %v).Y()", xy[0], xy[1])
	}
}

// LineString checks ls and reports its points as [x, y] pairs.
func LineString[T traits.Coord, P traits.Point[T], L traits.LineString[T, P]](t testing.TB, ls L) [][2]T {
	t.Helper()
	Sequence(t, "LineString", ls.NumPoints(), ls.Points(), ls.Point)
	return coords[T](ls.Points())
}

// MultiPoint checks mp and reports its points as [x, y] pairs.
func MultiPoint[T traits.Coord, P traits.Point[T], MP traits.MultiPoint[T, P]](t testing.TB, mp MP) [][2]T {
	t.Helper()
	Sequence(t, "MultiPoint", mp.NumPoints(), mp.Points(), mp.Point)
	return coords[T](mp.Points())
}

// Polygon checks y and every one of its rings.
func Polygon[T traits.Coord, P traits.Point[T], L traits.LineString[T, P], Y traits.Polygon[T, P, L]](t testing.TB, y Y) {
	t.Helper()
	Sequence(t, "Polygon", y.NumRings(), y.Rings(), y.Ring)
	for r := range y.Rings() {
		LineString[T, P](t, r)
	}
}

// MultiLineString checks ml and every one of its lines.
func MultiLineString[T traits.Coord, P traits.Point[T], L traits.LineString[T, P], ML traits.MultiLineString[T, P, L]](t testing.TB, ml ML) {
	t.Helper()
	Sequence(t, "MultiLineString", ml.NumLines(), ml.Lines(), ml.Line)
	for l := range ml.Lines() {
		LineString[T, P](t, l)
	}
}

// MultiPolygon checks my and every one of its polygons.
func MultiPolygon[T traits.Coord, P traits.Point[T], L traits.LineString[T, P], Y traits.Polygon[T, P, L], MY traits.MultiPolygon[T, P, L, Y]](t testing.TB, my MY) {
	t.Helper()
	Sequence(t, "MultiPolygon", my.NumPolygons(), my.Polygons(), my.Polygon)
	for y := range my.Polygons() {
		Polygon[T, P, L](t, y)
	}
}

func coords[T traits.Coord, P traits.Point[T]](seq iter.Seq[P]) [][2]T {
	var out [][2]T
	for p := range seq {
		out = append(out, [2]T{p.X(), p.Y()})
	}
	return out
}

// Concurrent runs read on Readers goroutines at once and fails on the first
// error. Run it under -race to catch representations that mutate on read.
func Concurrent(t testing.TB, read func() error) {
	t.Helper()
	var g errgroup.Group
	for i := 0; i < Readers; i++ {
		g.Go(read)
	}
	require.NoError(t, g.Wait())
}
