package dataset

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	ctg "github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geotraits/internal/algo"
	"geotraits/internal/geom"
	"geotraits/traits"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const squareWKT = "POLYGON((0 0,4 0,4 4,0 4,0 0),(1 1,2 1,2 2,1 2,1 1))"

func TestLoadWKT(t *testing.T) {
	d, err := Load(writeFile(t, "square.wkt", squareWKT+"\n"))
	require.NoError(t, err)

	assert.Equal(t, traits.KindPolygon, d.Kind())
	b, ok := d.Bounds()
	require.True(t, ok)
	assert.Equal(t, algo.Rect[float64]{MaxX: 4, MaxY: 4}, b)
	assert.Equal(t, algo.Counts{Polygons: 1, Rings: 2, Vertices: 10}, d.Counts())

	assert.True(t, d.Contains(3, 3))
	assert.False(t, d.Contains(1.5, 1.5))
	assert.False(t, d.Contains(9, 9))
	assert.Empty(t, d.Columns())

	l := Collect(d)
	require.Len(t, l.Polygons, 1)
	assert.Len(t, l.Polygons[0], 2)
	assert.Empty(t, l.Points)
	assert.Empty(t, l.Lines)
}

func TestLoadGeoJSON(t *testing.T) {
	path := writeFile(t, "places.geojson", `{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{"name":"a","pop":12},"geometry":{"type":"Point","coordinates":[1,2]}},
		{"type":"Feature","properties":{"name":"b","tags":["x"]},"geometry":{"type":"MultiLineString","coordinates":[[[0,0],[1,1]],[[2,2],[3,3]]]}}
	]}`)
	d, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, d.Source())
	assert.Equal(t, traits.KindGeometryCollection, d.Kind())
	assert.Equal(t, []string{"name", "pop", "tags"}, d.Columns())
	assert.Equal(t, [][]string{{"a", "12", ""}, {"b", "", `["x"]`}}, d.Rows())

	l := Collect(d)
	assert.Equal(t, [][2]float64{{1, 2}}, l.Points)
	assert.Len(t, l.Lines, 2)
	assert.Equal(t, 5, traits.Count(d.Vertices()))
}

func TestLoadCSV(t *testing.T) {
	d, err := Load(writeFile(t, "pts.CSV", "name,lat,lon\na,1,2\nb,3,4\n"))
	require.NoError(t, err)
	assert.Equal(t, traits.KindMultiPoint, d.Kind())
	assert.Equal(t, [][2]float64{{2, 1}, {4, 3}}, slices.Collect(d.Vertices()))
	assert.Equal(t, []string{"name", "lat", "lon"}, d.Columns())
	assert.Len(t, d.Rows(), 2)
	assert.False(t, d.Contains(2, 1), "points have no area")
}

func TestLoadKML(t *testing.T) {
	d, err := Load(writeFile(t, "route.kml", `<kml><Placemark><name>r</name>
		<LineString><coordinates>0,0 5,5</coordinates></LineString></Placemark></kml>`))
	require.NoError(t, err)
	assert.Equal(t, algo.Counts{LineStrings: 1, Vertices: 2}, d.Counts())
	assert.Equal(t, [][]string{{"r", "LineString"}}, d.Rows())
}

func TestLoadWKB(t *testing.T) {
	// POINT(1 2), hex encoded
	d, err := Load(writeFile(t, "pt.wkb", "0101000000000000000000F03F0000000000000040\n"))
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{1, 2}}, Collect(d).Points)

	_, ok := d.Bounds()
	assert.True(t, ok)
}

type lot struct {
	Polygon ctg.Polygon
	Owner   string
}

func TestLoadShapefile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lots.shp")
	e, err := shp.NewEncoder(path, lot{})
	require.NoError(t, err)
	require.NoError(t, e.Encode(lot{
		Polygon: ctg.Polygon{{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0}}},
		Owner:   "city",
	}))
	e.Close()

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, traits.KindGeometryCollection, d.Kind())
	assert.Equal(t, []string{"Owner"}, d.Columns())
	assert.Equal(t, [][]string{{"city"}}, d.Rows())
	assert.True(t, d.Contains(1, 1))
	assert.Equal(t, 1, d.Counts().Polygons)
}

func TestFromWKT(t *testing.T) {
	d, err := FromWKT("MULTIPOINT((1 1),(2 2))")
	require.NoError(t, err)
	assert.Equal(t, "pasted", d.Source())
	assert.Equal(t, algo.Counts{Points: 2, Vertices: 2}, d.Counts())

	_, err = FromWKT("")
	assert.Error(t, err)
}

func TestKinds(t *testing.T) {
	d, err := FromWKT("GEOMETRYCOLLECTION(POINT(1 1),GEOMETRYCOLLECTION(LINESTRING(0 0,1 1)))")
	require.NoError(t, err)
	assert.Equal(t, []traits.Kind{
		traits.KindGeometryCollection,
		traits.KindPoint,
		traits.KindGeometryCollection,
		traits.KindLineString,
	}, slices.Collect(d.Kinds()))

	d, err = FromWKT("POINT(1 1)")
	require.NoError(t, err)
	assert.Equal(t, []traits.Kind{traits.KindPoint}, slices.Collect(d.Kinds()))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "notes.txt", "hello"))
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Load(filepath.Join(t.TempDir(), "missing.geojson"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "bad.wkt", "POLYGON((0 0"))
	assert.Error(t, err)
}

func TestEmptyBounds(t *testing.T) {
	g := geom.FromCollection[float64]()
	d := newLayer(geom.Family[float64](), &g, "empty", table{})
	assert.Equal(t, algo.Counts{}, d.Counts())
	_, ok := d.Bounds()
	assert.False(t, ok)
	assert.False(t, d.Contains(0, 0))
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("a/b/c.GeoJSON"))
	assert.True(t, Supported("x.shp"))
	assert.False(t, Supported("x.gpx"))
}
