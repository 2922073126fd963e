package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geotraits/internal/algo"
	"geotraits/internal/config"
	"geotraits/internal/dataset"
)

var view = config.ViewConfig{Zoom: 1, Help: true}

func sized(m Model) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return next.(Model)
}

func key(m Model, k string) Model {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestLoadPathAndRender(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "donut.wkt")
	require.NoError(t, os.WriteFile(path, []byte("POLYGON((0 0,10 0,10 10,0 10,0 0),(4 4,6 4,6 6,4 6,4 4))"), 0o644))

	m := sized(NewWithPath(path, view, nil))
	require.NotNil(t, m.data)
	assert.Contains(t, m.status, "loaded: donut.wkt")
	assert.True(t, m.showPolys)
	assert.Len(t, m.layers.Polygons, 1)

	out := m.renderMap(40, 12)
	assert.Equal(t, 12, strings.Count(out, "\n")+1)
	assert.True(t, strings.ContainsRune(out, '⣿'), "the filled area has full cells")
	assert.NotEmpty(t, m.View())
}

func TestLoadPathError(t *testing.T) {
	m := New(view, nil)
	m.loadPath(filepath.Join(t.TempDir(), "missing.kml"))
	assert.Nil(t, m.data)
	assert.True(t, strings.HasPrefix(m.status, "load error:"))
}

func TestZoomLimits(t *testing.T) {
	m := sized(New(view, nil))
	for range 100 {
		m = key(m, "+")
	}
	assert.LessOrEqual(t, m.zoom, config.MaxZoom)
	for range 200 {
		m = key(m, "-")
	}
	assert.GreaterOrEqual(t, m.zoom, config.MinZoom)

	m = key(m, "0")
	assert.Equal(t, 1.0, m.zoom)
}

func TestPasteMode(t *testing.T) {
	m := sized(New(view, nil))
	m = key(m, "p")
	require.True(t, m.pasteMode)

	m.ta.SetValue("LINESTRING(0 0, 5 5, 10 0)")
	m = key(m, "enter")
	assert.False(t, m.pasteMode)
	require.NotNil(t, m.data)
	assert.Len(t, m.layers.Lines, 1)
	assert.True(t, m.showLines)
	assert.Contains(t, m.status, "rendered WKT")

	m = key(m, "p")
	m.ta.SetValue("LINESTRING(")
	m = key(m, "enter")
	assert.True(t, m.pasteMode)
	assert.True(t, strings.HasPrefix(m.status, "wkt error:"))

	m = key(m, "esc")
	assert.False(t, m.pasteMode)
}

func TestInspectAndAttrs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pts.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,lat,lon\na,0,0\nb,10,10\n"), 0o644))

	m := sized(NewWithPath(path, view, nil))
	m = key(m, "i")
	assert.Contains(t, m.inspectPopup, "kind: MultiPoint")
	assert.Contains(t, m.inspectPopup, "centre inside: false")

	m = key(m, "a")
	assert.True(t, m.showAttrs)
	assert.Len(t, m.tbl.Rows(), 2)
	assert.Equal(t, "#", m.tbl.Columns()[0].Title)
}

func TestAttrsSummaryWithoutTable(t *testing.T) {
	m := sized(New(view, nil))
	m = key(m, "a")
	assert.False(t, m.showAttrs, "nothing loaded")

	m = key(m, "p")
	m.ta.SetValue("POINT(1 2)")
	m = key(m, "enter")
	m = key(m, "a")
	require.True(t, m.showAttrs)
	require.Len(t, m.tbl.Rows(), 1)
	assert.Equal(t, "Point", m.tbl.Rows()[0][2])
	assert.Equal(t, "[1.00000, 2.00000, 1.00000, 2.00000]", m.tbl.Rows()[0][3], "the unpadded data bounds")
}

func TestHover(t *testing.T) {
	m := sized(New(view, nil))
	m.setData(mustWKT(t, "MULTIPOINT((0 0),(10 10))"))

	next, _ := m.Update(tea.MouseMsg{X: 1, Y: 2})
	m = next.(Model)
	assert.True(t, m.hovering)
	assert.True(t, m.hoverHasGeo)

	next, _ = m.Update(tea.MouseMsg{X: 1, Y: 0})
	m = next.(Model)
	assert.False(t, m.hovering, "header row is outside the map")
}

func TestBraille(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0)
	b.setPixel(3, 3)
	b.setPixel(-1, 0)
	b.setPixel(4, 0)
	assert.Equal(t, []string{"⠁⢀"}, b.toLines())

	b = newBrailleBuf(2, 1)
	b.fillRings([][][2]int{{{0, 0}, {3, 0}, {3, 4}, {0, 4}}})
	assert.Equal(t, []string{"⣿⣿"}, b.toLines())
}

func mustWKT(t *testing.T, s string) dataset.Dataset {
	t.Helper()
	d, err := dataset.FromWKT(s)
	require.NoError(t, err)
	return d
}

func TestDegenerateBoundsRender(t *testing.T) {
	for _, wkt := range []string{"POINT(1 2)", "LINESTRING(0 0,10 0)", "LINESTRING(3 -1,3 4)"} {
		t.Run(wkt, func(t *testing.T) {
			d, err := dataset.FromWKT(wkt)
			require.NoError(t, err)
			m := sized(New(view, nil))
			m.setData(d)
			require.True(t, m.bbox.Valid())

			out := m.renderMap(40, 12)
			assert.True(t, strings.ContainsFunc(out, func(r rune) bool { return r > 0x2800 && r <= 0x28FF }),
				"expected a drawn braille cell in\n%s", out)

			m = key(m, "i")
			assert.NotContains(t, m.inspectPopup, "no feature nearby")
		})
	}
}

func TestViewBoundsPadding(t *testing.T) {
	r := viewBounds(algo.Around(1.0, 2.0), true)
	assert.Equal(t, algo.Rect[float64]{MinX: 0.5, MinY: 1.5, MaxX: 1.5, MaxY: 2.5}, r)

	r = viewBounds(algo.Around(0.0, 0.0).Extend(10, 0), true)
	assert.Equal(t, algo.Rect[float64]{MinX: 0, MinY: -5, MaxX: 10, MaxY: 5}, r)

	full := algo.Around(0.0, 0.0).Extend(4, 3)
	assert.Equal(t, full, viewBounds(full, true))
	assert.False(t, viewBounds(algo.Rect[float64]{}, false).Valid())
}

func TestInspectCollectionMembers(t *testing.T) {
	d, err := dataset.FromWKT("GEOMETRYCOLLECTION(POINT(0 0),LINESTRING(0 0,4 4),POINT(4 0))")
	require.NoError(t, err)
	m := sized(New(view, nil))
	m.setData(d)
	m = key(m, "i")
	assert.Contains(t, m.inspectPopup, "kind: GeometryCollection")
	assert.Contains(t, m.inspectPopup, "members: Point x2, LineString x1")
	assert.Contains(t, m.inspectPopup, "bbox: [0.00000, 0.00000, 4.00000, 4.00000]")
}
