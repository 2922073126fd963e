package tui

import (
	"strings"

	"geotraits/internal/algo"
)

// viewBounds pads the zero-size axes of r so a single point or an
// axis-aligned line still projects onto the map. A flat axis borrows half
// the other axis, or 0.5 when both are flat.
func viewBounds(r algo.Rect[float64], ok bool) algo.Rect[float64] {
	if !ok {
		return r
	}
	w, h := r.Width(), r.Height()
	padX, padY := 0.5, 0.5
	if h > 0 {
		padX = h / 2
	}
	if w > 0 {
		padY = w / 2
	}
	if w == 0 {
		r.MinX, r.MaxX = r.MinX-padX, r.MaxX+padX
	}
	if h == 0 {
		r.MinY, r.MaxY = r.MinY-padY, r.MaxY+padY
	}
	return r
}

// cellToLonLat converts a map cell coordinate back to lon/lat using bbox, zoom, and pan.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	if !m.bbox.Valid() || w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	lon := m.bbox.MinX + nx*m.bbox.Width()
	lat := m.bbox.MinY + ny*m.bbox.Height()
	return lon, lat, true
}

// zoomed normalizes lon/lat into the bbox and applies zoom around the centre.
func (m Model) zoomed(lon, lat float64) (zx, zy float64, ok bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	nx := (lon - m.bbox.MinX) / m.bbox.Width()
	ny := (lat - m.bbox.MinY) / m.bbox.Height()
	return 0.5 + (nx-0.5)*m.zoom, 0.5 + (ny-0.5)*m.zoom, true
}

// screenXYMicro maps lon/lat into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(lon, lat float64, w, h int) (int, int, bool) {
	zx, zy, ok := m.zoomed(lon, lat)
	if !ok {
		return 0, 0, false
	}
	sx := int(zx*float64(w*2-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(h*4-1)) + m.offsetY*4
	return sx, sy, true
}

func (m Model) projectMicro(pts [][2]float64, w, h int) [][2]int {
	out := make([][2]int, 0, len(pts))
	for _, p := range pts {
		if mx, my, ok := m.screenXYMicro(p[0], p[1], w, h); ok {
			out = append(out, [2]int{mx, my})
		}
	}
	return out
}

func (m Model) renderMap(w, h int) string {
	br := newBrailleBuf(w, h)
	layers := m.layers

	// Polygons: fill then edges
	if m.showPolys {
		for _, poly := range layers.Polygons {
			var rings [][][2]int
			for _, ring := range poly {
				if r := m.projectMicro(ring, w, h); len(r) >= 3 {
					rings = append(rings, r)
				}
			}
			br.fillRings(rings)
			for _, r := range rings {
				br.drawRing(r)
			}
		}
	}

	// Draw points only when dataset has no lines or polygons
	if m.showPoints && len(layers.Lines) == 0 && len(layers.Polygons) == 0 {
		for _, p := range m.projectMicro(layers.Points, w, h) {
			br.setPixel(p[0], p[1])
		}
	}

	if m.showLines {
		for _, ls := range layers.Lines {
			pts := m.projectMicro(ls, w, h)
			for i := 1; i < len(pts); i++ {
				br.drawLineMicro(pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1])
			}
		}
	}

	lines := br.toLines()

	// Hover highlight: mark the hovered vertex cell
	if m.hovering {
		cx, cy := m.hoverMicX/2, m.hoverMicY/4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				lines[cy] = string(r[:cx]) + hoverStyle.Render("◯") + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}

// nearestVertex returns the vertex of the dataset closest to micro-pixel
// (hx, hy) in a w x h map.
func (m Model) nearestVertex(hx, hy, w, h int) (vx, vy int, lonlat [2]float64, ok bool) {
	if m.data == nil {
		return 0, 0, lonlat, false
	}
	best := -1
	for p := range m.data.Vertices() {
		mx, my, in := m.screenXYMicro(p[0], p[1], w, h)
		if !in {
			continue
		}
		dx, dy := mx-hx, my-hy
		if d := dx*dx + dy*dy; best < 0 || d < best {
			best, vx, vy, lonlat = d, mx, my, p
		}
	}
	return vx, vy, lonlat, best >= 0
}
