package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"geotraits/internal/config"
	"geotraits/internal/dataset"
	"geotraits/traits"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.showPoints = !m.showPoints
			m.status = fmt.Sprintf("points: %v", m.showPoints)
		case "2":
			m.showLines = !m.showLines
			m.status = fmt.Sprintf("lines: %v", m.showLines)
		case "3":
			m.showPolys = !m.showPolys
			m.status = fmt.Sprintf("polys: %v", m.showPolys)
		case "+", "=":
			if m.zoom*1.2 <= config.MaxZoom {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom/1.2 >= config.MinZoom {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrsFromCurrent()
			}
		case "i":
			m.inspect()
		case "esc":
			m.inspectPopup = ""
		case "l":
			// toggle all layers
			all := m.showPoints && m.showLines && m.showPolys
			m.showPoints = !all
			m.showLines = !all
			m.showPolys = !all
			m.status = fmt.Sprintf("layers: pts=%v ls=%v poly=%v", m.showPoints, m.showLines, m.showPolys)
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY--
		case "down":
			m.offsetY++
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		m.hover(msg.X, msg.Y)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.status = "view mode"
		m.ta.Blur()
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		d, err := dataset.FromWKT(w)
		if err != nil {
			m.log.WithError(err).Debug("pasted wkt rejected")
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		m.selPath = ""
		m.setData(d)
		m.zoom = 1.0
		m.log.WithFields(logrus.Fields{"kind": d.Kind().String()}).Info("pasted wkt rendered")
		m.status = "rendered WKT  " + countsLine(d)
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// inspect summarizes the dataset around the viewport centre.
func (m *Model) inspect() {
	if m.data == nil {
		m.inspectPopup = "no feature nearby"
		m.status = m.inspectPopup
		return
	}
	lo := m.layout()
	w, h := lo.mapW, lo.mapH
	_, _, near, ok := m.nearestVertex(w, h*2, w, h)
	if !ok {
		m.inspectPopup = "no feature nearby"
		m.status = m.inspectPopup
		return
	}
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<pasted>"
	}
	c := m.data.Counts()
	clon, clat, _ := m.cellToLonLat(w/2, h/2, w, h)
	meta := []string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("path: %s", m.selPath),
		fmt.Sprintf("kind: %s", m.data.Kind()),
	}
	if members := membersLine(m.data); members != "" {
		meta = append(meta, "members: "+members)
	}
	meta = append(meta,
		fmt.Sprintf("bbox: %s", m.bboxString()),
		fmt.Sprintf("counts: pts=%d ls=%d poly=%d rings=%d vertices=%d", c.Points, c.LineStrings, c.Polygons, c.Rings, c.Vertices),
		fmt.Sprintf("nearest: lon=%.6f lat=%.6f", near[0], near[1]),
		fmt.Sprintf("centre inside: %v", m.data.Contains(clon, clat)),
	)
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}

// membersLine counts the kinds inside a collection, nested items included,
// in first-seen order. It is empty for any other kind.
func membersLine(d dataset.Dataset) string {
	if d.Kind() != traits.KindGeometryCollection {
		return ""
	}
	var (
		order  []traits.Kind
		counts = map[traits.Kind]int{}
	)
	first := true
	for k := range d.Kinds() {
		if first {
			first = false
			continue
		}
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}
	parts := make([]string, 0, len(order))
	for _, k := range order {
		parts = append(parts, fmt.Sprintf("%s x%d", k, counts[k]))
	}
	return strings.Join(parts, ", ")
}

// hover tracks the mouse over the map and snaps to the nearest vertex.
func (m *Model) hover(x, y int) {
	lo := m.layout()
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lo.contentH-2)
	}
	if x < lo.mapX || x >= lo.mapX+lo.mapW || y < lo.mapY || y >= lo.mapY+lo.mapH {
		m.hovering = false
		return
	}
	m.hovering = true
	m.hoverCellX = x - lo.mapX
	m.hoverCellY = y - lo.mapY
	m.hoverLon, m.hoverLat, m.hoverHasGeo = m.cellToLonLat(m.hoverCellX, m.hoverCellY, lo.mapW, lo.mapH)

	hx, hy := m.hoverCellX*2, m.hoverCellY*4
	m.hoverMicX, m.hoverMicY = hx, hy
	if vx, vy, _, ok := m.nearestVertex(hx, hy, lo.mapW, lo.mapH); ok {
		m.hoverMicX, m.hoverMicY = vx, vy
	}
}
