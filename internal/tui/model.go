package tui

import (
	"io"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"geotraits/internal/algo"
	"geotraits/internal/config"
	"geotraits/internal/dataset"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string
	log    logrus.FieldLogger

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	data   dataset.Dataset
	layers *dataset.Layers
	bbox   algo.Rect[float64]

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showPoints bool
	showLines  bool
	showPolys  bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64

	// attributes table
	showAttrs bool
	tbl       table.Model
}

// New builds the viewer. A nil log discards.
func New(view config.ViewConfig, log logrus.FieldLogger) Model {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	zoom := view.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	m := Model{
		showSidebar: view.Sidebar,
		helpVisible: view.Help,
		zoom:        zoom,
		status:      "geomap ready",
		log:         log,
		layers:      new(dataset.Layers),
		showPoints:  true,
		showLines:   true,
		showPolys:   true,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (any geometry, GEOMETRYCOLLECTION included). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// attributes table setup (columns will be inferred per dataset)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(path string, view config.ViewConfig, log logrus.FieldLogger) Model {
	m := New(view, log)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// setData replaces the displayed dataset and resets the viewport.
func (m *Model) setData(d dataset.Dataset) {
	m.data = d
	m.layers = dataset.Collect(d)
	m.bbox = viewBounds(d.Bounds())
	m.offsetX, m.offsetY = 0, 0
	m.inspectPopup = ""
	// prefer polys > lines > points for visibility
	m.showPolys = len(m.layers.Polygons) > 0
	m.showLines = len(m.layers.Lines) > 0 && !m.showPolys
	m.showPoints = len(m.layers.Points) > 0 && !m.showPolys
}
