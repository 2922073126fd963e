package tui

import (
	"fmt"
	"path/filepath"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
)

const maxColW = 24

// refreshAttrsFromCurrent rebuilds the table columns/rows from the current dataset
func (m *Model) refreshAttrsFromCurrent() {
	cols, rows := m.buildAttributes()
	// If there are no columns or rows, disable attributes view to avoid rendering panics
	if len(cols) == 0 || len(rows) == 0 {
		m.showAttrs = false
		m.status = "no attributes for current dataset"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	for _, c := range cols {
		tcols = append(tcols, table.Column{Title: c, Width: min(len(c)+2, maxColW)})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		cells := make([]string, len(tcols))
		cells[0] = strconv.Itoa(i + 1)
		copy(cells[1:], r)
		trows = append(trows, table.Row(cells))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// buildAttributes returns the dataset's own table, or a one-row summary when
// the format carries no attributes.
func (m *Model) buildAttributes() ([]string, [][]string) {
	if m.data == nil {
		return nil, nil
	}
	if cols := m.data.Columns(); len(cols) > 0 {
		return cols, m.data.Rows()
	}
	c := m.data.Counts()
	cols := []string{"name", "kind", "bbox", "points", "lines", "polygons", "vertices"}
	vals := []string{
		filepath.Base(m.data.Source()),
		m.data.Kind().String(),
		m.bboxString(),
		strconv.Itoa(c.Points),
		strconv.Itoa(c.LineStrings),
		strconv.Itoa(c.Polygons),
		strconv.Itoa(c.Vertices),
	}
	return cols, [][]string{vals}
}

// bboxString prints the data bounds, not the padded view bounds.
func (m *Model) bboxString() string {
	if m.data == nil {
		return "-"
	}
	b, ok := m.data.Bounds()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("[%.5f, %.5f, %.5f, %.5f]", b.MinX, b.MinY, b.MaxX, b.MaxY)
}
