package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	"github.com/sirupsen/logrus"

	"geotraits/internal/dataset"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !dataset.Supported(name) {
			continue
		}
		items = append(items, fileItem{
			title: name,
			desc:  strings.ToLower(filepath.Ext(name)),
			path:  filepath.Join(m.cwd, name),
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads any supported format into the model.
func (m *Model) loadPath(p string) {
	d, err := dataset.Load(p)
	if err != nil {
		m.log.WithFields(logrus.Fields{"path": p}).WithError(err).Warn("load failed")
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.setData(d)
	m.log.WithFields(logrus.Fields{
		"path":     p,
		"kind":     d.Kind().String(),
		"vertices": d.Counts().Vertices,
	}).Info("dataset loaded")
	m.status = "loaded: " + filepath.Base(p) + "  " + countsLine(d)
	// If attributes are currently shown, verify availability for the new dataset
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}

func countsLine(d dataset.Dataset) string {
	c := d.Counts()
	return fmt.Sprintf("counts: pts=%d ls=%d poly=%d", c.Points, c.LineStrings, c.Polygons)
}
