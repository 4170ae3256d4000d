package tui

import (
	"os"
	"path/filepath"
	"sort"

	list "github.com/charmbracelet/bubbles/list"

	"geopath/internal/geom"
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
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if f, ok := geom.FormatFor(name); ok {
			items = append(items, fileItem{title: name, desc: f.String(), path: filepath.Join(m.cwd, name)})
		}
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
	c, err := geom.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	if m.setCollection(c, "loaded: "+filepath.Base(p)) {
		m.selPath = p
	}
}
