package tui

import (
	"fmt"
	"os"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"geopath/internal/canvas"
	"geopath/internal/convert"
	"geopath/internal/geom"
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

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data. size is the output canvas the converter measures the path on;
	// the terminal map is projected separately.
	size   canvas.Size
	coll   geom.Collection
	ex     geom.Extraction
	bbox   geom.BBox
	path   canvas.Path
	loaded bool

	// last rendered map size (for inspect)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	layers layers

	// inspect popup
	inspectPopup string

	hover hover

	// attributes table
	showAttrs bool
	tbl       table.Model

	log *zap.Logger
}

// layers toggles what renderAsciiMap draws for each ring.
type layers struct {
	outline, fill, vertices bool
}

// hover is the mouse position over the map. dot is the microgrid position
// of the highlighted vertex, or the cell origin when there is none.
type hover struct {
	active   bool
	cell     [2]int
	dot      [2]int
	hasGeo   bool
	lon, lat float64
}

// New returns an empty previewer. size is the canvas the path statistics
// are reported against.
func New(size canvas.Size, log *zap.Logger) Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "geopath ready",
		size:        size,
		layers:      layers{outline: true, fill: true},
		log:         log,
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
	m.ta.Placeholder = "Paste a GeoJSON FeatureCollection here. Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// attributes table setup (columns are inferred per dataset)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(path string, size canvas.Size, log *zap.Logger) Model {
	m := New(size, log)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// setCollection runs the converter over c and, on success, replaces the
// displayed dataset and resets the viewport.
func (m *Model) setCollection(c geom.Collection, label string) bool {
	res, err := convert.Run(c, convert.Options{Size: m.size}, m.log)
	if err != nil {
		m.status = "convert error: " + err.Error()
		return false
	}
	m.coll, m.ex, m.bbox, m.path = c, res.Extraction, res.BBox, res.Path
	m.loaded = true
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.inspectPopup = ""
	m.status = label + "  " + m.counts()
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
	return true
}

func (m Model) counts() string {
	parts := []string{
		fmt.Sprintf("features=%d", len(m.coll.Features)),
		fmt.Sprintf("rings=%d", len(m.ex.Rings)),
		fmt.Sprintf("pts=%d", m.ex.Points()),
	}
	if n := len(m.ex.Skipped); n > 0 {
		parts = append(parts, fmt.Sprintf("skipped=%d", n))
	}
	return strings.Join(parts, " ")
}
