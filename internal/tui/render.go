package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/paulmach/orb"

	"geopath/internal/canvas"
)

// viewport projects lon/lat onto the braille microgrid (2x4 dots per cell)
// of a w x h cell map, then applies zoom around the centre and pan.
type viewport struct {
	proj *canvas.Projector
	zoom float64
	offX float64
	offY float64
}

func (m Model) viewport(w, h int) (viewport, bool) {
	if !m.loaded || w <= 1 || h <= 1 {
		return viewport{}, false
	}
	proj, err := canvas.NewProjector(m.bbox, canvas.Size{Width: float64(w*2 - 1), Height: float64(h*4 - 1)})
	if err != nil {
		return viewport{}, false
	}
	return viewport{proj: proj, zoom: m.zoom, offX: float64(m.offsetX * 2), offY: float64(m.offsetY * 4)}, true
}

func (v viewport) Project(p orb.Point) canvas.Point {
	q := v.proj.Project(p)
	s := v.proj.Size()
	return canvas.Point{
		X: s.Width/2 + (q.X-s.Width/2)*v.zoom + v.offX,
		Y: s.Height/2 + (q.Y-s.Height/2)*v.zoom + v.offY,
	}
}

func (v viewport) Unproject(pt canvas.Point) orb.Point {
	s := v.proj.Size()
	return v.proj.Unproject(canvas.Point{
		X: s.Width/2 + (pt.X-v.offX-s.Width/2)/v.zoom,
		Y: s.Height/2 + (pt.Y-v.offY-s.Height/2)/v.zoom,
	})
}

// cellToLonLat converts a map cell coordinate back to lon/lat.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	vp, ok := m.viewport(w, h)
	if !ok {
		return 0, 0, false
	}
	p := vp.Unproject(canvas.Point{X: float64(cx * 2), Y: float64(cy * 4)})
	return p.X(), p.Y(), true
}

// subpaths splits a path into its closed rings of rounded microgrid points.
func subpaths(p canvas.Path) [][][2]int {
	var (
		out [][][2]int
		cur [][2]int
	)
	for _, c := range p {
		switch c.Op {
		case canvas.MoveTo:
			cur = [][2]int{micro(c.Pt)}
		case canvas.LineTo:
			cur = append(cur, micro(c.Pt))
		case canvas.ClosePath:
			out = append(out, cur)
			cur = nil
		}
	}
	return out
}

func micro(p canvas.Point) [2]int {
	return [2]int{int(math.Round(p.X)), int(math.Round(p.Y))}
}

func (m Model) renderAsciiMap(w, h int) string {
	br := newBrailleBuf(w, h)
	if vp, ok := m.viewport(w, h); ok {
		// the same path the converter emits, projected onto the terminal
		for _, ring := range subpaths(canvas.Build(m.ex.Rings, vp)) {
			if m.layers.fill && len(ring) >= 3 {
				br.fillRing(ring)
			}
			if m.layers.outline {
				for i := range ring {
					a := ring[i]
					b := ring[(i+1)%len(ring)]
					br.drawLineMicro(a[0], a[1], b[0], b[1])
				}
			}
			if m.layers.vertices {
				for _, p := range ring {
					br.setPixel(p[0], p[1])
				}
			}
		}
	}
	lines := br.toLines()

	// mark the hovered vertex
	if m.hover.active {
		cx := m.hover.dot[0] / 2
		cy := m.hover.dot[1] / 4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				circle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("◯")
				lines[cy] = string(r[:cx]) + circle + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}

// nearestVertex finds the ring vertex closest to microgrid position (mx, my).
func (m Model) nearestVertex(mx, my, w, h int) (vertex orb.Point, at [2]int, ok bool) {
	vp, ok := m.viewport(w, h)
	if !ok {
		return orb.Point{}, [2]int{}, false
	}
	best := math.MaxInt
	for _, r := range m.ex.Rings {
		for _, c := range r.Coords {
			p := micro(vp.Project(c))
			dx, dy := p[0]-mx, p[1]-my
			if d := dx*dx + dy*dy; d < best {
				best, vertex, at = d, c, p
			}
		}
	}
	return vertex, at, best != math.MaxInt
}

// inspectNearest finds the vertex closest to the viewport center.
func (m Model) inspectNearest() (lon, lat float64, ok bool) {
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	p, _, ok := m.nearestVertex(w, h*2, w, h)
	return p.X(), p.Y(), ok
}
