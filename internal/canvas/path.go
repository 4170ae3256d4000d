package canvas

import (
	"fmt"
	"math"
	"strconv"

	"geopath/internal/geom"
)

// Op is a path drawing operation.
type Op uint8

const (
	MoveTo Op = iota
	LineTo
	ClosePath
)

// Letter returns the SVG path command letter.
func (o Op) Letter() byte {
	switch o {
	case MoveTo:
		return 'M'
	case LineTo:
		return 'L'
	case ClosePath:
		return 'Z'
	}
	panic(fmt.Sprintf("canvas: unknown op %d", o))
}

func (o Op) String() string {
	switch o {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case ClosePath:
		return "ClosePath"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Command is one path instruction. Pt is unused for ClosePath.
type Command struct {
	Op Op
	Pt Point
}

// Path is an ordered list of commands, one closed subpath per ring.
type Path []Command

// Build projects each ring in order into MoveTo, LineTo..., ClosePath.
// Rings without coordinates produce nothing.
func Build(rings []geom.Ring, proj Projection) Path {
	n := 0
	for _, r := range rings {
		if len(r.Coords) > 0 {
			n += len(r.Coords) + 1
		}
	}
	p := make(Path, 0, n)
	for _, r := range rings {
		if len(r.Coords) == 0 {
			continue
		}
		p = append(p, Command{Op: MoveTo, Pt: proj.Project(r.Coords[0])})
		for _, c := range r.Coords[1:] {
			p = append(p, Command{Op: LineTo, Pt: proj.Project(c)})
		}
		p = append(p, Command{Op: ClosePath})
	}
	return p
}

// Subpaths returns the number of closed subpaths.
func (p Path) Subpaths() int {
	n := 0
	for _, c := range p {
		if c.Op == ClosePath {
			n++
		}
	}
	return n
}

// Length is the total outline length in canvas units, closing segments
// included.
func (p Path) Length() float64 {
	var (
		total       float64
		start, prev Point
	)
	for _, c := range p {
		switch c.Op {
		case MoveTo:
			start, prev = c.Pt, c.Pt
		case LineTo:
			total += math.Hypot(c.Pt.X-prev.X, c.Pt.Y-prev.Y)
			prev = c.Pt
		case ClosePath:
			total += math.Hypot(start.X-prev.X, start.Y-prev.Y)
			prev = start
		}
	}
	return total
}

// AppendText appends the SVG path data to b: "M x y L x y ... Z", numbers
// fixed to two decimals, tokens separated by single spaces.
func (p Path) AppendText(b []byte) []byte {
	for i, c := range p {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, c.Op.Letter())
		if c.Op == ClosePath {
			continue
		}
		b = append(b, ' ')
		b = strconv.AppendFloat(b, c.Pt.X, 'f', 2, 64)
		b = append(b, ' ')
		b = strconv.AppendFloat(b, c.Pt.Y, 'f', 2, 64)
	}
	return b
}

func (p Path) String() string {
	return string(p.AppendText(make([]byte, 0, len(p)*16)))
}
