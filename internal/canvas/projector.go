// Package canvas maps geographic coordinates onto a fixed-size drawing
// surface and describes the result as a vector path.
package canvas

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"geopath/internal/geom"
)

var (
	ErrDegenerateBBox = errors.New("canvas: degenerate bounding box")
	ErrInvalidSize    = errors.New("canvas: invalid size")
)

// Size is the drawing surface in output units.
type Size struct {
	Width  float64
	Height float64
}

// Validate reports sizes that cannot be projected onto.
func (s Size) Validate() error {
	ok := func(v float64) bool { return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v) }
	if !ok(s.Width) || !ok(s.Height) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidSize, s.Width, s.Height)
	}
	return nil
}

// Point is a position on the canvas. Y grows downward.
type Point struct {
	X float64
	Y float64
}

// Projection maps a lon/lat coordinate onto the canvas.
type Projection interface {
	Project(orb.Point) Point
}

// Projector scales each axis of a bbox independently onto a canvas, so the
// aspect ratio of the input is not kept.
type Projector struct {
	bbox geom.BBox
	size Size
}

// NewProjector fails with ErrDegenerateBBox when either axis of bbox has no
// extent or an extent that is not a finite number.
func NewProjector(bbox geom.BBox, size Size) (*Projector, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	extent := func(v float64) bool { return v > 0 && !math.IsInf(v, 0) }
	if !extent(bbox.Width()) || !extent(bbox.Height()) {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateBBox, bbox)
	}
	return &Projector{bbox: bbox, size: size}, nil
}

func (p *Projector) BBox() geom.BBox { return p.bbox }
func (p *Projector) Size() Size      { return p.size }

// Project maps lon/lat onto the canvas, flipping Y so north is up.
func (p *Projector) Project(c orb.Point) Point {
	nx := (c.X() - p.bbox.MinX) / p.bbox.Width()
	ny := (c.Y() - p.bbox.MinY) / p.bbox.Height()
	return Point{
		X: nx * p.size.Width,
		Y: p.size.Height - ny*p.size.Height,
	}
}

// Unproject is the inverse of Project.
func (p *Projector) Unproject(pt Point) orb.Point {
	nx := pt.X / p.size.Width
	ny := (p.size.Height - pt.Y) / p.size.Height
	return orb.Point{
		p.bbox.MinX + nx*p.bbox.Width(),
		p.bbox.MinY + ny*p.bbox.Height(),
	}
}
