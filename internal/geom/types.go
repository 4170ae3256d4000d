package geom

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// BBox is the lon/lat extent of a collection. X is longitude, Y latitude.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// String renders the box the way it is reported on the diagnostic stream.
func (b BBox) String() string {
	return fmt.Sprintf("lon [%g, %g], lat [%g, %g]", b.MinX, b.MaxX, b.MinY, b.MaxY)
}

// finite reports whether both coordinates of p are real numbers.
func finite(p orb.Point) bool {
	return !math.IsInf(p[0], 0) && !math.IsNaN(p[0]) && !math.IsInf(p[1], 0) && !math.IsNaN(p[1])
}

// Kind names the geometry type a shape was decoded from.
type Kind string

const (
	KindPolygon      Kind = "Polygon"
	KindMultiPolygon Kind = "MultiPolygon"
)

// Shape is one of Polygon, MultiPolygon or Unsupported. The set is closed:
// every consumer switches over exactly these three.
type Shape interface {
	Kind() Kind
	shape()
}

// Polygon keeps every ring it was decoded with, but only the first one, the
// outer boundary, is ever drawn. Holes are out of scope.
type Polygon struct {
	Rings orb.Polygon
}

// MultiPolygon contributes the outer ring of each of its polygons.
type MultiPolygon struct {
	Polygons orb.MultiPolygon
}

// Unsupported stands in for a geometry with no outline to draw (points,
// lines, collections, or a missing geometry).
type Unsupported struct {
	Type string
}

func (Polygon) Kind() Kind      { return KindPolygon }
func (MultiPolygon) Kind() Kind { return KindMultiPolygon }
func (u Unsupported) Kind() Kind {
	if u.Type == "" {
		return "null"
	}
	return Kind(u.Type)
}

func (Polygon) shape()      {}
func (MultiPolygon) shape() {}
func (Unsupported) shape()  {}

// Feature is a shape plus whatever attributes the source carried for it.
type Feature struct {
	Shape      Shape
	Properties map[string]any
}

// Geometry returns the feature's shape; a feature without one is a null
// geometry.
func (f Feature) Geometry() Shape {
	if f.Shape == nil {
		return Unsupported{}
	}
	return f.Shape
}

// Collection is an ordered list of features. Order is preserved all the way
// to the emitted path.
type Collection struct {
	Features []Feature
}

// Count returns how many features have a shape of kind k.
func (c Collection) Count(k Kind) int {
	n := 0
	for _, f := range c.Features {
		if f.Geometry().Kind() == k {
			n++
		}
	}
	return n
}
