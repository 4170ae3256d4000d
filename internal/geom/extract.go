package geom

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Ring is one outer boundary, tagged with the feature it came from and its
// position among that shape's outer rings.
type Ring struct {
	Feature int
	Index   int
	Coords  orb.Ring
}

// Skipped records a feature whose shape has no outline to draw.
type Skipped struct {
	Feature int
	Kind    Kind
}

// Extraction is the result of one walk over a collection. Both the bbox
// and the path are computed from it, so the input is only traversed once.
type Extraction struct {
	Rings   []Ring
	Skipped []Skipped
}

// Points returns the total number of coordinates across all rings.
func (e Extraction) Points() int {
	n := 0
	for _, r := range e.Rings {
		n += len(r.Coords)
	}
	return n
}

// Extract walks the collection in feature order and collects outer rings.
// It does not modify c and returns the same result every time it is called
// on the same collection.
func Extract(c Collection) Extraction {
	var ex Extraction
	for i, f := range c.Features {
		shape := f.Geometry()
		rings, ok := OuterRings(shape)
		if !ok {
			ex.Skipped = append(ex.Skipped, Skipped{Feature: i, Kind: shape.Kind()})
			continue
		}
		for j, r := range rings {
			ex.Rings = append(ex.Rings, Ring{Feature: i, Index: j, Coords: r})
		}
	}
	return ex
}

// OuterRings returns the rings of s that get drawn: the first ring of a
// Polygon, the first ring of each polygon in a MultiPolygon. ok is false for
// Unsupported shapes.
func OuterRings(s Shape) (rings []orb.Ring, ok bool) {
	switch s := s.(type) {
	case Polygon:
		if len(s.Rings) == 0 {
			return nil, true
		}
		return []orb.Ring{s.Rings[0]}, true
	case MultiPolygon:
		rings = make([]orb.Ring, 0, len(s.Polygons))
		for _, p := range s.Polygons {
			if len(p) > 0 {
				rings = append(rings, p[0])
			}
		}
		return rings, true
	case Unsupported:
		return nil, false
	}
	panic(fmt.Sprintf("geom: unhandled shape %T", s))
}

// Bounds scans every coordinate of every ring once. The first coordinate
// seeds the box.
func Bounds(rings []Ring) (BBox, error) {
	var (
		b      orb.Bound
		seeded bool
	)
	for _, r := range rings {
		for _, p := range r.Coords {
			if !seeded {
				b, seeded = p.Bound(), true
				continue
			}
			b = b.Extend(p)
		}
	}
	if !seeded {
		return BBox{}, ErrNoGeometry
	}
	return BBox{MinX: b.Min.X(), MinY: b.Min.Y(), MaxX: b.Max.X(), MaxY: b.Max.Y()}, nil
}
