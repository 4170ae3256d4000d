package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/paulmach/orb"
)

// DecodeGeoJSON reads a FeatureCollection, a single Feature or a bare
// geometry object. The top-level and per-feature "type" members are
// optional: an object with a "features" array is treated as a collection.
func DecodeGeoJSON(r io.Reader) (Collection, error) {
	var raw map[string]any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return Collection{}, fmt.Errorf("%w: geojson: %w", ErrInputRead, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Collection{}, fmt.Errorf("%w: geojson: trailing data after document", ErrInputRead)
	}
	if raw == nil {
		return Collection{}, fmt.Errorf("%w: geojson: document is null", ErrInputRead)
	}

	parsePoint := func(v any) (orb.Point, bool) {
		a, ok := v.([]any)
		if !ok || len(a) < 2 {
			return orb.Point{}, false
		}
		lon, lok := a[0].(float64)
		lat, aok := a[1].(float64)
		if !lok || !aok {
			return orb.Point{}, false
		}
		return orb.Point{lon, lat}, true
	}
	parseRing := func(v any) (orb.Ring, bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		ring := make(orb.Ring, 0, len(arr))
		for _, el := range arr {
			pt, ok := parsePoint(el)
			if !ok {
				return nil, false
			}
			ring = append(ring, pt)
		}
		return ring, true
	}
	parsePolygon := func(v any) (orb.Polygon, bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		poly := make(orb.Polygon, 0, len(arr))
		for _, el := range arr {
			ring, ok := parseRing(el)
			if !ok {
				return nil, false
			}
			poly = append(poly, ring)
		}
		return poly, true
	}
	parseMultiPolygon := func(v any) (orb.MultiPolygon, bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		mp := make(orb.MultiPolygon, 0, len(arr))
		for _, el := range arr {
			poly, ok := parsePolygon(el)
			if !ok {
				return nil, false
			}
			mp = append(mp, poly)
		}
		return mp, true
	}
	parseGeom := func(g map[string]any) (Shape, error) {
		if g == nil {
			return Unsupported{}, nil
		}
		gt, ok := g["type"].(string)
		if !ok {
			return nil, errors.New("geometry has no type")
		}
		switch gt {
		case string(KindPolygon):
			poly, ok := parsePolygon(g["coordinates"])
			if !ok {
				return nil, errors.New("malformed Polygon coordinates")
			}
			return Polygon{Rings: poly}, nil
		case string(KindMultiPolygon):
			mp, ok := parseMultiPolygon(g["coordinates"])
			if !ok {
				return nil, errors.New("malformed MultiPolygon coordinates")
			}
			return MultiPolygon{Polygons: mp}, nil
		}
		return Unsupported{Type: gt}, nil
	}
	parseFeature := func(v any) (Feature, error) {
		fm, ok := v.(map[string]any)
		if !ok {
			return Feature{}, errors.New("feature is not an object")
		}
		var g map[string]any
		if gv, present := fm["geometry"]; present && gv != nil {
			if g, ok = gv.(map[string]any); !ok {
				return Feature{}, errors.New("geometry is not an object")
			}
		}
		shape, err := parseGeom(g)
		if err != nil {
			return Feature{}, err
		}
		props, _ := fm["properties"].(map[string]any)
		return Feature{Shape: shape, Properties: props}, nil
	}

	var features []any
	t, _ := raw["type"].(string)
	_, hasFeatures := raw["features"]
	switch {
	case t == "Feature":
		features = []any{raw}
	case t == "FeatureCollection" || hasFeatures:
		fs, ok := raw["features"].([]any)
		if !ok {
			return Collection{}, fmt.Errorf("%w: geojson: features is not an array", ErrInputRead)
		}
		features = fs
	case t != "":
		shape, err := parseGeom(raw)
		if err != nil {
			return Collection{}, fmt.Errorf("%w: geojson: %w", ErrInputRead, err)
		}
		return Collection{Features: []Feature{{Shape: shape}}}, nil
	default:
		return Collection{}, fmt.Errorf("%w: geojson: missing features", ErrInputRead)
	}

	c := Collection{Features: make([]Feature, 0, len(features))}
	for i, f := range features {
		feat, err := parseFeature(f)
		if err != nil {
			return Collection{}, fmt.Errorf("%w: geojson: feature %d: %w", ErrInputRead, i, err)
		}
		c.Features = append(c.Features, feat)
	}
	return c, nil
}
