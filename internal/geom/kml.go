package geom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

type kmlRing struct {
	Coordinates string `xml:"LinearRing>coordinates"`
}

type kmlPolygon struct {
	Outer kmlRing   `xml:"outerBoundaryIs"`
	Inner []kmlRing `xml:"innerBoundaryIs"`
}

type kmlPlacemark struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`
	Polygon     *kmlPolygon
	Multi       *struct {
		Polygons []kmlPolygon `xml:"Polygon"`
	} `xml:"MultiGeometry"`
	Point      *struct{} `xml:"Point"`
	LineString *struct{} `xml:"LineString"`
}

// DecodeKML extracts one feature per Placemark, wherever it sits in the
// Document/Folder tree. KML coordinates are "lon,lat[,alt]"; altitude is
// ignored.
func DecodeKML(r io.Reader) (Collection, error) {
	var c Collection
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Collection{}, fmt.Errorf("%w: kml: %w", ErrInputRead, err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var pm kmlPlacemark
		if err := dec.DecodeElement(&pm, &se); err != nil {
			return Collection{}, fmt.Errorf("%w: kml: %w", ErrInputRead, err)
		}
		f, err := pm.feature()
		if err != nil {
			return Collection{}, fmt.Errorf("%w: kml: placemark %d: %w", ErrInputRead, len(c.Features), err)
		}
		c.Features = append(c.Features, f)
	}
	if len(c.Features) == 0 {
		return Collection{}, fmt.Errorf("%w: kml: no placemarks found", ErrInputRead)
	}
	return c, nil
}

func (pm kmlPlacemark) feature() (Feature, error) {
	props := map[string]any{}
	if pm.Name != "" {
		props["name"] = pm.Name
	}
	if d := strings.TrimSpace(pm.Description); d != "" {
		props["description"] = d
	}
	f := Feature{Properties: props}
	switch {
	case pm.Polygon != nil:
		poly, err := pm.Polygon.rings()
		if err != nil {
			return Feature{}, err
		}
		f.Shape = Polygon{Rings: poly}
	case pm.Multi != nil && len(pm.Multi.Polygons) > 0:
		mp := make(orb.MultiPolygon, 0, len(pm.Multi.Polygons))
		for _, p := range pm.Multi.Polygons {
			poly, err := p.rings()
			if err != nil {
				return Feature{}, err
			}
			mp = append(mp, poly)
		}
		f.Shape = MultiPolygon{Polygons: mp}
	case pm.Multi != nil:
		f.Shape = Unsupported{Type: "MultiGeometry"}
	case pm.Point != nil:
		f.Shape = Unsupported{Type: "Point"}
	case pm.LineString != nil:
		f.Shape = Unsupported{Type: "LineString"}
	default:
		f.Shape = Unsupported{}
	}
	return f, nil
}

func (p kmlPolygon) rings() (orb.Polygon, error) {
	outer, err := parseKMLCoords(p.Outer.Coordinates)
	if err != nil {
		return nil, err
	}
	poly := orb.Polygon{outer}
	for _, in := range p.Inner {
		ring, err := parseKMLCoords(in.Coordinates)
		if err != nil {
			return nil, err
		}
		poly = append(poly, ring)
	}
	return poly, nil
}

// parseKMLCoords splits whitespace separated "lon,lat[,alt]" tuples.
func parseKMLCoords(s string) (orb.Ring, error) {
	parts := strings.Fields(s)
	ring := make(orb.Ring, 0, len(parts))
	for _, tuple := range parts {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			return nil, fmt.Errorf("bad coordinate tuple %q", tuple)
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		pt := orb.Point{lon, lat}
		if err1 != nil || err2 != nil || !finite(pt) {
			return nil, fmt.Errorf("bad coordinate tuple %q", tuple)
		}
		ring = append(ring, pt)
	}
	return ring, nil
}
