package geom

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// DecodeWKT reads one geometry per non-empty line. POLYGON and MULTIPOLYGON
// are decoded; any other tag becomes an Unsupported feature. An optional
// "SRID=n;" prefix and Z/M dimension suffixes are accepted and ignored.
func DecodeWKT(r io.Reader) (Collection, error) {
	var c Collection
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		shape, err := ParseWKT(s)
		if err != nil {
			return Collection{}, fmt.Errorf("%w: line %d: %w", ErrInputRead, line, err)
		}
		c.Features = append(c.Features, Feature{Shape: shape})
	}
	if err := sc.Err(); err != nil {
		return Collection{}, fmt.Errorf("%w: wkt: %w", ErrInputRead, err)
	}
	if len(c.Features) == 0 {
		return Collection{}, fmt.Errorf("%w: wkt: empty input", ErrInputRead)
	}
	return c, nil
}

// ParseWKT parses a single WKT geometry into a Shape.
func ParseWKT(wkt string) (Shape, error) {
	s := strings.TrimSpace(wkt)
	if _, rest, ok := strings.Cut(s, ";"); ok && strings.HasPrefix(strings.ToUpper(s), "SRID=") {
		s = strings.TrimSpace(rest)
	}
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	head, body := s, ""
	if i := strings.Index(s, "("); i >= 0 {
		j := strings.LastIndex(s, ")")
		if j < i {
			return nil, errors.New("wkt: unbalanced parentheses")
		}
		head, body = s[:i], s[i+1:j]
	}
	fields := strings.Fields(strings.ToUpper(head))
	if len(fields) == 0 {
		return nil, errors.New("wkt: missing geometry tag")
	}
	tag := fields[0]
	empty := fields[len(fields)-1] == "EMPTY"
	if !empty && !strings.Contains(s, "(") && (tag == "POLYGON" || tag == "MULTIPOLYGON") {
		return nil, fmt.Errorf("wkt %s: missing coordinates", strings.ToLower(tag))
	}

	switch tag {
	case "POLYGON":
		if empty {
			return Polygon{}, nil
		}
		poly, err := parseWKTPolygon(body)
		if err != nil {
			return nil, fmt.Errorf("wkt polygon: %w", err)
		}
		return Polygon{Rings: poly}, nil
	case "MULTIPOLYGON":
		if empty {
			return MultiPolygon{}, nil
		}
		groups, err := wktGroups(body)
		if err != nil {
			return nil, fmt.Errorf("wkt multipolygon: %w", err)
		}
		mp := make(orb.MultiPolygon, 0, len(groups))
		for _, g := range groups {
			poly, err := parseWKTPolygon(g)
			if err != nil {
				return nil, fmt.Errorf("wkt multipolygon: %w", err)
			}
			mp = append(mp, poly)
		}
		return MultiPolygon{Polygons: mp}, nil
	}
	kind, ok := wktKinds[tag]
	if !ok {
		kind = tag
	}
	return Unsupported{Type: kind}, nil
}

// wktKinds maps WKT tags onto the GeoJSON names used everywhere else.
var wktKinds = map[string]string{
	"POINT":              "Point",
	"MULTIPOINT":         "MultiPoint",
	"LINESTRING":         "LineString",
	"MULTILINESTRING":    "MultiLineString",
	"GEOMETRYCOLLECTION": "GeometryCollection",
}

// parseWKTPolygon parses "(x y, ...), (x y, ...)", the body of a POLYGON.
func parseWKTPolygon(body string) (orb.Polygon, error) {
	groups, err := wktGroups(body)
	if err != nil {
		return nil, err
	}
	poly := make(orb.Polygon, 0, len(groups))
	for _, g := range groups {
		ring, err := parseWKTTuples(g)
		if err != nil {
			return nil, err
		}
		poly = append(poly, ring)
	}
	return poly, nil
}

// wktGroups returns the contents of each top-level parenthesised group.
func wktGroups(s string) ([]string, error) {
	var out []string
	depth, start := 0, 0
	for i, ch := range s {
		switch ch {
		case '(':
			if depth == 0 {
				start = i + 1
			}
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, errors.New("unbalanced parentheses")
			}
			if depth == 0 {
				out = append(out, s[start:i])
			}
		case ',', ' ', '\t', '\r', '\n':
		default:
			if depth == 0 {
				return nil, fmt.Errorf("unexpected %q outside parentheses", ch)
			}
		}
	}
	if depth != 0 {
		return nil, errors.New("unbalanced parentheses")
	}
	return out, nil
}

// parseWKTTuples parses "x y[ z[ m]], ..." keeping x and y.
func parseWKTTuples(block string) (orb.Ring, error) {
	tuples := strings.Split(block, ",")
	ring := make(orb.Ring, 0, len(tuples))
	for _, tup := range tuples {
		parts := strings.Fields(tup)
		if len(parts) < 2 {
			return nil, fmt.Errorf("bad coordinate %q", strings.TrimSpace(tup))
		}
		x, err1 := strconv.ParseFloat(parts[0], 64)
		y, err2 := strconv.ParseFloat(parts[1], 64)
		pt := orb.Point{x, y}
		if err1 != nil || err2 != nil || !finite(pt) {
			return nil, fmt.Errorf("bad coordinate %q", strings.TrimSpace(tup))
		}
		ring = append(ring, pt)
	}
	return ring, nil
}
