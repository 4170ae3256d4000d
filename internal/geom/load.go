package geom

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies an input encoding.
type Format int

const (
	FormatGeoJSON Format = iota
	FormatKML
	FormatWKT
)

func (f Format) String() string {
	switch f {
	case FormatGeoJSON:
		return "geojson"
	case FormatKML:
		return "kml"
	case FormatWKT:
		return "wkt"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFor picks the decoder for a file from its extension. "-" means
// GeoJSON on standard input.
func FormatFor(path string) (Format, bool) {
	if path == "-" {
		return FormatGeoJSON, true
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return FormatGeoJSON, true
	case ".kml":
		return FormatKML, true
	case ".wkt":
		return FormatWKT, true
	}
	return 0, false
}

// Decode reads a collection in the given format.
func Decode(r io.Reader, f Format) (Collection, error) {
	switch f {
	case FormatGeoJSON:
		return DecodeGeoJSON(r)
	case FormatKML:
		return DecodeKML(r)
	case FormatWKT:
		return DecodeWKT(r)
	}
	return Collection{}, fmt.Errorf("%w: unknown format %v", ErrInputRead, f)
}

// Load reads a boundary file. "-" reads GeoJSON from standard input.
func Load(path string) (Collection, error) {
	f, ok := FormatFor(path)
	if !ok {
		return Collection{}, fmt.Errorf("%w: unsupported file: %s", ErrInputRead, path)
	}
	if path == "-" {
		return Decode(os.Stdin, f)
	}
	fh, err := os.Open(path)
	if err != nil {
		return Collection{}, fmt.Errorf("%w: %w", ErrInputRead, err)
	}
	defer fh.Close()
	return Decode(fh, f)
}
