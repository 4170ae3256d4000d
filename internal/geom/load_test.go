package geom_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geopath/internal/geom"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want geom.Format
		ok   bool
	}{
		{path: "-", want: geom.FormatGeoJSON, ok: true},
		{path: "berlin_boundary.geojson", want: geom.FormatGeoJSON, ok: true},
		{path: "dir/Data.JSON", want: geom.FormatGeoJSON, ok: true},
		{path: "doc.kml", want: geom.FormatKML, ok: true},
		{path: "shapes.wkt", want: geom.FormatWKT, ok: true},
		{path: "points.csv"},
		{path: "README"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := geom.FormatFor(tt.path)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
	assert.Equal(t, "kml", geom.FormatKML.String())
}

func TestLoadTestdata(t *testing.T) {
	tests := []struct {
		file     string
		features int
		polygons int
		multi    int
	}{
		{file: "square.geojson", features: 1, polygons: 1},
		{file: "districts.geojson", features: 3, polygons: 1, multi: 1},
		{file: "boundary.kml", features: 3, polygons: 1, multi: 1},
		{file: "shapes.wkt", features: 3, polygons: 1, multi: 1},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			c, err := geom.Load(filepath.Join("testdata", tt.file))
			require.NoError(t, err)
			assert.Len(t, c.Features, tt.features)
			assert.Equal(t, tt.polygons, c.Count(geom.KindPolygon))
			assert.Equal(t, tt.multi, c.Count(geom.KindMultiPolygon))
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := geom.Load(filepath.Join(t.TempDir(), "missing.geojson"))
	assert.ErrorIs(t, err, geom.ErrInputRead)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = geom.Load("testdata/points.csv")
	assert.ErrorIs(t, err, geom.ErrInputRead)

	bad := filepath.Join(t.TempDir(), "bad.geojson")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0o644))
	_, err = geom.Load(bad)
	assert.ErrorIs(t, err, geom.ErrInputRead)
}
