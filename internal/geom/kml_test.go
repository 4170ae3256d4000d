package geom_test

import (
	"os"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geopath/internal/geom"
)

func TestDecodeKML(t *testing.T) {
	fh, err := os.Open("testdata/boundary.kml")
	require.NoError(t, err)
	defer fh.Close()

	c, err := geom.DecodeKML(fh)
	require.NoError(t, err)
	require.Len(t, c.Features, 3)

	square := c.Features[0]
	poly, ok := square.Shape.(geom.Polygon)
	require.True(t, ok, "got %T", square.Shape)
	require.Len(t, poly.Rings, 2)
	assert.Equal(t, orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}, poly.Rings[0])
	assert.Equal(t, "Square", square.Properties["name"])
	assert.Equal(t, "unit square with a hole", square.Properties["description"])

	islands, ok := c.Features[1].Shape.(geom.MultiPolygon)
	require.True(t, ok)
	require.Len(t, islands.Polygons, 2)
	assert.Equal(t, orb.Point{30, 30}, islands.Polygons[1][0][0])

	assert.Equal(t, geom.Kind("Point"), c.Features[2].Shape.Kind())
}

func TestDecodeKMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "no placemarks", doc: `<kml><Document><name>x</name></Document></kml>`},
		{name: "bad tuple", doc: `<kml><Placemark><Polygon><outerBoundaryIs><LinearRing><coordinates>1 2 3</coordinates></LinearRing></outerBoundaryIs></Polygon></Placemark></kml>`},
		{name: "not a number", doc: `<kml><Placemark><Polygon><outerBoundaryIs><LinearRing><coordinates>a,b</coordinates></LinearRing></outerBoundaryIs></Polygon></Placemark></kml>`},
		{name: "infinite", doc: `<kml><Placemark><Polygon><outerBoundaryIs><LinearRing><coordinates>0,0 +Inf,0 1,1</coordinates></LinearRing></outerBoundaryIs></Polygon></Placemark></kml>`},
		{name: "truncated", doc: `<kml><Placemark><Polygon>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := geom.DecodeKML(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, geom.ErrInputRead)
		})
	}
}
