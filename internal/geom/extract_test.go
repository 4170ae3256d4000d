package geom_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geopath/internal/geom"
)

func sampleCollection() geom.Collection {
	return geom.Collection{Features: []geom.Feature{
		{Shape: geom.Polygon{Rings: orb.Polygon{
			{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
			{{2, 2}, {3, 2}, {3, 3}},
		}}},
		{Shape: geom.Unsupported{Type: "Point"}},
		{Shape: geom.MultiPolygon{Polygons: orb.MultiPolygon{
			{{{20, -5}, {25, -5}, {25, 0}}},
			{},
			{{{30, 30}, {31, 30}, {31, 31}}, {{30.5, 30.5}, {30.6, 30.5}, {30.6, 30.6}}},
		}}},
		{Shape: geom.Unsupported{}},
		{Shape: geom.Polygon{}},
	}}
}

func TestExtract(t *testing.T) {
	c := sampleCollection()
	ex := geom.Extract(c)

	require.Len(t, ex.Rings, 3)
	assert.Equal(t, geom.Ring{Feature: 0, Index: 0, Coords: orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}, ex.Rings[0])
	assert.Equal(t, geom.Ring{Feature: 2, Index: 0, Coords: orb.Ring{{20, -5}, {25, -5}, {25, 0}}}, ex.Rings[1])
	assert.Equal(t, geom.Ring{Feature: 2, Index: 1, Coords: orb.Ring{{30, 30}, {31, 30}, {31, 31}}}, ex.Rings[2])
	assert.Equal(t, 10, ex.Points())

	assert.Equal(t, []geom.Skipped{
		{Feature: 1, Kind: "Point"},
		{Feature: 3, Kind: "null"},
	}, ex.Skipped)

	// Extraction is repeatable and leaves the input alone.
	assert.Equal(t, ex, geom.Extract(c))
	assert.Equal(t, sampleCollection(), c)
}

func TestExtractFeatureWithoutShape(t *testing.T) {
	c := geom.Collection{Features: []geom.Feature{{}, sampleCollection().Features[0]}}

	ex := geom.Extract(c)
	assert.Equal(t, []geom.Skipped{{Feature: 0, Kind: "null"}}, ex.Skipped)
	require.Len(t, ex.Rings, 1)
	assert.Equal(t, 1, ex.Rings[0].Feature)
	assert.Equal(t, 1, c.Count("null"))
	assert.Equal(t, geom.Unsupported{}, c.Features[0].Geometry())
}

func TestOuterRings(t *testing.T) {
	rings, ok := geom.OuterRings(geom.Polygon{Rings: orb.Polygon{{{1, 1}, {2, 2}, {3, 1}}, {{0, 0}}}})
	require.True(t, ok)
	assert.Equal(t, []orb.Ring{{{1, 1}, {2, 2}, {3, 1}}}, rings)

	rings, ok = geom.OuterRings(geom.Polygon{})
	assert.True(t, ok)
	assert.Empty(t, rings)

	_, ok = geom.OuterRings(geom.Unsupported{Type: "LineString"})
	assert.False(t, ok)

	assert.Panics(t, func() { geom.OuterRings(nil) })
}

func TestBounds(t *testing.T) {
	ex := geom.Extract(sampleCollection())
	b, err := geom.Bounds(ex.Rings)
	require.NoError(t, err)
	assert.Equal(t, geom.BBox{MinX: 0, MinY: -5, MaxX: 31, MaxY: 31}, b)
	assert.Equal(t, 31.0, b.Width())
	assert.Equal(t, 36.0, b.Height())
	assert.Equal(t, "lon [0, 31], lat [-5, 31]", b.String())

	b, err = geom.Bounds([]geom.Ring{{Coords: orb.Ring{{5, 5}, {6, 6}}}})
	require.NoError(t, err)
	assert.Equal(t, geom.BBox{MinX: 5, MinY: 5, MaxX: 6, MaxY: 6}, b)

	b, err = geom.Bounds([]geom.Ring{{Coords: orb.Ring{{-3, 7}}}})
	require.NoError(t, err)
	assert.Equal(t, geom.BBox{MinX: -3, MinY: 7, MaxX: -3, MaxY: 7}, b)

	_, err = geom.Bounds(nil)
	assert.ErrorIs(t, err, geom.ErrNoGeometry)

	_, err = geom.Bounds([]geom.Ring{{Coords: orb.Ring{}}})
	assert.ErrorIs(t, err, geom.ErrNoGeometry)
}
