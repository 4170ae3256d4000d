package convert_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"geopath/internal/canvas"
	"geopath/internal/convert"
	"geopath/internal/geom"
)

var defaultOpts = convert.Options{Size: canvas.Size{Width: 700, Height: 500}}

func square() geom.Feature {
	return geom.Feature{Shape: geom.Polygon{Rings: orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}}}
}

func TestRunSquare(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	c := geom.Collection{Features: []geom.Feature{square()}}

	res, err := convert.Run(c, defaultOpts, zap.New(core))
	require.NoError(t, err)

	assert.Equal(t, geom.BBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, res.BBox)
	assert.Equal(t, "M 0.00 500.00 L 700.00 500.00 L 700.00 0.00 L 0.00 0.00 Z", res.Path.String())
	assert.Equal(t, res.BBox, res.Projector.BBox())
	assert.Empty(t, res.Extraction.Skipped)

	entries := logs.FilterMessage("bounding box").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "lon [0, 10], lat [0, 10]", entries[0].ContextMap()["bbox"])
}

func TestRunSkipsUnsupportedShapes(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c := geom.Collection{Features: []geom.Feature{
		{Shape: geom.Unsupported{Type: "Point"}},
		square(),
		{Shape: geom.Unsupported{Type: "LineString"}},
	}}

	res, err := convert.Run(c, defaultOpts, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, "M 0.00 500.00 L 700.00 500.00 L 700.00 0.00 L 0.00 0.00 Z", res.Path.String())

	warns := logs.FilterMessage("skipping shape").All()
	require.Len(t, warns, 2)
	assert.Equal(t, int64(0), warns[0].ContextMap()["feature"])
	assert.Equal(t, "Point", warns[0].ContextMap()["kind"])
	assert.Equal(t, "LineString", warns[1].ContextMap()["kind"])
}

func TestRunStrict(t *testing.T) {
	c := geom.Collection{Features: []geom.Feature{square(), {Shape: geom.Unsupported{Type: "Point"}}}}
	opts := defaultOpts
	opts.Strict = true

	_, err := convert.Run(c, opts, zap.NewNop())
	require.ErrorIs(t, err, geom.ErrUnsupportedShape)
	assert.Contains(t, err.Error(), "feature 1 is Point")

	_, err = convert.Run(geom.Collection{Features: []geom.Feature{square()}}, opts, zap.NewNop())
	assert.NoError(t, err)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		c    geom.Collection
		opts convert.Options
		want error
	}{
		{
			name: "empty collection",
			opts: defaultOpts,
			want: geom.ErrNoGeometry,
		},
		{
			name: "points only",
			c:    geom.Collection{Features: []geom.Feature{{Shape: geom.Unsupported{Type: "Point"}}, {Shape: geom.Unsupported{}}}},
			opts: defaultOpts,
			want: geom.ErrNoGeometry,
		},
		{
			name: "empty polygons",
			c:    geom.Collection{Features: []geom.Feature{{Shape: geom.Polygon{}}, {Shape: geom.MultiPolygon{}}}},
			opts: defaultOpts,
			want: geom.ErrNoGeometry,
		},
		{
			name: "flat ring",
			c: geom.Collection{Features: []geom.Feature{
				{Shape: geom.Polygon{Rings: orb.Polygon{{{0, 5}, {10, 5}, {3, 5}}}}},
			}},
			opts: defaultOpts,
			want: canvas.ErrDegenerateBBox,
		},
		{
			name: "extent overflows",
			c: geom.Collection{Features: []geom.Feature{
				{Shape: geom.Polygon{Rings: orb.Polygon{{{-1e308, 0}, {1e308, 0}, {1e308, 1}, {0, 1}}}}},
			}},
			opts: defaultOpts,
			want: canvas.ErrDegenerateBBox,
		},
		{
			name: "zero size",
			c:    geom.Collection{Features: []geom.Feature{square()}},
			opts: convert.Options{},
			want: canvas.ErrInvalidSize,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := convert.Run(tt.c, tt.opts, zap.NewNop())
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, res.Path)
		})
	}
}

func TestRunMultiPolygonOrder(t *testing.T) {
	c := geom.Collection{Features: []geom.Feature{
		{Shape: geom.MultiPolygon{Polygons: orb.MultiPolygon{
			{{{0, 0}, {1, 0}, {1, 1}}, {{0.2, 0.2}, {0.3, 0.2}, {0.3, 0.3}}},
			{{{2, 2}, {3, 2}, {3, 3}}},
		}}},
		{Shape: geom.Polygon{Rings: orb.Polygon{{{3, 0}, {4, 0}, {4, 4}}}}},
	}}
	res, err := convert.Run(c, convert.Options{Size: canvas.Size{Width: 4, Height: 4}}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, geom.BBox{MinX: 0, MinY: 0, MaxX: 4, MaxY: 4}, res.BBox)
	assert.Equal(t,
		"M 0.00 4.00 L 1.00 4.00 L 1.00 3.00 Z M 2.00 2.00 L 3.00 2.00 L 3.00 1.00 Z M 3.00 4.00 L 4.00 4.00 L 4.00 0.00 Z",
		res.Path.String())
}
