// Package convert runs the boundary-to-path pipeline: extract outer rings,
// measure their extent, project them onto the canvas and build the path.
package convert

import (
	"fmt"

	"go.uber.org/zap"

	"geopath/internal/canvas"
	"geopath/internal/geom"
)

type Options struct {
	Size canvas.Size
	// Strict turns a skipped shape into ErrUnsupportedShape.
	Strict bool
}

type Result struct {
	BBox       geom.BBox
	Extraction geom.Extraction
	Projector  *canvas.Projector
	Path       canvas.Path
}

// Run converts c. Diagnostics go to log, never into the result.
func Run(c geom.Collection, opts Options, log *zap.Logger) (Result, error) {
	ex := geom.Extract(c)
	for _, s := range ex.Skipped {
		if opts.Strict {
			return Result{}, fmt.Errorf("%w: feature %d is %s", geom.ErrUnsupportedShape, s.Feature, s.Kind)
		}
		log.Warn("skipping shape", zap.Int("feature", s.Feature), zap.String("kind", string(s.Kind)))
	}

	bbox, err := geom.Bounds(ex.Rings)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %d features, %d skipped", err, len(c.Features), len(ex.Skipped))
	}
	log.Info("bounding box", zap.Stringer("bbox", bbox))

	proj, err := canvas.NewProjector(bbox, opts.Size)
	if err != nil {
		return Result{}, err
	}
	path := canvas.Build(ex.Rings, proj)
	log.Debug("path built",
		zap.Int("rings", len(ex.Rings)),
		zap.Int("points", ex.Points()),
		zap.Int("subpaths", path.Subpaths()),
		zap.Int("skipped", len(ex.Skipped)),
	)
	return Result{BBox: bbox, Extraction: ex, Projector: proj, Path: path}, nil
}
