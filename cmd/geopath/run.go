package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"geopath/internal/config"
	"geopath/internal/convert"
	"geopath/internal/geom"
	"geopath/internal/render"
)

// run converts cfg.Input and writes it to stdout or cfg.Output. Output is
// rendered in memory first so a failure never leaves partial output behind.
func run(cfg *config.Config, log *zap.Logger, stdout io.Writer) error {
	c, err := geom.Load(cfg.Input)
	if err != nil {
		return err
	}
	log.Debug("input loaded", zap.String("path", cfg.Input), zap.Int("features", len(c.Features)))

	res, err := convert.Run(c, convert.Options{Size: cfg.Size(), Strict: cfg.Strict}, log)
	if err != nil {
		return err
	}

	fill, err := render.ParseColor(cfg.Fill)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	opts := render.Options{Size: cfg.Size(), ClipID: cfg.ClipID, Fill: fill}
	if err := render.Write(&buf, cfg.Format, res.Path, opts); err != nil {
		return fmt.Errorf("render %s: %w", cfg.Format, err)
	}

	if cfg.Output == "" {
		_, err = buf.WriteTo(stdout)
		return err
	}
	if err := os.WriteFile(cfg.Output, buf.Bytes(), 0o644); err != nil {
		return err
	}
	log.Info("output written", zap.String("path", cfg.Output), zap.String("format", string(cfg.Format)))
	return nil
}
