// Package render writes a projected path in one of the supported output
// formats.
package render

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"geopath/internal/canvas"
)

type Format string

const (
	FormatPath Format = "path"
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
)

func (f Format) Validate() error {
	switch f {
	case FormatPath, FormatSVG, FormatPNG:
		return nil
	}
	return fmt.Errorf("render: unknown format %q", string(f))
}

type Options struct {
	Size   canvas.Size
	ClipID string
	Fill   color.Color
}

// Write renders p in format f. The path format is the bare path data on a
// single line.
func Write(w io.Writer, f Format, p canvas.Path, opts Options) error {
	switch f {
	case FormatPath:
		_, err := w.Write(append(p.AppendText(nil), '\n'))
		return err
	case FormatSVG:
		return WriteSVG(w, p, opts)
	case FormatPNG:
		return WritePNG(w, p, opts)
	}
	return f.Validate()
}

// ParseColor accepts "#rrggbb" or "#rgb".
func ParseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("render: bad colour %q: %w", s, err)
	}
	return c, nil
}
