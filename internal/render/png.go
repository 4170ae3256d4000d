package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"

	"geopath/internal/canvas"
)

// maxRasterSide bounds the PNG canvas so a typo in --width cannot allocate
// gigabytes.
const maxRasterSide = 16384

// WritePNG fills the path onto a transparent canvas of the configured size
// and encodes it as PNG.
func WritePNG(w io.Writer, p canvas.Path, opts Options) error {
	img, err := Rasterize(p, opts)
	if err != nil {
		return err
	}
	return imaging.Encode(w, img, imaging.PNG)
}

// Rasterize fills every subpath of p with opts.Fill.
func Rasterize(p canvas.Path, opts Options) (*image.NRGBA, error) {
	if err := opts.Size.Validate(); err != nil {
		return nil, err
	}
	wpx, hpx := int(math.Ceil(opts.Size.Width)), int(math.Ceil(opts.Size.Height))
	if wpx > maxRasterSide || hpx > maxRasterSide {
		return nil, fmt.Errorf("render: %dx%d raster exceeds %d pixels per side", wpx, hpx, maxRasterSide)
	}
	fill := opts.Fill
	if fill == nil {
		fill = color.Black
	}

	img := imaging.New(wpx, hpx, color.Transparent)
	z := vector.NewRasterizer(wpx, hpx)
	for _, c := range p {
		switch c.Op {
		case canvas.MoveTo:
			z.MoveTo(float32(c.Pt.X), float32(c.Pt.Y))
		case canvas.LineTo:
			z.LineTo(float32(c.Pt.X), float32(c.Pt.Y))
		case canvas.ClosePath:
			z.ClosePath()
		}
	}
	z.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{})
	return img, nil
}
