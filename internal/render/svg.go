package render

import (
	"bufio"
	"encoding/xml"
	"io"
	"strconv"

	"geopath/internal/canvas"
)

// WriteSVG writes a standalone document sized to the canvas. The path is
// declared once as a clipPath, so other content can be clipped to the
// boundary, and drawn once as an outline.
func WriteSVG(w io.Writer, p canvas.Path, opts Options) error {
	if err := opts.Size.Validate(); err != nil {
		return err
	}
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	width, height := num(opts.Size.Width), num(opts.Size.Height)
	d := p.String()

	bw := bufio.NewWriter(w)
	bw.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 ` + width + ` ` + height +
		`" width="` + width + `" height="` + height + `">` + "\n")
	bw.WriteString("  <defs>\n    <clipPath id=\"")
	if err := xml.EscapeText(bw, []byte(opts.ClipID)); err != nil {
		return err
	}
	bw.WriteString("\">\n      <path d=\"" + d + "\"/>\n    </clipPath>\n  </defs>\n")
	bw.WriteString("  <path d=\"" + d + "\" fill=\"none\" stroke=\"currentColor\" stroke-width=\"1\"/>\n")
	bw.WriteString("</svg>\n")
	return bw.Flush()
}
