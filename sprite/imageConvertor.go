package sprite

import (
	"bytes"
	"fmt"
	"html"
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/khankhulgun/maritimemap/models"
)

// swatchBox is the SVG user space every swatch is drawn in.
const swatchBox = 16

// SwatchSVG renders a legend entry as a 16x16 SVG document. Colors oksvg
// cannot draw are rendered without paint.
func SwatchSVG(e models.LegendEntry) []byte {
	color, opacity := svgPaint(e.Color, e.Opacity)

	var shape string
	switch e.Kind {
	case KindLine:
		dash := ""
		if len(e.DashArray) > 0 {
			parts := make([]string, len(e.DashArray))
			for i, d := range e.DashArray {
				// Dash lengths are in line widths, as in the style.
				parts[i] = formatFloat(d * e.Width)
			}
			dash = fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, ","))
		}
		shape = fmt.Sprintf(`<line x1="1" y1="8" x2="15" y2="8" stroke="%s" stroke-opacity="%s" stroke-width="%s"%s/>`,
			color, formatFloat(opacity), formatFloat(e.Width), dash)
	case KindCircle:
		shape = fmt.Sprintf(`<circle cx="8" cy="8" r="5" fill="%s" fill-opacity="%s"%s/>`,
			color, formatFloat(opacity), strokeAttrs(e.Stroke, e.Width))
	default:
		shape = fmt.Sprintf(`<rect x="1" y="1" width="14" height="14" fill="%s" fill-opacity="%s"%s/>`,
			color, formatFloat(opacity), strokeAttrs(e.Stroke, 1))
	}

	return []byte(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">%s</svg>`,
		swatchBox, swatchBox, swatchBox, swatchBox, shape))
}

func strokeAttrs(stroke string, width float64) string {
	if stroke == "" {
		return ""
	}
	color, opacity := svgPaint(stroke, 1)
	return fmt.Sprintf(` stroke="%s" stroke-opacity="%s" stroke-width="%s"`,
		color, formatFloat(opacity), formatFloat(width))
}

// Rasterize draws an SVG document into a size x size RGBA image.
func Rasterize(svg []byte, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid swatch size %d", size)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	dasher := rasterx.NewDasher(size, size, scanner)
	icon.Draw(dasher, 1)

	return img, nil
}

// Swatch renders a legend entry straight to an image.
func Swatch(e models.LegendEntry, size int) (*image.RGBA, error) {
	img, err := Rasterize(SwatchSVG(e), size)
	if err != nil {
		return nil, fmt.Errorf("legend entry %s: %w", e.ID, err)
	}
	return img, nil
}

// svgPaint turns a style color into an SVG paint and opacity. The alpha of
// rgba() and hsla() colors is folded into the opacity since oksvg only reads
// rgb() and hsl(). Empty or unparsable colors become "none".
func svgPaint(color string, opacity float64) (string, float64) {
	opacity = clampUnit(opacity)

	c := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(color), " ", ""))
	if c == "" || c == "none" {
		return "none", opacity
	}

	for _, fn := range []string{"rgba", "hsla"} {
		args, ok := strings.CutPrefix(c, fn+"(")
		if !ok {
			continue
		}
		parts := strings.Split(strings.TrimSuffix(args, ")"), ",")
		if len(parts) != 4 {
			break
		}
		alpha, err := parseAlpha(parts[3])
		if err != nil {
			break
		}
		c = fmt.Sprintf("%s(%s)", fn[:3], strings.Join(parts[:3], ","))
		opacity *= alpha
	}

	if err := checkColor(c); err != nil {
		log.Warn("unsupported legend color, drawing without paint", "color", color, "err", err)
		return "none", opacity
	}
	return html.EscapeString(c), opacity
}

// checkColor reports whether oksvg can draw c. oksvg indexes into color
// components without length checks, so "rgb(,,)" panics instead of failing.
func checkColor(c string) (err error) {
	if strings.HasPrefix(c, "url(") {
		return fmt.Errorf("paint servers are not supported")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed color %q", c)
		}
	}()
	_, err = oksvg.ParseSVGColor(c)
	return err
}

// parseAlpha reads an alpha component, either 0..1 or a percentage.
func parseAlpha(s string) (float64, error) {
	scale := 1.0
	if p, ok := strings.CutSuffix(s, "%"); ok {
		s, scale = p, 100
	}
	a, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return clampUnit(a / scale), nil
}

func clampUnit(f float64) float64 {
	switch {
	case math.IsNaN(f):
		return 1
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
