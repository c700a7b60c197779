package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"github.com/valyala/bytebufferpool"
	xdraw "golang.org/x/image/draw"
)

const (
	// CanvasSize is the fixed square matchup canvas edge in pixels.
	CanvasSize = 400
	// LogoFit bounds each composited logo, aspect ratio preserved.
	LogoFit = 150

	logoInset = 25
)

// White is the fallback side color when palette resolution fails.
var White = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// MatchupSpec describes one composed matchup graphic: the two side colors,
// the two rasterized logos, and which side the caller asked about.
type MatchupSpec struct {
	HomeColor     color.Color
	AwayColor     color.Color
	DesiredLogo   image.Image
	AgainstLogo   image.Image
	HomeIsDesired bool
}

// ComposeMatchup renders the 400x400 canvas: a fixed 45-degree diagonal split
// with the home color filling the bottom-right triangle and the away color the
// top-left, then both logos scaled into 150x150 boxes at anchors picked by
// which side is the desired team.
func ComposeMatchup(spec MatchupSpec) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, CanvasSize, CanvasSize))

	for y := 0; y < CanvasSize; y++ {
		for x := 0; x < CanvasSize; x++ {
			if x+y >= CanvasSize {
				canvas.Set(x, y, spec.HomeColor)
			} else {
				canvas.Set(x, y, spec.AwayColor)
			}
		}
	}

	desiredAnchor, againstAnchor := logoAnchors(spec.HomeIsDesired)
	compositeLogo(canvas, spec.DesiredLogo, desiredAnchor)
	compositeLogo(canvas, spec.AgainstLogo, againstAnchor)

	return canvas
}

// logoAnchors is the 2x2 decision table on {home team is desired} x {role}.
// Each logo lands on its own team's triangle.
func logoAnchors(homeIsDesired bool) (desired, against image.Point) {
	topLeft := image.Pt(logoInset, logoInset)
	bottomRight := image.Pt(CanvasSize-logoInset-LogoFit, CanvasSize-logoInset-LogoFit)

	if homeIsDesired {
		return bottomRight, topLeft
	}
	return topLeft, bottomRight
}

func compositeLogo(canvas *image.NRGBA, logo image.Image, anchor image.Point) {
	if logo == nil {
		return
	}

	scaled := ScaleToFit(logo, LogoFit, LogoFit)
	bounds := scaled.Bounds()

	// Center the scaled logo inside its anchor box.
	offset := image.Pt(
		anchor.X+(LogoFit-bounds.Dx())/2,
		anchor.Y+(LogoFit-bounds.Dy())/2,
	)
	target := bounds.Sub(bounds.Min).Add(offset)
	draw.Draw(canvas, target, scaled, bounds.Min, draw.Over)
}

// ScaleToFit resizes src to fit within maxW x maxH preserving aspect ratio.
// Images already inside the box are returned as-is.
func ScaleToFit(src image.Image, maxW, maxH int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return src
	}
	if w <= maxW && h <= maxH {
		return src
	}

	scale := float64(maxW) / float64(w)
	if s := float64(maxH) / float64(h); s < scale {
		scale = s
	}

	outW := int(float64(w) * scale)
	outH := int(float64(h) * scale)
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, outW, outH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

// EncodePNG renders the image to PNG bytes through a pooled buffer.
func EncodePNG(img image.Image) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

// ParseHexColor parses "#RRGGBB" (case-insensitive, leading '#' optional).
func ParseHexColor(value string) (color.NRGBA, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(raw) != 6 {
		return color.NRGBA{}, fmt.Errorf("hex color must have six digits, got %q", value)
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		hi, err := hexDigit(raw[i*2])
		if err != nil {
			return color.NRGBA{}, err
		}
		lo, err := hexDigit(raw[i*2+1])
		if err != nil {
			return color.NRGBA{}, err
		}
		rgb[i] = hi<<4 | lo
	}

	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}, nil
}

func hexDigit(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit %q", c)
	}
}
