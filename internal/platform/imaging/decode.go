package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// DecodeImage turns fetched logo bytes into a raster image. Upstream team
// logos are SVG; custom override URLs may serve PNG or JPEG.
func DecodeImage(data []byte) (image.Image, error) {
	if looksLikeSVG(data) {
		return rasterizeSVG(data, LogoFit, LogoFit)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode raster image: %w", err)
	}
	return img, nil
}

func looksLikeSVG(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '<' {
		return false
	}
	head := trimmed
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(head, []byte("<svg")) || bytes.Contains(head, []byte("<?xml"))
}

// rasterizeSVG renders the vector into a raster bounded by maxW x maxH,
// preserving the document's view box aspect ratio.
func rasterizeSVG(data []byte, maxW, maxH int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = float64(maxW), float64(maxH)
	}

	scale := float64(maxW) / w
	if s := float64(maxH) / h; s < scale {
		scale = s
	}
	outW := int(w * scale)
	outH := int(h * scale)
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}

	icon.SetTarget(0, 0, float64(outW), float64(outH))
	rgba := image.NewRGBA(image.Rect(0, 0, outW, outH))
	scanner := rasterx.NewScannerGV(outW, outH, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(outW, outH, scanner), 1.0)

	return rgba, nil
}
