// Package icon rasterizes the SVG icons drawn by the renderer.
package icon

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Back is the chevron of the header back button, drawn white so it can be
// tinted.
//
//go:embed back.svg
var Back []byte

// Rasterize renders svg into a w×h RGBA image.
func Rasterize(svg []byte, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("icon: invalid size %dx%d", w, h)
	}

	parsed, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("icon: parse: %w", err)
	}
	parsed.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	parsed.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return img, nil
}
