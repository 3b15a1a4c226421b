package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSVColor represents a color in the pipeline's 8-bit HSV encoding.
//
// These are the same units used by HSVRange, so a sampled HSVColor can be
// copied straight into segmentation bounds:
//   - H: hue in degrees divided by two (0-179; 0=red, 60=green, 120=blue)
//   - S: saturation (0-255; 0=gray, 255=vivid)
//   - V: value (0-255; 0=black, 255=full brightness)
type HSVColor struct {
	H uint8 `json:"h"` // Hue: 0-179 (degrees / 2)
	S uint8 `json:"s"` // Saturation: 0-255
	V uint8 `json:"v"` // Value: 0-255
}

// ColorResult contains a color value in the representations an operator needs
// when tuning segmentation bounds.
type ColorResult struct {
	Hex string   `json:"hex"` // Hex format "#RRGGBB" (no alpha)
	RGB RGBColor `json:"rgb"` // RGB components
	HSV HSVColor `json:"hsv"` // 8-bit HSV, directly comparable to HSVRange bounds
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source frame to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y) as hex, RGB and pipeline HSV.
//   - error: Non-nil if coordinates are outside the image bounds.
//
// The HSV value is computed with exactly the conversion ToHSV uses, so the
// result tells the operator which bounds would admit this pixel.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c := img.At(x, y)
	r, g, b, _ := c.RGBA()
	r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)

	return &ColorResult{
		Hex: fmt.Sprintf("#%02X%02X%02X", r8, g8, b8),
		RGB: RGBColor{R: r8, G: g8, B: b8},
		HSV: RGBToHSV(c),
	}, nil
}

// RGBToHSV converts a color to the pipeline's 8-bit HSV encoding.
//
// Hue is halved so that the full 0-360 degree circle fits in a byte. Hues that
// round to 180 wrap to 0, so the range is 0-179.
// Fully transparent colors convert to black.
func RGBToHSV(c color.Color) HSVColor {
	col, ok := colorful.MakeColor(c)
	if !ok {
		return HSVColor{}
	}
	h, s, v := col.Hsv()
	hue := math.Round(h / 2)
	if hue >= 180 {
		hue = 0
	}
	return HSVColor{
		H: uint8(hue),
		S: uint8(math.Round(s * 255)),
		V: uint8(math.Round(v * 255)),
	}
}
