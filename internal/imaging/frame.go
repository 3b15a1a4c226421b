package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"
)

// ToRGBA returns an RGBA copy of img whose bounds start at (0,0).
//
// The copy is always a new buffer, so callers may draw on the result without
// affecting img.
func ToRGBA(img image.Image) *image.RGBA {
	if img.Bounds().Min == (image.Point{}) {
		return clone.AsRGBA(img)
	}
	// imaging.Clone rebases to the origin
	return clone.AsRGBA(imaging.Clone(img))
}

// ToGray converts img to a single-channel intensity frame using ITU-R BT.601
// luminance weights (0.299*R + 0.587*G + 0.114*B).
//
// If img is already an origin-based *image.Gray it is returned as-is. Use
// CloneGray when a writable copy is needed.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok && g.Bounds().Min == (image.Point{}) {
		return g
	}

	src := imaging.Grayscale(img)
	bounds := src.Bounds()
	dst := image.NewGray(bounds)
	for y := 0; y < bounds.Dy(); y++ {
		si := y * src.Stride
		di := y * dst.Stride
		for x := 0; x < bounds.Dx(); x++ {
			dst.Pix[di+x] = src.Pix[si+x*4]
		}
	}
	return dst
}

// CloneGray returns a copy of g rebased to (0,0).
func CloneGray(g *image.Gray) *image.Gray {
	bounds := g.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		si := g.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+bounds.Dx()], g.Pix[si:si+bounds.Dx()])
	}
	return dst
}

// CloneRGBA returns a copy of img rebased to (0,0).
func CloneRGBA(img *image.RGBA) *image.RGBA {
	return ToRGBA(img)
}

// Channels reports the number of color channels a frame carries: 1 for
// grayscale frames and 3 for everything else (alpha is not counted).
func Channels(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	}
	return 3
}
