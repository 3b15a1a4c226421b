package imaging

import (
	"image"
	"image/color"
)

// HSVRange holds inclusive per-channel bounds for color segmentation, in the
// 8-bit HSV units described in the package documentation.
//
// Low <= High is not enforced. An inverted range (for example HueLow=170,
// HueHigh=10) is evaluated literally and therefore admits no pixels; it does
// not wrap around the hue circle.
type HSVRange struct {
	HueLow  int
	HueHigh int
	SatLow  int
	SatHigh int
	ValLow  int
	ValHigh int
}

// Contains reports whether c falls inside all three channel bounds.
func (r HSVRange) Contains(c HSVColor) bool {
	return inBounds(int(c.H), r.HueLow, r.HueHigh) &&
		inBounds(int(c.S), r.SatLow, r.SatHigh) &&
		inBounds(int(c.V), r.ValLow, r.ValHigh)
}

func inBounds(v, low, high int) bool {
	return v >= low && v <= high
}

// Segmentation holds the three buffers produced by Segment.
type Segmentation struct {
	// HSV is the input frame converted to 8-bit HSV.
	HSV *image.RGBA

	// Mask is 255 where the HSV pixel lies inside the range and 0 elsewhere.
	Mask *image.Gray

	// Masked is HSV with every pixel outside the mask set to zero.
	Masked *image.RGBA
}

// Segment converts img to HSV, builds a binary mask of the pixels inside r,
// and applies the mask to the HSV frame.
//
// All three returned buffers are newly allocated and have the same
// dimensions as img.
func Segment(img image.Image, r HSVRange) *Segmentation {
	hsv := ToHSV(img)
	mask := InRange(hsv, r)
	return &Segmentation{
		HSV:    hsv,
		Mask:   mask,
		Masked: ApplyMask(hsv, mask),
	}
}

// ToHSV converts img to an HSV frame. See the package documentation for the
// channel layout.
func ToHSV(img image.Image) *image.RGBA {
	src := ToRGBA(img)
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)

	for y := 0; y < bounds.Dy(); y++ {
		i := y * src.Stride
		for x := 0; x < bounds.Dx(); x++ {
			p := src.Pix[i : i+4 : i+4]
			hsv := RGBToHSV(color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]})
			d := dst.Pix[i : i+4 : i+4]
			d[0] = hsv.H
			d[1] = hsv.S
			d[2] = hsv.V
			d[3] = 0xFF
			i += 4
		}
	}
	return dst
}

// InRange builds a binary mask from an HSV frame: 255 where every channel is
// within its [Low, High] bound, 0 otherwise.
func InRange(hsv *image.RGBA, r HSVRange) *image.Gray {
	bounds := hsv.Bounds()
	mask := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := 0; y < bounds.Dy(); y++ {
		si := hsv.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		di := y * mask.Stride
		for x := 0; x < bounds.Dx(); x++ {
			c := HSVColor{H: hsv.Pix[si], S: hsv.Pix[si+1], V: hsv.Pix[si+2]}
			if r.Contains(c) {
				mask.Pix[di+x] = 0xFF
			}
			si += 4
		}
	}
	return mask
}

// ApplyMask returns a copy of frame in which every pixel whose mask value is
// zero has its color channels set to zero. Pixels under a non-zero mask are
// copied unchanged; there is no blending. Alpha is kept opaque so the result
// renders as black rather than transparent.
//
// frame and mask must have the same dimensions.
func ApplyMask(frame *image.RGBA, mask *image.Gray) *image.RGBA {
	bounds := frame.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	mb := mask.Bounds()

	for y := 0; y < bounds.Dy(); y++ {
		si := frame.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		mi := mask.PixOffset(mb.Min.X, mb.Min.Y+y)
		di := y * dst.Stride
		for x := 0; x < bounds.Dx(); x++ {
			if mask.Pix[mi+x] != 0 {
				copy(dst.Pix[di:di+4], frame.Pix[si:si+4])
			} else {
				dst.Pix[di+3] = 0xFF
			}
			si += 4
			di += 4
		}
	}
	return dst
}
