package detection

import (
	"image"

	"github.com/ironsheep/frame-vision-mcp/internal/imaging"
)

// Contour is a closed border traced from a binary frame.
//
// Points is a closed polygon: the last point connects back to the first.
// Runs of collinear points along horizontal, vertical and diagonal steps are
// reduced to their end vertices.
type Contour struct {
	// Points are the polygon vertices in trace order.
	Points []image.Point `json:"points"`

	// Parent is the index of the immediately enclosing contour in the same
	// result, or -1 for a border that is only enclosed by the frame itself.
	Parent int `json:"parent"`

	// Hole is true for a border between a foreground region and a hole
	// inside it, false for the outer border of a foreground region.
	Hole bool `json:"hole"`
}

// ContourResult contains the contours traced from one frame together with the
// binary silhouette they were traced from.
type ContourResult struct {
	// Contours in trace order: the order in which a raster scan (top to
	// bottom, left to right) first meets each border.
	Contours []Contour

	// Binary is the thresholded frame: 255 foreground, 0 background.
	Binary *image.Gray
}

// Outlines returns the point lists of every contour, for drawing.
func (r *ContourResult) Outlines() [][]image.Point {
	out := make([][]image.Point, len(r.Contours))
	for i, c := range r.Contours {
		out[i] = c.Points
	}
	return out
}

// ExtractContours converts img to intensity, applies ThresholdInverted with
// the bounds [low, high], and traces every border in the result.
//
// *image.Gray frames are used as-is; everything else is converted with
// imaging.ToGray. A uniform frame whose intensity lies inside the bounds has
// no foreground and yields an empty contour list.
func ExtractContours(img image.Image, low, high int) *ContourResult {
	binary := ThresholdInverted(imaging.ToGray(img), low, high)
	return &ContourResult{
		Contours: FindContours(binary),
		Binary:   binary,
	}
}

// ThresholdInverted maps intensities inside [low, high] to 0 and every other
// intensity to 255. An inverted range (low > high) contains nothing, so the
// whole frame becomes foreground.
//
// Dark unmasked areas around a segmented region are foreground under the
// usual bounds [1, 255], which is why the region touching the frame edge
// shows up as the largest contour.
func ThresholdInverted(gray *image.Gray, low, high int) *image.Gray {
	b := gray.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		si := gray.PixOffset(b.Min.X, b.Min.Y+y)
		di := y * dst.Stride
		for x := 0; x < b.Dx(); x++ {
			v := int(gray.Pix[si+x])
			if v < low || v > high {
				dst.Pix[di+x] = 255
			}
		}
	}
	return dst
}

// FindContours traces every border in binary using Suzuki-Abe border
// following, reporting outer borders and hole borders at every nesting level.
//
// Non-zero pixels are foreground and are 8-connected; background is
// 4-connected. Pixels beyond the frame edge are background, so a region
// touching the edge still gets a closed border along it.
func FindContours(binary *image.Gray) []Contour {
	b := binary.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	t := newTracer(w+2, h+2)
	for y := 0; y < h; y++ {
		si := binary.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x++ {
			if binary.Pix[si+x] != 0 {
				t.f[(y+1)*t.w+x+1] = 1
			}
		}
	}
	return t.scan()
}

// Border numbers: 0 and 1 are pixel states, frameBorder is the frame itself,
// and contour k carries border number k+firstContour.
const (
	frameBorder  = 1
	firstContour = 2
)

// directions in counter-clockwise order on screen (y grows downward).
var directions = [8]image.Point{
	{1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1},
}

const east = 0

// tracer holds the zero-padded label grid for one FindContours call.
type tracer struct {
	f   []int
	w   int
	h   int
	off [8]int
}

func newTracer(w, h int) *tracer {
	t := &tracer{f: make([]int, w*h), w: w, h: h}
	for d, p := range directions {
		t.off[d] = p.Y*w + p.X
	}
	return t
}

func (t *tracer) point(i int) image.Point {
	return image.Point{X: i%t.w - 1, Y: i/t.w - 1}
}

// direction returns the index into directions leading from i to its
// 8-neighbor n.
func (t *tracer) direction(i, n int) int {
	for d, o := range t.off {
		if i+o == n {
			return d
		}
	}
	panic("detection: pixels are not neighbors")
}

func (t *tracer) scan() []Contour {
	var contours []Contour

	isHole := func(nbd int) bool {
		if nbd == frameBorder {
			return true
		}
		return contours[nbd-firstContour].Hole
	}
	parentOf := func(nbd int) int {
		if nbd == frameBorder {
			return -1
		}
		return contours[nbd-firstContour].Parent
	}

	nbd := frameBorder
	for y := 1; y < t.h-1; y++ {
		lnbd := frameBorder
		for x := 1; x < t.w-1; x++ {
			i := y*t.w + x
			fi := t.f[i]
			if fi == 0 {
				continue
			}

			start, hole := -1, false
			switch {
			case fi == 1 && t.f[i-1] == 0:
				start = i - 1
			case fi >= 1 && t.f[i+1] == 0:
				start, hole = i+1, true
				if fi > 1 {
					lnbd = fi
				}
			}

			if start >= 0 {
				nbd++
				parent := parentOf(lnbd)
				if hole != isHole(lnbd) {
					parent = lnbd - firstContour
				}
				pts := t.follow(i, start, nbd)
				contours = append(contours, Contour{
					Points: approximateChain(pts),
					Parent: parent,
					Hole:   hole,
				})
			}

			if v := t.f[i]; v != 1 {
				if v < 0 {
					v = -v
				}
				lnbd = v
			}
		}
	}
	return contours
}

// follow traces the border starting at pixel i, entered from its background
// neighbor from, labelling visited pixels with nbd. It returns every border
// pixel in trace order.
func (t *tracer) follow(i, from, nbd int) []image.Point {
	// clockwise from the entry neighbor for the first non-zero pixel
	d0 := t.direction(i, from)
	p1 := -1
	for k := 0; k < 8; k++ {
		n := i + t.off[(d0-k+8)%8]
		if t.f[n] != 0 {
			p1 = n
			break
		}
	}
	if p1 < 0 {
		t.f[i] = -nbd
		return []image.Point{t.point(i)}
	}

	var pts []image.Point
	p2, p3 := p1, i
	for {
		// counter-clockwise from the pixel after p2
		d2 := t.direction(p3, p2)
		p4 := p2
		eastZero := false
		for k := 1; k <= 8; k++ {
			d := (d2 + k) % 8
			n := p3 + t.off[d]
			if t.f[n] != 0 {
				p4 = n
				break
			}
			if d == east {
				eastZero = true
			}
		}

		if eastZero {
			t.f[p3] = -nbd
		} else if t.f[p3] == 1 {
			t.f[p3] = nbd
		}
		pts = append(pts, t.point(p3))

		if p4 == i && p3 == p1 {
			return pts
		}
		p2, p3 = p3, p4
	}
}

// approximateChain drops every point whose incoming and outgoing steps are
// equal, treating pts as a closed loop. Chains shorter than three points are
// returned unchanged.
func approximateChain(pts []image.Point) []image.Point {
	n := len(pts)
	if n < 3 {
		return pts
	}
	out := make([]image.Point, 0, n)
	for k, cur := range pts {
		prev := pts[(k-1+n)%n]
		next := pts[(k+1)%n]
		if cur.Sub(prev) != next.Sub(cur) {
			out = append(out, cur)
		}
	}
	return out
}
