package imaging

import (
	"image"
	"image/color"
	"testing"
)

var red = color.RGBA{255, 0, 0, 255}

// litPixels returns the set of pixels in img whose red channel is set.
func litPixels(img *image.RGBA) map[image.Point]bool {
	lit := make(map[image.Point]bool)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).R != 0 {
				lit[image.Pt(x, y)] = true
			}
		}
	}
	return lit
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 image.Point
		want   int
	}{
		{"horizontal", image.Pt(1, 2), image.Pt(8, 2), 8},
		{"vertical", image.Pt(3, 0), image.Pt(3, 9), 10},
		{"diagonal", image.Pt(0, 0), image.Pt(5, 5), 6},
		{"reversed", image.Pt(8, 2), image.Pt(1, 2), 8},
		{"single point", image.Pt(4, 4), image.Pt(4, 4), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, 10, 10))
			DrawLine(img, tt.p0, tt.p1, red)

			lit := litPixels(img)
			if len(lit) != tt.want {
				t.Errorf("lit pixels: got %d, want %d", len(lit), tt.want)
			}
			if !lit[tt.p0] || !lit[tt.p1] {
				t.Error("endpoints not drawn")
			}
		})
	}
}

func TestDrawLine_ClipsOutOfBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	DrawLine(img, image.Pt(-5, 5), image.Pt(15, 5), red)

	if n := len(litPixels(img)); n != 10 {
		t.Errorf("lit pixels: got %d, want 10", n)
	}
}

func TestDrawPolygon(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	square := []image.Point{{2, 2}, {7, 2}, {7, 7}, {2, 7}}
	DrawPolygon(img, square, red)

	lit := litPixels(img)
	if len(lit) != 20 {
		t.Errorf("lit pixels: got %d, want 20", len(lit))
	}
	// closing edge from the last point back to the first
	if !lit[image.Pt(2, 5)] {
		t.Error("polygon not closed")
	}
	if lit[image.Pt(4, 4)] {
		t.Error("interior was filled")
	}
}

func TestDrawContours(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawContours(img, [][]image.Point{
		{{1, 1}, {3, 1}, {3, 3}, {1, 3}},
		{{10, 10}},
		nil,
	}, red)

	lit := litPixels(img)
	if len(lit) != 9 {
		t.Errorf("lit pixels: got %d, want 9", len(lit))
	}
	if !lit[image.Pt(10, 10)] {
		t.Error("single-point contour not drawn")
	}
}
