package detection

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// createBinaryFrame creates a binary frame with the given rectangles set to
// foreground (255), applied in order. Rectangles with clear=true are reset to
// background instead.
func createBinaryFrame(width, height int, rects ...binaryRect) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for _, r := range rects {
		v := uint8(255)
		if r.clear {
			v = 0
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				img.SetGray(x, y, color.Gray{Y: v})
			}
		}
	}
	return img
}

type binaryRect struct {
	image.Rectangle
	clear bool
}

func fg(x0, y0, x1, y1 int) binaryRect { return binaryRect{Rectangle: image.Rect(x0, y0, x1, y1)} }
func bg(x0, y0, x1, y1 int) binaryRect {
	return binaryRect{Rectangle: image.Rect(x0, y0, x1, y1), clear: true}
}

func TestFindContours_FilledRectangle(t *testing.T) {
	frame := createBinaryFrame(10, 10, fg(2, 3, 6, 7))

	contours := FindContours(frame)
	if len(contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(contours))
	}

	want := Contour{
		Points: []image.Point{{2, 3}, {2, 6}, {5, 6}, {5, 3}},
		Parent: -1,
		Hole:   false,
	}
	if diff := cmp.Diff(want, contours[0]); diff != "" {
		t.Errorf("contour mismatch (-want +got):\n%s", diff)
	}
}

func TestFindContours_Hierarchy(t *testing.T) {
	// outer square, hole, and a single-pixel island inside the hole
	frame := createBinaryFrame(12, 12, fg(1, 1, 10, 10), bg(3, 3, 8, 8), fg(5, 5, 6, 6))

	contours := FindContours(frame)
	if len(contours) != 3 {
		t.Fatalf("got %d contours, want 3", len(contours))
	}

	tests := []struct {
		name   string
		index  int
		parent int
		hole   bool
	}{
		{"outer border", 0, -1, false},
		{"hole border", 1, 0, true},
		{"island", 2, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := contours[tt.index]
			if c.Parent != tt.parent {
				t.Errorf("Parent: got %d, want %d", c.Parent, tt.parent)
			}
			if c.Hole != tt.hole {
				t.Errorf("Hole: got %v, want %v", c.Hole, tt.hole)
			}
		})
	}

	if diff := cmp.Diff([]image.Point{{5, 5}}, contours[2].Points); diff != "" {
		t.Errorf("island points (-want +got):\n%s", diff)
	}
}

func TestFindContours_HoleBorderIsOctagon(t *testing.T) {
	frame := createBinaryFrame(10, 10, fg(2, 2, 8, 8), bg(4, 4, 6, 6))

	contours := FindContours(frame)
	if len(contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(contours))
	}

	hole := contours[1]
	if !hole.Hole || hole.Parent != 0 {
		t.Fatalf("second contour: Hole=%v Parent=%d, want hole of contour 0", hole.Hole, hole.Parent)
	}
	// 8-connected foreground skips the diagonal corner pixels
	if len(hole.Points) != 8 {
		t.Errorf("hole vertices: got %d, want 8: %v", len(hole.Points), hole.Points)
	}
	if got := ContourArea(hole.Points); got != 7 {
		t.Errorf("hole area: got %v, want 7", got)
	}
}

func TestFindContours_TouchingFrameEdge(t *testing.T) {
	frame := createBinaryFrame(5, 5, fg(0, 0, 5, 5))

	contours := FindContours(frame)
	if len(contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(contours))
	}
	want := []image.Point{{0, 0}, {0, 4}, {4, 4}, {4, 0}}
	if diff := cmp.Diff(want, contours[0].Points); diff != "" {
		t.Errorf("points (-want +got):\n%s", diff)
	}
}

func TestFindContours_Empty(t *testing.T) {
	tests := []struct {
		name  string
		frame *image.Gray
	}{
		{"all background", createBinaryFrame(8, 8)},
		{"zero size", image.NewGray(image.Rect(0, 0, 0, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindContours(tt.frame); len(got) != 0 {
				t.Errorf("got %d contours, want 0", len(got))
			}
		})
	}
}

func TestFindContours_TwoRegionsInRasterOrder(t *testing.T) {
	frame := createBinaryFrame(20, 10, fg(12, 1, 15, 4), fg(2, 5, 6, 8))

	contours := FindContours(frame)
	if len(contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(contours))
	}
	if contours[0].Points[0] != (image.Point{12, 1}) {
		t.Errorf("first contour starts at %v, want (12,1)", contours[0].Points[0])
	}
	if contours[1].Points[0] != (image.Point{2, 5}) {
		t.Errorf("second contour starts at %v, want (2,5)", contours[1].Points[0])
	}
	for i, c := range contours {
		if c.Parent != -1 || c.Hole {
			t.Errorf("contour %d: Parent=%d Hole=%v, want top-level outer border", i, c.Parent, c.Hole)
		}
	}
}

func TestThresholdInverted(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 5, 1))
	copy(gray.Pix, []uint8{0, 1, 128, 255, 200})

	tests := []struct {
		name      string
		low, high int
		want      []uint8
	}{
		{"default bounds", 1, 255, []uint8{255, 0, 0, 0, 0}},
		{"narrow band", 100, 200, []uint8{255, 255, 0, 255, 0}},
		{"inverted range", 200, 100, []uint8{255, 255, 255, 255, 255}},
		{"full range", 0, 255, []uint8{0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ThresholdInverted(gray, tt.low, tt.high)
			if diff := cmp.Diff(tt.want, got.Pix); diff != "" {
				t.Errorf("binary (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractContours_WhiteSquareOnBlack(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			c := color.RGBA{0, 0, 0, 255}
			if x >= 10 && x < 20 && y >= 10 && y < 20 {
				c = color.RGBA{255, 255, 255, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}

	res := ExtractContours(img, 1, 255)

	if b := res.Binary.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("binary dimensions: got %dx%d", b.Dx(), b.Dy())
	}
	if res.Binary.GrayAt(0, 0).Y != 255 || res.Binary.GrayAt(15, 15).Y != 0 {
		t.Error("dark field should be foreground and the square background")
	}
	if len(res.Contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(res.Contours))
	}
	if res.Contours[0].Hole || !res.Contours[1].Hole || res.Contours[1].Parent != 0 {
		t.Errorf("want frame border followed by its hole, got %+v / %+v", res.Contours[0], res.Contours[1])
	}
	if got := ContourArea(res.Contours[0].Points); got != 39*29 {
		t.Errorf("frame border area: got %v, want %d", got, 39*29)
	}
	if n := len(res.Outlines()); n != 2 {
		t.Errorf("Outlines: got %d, want 2", n)
	}
}

func TestApproximateChain(t *testing.T) {
	tests := []struct {
		name string
		in   []image.Point
		want []image.Point
	}{
		{"short chain kept", []image.Point{{0, 0}, {1, 0}}, []image.Point{{0, 0}, {1, 0}}},
		{
			"straight runs reduced",
			[]image.Point{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 1}, {2, 0}, {1, 0}},
			[]image.Point{{0, 0}, {0, 2}, {2, 2}, {2, 0}},
		},
		{
			"diagonal runs reduced",
			[]image.Point{{0, 0}, {1, 1}, {2, 2}, {1, 1}},
			[]image.Point{{0, 0}, {2, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, approximateChain(tt.in)); diff != "" {
				t.Errorf("approximateChain (-want +got):\n%s", diff)
			}
		})
	}
}
