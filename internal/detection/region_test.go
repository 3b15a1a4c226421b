package detection

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// square returns a closed axis-aligned square contour of the given side with
// its top-left corner at (x, y).
func square(x, y, side int) Contour {
	return Contour{
		Points: []image.Point{{x, y}, {x, y + side}, {x + side, y + side}, {x + side, y}},
		Parent: -1,
	}
}

func TestContourArea(t *testing.T) {
	tests := []struct {
		name string
		pts  []image.Point
		want float64
	}{
		{"empty", nil, 0},
		{"single point", []image.Point{{3, 3}}, 0},
		{"segment", []image.Point{{0, 0}, {5, 5}}, 0},
		{"unit square", []image.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, 1},
		{"reversed winding", []image.Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, 1},
		{"triangle", []image.Point{{0, 0}, {4, 0}, {0, 3}}, 6},
		{"rectangle", []image.Point{{2, 3}, {2, 6}, {5, 6}, {5, 3}}, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContourArea(tt.pts); got != tt.want {
				t.Errorf("ContourArea = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectLargest(t *testing.T) {
	border := square(0, 0, 100)

	tests := []struct {
		name          string
		contours      []Contour
		excludeBorder bool
		wantIndex     int
		wantArea      float64
		wantRemaining int
	}{
		{"empty", nil, true, -1, 0, 0},
		{"border only", []Contour{border}, true, -1, 0, 0},
		{"border excluded", []Contour{border, square(10, 10, 5), square(30, 30, 8)}, true, 2, 64, 2},
		{"border kept", []Contour{border, square(10, 10, 5), square(30, 30, 8)}, false, 0, 10000, 3},
		{"border not first", []Contour{square(10, 10, 5), border, square(30, 30, 8)}, true, 2, 64, 2},
		{"tie keeps earlier", []Contour{border, square(1, 1, 6), square(20, 20, 6)}, true, 1, 36, 2},
		{"tied largest only first excluded", []Contour{square(0, 0, 9), square(20, 20, 9)}, true, 1, 81, 1},
		{"zero area never selected", []Contour{border, {Points: []image.Point{{4, 4}}, Parent: -1}}, true, -1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := SelectLargest(tt.contours, tt.excludeBorder)
			if sel.Index != tt.wantIndex {
				t.Errorf("Index: got %d, want %d", sel.Index, tt.wantIndex)
			}
			if sel.Area != tt.wantArea {
				t.Errorf("Area: got %v, want %v", sel.Area, tt.wantArea)
			}
			if len(sel.Remaining) != tt.wantRemaining {
				t.Errorf("Remaining: got %d, want %d", len(sel.Remaining), tt.wantRemaining)
			}
			if sel.Found() != (tt.wantIndex >= 0) {
				t.Errorf("Found: got %v", sel.Found())
			}
		})
	}
}

func TestSelectLargest_NeverPicksGlobalMaximum(t *testing.T) {
	contours := []Contour{square(5, 5, 3), square(0, 0, 50), square(20, 20, 10), square(40, 40, 2)}

	sel := SelectLargest(contours, true)
	if sel.Index == 1 {
		t.Fatal("selected the globally largest contour")
	}
	if sel.Index != 2 {
		t.Errorf("Index: got %d, want 2", sel.Index)
	}

	want := []Contour{contours[0], contours[2], contours[3]}
	if diff := cmp.Diff(want, sel.Remaining); diff != "" {
		t.Errorf("Remaining (-want +got):\n%s", diff)
	}
}

func TestSelectLargest_Deterministic(t *testing.T) {
	contours := []Contour{square(0, 0, 30), square(1, 1, 4), square(10, 10, 4), square(20, 1, 4)}

	first := SelectLargest(contours, true)
	for i := 0; i < 10; i++ {
		if got := SelectLargest(contours, true); got.Index != first.Index {
			t.Fatalf("run %d selected %d, first run selected %d", i, got.Index, first.Index)
		}
	}
	if first.Index != 1 {
		t.Errorf("Index: got %d, want 1", first.Index)
	}
}
