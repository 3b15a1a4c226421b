package imaging

import (
	"image"
	"image/color"
	"image/draw"
)

// DrawLine draws a one-pixel line from p0 to p1 (both inclusive) using
// Bresenham's algorithm. Pixels falling outside img's bounds are skipped.
func DrawLine(img draw.Image, p0, p1 image.Point, c color.Color) {
	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}

	bounds := img.Bounds()
	x, y := p0.X, p0.Y
	err := dx + dy
	for {
		if (image.Point{X: x, Y: y}).In(bounds) {
			img.Set(x, y, c)
		}
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// DrawPolygon draws the closed outline through pts, connecting point i to
// point (i+1) mod len(pts). A single point is drawn as one pixel.
func DrawPolygon(img draw.Image, pts []image.Point, c color.Color) {
	n := len(pts)
	switch n {
	case 0:
		return
	case 1:
		DrawLine(img, pts[0], pts[0], c)
		return
	}
	for i := 0; i < n; i++ {
		DrawLine(img, pts[i], pts[(i+1)%n], c)
	}
}

// DrawContours draws every outline in contours onto img.
func DrawContours(img draw.Image, contours [][]image.Point, c color.Color) {
	for _, pts := range contours {
		DrawPolygon(img, pts, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
