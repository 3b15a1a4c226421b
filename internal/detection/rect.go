package detection

import (
	"image"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// Bounds represents an axis-aligned bounding box in pixel coordinates.
//
// The coordinate convention follows standard image bounds:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner
type Bounds struct {
	X1 int `json:"x1"` // Left edge (inclusive)
	Y1 int `json:"y1"` // Top edge (inclusive)
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// Vertex is a sub-pixel position.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func vertex(v r2.Vec) Vertex { return Vertex{X: v.X, Y: v.Y} }

// RotatedRect is a rectangle of arbitrary orientation.
type RotatedRect struct {
	// Center of the rectangle.
	Center Vertex `json:"center"`

	// Width is the side length along the direction given by Angle.
	Width float64 `json:"width"`

	// Height is the side length perpendicular to Width.
	Height float64 `json:"height"`

	// Angle in degrees in [0, 90): the rotation of the Width side from the
	// +X axis, measured toward +Y (clockwise on screen).
	Angle float64 `json:"angle"`

	// Corners in clockwise order on screen. Corner i connects to corner
	// (i+1) mod 4.
	Corners [4]Vertex `json:"corners"`
}

// Area returns Width * Height.
func (r RotatedRect) Area() float64 {
	return r.Width * r.Height
}

// Bounds returns the smallest pixel box containing every corner.
func (r RotatedRect) Bounds() Bounds {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range r.Corners {
		minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X)
		minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y)
	}
	return Bounds{
		X1: int(math.Floor(minX)),
		Y1: int(math.Floor(minY)),
		X2: int(math.Ceil(maxX)),
		Y2: int(math.Ceil(maxY)),
	}
}

// CornerPoints returns the corners rounded to the nearest pixel, in the same
// order as Corners.
func (r RotatedRect) CornerPoints() []image.Point {
	pts := make([]image.Point, len(r.Corners))
	for i, c := range r.Corners {
		pts[i] = image.Point{X: int(math.Round(c.X)), Y: int(math.Round(c.Y))}
	}
	return pts
}

// ConvexHull returns the convex hull of pts using Andrew's monotone chain.
// Duplicate and collinear points are dropped, so two distinct collinear
// inputs yield a two-point hull. The input slice is not modified.
func ConvexHull(pts []image.Point) []image.Point {
	sorted := make([]image.Point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	uniq := sorted[:0]
	for i, p := range sorted {
		if i == 0 || p != sorted[i-1] {
			uniq = append(uniq, p)
		}
	}
	if len(uniq) < 3 {
		return uniq
	}

	cross := func(o, a, b image.Point) int {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	hull := make([]image.Point, 0, 2*len(uniq))
	for _, p := range uniq {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(uniq) - 2; i >= 0; i-- {
		p := uniq[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

// MinAreaRect returns the minimum-area rectangle enclosing pts.
//
// One side of the optimal rectangle is always collinear with an edge of the
// convex hull, so every hull edge is tried and the smallest fit kept (the
// first one on equal areas). The result is exact up to floating point.
//
// Degenerate inputs do not fail: no points give the zero RotatedRect, a single
// distinct point gives a zero-size rectangle at that point, and collinear
// points give a zero-height rectangle along the segment.
func MinAreaRect(pts []image.Point) RotatedRect {
	hull := ConvexHull(pts)
	switch len(hull) {
	case 0:
		return RotatedRect{}
	case 1:
		v := Vertex{X: float64(hull[0].X), Y: float64(hull[0].Y)}
		return RotatedRect{Center: v, Corners: [4]Vertex{v, v, v, v}}
	}

	vecs := make([]r2.Vec, len(hull))
	for i, p := range hull {
		vecs[i] = r2.Vec{X: float64(p.X), Y: float64(p.Y)}
	}

	var (
		best                   = math.Inf(1)
		u, n                   r2.Vec
		minU, maxU, minN, maxN float64
	)
	for i := range vecs {
		edge := r2.Sub(vecs[(i+1)%len(vecs)], vecs[i])
		eu := r2.Unit(edge)
		en := r2.Vec{X: -eu.Y, Y: eu.X}

		lu, hu := math.Inf(1), math.Inf(-1)
		ln, hn := math.Inf(1), math.Inf(-1)
		for _, v := range vecs {
			pu, pn := r2.Dot(v, eu), r2.Dot(v, en)
			lu, hu = math.Min(lu, pu), math.Max(hu, pu)
			ln, hn = math.Min(ln, pn), math.Max(hn, pn)
		}

		if area := (hu - lu) * (hn - ln); area < best {
			best = area
			u, n = eu, en
			minU, maxU, minN, maxN = lu, hu, ln, hn
		}
	}

	at := func(a, b float64) r2.Vec {
		return r2.Add(r2.Scale(a, u), r2.Scale(b, n))
	}

	width, height := maxU-minU, maxN-minN
	angle := math.Mod(math.Atan2(u.Y, u.X)*180/math.Pi, 180)
	if angle < 0 {
		angle += 180
	}
	if angle >= 90 {
		angle -= 90
		width, height = height, width
	}

	return RotatedRect{
		Center: vertex(at((minU+maxU)/2, (minN+maxN)/2)),
		Width:  width,
		Height: height,
		Angle:  angle,
		Corners: [4]Vertex{
			vertex(at(minU, minN)),
			vertex(at(maxU, minN)),
			vertex(at(maxU, maxN)),
			vertex(at(minU, maxN)),
		},
	}
}
