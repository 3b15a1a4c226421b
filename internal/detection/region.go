package detection

import "image"

// ContourArea returns the area enclosed by the closed polygon pts using the
// shoelace formula. The result is always non-negative regardless of winding.
// Polygons with fewer than three points have zero area.
func ContourArea(pts []image.Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var sum int
	for i, p := range pts {
		q := pts[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}
	if sum < 0 {
		sum = -sum
	}
	return float64(sum) / 2
}

// Selection is the outcome of SelectLargest.
type Selection struct {
	// Index of the selected contour in the slice passed to SelectLargest,
	// or -1 when no contour remains.
	Index int `json:"index"`

	// Area of the selected contour, or 0 when no contour remains.
	Area float64 `json:"area"`

	// Remaining lists the contours that took part in the scan, in their
	// original order. With excludeBorder set this omits the excluded contour.
	Remaining []Contour `json:"-"`
}

// Found reports whether a contour was selected.
func (s Selection) Found() bool {
	return s.Index >= 0
}

// SelectLargest picks the contour with the largest area.
//
// When excludeBorder is set, the contour with the globally largest area is
// removed first, unconditionally. With the inverted threshold used by
// ExtractContours that contour is the border around the whole frame. The
// largest of the rest is then chosen by a single forward scan starting from a
// maximum of zero; on equal areas the earlier contour wins. Contours with zero
// area (single points and lines) are therefore never selected.
func SelectLargest(contours []Contour, excludeBorder bool) Selection {
	areas := make([]float64, len(contours))
	for i, c := range contours {
		areas[i] = ContourArea(c.Points)
	}

	excluded := -1
	if excludeBorder && len(contours) > 0 {
		excluded = 0
		for i := 1; i < len(areas); i++ {
			if areas[i] > areas[excluded] {
				excluded = i
			}
		}
	}

	sel := Selection{Index: -1}
	remaining := make([]Contour, 0, len(contours))
	for i, c := range contours {
		if i == excluded {
			continue
		}
		remaining = append(remaining, c)
		if areas[i] > sel.Area {
			sel.Index = i
			sel.Area = areas[i]
		}
	}
	sel.Remaining = remaining
	return sel
}
