// Package detection finds regions in binary frames and fits shapes to them.
//
// This package implements the geometric stages of the frame vision pipeline:
//
//   - Contour extraction: inverted intensity threshold followed by
//     Suzuki-Abe border following with the full nesting hierarchy
//   - Region selection: the largest contour by area, optionally skipping the
//     border that surrounds the whole frame
//   - Shape fitting: the minimum-area rotated rectangle around a contour
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//
// Contour points are integer pixel positions. Rotated rectangles use
// sub-pixel Vertex values; CornerPoints rounds them for drawing.
//
// # Degenerate Input
//
// Nothing in this package returns an error. Frames without foreground give
// an empty contour list, selection over nothing gives index -1 and area 0, and
// fitting zero, one or collinear points gives a zero-area rectangle.
package detection
