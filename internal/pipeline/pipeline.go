package pipeline

import (
	"errors"
	"image"
	"image/color"

	"github.com/ironsheep/frame-vision-mcp/internal/detection"
	"github.com/ironsheep/frame-vision-mcp/internal/imaging"
)

// ErrEmptyFrame is returned for frames with zero width or height.
var ErrEmptyFrame = errors.New("frame has no pixels")

// Drawing colors. Contours are drawn onto HSV-valued frames, so these are raw
// channel bytes rather than meaningful colors.
var (
	sceneColor   = color.Gray{Y: 255}
	contourColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	targetColor  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	rectColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Result is the outcome of ProcessFrame.
type Result struct {
	// Frame is the output selected by OutputChannel. It always has the
	// input's width and height.
	Frame image.Image

	// OutputChannel is the channel Frame was taken from, after resolving
	// unknown values to DefaultOutputChannel.
	OutputChannel OutputChannel

	// SelectedIndex is the index of the target in the target contour list,
	// or -1 when no target was found.
	SelectedIndex int

	// MaxContourArea is the area of the target, or 0 when none was found.
	MaxContourArea float64

	// Target and Rect are nil when no target was found.
	Target *detection.Contour
	Rect   *detection.RotatedRect

	// ContourCount is the number of contours traced from the color mask,
	// including the frame border.
	ContourCount int

	// SceneContourCount is the number of contours traced from the
	// grayscale frame.
	SceneContourCount int
}

// TargetFound reports whether a target region was selected.
func (r *Result) TargetFound() bool {
	return r.SelectedIndex >= 0
}

// ProcessFrame runs the full pipeline on one frame:
//
//  1. Denoise with a 3x3 morphological closing
//  2. Trace every contour of the grayscale frame for the scene view
//  3. Segment the frame by p's HSV bounds
//  4. Trace the contours of the color mask
//  5. Select the largest mask contour, skipping the frame border
//  6. Fit a rotated rectangle to the selection
//
// and returns the frame chosen by p.OutputChannel together with the target
// geometry. img is not modified. Finding no target is not an error; the
// result then carries SelectedIndex -1 and MaxContourArea 0.
//
// The only error is ErrEmptyFrame.
func ProcessFrame(img image.Image, p Parameters) (*Result, error) {
	if img.Bounds().Empty() {
		return nil, ErrEmptyFrame
	}

	outs := &Outputs{}
	defer outs.Release()

	raw := imaging.Denoise(img)
	outs.Raw = raw

	gray := imaging.ToGray(raw)
	scene := detection.ExtractContours(gray, p.BinaryLow, p.BinaryHigh)
	imaging.DrawContours(gray, scene.Outlines(), sceneColor)
	outs.Gray = gray

	seg := imaging.Segment(raw, p.HSVRange())
	outs.HSV = seg.HSV

	target := detection.ExtractContours(seg.Mask, p.BinaryLow, p.BinaryHigh)
	sel := detection.SelectLargest(target.Contours, true)

	all := imaging.CloneRGBA(seg.Masked)
	remaining := make([][]image.Point, len(sel.Remaining))
	for i, c := range sel.Remaining {
		remaining[i] = c.Points
	}
	imaging.DrawContours(all, remaining, contourColor)
	outs.AllContours = all

	maxView := imaging.CloneRGBA(seg.Masked)
	rectView := seg.Masked
	outs.MaxContour = maxView
	outs.BoundingRect = rectView

	res := &Result{
		OutputChannel:     p.OutputChannel.Resolve(),
		SelectedIndex:     sel.Index,
		MaxContourArea:    sel.Area,
		ContourCount:      len(target.Contours),
		SceneContourCount: len(scene.Contours),
	}

	if sel.Found() {
		c := target.Contours[sel.Index]
		rect := detection.MinAreaRect(c.Points)
		res.Target = &c
		res.Rect = &rect

		imaging.DrawPolygon(maxView, c.Points, targetColor)
		imaging.DrawPolygon(rectView, rect.CornerPoints(), rectColor)
	}

	res.Frame = SelectOutput(res.OutputChannel, outs)
	return res, nil
}

// SceneResult is the outcome of DetectSceneContours.
type SceneResult struct {
	// Frame is the grayscale frame with every contour drawn in white.
	Frame *image.Gray

	// Contours in trace order.
	Contours []detection.Contour
}

// DetectSceneContours traces every contour of img's grayscale frame under the
// inverted threshold [low, high] and draws them onto a grayscale copy.
//
// The only error is ErrEmptyFrame.
func DetectSceneContours(img image.Image, low, high int) (*SceneResult, error) {
	if img.Bounds().Empty() {
		return nil, ErrEmptyFrame
	}

	gray := imaging.ToGray(img)
	if g, ok := img.(*image.Gray); ok && g == gray {
		gray = imaging.CloneGray(g)
	}

	res := detection.ExtractContours(gray, low, high)
	imaging.DrawContours(gray, res.Outlines(), sceneColor)
	return &SceneResult{Frame: gray, Contours: res.Contours}, nil
}
