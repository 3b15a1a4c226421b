// Package imaging provides the pixel-level stages of the frame vision pipeline.
//
// This package implements the operations that work directly on frame buffers:
// morphological denoising, color-space conversion and hue/saturation/value
// segmentation, grayscale conversion, Canny edge detection, primitive drawing
// (lines, polygons, contours), PNG encoding, and a cache for frames decoded
// from disk. All operations accept standard Go image.Image values and use a
// coordinate system where (0,0) is the top-left corner, X increases rightward,
// and Y increases downward.
//
// # Frames
//
// Color frames are *image.RGBA and single-channel frames are *image.Gray.
// Functions that produce new frames always rebase them so that Bounds().Min is
// (0,0). The pipeline stages (Denoise, ToHSV, InRange, ApplyMask, Segment,
// EdgeDetect) never modify their input and always write a fresh buffer. The
// Draw functions modify their argument, and ToGray returns an origin-based
// *image.Gray as-is.
//
// # HSV Encoding
//
// HSV frames reuse *image.RGBA storage with the three channels packed into the
// R, G and B bytes using the common 8-bit convention:
//   - H: hue in degrees divided by two (0-179; 359 degrees and up wrap to 0)
//   - S: saturation scaled to 0-255
//   - V: value scaled to 0-255
//
// Alpha is always 255. Segmentation bounds (HSVRange) are expressed in the same
// units.
//
// # Thread Safety
//
// FrameCache is safe for concurrent use. All other functions are stateless and
// can be called concurrently on different frames.
//
// # Error Handling
//
// Functions return errors only for I/O problems (loading, encoding) and for
// invalid coordinates. Degenerate inputs such as empty masks are not errors.
package imaging
