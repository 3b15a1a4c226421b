package imaging

import (
	"image"
	"math"
)

// EdgeDetect performs Canny edge detection on a frame.
//
// The output is a single-channel frame of the same dimensions as img where
// edge pixels are 255 and everything else is 0. It is an alternative way to
// inspect scene structure when tuning the binary threshold.
//
// Parameters:
//   - img: Source frame (color or grayscale).
//   - thresholdLow: Gradient magnitudes below this (0-255) are discarded.
//   - thresholdHigh: Gradient magnitudes at or above this (0-255) are strong
//     edges and always kept.
//
// # Algorithm
//
//  1. Grayscale conversion with ToGray (BT.601 luminance)
//  2. 5x5 Gaussian blur
//  3. Sobel gradients, magnitude = sqrt(Gx² + Gy²)
//  4. Non-maximum suppression along the quantized gradient direction
//  5. Hysteresis: weak pixels (between the thresholds) are kept only when
//     8-connected, directly or through other weak pixels, to a strong pixel
//
// Recommended starting points are thresholdLow=50, thresholdHigh=150.
// Thresholds given in the wrong order are swapped.
func EdgeDetect(img image.Image, thresholdLow, thresholdHigh int) *image.Gray {
	if thresholdLow > thresholdHigh {
		thresholdLow, thresholdHigh = thresholdHigh, thresholdLow
	}
	src := ToGray(img)
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	result := image.NewGray(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return result
	}

	gray := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gray[y*width+x] = float64(src.Pix[y*src.Stride+x]) / 255.0
		}
	}

	blurred := gaussianBlur(gray, width, height)
	magnitude, direction := sobel(blurred, width, height)
	suppressed := nonMaxSuppress(magnitude, direction, width, height)

	lowThresh := float64(thresholdLow) / 255.0
	highThresh := float64(thresholdHigh) / 255.0

	// Seed from strong pixels and grow through weak ones.
	queue := make([]int, 0, width)
	for i, v := range suppressed {
		if v > 0 && v >= highThresh {
			result.Pix[(i/width)*result.Stride+i%width] = 255
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		i := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		x, y := i%width, i/width
		for ky := -1; ky <= 1; ky++ {
			for kx := -1; kx <= 1; kx++ {
				px, py := x+kx, y+ky
				if px < 0 || py < 0 || px >= width || py >= height {
					continue
				}
				j := py*width + px
				o := py*result.Stride + px
				if result.Pix[o] != 0 {
					continue
				}
				if v := suppressed[j]; v > 0 && v >= lowThresh {
					result.Pix[o] = 255
					queue = append(queue, j)
				}
			}
		}
	}

	return result
}

var (
	sobelX = [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// sobel returns per-pixel gradient magnitude and direction (radians).
// Border pixels use clamped (replicated) neighbors.
func sobel(img []float64, width, height int) (magnitude, direction []float64) {
	magnitude = make([]float64, width*height)
	direction = make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := img[clamp(y+ky, 0, height-1)*width+clamp(x+kx, 0, width-1)]
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			magnitude[y*width+x] = math.Sqrt(gx*gx + gy*gy)
			direction[y*width+x] = math.Atan2(gy, gx)
		}
	}
	return magnitude, direction
}

// nonMaxSuppress keeps only pixels that are local maxima along their gradient
// direction. The outermost ring of pixels is always suppressed.
func nonMaxSuppress(magnitude, direction []float64, width, height int) []float64 {
	suppressed := make([]float64, width*height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			i := y*width + x
			angle := direction[i]
			mag := magnitude[i]

			var n1, n2 float64
			switch {
			case (angle >= -math.Pi/8 && angle < math.Pi/8) || angle >= 7*math.Pi/8 || angle < -7*math.Pi/8:
				n1, n2 = magnitude[i-1], magnitude[i+1]
			case (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8):
				n1, n2 = magnitude[i-width+1], magnitude[i+width-1]
			case (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8):
				n1, n2 = magnitude[i-width], magnitude[i+width]
			default:
				n1, n2 = magnitude[i-width-1], magnitude[i+width+1]
			}

			if mag >= n1 && mag >= n2 {
				suppressed[i] = mag
			}
		}
	}
	return suppressed
}

// gaussianBlur applies a 5x5 Gaussian blur (sigma ≈ 1.4):
//
//	1  4  7  4  1
//	4 16 26 16  4
//	7 26 41 26  7
//	4 16 26 16  4
//	1  4  7  4  1
//
// Kernel sum is 273. Border pixels use clamped (replicated) edge values.
func gaussianBlur(img []float64, width, height int) []float64 {
	kernel := [5][5]float64{
		{1, 4, 7, 4, 1},
		{4, 16, 26, 16, 4},
		{7, 26, 41, 26, 7},
		{4, 16, 26, 16, 4},
		{1, 4, 7, 4, 1},
	}
	const kernelSum = 273.0

	result := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float64
			for ky := -2; ky <= 2; ky++ {
				for kx := -2; kx <= 2; kx++ {
					py := clamp(y+ky, 0, height-1)
					px := clamp(x+kx, 0, width-1)
					sum += img[py*width+px] * kernel[ky+2][kx+2]
				}
			}
			result[y*width+x] = sum / kernelSum
		}
	}
	return result
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
