package pipeline

import (
	"image"
	"testing"
)

// newTestOutputs returns Outputs whose frames have distinct widths, so each
// can be identified by its width: channel c has width c.
func newTestOutputs() *Outputs {
	frame := func(w int) image.Image { return image.NewGray(image.Rect(0, 0, w, 1)) }
	return &Outputs{
		Raw:          frame(int(OutputRaw)),
		Gray:         frame(int(OutputGray)),
		HSV:          frame(int(OutputHSV)),
		AllContours:  frame(int(OutputAllContours)),
		MaxContour:   frame(int(OutputMaxContour)),
		BoundingRect: frame(int(OutputBoundingRect)),
	}
}

func TestSelectOutput(t *testing.T) {
	tests := []struct {
		name    string
		channel OutputChannel
		want    int
	}{
		{"raw", OutputRaw, 1},
		{"gray", OutputGray, 2},
		{"hsv", OutputHSV, 3},
		{"all contours", OutputAllContours, 4},
		{"max contour", OutputMaxContour, 5},
		{"bounding rect", OutputBoundingRect, 6},
		{"zero falls back", 0, 4},
		{"unknown falls back", 12, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outs := newTestOutputs()
			img := SelectOutput(tt.channel, outs)
			if img == nil {
				t.Fatal("SelectOutput returned nil")
			}
			if got := img.Bounds().Dx(); got != tt.want {
				t.Errorf("selected frame of channel %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSelectOutput_ReleaseKeepsSelection(t *testing.T) {
	outs := newTestOutputs()

	img := SelectOutput(OutputMaxContour, outs)
	outs.Release()

	if img == nil || img.Bounds().Dx() != int(OutputMaxContour) {
		t.Fatal("selected frame lost after Release")
	}
	for c, slot := range outs.slots() {
		if slot != nil && *slot != nil {
			t.Errorf("channel %d still held after Release", c)
		}
	}
}
