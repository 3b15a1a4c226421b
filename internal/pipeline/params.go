package pipeline

import (
	"fmt"

	"github.com/ironsheep/frame-vision-mcp/internal/imaging"
)

// OutputChannel selects which intermediate frame ProcessFrame returns.
type OutputChannel int

const (
	// OutputRaw is the denoised input frame.
	OutputRaw OutputChannel = iota + 1
	// OutputGray is the grayscale frame with every scene contour drawn.
	OutputGray
	// OutputHSV is the frame converted to HSV.
	OutputHSV
	// OutputAllContours is the masked frame with every target contour drawn,
	// except the frame border.
	OutputAllContours
	// OutputMaxContour is the masked frame with only the selected contour.
	OutputMaxContour
	// OutputBoundingRect is the masked frame with the rotated rectangle
	// around the selected contour.
	OutputBoundingRect

	outputLimit
)

// DefaultOutputChannel is used for any value outside the known channels.
const DefaultOutputChannel = OutputAllContours

var outputNames = [outputLimit]string{
	OutputRaw:          "raw",
	OutputGray:         "gray",
	OutputHSV:          "hsv",
	OutputAllContours:  "all_contours",
	OutputMaxContour:   "max_contour",
	OutputBoundingRect: "bounding_rect",
}

// Valid reports whether c names a known channel.
func (c OutputChannel) Valid() bool {
	return c >= OutputRaw && c < outputLimit
}

// Resolve returns c if it is valid and DefaultOutputChannel otherwise.
func (c OutputChannel) Resolve() OutputChannel {
	if c.Valid() {
		return c
	}
	return DefaultOutputChannel
}

func (c OutputChannel) String() string {
	if c.Valid() {
		return outputNames[c]
	}
	return fmt.Sprintf("OutputChannel(%d)", int(c))
}

// ParseOutputChannel looks up a channel by the name String returns.
func ParseOutputChannel(name string) (OutputChannel, error) {
	for c := OutputRaw; c < outputLimit; c++ {
		if outputNames[c] == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown output channel %q", name)
}

// Parameters are the operator-tunable settings for one ProcessFrame call.
//
// Low <= High is not required. An inverted color bound admits no pixels and
// an inverted binary bound makes every pixel foreground; neither is an error.
type Parameters struct {
	HueLow  int `json:"hue_low" yaml:"hue_low"`
	HueHigh int `json:"hue_high" yaml:"hue_high"`
	SatLow  int `json:"sat_low" yaml:"sat_low"`
	SatHigh int `json:"sat_high" yaml:"sat_high"`
	ValLow  int `json:"val_low" yaml:"val_low"`
	ValHigh int `json:"val_high" yaml:"val_high"`

	// BinaryLow and BinaryHigh bound the intensities that become background
	// in the inverted threshold.
	BinaryLow  int `json:"binary_low" yaml:"binary_low"`
	BinaryHigh int `json:"binary_high" yaml:"binary_high"`

	OutputChannel OutputChannel `json:"output_channel" yaml:"output_channel"`
}

// DefaultParameters returns settings that pick out saturated yellow objects
// and return the all-contours view.
func DefaultParameters() Parameters {
	return Parameters{
		HueLow:        20,
		HueHigh:       35,
		SatLow:        100,
		SatHigh:       255,
		ValLow:        100,
		ValHigh:       255,
		BinaryLow:     1,
		BinaryHigh:    255,
		OutputChannel: DefaultOutputChannel,
	}
}

// HSVRange returns the color bounds as an imaging.HSVRange.
func (p Parameters) HSVRange() imaging.HSVRange {
	return imaging.HSVRange{
		HueLow:  p.HueLow,
		HueHigh: p.HueHigh,
		SatLow:  p.SatLow,
		SatHigh: p.SatHigh,
		ValLow:  p.ValLow,
		ValHigh: p.ValHigh,
	}
}

// Validate checks that every bound lies within the 8-bit channel range.
// The output channel is not checked; unknown values resolve to
// DefaultOutputChannel.
func (p Parameters) Validate() error {
	bounds := []struct {
		name  string
		value int
	}{
		{"hue_low", p.HueLow},
		{"hue_high", p.HueHigh},
		{"sat_low", p.SatLow},
		{"sat_high", p.SatHigh},
		{"val_low", p.ValLow},
		{"val_high", p.ValHigh},
		{"binary_low", p.BinaryLow},
		{"binary_high", p.BinaryHigh},
	}
	for _, b := range bounds {
		if b.value < 0 || b.value > 255 {
			return fmt.Errorf("%s must be between 0 and 255, got %d", b.name, b.value)
		}
	}
	return nil
}
