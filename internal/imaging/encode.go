package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// EncodedFrame contains a frame encoded as base64 PNG together with the
// metadata a client needs to display it.
type EncodedFrame struct {
	// Width of the frame in pixels.
	Width int `json:"width"`

	// Height of the frame in pixels.
	Height int `json:"height"`

	// Channels is 1 for grayscale frames and 3 for color frames.
	Channels int `json:"channels"`

	// ImageBase64 is the frame encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// EncodePNG encodes img as a base64 PNG.
//
// Returns an error only if PNG encoding fails.
func EncodePNG(img image.Image) (*EncodedFrame, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}

	bounds := img.Bounds()
	return &EncodedFrame{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Channels:    Channels(img),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
