package pipeline

import "image"

// Outputs holds the candidate frames of one ProcessFrame call.
//
// Every frame is owned by the call that built the Outputs. SelectOutput hands
// exactly one of them to the caller and Release drops the rest.
type Outputs struct {
	Raw          image.Image
	Gray         image.Image
	HSV          image.Image
	AllContours  image.Image
	MaxContour   image.Image
	BoundingRect image.Image
}

// slots maps each output channel to the field holding its frame.
func (o *Outputs) slots() [outputLimit]*image.Image {
	return [outputLimit]*image.Image{
		OutputRaw:          &o.Raw,
		OutputGray:         &o.Gray,
		OutputHSV:          &o.HSV,
		OutputAllContours:  &o.AllContours,
		OutputMaxContour:   &o.MaxContour,
		OutputBoundingRect: &o.BoundingRect,
	}
}

// SelectOutput removes and returns the frame for channel c, falling back to
// DefaultOutputChannel for unknown channels. The returned frame belongs to
// the caller; a later Release does not touch it.
func SelectOutput(c OutputChannel, o *Outputs) image.Image {
	slot := o.slots()[c.Resolve()]
	img := *slot
	*slot = nil
	return img
}

// Release drops every frame still held.
func (o *Outputs) Release() {
	for _, slot := range o.slots() {
		*slot = nil
	}
}
