// Package pixel converts 16x16 images into wire-order frame buffers for a
// serpentine-wired LED panel.
package pixel

import (
	"errors"
)

const (
	// PanelWidth is the number of columns on the panel.
	PanelWidth = 16
	// PanelHeight is the number of rows on the panel.
	PanelHeight = 16
	// PixelCount is the number of pixels in one frame.
	PixelCount = PanelWidth * PanelHeight
	// SegmentLength is the number of pixels in one chained wiring segment.
	SegmentLength = 8
	// SegmentCount is the number of wiring segments on the panel.
	SegmentCount = PixelCount / SegmentLength
	// ChannelsPerPixel is the number of bytes per pixel on the wire.
	ChannelsPerPixel = 3
	// FrameSize is the length of a flattened frame buffer.
	FrameSize = PixelCount * ChannelsPerPixel
)

// ErrChannelCount is returned when a source pixel has neither 3 nor 4 channels.
var ErrChannelCount = errors.New("pixel: expected 3 or 4 channels")

// Pixel is a channel triple in wire order (B, G, R).
type Pixel [ChannelsPerPixel]byte

// FromChannels normalizes an RGB or RGBA sample into a wire-order pixel.
// Alpha is discarded.
func FromChannels(ch []byte) (Pixel, error) {
	if len(ch) != 3 && len(ch) != 4 {
		return Pixel{}, ErrChannelCount
	}
	return Pixel{ch[2], ch[1], ch[0]}, nil
}

// SegmentOffsets returns the start offset of every wiring segment in chain
// order: all left half-rows first, then all right half-rows.
func SegmentOffsets() []int {
	offsets := make([]int, 0, SegmentCount)
	for i := 0; i < PixelCount; i += PanelWidth {
		offsets = append(offsets, i)
	}
	for i := SegmentLength; i < PixelCount; i += PanelWidth {
		offsets = append(offsets, i)
	}
	return offsets
}

// Remap reorders row-major pixels into panel wiring order and flattens them.
// Odd segments run backwards. Input that is not exactly PixelCount long
// yields a blank frame.
func Remap(pixels []Pixel) []byte {
	frame := make([]byte, FrameSize)
	if len(pixels) != PixelCount {
		return frame
	}

	pos := 0
	for seg, offset := range SegmentOffsets() {
		for k := 0; k < SegmentLength; k++ {
			src := offset + k
			if seg%2 == 1 {
				src = offset + SegmentLength - 1 - k
			}
			copy(frame[pos:pos+ChannelsPerPixel], pixels[src][:])
			pos += ChannelsPerPixel
		}
	}

	return frame
}

// WireIndex returns the wire-order position of the image pixel at row, col,
// or -1 if the coordinate is off the panel. Multiply by ChannelsPerPixel for
// the byte offset in a frame buffer.
func WireIndex(row, col int) int {
	if row < 0 || row >= PanelHeight || col < 0 || col >= PanelWidth {
		return -1
	}

	seg := row
	if col >= SegmentLength {
		seg += PanelHeight
	}
	k := col % SegmentLength
	if seg%2 == 1 {
		k = SegmentLength - 1 - k
	}
	return seg*SegmentLength + k
}
