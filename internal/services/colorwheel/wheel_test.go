package colorwheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// reference evaluates the curve in int arithmetic and masks to 8 bits.
func reference(pos int) Color {
	p := 255 - pos
	switch {
	case p < 85:
		return Color{byte((255 - p*3) & 0xFF), 0, byte((p * 3) & 0xFF)}
	case p < 170:
		p -= 85
		return Color{0, byte((p * 3) & 0xFF), byte((255 - p*3) & 0xFF)}
	default:
		p -= 170
		return Color{byte((p * 3) & 0xFF), byte((255 - p*3) & 0xFF), 0}
	}
}

func TestWheel_Endpoints(t *testing.T) {
	assert.Equal(t, Color{255, 0, 0}, Wheel(0))
	assert.Equal(t, Color{255, 0, 0}, Wheel(255))
}

func TestWheel_BandBoundaries(t *testing.T) {
	tests := []struct {
		name string
		pos  byte
		want Color
	}{
		{"p=84 last of first band", 171, Color{3, 0, 252}},
		{"p=85 first of second band", 170, Color{0, 0, 255}},
		{"p=169 last of second band", 86, Color{0, 252, 3}},
		{"p=170 first of third band", 85, Color{0, 255, 0}},
		{"p=0", 255, Color{255, 0, 0}},
		{"p=255", 0, Color{255, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wheel(tt.pos))
		})
	}
}

func TestWheel_MatchesReferenceEverywhere(t *testing.T) {
	for pos := 0; pos < 256; pos++ {
		assert.Equal(t, reference(pos), Wheel(byte(pos)), "pos %d", pos)
	}
}

func TestWheel_OneChannelOffPerBand(t *testing.T) {
	for pos := 0; pos < 256; pos++ {
		c := Wheel(byte(pos))
		zeros := 0
		for _, v := range []byte{c.R, c.G, c.B} {
			if v == 0 {
				zeros++
			}
		}
		assert.GreaterOrEqual(t, zeros, 1, "pos %d: %+v", pos, c)
	}
}

func TestCycle(t *testing.T) {
	colors := Cycle()
	assert.Len(t, colors, 256)
	assert.Equal(t, Wheel(0), colors[0])
	assert.Equal(t, Wheel(128), colors[128])
	assert.Equal(t, Wheel(255), colors[255])
}
