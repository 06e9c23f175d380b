// Package colorwheel maps a byte position onto a full hue rotation.
package colorwheel

// Color is an RGB triple.
type Color struct {
	R, G, B byte
}

// Wheel returns the color at pos. The curve runs through three 85-wide bands;
// all arithmetic wraps at 8 bits so fixtures tuned to it see identical values
// at the band edges.
func Wheel(pos byte) Color {
	p := 255 - pos
	switch {
	case p < 85:
		return Color{R: 255 - p*3, G: 0, B: p * 3}
	case p < 170:
		p -= 85
		return Color{R: 0, G: p * 3, B: 255 - p*3}
	default:
		p -= 170
		return Color{R: p * 3, G: 255 - p*3, B: 0}
	}
}

// Cycle returns Wheel for every position 0..255 in order.
func Cycle() []Color {
	colors := make([]Color, 256)
	for i := range colors {
		colors[i] = Wheel(byte(i))
	}
	return colors
}
