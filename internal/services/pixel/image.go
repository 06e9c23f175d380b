package pixel

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"log"
	"os"
)

// LoadFile decodes the image at path and returns its wire-order frame buffer.
func LoadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	b := img.Bounds()
	if b.Dx()*b.Dy() != PixelCount {
		log.Printf("🖼️  %s image %s is %dx%d, sending blank frame", format, path, b.Dx(), b.Dy())
	}

	return FromImage(img), nil
}

// FromImage converts img to a wire-order frame buffer.
func FromImage(img image.Image) []byte {
	return Remap(Scan(img))
}

// Scan reads img in row-major order and normalizes every pixel to wire
// channel order.
func Scan(img image.Image) []Pixel {
	b := img.Bounds()
	pixels := make([]Pixel, 0, b.Dx()*b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			// RGBA always carries four channels
			p, _ := FromChannels([]byte{c.R, c.G, c.B, c.A})
			pixels = append(pixels, p)
		}
	}

	return pixels
}
