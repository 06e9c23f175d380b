package pixel

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "frame.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.NoError(t, png.Encode(f, img))
	return path
}

func TestLoadFile_DistinctivePixel(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, PanelWidth, PanelHeight))
	img.Set(10, 2, color.NRGBA{R: 0xAA, G: 0xBB, B: 0xCC, A: 0xFF})

	frame, err := LoadFile(writePNG(t, img))
	require.NoError(t, err)
	require.Len(t, frame, FrameSize)

	off := WireIndex(2, 10) * ChannelsPerPixel
	assert.Equal(t, []byte{0xCC, 0xBB, 0xAA}, frame[off:off+3])

	// Every other byte stays dark
	lit := 0
	for _, b := range frame {
		if b != 0 {
			lit++
		}
	}
	assert.Equal(t, 3, lit)
}

func TestLoadFile_AlphaDiscarded(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, PanelWidth, PanelHeight))
	img.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0x80})

	frame, err := LoadFile(writePNG(t, img))
	require.NoError(t, err)
	assert.Equal(t, []byte{30, 20, 10}, frame[0:3])
}

func TestLoadFile_WrongSizeIsBlank(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.White)
		}
	}

	frame, err := LoadFile(writePNG(t, img))
	require.NoError(t, err)
	assert.Equal(t, make([]byte, FrameSize), frame)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestLoadFile_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a png"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode image")
}

func TestFromImage_Gray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, PanelWidth, PanelHeight))
	img.SetGray(0, 1, color.Gray{Y: 77})

	frame := FromImage(img)
	off := WireIndex(1, 0) * ChannelsPerPixel
	assert.Equal(t, []byte{77, 77, 77}, frame[off:off+3])
}

func TestScan_RowMajor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 0, color.NRGBA{R: 1, A: 255})
	img.Set(0, 1, color.NRGBA{R: 2, A: 255})

	pixels := Scan(img)
	require.Len(t, pixels, 4)
	assert.Equal(t, Pixel{0, 0, 1}, pixels[1])
	assert.Equal(t, Pixel{0, 0, 2}, pixels[2])
}
