package palette

import (
	"image/color"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	p, err := New("Lime", " navy ")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}, p.Foreground)
	assert.Equal(t, color.RGBA{R: 0x00, G: 0x00, B: 0x80, A: 0xff}, p.Background)

	_, err = New("notacolour", "black")
	assert.ErrorContains(t, err, "foreground: unsupported colour name 'notacolour'")

	_, err = New("white", "")
	assert.ErrorContains(t, err, "background")
}

func TestRGBA(t *testing.T) {
	var frame chip8.Frame
	frame[0][0] = true
	frame[31][63] = true

	pixels := Default.RGBA(&frame)
	assert.Len(t, pixels, FrameBytes)

	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, pixels[0:4])
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0xff}, pixels[4:8])

	last := FrameBytes - BytesPerPixel
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, pixels[last:])

	// second row starts after one full row of pixels
	secondRow := chip8.DisplayWidth * BytesPerPixel
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0xff}, pixels[secondRow:secondRow+4])
}

func TestColor(t *testing.T) {
	p := Palette{
		Foreground: color.RGBA{R: 1, A: 255},
		Background: color.RGBA{B: 2, A: 255},
	}
	assert.Equal(t, p.Foreground, p.Color(true))
	assert.Equal(t, p.Background, p.Color(false))
}
