// Package palette converts monochrome CHIP-8 frames to colour images.
package palette

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"golang.org/x/image/colornames"
)

// BytesPerPixel is the size of one RGBA pixel.
const BytesPerPixel = 4

// FrameBytes is the size of a converted frame in bytes.
const FrameBytes = chip8.DisplayWidth * chip8.DisplayHeight * BytesPerPixel

// Palette defines the colours of lit and unlit pixels.
type Palette struct {
	Foreground color.RGBA
	Background color.RGBA
}

// Default is white on black.
var Default = Palette{
	Foreground: colornames.White,
	Background: colornames.Black,
}

// New returns a palette for the given SVG colour names.
func New(foreground, background string) (Palette, error) {
	fg, err := Lookup(foreground)
	if err != nil {
		return Palette{}, fmt.Errorf("foreground: %w", err)
	}
	bg, err := Lookup(background)
	if err != nil {
		return Palette{}, fmt.Errorf("background: %w", err)
	}
	return Palette{Foreground: fg, Background: bg}, nil
}

// Lookup returns the colour for a SVG 1.1 colour name like "lime" or "darkslategray".
func Lookup(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unsupported colour name '%s'", name)
	}
	return c, nil
}

// Color returns the colour of a pixel state.
func (p Palette) Color(lit bool) color.RGBA {
	if lit {
		return p.Foreground
	}
	return p.Background
}

// FillRGBA writes the frame as RGBA pixels in row-major order into dst.
// dst has to hold at least FrameBytes bytes.
func (p Palette) FillRGBA(frame *chip8.Frame, dst []byte) {
	i := 0
	for y := range chip8.DisplayHeight {
		for x := range chip8.DisplayWidth {
			c := p.Color(frame[y][x])
			dst[i] = c.R
			dst[i+1] = c.G
			dst[i+2] = c.B
			dst[i+3] = c.A
			i += BytesPerPixel
		}
	}
}

// RGBA returns the frame converted to a new RGBA pixel buffer.
func (p Palette) RGBA(frame *chip8.Frame) []byte {
	dst := make([]byte, FrameBytes)
	p.FillRGBA(frame, dst)
	return dst
}
