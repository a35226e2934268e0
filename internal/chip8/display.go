package chip8

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Frame is a snapshot of the display, indexed by row and column.
type Frame [DisplayHeight][DisplayWidth]bool

// Pixel returns whether the pixel at the given position is on.
// Coordinates wrap around the display edges.
func (f Frame) Pixel(x, y int) bool {
	return f[wrap(y, DisplayHeight)][wrap(x, DisplayWidth)]
}

// Lit returns the number of pixels that are on.
func (f Frame) Lit() int {
	count := 0
	for _, row := range f {
		for _, on := range row {
			if on {
				count++
			}
		}
	}
	return count
}

// Framebuffer is the monochrome display memory. It is only mutated by Clear and
// DrawSprite and tracks whether it changed since the last ClearDirty call.
type Framebuffer struct {
	pixels Frame
	clip   bool // drop sprite pixels past the right and bottom edge instead of wrapping
	dirty  bool
}

// Clear turns every pixel off.
func (fb *Framebuffer) Clear() {
	fb.pixels = Frame{}
	fb.dirty = true
}

// DrawSprite XORs the sprite onto the display with its top left corner at x, y.
// Every byte of the sprite is one row of 8 pixels, most significant bit first.
// It returns whether any pixel was turned off.
func (fb *Framebuffer) DrawSprite(x, y int, sprite []byte) bool {
	x = wrap(x, DisplayWidth)
	y = wrap(y, DisplayHeight)
	collision := false

	for row, line := range sprite {
		py := y + row
		if py >= DisplayHeight {
			if fb.clip {
				break
			}
			py %= DisplayHeight
		}

		for col := range 8 {
			if line&(0x80>>col) == 0 {
				continue
			}
			px := x + col
			if px >= DisplayWidth {
				if fb.clip {
					break
				}
				px %= DisplayWidth
			}

			if fb.pixels[py][px] {
				collision = true
			}
			fb.pixels[py][px] = !fb.pixels[py][px]
		}
	}

	fb.dirty = true
	return collision
}

// Snapshot returns a copy of the current display content.
func (fb *Framebuffer) Snapshot() Frame {
	return fb.pixels
}

// Dirty returns whether the display changed since the last ClearDirty call.
func (fb *Framebuffer) Dirty() bool {
	return fb.dirty
}

// ClearDirty resets the change tracking after the display was rendered.
func (fb *Framebuffer) ClearDirty() {
	fb.dirty = false
}

func wrap(value, size int) int {
	value %= size
	if value < 0 {
		value += size
	}
	return value
}
