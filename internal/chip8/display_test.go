package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDrawSpriteIsInvolution(t *testing.T) {
	sprite := []byte{0xFF, 0x81, 0xA5, 0x3C}
	positions := []struct{ x, y int }{
		{0, 0}, {10, 12}, {60, 30}, {63, 31}, {70, 40},
	}

	for _, pos := range positions {
		var fb Framebuffer
		fb.DrawSprite(5, 5, []byte{0xF0, 0x0F})
		before := fb.Snapshot()

		fb.DrawSprite(pos.x, pos.y, sprite)
		fb.DrawSprite(pos.x, pos.y, sprite)
		assert.Equal(t, before, fb.Snapshot(), "position %d,%d", pos.x, pos.y)
	}
}

func TestDrawSpriteWraps(t *testing.T) {
	var fb Framebuffer
	collision := fb.DrawSprite(62, 31, []byte{0xF0, 0x80})
	assert.False(t, collision)

	frame := fb.Snapshot()
	assert.True(t, frame.Pixel(62, 31))
	assert.True(t, frame.Pixel(63, 31))
	assert.True(t, frame.Pixel(0, 31))
	assert.True(t, frame.Pixel(1, 31))
	assert.True(t, frame.Pixel(62, 0))
	assert.Equal(t, 5, frame.Lit())
}

func TestDrawSpriteStartCoordinateWraps(t *testing.T) {
	var fb Framebuffer
	fb.clip = true
	fb.DrawSprite(64+3, 32+2, []byte{0x80})

	frame := fb.Snapshot()
	assert.True(t, frame.Pixel(3, 2))
	assert.Equal(t, 1, frame.Lit())
}

func TestDrawSpriteClips(t *testing.T) {
	var fb Framebuffer
	fb.clip = true
	fb.DrawSprite(62, 31, []byte{0xF0, 0x80})

	frame := fb.Snapshot()
	assert.True(t, frame.Pixel(62, 31))
	assert.True(t, frame.Pixel(63, 31))
	assert.False(t, frame.Pixel(0, 31))
	assert.False(t, frame.Pixel(62, 0))
	assert.Equal(t, 2, frame.Lit())
}

func TestDrawSpriteCollision(t *testing.T) {
	var fb Framebuffer
	assert.False(t, fb.DrawSprite(0, 0, []byte{0x80}))
	assert.False(t, fb.DrawSprite(1, 0, []byte{0x80}))
	assert.True(t, fb.DrawSprite(0, 0, []byte{0xC0}))

	frame := fb.Snapshot()
	assert.Equal(t, 0, frame.Lit())
}

func TestFramebufferDirty(t *testing.T) {
	var fb Framebuffer
	assert.False(t, fb.Dirty())

	fb.DrawSprite(0, 0, []byte{0x80})
	assert.True(t, fb.Dirty())

	fb.ClearDirty()
	assert.False(t, fb.Dirty())

	fb.Clear()
	assert.True(t, fb.Dirty())
	frame := fb.Snapshot()
	assert.Equal(t, 0, frame.Lit())
}

func TestFramePixelWraps(t *testing.T) {
	var frame Frame
	frame[31][63] = true
	assert.True(t, frame.Pixel(-1, -1))
	assert.True(t, frame.Pixel(127, 63))
}
