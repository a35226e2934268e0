package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeypad(t *testing.T) {
	var k Keypad
	assert.False(t, k.IsPressed(0xA))

	k.SetPressed(0xA, true)
	assert.True(t, k.IsPressed(0xA))
	assert.True(t, k.IsPressed(0x1A), "only the low nibble is used")

	k.ReleaseAll()
	assert.False(t, k.IsPressed(0xA))
}

func TestKeypadNewlyPressed(t *testing.T) {
	var k Keypad

	// presses before the wait are not latched
	k.SetPressed(0x1, true)
	k.SetPressed(0x1, false)
	_, ok := k.PollNewlyPressed()
	assert.False(t, ok)

	k.BeginWait()
	assert.True(t, k.waiting)
	_, ok = k.PollNewlyPressed()
	assert.False(t, ok)

	k.SetPressed(0x5, true)
	k.SetPressed(0x9, true)
	key, ok := k.PollNewlyPressed()
	assert.True(t, ok)
	assert.Equal(t, Key(0x5), key)
	assert.False(t, k.waiting)

	_, ok = k.PollNewlyPressed()
	assert.False(t, ok)
}

func TestKeypadBeginWaitDropsStaleLatch(t *testing.T) {
	var k Keypad
	k.BeginWait()
	k.SetPressed(0x2, true)

	k.BeginWait()
	_, ok := k.PollNewlyPressed()
	assert.False(t, ok)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "F", Key(0xF).String())
	assert.Equal(t, "0", Key(0x10).String())
}
