package terminal

import (
	"io"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestInputHoldWindow(t *testing.T) {
	in := newInput(2)
	var keypad chip8.Keypad

	in.bytes <- []byte("q")
	assert.False(t, in.poll(&keypad))
	assert.True(t, keypad.IsPressed(0x4))

	// no repeat arrived, the key is held for the window
	in.poll(&keypad)
	assert.True(t, keypad.IsPressed(0x4))
	in.poll(&keypad)
	assert.False(t, keypad.IsPressed(0x4))
}

func TestInputRepeatKeepsKeyPressed(t *testing.T) {
	in := newInput(1)
	var keypad chip8.Keypad

	keypad.BeginWait()
	in.bytes <- []byte("v")
	in.poll(&keypad)
	key, ok := keypad.PollNewlyPressed()
	assert.True(t, ok)
	assert.Equal(t, chip8.Key(0xF), key)

	// a repeat of a held key is not a new press
	keypad.BeginWait()
	in.bytes <- []byte("vv")
	in.poll(&keypad)
	_, ok = keypad.PollNewlyPressed()
	assert.False(t, ok)
	assert.True(t, keypad.IsPressed(0xF))
}

func TestInputQuit(t *testing.T) {
	tests := []struct {
		name  string
		chunk []byte
		quit  bool
	}{
		{"escape", []byte{keyEscape}, true},
		{"ctrl c", []byte{keyCtrlC}, true},
		{"cursor key", []byte("\x1b[A"), false},
		{"function key", []byte("\x1bOP"), false},
		{"escape after key", []byte{'1', keyEscape}, true},
		{"mapped key", []byte("1"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newInput(1)
			var keypad chip8.Keypad
			in.bytes <- tt.chunk
			assert.Equal(t, tt.quit, in.poll(&keypad))
		})
	}
}

func TestInputEscapeSequenceIgnoresKeys(t *testing.T) {
	in := newInput(1)
	var keypad chip8.Keypad

	// ESC [ 1 ; 5 C contains digits that are mapped keys
	in.bytes <- []byte("\x1b[1;5Cw")
	assert.False(t, in.poll(&keypad))
	assert.False(t, keypad.IsPressed(0x1))
	assert.True(t, keypad.IsPressed(0x5))
}

func TestInputRead(t *testing.T) {
	in := newInput(1)
	reader, writer := io.Pipe()
	go in.read(reader)

	_, err := writer.Write([]byte("x"))
	assert.NoError(t, err)

	select {
	case chunk := <-in.bytes:
		assert.Equal(t, []byte("x"), chunk)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for input")
	}

	in.stop()
	_ = writer.Close()
}
