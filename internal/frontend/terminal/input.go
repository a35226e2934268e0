package terminal

import (
	"io"
	"sync"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/keymap"
)

const (
	keyEscape = 0x1b
	keyCtrlC  = 0x03

	// DefaultHoldPolls is the number of polls a key stays pressed after its last arrival.
	// It bridges the delay before the terminal starts repeating a held key.
	DefaultHoldPolls = 15
)

// input turns the byte stream of a raw mode terminal into keypad state.
// Terminals do not report key releases, a key is released once no repeat
// of it arrived for holdPolls polls.
type input struct {
	holdPolls int
	bytes     chan []byte
	quit      bool
	remaining [chip8.KeyCount]int

	stopCh  chan struct{}
	stopped sync.Once
}

func newInput(holdPolls int) *input {
	if holdPolls < 1 {
		holdPolls = DefaultHoldPolls
	}
	return &input{
		holdPolls: holdPolls,
		bytes:     make(chan []byte, 64),
		stopCh:    make(chan struct{}),
	}
}

// read forwards chunks from the reader until it fails or the input is stopped.
// A blocked Read on stdin can not be interrupted, the goroutine ends with the process.
func (in *input) read(reader io.Reader) {
	buf := make([]byte, 64)
	for {
		n, err := reader.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			select {
			case in.bytes <- chunk:
			case <-in.stopCh:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

func (in *input) stop() {
	in.stopped.Do(func() {
		close(in.stopCh)
	})
}

// poll applies all pending input to the keypad and returns whether quitting was requested.
func (in *input) poll(keypad *chip8.Keypad) bool {
	var seen [chip8.KeyCount]bool

	for pending := true; pending; {
		select {
		case chunk := <-in.bytes:
			in.handleChunk(chunk, &seen)
		default:
			pending = false
		}
	}

	for i := range chip8.KeyCount {
		key := chip8.Key(i)
		switch {
		case seen[i]:
			if in.remaining[i] == 0 {
				keypad.SetPressed(key, true)
			}
			in.remaining[i] = in.holdPolls

		case in.remaining[i] > 0:
			in.remaining[i]--
			if in.remaining[i] == 0 {
				keypad.SetPressed(key, false)
			}
		}
	}

	return in.quit
}

func (in *input) handleChunk(chunk []byte, seen *[chip8.KeyCount]bool) {
	for i := 0; i < len(chunk); i++ {
		b := chunk[i]
		switch b {
		case keyCtrlC:
			in.quit = true

		case keyEscape:
			// escape sequences of cursor and function keys start with ESC [ or ESC O
			if i+1 < len(chunk) && (chunk[i+1] == '[' || chunk[i+1] == 'O') {
				i = skipEscapeSequence(chunk, i+2)
				continue
			}
			in.quit = true

		default:
			if key, ok := keymap.Lookup(rune(b)); ok {
				seen[key] = true
			}
		}
	}
}

// skipEscapeSequence returns the index of the final byte of the sequence
// whose parameters start at index start.
func skipEscapeSequence(chunk []byte, start int) int {
	for i := start; i < len(chunk); i++ {
		if chunk[i] >= 0x40 && chunk[i] <= 0x7e {
			return i
		}
	}
	return len(chunk) - 1
}
