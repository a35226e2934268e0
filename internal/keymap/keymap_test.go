package keymap

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		r   rune
		key chip8.Key
	}{
		{'1', 0x1}, {'2', 0x2}, {'3', 0x3}, {'4', 0xC},
		{'q', 0x4}, {'w', 0x5}, {'e', 0x6}, {'r', 0xD},
		{'a', 0x7}, {'s', 0x8}, {'d', 0x9}, {'f', 0xE},
		{'z', 0xA}, {'x', 0x0}, {'c', 0xB}, {'v', 0xF},
		{'Q', 0x4}, {'V', 0xF},
	}

	for _, tt := range tests {
		key, ok := Lookup(tt.r)
		assert.True(t, ok, "key %q not mapped", tt.r)
		assert.Equal(t, tt.key, key, "key %q", tt.r)
	}
}

func TestLookupUnmapped(t *testing.T) {
	for _, r := range []rune{'5', 'p', ' ', 0x1b} {
		_, ok := Lookup(r)
		assert.False(t, ok, "key %q should not be mapped", r)
	}
}

func TestLayoutUnique(t *testing.T) {
	seen := map[rune]bool{}
	for _, r := range Layout {
		assert.False(t, seen[r], "host key %q used twice", r)
		seen[r] = true
	}
	assert.Equal(t, chip8.KeyCount, len(seen))
}
