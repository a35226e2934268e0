// Package keymap maps host keyboard keys to the hexadecimal CHIP-8 keypad.
//
// The keypad is laid out on the left side of a QWERTY keyboard:
//
//	1 2 3 C     1 2 3 4
//	4 5 6 D  <- Q W E R
//	7 8 9 E     A S D F
//	A 0 B F     Z X C V
package keymap

import (
	"unicode"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Layout lists the host keys in keypad order, Layout[key] is the host key for keypad key.
var Layout = [chip8.KeyCount]rune{
	0x0: 'x',
	0x1: '1',
	0x2: '2',
	0x3: '3',
	0x4: 'q',
	0x5: 'w',
	0x6: 'e',
	0x7: 'a',
	0x8: 's',
	0x9: 'd',
	0xA: 'z',
	0xB: 'c',
	0xC: '4',
	0xD: 'r',
	0xE: 'f',
	0xF: 'v',
}

var byRune = func() map[rune]chip8.Key {
	m := make(map[rune]chip8.Key, len(Layout))
	for key, r := range Layout {
		m[r] = chip8.Key(key)
	}
	return m
}()

// Lookup returns the keypad key for a host key, case insensitive.
func Lookup(r rune) (chip8.Key, bool) {
	key, ok := byRune[unicode.ToLower(r)]
	return key, ok
}
