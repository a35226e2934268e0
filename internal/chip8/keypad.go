package chip8

import "fmt"

// KeyCount is the number of keys on the hex keypad.
const KeyCount = 16

// Key is a logical key of the hex keypad, 0x0-0xF.
//
//	+---+---+---+---+
//	| 1 | 2 | 3 | C |
//	| 4 | 5 | 6 | D |
//	| 7 | 8 | 9 | E |
//	| A | 0 | B | F |
//	+---+---+---+---+
type Key uint8

func (k Key) String() string {
	return fmt.Sprintf("%X", uint8(k)&0x0F)
}

// Keypad is the input state of the machine. The input collaborator writes it, the core
// only reads it, except for the key wait which consumes the next newly pressed key.
type Keypad struct {
	pressed [KeyCount]bool

	waiting    bool // a key wait is in progress
	latched    bool // a key was newly pressed while waiting
	latchedKey Key
}

// SetPressed updates the state of a key. Only the low nibble of the key is used.
func (k *Keypad) SetPressed(key Key, pressed bool) {
	key &= 0x0F
	if pressed && !k.pressed[key] && k.waiting && !k.latched {
		k.latched = true
		k.latchedKey = key
	}
	k.pressed[key] = pressed
}

// IsPressed returns whether a key is currently held. Only the low nibble of the key is used.
func (k *Keypad) IsPressed(key Key) bool {
	return k.pressed[key&0x0F]
}

// ReleaseAll marks all keys as released.
func (k *Keypad) ReleaseAll() {
	k.pressed = [KeyCount]bool{}
}

// BeginWait starts a key wait. Keys that are already held do not satisfy it,
// only a key that is pressed after this call does.
func (k *Keypad) BeginWait() {
	k.waiting = true
	k.latched = false
}

// PollNewlyPressed returns the first key pressed since the wait began and ends the wait.
// It returns false if no key has been pressed yet.
func (k *Keypad) PollNewlyPressed() (Key, bool) {
	if !k.latched {
		return 0, false
	}
	k.waiting = false
	k.latched = false
	return k.latchedKey, true
}

func (k *Keypad) reset() {
	*k = Keypad{}
}
