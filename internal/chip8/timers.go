package chip8

// TimerHz is the fixed rate the delay and sound timers count down with.
const TimerHz = 60

// Timers holds the delay and sound timer.
type Timers struct {
	Delay uint8
	Sound uint8
}

// Tick decrements every nonzero timer by one.
func (t *Timers) Tick() {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound > 0 {
		t.Sound--
	}
}

// SoundActive returns whether the tone should be audible.
func (t Timers) SoundActive() bool {
	return t.Sound > 0
}
