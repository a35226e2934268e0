package detector

import (
	"testing"

	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name       string
		inputFile  string
		wantSystem arch.System
	}{
		{
			name:       "detect from .ch8 extension",
			inputFile:  "pong.ch8",
			wantSystem: arch.CHIP8System,
		},
		{
			name:       "detect from .c8 extension",
			inputFile:  "roms/tetris.C8",
			wantSystem: arch.CHIP8System,
		},
		{
			name:       "detect from .rom extension",
			inputFile:  "game.rom",
			wantSystem: arch.CHIP8System,
		},
		{
			name:       "detect from .nes extension",
			inputFile:  "game.nes",
			wantSystem: arch.NES,
		},
		{
			name:       "default to CHIP-8 for unknown extension",
			inputFile:  "game.bin",
			wantSystem: arch.CHIP8System,
		},
		{
			name:       "default to CHIP-8 without extension",
			inputFile:  "INVADERS",
			wantSystem: arch.CHIP8System,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Detect(tt.inputFile)
			assert.Equal(t, tt.wantSystem, got)
		})
	}
}

func TestDetectFromFileKnown(t *testing.T) {
	_, known := detectFromFile("brix.ch8")
	assert.True(t, known)

	_, known = detectFromFile("brix.txt")
	assert.False(t, known)
}
