package config

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/palette"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestQuirks(t *testing.T) {
	tests := []struct {
		preset  string
		want    chip8.Quirks
		wantErr bool
	}{
		{"", chip8.DefaultQuirks, false},
		{options.QuirksDefault, chip8.DefaultQuirks, false},
		{options.QuirksCosmac, chip8.CosmacQuirks, false},
		{options.QuirksModern, chip8.ModernQuirks, false},
		{"schip", chip8.Quirks{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			quirks, err := Quirks(tt.preset)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unsupported quirk preset")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, quirks)
		})
	}
}

func TestCoreConfig(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.New()
	opts.CPUHz = 1000
	opts.Quirks = options.QuirksCosmac
	opts.Seed = 42
	opts.SkipInvalid = true

	cfg, err := CoreConfig(logger, opts)
	assert.NoError(t, err)
	assert.Equal(t, 1000, cfg.CPUHz)
	assert.Equal(t, chip8.CosmacQuirks, cfg.Quirks)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.SkipInvalidOpcodes)
	assert.NotNil(t, cfg.Logger)

	opts.Quirks = "unknown"
	_, err = CoreConfig(logger, opts)
	assert.Error(t, err)
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
	assert.NotNil(t, CreateLogger(false, false))
}

func TestPalette(t *testing.T) {
	opts := options.New()
	pal, err := Palette(opts)
	assert.NoError(t, err)
	assert.Equal(t, palette.Default, pal)

	opts.Background = "ultraviolet"
	_, err = Palette(opts)
	assert.ErrorContains(t, err, "unsupported colour name 'ultraviolet'")
}
