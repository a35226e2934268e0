// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// ErrEmptyROM is returned for ROM files that do not contain any data.
var ErrEmptyROM = errors.New("ROM file is empty")

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM file at the given path.
// Files that do not fit into the program area are rejected with an error
// that matches chip8.ErrProgramTooLarge.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	rom, err := l.LoadFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("loading ROM %s: %w", path, err)
	}
	return rom, nil
}

// LoadFromReader reads a ROM image from the given reader.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	// read one byte more than allowed to detect oversized images
	data, err := io.ReadAll(io.LimitReader(reader, chip8.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}

	return l.LoadFromBytes(data)
}

// LoadFromBytes validates a ROM image that is already in memory.
func (l *Loader) LoadFromBytes(data []byte) ([]byte, error) {
	switch {
	case len(data) == 0:
		return nil, ErrEmptyROM
	case len(data) > chip8.MaxProgramSize:
		return nil, &chip8.LoadError{Size: len(data)}
	}
	return data, nil
}
