// Package detector handles ROM system detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Detector determines the system a ROM file was made for from its file name.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the system from the file extension. Files with unknown
// extensions are assumed to be CHIP-8 programs, which have no header to check.
func (d *Detector) Detect(filename string) arch.System {
	system, known := detectFromFile(filename)
	if !known {
		d.logger.Warn("Unknown file extension, assuming a CHIP-8 ROM",
			log.String("file", filename))
	}
	d.logger.Debug("Detected system",
		log.Stringer("system", system),
		log.String("file", filename))
	return system
}

func detectFromFile(filename string) (arch.System, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ch8", ".c8", ".rom":
		return arch.CHIP8System, true
	case ".nes":
		return arch.NES, true
	default:
		return arch.CHIP8System, false
	}
}
