package chip8

// Quirks selects the behavior of instructions that historic interpreters disagree on.
type Quirks struct {
	// ShiftUsesVY makes 8xy6 and 8xyE shift Vy and store the result in Vx,
	// otherwise Vx is shifted in place.
	ShiftUsesVY bool

	// LoadStoreIncrementsI makes Fx55 and Fx65 leave I pointing past the
	// last accessed address (I = I + x + 1).
	LoadStoreIncrementsI bool

	// LogicResetsVF makes 8xy1, 8xy2 and 8xy3 set VF to 0.
	LogicResetsVF bool

	// ClipSprites drops sprite pixels past the right and bottom display edge,
	// otherwise they wrap around to the opposite edge. The start coordinate
	// of a sprite always wraps.
	ClipSprites bool
}

var (
	// DefaultQuirks shifts Vy, keeps I on Fx55/Fx65 and wraps sprites.
	DefaultQuirks = Quirks{
		ShiftUsesVY: true,
	}

	// CosmacQuirks matches the original COSMAC VIP interpreter.
	CosmacQuirks = Quirks{
		ShiftUsesVY:          true,
		LoadStoreIncrementsI: true,
		LogicResetsVF:        true,
		ClipSprites:          true,
	}

	// ModernQuirks matches most interpreters written after the HP-48 ports.
	ModernQuirks = Quirks{}
)
