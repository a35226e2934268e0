// Package chip8 implements a CHIP-8 virtual machine core.
//
// # Machine Model
//
// The core owns every piece of machine state exclusively:
//   - Memory: 4KB, font glyphs at 0x000-0x04F, programs loaded at ProgramStart
//   - Registers: V0-VF, the index register I, the program counter and a 16 entry stack
//   - Timers: delay and sound counters decremented at TimerHz
//   - Framebuffer: 64x32 monochrome pixels mutated by CLS and DRW
//   - Keypad: the 16 logical keys, written by the input collaborator
//
// # Execution
//
// A driver calls Advance with the wall clock time that passed since the previous call.
// Advance splits that time into CPU steps at the configured CPU rate and timer ticks at
// TimerHz and runs them ordered by their due time. When a CPU step and a timer tick are
// due at the same instant the timer tick runs first.
//
// Every step fetches a big-endian 16 bit opcode at PC, advances PC by 2, decodes the
// opcode into an Instruction and executes it with a single flat dispatch.
//
// The key wait instruction (Fx0A) does not block: the core switches into the
// StateWaitingForKey state and further steps only poll the keypad until a key is
// newly pressed. Timers keep running while waiting.
//
// # Errors
//
// Programs larger than MaxProgramSize fail to load with a *LoadError. Invalid opcodes,
// stack overflows and stack underflows halt the core with an *ExecutionError; the core
// keeps returning that error until Reset is called.
//
// # Quirks
//
// Instructions whose behavior differs between historic interpreters are controlled by
// the Quirks settings, see DefaultQuirks, CosmacQuirks and ModernQuirks.
package chip8
