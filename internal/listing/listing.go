// Package listing writes CHIP-8 programs as annotated assembly listings and
// verifies listings against the program they were created from.
package listing

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

const instructionColumnWidth = 24

// Options of the listing writer.
type Options struct {
	HexComments    bool // output the opcode bytes as hex values in comments
	OffsetComments bool // output the address of every line in comments
	Labels         bool // output labels for jump and call targets
}

// DefaultOptions returns the default listing options.
func DefaultOptions() Options {
	return Options{
		HexComments:    true,
		OffsetComments: true,
		Labels:         true,
	}
}

// Write writes the listing of a program that is loaded at chip8.ProgramStart.
func Write(writer io.Writer, program []byte, options Options) error {
	w := bufio.NewWriter(writer)

	var labels map[uint16]struct{}
	if options.Labels {
		labels = jumpTargets(program)
	}

	if _, err := fmt.Fprintf(w, "; CHIP-8 program, %d bytes\n\n", len(program)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for offset := 0; offset < len(program); offset += chip8.OpcodeSize {
		address := uint16(chip8.ProgramStart + offset)
		if _, ok := labels[address]; ok {
			if _, err := fmt.Fprintf(w, "\n%s:\n", labelName(address)); err != nil {
				return fmt.Errorf("writing label: %w", err)
			}
		}

		data := program[offset:min(offset+chip8.OpcodeSize, len(program))]
		if err := writeLine(w, address, data, options); err != nil {
			return err
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing listing: %w", err)
	}
	return nil
}

func writeLine(w io.Writer, address uint16, data []byte, options Options) error {
	var code string
	if len(data) < chip8.OpcodeSize {
		code = fmt.Sprintf(".byte $%02X", data[0])
	} else {
		opcode := uint16(data[0])<<8 | uint16(data[1])
		ins, err := chip8.Decode(opcode)
		if err != nil {
			code = fmt.Sprintf(".word $%04X", opcode)
		} else {
			code = ins.String()
		}
	}

	var comment []string
	if options.OffsetComments {
		comment = append(comment, fmt.Sprintf("$%03X", address))
	}
	if options.HexComments {
		comment = append(comment, strings.ToUpper(hex.EncodeToString(data[:1])))
		if len(data) > 1 {
			comment = append(comment, strings.ToUpper(hex.EncodeToString(data[1:])))
		}
	}

	line := "    " + code
	if len(comment) > 0 {
		line = fmt.Sprintf("%-*s ; %s", instructionColumnWidth, line, strings.Join(comment, " "))
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// jumpTargets returns the addresses inside the program that are targets of
// jump or call instructions.
func jumpTargets(program []byte) map[uint16]struct{} {
	end := chip8.ProgramStart + len(program)
	targets := map[uint16]struct{}{}

	for offset := 0; offset+1 < len(program); offset += chip8.OpcodeSize {
		opcode := uint16(program[offset])<<8 | uint16(program[offset+1])
		ins, err := chip8.Decode(opcode)
		if err != nil {
			continue
		}
		switch ins.Op {
		case chip8.OpJp, chip8.OpCall:
			// only targets that start a listing line can get a label
			if int(ins.NNN) >= chip8.ProgramStart && int(ins.NNN) < end && ins.NNN%2 == 0 {
				targets[ins.NNN] = struct{}{}
			}
		default:
		}
	}
	return targets
}

// Labels returns the sorted label names of a program.
func Labels(program []byte) []string {
	targets := jumpTargets(program)
	addresses := make([]uint16, 0, len(targets))
	for address := range targets {
		addresses = append(addresses, address)
	}
	slices.Sort(addresses)

	names := make([]string, 0, len(addresses))
	for _, address := range addresses {
		names = append(names, labelName(address))
	}
	return names
}

func labelName(address uint16) string {
	return fmt.Sprintf("_label_%03x", address)
}

// Parse reads the program bytes back from the hex comments of a listing.
func Parse(reader io.Reader) ([]byte, error) {
	var program []byte
	scanner := bufio.NewScanner(reader)

	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") || strings.HasSuffix(line, ":") {
			continue
		}

		_, comment, ok := strings.Cut(line, ";")
		if !ok {
			return nil, fmt.Errorf("line %d has no hex comment", lineNumber)
		}

		for _, field := range strings.Fields(comment) {
			if strings.HasPrefix(field, "$") {
				continue // offset comment
			}
			b, err := hex.DecodeString(field)
			if err != nil || len(b) != 1 {
				return nil, fmt.Errorf("line %d has invalid hex byte '%s'", lineNumber, field)
			}
			program = append(program, b[0])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading listing: %w", err)
	}
	return program, nil
}

// Verify checks that the hex comments of a listing match the program.
func Verify(logger *log.Logger, program []byte, listing io.Reader) error {
	parsed, err := Parse(listing)
	if err != nil {
		return fmt.Errorf("parsing listing: %w", err)
	}
	return checkBufferEqual(logger, program, parsed)
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < 10 {
			logger.Error("Offset mismatch",
				log.Hex("address", chip8.ProgramStart+i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
