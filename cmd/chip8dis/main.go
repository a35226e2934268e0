// Package main implements a CHIP-8 ROM disassembler
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/listing"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type optionFlags struct {
	input  string
	output string

	verify bool
	quiet  bool
	debug  bool

	noHexComments bool
	noOffsets     bool
	noLabels      bool
}

func main() {
	options := readArguments()
	logger := config.CreateLogger(options.debug, options.quiet)

	if err := disasmFile(logger, options); err != nil {
		logger.Error("Disassembling failed", log.Err(err))
		os.Exit(1)
	}
}

func readArguments() optionFlags {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	options := optionFlags{}

	flags.BoolVar(&options.verify, "verify", false, "verify the generated output by reading back the opcode bytes and check if they match the input")
	flags.BoolVar(&options.noHexComments, "nohexcomments", false, "do not output opcode bytes as hex values in comments")
	flags.BoolVar(&options.noOffsets, "nooffsets", false, "do not output offsets in comments")
	flags.BoolVar(&options.noLabels, "nolabels", false, "do not output labels for jump and call targets")
	flags.StringVar(&options.output, "o", "", "name of the output .asm file, printed on console if no name given")
	flags.BoolVar(&options.debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&options.quiet, "q", false, "perform operations quietly")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if err != nil || len(args) == 0 {
		printBanner(options)
		fmt.Printf("usage: chip8dis [options] <file to disassemble>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	options.input = args[0]

	if !options.quiet && options.output != "" {
		printBanner(options)
	}
	return options
}

func printBanner(options optionFlags) {
	if !options.quiet {
		fmt.Println("[--------------------------------------]")
		fmt.Println("[ chip8dis - CHIP-8 ROM disassembler   ]")
		fmt.Printf("[--------------------------------------]\n\n")
		fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
	}
}

func disasmFile(logger *log.Logger, options optionFlags) error {
	program, err := loader.New().Load(options.input)
	if err != nil {
		return err
	}

	listingOptions := listing.Options{
		HexComments:    !options.noHexComments,
		OffsetComments: !options.noOffsets,
		Labels:         !options.noLabels,
	}
	if options.verify && !listingOptions.HexComments {
		return errors.New("verification needs hex comments in the output")
	}

	var buf bytes.Buffer
	if err := listing.Write(&buf, program, listingOptions); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}

	if err := writeOutput(options.output, buf.Bytes()); err != nil {
		return err
	}
	logger.Debug("Listing written",
		log.Int("size", len(program)),
		log.Int("labels", len(listing.Labels(program))))

	if options.verify {
		written := buf.Bytes()
		if options.output != "" {
			if written, err = os.ReadFile(options.output); err != nil {
				return fmt.Errorf("reading file for comparison: %w", err)
			}
		}
		if err := listing.Verify(logger, program, bytes.NewReader(written)); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		logger.Info("Output file matched input file")
	}
	return nil
}

func writeOutput(name string, data []byte) error {
	if name == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating file '%s': %w", name, err)
	}
	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}
