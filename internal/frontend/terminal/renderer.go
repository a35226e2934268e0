package terminal

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/palette"
)

const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	resetColors = "\x1b[0m"
	bell        = "\a"

	litCell   = "██"
	unlitCell = "  "

	// Columns is the terminal width needed to show a frame, every pixel is two cells wide.
	Columns = chip8.DisplayWidth * 2
	// Rows is the terminal height needed to show a frame.
	Rows = chip8.DisplayHeight
)

// renderer draws frames with block characters using 24 bit ANSI colours.
type renderer struct {
	writer  *bufio.Writer
	colors  string
	playing bool
}

func newRenderer(writer io.Writer, pal palette.Palette) *renderer {
	return &renderer{
		writer: bufio.NewWriterSize(writer, Rows*(Columns*len(litCell)+2)+64),
		colors: foreground(pal.Foreground) + background(pal.Background),
	}
}

// render redraws the whole frame from the top left corner. A bell is emitted
// when the sound starts playing.
func (r *renderer) render(frame *chip8.Frame, sound bool) error {
	w := r.writer
	_, _ = w.WriteString(cursorHome)
	_, _ = w.WriteString(r.colors)

	for y := range chip8.DisplayHeight {
		for x := range chip8.DisplayWidth {
			if frame[y][x] {
				_, _ = w.WriteString(litCell)
			} else {
				_, _ = w.WriteString(unlitCell)
			}
		}
		// raw mode does not translate line feeds
		_, _ = w.WriteString("\r\n")
	}
	_, _ = w.WriteString(resetColors)

	if sound && !r.playing {
		_, _ = w.WriteString(bell)
	}
	r.playing = sound

	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

func (r *renderer) writeControl(sequences ...string) error {
	for _, s := range sequences {
		_, _ = r.writer.WriteString(s)
	}
	if err := r.writer.Flush(); err != nil {
		return fmt.Errorf("writing control sequence: %w", err)
	}
	return nil
}

func foreground(c color.RGBA) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

func background(c color.RGBA) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}
