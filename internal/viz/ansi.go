package viz

import (
	"bufio"
	"io"
)

const (
	clearScreen = "\033[2J"
	cursorHome  = "\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// ANSISink writes each frame as plain text, returning the cursor to the top
// left corner first so frames overwrite each other in place.
type ANSISink struct {
	w       *bufio.Writer
	started bool
}

func NewANSISink(w io.Writer) *ANSISink {
	return &ANSISink{w: bufio.NewWriter(w)}
}

func (s *ANSISink) Present(rows [][]rune) error {
	if !s.started {
		s.w.WriteString(hideCursor + clearScreen)
		s.started = true
	}

	s.w.WriteString(cursorHome)
	for _, row := range rows {
		for _, r := range row {
			s.w.WriteRune(r)
		}
		s.w.WriteByte('\n')
	}
	return s.w.Flush()
}

// Close restores the cursor.
func (s *ANSISink) Close() error {
	if !s.started {
		return nil
	}
	s.w.WriteString(showCursor)
	return s.w.Flush()
}
