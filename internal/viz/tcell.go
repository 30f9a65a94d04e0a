package viz

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// cellScreen is the subset of tcell.Screen a frame needs.
type cellScreen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

type TcellSink struct {
	screen cellScreen
	styles map[rune]tcell.Style
}

func NewTcellSink(screen cellScreen, ramp []rune, theme Theme) *TcellSink {
	styles := make(map[rune]tcell.Style, len(ramp))
	for i, r := range ramp {
		c := GlyphColor(theme, i, len(ramp))
		red, green, blue := parseHex(string(c))
		styles[r] = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(red), int32(green), int32(blue)))
	}
	return &TcellSink{screen: screen, styles: styles}
}

func (s *TcellSink) Present(rows [][]rune) error {
	for y, row := range rows {
		for x, r := range row {
			style, ok := s.styles[r]
			if !ok {
				style = tcell.StyleDefault
			}
			s.screen.SetContent(x, y, r, nil, style)
		}
	}
	s.screen.Show()
	return nil
}

// OpenTerminal initialises a tcell screen on the controlling terminal.
func OpenTerminal() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// WatchQuit polls the screen for key events and cancels on q, Escape or
// Ctrl-C. It returns once the screen is finalised.
func WatchQuit(screen tcell.Screen, cancel context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if isQuitKey(ev) {
			cancel()
			return
		}
	}
}

func isQuitKey(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return key.Rune() == 'q'
	}
	return false
}
