package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TextSink renders frames into a string, colouring each run of identical
// glyphs with the theme gradient.
type TextSink struct {
	styles map[rune]lipgloss.Style
	out    strings.Builder
}

func NewTextSink(ramp []rune, theme Theme) *TextSink {
	return &TextSink{styles: newStyles(theme, ramp).glyphs}
}

func (s *TextSink) Present(rows [][]rune) error {
	s.out.Reset()
	for y, row := range rows {
		if y > 0 {
			s.out.WriteByte('\n')
		}
		for x := 0; x < len(row); {
			end := x + 1
			for end < len(row) && row[end] == row[x] {
				end++
			}
			run := string(row[x:end])
			if st, ok := s.styles[row[x]]; ok {
				run = st.Render(run)
			}
			s.out.WriteString(run)
			x = end
		}
	}
	return nil
}

// String returns the last presented frame.
func (s *TextSink) String() string { return s.out.String() }
