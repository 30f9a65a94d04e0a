package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title  lipgloss.Style
	panel  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	help   lipgloss.Style
	warn   lipgloss.Style
	glyphs map[rune]lipgloss.Style
}

func newStyles(t Theme, ramp []rune) styles {
	s := styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		label:  lipgloss.NewStyle().Foreground(t.Muted),
		value:  lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		help:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		warn:   lipgloss.NewStyle().Bold(true).Foreground(t.Warn),
		glyphs: make(map[rune]lipgloss.Style, len(ramp)),
	}
	for i, r := range ramp {
		s.glyphs[r] = lipgloss.NewStyle().Foreground(GlyphColor(t, i, len(ramp)))
	}
	return s
}

// GlyphColor blends the theme's Dim and Bright colours for ramp index i of n.
func GlyphColor(t Theme, i, n int) lipgloss.Color {
	if n <= 1 {
		return t.Bright
	}
	f := float64(i) / float64(n-1)
	r1, g1, b1 := parseHex(string(t.Dim))
	r2, g2, b2 := parseHex(string(t.Bright))
	return lipgloss.Color(hexColor(
		lerp(r1, r2, f),
		lerp(g1, g2, f),
		lerp(b1, b2, f),
	))
}

func lerp(a, b int, f float64) int {
	return a + int(float64(b-a)*f)
}

func (s styles) statRow(label, value string) string {
	return s.label.Render(fmt.Sprintf("%-10s", label)) + s.value.Render(value)
}

func (s styles) separator(width int) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	return s.label.Render(strings.Repeat("─", mid-2) + " ◆ " + strings.Repeat("─", width-mid-3))
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
