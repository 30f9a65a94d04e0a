package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/galaxsim/internal/dynamo"
)

const svgHeader = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`

// BodiesToSVG draws bodies inside a worldW x worldH window as dots whose
// radius grows with log mass. Bodies outside the window are skipped.
func BodiesToSVG(bodies []dynamo.Body, worldW, worldH, scale float64) string {
	width := worldW * scale
	height := worldH * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(svgHeader, width, height, width, height))
	sb.WriteString(`<g fill="#e8e8ff">` + "\n")

	for _, b := range bodies {
		if !b.Pos.IsValid() || b.Pos.X < 0 || b.Pos.X > worldW || b.Pos.Y < 0 || b.Pos.Y > worldH {
			continue
		}
		r := scale * 0.25 * (1 + math.Log10(math.Max(b.Mass, 1)))
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.2f"/>`+"\n",
			b.Pos.X*scale, b.Pos.Y*scale, r))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SeriesToSVG draws values as a polyline scaled to fill width x height.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minV, maxV := values[0], values[0]
	for _, v := range values {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}

	rangeV := maxV - minV
	if rangeV == 0 {
		rangeV = 1
	}
	minV -= rangeV * 0.1
	rangeV *= 1.2

	w, h := float64(width), float64(height)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(svgHeader, w, h, w, h))
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))

	last := float64(len(values) - 1)
	for i, v := range values {
		x := float64(i) / last * w
		y := h - (v-minV)/rangeV*h
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
