package raster

import (
	"math"
)

const blank = ' '

// FrameBuffer is a row-major grid of cells. Density only grows between
// clears.
type FrameBuffer struct {
	params   Params
	occupied []bool
	density  []uint32
	rows     [][]rune
}

func New(p Params) (*FrameBuffer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.Width * p.Height
	f := &FrameBuffer{
		params:   p,
		occupied: make([]bool, n),
		density:  make([]uint32, n),
		rows:     make([][]rune, p.Height),
	}
	for i := range f.rows {
		f.rows[i] = make([]rune, p.Width)
	}
	return f, nil
}

func (f *FrameBuffer) Params() Params { return f.params }
func (f *FrameBuffer) Width() int     { return f.params.Width }
func (f *FrameBuffer) Height() int    { return f.params.Height }

// Cell maps a world position to a grid cell. ok is false when the position
// is outside the drawable area; the lower edges are exclusive.
func (f *FrameBuffer) Cell(x, y float64) (col, row int, ok bool) {
	sy := y * f.params.YSquish
	if !(x > 0 && x < float64(f.params.Width) && y > 0 && sy < float64(f.params.Height)) {
		return 0, 0, false
	}
	return int(math.Floor(x)), int(math.Floor(sy)), true
}

// Draw marks the cell under (x, y) and adds the truncated mass to its
// density, saturating at math.MaxUint32. Positions off the grid are skipped.
func (f *FrameBuffer) Draw(x, y, mass float64) bool {
	col, row, ok := f.Cell(x, y)
	if !ok {
		return false
	}

	i := row*f.params.Width + col
	f.occupied[i] = true
	if mass >= 1 {
		f.density[i] = saturatingAdd(f.density[i], mass)
	}
	return true
}

func saturatingAdd(d uint32, mass float64) uint32 {
	m := math.Floor(mass)
	if m >= math.MaxUint32 {
		return math.MaxUint32
	}
	add := uint32(m)
	if add > math.MaxUint32-d {
		return math.MaxUint32
	}
	return d + add
}

func (f *FrameBuffer) Occupied(col, row int) bool {
	return f.occupied[row*f.params.Width+col]
}

func (f *FrameBuffer) Density(col, row int) uint32 {
	return f.density[row*f.params.Width+col]
}

// LuminanceIndex maps a density to a ramp index clamped to [0, len(ramp)-1].
func (f *FrameBuffer) LuminanceIndex(density uint32) int {
	idx := math.Floor(float64(density) * f.params.DensityFactor)
	last := float64(len(f.params.Ramp) - 1)
	if idx > last {
		idx = last
	}
	if idx < 0 {
		idx = 0
	}
	return int(idx)
}

// Glyph returns the rune shown for a cell.
func (f *FrameBuffer) Glyph(col, row int) rune {
	i := row*f.params.Width + col
	if !f.occupied[i] {
		return blank
	}
	return f.params.Ramp[f.LuminanceIndex(f.density[i])]
}

// Rows renders the grid. The returned slices are reused by the next call.
func (f *FrameBuffer) Rows() [][]rune {
	for row := range f.rows {
		line := f.rows[row]
		for col := range line {
			line[col] = f.Glyph(col, row)
		}
	}
	return f.rows
}

// String renders the grid as newline-terminated lines.
func (f *FrameBuffer) String() string {
	rows := f.Rows()
	buf := make([]rune, 0, (f.params.Width+1)*f.params.Height)
	for _, line := range rows {
		buf = append(buf, line...)
		buf = append(buf, '\n')
	}
	return string(buf)
}

// Visible counts occupied cells.
func (f *FrameBuffer) Visible() int {
	n := 0
	for _, o := range f.occupied {
		if o {
			n++
		}
	}
	return n
}

func (f *FrameBuffer) Clear() {
	clear(f.occupied)
	clear(f.density)
}
