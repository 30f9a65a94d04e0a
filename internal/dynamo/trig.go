package dynamo

import "math"

// TrigTable provides precomputed sin/cos values with linear interpolation
// between entries. Used where angular resolution matters less than speed,
// such as scattering thousands of stars around a galaxy core.
type TrigTable struct {
	sin []float64
	cos []float64
	n   int
}

// 4096 entries gives ~0.0015 rad resolution.
var DefaultTrigTable = NewTrigTable(4096)

func NewTrigTable(n int) *TrigTable {
	t := &TrigTable{
		sin: make([]float64, n),
		cos: make([]float64, n),
		n:   n,
	}

	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		t.sin[i], t.cos[i] = math.Sincos(angle)
	}

	return t
}

// lookup maps an angle to the two bracketing table indices and the
// interpolation weight of the upper one.
func (t *TrigTable) lookup(x float64) (i0, i1 int, frac float64) {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}

	idx := x * float64(t.n) / (2 * math.Pi)
	i := int(idx)
	return i % t.n, (i + 1) % t.n, idx - float64(i)
}

func (t *TrigTable) SinCos(x float64) (sin, cos float64) {
	i0, i1, frac := t.lookup(x)
	sin = t.sin[i0]*(1-frac) + t.sin[i1]*frac
	cos = t.cos[i0]*(1-frac) + t.cos[i1]*frac
	return
}

// FastSinCos uses the default table.
func FastSinCos(x float64) (float64, float64) {
	return DefaultTrigTable.SinCos(x)
}
