package raster

import (
	"math"
	"unicode/utf8"

	"github.com/san-kum/galaxsim/internal/dynamo"
)

const (
	DefaultWidth         = 150
	DefaultHeight        = 45
	DefaultYSquish       = 0.6
	DefaultDensityFactor = 0.9
	DefaultRamp          = ".,:ilw@"
)

type Params struct {
	Width  int
	Height int
	// YSquish compresses world y to compensate for terminal cells being
	// taller than they are wide.
	YSquish float64
	// DensityFactor scales accumulated density into a ramp index.
	DensityFactor float64
	// Ramp lists glyphs from dimmest to brightest.
	Ramp []rune
}

func DefaultParams() Params {
	return Params{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		YSquish:       DefaultYSquish,
		DensityFactor: DefaultDensityFactor,
		Ramp:          []rune(DefaultRamp),
	}
}

func (p Params) Validate() error {
	if p.Width <= 0 {
		return dynamo.InvalidField("grid width", float64(p.Width), dynamo.ErrInvalidGrid)
	}
	if p.Height <= 0 {
		return dynamo.InvalidField("grid height", float64(p.Height), dynamo.ErrInvalidGrid)
	}
	if !(p.YSquish > 0) || math.IsInf(p.YSquish, 0) {
		return dynamo.InvalidField("y squish", p.YSquish, dynamo.ErrInvalidParams)
	}
	if !(p.DensityFactor > 0) || math.IsInf(p.DensityFactor, 0) {
		return dynamo.InvalidField("density factor", p.DensityFactor, dynamo.ErrInvalidParams)
	}
	if len(p.Ramp) == 0 {
		return &dynamo.ConfigError{Field: "luminance ramp", Value: `""`, Err: dynamo.ErrInvalidParams}
	}
	for _, r := range p.Ramp {
		if r == utf8.RuneError || r == ' ' {
			return &dynamo.ConfigError{Field: "luminance ramp", Value: string(p.Ramp), Err: dynamo.ErrInvalidParams}
		}
	}
	return nil
}
