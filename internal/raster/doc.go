// Package raster projects body positions onto a fixed character grid.
//
// Each cell tracks whether anything landed in it and an accumulated density
// (the sum of the truncated masses drawn there). The render pass maps
// density to a glyph from a dim-to-bright luminance ramp, so crowded regions
// of a galaxy show up brighter than its sparse arms.
package raster
