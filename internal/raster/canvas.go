// internal/raster/canvas.go
package raster

import "genepic/internal/palette"

// Channels per pixel (RGB).
const Channels = 3

// Canvas is a Dim×Dim RGB buffer in row-major order. Cells never painted
// stay zero (black).
type Canvas struct {
	Dim int
	Pix []uint8
}

// NewCanvas allocates a blank dim×dim canvas.
func NewCanvas(dim int) *Canvas {
	return &Canvas{Dim: dim, Pix: make([]uint8, dim*dim*Channels)}
}

// At returns the color of cell (x, y).
func (c *Canvas) At(x, y int) palette.RGB {
	i := (y*c.Dim + x) * Channels
	return palette.RGB{c.Pix[i], c.Pix[i+1], c.Pix[i+2]}
}

// block is one worker's private output: Rows full canvas rows.
type block struct {
	rows  int
	pix   []uint8
	known int // symbols that received a color
}

func newBlock(rows, dim int) *block {
	return &block{rows: rows, pix: make([]uint8, rows*dim*Channels)}
}

func (b *block) set(localRow, col, dim int, c palette.RGB) {
	i := (localRow*dim + col) * Channels
	b.pix[i] = c[0]
	b.pix[i+1] = c[1]
	b.pix[i+2] = c[2]
}
