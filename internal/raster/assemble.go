package raster

import "fmt"

// assemble copies each worker block into its row range of a fresh canvas.
// It runs on a single goroutine after every worker has passed the gate, so
// the canvas is never shared.
func assemble(dim int, as []Assignment, blocks []*block) (*Canvas, error) {
	if len(as) != len(blocks) {
		return nil, fmt.Errorf("assemble: %d assignments but %d blocks", len(as), len(blocks))
	}
	c := NewCanvas(dim)
	rowBytes := dim * Channels
	for i, a := range as {
		b := blocks[i]
		if b == nil || b.rows != a.Rows() {
			return nil, fmt.Errorf("assemble: worker %d block does not cover rows [%d,%d)", a.Worker, a.StartRow, a.EndRow)
		}
		copy(c.Pix[a.StartRow*rowBytes:a.EndRow*rowBytes], b.pix)
	}
	return c, nil
}
