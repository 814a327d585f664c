// internal/raster/partition.go
package raster

import "math"

// Dimension returns the smallest d with d*d >= n (0 for n <= 0).
func Dimension(n int) int {
	if n <= 0 {
		return 0
	}
	d := max(int(math.Sqrt(float64(n))), 1)
	// float sqrt can be off by one for large n
	for !covers(d, n) {
		d++
	}
	for d > 1 && covers(d-1, n) {
		d--
	}
	return d
}

// covers reports d*d >= n for d > 0 without forming d*d.
func covers(d, n int) bool {
	q := n / d
	if n%d != 0 {
		q++
	}
	return q <= d
}

// ClampWorkers limits n to [1, dim]. More workers than rows would only
// produce empty assignments.
func ClampWorkers(n, dim int) int {
	if n < 1 {
		n = 1
	}
	if dim > 0 && n > dim {
		n = dim
	}
	return n
}

// Assignment is one worker's contiguous row range [StartRow, EndRow) and the
// slice of the sequence that lands in those rows.
type Assignment struct {
	Worker   int
	StartRow int
	EndRow   int
	Offset   int    // global index of Seq[0]
	Seq      []byte // may be short (or empty) at the end of the sequence
}

// Rows is the number of canvas rows owned by the assignment.
func (a Assignment) Rows() int { return a.EndRow - a.StartRow }

// Partition splits seq across workers on row boundaries of a dim×dim canvas.
// Every worker but the last gets dim/workers rows; the last one takes all
// remaining rows. workers is clamped to [1, dim] first. The returned slices
// alias seq.
func Partition(seq []byte, dim, workers int) []Assignment {
	if dim <= 0 {
		return nil
	}
	workers = ClampWorkers(workers, dim)
	per := dim / workers
	out := make([]Assignment, workers)
	for w := 0; w < workers; w++ {
		start := w * per
		end := start + per
		if w == workers-1 {
			end = dim
		}
		lo, hi := clampIndex(start*dim, len(seq)), clampIndex(end*dim, len(seq))
		out[w] = Assignment{
			Worker:   w,
			StartRow: start,
			EndRow:   end,
			Offset:   lo,
			Seq:      seq[lo:hi:hi],
		}
	}
	return out
}

func clampIndex(i, n int) int {
	if i > n {
		return n
	}
	return i
}
