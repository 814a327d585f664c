// internal/raster/rasterize.go
package raster

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"genepic/internal/palette"
)

var (
	// ErrWorkerFailed wraps any failure inside a worker. One failed worker
	// fails the whole batch and no canvas is produced.
	ErrWorkerFailed = errors.New("raster: worker failed")
	// ErrEmptySequence is returned for a zero-length input. Input readers
	// return the same value.
	ErrEmptySequence = errors.New("input contains no sequence")
)

// Mapper is the symbol→color lookup used by workers. ok=false leaves the
// cell blank.
type Mapper interface {
	Color(sym byte) (c palette.RGB, ok bool)
}

// Config controls one rasterization.
type Config struct {
	Workers    int  // >= 1; reduced to the canvas dimension when larger
	Serpentine bool // reverse odd rows (boustrophedon)
}

// Result is the assembled canvas plus counters for reporting.
type Result struct {
	Canvas *Canvas
	Bases  int // input length L
	Known  int // cells that received a color

	// Assignments as executed; Seq is released (nil) once a worker is done.
	Assignments []Assignment
}

// Skipped is the number of symbols that left their cell blank.
func (r *Result) Skipped() int { return r.Bases - r.Known }

// Workers is the effective worker count after clamping.
func (r *Result) Workers() int { return len(r.Assignments) }

// Rasterize paints seq onto a Dimension(len(seq)) square canvas using
// cfg.Workers goroutines. ctx is only checked before dispatch; once workers
// start the batch runs to completion.
func Rasterize(ctx context.Context, seq []byte, m Mapper, cfg Config) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	if m == nil {
		return nil, errors.New("raster: nil mapper")
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("raster: worker count must be >= 1, got %d", cfg.Workers)
	}

	dim := Dimension(len(seq))
	as := Partition(seq, dim, cfg.Workers)
	blocks := make([]*block, len(as))
	gate := NewGate(len(as))

	var (
		canvas *Canvas
		asmErr error
		g      errgroup.Group
	)
	for i := range as {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: worker %d: %v", ErrWorkerFailed, i, r)
				}
			}()
			blocks[i] = paint(as[i], dim, m, cfg.Serpentine)
			as[i].Seq = nil
			if gate.Arrive() {
				canvas, asmErr = assemble(dim, as, blocks)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if asmErr != nil {
		return nil, asmErr
	}
	if canvas == nil {
		return nil, fmt.Errorf("%w: completion gate never fired", ErrWorkerFailed)
	}

	res := &Result{Canvas: canvas, Bases: len(seq), Assignments: as}
	for _, b := range blocks {
		res.Known += b.known
	}
	return res, nil
}

// paint converts one assignment into its private block. Symbol a.Seq[k]
// sits at global index a.Offset+k.
func paint(a Assignment, dim int, m Mapper, serpentine bool) *block {
	b := newBlock(a.Rows(), dim)
	for k, sym := range a.Seq {
		c, ok := m.Color(sym)
		if !ok {
			continue
		}
		i := a.Offset + k
		row, col := i/dim, i%dim
		if serpentine && row%2 == 1 {
			col = dim - 1 - col
		}
		b.set(row-a.StartRow, col, dim, c)
		b.known++
	}
	return b
}
