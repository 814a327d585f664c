// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/samber/lo"

	"genepic/internal/cmdutil"
	"genepic/internal/emit"
	"genepic/internal/fasta"
	"genepic/internal/palette"
	"genepic/internal/raster"
	"genepic/internal/runutil"
)

// Stage names used in StageError.
const (
	StageRead      = "read"
	StageRasterize = "rasterize"
	StageEmit      = "emit"
)

// StageError tells callers which stage failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return e.Stage + ": " + e.Err.Error() }
func (e *StageError) Unwrap() error { return e.Err }

// Config controls one run.
type Config struct {
	Input       string // path or "-"
	Threads     int    // requested workers; 0 = all CPUs
	CPUs        int    // 0 = runtime.NumCPU()
	Serpentine  bool
	DropUnknown bool
	Emit        emit.Options
}

// Timings per stage.
type Timings struct {
	Read      time.Duration
	Rasterize time.Duration
	Emit      time.Duration
}

// Stats describes a finished run.
type Stats struct {
	Path    string
	Format  string
	Scale   int
	Palette *palette.Palette

	Bases      int // symbols rasterized (after filtering)
	Recognized int
	Skipped    int // unknown symbols left blank
	Dropped    int // unknown symbols removed by DropUnknown

	Dim        int
	Workers    int
	Rows       []int // rows per worker, in order
	Serpentine bool

	Timings Timings
}

// Run reads cfg.Input, renders it with pal, and writes the image. Only the
// read stage honours ctx; once rasterization starts the run completes.
func Run(ctx context.Context, cfg Config, pal *palette.Palette, log *slog.Logger) (Stats, error) {
	if log == nil {
		log = slog.Default()
	}
	st := Stats{Format: cfg.Emit.Format, Scale: cfg.Emit.Scale, Palette: pal, Serpentine: cfg.Serpentine}

	t0 := time.Now()
	seq, err := fasta.ReadSequence(ctx, cfg.Input)
	if err != nil {
		return st, &StageError{Stage: StageRead, Err: err}
	}
	if cfg.DropUnknown {
		n := len(seq)
		seq = palette.KeepKnown(seq)
		st.Dropped = n - len(seq)
		if len(seq) == 0 {
			return st, &StageError{Stage: StageRead, Err: fmt.Errorf("%w: no A/C/G/T/U symbols after dropping %d unknown", fasta.ErrEmptySequence, n)}
		}
	}
	st.Timings.Read = time.Since(t0)
	st.Bases = len(seq)
	st.Dim = raster.Dimension(len(seq))
	log.Info("sequence loaded", "bases", st.Bases, "dropped", st.Dropped, "dim", st.Dim, "elapsed", st.Timings.Read)

	cpus := cfg.CPUs
	if cpus <= 0 {
		cpus = runtime.NumCPU()
	}
	workers, warns := runutil.EffectiveWorkers(cfg.Threads, cpus, st.Dim)
	cmdutil.Warnings(log, warns)

	t1 := time.Now()
	res, err := raster.Rasterize(ctx, seq, pal, raster.Config{Workers: workers, Serpentine: cfg.Serpentine})
	if err != nil {
		return st, &StageError{Stage: StageRasterize, Err: err}
	}
	st.Timings.Rasterize = time.Since(t1)
	st.Recognized, st.Skipped = res.Known, res.Skipped()
	st.Workers = res.Workers()
	st.Rows = lo.Map(res.Assignments, func(a raster.Assignment, _ int) int { return a.Rows() })
	log.Info("sequence rasterized", "workers", st.Workers, "rows", st.Rows, "recognized", st.Recognized, "skipped", st.Skipped, "elapsed", st.Timings.Rasterize)
	if st.Recognized == 0 {
		log.Warn("no recognised bases; the image will be blank")
	}

	t2 := time.Now()
	path, err := emit.Emit(res.Canvas, cfg.Emit)
	if err != nil {
		return st, &StageError{Stage: StageEmit, Err: err}
	}
	st.Timings.Emit = time.Since(t2)
	st.Path = path
	log.Info("image saved", "path", path, "format", cfg.Emit.Format, "scale", cfg.Emit.Scale, "elapsed", st.Timings.Emit)
	return st, nil
}
