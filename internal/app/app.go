// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"genepic/internal/cli"
	"genepic/internal/cmdutil"
	"genepic/internal/config"
	"genepic/internal/emit"
	"genepic/internal/palette"
	"genepic/internal/pipeline"
	"genepic/internal/pretty"
	"genepic/internal/report"
	"genepic/internal/version"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad flags, config, colors or input
	ExitFailure  = 3 // render or write failed
	ExitCanceled = 130
)

const name = "genepic"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet(name, outw)
	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return flush(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintf(stderr, "%s: %v\nRun '%s --help' for usage.\n", name, err, name)
		return ExitUsage
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(outw, stderr, ExitOK)
	}

	level, _ := cmdutil.ParseLevel(opts.LogLevel) // validated by ParseArgs
	log := cmdutil.NewLogger(stderr, level, opts.LogFormat, opts.Quiet)

	s, pal, err := resolve(opts)
	if err != nil {
		log.Error("invalid configuration", "err", err)
		return ExitUsage
	}
	log.Debug("configuration resolved", "input", s.Input, "scale", s.Scale, "threads", s.Threads,
		"format", s.Format, "dir", s.Dir, "name", s.Name, "serpentine", s.Serpentine, "drop_unknown", s.DropUnknown)

	if opts.Legend {
		if err := pretty.Legend(stderr, pal); err != nil && !report.IsBrokenPipe(err) {
			log.Warn("legend not printed", "err", err)
		}
	}

	st, err := pipeline.Run(parent, pipeline.Config{
		Input:       s.Input,
		Threads:     s.Threads,
		Serpentine:  s.Serpentine,
		DropUnknown: s.DropUnknown,
		Emit: emit.Options{
			Dir:      s.Dir,
			Name:     s.Name,
			Format:   s.Format,
			Scale:    s.Scale,
			Optimize: s.Optimize,
		},
	}, pal, log)
	if err != nil {
		return fail(log, err)
	}

	if err := report.Write(opts.Report, outw, report.FromStats(st)); err != nil {
		log.Error("report not written", "err", err)
		return ExitFailure
	}
	return flush(outw, stderr, ExitOK)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// resolve merges defaults, the optional config file and the command line,
// then validates everything that can be checked before reading input.
func resolve(opts cli.Options) (config.Settings, *palette.Palette, error) {
	s := config.Defaults()
	if opts.Config != "" {
		f, err := config.Load(opts.Config)
		if err != nil {
			return s, nil, err
		}
		f.Apply(&s)
	}
	opts.Apply(&s)
	if err := s.Validate(); err != nil {
		return s, nil, err
	}
	if _, err := emit.Lookup(s.Format); err != nil {
		return s, nil, fmt.Errorf("%w: %w", config.ErrConfig, err)
	}
	pal, err := palette.Build(s.Colors)
	if err != nil {
		return s, nil, fmt.Errorf("%w: %w", config.ErrConfig, err)
	}
	return s, pal, nil
}

// fail logs err and maps it to an exit code.
func fail(log *slog.Logger, err error) int {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		log.Warn("canceled", "err", err)
		return ExitCanceled
	}
	var se *pipeline.StageError
	if errors.As(err, &se) && se.Stage == pipeline.StageRead {
		log.Error("cannot read sequence", "err", se.Err)
		return ExitUsage
	}
	log.Error("render failed", "err", err)
	return ExitFailure
}

func flush(w *bufio.Writer, stderr io.Writer, code int) int {
	if err := w.Flush(); report.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitFailure
	}
	return code
}
