// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"genepic/internal/cmdutil"
	"genepic/internal/config"
	"genepic/internal/palette"
)

// Report formats accepted by --report.
const (
	ReportText = "text"
	ReportJSON = "json"
)

// Options holds all CLI flags and arguments.
type Options struct {
	Config string

	// Settings-backed flags; only the ones set on the command line are
	// applied over the config file.
	Input       string
	Scale       int
	Threads     int
	Serpentine  bool
	DropUnknown bool
	Colors      map[palette.Base]string
	Name        string
	Dir         string
	Format      string
	NoOptimize  bool

	// Presentation
	Report    string
	Legend    bool
	LogLevel  string
	LogFormat string
	Quiet     bool
	Version   bool

	changed map[string]bool
}

// Changed reports whether the named flag was given on the command line.
func (o Options) Changed(name string) bool { return o.changed[name] }

// ParseArgs registers and parses all flags, returns an Options struct.
// -h/--help yields pflag.ErrHelp after usage has been printed.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	def := config.Defaults()
	pal := palette.Default()
	opt := Options{Colors: map[palette.Base]string{}}
	colors := make(map[palette.Base]*string, len(palette.Bases))

	// Input
	fs.StringVarP(&opt.Input, "input", "i", def.Input, "sequence file or '-' for stdin")
	fs.StringVar(&opt.Config, "config", "", "HCL configuration file")
	fs.BoolVar(&opt.DropUnknown, "drop-unknown", def.DropUnknown, "remove non-ACGTU symbols before sizing")

	// Colors
	for _, b := range palette.Bases {
		colors[b] = fs.StringP(b.String(), b.Letters()[:1], pal.Of(b).Hex(), b.String()+" color (hex)")
	}
	fs.BoolVar(&opt.Legend, "legend", false, "print the palette to stderr")

	// Rendering
	fs.IntVarP(&opt.Scale, "scale", "s", def.Scale, "upscale factor")
	fs.IntVarP(&opt.Threads, "threads", "t", def.Threads, "worker threads (0 = all CPUs)")
	fs.BoolVar(&opt.Serpentine, "serpentine", def.Serpentine, "reverse every odd row")

	// Output
	fs.StringVarP(&opt.Name, "output", "o", def.Name, "base output file name")
	fs.StringVarP(&opt.Dir, "dir", "d", def.Dir, "output directory")
	fs.StringVarP(&opt.Format, "format", "f", def.Format, "image format")
	fs.BoolVar(&opt.NoOptimize, "no-optimize", !def.Optimize, "skip compression")
	fs.StringVar(&opt.Report, "report", ReportText, "summary format: text | json")

	// Misc
	fs.StringVar(&opt.LogLevel, "log-level", "info", "debug | info | warn | error")
	fs.StringVar(&opt.LogFormat, "log-format", "text", "text | json")
	fs.BoolVarP(&opt.Quiet, "quiet", "q", false, "only log warnings and errors")
	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}

	opt.changed = map[string]bool{}
	fs.Visit(func(f *pflag.Flag) { opt.changed[f.Name] = true })
	for b, v := range colors {
		if opt.changed[b.String()] {
			opt.Colors[b] = *v
		}
	}

	switch pos := fs.Args(); {
	case len(pos) > 1:
		return opt, fmt.Errorf("expected at most one sequence file, got %d", len(pos))
	case len(pos) == 1 && opt.changed["input"]:
		return opt, errors.New("positional sequence file conflicts with --input")
	case len(pos) == 1:
		opt.Input = pos[0]
		opt.changed["input"] = true
	}
	return opt, validate(opt)
}

// validate applies CLI-only invariants; settings that can also come from a
// config file are checked after merging.
func validate(o Options) error {
	if o.Scale < 1 {
		return fmt.Errorf("--scale must be ≥ 1, got %d", o.Scale)
	}
	if o.Threads < 0 {
		return fmt.Errorf("--threads must be ≥ 0 (0 = all CPUs), got %d", o.Threads)
	}
	switch o.Report {
	case ReportText, ReportJSON:
	default:
		return fmt.Errorf("invalid --report %q", o.Report)
	}
	if _, err := cmdutil.ParseLevel(o.LogLevel); err != nil {
		return err
	}
	switch o.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid --log-format %q", o.LogFormat)
	}
	for _, b := range palette.Bases {
		if v, ok := o.Colors[b]; ok {
			if _, err := palette.ParseHex(v); err != nil {
				return fmt.Errorf("--%s: %w", b, err)
			}
		}
	}
	return nil
}

// Apply overlays the flags given on the command line onto s.
func (o Options) Apply(s *config.Settings) {
	set := func(name string, fn func()) {
		if o.changed[name] {
			fn()
		}
	}
	set("input", func() { s.Input = o.Input })
	set("scale", func() { s.Scale = o.Scale })
	set("threads", func() { s.Threads = o.Threads })
	set("serpentine", func() { s.Serpentine = o.Serpentine })
	set("drop-unknown", func() { s.DropUnknown = o.DropUnknown })
	set("output", func() { s.Name = o.Name })
	set("dir", func() { s.Dir = o.Dir })
	set("format", func() { s.Format = o.Format })
	set("no-optimize", func() { s.Optimize = !o.NoOptimize })
	for b, v := range o.Colors {
		if s.Colors == nil {
			s.Colors = map[palette.Base]string{}
		}
		s.Colors[b] = v
	}
}
