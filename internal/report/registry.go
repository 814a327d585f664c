// internal/report/registry.go
package report

import (
	"fmt"
	"io"
	"sort"

	"genepic/pkg/api"
)

// WriterFunc renders one report.
type WriterFunc func(w io.Writer, r api.RenderReportV1) error

var writers = map[string]WriterFunc{}

// Register adds or replaces the writer for format (last wins).
func Register(format string, fn WriterFunc) { writers[format] = fn }

// Write dispatches to the writer registered for format. A reader that goes
// away early (e.g. `| head`) is not an error.
func Write(format string, w io.Writer, r api.RenderReportV1) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	if err := fn(w, r); err != nil && !IsBrokenPipe(err) {
		return err
	}
	return nil
}

// Formats lists the registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(writers))
	for f := range writers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
