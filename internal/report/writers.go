package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"genepic/internal/palette"
	"genepic/pkg/api"
)

func init() {
	Register("text", WriteText)
	Register("json", WriteJSON)
}

// WriteText prints the one-line summary followed by indented details.
func WriteText(w io.Writer, r api.RenderReportV1) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Image with %d bases saved to %s\n", r.Bases, r.Path)
	fmt.Fprintf(bw, "  canvas   %dx%d cells, %dx%d px (%s, scale %d)\n", r.Dim, r.Dim, r.Pixels, r.Pixels, r.Format, r.Scale)
	fmt.Fprintf(bw, "  bases    %d recognised, %d skipped", r.Recognized, r.Skipped)
	if r.Dropped > 0 {
		fmt.Fprintf(bw, ", %d dropped", r.Dropped)
	}
	fmt.Fprintln(bw)
	rows := strings.Join(lo.Map(r.RowsPerWorker, func(n, _ int) string { return fmt.Sprint(n) }), ",")
	fmt.Fprintf(bw, "  workers  %d (rows %s)", r.Workers, rows)
	if r.Serpentine {
		fmt.Fprint(bw, " serpentine")
	}
	fmt.Fprintln(bw)
	fmt.Fprint(bw, "  palette ")
	for _, b := range palette.Bases {
		fmt.Fprintf(bw, " %s=%s", b.Letters(), r.Palette[b.String()])
	}
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "  timings  read %.1fms, rasterize %.1fms, emit %.1fms\n", r.Timings.Read, r.Timings.Rasterize, r.Timings.Emit)
	return bw.Flush()
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r api.RenderReportV1) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
