package report

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"genepic/internal/palette"
	"genepic/internal/pipeline"
	"genepic/pkg/api"
)

func sampleStats() pipeline.Stats {
	return pipeline.Stats{
		Path:       "out/GenePic.png",
		Format:     "png",
		Scale:      2,
		Palette:    palette.Default().With(palette.Adenine, palette.RGB{0, 0, 0}),
		Bases:      8,
		Recognized: 7,
		Skipped:    1,
		Dim:        3,
		Workers:    2,
		Rows:       []int{1, 2},
		Timings: pipeline.Timings{
			Read:      1500 * time.Microsecond,
			Rasterize: 250 * time.Microsecond,
			Emit:      2 * time.Millisecond,
		},
	}
}

func TestFromStats(t *testing.T) {
	r := FromStats(sampleStats())
	require.Equal(t, 6, r.Pixels)
	require.Equal(t, "#000000", r.Palette["adenine"])
	require.Equal(t, palette.DefaultGuanine.Hex(), r.Palette["guanine"])
	require.Len(t, r.Palette, 4)
	require.InDelta(t, 3.75, r.Timings.Total, 1e-9)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("text", &buf, FromStats(sampleStats())))
	lines := strings.Split(buf.String(), "\n")
	require.Equal(t, "Image with 8 bases saved to out/GenePic.png", lines[0])
	require.Contains(t, buf.String(), "rows 1,2")
	require.Contains(t, buf.String(), "A=#000000")
	require.NotContains(t, buf.String(), "dropped")
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	want := FromStats(sampleStats())
	require.NoError(t, Write("json", &buf, want))
	var got api.RenderReportV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", d)
	}
	require.Contains(t, buf.String(), `"timings_ms"`)
	require.NotContains(t, buf.String(), `"dropped"`)
}

type errWriter struct{ err error }

func (e errWriter) Write([]byte) (int, error) { return 0, e.err }

func TestWriteErrors(t *testing.T) {
	require.Error(t, Write("xml", io.Discard, api.RenderReportV1{}))
	require.NoError(t, Write("text", errWriter{syscall.EPIPE}, FromStats(sampleStats())))
	require.Error(t, Write("json", errWriter{io.ErrShortWrite}, FromStats(sampleStats())))
	require.Equal(t, []string{"json", "text"}, Formats())
}
