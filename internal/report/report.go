// internal/report/report.go
package report

import (
	"time"

	"github.com/samber/lo"

	"genepic/internal/palette"
	"genepic/internal/pipeline"
	"genepic/internal/version"
	"genepic/pkg/api"
)

// FromStats converts pipeline stats to the v1 wire type.
func FromStats(st pipeline.Stats) api.RenderReportV1 {
	pal := st.Palette
	if pal == nil {
		pal = palette.Default()
	}
	t := st.Timings
	return api.RenderReportV1{
		Version:       version.Version,
		Path:          st.Path,
		Format:        st.Format,
		Scale:         st.Scale,
		Bases:         st.Bases,
		Recognized:    st.Recognized,
		Skipped:       st.Skipped,
		Dropped:       st.Dropped,
		Dim:           st.Dim,
		Pixels:        st.Dim * max(st.Scale, 1),
		Workers:       st.Workers,
		RowsPerWorker: st.Rows,
		Serpentine:    st.Serpentine,
		Palette: lo.SliceToMap(palette.Bases, func(b palette.Base) (string, string) {
			return b.String(), pal.Of(b).Hex()
		}),
		Timings: api.TimingsV1{
			Read:      ms(t.Read),
			Rasterize: ms(t.Rasterize),
			Emit:      ms(t.Emit),
			Total:     ms(t.Read + t.Rasterize + t.Emit),
		},
	}
}

func ms(d time.Duration) float64 { return float64(d.Microseconds()) / 1000 }
