// pkg/api/report_v1.go
package api

// RenderReportV1 is the stable JSON schema for a finished render.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RenderReportV1 struct {
	Version string `json:"version"`
	Path    string `json:"path"`
	Format  string `json:"format"`
	Scale   int    `json:"scale"`

	Bases      int `json:"bases"`
	Recognized int `json:"recognized"`
	Skipped    int `json:"skipped"`
	Dropped    int `json:"dropped,omitempty"`

	Dim           int   `json:"dim"`
	Pixels        int   `json:"pixels"` // side length of the written image (dim*scale)
	Workers       int   `json:"workers"`
	RowsPerWorker []int `json:"rows_per_worker"`
	Serpentine    bool  `json:"serpentine,omitempty"`

	Palette map[string]string `json:"palette"` // base name → "#rrggbb"
	Timings TimingsV1         `json:"timings_ms"`
}

// TimingsV1 holds per-stage wall times in milliseconds.
type TimingsV1 struct {
	Read      float64 `json:"read"`
	Rasterize float64 `json:"rasterize"`
	Emit      float64 `json:"emit"`
	Total     float64 `json:"total"`
}
