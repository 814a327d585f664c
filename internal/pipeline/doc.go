// Package pipeline runs one sequence→image conversion end to end:
// read → (optional filtering) → rasterize → emit, timing each stage.
//
// It is orchestration only; the conversion itself lives in raster and the
// file format knowledge in emit.
package pipeline
