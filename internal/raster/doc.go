// Package raster turns a nucleotide sequence into a square RGB canvas.
//
// The sequence is split into contiguous row ranges, one per worker. Each
// worker paints its rows into a private block; the last worker to pass the
// completion gate copies every block into the shared canvas. No worker ever
// writes outside its own block, so the parallel phase needs no locking.
//
// raster is domain-only: it never imports cli, app, pipeline, or emit.
package raster
