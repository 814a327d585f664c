package emit

import (
	"image"
	"image/png"
	"io"

	"github.com/xfmoulet/qoi"
	"golang.org/x/image/tiff"
)

func init() {
	Register("png", Encoder{Ext: ".png", Encode: encodePNG})
	Register("qoi", Encoder{Ext: ".qoi", Encode: encodeQOI})
	Register("tiff", Encoder{Ext: ".tiff", Encode: encodeTIFF})
}

func encodePNG(w io.Writer, img image.Image, optimize bool) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if optimize {
		enc.CompressionLevel = png.BestCompression
	}
	return enc.Encode(w, img)
}

// QOI has no compression setting.
func encodeQOI(w io.Writer, img image.Image, _ bool) error {
	return qoi.Encode(w, img)
}

func encodeTIFF(w io.Writer, img image.Image, optimize bool) error {
	opt := &tiff.Options{Compression: tiff.Uncompressed}
	if optimize {
		opt.Compression = tiff.Deflate
		opt.Predictor = true
	}
	return tiff.Encode(w, img, opt)
}
