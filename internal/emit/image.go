package emit

import (
	"image"

	"github.com/disintegration/gift"

	"genepic/internal/raster"
)

// ToImage converts a canvas into an opaque image of the same size.
// Blank cells come out black.
func ToImage(c *raster.Canvas) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Dim, c.Dim))
	for i, j := 0, 0; i < len(c.Pix); i, j = i+raster.Channels, j+4 {
		img.Pix[j] = c.Pix[i]
		img.Pix[j+1] = c.Pix[i+1]
		img.Pix[j+2] = c.Pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// Upscale turns every pixel into a scale×scale block (nearest neighbour).
// scale <= 1 returns src unchanged.
func Upscale(src *image.NRGBA, scale int) *image.NRGBA {
	if scale <= 1 {
		return src
	}
	b := src.Bounds()
	g := gift.New(gift.Resize(b.Dx()*scale, b.Dy()*scale, gift.NearestNeighborResampling))
	dst := image.NewNRGBA(g.Bounds(b))
	g.Draw(dst, src)
	return dst
}
