// internal/pretty/legend.go
package pretty

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gookit/color"

	"genepic/internal/palette"
)

// Swatch renders a block of background color for c. On terminals without
// color support it degrades to blank spaces.
func Swatch(c palette.RGB, width int) string {
	if width <= 0 {
		width = 4
	}
	return color.RGB(c[0], c[1], c[2], true).Sprint(fmt.Sprintf("%*s", width, ""))
}

// Legend prints one line per base: swatch, letters, name and hex code.
func Legend(w io.Writer, p *palette.Palette) error {
	bw := bufio.NewWriter(w)
	for _, b := range palette.Bases {
		c := p.Of(b)
		fmt.Fprintf(bw, "%s  %-3s  %-8s  %s\n", Swatch(c, 4), b.Letters(), b, c.Hex())
	}
	fmt.Fprintf(bw, "%s  %-3s  %-8s  %s\n", Swatch(palette.RGB{}, 4), "*", "other", "blank")
	return bw.Flush()
}
