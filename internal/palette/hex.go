package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex marks a malformed hex color.
var ErrInvalidHex = errors.New("invalid hex color")

// ParseHex accepts exactly six hex digits, optionally prefixed with '#'.
// Digits are case-insensitive.
func ParseHex(s string) (RGB, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w %q: incorrect number of characters", ErrInvalidHex, s)
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return RGB{}, fmt.Errorf("%w %q: invalid character %q", ErrInvalidHex, s, digits[i])
		}
	}
	c, err := colorful.Hex("#" + strings.ToLower(digits))
	if err != nil {
		return RGB{}, fmt.Errorf("%w %q: %v", ErrInvalidHex, s, err)
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// Hex formats c as "#rrggbb".
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c[0]) / 255,
		G: float64(c[1]) / 255,
		B: float64(c[2]) / 255,
	}.Hex()
}
