// internal/emit/registry.go
package emit

import (
	"fmt"
	"image"
	"io"
	"sort"
)

// Encoder writes one image format. optimize asks for the strongest
// compression the format supports; formats without a knob ignore it.
type Encoder struct {
	Ext    string
	Encode func(w io.Writer, img image.Image, optimize bool) error
}

// Format registry (name → encoder). Populated from init() in formats.go.
var encoders = map[string]Encoder{}

// Register adds or replaces (last wins) the encoder for name.
func Register(name string, e Encoder) { encoders[name] = e }

// Lookup returns the encoder registered for name.
func Lookup(name string) (Encoder, error) {
	e, ok := encoders[name]
	if !ok {
		return Encoder{}, fmt.Errorf("unknown image format %q (want one of %v)", name, Formats())
	}
	return e, nil
}

// Formats lists registered format names in sorted order.
func Formats() []string {
	out := make([]string, 0, len(encoders))
	for k := range encoders {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
