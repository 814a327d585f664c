// internal/palette/palette.go
package palette

import "fmt"

// RGB is one 8-bit color triple.
type RGB [3]uint8

// Base is a nucleotide class. Uracil shares Thymine's class.
type Base uint8

const (
	none Base = iota
	Adenine
	Thymine
	Cytosine
	Guanine
)

// Bases lists every class in display order.
var Bases = []Base{Adenine, Thymine, Cytosine, Guanine}

var baseNames = [...]string{
	Adenine:  "adenine",
	Thymine:  "thymine",
	Cytosine: "cytosine",
	Guanine:  "guanine",
}

var baseLetters = [...]string{
	Adenine:  "A",
	Thymine:  "T/U",
	Cytosine: "C",
	Guanine:  "G",
}

func (b Base) String() string {
	if b == none || int(b) >= len(baseNames) {
		return fmt.Sprintf("Base(%d)", uint8(b))
	}
	return baseNames[b]
}

// Letters is the symbol(s) that select b, e.g. "T/U".
func (b Base) Letters() string {
	if b == none || int(b) >= len(baseLetters) {
		return "?"
	}
	return baseLetters[b]
}

// classes maps every byte to its class; anything else stays none.
var classes = func() (t [256]Base) {
	for _, p := range []struct {
		s string
		b Base
	}{
		{"Aa", Adenine},
		{"TtUu", Thymine},
		{"Cc", Cytosine},
		{"Gg", Guanine},
	} {
		for i := 0; i < len(p.s); i++ {
			t[p.s[i]] = p.b
		}
	}
	return t
}()

// Default colors (Adenine, Thymine, Cytosine, Guanine).
var (
	DefaultAdenine  = RGB{239, 71, 111}
	DefaultThymine  = RGB{255, 209, 102}
	DefaultCytosine = RGB{6, 201, 150}
	DefaultGuanine  = RGB{17, 138, 178}
)

// Palette maps the four classes to colors. It is immutable once built and
// safe for concurrent use.
type Palette struct {
	colors [len(baseNames)]RGB
}

// New builds a palette from explicit colors.
func New(a, t, c, g RGB) *Palette {
	p := &Palette{}
	p.colors[Adenine] = a
	p.colors[Thymine] = t
	p.colors[Cytosine] = c
	p.colors[Guanine] = g
	return p
}

// Default returns the built-in palette.
func Default() *Palette {
	return New(DefaultAdenine, DefaultThymine, DefaultCytosine, DefaultGuanine)
}

// Color maps one input symbol to its color, case-insensitively. ok is false
// for anything outside ACGTU, which callers leave blank.
func (p *Palette) Color(sym byte) (RGB, bool) {
	b := classes[sym]
	if b == none {
		return RGB{}, false
	}
	return p.colors[b], true
}

// Of returns the color assigned to class b.
func (p *Palette) Of(b Base) RGB {
	if b == none || int(b) >= len(p.colors) {
		return RGB{}
	}
	return p.colors[b]
}

// With returns a copy of p with class b recolored.
func (p *Palette) With(b Base, c RGB) *Palette {
	q := *p
	if b != none && int(b) < len(q.colors) {
		q.colors[b] = c
	}
	return &q
}

// Build starts from the default palette and applies hex overrides keyed by
// class. Classes missing from hex keep their default; every present value,
// including "", must be a valid hex color.
func Build(hex map[Base]string) (*Palette, error) {
	p := Default()
	for _, b := range Bases {
		s, ok := hex[b]
		if !ok {
			continue
		}
		c, err := ParseHex(s)
		if err != nil {
			return nil, fmt.Errorf("%s color: %w", b, err)
		}
		p = p.With(b, c)
	}
	return p, nil
}

// KeepKnown compacts seq in place to the recognised symbols and returns the
// shortened slice.
func KeepKnown(seq []byte) []byte {
	out := seq[:0]
	for _, s := range seq {
		if classes[s] != none {
			out = append(out, s)
		}
	}
	return out
}
