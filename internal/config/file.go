package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"genepic/internal/palette"
)

// File is the decoded HCL configuration. Every attribute is optional; a nil
// pointer means "not set".
type File struct {
	Palette *PaletteBlock `hcl:"palette,block"`
	Render  *RenderBlock  `hcl:"render,block"`
	Output  *OutputBlock  `hcl:"output,block"`
}

type PaletteBlock struct {
	Adenine  *string `hcl:"adenine,optional"`
	Thymine  *string `hcl:"thymine,optional"`
	Cytosine *string `hcl:"cytosine,optional"`
	Guanine  *string `hcl:"guanine,optional"`
}

type RenderBlock struct {
	Scale       *int  `hcl:"scale,optional"`
	Threads     *int  `hcl:"threads,optional"`
	Serpentine  *bool `hcl:"serpentine,optional"`
	DropUnknown *bool `hcl:"drop_unknown,optional"`
}

type OutputBlock struct {
	Name     *string `hcl:"name,optional"`
	Dir      *string `hcl:"dir,optional"`
	Format   *string `hcl:"format,optional"`
	Optimize *bool   `hcl:"optimize,optional"`
}

// Load parses and decodes the HCL file at path.
func Load(path string) (*File, error) {
	f, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrConfig, path, diags)
	}
	return decode(f, path)
}

// Parse decodes HCL source; filename is only used in diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrConfig, filename, diags)
	}
	return decode(f, filename)
}

func decode(f *hcl.File, name string) (*File, error) {
	var out File
	if diags := gohcl.DecodeBody(f.Body, evalContext(), &out); diags.HasErrors() {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrConfig, name, diags)
	}
	return &out, nil
}

// evalContext exposes the built-in colors as default.<base>, so a file can
// say `thymine = default.adenine`.
func evalContext() *hcl.EvalContext {
	def := palette.Default()
	colors := make(map[string]cty.Value, len(palette.Bases))
	for _, b := range palette.Bases {
		colors[b.String()] = cty.StringVal(def.Of(b).Hex())
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"default": cty.ObjectVal(colors)},
	}
}

// Apply overlays every value set in f onto s.
func (f *File) Apply(s *Settings) {
	if f == nil {
		return
	}
	if p := f.Palette; p != nil {
		for b, v := range map[palette.Base]*string{
			palette.Adenine:  p.Adenine,
			palette.Thymine:  p.Thymine,
			palette.Cytosine: p.Cytosine,
			palette.Guanine:  p.Guanine,
		} {
			if v != nil {
				if s.Colors == nil {
					s.Colors = map[palette.Base]string{}
				}
				s.Colors[b] = *v
			}
		}
	}
	if r := f.Render; r != nil {
		setInt(&s.Scale, r.Scale)
		setInt(&s.Threads, r.Threads)
		setBool(&s.Serpentine, r.Serpentine)
		setBool(&s.DropUnknown, r.DropUnknown)
	}
	if o := f.Output; o != nil {
		setString(&s.Name, o.Name)
		setString(&s.Dir, o.Dir)
		setString(&s.Format, o.Format)
		setBool(&s.Optimize, o.Optimize)
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
