package cli

import (
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// baseAliases lets --A, --t, etc. resolve to the long color flags.
var baseAliases = map[string]string{
	"a": "adenine",
	"t": "thymine",
	"u": "thymine",
	"c": "cytosine",
	"g": "guanine",
}

// NewFlagSet returns a clean FlagSet with ContinueOnError. Usage text goes
// to out.
func NewFlagSet(name string, out io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(out)
	fs.SetNormalizeFunc(normalize)
	fs.Usage = func() { Usage(out, fs, name) }
	return fs
}

// normalize maps underscores to dashes and single-letter base names to
// their color flag.
func normalize(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	name = strings.ReplaceAll(name, "_", "-")
	if long, ok := baseAliases[strings.ToLower(name)]; ok && len(name) == 1 {
		name = long
	}
	return pflag.NormalizedName(name)
}
