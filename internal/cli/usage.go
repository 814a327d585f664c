// internal/cli/usage.go
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"genepic/internal/version"
)

// Usage prints the grouped help text for fs, showing each flag's default.
func Usage(out io.Writer, fs *pflag.FlagSet, name string) {
	def := func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}

	fmt.Fprintf(out, "%s – render a nucleotide sequence as a square image\n\n", name)
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
	fmt.Fprintf(out, "Usage:\n  %s [flags] [sequence-file | -]\n", name)

	fmt.Fprintln(out, "\nInput:")
	fmt.Fprintln(out, "  -i, --input string          Sequence file (FASTA or raw, .gz/.zst ok) or '-' for STDIN [-]")
	fmt.Fprintln(out, "      --config file           HCL configuration file (flags override it)")
	fmt.Fprintf(out, "      --drop-unknown          Remove symbols other than A/C/G/T/U before sizing [%s]\n", def("drop-unknown"))

	fmt.Fprintln(out, "\nColors:")
	fmt.Fprintf(out, "  -A, --adenine hex           Adenine color [%s]\n", def("adenine"))
	fmt.Fprintf(out, "  -T, --thymine hex           Thymine/uracil color [%s]\n", def("thymine"))
	fmt.Fprintf(out, "  -C, --cytosine hex          Cytosine color [%s]\n", def("cytosine"))
	fmt.Fprintf(out, "  -G, --guanine hex           Guanine color [%s]\n", def("guanine"))
	fmt.Fprintf(out, "      --legend                Print the palette to STDERR [%s]\n", def("legend"))

	fmt.Fprintln(out, "\nRendering:")
	fmt.Fprintf(out, "  -s, --scale int             Upscale factor (each base becomes SxS pixels) [%s]\n", def("scale"))
	fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
	fmt.Fprintf(out, "      --serpentine            Reverse every odd row [%s]\n", def("serpentine"))

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintf(out, "  -o, --output string         Base file name; existing files get a number suffix [%s]\n", def("output"))
	fmt.Fprintf(out, "  -d, --dir string            Output directory [%s]\n", def("dir"))
	fmt.Fprintf(out, "  -f, --format string         Image format: png | qoi | tiff [%s]\n", def("format"))
	fmt.Fprintf(out, "      --no-optimize           Skip compression for faster writes [%s]\n", def("no-optimize"))
	fmt.Fprintf(out, "      --report string         Summary on STDOUT: text | json [%s]\n", def("report"))

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintf(out, "      --log-level string      debug | info | warn | error [%s]\n", def("log-level"))
	fmt.Fprintf(out, "      --log-format string     text | json [%s]\n", def("log-format"))
	fmt.Fprintf(out, "  -q, --quiet                 Only log warnings and errors [%s]\n", def("quiet"))
	fmt.Fprintln(out, "  -v, --version               Print version and exit")
	fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
}
