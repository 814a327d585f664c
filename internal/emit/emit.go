// internal/emit/emit.go
package emit

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"genepic/internal/raster"
)

// DefaultName is the base file name used when none is configured.
const DefaultName = "GenePic"

// Options controls how a canvas is written.
type Options struct {
	Dir      string // output directory ("" = current directory)
	Name     string // base name without extension
	Format   string // registered format name
	Scale    int    // integer upscale factor, >= 1
	Optimize bool   // strongest compression the format offers
}

// Emit encodes c into the first free numbered file (Name.ext, Name2.ext,
// Name3.ext, ...) under o.Dir and returns its path. An existing file is never
// overwritten; a partially written file is removed on error.
func Emit(c *raster.Canvas, o Options) (path string, err error) {
	if c == nil || c.Dim == 0 {
		return "", errors.New("emit: empty canvas")
	}
	if o.Scale < 1 {
		return "", fmt.Errorf("emit: scale must be >= 1, got %d", o.Scale)
	}
	enc, err := Lookup(o.Format)
	if err != nil {
		return "", err
	}
	name := o.Name
	if name == "" {
		name = DefaultName
	}

	img := Upscale(ToImage(c), o.Scale)

	fh, path, err := CreateUnique(o.Dir, name, enc.Ext)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(path)
			path = ""
		}
	}()

	bw := bufio.NewWriterSize(fh, 1<<20)
	if err = enc.Encode(bw, img, o.Optimize); err != nil {
		_ = fh.Close()
		return path, fmt.Errorf("encode %s: %w", o.Format, err)
	}
	if err = bw.Flush(); err != nil {
		_ = fh.Close()
		return path, fmt.Errorf("write %s: %w", path, err)
	}
	if err = fh.Close(); err != nil {
		return path, fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

// CreateUnique exclusively creates dir/name+ext, or dir/name2+ext,
// dir/name3+ext, ... for the first name not taken. O_EXCL makes the check
// and the create one step, so concurrent callers never share a file.
func CreateUnique(dir, name, ext string) (*os.File, string, error) {
	if dir == "" {
		dir = "."
	}
	for n := 1; ; n++ {
		p := filepath.Join(dir, candidate(name, ext, n))
		fh, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return fh, p, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", err
		}
	}
}

func candidate(name, ext string, n int) string {
	if n == 1 {
		return name + ext
	}
	return name + strconv.Itoa(n) + ext
}
