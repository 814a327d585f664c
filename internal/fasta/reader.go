// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"genepic/internal/raster"
)

// ErrEmptySequence is returned when the input holds no sequence bytes. It
// is raster.ErrEmptySequence, so either layer's rejection matches.
var ErrEmptySequence = raster.ErrEmptySequence

// ReadSequence reads the whole input at path ("-" for stdin) and returns the
// sequence with line breaks removed. Lines starting with '>' or ';' (FASTA
// headers and comments) are dropped, so multi-record files concatenate.
// Every other byte is kept as is, including symbols the palette does not
// know.
func ReadSequence(ctx context.Context, path string) ([]byte, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ReadSequenceFrom(ctx, rc)
}

// ReadSequenceFrom is ReadSequence over an already opened reader.
// Cancellation via ctx is checked between lines.
func ReadSequenceFrom(ctx context.Context, r io.Reader) ([]byte, error) {
	br := bufio.NewReaderSize(r, 1<<20)
	seq := make([]byte, 0, 1<<16)
	lineStart, header := true, false
	for n := 0; ; n++ {
		if n%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		chunk, err := br.ReadSlice('\n')
		if len(chunk) > 0 {
			if lineStart {
				header = chunk[0] == '>' || chunk[0] == ';'
			}
			lineStart = chunk[len(chunk)-1] == '\n'
			if !header {
				seq = append(seq, trimEOL(chunk)...)
			}
		}
		switch {
		case err == nil, errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if len(seq) == 0 {
				return nil, ErrEmptySequence
			}
			return seq, nil
		default:
			return nil, fmt.Errorf("read sequence: %w", err)
		}
	}
}

func trimEOL(b []byte) []byte {
	b = bytes.TrimSuffix(b, []byte{'\n'})
	return bytes.TrimSuffix(b, []byte{'\r'})
}
