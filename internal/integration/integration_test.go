// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"genepic/internal/app"
	"genepic/pkg/api"
)

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func randomFASTA(n int) string {
	r := rand.New(rand.NewSource(7))
	const alphabet = "ACGTacgtuNN-"
	var b strings.Builder
	b.WriteString(">rand\n")
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[r.Intn(len(alphabet))])
		if i%60 == 59 {
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')
	return b.String()
}

func TestEndToEnd(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "itest.fa"), ">s\nACGTACGTACGT\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-i", fa, "-d", dir, "-s", "2", "-q"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	want := "Image with 12 bases saved to " + filepath.Join(dir, "GenePic.png")
	if !strings.HasPrefix(out.String(), want) {
		t.Fatalf("got %q, want prefix %q", out.String(), want)
	}
	f, err := os.Open(filepath.Join(dir, "GenePic.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Fatalf("want 8x8 image (dim 4, scale 2), got %v", b)
	}
}

func TestParallelMatchesEqualSerial(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "par.fa"), randomFASTA(10_007))

	run := func(threads int, serpentine bool) []byte {
		name := fmt.Sprintf("t%d-%v", threads, serpentine)
		args := []string{fa, "-d", dir, "-o", name, "--threads", fmt.Sprint(threads), "-q"}
		if serpentine {
			args = append(args, "--serpentine")
		}
		var out, errB bytes.Buffer
		if code := app.Run(args, &out, &errB); code != 0 {
			t.Fatalf("exit %d err %s", code, errB.String())
		}
		data, err := os.ReadFile(filepath.Join(dir, name+".png"))
		if err != nil {
			t.Fatal(err)
		}
		return data
	}

	for _, serp := range []bool{false, true} {
		serial := run(1, serp)
		for _, n := range []int{2, 3, 8, 64} {
			if !bytes.Equal(serial, run(n, serp)) {
				t.Fatalf("serpentine=%v: %d workers differ from serial output", serp, n)
			}
		}
	}
}

func TestRepeatedRunsNeverOverwrite(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "in.fa"), "ACGT\n")
	for i := 0; i < 3; i++ {
		var out, errB bytes.Buffer
		if code := app.Run([]string{fa, "-d", dir, "-q"}, &out, &errB); code != 0 {
			t.Fatalf("run %d: exit %d err %s", i, code, errB.String())
		}
	}
	for _, n := range []string{"GenePic.png", "GenePic2.png", "GenePic3.png"} {
		if _, err := os.Stat(filepath.Join(dir, n)); err != nil {
			t.Errorf("missing %s: %v", n, err)
		}
	}
}

func TestJSONReport(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "in.fa"), ">x\nACGTN\n")
	var out, errB bytes.Buffer
	code := app.Run([]string{fa, "-d", dir, "-f", "qoi", "-t", "2", "--report", "json", "-q"}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errB.String())
	}
	var r api.RenderReportV1
	if err := json.Unmarshal(out.Bytes(), &r); err != nil {
		t.Fatalf("report is not JSON: %v\n%s", err, out.String())
	}
	if r.Bases != 5 || r.Recognized != 4 || r.Skipped != 1 || r.Dim != 3 || r.Format != "qoi" {
		t.Fatalf("unexpected report %+v", r)
	}
	if r.Path != filepath.Join(dir, "GenePic.qoi") {
		t.Fatalf("path %q", r.Path)
	}
}

func TestConfigFileUnderFlags(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "in.fa"), "ACGT\n")
	cfg := write(t, filepath.Join(dir, "genepic.hcl"), fmt.Sprintf(`
render { scale = 3 }
output {
  name   = "FromFile"
  dir    = %q
  format = "tiff"
}
`, dir))
	var out, errB bytes.Buffer
	code := app.Run([]string{fa, "--config", cfg, "-f", "png", "--report", "json", "-q"}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errB.String())
	}
	var r api.RenderReportV1
	if err := json.Unmarshal(out.Bytes(), &r); err != nil {
		t.Fatal(err)
	}
	if r.Scale != 3 || r.Format != "png" || r.Path != filepath.Join(dir, "FromFile.png") {
		t.Fatalf("precedence broken: %+v", r)
	}
}

func TestUsageErrorsWriteNothing(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, filepath.Join(dir, "in.fa"), "ACGT\n")
	bad := write(t, filepath.Join(dir, "bad.hcl"), `palette { adenine = "#12" }`)
	blank := write(t, filepath.Join(dir, "blank.hcl"), `palette { adenine = "" }`)
	empty := write(t, filepath.Join(dir, "empty.fa"), ">only a header\n")

	for name, args := range map[string][]string{
		"bad hex flag":   {fa, "-A", "#ZZZZZZ"},
		"bad hex file":   {fa, "--config", bad},
		"empty hex file": {fa, "--config", blank},
		"bad format":     {fa, "-f", "gif"},
		"missing input":  {filepath.Join(dir, "nope.fa")},
		"empty sequence": {empty},
		"bad flag":       {fa, "--zoom"},
	} {
		out := filepath.Join(t.TempDir(), "out")
		if err := os.Mkdir(out, 0o755); err != nil {
			t.Fatal(err)
		}
		var stdout, stderr bytes.Buffer
		code := app.Run(append(args, "-d", out), &stdout, &stderr)
		if code != app.ExitUsage {
			t.Errorf("%s: exit %d, want %d (stderr %s)", name, code, app.ExitUsage, stderr.String())
		}
		if entries, _ := os.ReadDir(out); len(entries) != 0 {
			t.Errorf("%s: wrote %d file(s)", name, len(entries))
		}
	}
}

func TestHelpAndVersion(t *testing.T) {
	var out, errB bytes.Buffer
	if code := app.Run([]string{"--help"}, &out, &errB); code != 0 {
		t.Fatalf("help exit %d", code)
	}
	if !strings.Contains(out.String(), "--serpentine") {
		t.Fatalf("help text missing flags:\n%s", out.String())
	}
	out.Reset()
	if code := app.Run([]string{"--version"}, &out, &errB); code != 0 || !strings.HasPrefix(out.String(), "genepic version ") {
		t.Fatalf("version: exit %d out %q", code, out.String())
	}
}
