// internal/runutil/runutil.go
package runutil

import (
	"fmt"

	"genepic/internal/raster"
)

// EffectiveWorkers resolves the worker count for a dim×dim canvas.
// Rules:
//   - requested <= 0 → one worker per CPU
//   - more workers than CPUs is allowed but warned about
//   - never more workers than canvas rows (extra workers would own nothing)
func EffectiveWorkers(requested, cpus, dim int) (int, []string) {
	var warns []string
	if cpus < 1 {
		cpus = 1
	}
	n := requested
	if n <= 0 {
		n = cpus
	} else if n > cpus {
		warns = append(warns, fmt.Sprintf("using %d workers on %d CPUs; this may be slower than %d workers", n, cpus, cpus))
	}
	if c := raster.ClampWorkers(n, dim); c != n {
		warns = append(warns, fmt.Sprintf("only %d canvas rows; reducing workers from %d to %d", dim, n, c))
		n = c
	}
	return n, warns
}
