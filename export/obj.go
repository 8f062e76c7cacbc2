// Package export writes simulation output to the two external formats
// spec.md §6 names: a wavefront-style OBJ text mesh per frame, and a
// frame-archive carrying a fixed topology plus one time-stamped position
// sample per frame (an Alembic-style contract, not a
// byte-for-byte .abc file — see archive.go).
package export

import (
	"bufio"
	"fmt"
	"os"

	"github.com/evanrock520-ciencias/ClothSDK/engine"
	"github.com/evanrock520-ciencias/ClothSDK/physics"
)

// WriteOBJ writes cloth's current triangle mesh to filename as a wavefront
// OBJ: one "v x y z" line per particle the cloth owns, then one "f a b c"
// line per triangle using 1-based indices local to the cloth's particle-id
// list (not the solver's global ids), per spec.md §6.
func WriteOBJ(filename string, cloth *engine.Cloth, solver *physics.Solver) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", filename, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	particles := solver.Particles()

	localIndex := make(map[int]int, len(cloth.ParticleIDs))
	for i, id := range cloth.ParticleIDs {
		localIndex[id] = i + 1 // OBJ indices are 1-based
		p := particles[id].Position
		if _, err := fmt.Fprintf(w, "v %g %g %g\n", p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("export: write vertex: %w", err)
		}
	}

	for _, t := range cloth.Triangles {
		if _, err := fmt.Fprintf(w, "f %d %d %d\n", localIndex[t.A], localIndex[t.B], localIndex[t.C]); err != nil {
			return fmt.Errorf("export: write face: %w", err)
		}
	}

	return w.Flush()
}
