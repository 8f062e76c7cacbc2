package physics

import (
	"math"

	V "github.com/evanrock520-ciencias/ClothSDK/vector"
)

// Force is the common interface for every force variant (Gravity,
// Aerodynamic). Apply accumulates an acceleration into every particle it
// affects; it never reads or writes positions directly.
type Force interface {
	Apply(particles []*Particle, dt float64)
}

// GravityForce adds a constant acceleration to every non-kinematic
// particle. Per spec.md §9's aerodynamic-units open question, this kernel
// treats every Force as contributing directly to the acceleration
// accumulator (no per-particle mass division), so Gravity is simply added
// as-is rather than scaled by inverse mass.
type GravityForce struct {
	G V.Vec3
}

// NewGravityForce builds a gravity force with acceleration g.
func NewGravityForce(g V.Vec3) *GravityForce {
	return &GravityForce{G: g}
}

func (f *GravityForce) Apply(particles []*Particle, dt float64) {
	parallelFor(len(particles), func(i int) {
		p := particles[i]
		if p.InverseMass > 0 {
			p.AddForce(f.G)
		}
	})
}

// AeroFace is a triangle participating in aerodynamic pressure evaluation.
// It may coincide with one of the cloth's topological triangles, but the
// aerodynamic model only needs the three particle ids.
type AeroFace struct {
	A, B, C int
}

// AerodynamicForce applies a face-pressure drag model to a fixed set of
// triangles, per spec.md §4.5. It owns its own elapsed-time accumulator so
// the gust oscillation is continuous across substeps regardless of how many
// times Apply is called per frame.
type AerodynamicForce struct {
	Faces      []AeroFace
	Wind       V.Vec3
	AirDensity float64

	elapsed float64
}

// NewAerodynamicForce builds an aerodynamic force over faces with freestream
// wind and airDensity.
func NewAerodynamicForce(faces []AeroFace, wind V.Vec3, airDensity float64) *AerodynamicForce {
	return &AerodynamicForce{Faces: faces, Wind: wind, AirDensity: airDensity}
}

// Elapsed returns the force's internal clock, the sum of every dt passed to
// Apply so far.
func (f *AerodynamicForce) Elapsed() float64 { return f.elapsed }

func (f *AerodynamicForce) Apply(particles []*Particle, dt float64) {
	if dt < V.Epsilon {
		return
	}
	f.elapsed += dt

	gust := math.Sin(5*f.elapsed)*0.5 + 0.5
	wind := f.Wind.Mul(1 + gust)

	// Faces sharing a vertex would otherwise race on that vertex's
	// acceleration accumulator under a plain parallelFor (spec.md §5); the
	// per-face contribution below is computed independently and only the
	// addForce call needs protecting, so the faces are partitioned into
	// vertex-disjoint color batches and each batch runs in lockstep.
	batches := colorFaceBatches(f.Faces)
	for _, batch := range batches {
		parallelForIndices(batch, func(i int) {
			face := f.Faces[i]
			pA := particles[face.A]
			pB := particles[face.B]
			pC := particles[face.C]

			vFace := pA.Velocity(dt).Add(pB.Velocity(dt)).Add(pC.Velocity(dt)).Mul(1.0 / 3.0)
			vRel := vFace.Sub(wind)
			speed := vRel.Len()
			if speed < V.Epsilon {
				return
			}

			edge1 := pB.Position.Sub(pA.Position)
			edge2 := pC.Position.Sub(pA.Position)
			n := edge1.Cross(edge2)
			area := 0.5 * n.Len()
			if area < V.EpsilonSq {
				return
			}
			normal := n.Mul(1 / n.Len())

			pressure := vRel.Dot(normal) / speed
			totalForce := normal.Mul(-0.5 * f.AirDensity * speed * speed * area * pressure)
			perVertex := totalForce.Mul(1.0 / 3.0)

			pA.AddForce(perVertex)
			pB.AddForce(perVertex)
			pC.AddForce(perVertex)
		})
	}
}

// colorFaceBatches partitions face indices into batches where no two faces
// in the same batch share a particle id, using a greedy graph coloring over
// the face-adjacency-by-shared-vertex graph (spec.md §9's preferred
// resolution for the aerodynamic write hazard). The greedy pass walks faces
// in index order, so the grouping itself is deterministic given a fixed
// face list even though it isn't unique.
func colorFaceBatches(faces []AeroFace) [][]int {
	if len(faces) == 0 {
		return nil
	}
	used := make(map[int]int, len(faces)*3) // particle ids already claimed in the current color pass
	var batches [][]int

	remaining := make([]int, len(faces))
	for i := range faces {
		remaining[i] = i
	}

	for len(remaining) > 0 {
		for k := range used {
			delete(used, k)
		}
		var batch []int
		var next []int
		for _, i := range remaining {
			f := faces[i]
			if _, a := used[f.A]; a {
				next = append(next, i)
				continue
			}
			if _, b := used[f.B]; b {
				next = append(next, i)
				continue
			}
			if _, c := used[f.C]; c {
				next = append(next, i)
				continue
			}
			used[f.A], used[f.B], used[f.C] = 1, 1, 1
			batch = append(batch, i)
		}
		batches = append(batches, batch)
		remaining = next
	}
	return batches
}
