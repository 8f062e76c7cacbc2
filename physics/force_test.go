package physics

import (
	"testing"

	V "github.com/evanrock520-ciencias/ClothSDK/vector"
)

func TestGravityForceSkipsPinnedParticles(t *testing.T) {
	particles := []*Particle{
		NewParticle(V.Zero()), // pinned, InverseMass 0
		NewParticle(V.Zero()),
	}
	particles[1].SetInverseMass(1)

	g := NewGravityForce(V.Vec3{0, -9.81, 0})
	g.Apply(particles, 1.0/60.0)

	if particles[0].Acceleration != V.Zero() {
		t.Fatalf("pinned particle accumulated acceleration %v", particles[0].Acceleration)
	}
	if particles[1].Acceleration != (V.Vec3{0, -9.81, 0}) {
		t.Fatalf("free particle acceleration = %v, want gravity", particles[1].Acceleration)
	}
}

func TestAerodynamicForceAccumulatesElapsedTime(t *testing.T) {
	particles := []*Particle{
		NewParticle(V.Vec3{0, 0, 0}),
		NewParticle(V.Vec3{1, 0, 0}),
		NewParticle(V.Vec3{0, 1, 0}),
	}
	for _, p := range particles {
		p.SetInverseMass(1)
	}

	faces := []AeroFace{{A: 0, B: 1, C: 2}}
	f := NewAerodynamicForce(faces, V.Vec3{5, 0, 0}, 0.1)

	f.Apply(particles, 1.0/60.0)
	f.Apply(particles, 1.0/60.0)

	want := 2.0 / 60.0
	if got := f.Elapsed(); got < want-1e-9 || got > want+1e-9 {
		t.Fatalf("Elapsed() = %v, want %v", got, want)
	}
}

func TestAerodynamicForceSkipsDegenerateFace(t *testing.T) {
	particles := []*Particle{
		NewParticle(V.Vec3{0, 0, 0}),
		NewParticle(V.Vec3{0, 0, 0}),
		NewParticle(V.Vec3{0, 0, 0}),
	}
	for _, p := range particles {
		p.SetInverseMass(1)
	}

	faces := []AeroFace{{A: 0, B: 1, C: 2}}
	f := NewAerodynamicForce(faces, V.Vec3{5, 0, 0}, 0.1)
	f.Apply(particles, 1.0/60.0)

	for i, p := range particles {
		if p.Acceleration != V.Zero() {
			t.Fatalf("particle %d got acceleration %v from a zero-area face", i, p.Acceleration)
		}
	}
}

func TestColorFaceBatchesKeepsSharedVertexFacesApart(t *testing.T) {
	faces := []AeroFace{
		{A: 0, B: 1, C: 2},
		{A: 1, B: 2, C: 3}, // shares vertices 1,2 with face 0
		{A: 4, B: 5, C: 6}, // fully disjoint from face 0
	}

	batches := colorFaceBatches(faces)

	seenTogether := false
	for _, batch := range batches {
		has0, has1 := false, false
		for _, idx := range batch {
			if idx == 0 {
				has0 = true
			}
			if idx == 1 {
				has1 = true
			}
		}
		if has0 && has1 {
			seenTogether = true
		}
	}
	if seenTogether {
		t.Fatalf("faces 0 and 1 share a vertex but landed in the same batch: %v", batches)
	}

	total := 0
	for _, batch := range batches {
		total += len(batch)
	}
	if total != len(faces) {
		t.Fatalf("batches cover %d faces, want %d", total, len(faces))
	}
}

func TestColorFaceBatchesEmptyInput(t *testing.T) {
	if got := colorFaceBatches(nil); got != nil {
		t.Fatalf("colorFaceBatches(nil) = %v, want nil", got)
	}
}
