package physics

import (
	"testing"

	V "github.com/evanrock520-ciencias/ClothSDK/vector"
)

func TestPlaneColliderPushesOutPenetratingParticle(t *testing.T) {
	p := NewParticle(V.Vec3{0, -0.05, 0})
	p.SetInverseMass(1)
	particles := []*Particle{p}

	c := NewPlaneCollider(V.Zero(), V.Vec3{0, 1, 0}, 0.2)
	c.Resolve(particles, 1.0/60.0, 0.08)

	if p.Position[1] < 0.08-1e-9 {
		t.Fatalf("particle resolved to y=%v, want at least thickness 0.08", p.Position[1])
	}
}

func TestPlaneColliderLeavesClearParticleAlone(t *testing.T) {
	p := NewParticle(V.Vec3{0, 5, 0})
	p.SetInverseMass(1)
	particles := []*Particle{p}

	c := NewPlaneCollider(V.Zero(), V.Vec3{0, 1, 0}, 0.2)
	c.Resolve(particles, 1.0/60.0, 0.08)

	if p.Position != (V.Vec3{0, 5, 0}) {
		t.Fatalf("particle far from the plane moved to %v", p.Position)
	}
}

func TestSphereColliderPushesOutToSurface(t *testing.T) {
	p := NewParticle(V.Vec3{0.1, 0, 0})
	p.SetInverseMass(1)
	particles := []*Particle{p}

	c := NewSphereCollider(V.Zero(), 1.0, 0.1)
	c.Resolve(particles, 1.0/60.0, 0.05)

	got := V.Length(p.Position)
	want := 1.05
	if got < want-1e-9 || got > want+1e-9 {
		t.Fatalf("distance from center = %v, want %v", got, want)
	}
}

func TestSphereColliderDegenerateAtCenter(t *testing.T) {
	p := NewParticle(V.Zero())
	p.SetInverseMass(1)
	particles := []*Particle{p}

	c := NewSphereCollider(V.Zero(), 1.0, 0.1)
	c.Resolve(particles, 1.0/60.0, 0.05)

	if V.Length(p.Position) < 1.0 {
		t.Fatalf("particle exactly at sphere center did not resolve outward, got %v", p.Position)
	}
}

func TestCapsuleColliderClampsToSegmentEnds(t *testing.T) {
	p := NewParticle(V.Vec3{0, 0, -0.2}) // beyond the Start end of the segment, inside the cap
	p.SetInverseMass(1)
	particles := []*Particle{p}

	c := NewCapsuleCollider(V.Vec3{0, 0, 0}, V.Vec3{0, 0, 1}, 0.5, 0.1)
	c.Resolve(particles, 1.0/60.0, 0.05)

	dist := V.Distance(p.Position, V.Vec3{0, 0, 0})
	want := 0.55
	if dist < want-1e-9 || dist > want+1e-9 {
		t.Fatalf("distance from capsule start cap = %v, want %v", dist, want)
	}
}

func TestCapsuleColliderAlongSegmentMidpoint(t *testing.T) {
	p := NewParticle(V.Vec3{0.1, 0, 0.5}) // near the middle of the segment
	p.SetInverseMass(1)
	particles := []*Particle{p}

	c := NewCapsuleCollider(V.Vec3{0, 0, 0}, V.Vec3{0, 0, 1}, 0.5, 0.1)
	c.Resolve(particles, 1.0/60.0, 0.05)

	closest := V.Vec3{0, 0, 0.5}
	dist := V.Distance(p.Position, closest)
	want := 0.55
	if dist < want-1e-9 || dist > want+1e-9 {
		t.Fatalf("distance from capsule axis = %v, want %v", dist, want)
	}
}

func TestResolveFrictionDampensTangentialVelocity(t *testing.T) {
	p := NewParticle(V.Vec3{1, 0, 0})
	p.OldPosition = V.Vec3{0, 0, 0} // moving +1 per dt along x, purely tangential to the y normal

	resolveFriction(p, V.Vec3{0, 1, 0}, 0.5)

	newVelocity := p.Position.Sub(p.OldPosition)
	if newVelocity[0] < 0.49 || newVelocity[0] > 0.51 {
		t.Fatalf("tangential velocity after 50%% friction = %v, want ~0.5", newVelocity[0])
	}
}
