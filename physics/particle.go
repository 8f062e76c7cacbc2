package physics

import (
	V "github.com/evanrock520-ciencias/ClothSDK/vector"
)

// Particle is one mass point of a cloth: current and previous position,
// an acceleration accumulator and an inverse mass. Velocity is never
// stored directly — it is always derived as (Position-OldPosition)/dt.
type Particle struct {
	Position     V.Vec3
	OldPosition  V.Vec3
	Acceleration V.Vec3
	InverseMass  float64

	massAccum float64 // running total for AddMass
}

// NewParticle creates a particle at rest at pos with zero mass (pinned
// until AddMass or SetInverseMass gives it weight).
func NewParticle(pos V.Vec3) *Particle {
	return &Particle{Position: pos, OldPosition: pos}
}

// AddForce accumulates f into the particle's acceleration. Forces in this
// kernel are already mass-normalized accelerations (see Gravity, Aero).
func (p *Particle) AddForce(f V.Vec3) {
	p.Acceleration = p.Acceleration.Add(f)
}

// AddMass adds m to the particle's running mass total and recomputes its
// inverse mass. Calling this twice for the same contribution double-counts
// the mass — callers must Clear the solver before rebuilding a cloth.
func (p *Particle) AddMass(m float64) {
	p.massAccum += m
	if p.massAccum > 0 {
		p.InverseMass = 1 / p.massAccum
	} else {
		p.InverseMass = 0
	}
}

// SetInverseMass overrides the inverse mass directly. A value of 0 makes
// the particle kinematic (pinned).
func (p *Particle) SetInverseMass(w float64) {
	p.InverseMass = w
}

// Velocity derives the particle's implicit Verlet velocity for a given dt.
func (p *Particle) Velocity(dt float64) V.Vec3 {
	if dt > V.Epsilon {
		return p.Position.Sub(p.OldPosition).Mul(1 / dt)
	}
	return V.Zero()
}

// Integrate advances the particle one substep of Verlet integration:
//
//	new = 2*p - p' + a*dt^2
//
// Pinned particles (InverseMass == 0) never move; their acceleration
// accumulator is still cleared so stale forces don't leak into the next
// substep.
func (p *Particle) Integrate(dt float64) {
	if p.InverseMass == 0 {
		p.Acceleration = V.Zero()
		return
	}
	next := p.Position.Mul(2).Sub(p.OldPosition).Add(p.Acceleration.Mul(dt * dt))
	p.OldPosition = p.Position
	p.Position = next
	p.Acceleration = V.Zero()
}
