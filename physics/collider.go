package physics

import (
	V "github.com/evanrock520-ciencias/ClothSDK/vector"
)

// Collider is the common interface for every static collider variant
// (Plane, Sphere, Capsule). Resolve projects penetrating particles back to
// the surface and rewrites their implicit velocity (via OldPosition) to
// apply tangential friction, per spec.md §4.4.
type Collider interface {
	Resolve(particles []*Particle, dt, thickness float64)
}

// resolveFriction rewrites a particle's old position so its implicit Verlet
// velocity keeps only a (1-friction) fraction of its tangential component
// about normal. Shared by every collider variant so the friction rewrite stays
// bit-identical across them.
func resolveFriction(p *Particle, normal V.Vec3, friction float64) {
	velocity := p.Position.Sub(p.OldPosition)
	normalVel := normal.Mul(velocity.Dot(normal))
	tangentVel := velocity.Sub(normalVel)
	newVelocity := normalVel.Add(tangentVel.Mul(1 - friction))
	p.OldPosition = p.Position.Sub(newVelocity)
}

// PlaneCollider is an infinite half-space bounded by a plane through Origin
// with unit Normal. Particles whose signed distance from the plane drops
// below the contact thickness are pushed back out along Normal.
type PlaneCollider struct {
	Origin   V.Vec3
	Normal   V.Vec3
	Friction float64
}

// NewPlaneCollider builds a plane collider through origin with the given
// (not necessarily normalized) normal and friction coefficient.
func NewPlaneCollider(origin, normal V.Vec3, friction float64) *PlaneCollider {
	return &PlaneCollider{Origin: origin, Normal: V.Normalize(normal), Friction: friction}
}

func (c *PlaneCollider) Resolve(particles []*Particle, dt, thickness float64) {
	parallelFor(len(particles), func(i int) {
		p := particles[i]
		offset := p.Position.Sub(c.Origin)
		distance := offset.Dot(c.Normal)
		if distance >= thickness {
			return
		}
		penetration := thickness - distance
		p.Position = p.Position.Add(c.Normal.Mul(penetration))
		resolveFriction(p, c.Normal, c.Friction)
	})
}

// SphereCollider is a solid ball particles cannot penetrate. Radius is the
// geometric radius; the contact thickness is added at resolve time.
type SphereCollider struct {
	Center   V.Vec3
	Radius   float64
	Friction float64
}

// NewSphereCollider builds a sphere collider centered at center.
func NewSphereCollider(center V.Vec3, radius, friction float64) *SphereCollider {
	return &SphereCollider{Center: center, Radius: radius, Friction: friction}
}

func (c *SphereCollider) Resolve(particles []*Particle, dt, thickness float64) {
	collisionRadius := c.Radius + thickness
	parallelFor(len(particles), func(i int) {
		p := particles[i]
		offset := p.Position.Sub(c.Center)
		distance := offset.Len()

		normal := offset
		if distance < V.Epsilon {
			normal = V.Vec3{0, 1, 0}
			distance = 0
		} else {
			normal = offset.Mul(1 / distance)
		}

		if distance >= collisionRadius {
			return
		}
		p.Position = c.Center.Add(normal.Mul(collisionRadius))
		resolveFriction(p, normal, c.Friction)
	})
}

// CapsuleCollider is a cylinder with hemispherical caps running from Start
// to End. Resolve projects onto the clamped segment and treats the closest
// point as a sphere center, per spec.md §4.4.
type CapsuleCollider struct {
	Start, End V.Vec3
	Radius     float64
	Friction   float64
}

// NewCapsuleCollider builds a capsule collider from start to end.
func NewCapsuleCollider(start, end V.Vec3, radius, friction float64) *CapsuleCollider {
	return &CapsuleCollider{Start: start, End: end, Radius: radius, Friction: friction}
}

func (c *CapsuleCollider) Resolve(particles []*Particle, dt, thickness float64) {
	collisionRadius := c.Radius + thickness
	segment := c.End.Sub(c.Start)
	segmentLenSq := segment.Dot(segment)

	parallelFor(len(particles), func(i int) {
		p := particles[i]
		toParticle := p.Position.Sub(c.Start)

		t := 0.0
		if segmentLenSq > V.EpsilonSq {
			t = toParticle.Dot(segment) / segmentLenSq
		}
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		closest := c.Start.Add(segment.Mul(t))

		offset := p.Position.Sub(closest)
		distance := offset.Len()

		normal := offset
		if distance < V.Epsilon {
			normal = V.Vec3{0, 1, 0}
			distance = 0
		} else {
			normal = offset.Mul(1 / distance)
		}

		if distance >= collisionRadius {
			return
		}
		p.Position = closest.Add(normal.Mul(collisionRadius))
		resolveFriction(p, normal, c.Friction)
	})
}
