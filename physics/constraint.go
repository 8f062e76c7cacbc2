package physics

import (
	"math"

	V "github.com/evanrock520-ciencias/ClothSDK/vector"
)

// Constraint is the common interface for every XPBD constraint variant
// (Distance, Bending, Pin, Contact). Solve applies one Gauss-Seidel
// projection step; ResetLambda clears the accumulated multiplier at the
// start of a substep.
type Constraint interface {
	Solve(particles []*Particle, dt float64)
	ResetLambda()
}

// DistanceConstraint holds two particles at a fixed rest length (structural
// and shear edges in the cloth topology).
type DistanceConstraint struct {
	IDA, IDB   int
	RestLength float64
	Compliance float64
	lambda     float64
}

// NewDistanceConstraint builds a constraint between idA and idB with the
// given rest length and compliance.
func NewDistanceConstraint(idA, idB int, restLength, compliance float64) *DistanceConstraint {
	return &DistanceConstraint{IDA: idA, IDB: idB, RestLength: restLength, Compliance: compliance}
}

func (c *DistanceConstraint) ResetLambda() { c.lambda = 0 }

func (c *DistanceConstraint) Solve(particles []*Particle, dt float64) {
	if dt < V.Epsilon {
		return
	}
	pA := particles[c.IDA]
	pB := particles[c.IDB]

	d := pA.Position.Sub(pB.Position)
	length := d.Len()
	if length < V.Epsilon {
		return
	}

	gradA := d.Mul(1 / length)
	gradB := gradA.Mul(-1)

	wA := pA.InverseMass
	wB := pB.InverseMass
	alphaHat := c.Compliance / (dt * dt)

	denom := wA*gradA.Dot(gradA) + wB*gradB.Dot(gradB) + alphaHat
	if denom < V.EpsilonSq {
		return
	}

	constraintValue := length - c.RestLength
	deltaLambda := -(constraintValue + alphaHat*c.lambda) / denom
	c.lambda += deltaLambda

	pA.Position = pA.Position.Add(gradA.Mul(wA * deltaLambda))
	pB.Position = pB.Position.Add(gradB.Mul(wB * deltaLambda))
}

// BendingConstraint drives the discrete dihedral angle across hinge edge
// (A,B) toward RestAngle. C and D are the opposite vertices of the two
// triangles incident to the hinge.
type BendingConstraint struct {
	IDA, IDB, IDC, IDD int
	RestAngle          float64
	Compliance         float64
	lambda             float64
}

// NewBendingConstraint builds a bending constraint around hinge edge (A,B).
func NewBendingConstraint(idA, idB, idC, idD int, restAngle, compliance float64) *BendingConstraint {
	return &BendingConstraint{IDA: idA, IDB: idB, IDC: idC, IDD: idD, RestAngle: restAngle, Compliance: compliance}
}

func (c *BendingConstraint) ResetLambda() { c.lambda = 0 }

// DihedralAngle computes the signed angle between the two triangles sharing
// edge (A,B), using the atan2 sign convention spec.md §9 recommends over
// acos+flip. A flat hinge (C and D coplanar with the edge, on opposite sides
// of it) reads 0; the angle is the one whose gradients Solve applies. It is
// exported so ClothMesh.BuildFromMesh can compute a rest angle with the
// identical sign rule the solve uses — the two must agree or an imported
// mesh snaps at t=0.
func DihedralAngle(pA, pB, pC, pD V.Vec3) (angle float64, e V.Vec3, n1, n2 V.Vec3, ok bool) {
	e = pB.Sub(pA)
	length := e.Len()
	if length < V.Epsilon {
		return 0, e, n1, n2, false
	}

	n1 = e.Cross(pC.Sub(pA))
	n2 = e.Cross(pD.Sub(pA))
	n1Sq := n1.Dot(n1)
	n2Sq := n2.Dot(n2)
	if n1Sq < V.EpsilonSq || n2Sq < V.EpsilonSq {
		return 0, e, n1, n2, false
	}

	// n1 and n2 point in opposite directions when the hinge is flat, so the
	// cosine is negated to make that configuration read 0.
	n1n2 := n1.Len() * n2.Len()
	cosTheta := -n1.Dot(n2) / n1n2
	sinTheta := n1.Cross(n2).Dot(e) / (length * n1n2)
	return math.Atan2(sinTheta, cosTheta), e, n1, n2, true
}

func (c *BendingConstraint) Solve(particles []*Particle, dt float64) {
	if dt < V.Epsilon {
		return
	}
	pA := particles[c.IDA]
	pB := particles[c.IDB]
	pC := particles[c.IDC]
	pD := particles[c.IDD]

	angle, e, n1, n2, ok := DihedralAngle(pA.Position, pB.Position, pC.Position, pD.Position)
	if !ok {
		return
	}

	length := e.Len()
	n1Sq := n1.Dot(n1)
	n2Sq := n2.Dot(n2)
	lenSq := length * length

	gradC := n1.Mul(length / n1Sq)
	gradD := n2.Mul(-length / n2Sq)

	s1 := pC.Position.Sub(pB.Position).Dot(e) / lenSq
	s2 := pD.Position.Sub(pB.Position).Dot(e) / lenSq
	gradA := gradC.Mul(s1).Add(gradD.Mul(s2))

	t1 := pA.Position.Sub(pC.Position).Dot(e) / lenSq
	t2 := pA.Position.Sub(pD.Position).Dot(e) / lenSq
	gradB := gradC.Mul(t1).Add(gradD.Mul(t2))

	wA, wB, wC, wD := pA.InverseMass, pB.InverseMass, pC.InverseMass, pD.InverseMass
	alphaHat := c.Compliance / (dt * dt)

	denom := wA*gradA.Dot(gradA) + wB*gradB.Dot(gradB) + wC*gradC.Dot(gradC) + wD*gradD.Dot(gradD) + alphaHat
	if denom < V.EpsilonSq {
		return
	}

	constraintValue := angle - c.RestAngle
	deltaLambda := -(constraintValue + alphaHat*c.lambda) / denom
	c.lambda += deltaLambda

	pA.Position = pA.Position.Add(gradA.Mul(wA * deltaLambda))
	pB.Position = pB.Position.Add(gradB.Mul(wB * deltaLambda))
	pC.Position = pC.Position.Add(gradC.Mul(wC * deltaLambda))
	pD.Position = pD.Position.Add(gradD.Mul(wD * deltaLambda))
}

// PinConstraint anchors a particle to a fixed target position. A compliance
// of 0 is a hard anchor for a non-kinematic particle (w > 0).
type PinConstraint struct {
	ID         int
	Target     V.Vec3
	Compliance float64
	lambda     float64
}

// NewPinConstraint builds a pin anchoring particle id to target.
func NewPinConstraint(id int, target V.Vec3, compliance float64) *PinConstraint {
	return &PinConstraint{ID: id, Target: target, Compliance: compliance}
}

func (c *PinConstraint) ResetLambda() { c.lambda = 0 }

// SetTarget moves the pin's anchor point, e.g. to animate a held corner.
func (c *PinConstraint) SetTarget(target V.Vec3) { c.Target = target }

func (c *PinConstraint) Solve(particles []*Particle, dt float64) {
	if dt < V.Epsilon {
		return
	}
	p := particles[c.ID]

	d := p.Position.Sub(c.Target)
	length := d.Len()
	if length < V.Epsilon {
		return
	}
	grad := d.Mul(1 / length)

	w := p.InverseMass
	alphaHat := c.Compliance / (dt * dt)
	denom := w*grad.Dot(grad) + alphaHat
	if denom < V.EpsilonSq {
		return
	}

	deltaLambda := -(length + alphaHat*c.lambda) / denom
	c.lambda += deltaLambda

	p.Position = p.Position.Add(grad.Mul(w * deltaLambda))
}

// ContactConstraint is the unilateral constraint backing self-collision: it
// only activates while the two particles are closer than thickness. The
// Solver's self-collision pass (solveSelfCollisions) applies an equivalent
// correction inline without materializing one of these per pair, but the
// type is kept as a first-class Constraint for callers that want to wire
// persistent or externally-supplied contacts into the regular constraint
// list.
type ContactConstraint struct {
	IDA, IDB   int
	Thickness  float64
	Compliance float64
	lambda     float64
}

// NewContactConstraint builds a unilateral contact between idA and idB.
func NewContactConstraint(idA, idB int, thickness, compliance float64) *ContactConstraint {
	return &ContactConstraint{IDA: idA, IDB: idB, Thickness: thickness, Compliance: compliance}
}

func (c *ContactConstraint) ResetLambda() { c.lambda = 0 }

func (c *ContactConstraint) Solve(particles []*Particle, dt float64) {
	if dt < V.Epsilon {
		return
	}
	pA := particles[c.IDA]
	pB := particles[c.IDB]

	d := pA.Position.Sub(pB.Position)
	dist := d.Len()
	if dist >= c.Thickness || dist < V.Epsilon {
		return
	}
	n := d.Mul(1 / dist)

	wA, wB := pA.InverseMass, pB.InverseMass
	alphaHat := c.Compliance / (dt * dt)
	denom := wA*n.Dot(n) + wB*n.Dot(n) + alphaHat
	if denom < V.EpsilonSq {
		return
	}

	constraintValue := dist - c.Thickness
	deltaLambda := -(constraintValue + alphaHat*c.lambda) / denom
	c.lambda += deltaLambda

	pA.Position = pA.Position.Add(n.Mul(wA * deltaLambda))
	pB.Position = pB.Position.Sub(n.Mul(wB * deltaLambda))
}
