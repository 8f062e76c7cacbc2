package physics

import (
	V "github.com/evanrock520-ciencias/ClothSDK/vector"
)

// WorldState is everything the Solver needs to read from a simulated scene
// each frame. It exists so this package never imports the engine package
// that owns World/Cloth — engine depends on physics for its Force/Collider
// types, so the dependency can only run one way, and the Solver accepts
// the interface its caller happens to satisfy.
type WorldState interface {
	Forces() []Force
	Colliders() []Collider
	ContactThickness() float64
}

// adjacencyKey packs an ordered particle pair into a single map key, per
// spec.md §4.6's getAdjacencyKey: (max<<32)|min.
func adjacencyKey(idA, idB int) uint64 {
	a, b := uint64(idA), uint64(idB)
	if a > b {
		a, b = b, a
	}
	return b<<32 | a
}

// Solver owns every particle and constraint in the simulation and drives
// the substep pipeline described in spec.md §4.6. It never mutates a World
// beyond reading it; all mutable simulation state lives here.
type Solver struct {
	particles   []*Particle
	constraints []Constraint
	adjacency   map[uint64]struct{}

	spatialHash     *SpatialHash
	neighborsBuffer []int

	substeps            int
	iterations          int
	collisionCompliance float64
}

// NewSolver builds a solver with the teacher corpus's conservative defaults:
// 10 substeps, 5 iterations, and a collision compliance small enough to
// behave like a near-rigid contact.
func NewSolver() *Solver {
	return &Solver{
		adjacency:           make(map[uint64]struct{}),
		spatialHash:         NewSpatialHash(DefaultTableSize, 0.08),
		substeps:            10,
		iterations:          5,
		collisionCompliance: 1e-9,
	}
}

// AddParticle appends a new particle at pos and returns its id.
func (s *Solver) AddParticle(pos V.Vec3) int {
	s.particles = append(s.particles, NewParticle(pos))
	return len(s.particles) - 1
}

// Clear drops every particle, constraint and adjacency entry. Any Cloth
// holding ids into this solver is invalidated.
func (s *Solver) Clear() {
	s.particles = nil
	s.constraints = nil
	s.adjacency = make(map[uint64]struct{})
}

// Particles returns the solver's particle slice for rendering or export.
// Callers must not resize it; mutating a particle's fields in place is
// fine (e.g. a host-side pin drag) but must happen between frames.
func (s *Solver) Particles() []*Particle { return s.particles }

// ParticleCount returns the number of particles currently owned.
func (s *Solver) ParticleCount() int { return len(s.particles) }

// Constraints returns the solver's constraint list in insertion order, for
// introspection (e.g. counting bending constraints in a test) or export.
// Callers must not mutate the returned slice.
func (s *Solver) Constraints() []Constraint { return s.constraints }

// SetParticleInverseMass overrides particle id's inverse mass directly.
func (s *Solver) SetParticleInverseMass(id int, invMass float64) {
	s.particles[id].SetInverseMass(invMass)
}

// AddMassToParticle accumulates mass kg into particle id's running total.
func (s *Solver) AddMassToParticle(id int, mass float64) {
	s.particles[id].AddMass(mass)
}

// SetSubsteps configures how many substeps each Update divides deltaTime
// into.
func (s *Solver) SetSubsteps(count int) { s.substeps = count }

// SetIterations configures how many Gauss-Seidel passes each substep runs
// over the constraint list.
func (s *Solver) SetIterations(count int) { s.iterations = count }

// SetCollisionCompliance sets the compliance used to regularize the
// self-collision correction.
func (s *Solver) SetCollisionCompliance(c float64) { s.collisionCompliance = c }

// Substeps returns the configured substep count.
func (s *Solver) Substeps() int { return s.substeps }

// Iterations returns the configured iteration count.
func (s *Solver) Iterations() int { return s.iterations }

// CollisionCompliance returns the configured self-collision compliance.
func (s *Solver) CollisionCompliance() float64 { return s.collisionCompliance }

// AddDistanceConstraint wires idA and idB with a distance constraint whose
// rest length is measured from their current positions, and marks the pair
// adjacent (excluded from self-collision).
func (s *Solver) AddDistanceConstraint(idA, idB int, compliance float64) {
	restLength := V.Distance(s.particles[idA].Position, s.particles[idB].Position)
	s.constraints = append(s.constraints, NewDistanceConstraint(idA, idB, restLength, compliance))
	s.adjacency[adjacencyKey(idA, idB)] = struct{}{}
}

// AddBendingConstraint wires a bending constraint around hinge edge (A,B)
// with opposite vertices C and D. The hinge edge itself is assumed to
// already carry a distance constraint (and therefore already be adjacent);
// this marks the four cross pairs involving C and D adjacent too, matching
// the original engine's Solver::addBendingConstraint.
func (s *Solver) AddBendingConstraint(idA, idB, idC, idD int, restAngle, compliance float64) {
	s.constraints = append(s.constraints, NewBendingConstraint(idA, idB, idC, idD, restAngle, compliance))
	s.adjacency[adjacencyKey(idA, idC)] = struct{}{}
	s.adjacency[adjacencyKey(idB, idC)] = struct{}{}
	s.adjacency[adjacencyKey(idA, idD)] = struct{}{}
	s.adjacency[adjacencyKey(idB, idD)] = struct{}{}
}

// AddPin anchors particle id to target with the given compliance.
func (s *Solver) AddPin(id int, target V.Vec3, compliance float64) {
	s.constraints = append(s.constraints, NewPinConstraint(id, target, compliance))
}

// Update advances the simulation by deltaTime, split into Substeps() equal
// substeps, per spec.md §4.6. A solver with no particles is a no-op.
func (s *Solver) Update(world WorldState, deltaTime float64) {
	if len(s.particles) == 0 {
		return
	}

	s.spatialHash.SetCellSize(world.ContactThickness())
	s.spatialHash.Build(s.particles)

	substeps := s.substeps
	if substeps < 1 {
		substeps = 1
	}
	dt := deltaTime / float64(substeps)

	for i := 0; i < substeps; i++ {
		s.step(world, dt)
	}
}

func (s *Solver) step(world WorldState, dt float64) {
	s.applyForces(world, dt)
	s.predict(dt)
	s.solveConstraints(dt)

	for _, collider := range world.Colliders() {
		collider.Resolve(s.particles, dt, world.ContactThickness())
	}

	s.solveSelfCollisions(dt, world.ContactThickness())
}

func (s *Solver) applyForces(world WorldState, dt float64) {
	parallelFor(len(s.particles), func(i int) {
		s.particles[i].Acceleration = V.Zero()
	})
	for _, force := range world.Forces() {
		force.Apply(s.particles, dt)
	}
}

func (s *Solver) predict(dt float64) {
	parallelFor(len(s.particles), func(i int) {
		s.particles[i].Integrate(dt)
	})
}

// solveConstraints resets every constraint's multiplier, then runs
// Iterations() Gauss-Seidel passes over the constraint list in insertion
// order. This stays serial per spec.md §5: the converged state depends on
// the ordering, not just the final positions.
func (s *Solver) solveConstraints(dt float64) {
	for _, c := range s.constraints {
		c.ResetLambda()
	}
	for i := 0; i < s.iterations; i++ {
		for _, c := range s.constraints {
			c.Solve(s.particles, dt)
		}
	}
}

// solveSelfCollisions runs one inline pass of unilateral contact
// corrections using the spatial hash built once for the whole frame, per
// spec.md §4.6. Pairs already linked by a distance or bending constraint
// are skipped via the adjacency set.
func (s *Solver) solveSelfCollisions(dt, thickness float64) {
	alphaHat := s.collisionCompliance / (dt * dt)
	thicknessSq := thickness * thickness

	for i := 0; i < len(s.particles); i++ {
		pA := s.particles[i]
		wA := pA.InverseMass
		if wA == 0 {
			continue
		}

		s.spatialHash.Query(s.particles, pA.Position, thickness, &s.neighborsBuffer)

		for _, j := range s.neighborsBuffer {
			if j <= i {
				continue
			}
			if _, linked := s.adjacency[adjacencyKey(i, j)]; linked {
				continue
			}

			pB := s.particles[j]
			wB := pB.InverseMass
			wSum := wA + wB
			if wSum+alphaHat < V.EpsilonDenom {
				continue
			}

			d := pA.Position.Sub(pB.Position)
			distSq := d.Dot(d)
			if distSq <= 0 || distSq >= thicknessSq {
				continue
			}

			dist := V.Length(d)
			normal := d.Mul(1 / dist)
			constraintValue := dist - thickness
			deltaLambda := -constraintValue / (wSum + alphaHat)

			pA.Position = pA.Position.Add(normal.Mul(wA * deltaLambda))
			pB.Position = pB.Position.Sub(normal.Mul(wB * deltaLambda))
		}
	}
}
