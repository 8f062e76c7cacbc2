package engine

import (
	"github.com/evanrock520-ciencias/ClothSDK/physics"
	V "github.com/evanrock520-ciencias/ClothSDK/vector"
)

// World is the passive aggregate of scene configuration and the lists of
// cloths, forces and colliders a Solver steps against. It holds shared
// references — several cloths may point at the same Material, and adding
// the same Force or Collider to two worlds is harmless since neither type
// holds solver-owned state.
type World struct {
	Gravity    V.Vec3
	Wind       V.Vec3
	AirDensity float64
	Thickness  float64

	Cloths []*Cloth

	forces    []physics.Force
	colliders []physics.Collider
}

// NewWorld builds a world with the config package's default wind, air
// density and thickness, and Earth gravity (0, -9.81, 0).
func NewWorld() *World {
	return &World{
		Gravity:    V.Vec3{0, -9.81, 0},
		Wind:       V.Vec3{5, 0, 0},
		AirDensity: 0.1,
		Thickness:  0.08,
	}
}

// AddCloth registers cloth with the world.
func (w *World) AddCloth(cloth *Cloth) {
	w.Cloths = append(w.Cloths, cloth)
}

// AddForce registers a force, applied in insertion order every substep.
func (w *World) AddForce(f physics.Force) {
	w.forces = append(w.forces, f)
}

// AddCollider registers a collider, resolved in insertion order every
// substep.
func (w *World) AddCollider(c physics.Collider) {
	w.colliders = append(w.colliders, c)
}

// AddPlaneCollider is a convenience constructor appending a PlaneCollider.
func (w *World) AddPlaneCollider(origin, normal V.Vec3, friction float64) {
	w.AddCollider(physics.NewPlaneCollider(origin, normal, friction))
}

// AddSphereCollider is a convenience constructor appending a
// SphereCollider.
func (w *World) AddSphereCollider(center V.Vec3, radius, friction float64) {
	w.AddCollider(physics.NewSphereCollider(center, radius, friction))
}

// Clear drops every cloth, force and collider. It does not touch any
// Solver; the cloths' particle ids become meaningless once their owning
// solver is separately cleared.
func (w *World) Clear() {
	w.Cloths = nil
	w.forces = nil
	w.colliders = nil
}

// Forces satisfies physics.WorldState.
func (w *World) Forces() []physics.Force { return w.forces }

// Colliders satisfies physics.WorldState.
func (w *World) Colliders() []physics.Collider { return w.colliders }

// ContactThickness satisfies physics.WorldState.
func (w *World) ContactThickness() float64 { return w.Thickness }
