package engine

import (
	"github.com/evanrock520-ciencias/ClothSDK/physics"
)

// Topology records which builder produced a Cloth, for introspection and
// export; it has no effect on simulation.
type Topology int

const (
	TopologyMesh Topology = iota
	TopologyGrid
)

// Triangle is a topological face of a Cloth, referencing Solver-owned
// particle ids.
type Triangle struct {
	A, B, C int
}

// Edge is a visual (rendering) edge between two Solver-owned particle ids.
// ClothMesh.InitGrid records both structural and shear edges as visual edges.
type Edge struct {
	A, B int
}

// Cloth is the topology record for one piece of fabric: its name, material,
// the ordered global particle ids the Solver owns on its behalf, its
// triangles, visual edges and aero faces. A Cloth never owns particles —
// clearing the Solver it was built against invalidates every id here.
type Cloth struct {
	Name     string
	Material *Material

	ParticleIDs []int
	Triangles   []Triangle
	VisualEdges []Edge
	AeroFaces   []physics.AeroFace

	GridRows, GridCols int
	Topology           Topology
}

// NewCloth builds an empty cloth named name backed by material.
func NewCloth(name string, material *Material) *Cloth {
	return &Cloth{Name: name, Material: material, Topology: TopologyMesh}
}

// ParticleID returns the global particle id at grid row r, column c. Only
// meaningful for a cloth built with ClothMesh.InitGrid.
func (c *Cloth) ParticleID(r, col int) int {
	return c.ParticleIDs[r*c.GridCols+col]
}

// AddParticleID records a Solver-owned particle id as belonging to this
// cloth.
func (c *Cloth) AddParticleID(id int) {
	c.ParticleIDs = append(c.ParticleIDs, id)
}

// AddTriangle records a topological triangle.
func (c *Cloth) AddTriangle(t Triangle) {
	c.Triangles = append(c.Triangles, t)
}

// AddVisualEdge records a rendering edge between two global particle ids.
func (c *Cloth) AddVisualEdge(idA, idB int) {
	c.VisualEdges = append(c.VisualEdges, Edge{idA, idB})
}

// AddAeroFace records a face participating in aerodynamic force evaluation.
func (c *Cloth) AddAeroFace(f physics.AeroFace) {
	c.AeroFaces = append(c.AeroFaces, f)
}

// Clear drops every topology list so a builder can safely re-run against
// this cloth. It does not touch the Solver — the caller is responsible for
// clearing the solver too if old particle ids should not leak back in via a
// double AddMassToParticle call (spec.md §9's mass/aero open question).
func (c *Cloth) Clear() {
	c.ParticleIDs = nil
	c.Triangles = nil
	c.VisualEdges = nil
	c.AeroFaces = nil
}
