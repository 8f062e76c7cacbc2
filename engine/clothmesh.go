package engine

import (
	"github.com/evanrock520-ciencias/ClothSDK/physics"
	V "github.com/evanrock520-ciencias/ClothSDK/vector"
)

// ClothMesh synthesizes a Solver's particles and constraints from either a
// regular grid or an arbitrary triangle mesh, per spec.md §4.7. It holds no
// state of its own; every call is self-contained given the Cloth and
// Solver it's handed.
type ClothMesh struct{}

type edgeKey struct {
	v1, v2 int
}

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// InitGrid lays particles out on a rows x cols regular grid spaced
// spacing apart in the XY plane, wires structural, shear and bending
// constraints between them, and runs the mass/aero pass. rows or cols of 0
// produce an empty cloth.
func (ClothMesh) InitGrid(rows, cols int, spacing float64, cloth *Cloth, solver *physics.Solver) {
	cloth.Clear()
	cloth.GridRows, cloth.GridCols = rows, cols
	cloth.Topology = TopologyGrid

	if rows <= 0 || cols <= 0 {
		return
	}

	mat := cloth.Material
	ids := make([]int, rows*cols)
	localID := func(r, c int) int { return ids[r*cols+c] }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := V.Vec3{float64(c) * spacing, float64(r) * spacing, 0}
			id := solver.AddParticle(pos)
			ids[r*cols+c] = id
			cloth.AddParticleID(id)
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c < cols-1 {
				a, b := localID(r, c), localID(r, c+1)
				solver.AddDistanceConstraint(a, b, mat.StructuralCompliance)
				cloth.AddVisualEdge(a, b)
			}
			if r < rows-1 {
				a, b := localID(r, c), localID(r+1, c)
				solver.AddDistanceConstraint(a, b, mat.StructuralCompliance)
				cloth.AddVisualEdge(a, b)
			}
			if r < rows-1 && c < cols-1 {
				a := localID(r, c)
				b := localID(r, c+1)
				d := localID(r+1, c)
				e := localID(r+1, c+1)

				solver.AddDistanceConstraint(a, e, mat.ShearCompliance)
				solver.AddDistanceConstraint(b, d, mat.ShearCompliance)
				cloth.AddVisualEdge(a, e)
				cloth.AddVisualEdge(b, d)

				solver.AddBendingConstraint(a, e, b, d, 0, mat.BendingCompliance)

				cloth.AddTriangle(Triangle{a, b, e})
				cloth.AddTriangle(Triangle{a, e, d})
			}
		}
	}

	computePhysicalAttributes(cloth, solver)
}

// BuildFromMesh builds a cloth from an arbitrary triangle soup: positions
// is the vertex buffer, indices is a flat list of triangle vertex indices
// (three per triangle) into positions. Every edge gets a structural
// distance constraint; every edge shared by exactly two triangles gets a
// bending constraint whose rest angle uses the identical sign convention as
// BendingConstraint.Solve.
func (ClothMesh) BuildFromMesh(positions []V.Vec3, indices []int, cloth *Cloth, solver *physics.Solver) {
	cloth.Clear()
	cloth.Topology = TopologyMesh

	if len(positions) == 0 || len(indices) == 0 {
		return
	}

	mat := cloth.Material
	localToGlobal := make([]int, len(positions))
	for i, pos := range positions {
		id := solver.AddParticle(pos)
		cloth.AddParticleID(id)
		localToGlobal[i] = id
	}

	edgeTriangles := make(map[edgeKey][]int)
	seenEdges := make(map[edgeKey]bool)

	for i := 0; i+2 < len(indices); i += 3 {
		vA := localToGlobal[indices[i]]
		vB := localToGlobal[indices[i+1]]
		vC := localToGlobal[indices[i+2]]

		cloth.AddTriangle(Triangle{vA, vB, vC})
		triIdx := len(cloth.Triangles) - 1

		edges := [3]edgeKey{newEdgeKey(vA, vB), newEdgeKey(vB, vC), newEdgeKey(vC, vA)}
		for _, e := range edges {
			if !seenEdges[e] {
				seenEdges[e] = true
				solver.AddDistanceConstraint(e.v1, e.v2, mat.StructuralCompliance)
				cloth.AddVisualEdge(e.v1, e.v2)
			}
			edgeTriangles[e] = append(edgeTriangles[e], triIdx)
		}
	}

	for edge, tris := range edgeTriangles {
		if len(tris) != 2 {
			continue // boundary edge: no bending constraint
		}
		t1 := cloth.Triangles[tris[0]]
		t2 := cloth.Triangles[tris[1]]
		v1, v2 := edge.v1, edge.v2
		v3 := oppositeVertex(t1, v1, v2)
		v4 := oppositeVertex(t2, v1, v2)

		restAngle := restDihedralAngle(solver, v1, v2, v3, v4)
		solver.AddBendingConstraint(v1, v2, v3, v4, restAngle, mat.BendingCompliance)
	}

	computePhysicalAttributes(cloth, solver)
}

func oppositeVertex(t Triangle, v1, v2 int) int {
	if t.A != v1 && t.A != v2 {
		return t.A
	}
	if t.B != v1 && t.B != v2 {
		return t.B
	}
	return t.C
}

// restDihedralAngle computes the rest angle for a bending constraint using
// physics.DihedralAngle — the exact function BendingConstraint.Solve uses —
// so the sign convention can never drift between build time and solve time
// (spec.md §4.7's "most common correctness bug in this component").
func restDihedralAngle(solver *physics.Solver, id1, id2, id3, id4 int) float64 {
	particles := solver.Particles()
	angle, _, _, _, ok := physics.DihedralAngle(
		particles[id1].Position,
		particles[id2].Position,
		particles[id3].Position,
		particles[id4].Position,
	)
	if !ok {
		return 0
	}
	return angle
}

// computePhysicalAttributes distributes each triangle's mass across its
// three vertices by area and appends an AeroFace per triangle, per spec.md
// §4.7's mass/aero pass. Calling a builder twice against the same cloth
// without clearing the solver first double-counts mass (spec.md §9).
func computePhysicalAttributes(cloth *Cloth, solver *physics.Solver) {
	density := cloth.Material.Density
	particles := solver.Particles()

	for _, tri := range cloth.Triangles {
		pA := particles[tri.A].Position
		pB := particles[tri.B].Position
		pC := particles[tri.C].Position

		area := 0.5 * pB.Sub(pA).Cross(pC.Sub(pA)).Len()
		massPerVertex := area * density / 3.0

		solver.AddMassToParticle(tri.A, massPerVertex)
		solver.AddMassToParticle(tri.B, massPerVertex)
		solver.AddMassToParticle(tri.C, massPerVertex)

		cloth.AddAeroFace(physics.AeroFace{A: tri.A, B: tri.B, C: tri.C})
	}
}
