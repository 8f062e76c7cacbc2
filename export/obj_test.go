package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/evanrock520-ciencias/ClothSDK/engine"
	"github.com/evanrock520-ciencias/ClothSDK/physics"
	V "github.com/evanrock520-ciencias/ClothSDK/vector"
)

func TestWriteOBJProducesOneVertexLinePerParticleAndOneFacePerTriangle(t *testing.T) {
	solver := physics.NewSolver()
	cloth := engine.NewCloth("quad", engine.DefaultMaterial())

	var mesh engine.ClothMesh
	mesh.InitGrid(2, 2, 1.0, cloth, solver)

	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := WriteOBJ(path, cloth, solver); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written obj: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	vertLines, faceLines := 0, 0
	for _, l := range lines {
		switch {
		case strings.HasPrefix(l, "v "):
			vertLines++
		case strings.HasPrefix(l, "f "):
			faceLines++
		}
	}

	if vertLines != len(cloth.ParticleIDs) {
		t.Fatalf("vertex lines = %d, want %d", vertLines, len(cloth.ParticleIDs))
	}
	if faceLines != len(cloth.Triangles) {
		t.Fatalf("face lines = %d, want %d", faceLines, len(cloth.Triangles))
	}
}

func TestWriteOBJUsesOneBasedLocalIndices(t *testing.T) {
	solver := physics.NewSolver()
	a := solver.AddParticle(V.Vec3{0, 0, 0})
	b := solver.AddParticle(V.Vec3{1, 0, 0})
	c := solver.AddParticle(V.Vec3{0, 1, 0})

	cloth := engine.NewCloth("tri", engine.DefaultMaterial())
	cloth.AddParticleID(a)
	cloth.AddParticleID(b)
	cloth.AddParticleID(c)
	cloth.AddTriangle(engine.Triangle{A: a, B: b, C: c})

	path := filepath.Join(t.TempDir(), "tri.obj")
	if err := WriteOBJ(path, cloth, solver); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written obj: %v", err)
	}
	if !strings.Contains(string(data), "f 1 2 3\n") {
		t.Fatalf("expected face line \"f 1 2 3\", got:\n%s", data)
	}
}

func TestWriteOBJCreateFailureReturnsError(t *testing.T) {
	solver := physics.NewSolver()
	cloth := engine.NewCloth("empty", engine.DefaultMaterial())

	err := WriteOBJ(filepath.Join(t.TempDir(), "missing-dir", "out.obj"), cloth, solver)
	if err == nil {
		t.Fatalf("expected an error writing to a nonexistent directory")
	}
}
