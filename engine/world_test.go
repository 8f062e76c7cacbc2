package engine

import (
	"testing"

	V "github.com/evanrock520-ciencias/ClothSDK/vector"
)

func TestNewWorldDefaults(t *testing.T) {
	w := NewWorld()
	if w.Gravity != (V.Vec3{0, -9.81, 0}) {
		t.Fatalf("default gravity = %v", w.Gravity)
	}
	if w.Wind != (V.Vec3{5, 0, 0}) {
		t.Fatalf("default wind = %v", w.Wind)
	}
	if w.AirDensity != 0.1 {
		t.Fatalf("default air density = %v, want 0.1", w.AirDensity)
	}
	if w.Thickness != 0.08 {
		t.Fatalf("default thickness = %v, want 0.08", w.Thickness)
	}
}

func TestWorldContactThicknessSatisfiesWorldState(t *testing.T) {
	w := NewWorld()
	w.Thickness = 0.2
	if w.ContactThickness() != 0.2 {
		t.Fatalf("ContactThickness() = %v, want 0.2", w.ContactThickness())
	}
}

func TestWorldAddPlaneAndSphereColliders(t *testing.T) {
	w := NewWorld()
	w.AddPlaneCollider(V.Zero(), V.Vec3{0, 1, 0}, 0.1)
	w.AddSphereCollider(V.Vec3{1, 1, 1}, 0.5, 0.2)

	if got := len(w.Colliders()); got != 2 {
		t.Fatalf("Colliders() length = %d, want 2", got)
	}
}

func TestWorldClearDropsEverything(t *testing.T) {
	w := NewWorld()
	w.AddCloth(NewCloth("sheet", DefaultMaterial()))
	w.AddPlaneCollider(V.Zero(), V.Vec3{0, 1, 0}, 0.1)

	w.Clear()

	if len(w.Cloths) != 0 {
		t.Fatalf("Clear left cloths behind")
	}
	if len(w.Colliders()) != 0 {
		t.Fatalf("Clear left colliders behind")
	}
}
