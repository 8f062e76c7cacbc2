package export

import (
	"path/filepath"
	"testing"

	V "github.com/evanrock520-ciencias/ClothSDK/vector"
)

func TestFrameArchiveWriteFrameRejectsMismatchedCount(t *testing.T) {
	positions := []V.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	indices := []int{0, 1, 2}

	a := NewFrameArchiveWriter()
	path := filepath.Join(t.TempDir(), "frames.clsa")
	if err := a.Open(path, positions, indices); err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer a.Close()

	if err := a.WriteFrame([]V.Vec3{{0, 0, 0}}, 0.0); err == nil {
		t.Fatalf("expected an error writing a frame with the wrong particle count")
	}
}

func TestFrameArchiveWriteFrameBeforeOpenFails(t *testing.T) {
	a := NewFrameArchiveWriter()
	if err := a.WriteFrame([]V.Vec3{{0, 0, 0}}, 0.0); err == nil {
		t.Fatalf("expected an error calling WriteFrame before Open")
	}
}

func TestFrameArchiveRoundTripDoesNotError(t *testing.T) {
	positions := []V.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	indices := []int{0, 1, 2}

	a := NewFrameArchiveWriter()
	path := filepath.Join(t.TempDir(), "frames.clsa")
	if err := a.Open(path, positions, indices); err != nil {
		t.Fatalf("Open: %v", err)
	}

	for i := 0; i < 3; i++ {
		moved := make([]V.Vec3, len(positions))
		for j, p := range positions {
			moved[j] = p.Add(V.Vec3{0, -0.01 * float64(i), 0})
		}
		if err := a.WriteFrame(moved, float64(i)/60.0); err != nil {
			t.Fatalf("WriteFrame %d: %v", i, err)
		}
	}

	if err := a.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestFrameArchiveCloseIsIdempotentWithoutOpen(t *testing.T) {
	a := NewFrameArchiveWriter()
	if err := a.Close(); err != nil {
		t.Fatalf("Close on an unopened writer should be a no-op, got %v", err)
	}
}
