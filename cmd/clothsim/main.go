// Command clothsim is a headless runner exercising the full embedding API
// end to end: load config, build a cloth, add forces/colliders, step the
// solver for a fixed number of frames, and export an OBJ per frame. It
// adapts andewx-dieselsph/app/scene.go's frame-timed Run loop, stripped of
// GLFW/OpenGL since the viewer is out of this kernel's scope.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/evanrock520-ciencias/ClothSDK/config"
	"github.com/evanrock520-ciencias/ClothSDK/engine"
	"github.com/evanrock520-ciencias/ClothSDK/export"
	"github.com/evanrock520-ciencias/ClothSDK/physics"
	"github.com/evanrock520-ciencias/ClothSDK/simlog"
	V "github.com/evanrock520-ciencias/ClothSDK/vector"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file (defaults applied for missing fields)")
	outDir := flag.String("out", "frames", "directory to write per-frame OBJ files to")
	frames := flag.Int("frames", 120, "number of frames to simulate")
	rows := flag.Int("rows", 10, "grid rows")
	cols := flag.Int("cols", 10, "grid cols")
	spacing := flag.Float64("spacing", 0.1, "grid spacing in meters")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			simlog.Warn("config: %v, falling back to defaults", err)
		} else {
			cfg = loaded
		}
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		simlog.Error("mkdir %s: %v", *outDir, err)
		os.Exit(1)
	}

	solver := physics.NewSolver()
	solver.SetSubsteps(cfg.Simulation.Substeps)
	solver.SetIterations(cfg.Simulation.Iterations)

	world := engine.NewWorld()
	world.Gravity = config.Vec3(cfg.Simulation.Gravity)
	world.Wind = config.Vec3(cfg.Aerodynamics.WindVelocity)
	world.AirDensity = cfg.Aerodynamics.AirDensity
	world.Thickness = cfg.Collisions.Thickness
	world.AddPlaneCollider(V.Zero(), V.Vec3{0, 1, 0}, 0.3)

	material := &engine.Material{
		Density:              cfg.Material.Density,
		StructuralCompliance: cfg.Material.Compliance.Structural,
		ShearCompliance:      cfg.Material.Compliance.Shear,
		BendingCompliance:    cfg.Material.Compliance.Bending,
	}
	cloth := engine.NewCloth("sheet", material)

	var mesh engine.ClothMesh
	mesh.InitGrid(*rows, *cols, *spacing, cloth, solver)
	world.AddCloth(cloth)
	world.AddForce(physics.NewGravityForce(world.Gravity))
	world.AddForce(physics.NewAerodynamicForce(cloth.AeroFaces, world.Wind, world.AirDensity))

	const deltaTime = 1.0 / 60.0
	for frame := 0; frame < *frames; frame++ {
		solver.Update(world, deltaTime)

		path := filepath.Join(*outDir, fmt.Sprintf("frame_%04d.obj", frame))
		if err := export.WriteOBJ(path, cloth, solver); err != nil {
			simlog.Error("frame %d: %v", frame, err)
		}
	}

	simlog.Info("simulated %d frames of a %dx%d cloth into %s", *frames, *rows, *cols, *outDir)
}
