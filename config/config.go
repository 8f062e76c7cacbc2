// Package config loads and saves the JSON configuration format from
// spec.md §6. It is an external collaborator of the physics kernel, not
// part of it: a malformed file or a missing field never panics the core,
// it just falls back to a documented default.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	V "github.com/evanrock520-ciencias/ClothSDK/vector"
)

// Compliance holds the three per-material compliance values.
type Compliance struct {
	Structural float64 `json:"structural"`
	Shear      float64 `json:"shear"`
	Bending    float64 `json:"bending"`
}

// Simulation holds the substep/iteration/gravity block.
type Simulation struct {
	Substeps   int        `json:"substeps"`
	Iterations int        `json:"iterations"`
	Gravity    [3]float64 `json:"gravity"`
}

// MaterialSettings holds the material block.
type MaterialSettings struct {
	Density    float64    `json:"density"`
	Compliance Compliance `json:"compliance"`
}

// Aerodynamics holds the aerodynamics block.
type Aerodynamics struct {
	WindVelocity [3]float64 `json:"wind_velocity"`
	AirDensity   float64    `json:"air_density"`
}

// Collisions holds the collisions block.
type Collisions struct {
	Thickness float64 `json:"thickness"`
}

// Config is the full JSON document from spec.md §6.
type Config struct {
	Simulation   Simulation       `json:"simulation"`
	Material     MaterialSettings `json:"material"`
	Aerodynamics Aerodynamics     `json:"aerodynamics"`
	Collisions   Collisions       `json:"collisions"`
}

// Default returns a Config pre-filled with spec.md §6's documented
// defaults: substeps 10, iterations 5, structural/shear 1e-6, bending 1e-4,
// wind (5,0,0), air density 0.1, thickness 0.08. Gravity has no spec
// default (it's caller-supplied); Default leaves it zero.
func Default() Config {
	return Config{
		Simulation: Simulation{Substeps: 10, Iterations: 5},
		Material: MaterialSettings{
			Density: 0.1,
			Compliance: Compliance{
				Structural: 1e-6,
				Shear:      1e-6,
				Bending:    1e-4,
			},
		},
		Aerodynamics: Aerodynamics{
			WindVelocity: [3]float64{5, 0, 0},
			AirDensity:   0.1,
		},
		Collisions: Collisions{Thickness: 0.08},
	}
}

// Load reads and parses filepath, unmarshaling on top of Default() so every
// key absent from the file keeps its default value (spec.md §6, §7). Load
// only returns an error for an I/O or parse failure — a missing field is
// never an error.
func Load(filepath string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", filepath, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", filepath, err)
	}
	return cfg, nil
}

// Save writes cfg to filepath as indented JSON.
func Save(filepath string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(filepath, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", filepath, err)
	}
	return nil
}

// Vec3 converts a JSON [3]float64 triple into a vector.Vec3.
func Vec3(v [3]float64) V.Vec3 {
	return V.Vec3{v[0], v[1], v[2]}
}

// FromVec3 converts a vector.Vec3 into a JSON [3]float64 triple.
func FromVec3(v V.Vec3) [3]float64 {
	return [3]float64{v[0], v[1], v[2]}
}
