// Package lights defines the light sources evaluated by the shading
// engine: point lights and aimed spotlights.
package lights

import "github.com/df07/go-raycaster/pkg/core"

// DefaultPickRadius is the sphere radius interactive callers use to
// pick a light with the mouse. It plays no part in the rendering math.
const DefaultPickRadius = 1.5

// PointLight is an omnidirectional light with inverse-square falloff
type PointLight struct {
	Position   core.Vec3
	Intensity  float64 // Scalar intensity, non-negative
	PickRadius float64 // Selection radius for interactive callers
}

// NewPointLight creates a point light at the given position. A
// non-positive intensity is allowed and contributes zero light.
func NewPointLight(position core.Vec3, intensity float64) PointLight {
	return PointLight{
		Position:   position,
		Intensity:  intensity,
		PickRadius: DefaultPickRadius,
	}
}
