// Package material holds the surface properties evaluated by the local
// shading model: a diffuse color for the Lambertian term and a specular
// color for the Phong highlight.
package material

import "github.com/df07/go-raycaster/pkg/core"

// Material contains the colors used by the shading engine
type Material struct {
	Diffuse  core.Vec3 // Lambertian reflectance
	Specular core.Vec3 // Phong highlight color
}

// New creates a material with the given diffuse color and the default
// light gray specular color
func New(diffuse core.Vec3) Material {
	return Material{
		Diffuse:  diffuse,
		Specular: LightGray,
	}
}

// NewWithSpecular creates a material with explicit diffuse and specular colors
func NewWithSpecular(diffuse, specular core.Vec3) Material {
	return Material{
		Diffuse:  diffuse,
		Specular: specular,
	}
}
