package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
)

// NewReferenceScene creates the canonical test scene: a dark blue
// ground plane, a purple unit sphere, one point light up and to the
// right, and one spotlight aimed at the ground near the sphere.
func NewReferenceScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := New(geometry.NewCamera(cameraConfig))

	s.AddObject(geometry.NewPlane(
		core.NewVec3(0, -5, 0), core.NewVec3(0, 1, 0),
		600, 400,
		material.New(material.DarkBlue),
	))
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 1, -2), 1, material.New(material.Purple)))

	s.AddLight(lights.NewPointLight(core.NewVec3(100, 150, 150), 0.2))

	s.AddSpotLight(lights.NewSpotLight(
		core.NewVec3(-20, 30, 45), // position
		core.NewVec3(1, -5, 0),    // aim point on the ground plane
		2,                         // intensity
		15,                        // cone half-angle in degrees
	))

	return s
}

// NewShowcaseScene creates a fuller scene: the reference scene plus a
// back wall and two more spheres, lit from both sides.
func NewShowcaseScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewReferenceScene(cameraOverrides...)

	// Back wall behind the spheres. The rectangle spans the plane's
	// local X/Z axes, so the wall extends along X and Z at a fixed
	// height above the ground.
	s.AddObject(geometry.NewPlane(
		core.NewVec3(0, -4, -40), core.NewVec3(0, 0, 1),
		600, 400,
		material.New(material.DarkOliveGreen),
	))

	s.AddObject(geometry.NewSphere(core.NewVec3(-1, 0, 1), 1, material.New(material.Blue)))
	s.AddObject(geometry.NewSphere(core.NewVec3(0.5, 0, 0), 1, material.New(material.DarkGreen)))

	s.AddLight(lights.NewPointLight(core.NewVec3(-20, 30, 45), 0.2))
	s.AddLight(lights.NewPointLight(core.NewVec3(-5, -2, 20), 0.2))

	return s
}
