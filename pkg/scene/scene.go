// Package scene bundles the camera, scene objects, and lights that a
// render pass consumes. Scenes are built immediately before rendering
// and are read-only while a pass runs.
package scene

import (
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
)

// Scene contains all the elements needed for rendering. Objects and
// lights are iterated in insertion order.
type Scene struct {
	Camera     *geometry.Camera
	Objects    []geometry.Object
	Lights     []lights.PointLight
	SpotLights []lights.SpotLight
}

// New creates an empty scene with the given camera
func New(camera *geometry.Camera) *Scene {
	return &Scene{
		Camera:     camera,
		Objects:    make([]geometry.Object, 0),
		Lights:     make([]lights.PointLight, 0),
		SpotLights: make([]lights.SpotLight, 0),
	}
}

// AddObject appends an object to the scene
func (s *Scene) AddObject(obj geometry.Object) {
	s.Objects = append(s.Objects, obj)
}

// ClearObjects removes all objects from the scene
func (s *Scene) ClearObjects() {
	s.Objects = s.Objects[:0]
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(light lights.PointLight) {
	s.Lights = append(s.Lights, light)
}

// ClearLights removes all point lights from the scene
func (s *Scene) ClearLights() {
	s.Lights = s.Lights[:0]
}

// AddSpotLight appends a spotlight to the scene
func (s *Scene) AddSpotLight(light lights.SpotLight) {
	s.SpotLights = append(s.SpotLights, light)
}

// ClearSpotLights removes all spotlights from the scene
func (s *Scene) ClearSpotLights() {
	s.SpotLights = s.SpotLights[:0]
}
