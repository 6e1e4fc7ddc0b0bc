package geometry

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
)

// ViewPlane is the finite rectangle the render camera projects through.
// It is defined by min/max corners in the plane's local 2D space and a
// fixed world Z position (the viewplane is Z-axis aligned).
type ViewPlane struct {
	Min core.Vec2 // Bottom-left corner in local 2D space
	Max core.Vec2 // Top-right corner in local 2D space
	Z   float64   // World Z position of the plane
}

// Width returns the horizontal extent of the viewplane
func (vp ViewPlane) Width() float64 {
	return vp.Max.X - vp.Min.X
}

// Height returns the vertical extent of the viewplane
func (vp ViewPlane) Height() float64 {
	return vp.Max.Y - vp.Min.Y
}

// Aspect returns the width/height ratio. Rendered images should use the
// same aspect ratio to avoid stretching.
func (vp ViewPlane) Aspect() float64 {
	return vp.Width() / vp.Height()
}

// ToWorld maps normalized coordinates (u, v) in [0,1]² to the
// corresponding world point on the viewplane
func (vp ViewPlane) ToWorld(u, v float64) core.Vec3 {
	return core.NewVec3(vp.Min.X+u*vp.Width(), vp.Min.Y+v*vp.Height(), vp.Z)
}

// CameraConfig contains camera configuration parameters
type CameraConfig struct {
	Position core.Vec3 // Camera position in world space
	View     ViewPlane // Viewplane to project through
}

// DefaultCameraConfig returns the default camera: positioned on the Z
// axis behind a 6x4 viewplane at z=5 (3:2 aspect ratio)
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position: core.NewVec3(0, 0, 25),
		View: ViewPlane{
			Min: core.NewVec2(-3, -2),
			Max: core.NewVec2(3, 2),
			Z:   5,
		},
	}
}

// MergeCameraConfig overlays non-zero override fields onto a base
// configuration. A zero-value field keeps the base value.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	if override.Position != (core.Vec3{}) {
		merged.Position = override.Position
	}
	if override.View != (ViewPlane{}) {
		merged.View = override.View
	}
	return merged
}

// Camera generates primary rays from its position through the viewplane
type Camera struct {
	position core.Vec3
	view     ViewPlane
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	return &Camera{
		position: config.Position,
		view:     config.View,
	}
}

// Position returns the camera position in world space
func (c *Camera) Position() core.Vec3 {
	return c.position
}

// GetRay returns the primary ray through normalized image coordinates
// (u, v), both in [0, 1]. Out-of-range coordinates are a caller error.
func (c *Camera) GetRay(u, v float64) (core.Ray, error) {
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return core.Ray{}, fmt.Errorf("%w: image coordinates (%g, %g) outside [0,1]", core.ErrInvalidParameter, u, v)
	}
	pointOnPlane := c.view.ToWorld(u, v)
	return core.NewRayTo(c.position, pointOnPlane)
}
