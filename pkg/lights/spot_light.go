package lights

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Operating range for the spotlight cone half-angle, in degrees.
// Constructors clamp to this range.
const (
	MinConeAngle = 10.0
	MaxConeAngle = 50.0
)

// DefaultConeHeight is the length of the spotlight's illumination cone
const DefaultConeHeight = 50.0

// SpotLight is a point light restricted to a cone aimed at a point
type SpotLight struct {
	Position   core.Vec3 // Light position in world space
	AimPoint   core.Vec3 // Point the cone is aimed at
	Intensity  float64   // Scalar intensity, non-negative
	ConeAngle  float64   // Cone half-angle in degrees, within [MinConeAngle, MaxConeAngle]
	ConeHeight float64   // Length of the cone from position toward the aim point
}

// NewSpotLight creates a spotlight aimed at aimPoint. The cone angle is
// clamped to the [MinConeAngle, MaxConeAngle] operating range.
func NewSpotLight(position, aimPoint core.Vec3, intensity, coneAngleDegrees float64) SpotLight {
	return SpotLight{
		Position:   position,
		AimPoint:   aimPoint,
		Intensity:  intensity,
		ConeAngle:  max(MinConeAngle, min(MaxConeAngle, coneAngleDegrees)),
		ConeHeight: DefaultConeHeight,
	}
}

// Direction returns the un-normalized direction from the aim point back
// to the light position
func (sl SpotLight) Direction() core.Vec3 {
	return sl.Position.Subtract(sl.AimPoint)
}

// ConeRadius returns the radius of the cone's base, derived from the
// cone angle and height
func (sl SpotLight) ConeRadius() float64 {
	return math.Tan(sl.ConeAngle*math.Pi/180.0) * sl.ConeHeight
}
