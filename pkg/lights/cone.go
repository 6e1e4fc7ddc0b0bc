package lights

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// ConeTest decides whether a shaded point lies inside a spotlight's
// illumination cone. Implementations are interchangeable so the
// membership test can be swapped without touching the shading
// accumulation logic.
type ConeTest interface {
	Contains(light SpotLight, eye, point core.Vec3) bool
}

// SphereProxyConeTest approximates cone membership by intersecting the
// eye ray through the shaded point with a sphere centered at the
// spotlight's aim point, radius ConeHeight/2. This is not a true cone
// test and it is view-dependent, but it is the default membership test
// for this renderer.
type SphereProxyConeTest struct{}

// Contains tests the eye ray through point against the proxy sphere
func (SphereProxyConeTest) Contains(light SpotLight, eye, point core.Vec3) bool {
	ray, err := core.NewRayTo(eye, point)
	if err != nil {
		return false
	}

	radius := light.ConeHeight / 2
	oc := ray.Origin.Subtract(light.AimPoint)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := halfB*halfB - c
	if discriminant < 0 {
		return false
	}

	// Require an intersection in front of the eye
	return -halfB+math.Sqrt(discriminant) > 0
}

// AngularConeTest is the true cone membership test: the point is inside
// when the angle between the cone axis and the direction to the point
// does not exceed the cone half-angle. Swapping it in for
// SphereProxyConeTest changes which points a spotlight reaches.
type AngularConeTest struct{}

// Contains tests the angle from the cone axis to the shaded point
func (AngularConeTest) Contains(light SpotLight, eye, point core.Vec3) bool {
	axis := light.AimPoint.Subtract(light.Position)
	toPoint := point.Subtract(light.Position)
	if axis.LengthSquared() == 0 || toPoint.LengthSquared() == 0 {
		return false
	}

	cosAngle := axis.Normalize().Dot(toPoint.Normalize())
	return cosAngle >= math.Cos(light.ConeAngle*math.Pi/180.0)
}
