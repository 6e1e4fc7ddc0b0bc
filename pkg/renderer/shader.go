package renderer

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
)

// AmbientFactor is the flat ambient fraction of the diffuse color
const AmbientFactor = 0.05

// ShaderConfig contains the shading knobs passed in from outside
type ShaderConfig struct {
	Power          float64 // Phong specular exponent
	IntensityScale float64 // Global multiplier applied to every light's intensity
	Ambient        bool    // Add the flat ambient term once per shaded point
}

// DefaultShaderConfig returns the defaults: Phong exponent 100, no
// global intensity scaling, and no ambient term.
func DefaultShaderConfig() ShaderConfig {
	return ShaderConfig{
		Power:          100,
		IntensityScale: 1,
		Ambient:        false,
	}
}

// Shader evaluates the local illumination model (Lambertian diffuse +
// Phong specular for point lights, Lambertian-only for spotlights) at
// intersection points. Shadow visibility goes through the intersector.
type Shader struct {
	intersector *Intersector
	pointLights []lights.PointLight
	spotLights  []lights.SpotLight
	eye         core.Vec3 // Camera position, for the view vector and the cone proxy ray
	coneTest    lights.ConeTest
	config      ShaderConfig
}

// NewShader creates a shader for one render pass. The default spotlight
// cone test is the sphere proxy; use SetConeTest to substitute the true
// angular test.
func NewShader(intersector *Intersector, pointLights []lights.PointLight, spotLights []lights.SpotLight, eye core.Vec3, config ShaderConfig) *Shader {
	return &Shader{
		intersector: intersector,
		pointLights: pointLights,
		spotLights:  spotLights,
		eye:         eye,
		coneTest:    lights.SphereProxyConeTest{},
		config:      config,
	}
}

// SetConeTest replaces the spotlight cone membership strategy
func (sh *Shader) SetConeTest(test lights.ConeTest) {
	sh.coneTest = test
}

// Ambient returns the flat, light-independent ambient term for a
// diffuse color
func Ambient(diffuse core.Vec3) core.Vec3 {
	return diffuse.Multiply(AmbientFactor)
}

// Shade accumulates the contribution of every light at the hit point.
// Point lights add Lambert + Phong, gated by a binary shadow test when
// the hit object receives shadows. Spotlights add Lambert only, gated
// by cone membership and never shadow-tested.
func (sh *Shader) Shade(hit *geometry.HitRecord) core.Vec3 {
	var shaded core.Vec3

	if sh.config.Ambient {
		shaded = shaded.Add(Ambient(hit.Material.Diffuse))
	}

	for _, light := range sh.pointLights {
		if light.Intensity <= 0 {
			continue
		}
		if hit.Object.ReceivesShadows() && sh.intersector.Occluded(hit.Point, light.Position) {
			continue
		}
		shaded = shaded.Add(sh.phong(hit, light.Position, light.Intensity))
	}

	for _, spot := range sh.spotLights {
		if spot.Intensity <= 0 {
			continue
		}
		if !sh.coneTest.Contains(spot, sh.eye, hit.Point) {
			continue
		}
		shaded = shaded.Add(sh.lambert(hit, spot.Position, spot.Intensity))
	}

	return shaded
}

// lambert returns the diffuse term: diffuse * (intensity / d²) * max(0, n·l)
func (sh *Shader) lambert(hit *geometry.HitRecord, lightPos core.Vec3, intensity float64) core.Vec3 {
	toLight := lightPos.Subtract(hit.Point)
	distanceSquared := toLight.LengthSquared()
	if distanceSquared == 0 {
		return core.Vec3{}
	}

	l := toLight.Normalize()
	falloff := intensity * sh.config.IntensityScale / distanceSquared

	return hit.Material.Diffuse.Multiply(falloff * math.Max(0, hit.Normal.Dot(l)))
}

// phong returns the Lambert term plus the half-vector specular term:
// specular * (intensity / d²) * max(0, n·h)^power. There is no ambient
// term in the per-light path.
func (sh *Shader) phong(hit *geometry.HitRecord, lightPos core.Vec3, intensity float64) core.Vec3 {
	toLight := lightPos.Subtract(hit.Point)
	distanceSquared := toLight.LengthSquared()
	if distanceSquared == 0 {
		return core.Vec3{}
	}

	l := toLight.Normalize()
	v := sh.eye.Subtract(hit.Point).Normalize()
	h := l.Add(v).Normalize()

	falloff := intensity * sh.config.IntensityScale / distanceSquared
	specular := hit.Material.Specular.Multiply(falloff * math.Pow(math.Max(0, hit.Normal.Dot(h)), sh.config.Power))

	return sh.lambert(hit, lightPos, intensity).Add(specular)
}
