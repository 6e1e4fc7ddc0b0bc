package lights

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

func TestNewSpotLight_AngleClamping(t *testing.T) {
	tests := []struct {
		name          string
		angle         float64
		expectedAngle float64
	}{
		{"below operating range", 5, MinConeAngle},
		{"at lower bound", 10, 10},
		{"inside range", 15, 15},
		{"at upper bound", 50, 50},
		{"above operating range", 80, MaxConeAngle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light := NewSpotLight(core.NewVec3(0, 10, 0), core.NewVec3(0, 0, 0), 1, tt.angle)
			if light.ConeAngle != tt.expectedAngle {
				t.Errorf("Expected cone angle %f, got %f", tt.expectedAngle, light.ConeAngle)
			}
		})
	}
}

func TestSpotLight_Direction(t *testing.T) {
	light := NewSpotLight(core.NewVec3(-20, 30, 45), core.NewVec3(1, -5, 0), 2, 15)

	expected := core.NewVec3(-21, 35, 45)
	if light.Direction() != expected {
		t.Errorf("Expected direction %v, got %v", expected, light.Direction())
	}
}

func TestSpotLight_ConeRadius(t *testing.T) {
	light := NewSpotLight(core.NewVec3(0, 10, 0), core.NewVec3(0, 0, 0), 1, 15)

	expected := math.Tan(15*math.Pi/180) * DefaultConeHeight
	if math.Abs(light.ConeRadius()-expected) > 1e-9 {
		t.Errorf("Expected cone radius %f, got %f", expected, light.ConeRadius())
	}
}

func TestSphereProxyConeTest(t *testing.T) {
	light := NewSpotLight(core.NewVec3(0, 30, 0), core.NewVec3(0, 0, 0), 1, 15)
	eye := core.NewVec3(0, 5, 40)
	test := SphereProxyConeTest{}

	// The eye ray through the aim point pierces the proxy sphere
	if !test.Contains(light, eye, light.AimPoint) {
		t.Error("Expected the aim point to be inside the cone proxy")
	}

	// A point far to the side is outside the proxy sphere
	if test.Contains(light, eye, core.NewVec3(200, 0, 0)) {
		t.Error("Expected a far point to be outside the cone proxy")
	}

	// Degenerate eye ray (point at the eye) is never contained
	if test.Contains(light, eye, eye) {
		t.Error("Expected a degenerate eye ray to fail the cone test")
	}
}

func TestAngularConeTest(t *testing.T) {
	light := NewSpotLight(core.NewVec3(0, 30, 0), core.NewVec3(0, 0, 0), 1, 15)
	eye := core.NewVec3(0, 5, 40) // The angular test ignores the eye
	test := AngularConeTest{}

	tests := []struct {
		name     string
		point    core.Vec3
		expected bool
	}{
		{"on the cone axis", core.NewVec3(0, 0, 0), true},
		{"just inside the cone", core.NewVec3(2, 0, 0), true},
		{"perpendicular to the axis", core.NewVec3(100, 30, 0), false},
		{"behind the light", core.NewVec3(0, 60, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := test.Contains(light, eye, tt.point); got != tt.expected {
				t.Errorf("Expected contains=%t for %v, got %t", tt.expected, tt.point, got)
			}
		})
	}
}

func TestNewPointLight_Defaults(t *testing.T) {
	light := NewPointLight(core.NewVec3(100, 150, 150), 0.2)

	if light.PickRadius != DefaultPickRadius {
		t.Errorf("Expected pick radius %f, got %f", DefaultPickRadius, light.PickRadius)
	}
	if light.Intensity != 0.2 {
		t.Errorf("Expected intensity 0.2, got %f", light.Intensity)
	}
}
