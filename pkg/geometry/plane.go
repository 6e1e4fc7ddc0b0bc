package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
)

// Plane represents a finite rectangular plane defined by a center
// point, a normal, and a width/height extent. The rectangle spans the
// plane's local X/Z axes: width along world X, height along world Z.
type Plane struct {
	Point    core.Vec3 // Center of the rectangle
	Normal   core.Vec3 // Normal vector (normalized by the constructor)
	Width    float64   // Extent along the local X axis
	Height   float64   // Extent along the local Z axis
	Material material.Material
	ShadowRole
}

// NewPlane creates a new finite plane. Planes receive shadows from
// casting objects but do not cast shadows themselves.
func NewPlane(point, normal core.Vec3, width, height float64, mat material.Material) *Plane {
	return &Plane{
		Point:      point,
		Normal:     normal.Normalize(),
		Width:      width,
		Height:     height,
		Material:   mat,
		ShadowRole: ShadowRole{Casts: false, Receives: true},
	}
}

// Hit tests if a ray intersects the finite plane. The infinite-plane
// solution is rejected unless the hit point lies strictly inside the
// rectangle's X and Z ranges.
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	// Calculate denominator: dot product of ray direction and plane normal
	denominator := ray.Direction.Dot(p.Normal)

	// If denominator is close to zero, ray is parallel to plane (no intersection)
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	// Calculate t parameter: t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator

	// Check if intersection is within valid range
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)

	// Containment test in the plane's local 2D coordinates
	if hitPoint.X <= p.Point.X-p.Width/2 || hitPoint.X >= p.Point.X+p.Width/2 {
		return nil, false
	}
	if hitPoint.Z <= p.Point.Z-p.Height/2 || hitPoint.Z >= p.Point.Z+p.Height/2 {
		return nil, false
	}

	hitRecord := &HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: p.Material,
		Object:   p,
	}

	// Set face normal (plane normal always points in the same direction)
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}
