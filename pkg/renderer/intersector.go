package renderer

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// tMinEpsilon offsets ray origins to avoid self-intersection for both
// primary and shadow rays.
const tMinEpsilon = 0.001

// Intersector finds ray-object intersections over an ordered object list
type Intersector struct {
	objects []geometry.Object
}

// NewIntersector creates an intersector over the given objects. The
// slice is not copied; it must stay unchanged during a render pass.
func NewIntersector(objects []geometry.Object) *Intersector {
	return &Intersector{objects: objects}
}

// NearestHit returns the closest intersection along the ray, or false
// if the ray hits nothing. Objects are tested in scene order and the
// strictly smallest positive distance wins, so the first object
// encountered wins ties.
func (ix *Intersector) NearestHit(ray core.Ray) (*geometry.HitRecord, bool) {
	var closestHit *geometry.HitRecord
	closestSoFar := math.MaxFloat64

	for _, obj := range ix.objects {
		if hit, isHit := obj.Hit(ray, tMinEpsilon, math.MaxFloat64); isHit {
			if hit.T < closestSoFar {
				closestSoFar = hit.T
				closestHit = hit
			}
		}
	}

	return closestHit, closestHit != nil
}

// Occluded reports whether any shadow-casting object blocks the segment
// from point toward lightPos. Unlike NearestHit, any single occluder
// hit along the segment is sufficient; no nearest-hit bookkeeping is
// done.
func (ix *Intersector) Occluded(point, lightPos core.Vec3) bool {
	shadowRay, err := core.NewRayTo(point, lightPos)
	if err != nil {
		return false
	}
	lightDistance := point.Distance(lightPos)

	for _, obj := range ix.objects {
		if !obj.CastsShadows() {
			continue
		}
		if _, isHit := obj.Hit(shadowRay, tMinEpsilon, lightDistance); isHit {
			return true
		}
	}

	return false
}
