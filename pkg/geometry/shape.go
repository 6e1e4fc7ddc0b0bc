package geometry

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
)

// HitRecord contains information about a ray-object intersection.
// Intersection state is returned by value rather than cached on the
// object, so scene objects stay read-only during a render pass and
// pixels can be evaluated in parallel.
type HitRecord struct {
	Point     core.Vec3         // Point of intersection
	Normal    core.Vec3         // Unit surface normal at intersection
	T         float64           // Distance along the ray (>= 0)
	FrontFace bool              // Whether ray hit the front face
	Material  material.Material // Material of the hit object
	Object    Object            // The object that produced the hit
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// Object interface for scene objects that can be hit by rays. Shadow
// roles are fixed at construction time and decide which objects cast
// shadow rays onto which, decoupling shadow policy from scene insertion
// order.
type Object interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
	CastsShadows() bool
	ReceivesShadows() bool
}

// ShadowRole carries the per-object shadow policy flags
type ShadowRole struct {
	Casts    bool // Object blocks shadow rays aimed at lights
	Receives bool // Shadow rays are traced from points on this object
}

// CastsShadows reports whether the object occludes light
func (r ShadowRole) CastsShadows() bool { return r.Casts }

// ReceivesShadows reports whether points on the object are shadow-tested
func (r ShadowRole) ReceivesShadows() bool { return r.Receives }
