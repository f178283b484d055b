package orbfield

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3 // unit length
}

// RaycastHit records one ray/orb intersection. T is the world-space distance
// along the ray.
type RaycastHit struct {
	Hit bool
	T   float32
	Pos mgl32.Vec3
	Orb *Orb
}

// IntersectSphere returns the nearest positive hit distance against a sphere,
// or ok=false when the ray misses or the sphere is behind the origin.
func (r Ray) IntersectSphere(center mgl32.Vec3, radius float32) (float32, bool) {
	oc := r.Origin.Sub(center)

	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	sq := float32(math.Sqrt(float64(disc)))
	t := -b - sq
	if t < 0 {
		t = -b + sq // origin inside the sphere
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// intersectOrbs tests the ray against the meshes of the given orbs and
// returns every hit sorted by distance, nearest first.
func intersectOrbs(ray Ray, orbs []*Orb) []RaycastHit {
	var hits []RaycastHit
	for _, orb := range orbs {
		mesh := orb.Pair.Mesh
		t, ok := ray.IntersectSphere(mesh.Position, mesh.Radius*mesh.Scale)
		if !ok {
			continue
		}
		hits = append(hits, RaycastHit{
			Hit: true,
			T:   t,
			Pos: ray.Origin.Add(ray.Dir.Mul(t)),
			Orb: orb,
		})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].T < hits[j].T })
	return hits
}
