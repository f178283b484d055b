package orbfield

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIntersectSphereHeadOn(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{0, 0, 0}, Dir: mgl32.Vec3{0, 0, 1}}

	ti, ok := ray.IntersectSphere(mgl32.Vec3{0, 0, 10}, 1.0)
	if !ok {
		t.Fatal("expected a hit on a sphere straight ahead")
	}
	if ti < 8.9 || ti > 9.1 {
		t.Errorf("hit at wrong distance: %f (expected 9)", ti)
	}
}

func TestIntersectSphereMiss(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{0, 0, 0}, Dir: mgl32.Vec3{0, 0, 1}}

	if _, ok := ray.IntersectSphere(mgl32.Vec3{5, 0, 10}, 1.0); ok {
		t.Error("expected a miss on an offset sphere")
	}

	// Sphere behind the origin.
	if _, ok := ray.IntersectSphere(mgl32.Vec3{0, 0, -10}, 1.0); ok {
		t.Error("expected a miss on a sphere behind the ray")
	}
}

func TestIntersectSphereFromInside(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{0, 0, 0}, Dir: mgl32.Vec3{0, 0, 1}}

	ti, ok := ray.IntersectSphere(mgl32.Vec3{0, 0, 0}, 2.0)
	if !ok {
		t.Fatal("expected a hit from inside the sphere")
	}
	if ti < 1.9 || ti > 2.1 {
		t.Errorf("exit hit at wrong distance: %f (expected 2)", ti)
	}
}

func TestIntersectOrbsSortedByDistance(t *testing.T) {
	cfg := DefaultOrbConfig()

	near := testOrb(&cfg, mgl32.Vec3{0, 0, 5}, 0, cfg.DefaultSinkDepth)
	near.Pair = ScenePair{
		Mesh:  NewSphereMesh(mgl32.Vec3{0, 0, 5}, 1.0, cfg.MeshColor),
		Light: NewPointLight(mgl32.Vec3{0, 0, 5}, cfg.LightColor, 0, cfg.LightRange),
	}
	far := testOrb(&cfg, mgl32.Vec3{0, 0, 20}, 0, cfg.DefaultSinkDepth)
	far.Pair = ScenePair{
		Mesh:  NewSphereMesh(mgl32.Vec3{0, 0, 20}, 1.0, cfg.MeshColor),
		Light: NewPointLight(mgl32.Vec3{0, 0, 20}, cfg.LightColor, 0, cfg.LightRange),
	}

	ray := Ray{Origin: mgl32.Vec3{0, 0, 0}, Dir: mgl32.Vec3{0, 0, 1}}
	hits := intersectOrbs(ray, []*Orb{far, near})

	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].Orb != near {
		t.Error("nearest hit should come first")
	}
	if hits[0].T >= hits[1].T {
		t.Errorf("hits not sorted: %f then %f", hits[0].T, hits[1].T)
	}
}

func TestPointerNDCMapping(t *testing.T) {
	v := NewViewer(800, 600)

	center := v.PointerNDC(400, 300)
	if center.X() != 0 || center.Y() != 0 {
		t.Errorf("center pixel should map to NDC origin, got %v", center)
	}

	topLeft := v.PointerNDC(0, 0)
	if topLeft.X() != -1 || topLeft.Y() != 1 {
		t.Errorf("top-left pixel should map to (-1, 1), got %v", topLeft)
	}

	bottomRight := v.PointerNDC(800, 600)
	if bottomRight.X() != 1 || bottomRight.Y() != -1 {
		t.Errorf("bottom-right pixel should map to (1, -1), got %v", bottomRight)
	}
}

func TestProjectRayThroughCenter(t *testing.T) {
	v := NewViewer(1280, 720)

	ray := v.ProjectRay(mgl32.Vec2{0, 0})
	forward := v.Target.Sub(v.Position).Normalize()

	if dot := ray.Dir.Dot(forward); dot < 0.999 {
		t.Errorf("center ray should follow the view direction, dot=%f", dot)
	}
}

func TestGroundPointClampsHeight(t *testing.T) {
	v := NewViewer(1280, 720)

	pt := v.GroundPoint(mgl32.Vec2{0, 0}, 0.5)
	if pt.Y() != 0.5 {
		t.Errorf("ground projection should clamp to the minimum height, got y=%f", pt.Y())
	}

	// A ray pointing up never reaches the ground; the fallback still clamps.
	v.Target = mgl32.Vec3{0, 100, 0}
	pt = v.GroundPoint(mgl32.Vec2{0, 0}, 0.5)
	if pt.Y() < 0.5 {
		t.Errorf("fallback point should respect the clamp, got y=%f", pt.Y())
	}
}
