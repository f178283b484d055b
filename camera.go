package orbfield

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Viewer is the observer used for ray picking and for the distance-based
// apparent size of orbs. It mirrors the render camera without depending on
// the renderer itself.
type Viewer struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	FovDeg   float32
	Near     float32
	Far      float32
	Width    int
	Height   int
}

func NewViewer(width, height int) *Viewer {
	return &Viewer{
		Position: mgl32.Vec3{0, 4, 10},
		Target:   mgl32.Vec3{0, 1, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		FovDeg:   45.0,
		Near:     0.1,
		Far:      1000.0,
		Width:    width,
		Height:   height,
	}
}

func (v *Viewer) viewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(v.Position, v.Target, v.Up)
}

func (v *Viewer) projMatrix() mgl32.Mat4 {
	aspect := float32(v.Width) / float32(v.Height)
	if v.Height == 0 || aspect == 0 {
		aspect = 1.0
	}
	return mgl32.Perspective(mgl32.DegToRad(v.FovDeg), aspect, v.Near, v.Far)
}

// PointerNDC converts device pixel coordinates to normalized device
// coordinates, x and y in [-1, 1] with y up.
func (v *Viewer) PointerNDC(px, py float64) mgl32.Vec2 {
	w, h := float32(v.Width), float32(v.Height)
	if w == 0 || h == 0 {
		return mgl32.Vec2{}
	}
	x := float32(px)/w*2.0 - 1.0
	y := 1.0 - float32(py)/h*2.0
	return mgl32.Vec2{x, y}
}

// ProjectRay unprojects an NDC point into a world-space ray from the viewer.
func (v *Viewer) ProjectRay(ndc mgl32.Vec2) Ray {
	inv := v.projMatrix().Mul4(v.viewMatrix()).Inv()

	nearClip := inv.Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), -1.0, 1.0})
	farClip := inv.Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), 1.0, 1.0})

	nearPt := nearClip.Vec3().Mul(1.0 / nearClip.W())
	farPt := farClip.Vec3().Mul(1.0 / farClip.W())

	return Ray{
		Origin: nearPt,
		Dir:    farPt.Sub(nearPt).Normalize(),
	}
}

// GroundPoint projects an NDC point onto the ground plane (y = 0) and clamps
// the result to at least minY above it. Used by the narrow-viewport spawn
// path, which anchors a single orb in front of the viewer.
func (v *Viewer) GroundPoint(ndc mgl32.Vec2, minY float32) mgl32.Vec3 {
	ray := v.ProjectRay(ndc)

	var pt mgl32.Vec3
	if ray.Dir.Y() < -1e-6 {
		t := -ray.Origin.Y() / ray.Dir.Y()
		pt = ray.Origin.Add(ray.Dir.Mul(t))
	} else {
		// Ray never reaches the ground; fall back to a point ahead of the viewer.
		pt = ray.Origin.Add(ray.Dir.Mul(10.0))
	}

	if pt.Y() < minY {
		pt[1] = minY
	}
	return pt
}
