package orbfield

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// MeshHandle is the scene-graph side of one orb's renderable sphere.
type MeshHandle struct {
	ID       string
	Position mgl32.Vec3
	Radius   float32
	Scale    float32
	Opacity  float32
	Color    color.RGBA
}

func NewSphereMesh(position mgl32.Vec3, radius float32, col color.RGBA) *MeshHandle {
	return &MeshHandle{
		ID:       uuid.NewString(),
		Position: position,
		Radius:   radius,
		Scale:    1.0,
		Opacity:  1.0,
		Color:    col,
	}
}

// SceneGraph is the collaborator that actually shows and hides orbs. The orb
// system calls Place once per spawned orb and Remove exactly once at removal.
type SceneGraph interface {
	Place(mesh *MeshHandle, light *LightHandle)
	Remove(mesh *MeshHandle, light *LightHandle)
}

// ScenePair owns one mesh handle and one light handle as a single value so
// they are placed and released atomically. Releasing twice, or releasing a
// pair that was never created, indicates mismanaged ownership and panics.
type ScenePair struct {
	Mesh     *MeshHandle
	Light    *LightHandle
	released bool
}

func (p *ScenePair) Release(scene SceneGraph) {
	if p.Mesh == nil || p.Light == nil {
		panic("orbfield: releasing a scene pair that was never created")
	}
	if p.released {
		panic(fmt.Sprintf("orbfield: double release of scene pair %s", p.Mesh.ID))
	}
	scene.Remove(p.Mesh, p.Light)
	p.released = true
}

// MemoryScene is an in-process SceneGraph used by tests and by the demo host
// in place of a real renderer.
type MemoryScene struct {
	meshes map[string]*MeshHandle
	lights map[string]*LightHandle
}

func NewMemoryScene() *MemoryScene {
	return &MemoryScene{
		meshes: make(map[string]*MeshHandle),
		lights: make(map[string]*LightHandle),
	}
}

func (s *MemoryScene) Place(mesh *MeshHandle, light *LightHandle) {
	s.meshes[mesh.ID] = mesh
	s.lights[light.ID] = light
}

func (s *MemoryScene) Remove(mesh *MeshHandle, light *LightHandle) {
	delete(s.meshes, mesh.ID)
	delete(s.lights, light.ID)
}

func (s *MemoryScene) MeshCount() int  { return len(s.meshes) }
func (s *MemoryScene) LightCount() int { return len(s.lights) }
