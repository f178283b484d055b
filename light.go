package orbfield

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type LightType uint32

const (
	LightTypePoint       LightType = 0
	LightTypeDirectional LightType = 1
	LightTypeSpot        LightType = 2
	LightTypeAmbient     LightType = 3
)

// LightHandle is the scene-graph side of one orb's point light. The orb
// system owns it for the orb's lifetime and keeps Position and Intensity in
// sync every tick; the render side only reads it.
type LightHandle struct {
	ID        string
	Type      LightType
	Position  mgl32.Vec3
	Color     [3]float32 // RGB
	Intensity float32
	Range     float32
}

func NewPointLight(position mgl32.Vec3, color [3]float32, intensity, lightRange float32) *LightHandle {
	return &LightHandle{
		ID:        uuid.NewString(),
		Type:      LightTypePoint,
		Position:  position,
		Color:     color,
		Intensity: intensity,
		Range:     lightRange,
	}
}
