package orbfield

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LightSnapshot is a point-in-time read of the visible orbs' lighting, one
// position/intensity pair per orb, for a consumer shader or lighting system.
type LightSnapshot struct {
	Positions   []mgl32.Vec3
	Intensities []float32
}

// Snapshot exports positions and effective intensities for every visible
// orb. Intensity is the light handle's value (base x luminosity channel)
// multiplied by the phase ramp, recomputed fresh from raw age so the
// consumer gets a smooth brightness curve independent of the visual
// channels.
func (m *OrbManager) Snapshot(now int64) LightSnapshot {
	var snap LightSnapshot
	for _, orb := range m.orbs {
		if !orb.Visible(now) {
			continue
		}
		snap.Positions = append(snap.Positions, orb.Position)
		snap.Intensities = append(snap.Intensities, orb.Pair.Light.Intensity*orb.lightEase(now, &m.cfg))
	}
	return snap
}
