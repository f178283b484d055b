package orbfield

import (
	"github.com/go-gl/mathgl/mgl32"
)

// maybeSpawn runs the spawn scheduler: once per SpawnInterval it tops the
// live set up to MaxActive and resets the interval clock. On a narrow
// viewport a single orb is spawned at a site projected from the viewport
// center; otherwise distinct anchors are drawn from the catalog and the
// second orb of a batch starts StaggerDelay later.
func (m *OrbManager) maybeSpawn(now int64) {
	if now-m.lastSpawn < m.cfg.SpawnInterval {
		return
	}
	m.lastSpawn = now

	missing := m.cfg.MaxActive - len(m.orbs)
	if missing <= 0 {
		return
	}

	if m.narrowViewport() {
		site := m.viewer.GroundPoint(mgl32.Vec2{0, 0}, m.cfg.MinSpawnHeight)
		sink := m.sinkDepthFor(site) + m.cfg.NarrowExtraSink
		m.spawnOrb(site, now, sink)
		return
	}

	if missing > len(m.cfg.Anchors) {
		missing = len(m.cfg.Anchors)
	}
	perm := m.rng.Perm(len(m.cfg.Anchors))
	for i := 0; i < missing; i++ {
		anchor := m.cfg.Anchors[perm[i]]
		start := now + int64(i)*m.cfg.StaggerDelay
		m.spawnOrb(anchor, start, m.sinkDepthFor(anchor))
	}
}

func (m *OrbManager) narrowViewport() bool {
	return m.viewer.Width > 0 && m.viewer.Width < m.cfg.NarrowViewportWidth
}

// sinkDepthFor resolves the falling sink depth from anchor identity: the two
// designated special anchors, matched by proximity, sink deeper than the
// default.
func (m *OrbManager) sinkDepthFor(anchor mgl32.Vec3) float32 {
	for _, special := range m.cfg.SpecialAnchors {
		if anchor.Sub(special).Len() <= m.cfg.AnchorTolerance {
			return m.cfg.SpecialSinkDepth
		}
	}
	return m.cfg.DefaultSinkDepth
}
