package orbfield

import (
	"math/rand"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbManager runs the transient-orb lifecycle: it spawns orbs on a fixed
// interval, drives each through rising/paused/falling motion, handles
// pointer hover and click against their meshes, and exports aggregated
// lighting for a consumer shader.
//
// The manager is single-threaded: all state is mutated inside Update, except
// the pointer/click queue, which the async callbacks append to and Update
// drains at the start of its interaction pass.
type OrbManager struct {
	cfg    OrbConfig
	scene  SceneGraph
	viewer *Viewer
	log    Logger
	rng    *rand.Rand

	orbs      []*Orb
	lastSpawn int64
	payloads  *PayloadPool

	eventsMu sync.Mutex
	events   []pointerEvent

	pointerNDC mgl32.Vec2
	hasPointer bool

	// CursorHover signals the presentation layer to show a pointer cursor.
	CursorHover bool

	// OnActivate fires exactly once per orb when it is first clicked.
	OnActivate func(record *PayloadRecord)
}

func NewOrbManager(cfg OrbConfig, scene SceneGraph, viewer *Viewer, catalog []PayloadRecord, log Logger) *OrbManager {
	if log == nil {
		log = NopLogger{}
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &OrbManager{
		cfg:    cfg,
		scene:  scene,
		viewer: viewer,
		log:    log,
		rng:    rng,
		// A batch is due on the very first tick.
		lastSpawn: -cfg.SpawnInterval,
		payloads:  NewPayloadPool(catalog, rng),
	}
}

// LiveCount includes orbs still pending their delayed start.
func (m *OrbManager) LiveCount() int {
	return len(m.orbs)
}

// Update advances the whole system by one tick: sweep and spawn first, then
// the interaction pass, then per-orb lifecycle and scene sync.
func (m *OrbManager) Update(now int64) {
	m.sweepExpired(now)
	m.maybeSpawn(now)
	m.interactionPass(now)

	for _, orb := range m.orbs {
		if !orb.Visible(now) {
			m.syncPending(orb)
			continue
		}
		orb.stepLifecycle(now, &m.cfg)
		orb.easeChannels(&m.cfg)
		m.syncScene(orb, now)
	}
}

// sweepExpired removes every orb whose total age has elapsed, regardless of
// phase. Removal indices are collected first, then the slice is compacted in
// one pass; scene handles and payload bindings are released exactly once.
func (m *OrbManager) sweepExpired(now int64) {
	expired := false
	for _, orb := range m.orbs {
		if orb.Expired(now) {
			expired = true
			break
		}
	}
	if !expired {
		return
	}

	kept := m.orbs[:0]
	for _, orb := range m.orbs {
		if !orb.Expired(now) {
			kept = append(kept, orb)
			continue
		}
		orb.Pair.Release(m.scene)
		m.payloads.Release(orb.Payload)
		m.log.Debugf("orb %s expired in phase %s", orb.ID, orb.Phase)
	}
	for i := len(kept); i < len(m.orbs); i++ {
		m.orbs[i] = nil
	}
	m.orbs = kept
}

func (m *OrbManager) spawnOrb(anchor mgl32.Vec3, start int64, sink float32) *Orb {
	payload := m.payloads.Acquire()
	orb := newOrb(&m.cfg, anchor, start, sink, payload)

	mesh := NewSphereMesh(anchor, m.cfg.OrbRadius, m.cfg.MeshColor)
	mesh.Opacity = 0
	light := NewPointLight(anchor, m.cfg.LightColor, 0, m.cfg.LightRange)
	orb.Pair = ScenePair{Mesh: mesh, Light: light}
	m.scene.Place(mesh, light)

	m.orbs = append(m.orbs, orb)
	if payload != nil {
		m.log.Debugf("spawned orb %s at %v (payload %q, start %d)", orb.ID, anchor, payload.Title, start)
	}
	return orb
}

// syncScene pushes the orb's animated state to its scene handles.
func (m *OrbManager) syncScene(orb *Orb, now int64) {
	mesh := orb.Pair.Mesh
	mesh.Position = orb.Position
	mesh.Opacity = orb.CurrentOpacity

	scale := orb.distanceScale(m.viewer, &m.cfg) * orb.CurrentScale
	if now < orb.pulseUntil {
		scale *= m.cfg.ClickPulseScale
	}
	mesh.Scale = scale

	light := orb.Pair.Light
	light.Position = orb.Position
	light.Intensity = orb.BaseLightIntensity * orb.CurrentLuminosity
}

// syncPending keeps a not-yet-started orb invisible and dark.
func (m *OrbManager) syncPending(orb *Orb) {
	orb.Pair.Mesh.Opacity = 0
	orb.Pair.Light.Intensity = 0
}

func (m *OrbManager) visibleOrbs(now int64) []*Orb {
	visible := make([]*Orb, 0, len(m.orbs))
	for _, orb := range m.orbs {
		if orb.Visible(now) {
			visible = append(visible, orb)
		}
	}
	return visible
}

// Dispose releases every live orb's scene handles and payload binding
// immediately, independent of phase or age.
func (m *OrbManager) Dispose() {
	for _, orb := range m.orbs {
		orb.Pair.Release(m.scene)
		m.payloads.Release(orb.Payload)
	}
	m.orbs = nil
	m.CursorHover = false
}

// OrbModule installs the orb manager and its per-tick update system.
type OrbModule struct {
	Config     *OrbConfig
	Scene      SceneGraph
	Viewer     *Viewer
	Catalog    []PayloadRecord
	Logger     Logger
	OnActivate func(record *PayloadRecord)
}

func (mod OrbModule) Install(app *App, cmd *Commands) {
	cfg := DefaultOrbConfig()
	if mod.Config != nil {
		cfg = *mod.Config
	}
	scene := mod.Scene
	if scene == nil {
		scene = NewMemoryScene()
	}
	viewer := mod.Viewer
	if viewer == nil {
		viewer = NewViewer(1280, 720)
	}
	catalog := mod.Catalog
	if catalog == nil {
		catalog = DefaultPayloadCatalog()
	}

	mgr := NewOrbManager(cfg, scene, viewer, catalog, mod.Logger)
	mgr.OnActivate = mod.OnActivate

	cmd.AddResources(mgr, viewer)
	app.UseSystem(
		System(orbUpdateSystem).
			InStage(Update),
	)
}

func orbUpdateSystem(clock *Clock, mgr *OrbManager) {
	mgr.Update(clock.Frame)
}
