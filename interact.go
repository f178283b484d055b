package orbfield

import (
	"github.com/go-gl/mathgl/mgl32"
)

type pointerEventKind uint8

const (
	pointerMove pointerEventKind = iota
	pointerClick
)

type pointerEvent struct {
	kind pointerEventKind
	x, y float64 // device pixels
}

// PointerMoved records the latest pointer position. Called from an async
// event callback; the event is queued and consumed at the next tick.
func (m *OrbManager) PointerMoved(x, y float64) {
	m.eventsMu.Lock()
	m.events = append(m.events, pointerEvent{kind: pointerMove, x: x, y: y})
	m.eventsMu.Unlock()
}

// Clicked records a click at the given device coordinates. Called from an
// async event callback; delivered against the visible set at the next tick.
func (m *OrbManager) Clicked(x, y float64) {
	m.eventsMu.Lock()
	m.events = append(m.events, pointerEvent{kind: pointerClick, x: x, y: y})
	m.eventsMu.Unlock()
}

func (m *OrbManager) drainEvents() []pointerEvent {
	m.eventsMu.Lock()
	events := m.events
	m.events = nil
	m.eventsMu.Unlock()
	return events
}

// interactionPass drains the pointer queue, refreshes hover state against the
// visible orbs and delivers any queued clicks.
func (m *OrbManager) interactionPass(now int64) {
	var clicks []mgl32.Vec2
	for _, ev := range m.drainEvents() {
		switch ev.kind {
		case pointerMove:
			m.pointerNDC = m.viewer.PointerNDC(ev.x, ev.y)
			m.hasPointer = true
		case pointerClick:
			clicks = append(clicks, m.viewer.PointerNDC(ev.x, ev.y))
		}
	}

	// Baseline reset for every orb, hovered or not.
	for _, orb := range m.orbs {
		orb.IsHovered = false
		orb.TargetOpacity = m.cfg.BaselineOpacity
		orb.TargetScale = m.cfg.BaselineScale
		orb.TargetLuminosity = m.cfg.BaselineLuminosity
	}
	m.CursorHover = false

	visible := m.visibleOrbs(now)

	if m.hasPointer && len(visible) > 0 {
		hits := intersectOrbs(m.viewer.ProjectRay(m.pointerNDC), visible)
		if len(hits) > 0 {
			orb := hits[0].Orb
			orb.IsHovered = true
			orb.TargetOpacity = m.cfg.HoverOpacity
			orb.TargetScale = m.cfg.HoverScale
			orb.TargetLuminosity = m.cfg.HoverLuminosity
			m.CursorHover = true
		}
	}

	for _, ndc := range clicks {
		m.deliverClick(ndc, visible, now)
	}
}

// deliverClick activates the nearest intersected visible orb. The activation
// fires once per orb; later clicks on the same orb are no-ops. The scale
// pulse is feedback only and reverts without touching the channels.
func (m *OrbManager) deliverClick(ndc mgl32.Vec2, visible []*Orb, now int64) {
	hits := intersectOrbs(m.viewer.ProjectRay(ndc), visible)
	if len(hits) == 0 {
		return
	}

	orb := hits[0].Orb
	if orb.IsClicked {
		return
	}
	orb.IsClicked = true
	orb.pulseUntil = now + m.cfg.ClickPulseMillis

	if orb.Payload != nil {
		m.log.Debugf("orb %s activated payload %q -> %s", orb.ID, orb.Payload.Title, orb.Payload.URL)
	}
	if m.OnActivate != nil {
		m.OnActivate(orb.Payload)
	}
}
