package orbfield

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type OrbPhase uint8

const (
	PhaseRising OrbPhase = iota
	PhasePaused
	PhaseFalling
)

func (p OrbPhase) String() string {
	switch p {
	case PhaseRising:
		return "rising"
	case PhasePaused:
		return "paused"
	case PhaseFalling:
		return "falling"
	}
	return "unknown"
}

// Orb is one spawned, time-limited animated object. Phases only advance
// forward; removal is decided purely by total age, so an orb can be removed
// mid-phase.
type Orb struct {
	ID string

	Position     mgl32.Vec3 // mutated every tick while alive
	BasePosition mgl32.Vec3 // immutable ground anchor

	StartTime  int64 // ms; before this the orb is live but invisible
	PhaseStart int64 // ms
	Duration   int64 // ms total lifetime

	Phase        OrbPhase
	TargetHeight float32
	SinkDepth    float32 // resolved at spawn from anchor identity and viewport path

	IsHovered bool
	IsClicked bool

	CurrentOpacity    float32
	TargetOpacity     float32
	CurrentScale      float32
	TargetScale       float32
	CurrentLuminosity float32
	TargetLuminosity  float32

	BaseLightIntensity float32

	Payload *PayloadRecord
	Pair    ScenePair

	pulseUntil int64 // click feedback deadline; not an authoritative channel
}

func newOrb(cfg *OrbConfig, anchor mgl32.Vec3, start int64, sink float32, payload *PayloadRecord) *Orb {
	return &Orb{
		ID:           uuid.NewString(),
		Position:     anchor,
		BasePosition: anchor,
		StartTime:    start,
		PhaseStart:   start,
		Duration:     cfg.TotalDuration,
		Phase:        PhaseRising,
		TargetHeight: cfg.TargetHeight,
		SinkDepth:    sink,

		CurrentOpacity:    cfg.BaselineOpacity,
		TargetOpacity:     cfg.BaselineOpacity,
		CurrentScale:      cfg.BaselineScale,
		TargetScale:       cfg.BaselineScale,
		CurrentLuminosity: cfg.BaselineLuminosity,
		TargetLuminosity:  cfg.BaselineLuminosity,

		BaseLightIntensity: cfg.BaseLightIntensity,
		Payload:            payload,
	}
}

// Visible reports whether the orb's delayed start has arrived. Pending orbs
// are excluded from interaction and from lighting snapshots.
func (o *Orb) Visible(now int64) bool {
	return now >= o.StartTime
}

// Expired reports whether the orb has outlived its total duration,
// independent of its current phase.
func (o *Orb) Expired(now int64) bool {
	return now-o.StartTime >= o.Duration
}

// stepLifecycle advances the phase state machine and writes the orb's height
// for this tick. Phase boundaries snap the height to the phase target so the
// eased trajectory cannot drift across transitions.
func (o *Orb) stepLifecycle(now int64, cfg *OrbConfig) {
	peak := o.BasePosition.Y() + o.TargetHeight

	switch o.Phase {
	case PhaseRising:
		age := now - o.PhaseStart
		if age >= cfg.RiseDuration {
			o.Phase = PhasePaused
			o.PhaseStart = now
			o.Position[1] = peak
			return
		}
		p := float32(age) / float32(cfg.RiseDuration)
		o.Position[1] = o.BasePosition.Y() + o.TargetHeight*cubicEaseOut(p)

	case PhasePaused:
		age := now - o.PhaseStart
		if age >= cfg.PauseDuration {
			o.Phase = PhaseFalling
			o.PhaseStart = now
		}
		o.Position[1] = peak

	case PhaseFalling:
		p := clamp01(float32(now-o.PhaseStart) / float32(cfg.FallDuration))
		o.Position[1] = peak - (o.TargetHeight+o.SinkDepth)*cubicEaseIn(p)
	}
}

// distanceScale is the apparent-size factor for the current viewer distance,
// floored by MinScale so far orbs never shrink to invisibility.
func (o *Orb) distanceScale(viewer *Viewer, cfg *OrbConfig) float32 {
	dist := o.Position.Sub(viewer.Position).Len()
	s := cfg.MinScale
	if dist > 0 {
		if f := cfg.BaseSize / (dist * 0.1); f > s {
			s = f
		}
	}
	return s
}

// easeChannels moves each visual channel toward its target by the fixed
// per-channel rate.
func (o *Orb) easeChannels(cfg *OrbConfig) {
	o.CurrentOpacity = approach(o.CurrentOpacity, o.TargetOpacity, cfg.OpacityEase)
	o.CurrentScale = approach(o.CurrentScale, o.TargetScale, cfg.ScaleEase)
	o.CurrentLuminosity = approach(o.CurrentLuminosity, o.TargetLuminosity, cfg.LuminosityEase)
}

// lightEase is the phase-dependent brightness ramp used by the lighting
// aggregator. Recomputed fresh from raw age each call; it never touches the
// orb's stored channels.
func (o *Orb) lightEase(now int64, cfg *OrbConfig) float32 {
	age := now - o.PhaseStart
	switch o.Phase {
	case PhaseRising:
		if age >= cfg.LightRampMillis {
			return 1.0
		}
		return cubicEaseOut(float32(age) / float32(cfg.LightRampMillis))
	case PhaseFalling:
		if age >= cfg.LightRampMillis {
			return 0.0
		}
		return 1.0 - cubicEaseOut(float32(age)/float32(cfg.LightRampMillis))
	}
	return 1.0
}
