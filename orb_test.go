package orbfield

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func testOrb(cfg *OrbConfig, anchor mgl32.Vec3, start int64, sink float32) *Orb {
	return newOrb(cfg, anchor, start, sink, nil)
}

func TestOrbRisingHeight(t *testing.T) {
	cfg := DefaultOrbConfig()
	orb := testOrb(&cfg, mgl32.Vec3{2, 0, -1}, 1000, cfg.DefaultSinkDepth)

	orb.stepLifecycle(1000, &cfg)
	assert.Equal(t, PhaseRising, orb.Phase)
	assert.InDelta(t, 0.0, orb.Position.Y(), 1e-6, "height at phaseAge=0 equals the anchor height")

	orb.stepLifecycle(1250, &cfg)
	// halfway: 1 - 0.5^3 = 0.875 of the rise
	assert.InDelta(t, cfg.TargetHeight*0.875, orb.Position.Y(), 1e-4)
	assert.Equal(t, PhaseRising, orb.Phase)

	orb.stepLifecycle(1500, &cfg)
	assert.Equal(t, PhasePaused, orb.Phase, "phase advances at the rise boundary")
	assert.Equal(t, cfg.TargetHeight, orb.Position.Y(), "boundary snaps exactly to the peak")
	assert.Equal(t, int64(1500), orb.PhaseStart)
}

func TestOrbPausedHold(t *testing.T) {
	cfg := DefaultOrbConfig()
	orb := testOrb(&cfg, mgl32.Vec3{0, 0, 0}, 0, cfg.DefaultSinkDepth)
	orb.Phase = PhasePaused
	orb.PhaseStart = 0

	for _, now := range []int64{0, 700, 1999} {
		orb.stepLifecycle(now, &cfg)
		assert.Equal(t, PhasePaused, orb.Phase)
		assert.Equal(t, cfg.TargetHeight, orb.Position.Y(), "paused orbs hold the peak")
	}

	orb.stepLifecycle(2000, &cfg)
	assert.Equal(t, PhaseFalling, orb.Phase)
}

func TestOrbFallingDepths(t *testing.T) {
	cfg := DefaultOrbConfig()

	cases := []struct {
		name string
		sink float32
	}{
		{"default anchor", cfg.DefaultSinkDepth},
		{"special anchor", cfg.SpecialSinkDepth},
		{"narrow viewport", cfg.DefaultSinkDepth + cfg.NarrowExtraSink},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orb := testOrb(&cfg, mgl32.Vec3{0, 0, 0}, 0, tc.sink)
			orb.Phase = PhaseFalling
			orb.PhaseStart = 0

			orb.stepLifecycle(0, &cfg)
			assert.InDelta(t, cfg.TargetHeight, orb.Position.Y(), 1e-6, "fall starts from the peak")

			orb.stepLifecycle(cfg.FallDuration, &cfg)
			want := cfg.TargetHeight - (cfg.TargetHeight + tc.sink)
			assert.InDelta(t, want, orb.Position.Y(), 1e-4)
		})
	}
}

func TestOrbPhaseSequenceNeverRegresses(t *testing.T) {
	cfg := DefaultOrbConfig()
	orb := testOrb(&cfg, mgl32.Vec3{0, 0, 0}, 0, cfg.DefaultSinkDepth)

	last := orb.Phase
	for now := int64(0); now < cfg.TotalDuration; now += 16 {
		orb.stepLifecycle(now, &cfg)
		if orb.Phase < last {
			t.Fatalf("phase regressed from %s to %s at t=%d", last, orb.Phase, now)
		}
		last = orb.Phase
	}
	assert.Equal(t, PhaseFalling, orb.Phase)
}

func TestOrbExpiryIgnoresPhase(t *testing.T) {
	cfg := DefaultOrbConfig()
	cfg.TotalDuration = 100 // shorter than a single rise

	orb := testOrb(&cfg, mgl32.Vec3{0, 0, 0}, 0, cfg.DefaultSinkDepth)
	orb.stepLifecycle(99, &cfg)

	assert.Equal(t, PhaseRising, orb.Phase)
	assert.False(t, orb.Expired(99))
	assert.True(t, orb.Expired(100), "removal is age-based even mid-phase")
}

func TestOrbChannelEasing(t *testing.T) {
	cfg := DefaultOrbConfig()
	orb := testOrb(&cfg, mgl32.Vec3{0, 0, 0}, 0, cfg.DefaultSinkDepth)

	orb.TargetOpacity = cfg.HoverOpacity
	orb.TargetScale = cfg.HoverScale
	orb.TargetLuminosity = cfg.HoverLuminosity

	orb.easeChannels(&cfg)

	assert.InDelta(t, 0.82, orb.CurrentOpacity, 1e-4, "0.8 + 0.1*(1.0-0.8)")
	assert.InDelta(t, 1.0+0.15*(0.95-1.0), orb.CurrentScale, 1e-4)
	assert.InDelta(t, 1.0+0.12*(1.8-1.0), orb.CurrentLuminosity, 1e-4)

	// Repeated ticks converge without overshooting.
	for i := 0; i < 500; i++ {
		orb.easeChannels(&cfg)
		assert.LessOrEqual(t, orb.CurrentOpacity, cfg.HoverOpacity+1e-5)
		assert.GreaterOrEqual(t, orb.CurrentScale, cfg.HoverScale-1e-5)
	}
	assert.InDelta(t, cfg.HoverOpacity, orb.CurrentOpacity, 1e-3)
}

func TestOrbDistanceScale(t *testing.T) {
	cfg := DefaultOrbConfig()
	viewer := NewViewer(1280, 720)
	viewer.Position = mgl32.Vec3{0, 0, 0}

	orb := testOrb(&cfg, mgl32.Vec3{0, 0, -5}, 0, cfg.DefaultSinkDepth)
	orb.Position = mgl32.Vec3{0, 0, -5}
	assert.InDelta(t, cfg.BaseSize/0.5, orb.distanceScale(viewer, &cfg), 1e-4)

	// Far away, the floor kicks in.
	orb.Position = mgl32.Vec3{0, 0, -500}
	assert.Equal(t, cfg.MinScale, orb.distanceScale(viewer, &cfg))
}
