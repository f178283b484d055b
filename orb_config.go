package orbfield

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

// OrbConfig gathers every tuning constant of the orb system. The values are
// fixed in the current design but named here so the demo, the tests and any
// host can see (and, where sensible, override) them in one place.
type OrbConfig struct {
	// Scheduling
	SpawnInterval int64 // ms between spawn batches
	MaxActive     int   // live orb cap
	StaggerDelay  int64 // ms offset applied to the second orb of a batch

	// Lifecycle
	RiseDuration  int64 // ms
	PauseDuration int64 // ms
	FallDuration  int64 // ms
	TotalDuration int64 // ms; removal is purely age-based

	// Motion
	TargetHeight     float32 // rise distance above the anchor
	DefaultSinkDepth float32 // below the peak-relative baseline while falling
	SpecialSinkDepth float32 // for the two special anchors
	NarrowExtraSink  float32 // added on the narrow-viewport path
	AnchorTolerance  float32 // proximity match against SpecialAnchors

	// Spawn sites
	Anchors             []mgl32.Vec3
	SpecialAnchors      [2]mgl32.Vec3
	NarrowViewportWidth int     // px; below this the single-orb path is used
	MinSpawnHeight      float32 // ground clamp for the projected narrow site

	// Appearance
	OrbRadius          float32
	BaseSize           float32 // numerator of the distance-based scale
	MinScale           float32 // floor so distant orbs stay visible
	BaseLightIntensity float32
	LightRange         float32
	MeshColor          color.RGBA
	LightColor         [3]float32

	// Channel easing (fraction of remaining distance per tick)
	OpacityEase    float32
	ScaleEase      float32
	LuminosityEase float32

	// Channel targets
	BaselineOpacity    float32
	BaselineScale      float32
	BaselineLuminosity float32
	HoverOpacity       float32
	HoverScale         float32
	HoverLuminosity    float32

	// Click feedback
	ClickPulseScale  float32
	ClickPulseMillis int64

	// Lighting aggregator ramp length at both ends of the lifecycle
	LightRampMillis int64
}

// defaultAnchors is the hand-authored catalog of wide-viewport spawn sites.
// Indices 2 and 5 are the special deep-sink anchors.
var defaultAnchors = []mgl32.Vec3{
	{4.2, 0, -3.1},
	{-3.8, 0, -5.2},
	{6.5, 0, 2.4},
	{-6.1, 0, 3.3},
	{1.5, 0, -7.0},
	{-1.9, 0, 6.4},
	{7.3, 0, -1.2},
	{-4.6, 0, -1.8},
}

func DefaultOrbConfig() OrbConfig {
	c := colornames.Mediumslateblue
	return OrbConfig{
		SpawnInterval: 5000,
		MaxActive:     2,
		StaggerDelay:  500,

		RiseDuration:  500,
		PauseDuration: 2000,
		FallDuration:  800,
		TotalDuration: 3800,

		TargetHeight:     3.0,
		DefaultSinkDepth: 1.5,
		SpecialSinkDepth: 3.0,
		NarrowExtraSink:  5.0,
		AnchorTolerance:  0.1,

		Anchors:             defaultAnchors,
		SpecialAnchors:      [2]mgl32.Vec3{defaultAnchors[2], defaultAnchors[5]},
		NarrowViewportWidth: 768,
		MinSpawnHeight:      0.5,

		OrbRadius:          0.35,
		BaseSize:           1.0,
		MinScale:           0.4,
		BaseLightIntensity: 2.0,
		LightRange:         12.0,
		MeshColor:          color.RGBA{R: c.R, G: c.G, B: c.B, A: 255},
		LightColor:         [3]float32{float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0},

		OpacityEase:    0.1,
		ScaleEase:      0.15,
		LuminosityEase: 0.12,

		BaselineOpacity:    0.8,
		BaselineScale:      1.0,
		BaselineLuminosity: 1.0,
		HoverOpacity:       1.0,
		HoverScale:         0.95,
		HoverLuminosity:    1.8,

		ClickPulseScale:  1.15,
		ClickPulseMillis: 100,

		LightRampMillis: 500,
	}
}
