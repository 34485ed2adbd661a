package constants

import "time"

// Canvas
const (
	CanvasWidth  = 1280
	CanvasHeight = 720

	// TrailPersistence is the alpha of the full-canvas fade overlay each
	// frame; higher values erase trails faster
	TrailPersistence = 0.12
)

// Bloom renderer
const (
	BloomVelocityThreshold = 5.0
	BloomMinInterval       = 160 * time.Millisecond
	BloomLifetime          = 1200 * time.Millisecond
	BloomMaxRadius         = 160.0
	BloomRings             = 4
	BloomRingSpacing       = 18.0
	BloomPulseExponent     = 0.6
	BloomHueDrift          = 40.0
)

// Tendril renderer
const (
	TendrilBlobs       = 7
	TendrilBaseRadius  = 26.0
	TendrilPulseDepth  = 9.0
	TendrilSpinSpeed   = 1.6 // radians/second
	TendrilDragScale   = 2.2
	TendrilBlobRadius  = 10.0
	TendrilLinkAlpha   = 0.25
)

// Kaleidoscope renderer
const (
	KaleidoSegments     = 8
	KaleidoAutoRotation = 0.15 // radians/second
	KaleidoMarkerRadius = 9.0
	KaleidoGlowRadius   = 22.0
	KaleidoCenterPulse  = 1.8 // Hz
)

// Particle fountain renderer
const (
	FountainSpawnVelocity = 4.0
	FountainSpawnPerFrame = 3
	FountainGravity       = 420.0 // pixels/second^2
	FountainJetSpeed      = 260.0
	FountainLifetime      = 1600 * time.Millisecond
	FountainMaxParticles  = 600
)

// Gravitational orbit renderer
const (
	OrbitSpawnVelocity = 4.5
	OrbitPull          = 900.0 // attraction toward the palm
	OrbitDamping       = 0.995
	OrbitLifetime      = 4 * time.Second
	OrbitMaxBodies     = 220
)

// Temporal echo renderer
const (
	EchoInterval = 70 * time.Millisecond
	EchoLifetime = 1100 * time.Millisecond
	EchoMaxSets  = 64
)

// Color schemes
const (
	// ColorPhaseSpeed is how fast the shared phase drifts, in hue
	// degrees per second
	ColorPhaseSpeed = 12.0

	// SaturationVelocityGain maps fingertip speed to saturation boost
	SaturationVelocityGain = 0.02
	SaturationCap          = 1.0

	// LightnessWobbleDepth and rate shape the slow per-finger shimmer
	LightnessWobbleDepth = 0.08
	LightnessWobbleRate  = 0.7 // Hz
)
