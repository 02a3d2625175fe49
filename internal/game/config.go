package game

const WindowTitle = "Plane Game 3D"

// The simulation advances in fixed ticks; a tick moves the world by the
// plane's speed, so the rate sets how fast the game plays.
const (
	TickRate     = 60.0
	TickDt       = 1.0 / TickRate
	MaxCatchUp   = 5    // ticks per frame before dropping time
	MaxFrameTime = 0.25 // seconds; longer stalls are not replayed
)

// Instance buffers start at this many instances per mesh and grow on demand.
const InitialInstanceCap = 1024

// Text buffer capacity in glyphs.
const MaxGlyphs = 1024

// Audio mix.
const (
	SFXVolume       = 0.58
	EngineVolume    = 0.22
	MaxActiveSounds = 4
)
