package synth

import (
	"math"
	"sync/atomic"
)

// Engine drone pitch range, mapped from forward speed.
const (
	EngineMinHz = 70.0
	EngineMaxHz = 150.0
)

// Engine is an endless propeller drone. The audio goroutine reads it while
// the frame loop retunes it, so the controls are atomics.
type Engine struct {
	freq  atomic.Uint64 // float64 bits
	level atomic.Uint64 // float64 bits

	phase float64
	buzz  float64
	gain  float64 // smoothed level
	seed  uint64
	lp    float64
}

func NewEngine() *Engine {
	e := &Engine{seed: 0xE4617E}
	e.freq.Store(math.Float64bits(EngineMinHz))
	return e
}

// SetSpeed maps a forward speed in [lo, hi] onto the drone pitch.
func (e *Engine) SetSpeed(speed, lo, hi float64) {
	k := 0.0
	if hi > lo {
		k = math.Max(0, math.Min(1, (speed-lo)/(hi-lo)))
	}
	e.freq.Store(math.Float64bits(EngineMinHz + (EngineMaxHz-EngineMinHz)*k))
}

// SetLevel sets the target loudness in [0,1]; changes are smoothed.
func (e *Engine) SetLevel(level float64) {
	e.level.Store(math.Float64bits(math.Max(0, math.Min(1, level))))
}

func (e *Engine) Freq() float64 { return math.Float64frombits(e.freq.Load()) }

func (e *Engine) Read(p []byte) (int, error) {
	frames := len(p) / BytesPerFrame
	freq := math.Float64frombits(e.freq.Load())
	target := math.Float64frombits(e.level.Load())
	for i := 0; i < frames; i++ {
		e.gain += (target - e.gain) * 0.0005
		e.phase += 2 * math.Pi * freq / SampleRate
		if e.phase > 2*math.Pi {
			e.phase -= 2 * math.Pi
		}
		e.buzz += 2 * math.Pi * freq * 4 / SampleRate
		if e.buzz > 2*math.Pi {
			e.buzz -= 2 * math.Pi
		}
		e.lp += (lcg(&e.seed) - e.lp) * 0.05
		s := math.Sin(e.phase)*0.5 + math.Sin(e.buzz)*0.15*(0.5+0.5*math.Sin(e.phase)) + e.lp*0.2
		putStereoF32(p, i, softSat(s*e.gain*0.5))
	}
	return frames * BytesPerFrame, nil
}
