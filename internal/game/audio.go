package game

import (
	"bytes"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"planegame/internal/sim"
	"planegame/internal/synth"
)

// Audio plays the synthesized effects and the engine drone through one oto context.
type Audio struct {
	ctx          *oto.Context
	ready        chan struct{}
	engine       *synth.Engine
	enginePlayer oto.Player
	sounds       [synth.NumSounds][]byte
	active       atomic.Int32
}

func NewAudio() (*Audio, error) {
	ctx, ready, err := oto.NewContext(synth.SampleRate, synth.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	a := &Audio{ctx: ctx, ready: ready, engine: synth.NewEngine()}
	for s := range a.sounds {
		a.sounds[s] = synth.Generate(synth.Sound(s))
	}
	return a, nil
}

func (a *Audio) isReady() bool {
	select {
	case <-a.ready:
		return true
	default:
		return false
	}
}

// Play starts a one-shot effect. Sounds past MaxActiveSounds are dropped.
func (a *Audio) Play(s synth.Sound) {
	if a == nil || !a.isReady() {
		return
	}
	samples := a.sounds[s]
	if len(samples) == 0 {
		return
	}
	if a.active.Add(1) > MaxActiveSounds {
		a.active.Add(-1)
		return
	}
	go func() {
		defer a.active.Add(-1)
		player := a.ctx.NewPlayer(bytes.NewReader(samples))
		player.SetVolume(SFXVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// Subscribe maps session events to effects.
func (a *Audio) Subscribe(bus *sim.EventBus) {
	bus.Subscribe(sim.EventObstaclePassed, func(sim.Event) { a.Play(synth.SoundRingPass) })
	bus.Subscribe(sim.EventCollision, func(sim.Event) { a.Play(synth.SoundCrash) })
	bus.Subscribe(sim.EventLandmarkPassed, func(sim.Event) { a.Play(synth.SoundLandmark) })
	bus.Subscribe(sim.EventSessionStarted, func(sim.Event) { a.Play(synth.SoundMenuSelect) })
	bus.Subscribe(sim.EventMenu, func(sim.Event) { a.Play(synth.SoundMenuSelect) })
	bus.Subscribe(sim.EventPauseChanged, func(e sim.Event) {
		if e.Data == 1 {
			a.Play(synth.SoundPause)
		} else {
			a.Play(synth.SoundResume)
		}
	})
}

// Update retunes the engine drone. It only sounds while the plane is flying.
func (a *Audio) Update(st sim.State, speed float64) {
	if a == nil || !a.isReady() {
		return
	}
	if a.enginePlayer == nil {
		a.enginePlayer = a.ctx.NewPlayer(a.engine)
		a.enginePlayer.SetVolume(EngineVolume)
		a.enginePlayer.Play()
	}
	a.engine.SetSpeed(speed, sim.InitialSpeed, sim.MaxSpeed)
	level := 0.0
	if st.Mode == sim.ModeRunning && !st.Paused {
		level = 1
	}
	a.engine.SetLevel(level)
}

func (a *Audio) Close() {
	if a == nil {
		return
	}
	if a.enginePlayer != nil {
		a.enginePlayer.Close()
	}
}
