package game

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"planegame/internal/config"
	"planegame/internal/scene"
	"planegame/internal/sim"
)

// RunDesktop opens the window and runs the game until it is closed.
func RunDesktop(cfg config.Config) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	events := sim.NewEventBus()

	var audio *Audio
	if !cfg.Mute {
		audio, err = NewAudio()
		if err != nil {
			log.Printf("audio init failed (continuing without sound): %v", err)
			audio = nil
		} else {
			defer audio.Close()
			audio.Subscribe(events)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	session := sim.NewSession(sim.Options{
		Seed:               seed,
		ResetCityOnRestart: cfg.ResetCity,
		Time:               sim.SystemTime{},
		Events:             events,
	})
	events.Subscribe(sim.EventCollision, func(sim.Event) {
		log.Printf("crash at %.1fs, score %d", session.State.Elapsed, session.State.Score)
	})

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.MULTISAMPLE)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(scene.NewAtlas()); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	input := NewInput(window)
	builder := scene.NewBuilder()
	var frame scene.Frame
	var snap sim.Snapshot

	// Fixed-step accumulator: the world moves a set distance per tick.
	last := glfw.GetTime()
	acc := 0.0
	for !window.ShouldClose() {
		glfw.PollEvents()
		for _, cmd := range input.Drain() {
			if cmd == sim.CmdQuit {
				window.SetShouldClose(true)
				continue
			}
			session.Handle(cmd)
		}

		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameTime {
			dt = MaxFrameTime
		}
		acc += dt
		for steps := 0; acc >= TickDt; steps++ {
			if steps == MaxCatchUp {
				acc = 0
				break
			}
			session.Tick()
			acc -= TickDt
		}
		audio.Update(session.State, session.Plane.Speed)

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		session.Snapshot(&snap)
		builder.Build(&frame, &snap, session.City, float32(fbW)/float32(fbH))
		rend.Draw(&frame, fbW, fbH)
		window.SwapBuffers()
	}
	return nil
}
