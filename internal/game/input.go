package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"planegame/internal/sim"
)

// Input collects commands from GLFW callbacks. Callbacks run inside
// PollEvents on the main thread, so the queue needs no locking.
type Input struct {
	queue []sim.Command
}

func NewInput(window *glfw.Window) *Input {
	in := &Input{queue: make([]sim.Command, 0, 16)}
	window.SetKeyCallback(in.onKey)
	window.SetCharCallback(in.onChar)
	window.SetScrollCallback(in.onScroll)
	return in
}

// Drain returns the commands queued since the last call. The slice is
// reused by the next poll.
func (in *Input) Drain() []sim.Command {
	q := in.queue
	in.queue = in.queue[:0]
	return q
}

// Arrows repeat while held, like the keyboard's own repeat.
func (in *Input) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	switch key {
	case glfw.KeyUp:
		in.queue = append(in.queue, sim.CmdPitchUp)
	case glfw.KeyDown:
		in.queue = append(in.queue, sim.CmdPitchDown)
	case glfw.KeyLeft:
		in.queue = append(in.queue, sim.CmdRollLeft)
	case glfw.KeyRight:
		in.queue = append(in.queue, sim.CmdRollRight)
	case glfw.KeyEscape:
		in.queue = append(in.queue, sim.CmdQuit)
	}
}

// Character keys go through the char callback so bindings follow the
// printed symbol rather than the physical key.
func (in *Input) onChar(_ *glfw.Window, ch rune) {
	if cmd, ok := charCommand(ch); ok {
		in.queue = append(in.queue, cmd)
	}
}

func (in *Input) onScroll(_ *glfw.Window, _, yoff float64) {
	switch {
	case yoff > 0:
		in.queue = append(in.queue, sim.CmdZoomIn)
	case yoff < 0:
		in.queue = append(in.queue, sim.CmdZoomOut)
	}
}

func charCommand(ch rune) (sim.Command, bool) {
	switch ch {
	case 'q':
		return sim.CmdQuit, true
	case ' ':
		return sim.CmdTogglePause, true
	case 'r':
		return sim.CmdSpinOn, true
	case 't':
		return sim.CmdSpinOff, true
	case '+', '=':
		return sim.CmdZoomIn, true
	case '-', '_':
		return sim.CmdZoomOut, true
	case 'g':
		return sim.CmdRestart, true
	case 'm':
		return sim.CmdMenu, true
	}
	return 0, false
}
