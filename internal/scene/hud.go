package scene

import (
	"strconv"

	"planegame/internal/sim"
)

type Anchor int

const (
	AnchorLeft Anchor = iota
	AnchorCenter
	AnchorRight
)

// TextLine is one HUD string. X and Y are fractions of the framebuffer,
// measured from the top-left; Anchor says which edge of the text sits at X.
type TextLine struct {
	Text   string
	X, Y   float32
	Scale  float32
	Color  sim.RGB
	Anchor Anchor
}

const (
	TextSmall = 1.5
	TextBody  = 2
	TextLarge = 4
)

const ControlsHint = "ARROW KEYS: Move Plane, +/- or Mouse Wheel: Zoom, SPACE: Pause, MAIN MENU: M"

var (
	hudWhite  = sim.RGB{R: 255, G: 255, B: 255}
	hudYellow = sim.RGB{R: 255, G: 255, B: 100}
	hudRed    = sim.RGB{R: 255, G: 80, B: 80}
	hudGreen  = sim.RGB{R: 100, G: 255, B: 100}
)

// HUD appends the overlay text for the snapshot's mode.
func HUD(snap *sim.Snapshot, out []TextLine) []TextLine {
	timeStr := "TIME : " + strconv.Itoa(snap.Seconds)
	scoreStr := "SCORE : " + strconv.FormatUint(uint64(snap.Score), 10)

	switch snap.Mode {
	case sim.ModeMenu:
		out = append(out,
			TextLine{Text: "Plane Game", X: 0.5, Y: 0.62, Scale: TextLarge, Color: hudGreen, Anchor: AnchorCenter},
			TextLine{Text: "Press G to Start", X: 0.5, Y: 0.75, Scale: TextBody, Color: hudWhite, Anchor: AnchorCenter},
		)

	case sim.ModeRunning:
		out = append(out,
			TextLine{Text: ControlsHint, X: 0.5, Y: 0.02, Scale: TextSmall, Color: hudWhite, Anchor: AnchorCenter},
			TextLine{Text: timeStr, X: 0.97, Y: 0.08, Scale: TextBody, Color: hudWhite, Anchor: AnchorRight},
			TextLine{Text: scoreStr, X: 0.97, Y: 0.13, Scale: TextBody, Color: hudYellow, Anchor: AnchorRight},
		)
		if snap.Paused {
			out = append(out, TextLine{Text: "PAUSED", X: 0.5, Y: 0.3, Scale: TextLarge, Color: hudYellow, Anchor: AnchorCenter})
		}

	case sim.ModeGameOver:
		out = append(out,
			TextLine{Text: "GAME OVER", X: 0.5, Y: 0.6, Scale: TextLarge, Color: hudRed, Anchor: AnchorCenter},
			TextLine{Text: "Press G to Restart or M for Main Menu", X: 0.5, Y: 0.7, Scale: TextBody, Color: hudWhite, Anchor: AnchorCenter},
			TextLine{Text: timeStr, X: 0.5, Y: 0.77, Scale: TextBody, Color: hudWhite, Anchor: AnchorCenter},
			TextLine{Text: scoreStr, X: 0.5, Y: 0.82, Scale: TextBody, Color: hudYellow, Anchor: AnchorCenter},
		)
	}
	return out
}
