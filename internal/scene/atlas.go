package scene

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII, laid out in a fixed grid.
const (
	GlyphFirst = 32
	GlyphLast  = 126
	AtlasCols  = 16
)

// Atlas is an RGBA glyph sheet rasterised from the built-in 7x13 bitmap
// face. Glyph pixels are opaque white so the text shader can tint them.
type Atlas struct {
	Pix          []byte
	W, H         int
	CellW, CellH int
}

func NewAtlas() *Atlas {
	face := basicfont.Face7x13
	cellW, cellH := face.Advance, face.Height
	n := GlyphLast - GlyphFirst + 1
	rows := (n + AtlasCols - 1) / AtlasCols

	img := image.NewRGBA(image.Rect(0, 0, AtlasCols*cellW, rows*cellH))
	d := font.Drawer{Dst: img, Src: image.White, Face: face}
	for c := GlyphFirst; c <= GlyphLast; c++ {
		i := c - GlyphFirst
		col, row := i%AtlasCols, i/AtlasCols
		d.Dot = fixed.P(col*cellW, row*cellH+face.Ascent)
		d.DrawString(string(rune(c)))
	}
	return &Atlas{
		Pix:   img.Pix,
		W:     img.Rect.Dx(),
		H:     img.Rect.Dy(),
		CellW: cellW,
		CellH: cellH,
	}
}

// UV returns the texture rectangle of a glyph.
func (a *Atlas) UV(ch rune) (u0, v0, u1, v1 float32, ok bool) {
	if ch < GlyphFirst || ch > GlyphLast {
		return 0, 0, 0, 0, false
	}
	i := int(ch) - GlyphFirst
	col, row := i%AtlasCols, i/AtlasCols
	u0 = float32(col*a.CellW) / float32(a.W)
	v0 = float32(row*a.CellH) / float32(a.H)
	u1 = float32((col+1)*a.CellW) / float32(a.W)
	v1 = float32((row+1)*a.CellH) / float32(a.H)
	return u0, v0, u1, v1, true
}

// TextWidth returns the width in pixels of the widest line at scale.
func (a *Atlas) TextWidth(text string, scale float32) int {
	lineLen, maxLen := 0, 0
	for _, ch := range text {
		if ch == '\n' {
			maxLen = max(maxLen, lineLen)
			lineLen = 0
			continue
		}
		lineLen++
	}
	maxLen = max(maxLen, lineLen)
	return int(float32(maxLen*a.CellW) * scale)
}

// Place converts a HUD line to a top-left pixel position on a framebuffer.
func (a *Atlas) Place(l TextLine, fbW, fbH int) (int, int) {
	x := int(l.X * float32(fbW))
	y := int(l.Y * float32(fbH))
	switch l.Anchor {
	case AnchorCenter:
		x -= a.TextWidth(l.Text, l.Scale) / 2
	case AnchorRight:
		x -= a.TextWidth(l.Text, l.Scale)
	}
	return x, y
}
