package scene

import "testing"

func cellAlpha(a *Atlas, ch rune) int {
	i := int(ch) - GlyphFirst
	col, row := i%AtlasCols, i/AtlasCols
	sum := 0
	for y := row * a.CellH; y < (row+1)*a.CellH; y++ {
		for x := col * a.CellW; x < (col+1)*a.CellW; x++ {
			sum += int(a.Pix[(y*a.W+x)*4+3])
		}
	}
	return sum
}

func TestAtlasRasterisesGlyphs(t *testing.T) {
	a := NewAtlas()
	if a.CellW != 7 || a.CellH != 13 {
		t.Fatalf("cell = %dx%d, want 7x13", a.CellW, a.CellH)
	}
	if len(a.Pix) != a.W*a.H*4 {
		t.Fatalf("pixel buffer %d bytes for %dx%d", len(a.Pix), a.W, a.H)
	}
	for _, ch := range "AGSZ09:+" {
		if cellAlpha(a, ch) == 0 {
			t.Errorf("glyph %q is blank", ch)
		}
	}
	if cellAlpha(a, ' ') != 0 {
		t.Error("space glyph has ink")
	}
}

func TestAtlasUV(t *testing.T) {
	a := NewAtlas()
	if _, _, _, _, ok := a.UV('\t'); ok {
		t.Fatal("control character mapped")
	}
	u0, v0, u1, v1, ok := a.UV(' ')
	if !ok || u0 != 0 || v0 != 0 {
		t.Fatalf("space at (%v,%v) ok=%v", u0, v0, ok)
	}
	if want := float32(a.CellW) / float32(a.W); u1 != want {
		t.Fatalf("u1 = %v, want %v", u1, want)
	}
	if want := float32(a.CellH) / float32(a.H); v1 != want {
		t.Fatalf("v1 = %v, want %v", v1, want)
	}
}

func TestTextWidthAndPlacement(t *testing.T) {
	a := NewAtlas()
	if w := a.TextWidth("ab\ncde", 2); w != 3*7*2 {
		t.Fatalf("width = %d, want %d", w, 3*7*2)
	}

	l := TextLine{Text: "SCORE", X: 0.5, Y: 0.25, Scale: 2, Anchor: AnchorCenter}
	x, y := a.Place(l, 1000, 400)
	if x != 500-35 || y != 100 {
		t.Fatalf("centred at (%d,%d)", x, y)
	}
	l.Anchor = AnchorRight
	if x, _ = a.Place(l, 1000, 400); x != 500-70 {
		t.Fatalf("right anchored at %d", x)
	}
}
