package sim

// Tile is one recyclable world segment along the travel axis.
type Tile struct {
	Z        float64
	Kind     int  // environment kind; unused for the landmark tile
	Landmark bool // one-shot segment, retired instead of recycled
	Retired  bool
	Passed   bool // this tile's ring has been flown through
}

// Active reports whether the tile still scrolls and is drawn.
func (t *Tile) Active() bool { return !t.Retired }

type tileLayout struct {
	z        float64
	kind     int
	landmark bool
}

// initialLayout staggers the tiles behind the plane. The cyclic kind order
// is data so new environments only need a row here.
var initialLayout = [...]tileLayout{
	{z: -8, kind: 2},
	{z: -20, landmark: true},
	{z: -40, kind: 3},
	{z: -60, kind: 1},
	{z: -80, kind: 5},
	{z: -100, kind: 4},
	{z: -120, kind: 2},
}

// AdvanceResult reports what one Advance call changed.
type AdvanceResult struct {
	Recycled        []int // indices of tiles reset to TileResetZ
	LandmarkRetired bool
}

// ScrollingWorld simulates endless forward travel with a fixed set of tiles.
type ScrollingWorld struct {
	Tiles []Tile

	landmarkPassed bool
	recycled       []int
}

func NewScrollingWorld() *ScrollingWorld {
	w := &ScrollingWorld{
		Tiles:    make([]Tile, len(initialLayout)),
		recycled: make([]int, 0, len(initialLayout)),
	}
	w.Reset()
	return w
}

// Reset restores the starting layout and brings the landmark back.
func (w *ScrollingWorld) Reset() {
	w.Tiles = w.Tiles[:0]
	for _, l := range initialLayout {
		w.Tiles = append(w.Tiles, Tile{Z: l.z, Kind: l.kind, Landmark: l.landmark})
	}
	w.landmarkPassed = false
}

// Advance moves every active tile forward by speed, then recycles regular
// tiles that reached TileRecycleZ and retires the landmark tile.
// The returned slice is reused by the next call.
func (w *ScrollingWorld) Advance(speed float64) AdvanceResult {
	w.recycled = w.recycled[:0]
	res := AdvanceResult{}
	for i := range w.Tiles {
		t := &w.Tiles[i]
		if t.Retired {
			continue
		}
		t.Z += speed
		if t.Z < TileRecycleZ {
			continue
		}
		if t.Landmark {
			t.Retired = true
			w.landmarkPassed = true
			res.LandmarkRetired = true
			continue
		}
		t.Z = TileResetZ
		t.Passed = false
		w.recycled = append(w.recycled, i)
	}
	res.Recycled = w.recycled
	return res
}

// LandmarkPassed reports whether the landmark tile has been retired.
func (w *ScrollingWorld) LandmarkPassed() bool { return w.landmarkPassed }

// TileByKind returns the first active regular tile of a kind, or nil.
func (w *ScrollingWorld) TileByKind(kind int) *Tile {
	for i := range w.Tiles {
		t := &w.Tiles[i]
		if !t.Landmark && !t.Retired && t.Kind == kind {
			return t
		}
	}
	return nil
}
