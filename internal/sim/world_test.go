package sim

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestScrollingWorldLayout(t *testing.T) {
	w := NewScrollingWorld()
	wantZ := []float64{-8, -20, -40, -60, -80, -100, -120}
	wantKind := []int{2, 0, 3, 1, 5, 4, 2}
	if len(w.Tiles) != len(wantZ) {
		t.Fatalf("%d tiles, want %d", len(w.Tiles), len(wantZ))
	}
	for i, tile := range w.Tiles {
		if tile.Z != wantZ[i] {
			t.Errorf("tile %d Z = %v, want %v", i, tile.Z, wantZ[i])
		}
		if tile.Landmark != (i == 1) {
			t.Errorf("tile %d landmark = %v", i, tile.Landmark)
		}
		if !tile.Landmark && tile.Kind != wantKind[i] {
			t.Errorf("tile %d kind = %d, want %d", i, tile.Kind, wantKind[i])
		}
	}
}

func TestAdvanceRecyclesAtThreshold(t *testing.T) {
	w := NewScrollingWorld()
	w.Tiles[0].Z = 19.5
	w.Tiles[0].Passed = true

	res := w.Advance(0.7)
	if got := w.Tiles[0].Z; got != TileResetZ {
		t.Fatalf("tile 0 Z = %v, want %v", got, TileResetZ)
	}
	if w.Tiles[0].Passed {
		t.Fatal("recycled tile kept its passed flag")
	}
	if len(res.Recycled) != 1 || res.Recycled[0] != 0 {
		t.Fatalf("recycled = %v, want [0]", res.Recycled)
	}
	if got := w.Tiles[2].Z; math.Abs(got-(-39.3)) > eps {
		t.Fatalf("tile 2 Z = %v, want -39.3", got)
	}
}

func TestAdvanceStepsEveryTileUntilWrap(t *testing.T) {
	w := NewScrollingWorld()
	w.Tiles[1].Retired = true // keep the landmark out of the property
	speeds := []float64{InitialSpeed, 0.45, MaxSpeed}
	for _, speed := range speeds {
		for step := 0; step < 600; step++ {
			prev := make([]float64, len(w.Tiles))
			for i := range w.Tiles {
				prev[i] = w.Tiles[i].Z
			}
			w.Advance(speed)
			for i, tile := range w.Tiles {
				if tile.Landmark {
					continue
				}
				moved := prev[i] + speed
				switch {
				case moved >= TileRecycleZ:
					if tile.Z != TileResetZ {
						t.Fatalf("speed %v step %d: tile %d at %v should wrap, got %v", speed, step, i, moved, tile.Z)
					}
				case math.Abs(tile.Z-moved) > eps:
					t.Fatalf("speed %v step %d: tile %d Z = %v, want %v", speed, step, i, tile.Z, moved)
				}
				if tile.Z >= TileRecycleZ {
					t.Fatalf("tile %d left at %v after advance", i, tile.Z)
				}
			}
		}
	}
}

func TestLandmarkRetiresOnce(t *testing.T) {
	w := NewScrollingWorld()
	w.Tiles[1].Z = 19.9

	res := w.Advance(0.4)
	lm := w.Tiles[1]
	if !res.LandmarkRetired || !w.LandmarkPassed() || !lm.Retired {
		t.Fatalf("landmark not retired: res=%+v tile=%+v", res, lm)
	}
	if math.Abs(lm.Z-20.3) > eps {
		t.Fatalf("landmark Z = %v, want 20.3", lm.Z)
	}

	for i := 0; i < 50; i++ {
		if w.Advance(0.4).LandmarkRetired {
			t.Fatal("landmark retired twice")
		}
	}
	if w.Tiles[1].Z != lm.Z {
		t.Fatalf("retired landmark moved to %v", w.Tiles[1].Z)
	}

	w.Reset()
	if w.LandmarkPassed() || w.Tiles[1].Retired || w.Tiles[1].Z != -20 {
		t.Fatalf("reset did not restore landmark: %+v", w.Tiles[1])
	}
}

func TestSpeedNeverSkipsPassWindow(t *testing.T) {
	if MaxSpeed > PassWindow {
		t.Fatalf("MaxSpeed %v exceeds pass window %v", MaxSpeed, PassWindow)
	}
}

func TestCloudsRespawnAhead(t *testing.T) {
	cf := NewCloudField(3)
	if len(cf.Clouds) != NumClouds {
		t.Fatalf("%d clouds, want %d", len(cf.Clouds), NumClouds)
	}
	cf.Clouds[0].Pos.Z = 19.8
	cf.Advance(0.5)
	c := cf.Clouds[0]
	if c.Pos.Z != CloudResetZ {
		t.Fatalf("cloud Z = %v, want %v", c.Pos.Z, CloudResetZ)
	}
	if c.Pos.Y < 20 || c.Pos.Y > 45 || c.Scale < 2 || c.Scale > 5 {
		t.Fatalf("respawned cloud out of range: %+v", c)
	}
}

func TestTrafficWrapsAtRoadEnds(t *testing.T) {
	ts := NewTrafficSystem(5)
	if len(ts.Cars) != NumVehicles {
		t.Fatalf("%d cars, want %d", len(ts.Cars), NumVehicles)
	}
	for i, c := range ts.Cars {
		wantLane, wantDir := -0.5, 1.0
		if i%2 == 1 {
			wantLane, wantDir = 0.5, -1
		}
		if c.Lane != wantLane || c.Dir != wantDir {
			t.Fatalf("car %d lane=%v dir=%v", i, c.Lane, c.Dir)
		}
	}

	ts.Cars[0].X = RoadHalfLen - 0.01
	ts.Cars[1].X = -RoadHalfLen + 0.01
	ts.Update()
	if ts.Cars[0].X != -RoadHalfLen {
		t.Fatalf("eastbound car at %v, want %v", ts.Cars[0].X, -RoadHalfLen)
	}
	if ts.Cars[1].X != RoadHalfLen {
		t.Fatalf("westbound car at %v, want %v", ts.Cars[1].X, RoadHalfLen)
	}
}

func TestTreesAvoidCorridor(t *testing.T) {
	tf := NewTreeField(9)
	if len(tf.Trees) != NumTrees {
		t.Fatalf("%d trees, want %d", len(tf.Trees), NumTrees)
	}
	for _, tr := range tf.Trees {
		if x := math.Abs(tr.Pos.X); x < 6 || x > 18 {
			t.Fatalf("tree at x=%v inside corridor or off tile", tr.Pos.X)
		}
	}
}
