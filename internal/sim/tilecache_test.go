package sim

import (
	"errors"
	"testing"
)

func TestTileCacheMemoizes(t *testing.T) {
	tc := NewTileCache(7)
	for _, c := range []CellKey{{X: 7, Z: 3}, {X: -9, Z: -9}, {X: 2500, Z: -2500}, {X: -6, Z: 11}} {
		a, err := tc.Floors(c.X, c.Z)
		if err != nil {
			t.Fatalf("Floors(%d,%d): %v", c.X, c.Z, err)
		}
		b, _ := tc.Floors(c.X, c.Z)
		if a != b {
			t.Fatalf("Floors(%d,%d) changed between calls: %d then %d", c.X, c.Z, a, b)
		}
		if a < 1 || a > MaxFloors {
			t.Fatalf("Floors(%d,%d) = %d, want 1..%d", c.X, c.Z, a, MaxFloors)
		}
	}
	if tc.Len() != 4 {
		t.Fatalf("cache holds %d lots, want 4", tc.Len())
	}
}

func TestTileCacheCorridorStaysEmpty(t *testing.T) {
	tc := NewTileCache(7)
	for round := 0; round < 3; round++ {
		for x := -CorridorHalf; x <= CorridorHalf; x++ {
			f, err := tc.Floors(x, round*4-3)
			if err != nil {
				t.Fatalf("Floors(%d): %v", x, err)
			}
			if f != 0 {
				t.Fatalf("corridor lot x=%d has %d floors", x, f)
			}
		}
	}
	if tc.Len() != 0 {
		t.Fatalf("corridor queries stored %d lots", tc.Len())
	}
}

func TestTileCacheOutOfRange(t *testing.T) {
	tc := NewTileCache(7)
	tests := []struct {
		x, z int
	}{
		{GridLimit + 1, 0},
		{-GridLimit - 1, 0},
		{9, GridLimit + 1},
		{9, -GridLimit - 1},
	}
	for _, tt := range tests {
		if _, err := tc.Floors(tt.x, tt.z); !errors.Is(err, ErrCellOutOfRange) {
			t.Errorf("Floors(%d,%d) err = %v, want ErrCellOutOfRange", tt.x, tt.z, err)
		}
	}
}

func TestTileCacheReset(t *testing.T) {
	tc := NewTileCache(7)
	tc.Buildings(2, nil)
	if tc.Len() == 0 {
		t.Fatal("building a tile stored nothing")
	}
	tc.Reset()
	if tc.Len() != 0 {
		t.Fatalf("cache holds %d lots after reset", tc.Len())
	}
}

func TestBuildingsSkipReservedLots(t *testing.T) {
	tests := []struct {
		kind     int
		want     int
		reserved []CellKey
	}{
		{kind: 2, want: 40},
		{kind: 3, want: 37, reserved: []CellKey{{X: -9, Z: -7}, {X: -9, Z: -5}, {X: -9, Z: -3}}},
		{kind: 5, want: 37, reserved: []CellKey{{X: 9, Z: 3}, {X: 9, Z: 5}, {X: 9, Z: 7}}},
	}
	for _, tt := range tests {
		tc := NewTileCache(11)
		got := tc.Buildings(tt.kind, nil)
		if len(got) != tt.want {
			t.Errorf("kind %d: %d buildings, want %d", tt.kind, len(got), tt.want)
		}
		for _, b := range got {
			if InCorridor(b.GridX) {
				t.Errorf("kind %d: building in corridor at %d", tt.kind, b.GridX)
			}
			for _, r := range tt.reserved {
				if b.GridX == r.X && b.GridZ == r.Z {
					t.Errorf("kind %d: building on reserved lot %v", tt.kind, r)
				}
			}
		}
	}
}

func TestFloorColorWrapsNegativeLots(t *testing.T) {
	got := FloorColor(-1, -1, 0)
	want := RGB{R: buildingRed[9], G: buildingGreen[9], B: buildingBlue[0]}
	if got != want {
		t.Fatalf("FloorColor(-1,-1,0) = %+v, want %+v", got, want)
	}
	if FloorColor(3, 13, 11) != FloorColor(13, 3, 1) {
		t.Fatal("palette index is not taken modulo the palette size")
	}
}
