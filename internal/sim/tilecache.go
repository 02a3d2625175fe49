package sim

import (
	"errors"
	"fmt"
)

// ErrCellOutOfRange is returned for grid cells beyond ±GridLimit.
var ErrCellOutOfRange = errors.New("grid cell out of range")

// CellKey addresses one city lot.
type CellKey struct {
	X, Z int
}

// TileCache memoizes the floor count of every lot visited so a recycled tile
// shows the same skyline each time it scrolls back into view.
type TileCache struct {
	seed  uint64
	rng   *Rand
	lots  map[CellKey]uint8
	limit int
}

func NewTileCache(seed uint64) *TileCache {
	if seed == 0 {
		seed = 1
	}
	return &TileCache{
		seed:  seed,
		rng:   NewRand(seed ^ 0x7011A5EED),
		lots:  make(map[CellKey]uint8, 64),
		limit: GridLimit,
	}
}

// InCorridor reports whether gridX lies in the flight path, which is never built on.
func InCorridor(gridX int) bool {
	return gridX >= -CorridorHalf && gridX <= CorridorHalf
}

// Floors returns the building height on a lot, 0 for an empty lot.
// Corridor lots always read 0 and are never stored.
func (tc *TileCache) Floors(gridX, gridZ int) (int, error) {
	if gridX < -tc.limit || gridX > tc.limit || gridZ < -tc.limit || gridZ > tc.limit {
		return 0, fmt.Errorf("floors at (%d,%d): %w", gridX, gridZ, ErrCellOutOfRange)
	}
	if InCorridor(gridX) {
		return 0, nil
	}
	key := CellKey{X: gridX, Z: gridZ}
	if f, ok := tc.lots[key]; ok {
		return int(f), nil
	}
	f := uint8(tc.rng.Range(1, MaxFloors))
	tc.lots[key] = f
	return int(f), nil
}

// Len returns the number of memoized lots.
func (tc *TileCache) Len() int { return len(tc.lots) }

// Reset forgets every lot; the next visit draws new heights.
func (tc *TileCache) Reset() {
	clear(tc.lots)
	tc.seed = splitmix64(tc.seed)
	tc.rng = NewRand(tc.seed ^ 0x7011A5EED)
}

// Building is one built lot of a tile.
type Building struct {
	GridX, GridZ int
	Floors       int
}

// Buildings appends the built lots of a tile of the given kind to out.
// Lots reserved for that kind's landmarks are skipped.
func (tc *TileCache) Buildings(kind int, out []Building) []Building {
	env := Environment(kind)
	for i := LotMin; i < LotMax; i += LotStep {
		for j := LotMin; j < LotMax; j += LotStep {
			if env.Reserved(i, j) {
				continue
			}
			f, err := tc.Floors(i, j)
			if err != nil || f == 0 {
				continue
			}
			out = append(out, Building{GridX: i, GridZ: j, Floors: f})
		}
	}
	return out
}
