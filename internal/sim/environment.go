package sim

import "fmt"

// NumKinds is the size of the environment table; valid kinds are 0..NumKinds-1.
const NumKinds = 7

// Ring offsets per environment kind, relative to the tile origin.
var (
	ringX = [NumKinds]float64{1.0, -2.0, 3.0, -4.0, -2.0, 0.0, 2.0}
	ringY = [NumKinds]float64{2.0, 3.0, 10.0, 6.0, 7.0, 4.0, 1.0}
)

type DecorationKind uint8

const (
	DecorRadioTower DecorationKind = iota
	DecorParliament
)

// Decoration is a fixed set piece placed in tile-local coordinates.
type Decoration struct {
	Kind  DecorationKind
	Pos   Vec3
	Scale float64
}

// lotRect is an open rectangle of grid lots: X0 < x < X1 && Z0 < z < Z1.
type lotRect struct {
	X0, X1, Z0, Z1 int
	set            bool
}

func (r lotRect) contains(x, z int) bool {
	return r.set && x > r.X0 && x < r.X1 && z > r.Z0 && z < r.Z1
}

// EnvironmentConfig is everything a tile's kind decides: where its ring
// hangs, which landmarks decorate it and which lots they occupy.
type EnvironmentConfig struct {
	Kind        int
	RingX       float64
	RingY       float64
	Decorations []Decoration
	reserved    lotRect
}

// Reserved reports whether a lot is taken by one of the kind's landmarks.
func (e EnvironmentConfig) Reserved(gridX, gridZ int) bool {
	return e.reserved.contains(gridX, gridZ)
}

// ValidKind reports whether kind indexes the environment table.
func ValidKind(kind int) bool { return kind >= 0 && kind < NumKinds }

// Environment returns the configuration for a kind. An unknown kind is a
// programming error and panics.
func Environment(kind int) EnvironmentConfig {
	if !ValidKind(kind) {
		panic(fmt.Sprintf("sim: invalid environment kind %d", kind))
	}
	cfg := EnvironmentConfig{Kind: kind, RingX: ringX[kind], RingY: ringY[kind]}

	switch kind {
	case 1:
		// Broadcast district: a tower on each side of the corridor.
		cfg.Decorations = []Decoration{
			{Kind: DecorRadioTower, Pos: Vec3{X: -15, Y: 0.15, Z: -8}, Scale: 1.2},
			{Kind: DecorRadioTower, Pos: Vec3{X: 15, Y: 0.15, Z: 6}, Scale: 1.0},
		}
	case 2:
		cfg.Decorations = []Decoration{
			{Kind: DecorRadioTower, Pos: Vec3{X: -14, Y: 0.15, Z: 5}, Scale: 1.3},
		}
	case 3:
		// Parliament on the left; its footprint is kept free of houses.
		cfg.Decorations = []Decoration{
			{Kind: DecorParliament, Pos: Vec3{X: -12, Y: 0.15, Z: -6}, Scale: 0.8},
		}
		cfg.reserved = lotRect{X0: -LotMax - 1, X1: -8, Z0: -8, Z1: -2, set: true}
	case 4:
		cfg.Decorations = []Decoration{
			{Kind: DecorRadioTower, Pos: Vec3{X: 14, Y: 0.15, Z: -5}, Scale: 1.5},
		}
	case 5:
		cfg.Decorations = []Decoration{
			{Kind: DecorParliament, Pos: Vec3{X: 12, Y: 0.15, Z: 5}, Scale: 0.7},
			{Kind: DecorRadioTower, Pos: Vec3{X: -14, Y: 0.15, Z: -3}, Scale: 1.0},
		}
		cfg.reserved = lotRect{X0: 8, X1: LotMax + 1, Z0: 2, Z1: 8, set: true}
	}
	return cfg
}

// Memorials are the twin monuments of the landmark tile, mirrored across the corridor.
var Memorials = [2]struct {
	Pos   Vec3
	Yaw   float64 // degrees about +Y
	Scale float64
}{
	{Pos: Vec3{X: -8, Y: -2.7, Z: -5}, Yaw: 65, Scale: 2},
	{Pos: Vec3{X: 8, Y: -2.7, Z: -5}, Yaw: -65, Scale: 2},
}
