package sim

type Cloud struct {
	Pos   Vec3
	Scale float64
}

// CloudField scrolls clouds with the world and respawns them far ahead.
type CloudField struct {
	Clouds []Cloud
	seed   uint64
	rng    *Rand
}

func NewCloudField(seed uint64) *CloudField {
	if seed == 0 {
		seed = 1
	}
	cf := &CloudField{
		Clouds: make([]Cloud, 0, NumClouds),
		seed:   seed,
	}
	cf.Configure(seed)
	return cf
}

// Configure scatters a fresh set of clouds along the travel axis.
func (cf *CloudField) Configure(seed uint64) {
	if seed == 0 {
		seed = 1
	}
	cf.seed = seed ^ 0xC10D5EED
	cf.rng = NewRand(cf.seed)
	cf.Clouds = cf.Clouds[:0]
	for i := 0; i < NumClouds; i++ {
		cf.Clouds = append(cf.Clouds, Cloud{
			Pos: Vec3{
				X: cf.rng.RangeF(-50, 50),
				Y: cf.rng.RangeF(18, 50),
				Z: -10.0 - float64(i)*5.0,
			},
			Scale: cf.rng.RangeF(1.5, 6.0),
		})
	}
}

// Advance moves clouds toward the camera; clouds that pass it are respawned
// at CloudResetZ with a new shape.
func (cf *CloudField) Advance(speed float64) {
	for i := range cf.Clouds {
		c := &cf.Clouds[i]
		c.Pos.Z += speed
		if c.Pos.Z < TileRecycleZ {
			continue
		}
		c.Pos = Vec3{
			X: cf.rng.RangeF(-40, 40),
			Y: cf.rng.RangeF(20, 45),
			Z: CloudResetZ,
		}
		c.Scale = cf.rng.RangeF(2.0, 5.0)
	}
}
