package sim

// Vehicle drives along the tile's cross road. Every tile shows the same
// traffic in its local coordinates.
type Vehicle struct {
	X     float64
	Lane  float64 // local Z of the lane
	Dir   float64 // +1 or -1 along X
	Speed float64
	Col   RGB
}

type TrafficSystem struct {
	Cars []Vehicle
	seed uint64
}

func NewTrafficSystem(seed uint64) *TrafficSystem {
	if seed == 0 {
		seed = 1
	}
	ts := &TrafficSystem{
		Cars: make([]Vehicle, 0, NumVehicles),
		seed: seed,
	}
	ts.SpawnRandom(seed, NumVehicles)
	return ts
}

// SpawnRandom replaces the fleet with n cars alternating between the two lanes.
func (ts *TrafficSystem) SpawnRandom(seed uint64, n int) {
	ts.seed = seed ^ 0xCAFE5EED
	r := NewRand(ts.seed)
	ts.Cars = ts.Cars[:0]
	for i := 0; i < n; i++ {
		v := Vehicle{
			X:     r.RangeF(-18, 18),
			Speed: r.RangeF(0.03, 0.08),
			Col:   VehicleColors[r.Intn(len(VehicleColors))],
		}
		if i%2 == 0 {
			v.Lane, v.Dir = -0.5, 1
		} else {
			v.Lane, v.Dir = 0.5, -1
		}
		ts.Cars = append(ts.Cars, v)
	}
}

// Update drives each car one frame and wraps it at the road ends.
func (ts *TrafficSystem) Update() {
	for i := range ts.Cars {
		c := &ts.Cars[i]
		c.X += c.Dir * c.Speed
		if c.X > RoadHalfLen {
			c.X = -RoadHalfLen
		} else if c.X < -RoadHalfLen {
			c.X = RoadHalfLen
		}
	}
}

type Tree struct {
	Pos   Vec3
	Scale float64
}

// TreeField plants trees along both verges, clear of the flight corridor.
type TreeField struct {
	Trees []Tree
}

func NewTreeField(seed uint64) *TreeField {
	tf := &TreeField{Trees: make([]Tree, 0, NumTrees)}
	tf.Generate(seed)
	return tf
}

func (tf *TreeField) Generate(seed uint64) {
	r := NewRand(seed ^ 0x7EE5EED)
	tf.Trees = tf.Trees[:0]
	for i := 0; i < NumTrees; i++ {
		side := 1.0
		if r.Intn(2) == 0 {
			side = -1
		}
		tf.Trees = append(tf.Trees, Tree{
			Pos: Vec3{
				X: side * r.RangeF(6, 18),
				Y: 0.15,
				Z: r.RangeF(-18, 18),
			},
			Scale: r.RangeF(0.8, 1.5),
		})
	}
}
