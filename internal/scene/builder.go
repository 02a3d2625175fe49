package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"planegame/internal/sim"
)

var pal = &sim.Palette

// Sun placement in view space; it sits behind everything and ignores zoom.
var sunPos = mgl32.Vec3{80, 120, -400}

// Builder turns a session snapshot into mesh instances.
type Builder struct {
	x    xform
	f    *Frame
	lots []sim.Building
	// wall seconds, drives blinking beacons and the sun pulse
	now float64
}

func NewBuilder() *Builder {
	return &Builder{lots: make([]sim.Building, 0, 128)}
}

// Build fills f for one frame. city is queried lazily, so lots first seen
// this frame are generated here.
func (b *Builder) Build(f *Frame, snap *sim.Snapshot, city *sim.TileCache, aspect float32) {
	f.Reset()
	b.f = f
	b.now = snap.Wall

	f.Proj = Projection(aspect)
	f.View = View()
	f.Eye = Eye
	f.SkyTop = colorVec3(pal.SkyZenith)
	f.SkyBottom = colorVec3(pal.SkyHorizon)

	switch snap.Mode {
	case sim.ModeRunning:
		b.sun()
		b.clouds(snap.Clouds)
		b.x.load(SceneRoot(snap.Zoom, snap.SpinDegrees))
		b.flight(snap, city)
	case sim.ModeGameOver:
		b.showcase(2, snap.ShowcaseDegrees)
	default:
		b.showcase(3, snap.ShowcaseDegrees)
	}
	f.Text = HUD(snap, f.Text)
}

func (b *Builder) lit(mesh MeshID, c sim.RGB) {
	b.f.Lit[mesh] = append(b.f.Lit[mesh], Instance{Model: b.x.top(), Color: colorVec(c, 1)})
}

func (b *Builder) unlit(mesh MeshID, c sim.RGB) {
	b.f.Unlit[mesh] = append(b.f.Unlit[mesh], Instance{Model: b.x.top(), Color: colorVec(c, 1)})
}

func (b *Builder) glow(c sim.RGB, alpha float32) {
	b.f.Glow = append(b.f.Glow, Instance{Model: b.x.top(), Color: colorVec(c, alpha)})
}

// box draws a lit cube at (x,y,z) with the given size.
func (b *Builder) box(c sim.RGB, x, y, z, sx, sy, sz float64) {
	b.x.push()
	b.x.translate(x, y, z)
	b.x.scale(sx, sy, sz)
	b.lit(MeshCube, c)
	b.x.pop()
}

func (b *Builder) ball(c sim.RGB, x, y, z, sx, sy, sz float64) {
	b.x.push()
	b.x.translate(x, y, z)
	b.x.scale(sx, sy, sz)
	b.lit(MeshSphere, c)
	b.x.pop()
}

// showcase is the menu and game over backdrop: the plane turning in place.
func (b *Builder) showcase(lift, deg float64) {
	b.sun()
	b.x.load(mgl32.Ident4())
	b.x.translate(0, lift, 0)
	b.x.rotateY(deg)
	b.x.uniform(1.5)
	b.planeModel()
}

func (b *Builder) sun() {
	pulse := 0.15*math.Sin(b.now*2) + 1
	b.x.load(mgl32.Translate3D(sunPos[0], sunPos[1], sunPos[2]))
	halo := [...]struct {
		r     float64
		c     sim.RGB
		alpha float32
	}{
		{45 * pulse, sim.RGB{R: 255, G: 217, B: 77}, 0.03},
		{28 * pulse, sim.RGB{R: 255, G: 166, B: 26}, 0.08},
		{16 * pulse, sim.RGB{R: 255, G: 230, B: 102}, 0.2},
		{10, sim.RGB{R: 255, G: 242, B: 179}, 0.5},
	}
	for _, h := range halo {
		b.x.push()
		b.x.uniform(h.r)
		b.glow(h.c, h.alpha)
		b.x.pop()
	}
	b.x.push()
	b.x.uniform(6)
	b.unlit(MeshSphere, pal.SunCore)
	b.x.pop()
}

func (b *Builder) clouds(clouds []sim.Cloud) {
	puffs := [...][4]float64{
		{0, 0, 0, 1},
		{-0.8, 0.1, 0, 0.7},
		{0.9, 0.15, 0, 0.75},
		{0.2, 0.5, 0, 0.6},
		{-0.3, 0, 0.5, 0.55},
		{0.4, 0.2, -0.4, 0.5},
	}
	b.x.load(mgl32.Ident4())
	for _, c := range clouds {
		b.x.push()
		b.x.translate(c.Pos.X, c.Pos.Y, c.Pos.Z)
		b.x.scale(c.Scale, c.Scale*0.6, c.Scale)
		for _, p := range puffs {
			b.x.push()
			b.x.translate(p[0], p[1], p[2])
			b.x.uniform(p[3])
			b.unlit(MeshSphere, pal.Cloud)
			b.x.pop()
		}
		b.x.pop()
	}
}

// flight draws the running game under the scene root already on the stack.
func (b *Builder) flight(snap *sim.Snapshot, city *sim.TileCache) {
	p := snap.Pose
	b.x.push()
	b.x.translate(sim.PlaneOrigin.X, sim.PlaneOrigin.Y, sim.PlaneOrigin.Z)
	b.x.rotateY(90)
	b.x.rotateZ(5)
	b.x.rotateX(p.RotX)
	b.x.rotateY(p.RotY)
	b.x.rotateZ(p.RotZ)
	b.x.uniform(0.4)
	b.planeModel()
	b.x.pop()

	for i := range snap.Tiles {
		t := &snap.Tiles[i]
		if !t.Active() {
			continue
		}
		b.x.push()
		b.x.translate(p.TX, p.TY, t.Z)
		if t.Landmark {
			if snap.LandmarkVisible {
				b.memorialTile()
			}
		} else {
			b.environment(t.Kind, snap, city)
		}
		b.x.pop()
	}
}

func (b *Builder) ground(c sim.RGB) {
	b.box(c, 0, 0, 0, sim.TileSize*2, 0.3, sim.TileSize*2)
}

func (b *Builder) memorialTile() {
	b.ground(pal.Memorial)
	for _, m := range sim.Memorials {
		b.x.push()
		b.x.translate(m.Pos.X, m.Pos.Y, m.Pos.Z)
		b.x.rotateY(m.Yaw)
		b.x.uniform(m.Scale)
		b.memorial()
		b.x.pop()
	}
}

func (b *Builder) environment(kind int, snap *sim.Snapshot, city *sim.TileCache) {
	env := sim.Environment(kind)
	b.ground(pal.Grass)
	b.roads()

	b.x.push()
	b.x.translate(env.RingX, env.RingY, 0)
	b.x.uniform(0.3)
	b.lit(MeshTorus, pal.Ring)
	b.x.pop()

	for i := range snap.Vehicles {
		b.vehicle(&snap.Vehicles[i])
	}
	for _, t := range snap.Trees {
		b.tree(t)
	}
	for _, d := range env.Decorations {
		b.x.push()
		b.x.translate(d.Pos.X, d.Pos.Y, d.Pos.Z)
		b.x.uniform(d.Scale)
		switch d.Kind {
		case sim.DecorRadioTower:
			b.radioTower()
		case sim.DecorParliament:
			b.parliament()
		}
		b.x.pop()
	}

	b.lots = city.Buildings(kind, b.lots[:0])
	for _, h := range b.lots {
		b.x.push()
		b.x.translate(float64(h.GridX), 0, float64(h.GridZ))
		b.house(h)
		b.x.pop()
	}
}

func (b *Builder) roads() {
	const size = sim.TileSize
	b.box(pal.Asphalt, 0, 0.16, 0, size*2, 0.02, 2)
	for i := -size; i < size; i += 3 {
		b.box(pal.RoadLine, float64(i), 0.17, 0, 1.5, 0.01, 0.1)
	}
	b.box(pal.Asphalt, -10, 0.16, 0, 1.5, 0.02, size*2)
	b.box(pal.Asphalt, 10, 0.16, 0, 1.5, 0.02, size*2)
}

// house stacks unit floors, each with a dark window band through both axes.
func (b *Builder) house(h sim.Building) {
	for f := 0; f < h.Floors; f++ {
		y := 0.8 + float64(f)
		b.box(sim.FloorColor(h.GridX, h.GridZ, f), 0, y, 0, 1, 1, 1)
		b.box(pal.Window, 0.2, y, 0, 0.3, 0.3, 1.001)
		b.box(pal.Window, -0.2, y, 0, 0.3, 0.3, 1.001)
		b.box(pal.Window, 0, y, 0.2, 1.001, 0.3, 0.3)
		b.box(pal.Window, 0, y, -0.2, 1.001, 0.3, 0.3)
	}
}

func (b *Builder) vehicle(v *sim.Vehicle) {
	b.x.push()
	b.x.translate(v.X, 0.35, v.Lane)
	if v.Dir > 0 {
		b.x.rotateY(90)
	} else {
		b.x.rotateY(-90)
	}
	b.box(v.Col, 0, 0, 0, 0.5, 0.25, 0.8)
	b.box(v.Col.Mul(204), 0, 0.18, -0.05, 0.4, 0.2, 0.5)
	glass := sim.RGB{R: 26, G: 26, B: 38}
	b.box(glass, 0.21, 0.18, -0.05, 0.01, 0.15, 0.4)
	b.box(glass, -0.21, 0.18, -0.05, 0.01, 0.15, 0.4)
	tyre := sim.RGB{R: 26, G: 26, B: 26}
	for _, w := range [...][3]float64{{0.2, -0.1, 0.25}, {0.2, -0.1, -0.25}, {-0.2, -0.1, 0.25}, {-0.2, -0.1, -0.25}} {
		b.ball(tyre, w[0], w[1], w[2], 0.1, 0.1, 0.08)
	}
	head := sim.RGB{R: 255, G: 255, B: 204}
	tail := sim.RGB{R: 230, G: 26, B: 26}
	b.box(head, 0.15, 0, 0.4, 0.08, 0.08, 0.02)
	b.box(head, -0.15, 0, 0.4, 0.08, 0.08, 0.02)
	b.box(tail, 0.15, 0, -0.4, 0.08, 0.06, 0.02)
	b.box(tail, -0.15, 0, -0.4, 0.08, 0.06, 0.02)
	b.x.pop()
}

func (b *Builder) tree(t sim.Tree) {
	b.x.push()
	b.x.translate(t.Pos.X, t.Pos.Y, t.Pos.Z)
	b.x.uniform(t.Scale)
	b.box(pal.Trunk, 0, 0.4, 0, 0.15, 0.8, 0.15)
	layers := [...]struct{ y, r, h float64 }{
		{0.7, 0.6, 0.8},
		{1.1, 0.5, 0.7},
		{1.5, 0.35, 0.6},
	}
	for i, l := range layers {
		b.x.push()
		b.x.translate(0, l.y, 0)
		b.x.scale(l.r, l.h, l.r)
		b.lit(MeshCone, pal.Foliage[i])
		b.x.pop()
	}
	b.x.pop()
}

func (b *Builder) planeModel() {
	b.ball(pal.PlaneBody, 0, 0, 0, 3, 0.4, 0.5)

	b.x.push()
	b.x.translate(1.7, 0.1, 0)
	b.x.scale(1.5, 0.7, 0.8)
	b.x.rotateY(40)
	b.x.uniform(0.45)
	b.lit(MeshSphere, pal.Cockpit)
	b.x.pop()

	for _, side := range [...]float64{1, -1} {
		b.x.push()
		b.x.translate(0, 0, 1.2*side)
		b.x.rotateY(-50 * side)
		b.x.scale(0.7, 0.1, 3)
		b.x.rotateY(25 * side)
		b.lit(MeshCube, pal.PlaneWing)
		b.x.pop()

		// engine pods under the wing
		b.ball(pal.PlaneWing, -0.3, -0.15, 1.5*side, 0.45, 0.1, 0.1)
		b.ball(pal.PlaneWing, 0.2, -0.15, 0.9*side, 0.45, 0.1, 0.1)

		b.x.push()
		b.x.translate(-2.8, 0, 0)
		b.x.scale(0.8, 0.5, 0.3)
		b.x.translate(0.4, 0, 1.5*side)
		b.x.rotateY(-30 * side)
		b.x.scale(0.7, 0.1, 3)
		b.x.rotateY(10 * side)
		b.lit(MeshCube, pal.PlaneWing)
		b.x.pop()
	}

	b.x.push()
	b.x.translate(-2.7, 0.5, 0)
	b.x.rotateZ(45)
	b.x.scale(0.8, 2, 0.1)
	b.x.rotateZ(-20)
	b.x.uniform(0.5)
	b.lit(MeshCube, pal.PlaneWing)
	b.x.pop()
}

// radioTower is a tapering red and white lattice with a blinking beacon.
func (b *Builder) radioTower() {
	const (
		sections = 8
		section  = 0.5
		height   = sections * section
	)
	concrete := sim.RGB{R: 128, G: 128, B: 128}
	b.box(concrete, 0, 0.1, 0, 0.8, 0.2, 0.8)

	for _, c := range [...][2]float64{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		for i := 0; i < sections; i++ {
			col := pal.Tower
			if i%2 == 1 {
				col = pal.MinarWhite
			}
			taper := 1 - float64(i)*0.08
			b.box(col, c[0]*0.3*taper, 0.2+section*float64(i)+section/2, c[1]*0.3*taper, 0.08, section, 0.08)
		}
	}
	steel := sim.RGB{R: 102, G: 102, B: 115}
	for lvl := 1; lvl < sections; lvl++ {
		h := 0.2 + section*float64(lvl)
		hw := 0.3 * (1 - float64(lvl)*0.08)
		b.box(steel, 0, h, hw, hw*2, 0.03, 0.03)
		b.box(steel, 0, h, -hw, hw*2, 0.03, 0.03)
		b.box(steel, hw, h, 0, 0.03, 0.03, hw*2)
		b.box(steel, -hw, h, 0, 0.03, 0.03, hw*2)
	}
	b.box(sim.RGB{R: 77, G: 77, B: 89}, 0, height+0.2, 0, 0.3, 0.05, 0.3)
	b.box(sim.RGB{R: 204, G: 204, B: 204}, 0, height+0.7, 0, 0.04, 1, 0.04)

	b.x.push()
	b.x.translate(0, height+1.3, 0)
	if b.beaconOn() {
		b.x.push()
		b.x.uniform(0.1)
		b.unlit(MeshSphere, pal.Beacon)
		b.x.pop()
		b.x.uniform(0.2)
		b.glow(pal.Beacon, 0.4)
	} else {
		b.x.uniform(0.08)
		b.lit(MeshSphere, pal.Beacon.Mul(77))
	}
	b.x.pop()
}

func (b *Builder) beaconOn() bool {
	return math.Mod(b.now, 1) < 0.5
}

// parliament is a brutalist block: stepped plinth, octagonal hall, corner
// towers and two long wings with window bands.
func (b *Builder) parliament() {
	c := pal.Parliament
	b.box(c.Mul(230), 0, 0.15, 0, 8, 0.3, 6)
	b.box(c.Mul(240), 0, 0.4, 0, 7, 0.2, 5)

	b.x.push()
	b.x.translate(0, 2.5, 0)
	for a := 0; a < 360; a += 45 {
		b.x.push()
		b.x.rotateY(float64(a))
		b.x.translate(1.2, 0, 0)
		b.x.scale(0.8, 4, 1.5)
		b.lit(MeshCube, c)
		b.x.pop()
	}
	b.x.pop()

	inset := sim.RGB{R: 51, G: 51, B: 56}
	for _, t := range [...][2]float64{{-2.8, -2}, {2.8, -2}, {-2.8, 2}, {2.8, 2}} {
		b.box(c.Mul(245), t[0], 1.5, t[1], 1.8, 3.5, 1.5)
		b.ball(inset, t[0], 2, t[1]+0.76*sign(t[1]), 0.8, 1.5, 0.1)
	}
	band := sim.RGB{R: 38, G: 38, B: 46}
	for _, side := range [...]float64{-1, 1} {
		b.box(c.Mul(250), side*1.5, 1.5, side*2.5, 3.5, 2.5, 1.2)
		for i := 0; i < 3; i++ {
			b.box(band, side*1.5, 1+float64(i)*0.7, side*2.5+side*0.61, 3, 0.15, 0.02)
		}
	}
	b.box(c, 0, 4.6, 0, 2.6, 0.2, 2.6)
}

// memorial is the martyrs' monument: stepped plinth, a tall central frame
// between two pairs of bowed side frames, and the red sun disc behind.
func (b *Builder) memorial() {
	plinth := sim.RGB{R: 102, G: 51, B: 51}
	b.box(plinth, 0, 1.55, 0, 2, 0.05, 1.5)
	b.box(plinth, 0, 1.6, 0, 1.9, 0.05, 1.4)
	b.box(plinth, 0, 1.65, 0, 1.8, 0.05, 1.3)

	white := pal.MinarWhite
	rod := pal.Window
	frame := func(x, z, h, yaw float64) {
		b.x.push()
		b.x.translate(x, 1.68, z)
		b.x.rotateY(yaw)
		b.box(white, -0.11, h/2, 0, 0.045, h, 0.03)
		b.box(white, 0.11, h/2, 0, 0.045, h, 0.03)
		b.box(white, 0, h, 0, 0.27, 0.04, 0.03)
		b.box(white, 0, 0, 0, 0.27, 0.02, 0.06)
		for _, off := range [...]float64{-0.04, 0, 0.04} {
			b.box(rod, off, h/2, 0, 0.003, h*0.95, 0.003)
		}
		b.x.pop()
	}
	frame(0, -0.4, 0.7, 0)
	frame(-0.35, -0.32, 0.45, 20)
	frame(0.35, -0.32, 0.45, -20)
	frame(-0.6, -0.2, 0.4, 35)
	frame(0.6, -0.2, 0.4, -35)

	b.ball(pal.MinarSun, 0, 2.1, -0.44, 0.35, 0.35, 0.01)
	b.box(rod, -0.18, 1.9, -0.45, 0.01, 0.5, 0.01)
	b.box(rod, 0.18, 1.9, -0.45, 0.01, 0.5, 0.01)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
