package scene

import "math"

// MeshID names one of the shared unit meshes every instance is drawn from.
type MeshID int

const (
	MeshCube   MeshID = iota // 1x1x1, centred on the origin
	MeshSphere               // radius 1
	MeshTorus                // tube radius 1, ring radius 3, ring in the XY plane
	MeshCone                 // base radius 1 at y=0, apex at y=1
	NumMeshes
)

// VertexStride is the number of floats per vertex: position then normal.
const VertexStride = 6

// Mesh is a non-indexed triangle list.
type Mesh struct {
	Verts []float32
}

// Count returns the number of vertices.
func (m Mesh) Count() int { return len(m.Verts) / VertexStride }

func (m *Mesh) vertex(px, py, pz, nx, ny, nz float64) {
	m.Verts = append(m.Verts,
		float32(px), float32(py), float32(pz),
		float32(nx), float32(ny), float32(nz))
}

// BuildMeshes tessellates every shared mesh once.
func BuildMeshes() [NumMeshes]Mesh {
	return [NumMeshes]Mesh{
		MeshCube:   Cube(),
		MeshSphere: Sphere(16, 12),
		MeshTorus:  Torus(1, 3, 12, 30),
		MeshCone:   Cone(12),
	}
}

func Cube() Mesh {
	var m Mesh
	faces := [6]struct {
		n, u, v [3]float64
	}{
		{n: [3]float64{1, 0, 0}, u: [3]float64{0, 0, -1}, v: [3]float64{0, 1, 0}},
		{n: [3]float64{-1, 0, 0}, u: [3]float64{0, 0, 1}, v: [3]float64{0, 1, 0}},
		{n: [3]float64{0, 1, 0}, u: [3]float64{1, 0, 0}, v: [3]float64{0, 0, -1}},
		{n: [3]float64{0, -1, 0}, u: [3]float64{1, 0, 0}, v: [3]float64{0, 0, 1}},
		{n: [3]float64{0, 0, 1}, u: [3]float64{1, 0, 0}, v: [3]float64{0, 1, 0}},
		{n: [3]float64{0, 0, -1}, u: [3]float64{-1, 0, 0}, v: [3]float64{0, 1, 0}},
	}
	corner := func(f int, su, sv float64) {
		fc := faces[f]
		var p [3]float64
		for k := 0; k < 3; k++ {
			p[k] = 0.5*fc.n[k] + 0.5*su*fc.u[k] + 0.5*sv*fc.v[k]
		}
		m.vertex(p[0], p[1], p[2], fc.n[0], fc.n[1], fc.n[2])
	}
	for f := range faces {
		// Counter-clockwise seen from outside.
		corner(f, -1, -1)
		corner(f, 1, -1)
		corner(f, 1, 1)
		corner(f, -1, -1)
		corner(f, 1, 1)
		corner(f, -1, 1)
	}
	return m
}

func Sphere(slices, stacks int) Mesh {
	var m Mesh
	point := func(i, j int) (float64, float64, float64) {
		theta := math.Pi * float64(j) / float64(stacks)
		phi := 2 * math.Pi * float64(i) / float64(slices)
		st := math.Sin(theta)
		return st * math.Cos(phi), math.Cos(theta), -st * math.Sin(phi)
	}
	emit := func(i, j int) {
		x, y, z := point(i, j)
		m.vertex(x, y, z, x, y, z)
	}
	for j := 0; j < stacks; j++ {
		for i := 0; i < slices; i++ {
			emit(i, j)
			emit(i, j+1)
			emit(i+1, j+1)
			emit(i, j)
			emit(i+1, j+1)
			emit(i+1, j)
		}
	}
	return m
}

// Torus builds a ring around the Z axis like glutSolidTorus.
func Torus(tube, ring float64, sides, rings int) Mesh {
	var m Mesh
	emit := func(i, j int) {
		u := 2 * math.Pi * float64(i) / float64(rings)
		v := 2 * math.Pi * float64(j) / float64(sides)
		cu, su := math.Cos(u), math.Sin(u)
		cv, sv := math.Cos(v), math.Sin(v)
		r := ring + tube*cv
		m.vertex(r*cu, r*su, tube*sv, cv*cu, cv*su, sv)
	}
	for i := 0; i < rings; i++ {
		for j := 0; j < sides; j++ {
			emit(i, j)
			emit(i+1, j)
			emit(i+1, j+1)
			emit(i, j)
			emit(i+1, j+1)
			emit(i, j+1)
		}
	}
	return m
}

func Cone(slices int) Mesh {
	var m Mesh
	// Slant normal of a cone with unit radius and unit height.
	ny := 1 / math.Sqrt2
	for i := 0; i < slices; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(slices)
		a1 := 2 * math.Pi * float64(i+1) / float64(slices)
		x0, z0 := math.Cos(a0), -math.Sin(a0)
		x1, z1 := math.Cos(a1), -math.Sin(a1)
		am := (a0 + a1) / 2
		m.vertex(x0, 0, z0, x0*ny, ny, z0*ny)
		m.vertex(x1, 0, z1, x1*ny, ny, z1*ny)
		m.vertex(0, 1, 0, math.Cos(am)*ny, ny, -math.Sin(am)*ny)

		m.vertex(0, 0, 0, 0, -1, 0)
		m.vertex(x1, 0, z1, 0, -1, 0)
		m.vertex(x0, 0, z0, 0, -1, 0)
	}
	return m
}
