package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"planegame/internal/sim"
)

// Instance is one placed copy of a shared mesh.
type Instance struct {
	Model mgl32.Mat4
	Color mgl32.Vec4
}

// InstanceFloats is the per-instance upload size: model matrix then colour.
const InstanceFloats = 16 + 4

// Frame is everything the renderer draws for one frame. Lit instances get
// the directional light; unlit ones keep their flat colour; glow instances
// are blended additively without writing depth.
type Frame struct {
	Proj, View mgl32.Mat4
	Eye        mgl32.Vec3
	SkyTop     mgl32.Vec3
	SkyBottom  mgl32.Vec3

	Lit   [NumMeshes][]Instance
	Unlit [NumMeshes][]Instance
	Glow  []Instance // spheres

	Text []TextLine
}

// Reset empties the frame, keeping its buffers.
func (f *Frame) Reset() {
	for i := range f.Lit {
		f.Lit[i] = f.Lit[i][:0]
		f.Unlit[i] = f.Unlit[i][:0]
	}
	f.Glow = f.Glow[:0]
	f.Text = f.Text[:0]
}

// Count returns the number of mesh instances queued.
func (f *Frame) Count() int {
	n := len(f.Glow)
	for i := range f.Lit {
		n += len(f.Lit[i]) + len(f.Unlit[i])
	}
	return n
}

// AppendFloats packs instances for a GL instance buffer.
func AppendFloats(dst []float32, in []Instance) []float32 {
	for i := range in {
		dst = append(dst, in[i].Model[:]...)
		dst = append(dst, in[i].Color[:]...)
	}
	return dst
}

func colorVec(c sim.RGB, a float32) mgl32.Vec4 {
	r, g, b := c.Floats()
	return mgl32.Vec4{r, g, b, a}
}

func colorVec3(c sim.RGB) mgl32.Vec3 {
	r, g, b := c.Floats()
	return mgl32.Vec3{r, g, b}
}

// xform is a model matrix stack in the style of fixed-function GL:
// transforms post-multiply the top, so the last one applied is the first
// one to act on the vertex.
type xform struct {
	stack []mgl32.Mat4
}

func (x *xform) load(m mgl32.Mat4) {
	x.stack = append(x.stack[:0], m)
}

func (x *xform) top() mgl32.Mat4 { return x.stack[len(x.stack)-1] }

func (x *xform) push() { x.stack = append(x.stack, x.top()) }

func (x *xform) pop() { x.stack = x.stack[:len(x.stack)-1] }

func (x *xform) mul(m mgl32.Mat4) {
	i := len(x.stack) - 1
	x.stack[i] = x.stack[i].Mul4(m)
}

func (x *xform) translate(tx, ty, tz float64) {
	x.mul(mgl32.Translate3D(float32(tx), float32(ty), float32(tz)))
}

func (x *xform) scale(sx, sy, sz float64) {
	x.mul(mgl32.Scale3D(float32(sx), float32(sy), float32(sz)))
}

func (x *xform) uniform(s float64) { x.scale(s, s, s) }

func (x *xform) rotateX(deg float64) {
	x.mul(mgl32.HomogRotate3DX(mgl32.DegToRad(float32(deg))))
}

func (x *xform) rotateY(deg float64) {
	x.mul(mgl32.HomogRotate3DY(mgl32.DegToRad(float32(deg))))
}

func (x *xform) rotateZ(deg float64) {
	x.mul(mgl32.HomogRotate3DZ(mgl32.DegToRad(float32(deg))))
}
