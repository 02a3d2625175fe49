package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"planegame/internal/scene"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// meshBuffers holds one shared mesh and its streaming instance buffer.
type meshBuffers struct {
	vao     uint32
	vbo     uint32
	inst    uint32
	verts   int32
	instCap int
}

type Renderer struct {
	// Instanced mesh program.
	meshProg    uint32
	uViewProj   int32
	uLit        int32
	uLightDir   int32
	uEye        int32
	uAmbient    int32
	uDiffuse    int32
	uSpecular   int32
	uShininess  int32
	meshes      [scene.NumMeshes]meshBuffers
	instanceBuf []float32

	// Sky gradient program.
	skyProg    uint32
	skyVAO     uint32
	uSkyTop    int32
	uSkyBottom int32

	// Font/text rendering.
	atlas        *scene.Atlas
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	meshProg, err := linkProgram(meshVertSrc, meshFragSrc)
	if err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}
	skyProg, err := linkProgram(skyVertSrc, skyFragSrc)
	if err != nil {
		gl.DeleteProgram(meshProg)
		return nil, fmt.Errorf("sky program: %w", err)
	}

	r := &Renderer{
		meshProg: meshProg,
		skyProg:  skyProg,
	}

	gl.UseProgram(meshProg)
	r.uViewProj = uniform(meshProg, "uViewProj")
	r.uLit = uniform(meshProg, "uLit")
	r.uLightDir = uniform(meshProg, "uLightDir")
	r.uEye = uniform(meshProg, "uEye")
	r.uAmbient = uniform(meshProg, "uAmbient")
	r.uDiffuse = uniform(meshProg, "uDiffuse")
	r.uSpecular = uniform(meshProg, "uSpecular")
	r.uShininess = uniform(meshProg, "uShininess")
	gl.Uniform3f(r.uLightDir, scene.LightDir[0], scene.LightDir[1], scene.LightDir[2])
	gl.Uniform1f(r.uAmbient, scene.Ambient)
	gl.Uniform1f(r.uDiffuse, scene.Diffuse)
	gl.Uniform1f(r.uSpecular, scene.Specular)
	gl.Uniform1f(r.uShininess, scene.Shininess)

	for id, m := range scene.BuildMeshes() {
		r.meshes[id] = newMeshBuffers(m)
	}

	gl.UseProgram(skyProg)
	r.uSkyTop = uniform(skyProg, "uTop")
	r.uSkyBottom = uniform(skyProg, "uBottom")
	gl.GenVertexArrays(1, &r.skyVAO)

	gl.BindVertexArray(0)
	return r, nil
}

func newMeshBuffers(m scene.Mesh) meshBuffers {
	var mb meshBuffers
	gl.GenVertexArrays(1, &mb.vao)
	gl.GenBuffers(1, &mb.vbo)
	gl.GenBuffers(1, &mb.inst)
	gl.BindVertexArray(mb.vao)

	// Static geometry: position(3) + normal(3).
	gl.BindBuffer(gl.ARRAY_BUFFER, mb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Verts)*4, gl.Ptr(m.Verts), gl.STATIC_DRAW)
	stride := int32(scene.VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	mb.verts = int32(m.Count())

	// Per-instance: model matrix as four column attributes, then colour.
	gl.BindBuffer(gl.ARRAY_BUFFER, mb.inst)
	mb.instCap = InitialInstanceCap
	gl.BufferData(gl.ARRAY_BUFFER, mb.instCap*scene.InstanceFloats*4, nil, gl.STREAM_DRAW)
	istride := int32(scene.InstanceFloats * 4)
	for col := uint32(0); col < 4; col++ {
		loc := 2 + col
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointer(loc, 4, gl.FLOAT, false, istride, glOffset(int(col)*16))
		gl.VertexAttribDivisor(loc, 1)
	}
	gl.EnableVertexAttribArray(6)
	gl.VertexAttribPointer(6, 4, gl.FLOAT, false, istride, glOffset(16*4))
	gl.VertexAttribDivisor(6, 1)
	return mb
}

func (r *Renderer) Destroy() {
	for i := range r.meshes {
		m := &r.meshes[i]
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.inst)
		gl.DeleteVertexArrays(1, &m.vao)
	}
	for _, id := range []uint32{r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.skyVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.meshProg, r.skyProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// Draw renders one built frame: sky, lit and unlit meshes, additive glow, then text.
func (r *Renderer) Draw(f *scene.Frame, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.Disable(gl.DEPTH_TEST)
	gl.UseProgram(r.skyProg)
	gl.Uniform3f(r.uSkyTop, f.SkyTop[0], f.SkyTop[1], f.SkyTop[2])
	gl.Uniform3f(r.uSkyBottom, f.SkyBottom[0], f.SkyBottom[1], f.SkyBottom[2])
	gl.BindVertexArray(r.skyVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.UseProgram(r.meshProg)
	vp := f.Proj.Mul4(f.View)
	gl.UniformMatrix4fv(r.uViewProj, 1, false, &vp[0])
	gl.Uniform3f(r.uEye, f.Eye[0], f.Eye[1], f.Eye[2])

	gl.Uniform1i(r.uLit, 1)
	for id := range f.Lit {
		r.drawInstances(scene.MeshID(id), f.Lit[id])
	}
	gl.Uniform1i(r.uLit, 0)
	for id := range f.Unlit {
		r.drawInstances(scene.MeshID(id), f.Unlit[id])
	}

	if len(f.Glow) > 0 {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
		gl.DepthMask(false)
		r.drawInstances(scene.MeshSphere, f.Glow)
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}
	gl.BindVertexArray(0)

	gl.Disable(gl.DEPTH_TEST)
	r.DrawHUD(f.Text, fbW, fbH)
	r.FlushText(fbW, fbH)
}

func (r *Renderer) drawInstances(id scene.MeshID, in []scene.Instance) {
	if len(in) == 0 {
		return
	}
	m := &r.meshes[id]
	r.instanceBuf = scene.AppendFloats(r.instanceBuf[:0], in)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.inst)
	if len(in) > m.instCap {
		for m.instCap < len(in) {
			m.instCap *= 2
		}
		gl.BufferData(gl.ARRAY_BUFFER, m.instCap*scene.InstanceFloats*4, nil, gl.STREAM_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.instanceBuf)*4, gl.Ptr(r.instanceBuf))
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, m.verts, int32(len(in)))
}
