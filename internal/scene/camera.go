package scene

import "github.com/go-gl/mathgl/mgl32"

// Fixed chase camera.
var (
	Eye    = mgl32.Vec3{0, 4.5, 10}
	Target = mgl32.Vec3{0, 4, 0}
	Up     = mgl32.Vec3{0, 1, 0}
)

const (
	NearPlane = 2
	FarPlane  = 1000
)

// Light is a directional light shining from LightDir, with a fixed ambient floor.
var LightDir = mgl32.Vec3{2, 5, 5}.Normalize()

const (
	Ambient   = 0.2
	Diffuse   = 0.8
	Specular  = 0.35
	Shininess = 100
)

// Projection is a symmetric frustum one unit tall at the near plane.
func Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Frustum(-aspect, aspect, -1, 1, NearPlane, FarPlane)
}

func View() mgl32.Mat4 {
	return mgl32.LookAtV(Eye, Target, Up)
}

// SceneRoot scales the world by zoom and turns it by the showcase spin.
func SceneRoot(zoom, spinDeg float64) mgl32.Mat4 {
	z := float32(zoom)
	return mgl32.Scale3D(z, z, z).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(float32(spinDeg))))
}
