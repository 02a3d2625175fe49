package sim

// Pose is the plane's accumulated translation and attitude in degrees.
// The world is drawn offset by (TX, TY); the plane itself stays at PlaneOrigin.
type Pose struct {
	TX, TY           float64
	RotX, RotY, RotZ float64
}

// Steer is one discrete control input.
type Steer uint8

const (
	SteerPitchUp Steer = iota
	SteerPitchDown
	SteerRollLeft
	SteerRollRight
)

// Kinematics integrates control input into the plane pose and ramps forward speed.
type Kinematics struct {
	Pose  Pose
	Speed float64
}

func NewKinematics() *Kinematics {
	return &Kinematics{Speed: InitialSpeed}
}

func (k *Kinematics) Reset() {
	k.Pose = Pose{}
	k.Speed = InitialSpeed
}

// Apply adds the increments of one control event. Limits are enforced by
// the clamps on the next frame.
func (k *Kinematics) Apply(s Steer) {
	p := &k.Pose
	switch s {
	case SteerPitchUp:
		p.TY -= TranslateStep
		p.RotZ += RotateStep
	case SteerPitchDown:
		p.TY += TranslateStep
		p.RotZ -= RotateStep
	case SteerRollLeft:
		p.TX += TranslateStep
		p.RotX -= RotateStep * 3
		p.RotY += RotateStep / 2
	case SteerRollRight:
		p.TX -= TranslateStep
		p.RotX += RotateStep * 3
		p.RotY -= RotateStep / 2
	}
}

// Translate adds a raw translation delta.
func (k *Kinematics) Translate(dx, dy float64) {
	k.Pose.TX += dx
	k.Pose.TY += dy
}

// ClampRotation keeps pitch and roll inside the attitude limits. Yaw is free.
func (k *Kinematics) ClampRotation() {
	k.Pose.RotX = clampF(k.Pose.RotX, MinRotX, MaxRotX)
	k.Pose.RotZ = clampF(k.Pose.RotZ, MinRotZ, MaxRotZ)
}

// ClampTranslation keeps the plane inside the flyable box.
func (k *Kinematics) ClampTranslation() {
	k.Pose.TX = clampF(k.Pose.TX, MinTX, MaxTX)
	k.Pose.TY = clampF(k.Pose.TY, MinTY, MaxTY)
}

// Damp eases every rotation back toward level flight by RotationDamping,
// landing exactly on zero.
func (k *Kinematics) Damp() {
	k.Pose.RotX = approach(k.Pose.RotX, 0, RotationDamping)
	k.Pose.RotY = approach(k.Pose.RotY, 0, RotationDamping)
	k.Pose.RotZ = approach(k.Pose.RotZ, 0, RotationDamping)
}

// RampSpeed accelerates toward MaxSpeed; speed never drops within a session.
func (k *Kinematics) RampSpeed() {
	k.Speed += SpeedRamp
	if k.Speed >= MaxSpeed {
		k.Speed = MaxSpeed
	}
}
