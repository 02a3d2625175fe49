package sim

// PlaneOrigin is where the plane sits in world space; the world moves, the plane does not.
var PlaneOrigin = Vec3{X: 0, Y: 1, Z: 0}

// ObstaclePosition returns the world position of a tile's ring. The world is
// translated opposite to the plane, so the plane offset (tx, ty) is added.
// An invalid kind panics.
func ObstaclePosition(kind int, tileZ, tx, ty float64) Vec3 {
	env := Environment(kind)
	return Vec3{X: env.RingX + tx, Y: env.RingY + ty, Z: tileZ}
}

// CheckCollision reports whether the plane hits a ring. The plane's Y is
// lifted by its render offset before measuring.
func CheckCollision(plane, obstacle Vec3) bool {
	plane.Y += PlaneRenderLift
	return plane.Sub(obstacle).Len() < CollisionRadius
}

// CheckPassed returns true once the ring enters the pass window behind the
// plane; an already passed ring stays passed.
// Reliable only while the per-frame speed is at most PassWindow.
func CheckPassed(obstacleZ float64, alreadyPassed bool) bool {
	if !alreadyPassed && obstacleZ > PassWindowMin && obstacleZ < PassWindowMax {
		return true
	}
	return alreadyPassed
}

// ObstacleResult summarizes one tracker update.
type ObstacleResult struct {
	Collided    bool
	CollisionAt Vec3
	Passes      int
	PassedAt    []Vec3
}

// ObstacleTracker runs collision and pass scoring over the active tiles.
type ObstacleTracker struct {
	passedAt []Vec3
}

func NewObstacleTracker() *ObstacleTracker {
	return &ObstacleTracker{passedAt: make([]Vec3, 0, 4)}
}

// Update tests every active regular tile in order. A collision stops the walk
// immediately. Each first entry into the pass window counts one pass.
// Passed flags are left alone; ScrollingWorld.Advance clears them on recycle.
func (ot *ObstacleTracker) Update(w *ScrollingWorld, tx, ty float64) ObstacleResult {
	ot.passedAt = ot.passedAt[:0]
	res := ObstacleResult{}
	for i := range w.Tiles {
		t := &w.Tiles[i]
		if t.Landmark || t.Retired {
			continue
		}
		pos := ObstaclePosition(t.Kind, t.Z, tx, ty)
		if CheckCollision(PlaneOrigin, pos) {
			res.Collided = true
			res.CollisionAt = pos
			res.PassedAt = ot.passedAt
			return res
		}
		if CheckPassed(pos.Z, t.Passed) && !t.Passed {
			t.Passed = true
			res.Passes++
			ot.passedAt = append(ot.passedAt, pos)
		}
	}
	res.PassedAt = ot.passedAt
	return res
}

// Positions appends the ring position of every active regular tile to out.
func (ot *ObstacleTracker) Positions(w *ScrollingWorld, tx, ty float64, out []Vec3) []Vec3 {
	for i := range w.Tiles {
		t := &w.Tiles[i]
		if t.Landmark || t.Retired {
			continue
		}
		out = append(out, ObstaclePosition(t.Kind, t.Z, tx, ty))
	}
	return out
}
