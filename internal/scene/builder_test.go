package scene

import (
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"planegame/internal/sim"
)

func newSession(t *testing.T) *sim.Session {
	t.Helper()
	return sim.NewSession(sim.Options{
		Seed: 7,
		Time: sim.NewManualTime(time.Date(2024, 2, 21, 0, 0, 0, 0, time.UTC)),
	})
}

func hasText(lines []TextLine, s string) bool {
	for _, l := range lines {
		if strings.Contains(l.Text, s) {
			return true
		}
	}
	return false
}

func TestCameraLooksAtTarget(t *testing.T) {
	clip := Projection(1366.0 / 720.0).Mul4(View()).Mul4x1(Target.Vec4(1))
	ndc := clip.Vec3().Mul(1 / clip.W())
	if abs32(ndc.X()) > 1e-5 || abs32(ndc.Y()) > 1e-5 {
		t.Fatalf("target projects to %v", ndc)
	}
	if ndc.Z() <= -1 || ndc.Z() >= 1 {
		t.Fatalf("target depth %v outside the frustum", ndc.Z())
	}
	if !SceneRoot(1, 0).ApproxEqual(mgl32.Ident4()) {
		t.Fatal("unit zoom without spin should be identity")
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestMenuFrameShowsPlaneOnly(t *testing.T) {
	s := newSession(t)
	var snap sim.Snapshot
	s.Snapshot(&snap)

	var f Frame
	NewBuilder().Build(&f, &snap, s.City, 1.5)

	if len(f.Lit[MeshTorus]) != 0 {
		t.Fatal("rings drawn in the menu")
	}
	if len(f.Lit[MeshSphere]) == 0 || len(f.Lit[MeshCube]) == 0 {
		t.Fatal("plane missing from the menu")
	}
	if s.City.Len() != 0 {
		t.Fatal("menu generated buildings")
	}
	if !hasText(f.Text, "Plane Game") || !hasText(f.Text, "Press G to Start") {
		t.Fatalf("menu text = %+v", f.Text)
	}
}

func TestRunningFrameDrawsEveryTile(t *testing.T) {
	s := newSession(t)
	s.Start()
	var snap sim.Snapshot
	s.Snapshot(&snap)

	var f Frame
	b := NewBuilder()
	b.Build(&f, &snap, s.City, 1.5)

	if n := len(f.Lit[MeshTorus]); n != 6 {
		t.Fatalf("%d rings, want 6", n)
	}
	if s.City.Len() == 0 {
		t.Fatal("no lots generated while drawing")
	}
	if len(f.Glow) == 0 || len(f.Unlit[MeshSphere]) == 0 {
		t.Fatal("sky is empty")
	}
	if !hasText(f.Text, "SCORE : 0") || !hasText(f.Text, ControlsHint) {
		t.Fatalf("running text = %+v", f.Text)
	}
	withLandmark := len(f.Lit[MeshCube])

	snap.Tiles[1].Retired = true
	snap.LandmarkVisible = false
	b.Build(&f, &snap, s.City, 1.5)
	if len(f.Lit[MeshCube]) >= withLandmark {
		t.Fatalf("retired landmark still drawn: %d cubes, had %d", len(f.Lit[MeshCube]), withLandmark)
	}
}

func TestFrameIsReusable(t *testing.T) {
	s := newSession(t)
	s.Start()
	var snap sim.Snapshot
	s.Snapshot(&snap)

	var f Frame
	b := NewBuilder()
	b.Build(&f, &snap, s.City, 1.5)
	first := f.Count()
	b.Build(&f, &snap, s.City, 1.5)
	if f.Count() != first {
		t.Fatalf("second build queued %d instances, first %d", f.Count(), first)
	}

	buf := AppendFloats(nil, f.Lit[MeshTorus])
	if len(buf) != len(f.Lit[MeshTorus])*InstanceFloats {
		t.Fatalf("packed %d floats", len(buf))
	}
}

func TestHUDPerMode(t *testing.T) {
	snap := sim.Snapshot{State: sim.State{Mode: sim.ModeRunning, Paused: true, Seconds: 12, Score: 3}}
	lines := HUD(&snap, nil)
	for _, want := range []string{"PAUSED", "TIME : 12", "SCORE : 3"} {
		if !hasText(lines, want) {
			t.Errorf("running HUD missing %q", want)
		}
	}

	snap.Paused = false
	if hasText(HUD(&snap, nil), "PAUSED") {
		t.Error("PAUSED shown while flying")
	}

	snap.Mode = sim.ModeGameOver
	lines = HUD(&snap, nil)
	for _, want := range []string{"GAME OVER", "Press G to Restart or M for Main Menu", "SCORE : 3"} {
		if !hasText(lines, want) {
			t.Errorf("game over HUD missing %q", want)
		}
	}
}
