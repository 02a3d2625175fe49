package sim

import (
	"math"
	"testing"
	"time"
)

func newRunningSession(t *testing.T, opts Options) (*Session, *ManualTime) {
	t.Helper()
	mt := NewManualTime(testEpoch)
	opts.Time = mt
	if opts.Seed == 0 {
		opts.Seed = 42
	}
	s := NewSession(opts)
	s.Start()
	return s, mt
}

func TestSessionStartsInMenu(t *testing.T) {
	s := NewSession(Options{Seed: 1, Time: NewManualTime(testEpoch)})
	if s.State.Mode != ModeMenu {
		t.Fatalf("mode = %v, want menu", s.State.Mode)
	}
	s.Handle(CmdTogglePause)
	if s.State.Paused {
		t.Fatal("paused outside a running session")
	}
	s.Handle(CmdRollLeft)
	if s.Plane.Pose != (Pose{}) {
		t.Fatalf("steering moved plane in menu: %+v", s.Plane.Pose)
	}
	z := s.World.Tiles[0].Z
	s.Tick()
	if s.World.Tiles[0].Z != z {
		t.Fatal("tick advanced world in menu")
	}
}

func TestTickScoresPassAtMaxSpeed(t *testing.T) {
	s, _ := newRunningSession(t, Options{})
	s.Plane.Speed = MaxSpeed
	s.World.Tiles[0].Z = -0.5

	s.Tick()

	if z := s.World.Tiles[0].Z; math.Abs(z-0.2) > eps {
		t.Fatalf("tile Z = %v, want 0.2", z)
	}
	if !s.World.Tiles[0].Passed {
		t.Fatal("ring not marked passed")
	}
	if s.State.Score != 1 {
		t.Fatalf("score = %d, want 1", s.State.Score)
	}
	s.Tick()
	if s.State.Score != 1 {
		t.Fatalf("score = %d after second tick, want 1", s.State.Score)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	s, mt := newRunningSession(t, Options{})
	for i := 0; i < 40; i++ {
		mt.Advance(16 * time.Millisecond)
		s.Tick()
	}
	s.Handle(CmdTogglePause)
	if !s.State.Paused || !s.Clock.Paused() {
		t.Fatal("session did not pause")
	}

	type frozen struct {
		score uint
		speed float64
		tiles []Tile
	}
	capture := func() frozen {
		return frozen{
			score: s.State.Score,
			speed: s.Plane.Speed,
			tiles: append([]Tile(nil), s.World.Tiles...),
		}
	}
	before := capture()
	elapsed := s.State.Elapsed
	for i := 0; i < 100; i++ {
		mt.Advance(16 * time.Millisecond)
		s.Tick()
		after := capture()
		if after.score != before.score || after.speed != before.speed {
			t.Fatalf("tick %d changed score/speed while paused", i)
		}
		for j := range after.tiles {
			if after.tiles[j] != before.tiles[j] {
				t.Fatalf("tick %d changed tile %d while paused: %+v -> %+v", i, j, before.tiles[j], after.tiles[j])
			}
		}
	}
	if s.State.Elapsed != elapsed {
		t.Fatalf("elapsed moved while paused: %v -> %v", elapsed, s.State.Elapsed)
	}

	s.Handle(CmdTogglePause)
	s.Tick()
	if s.World.Tiles[0].Z == before.tiles[0].Z {
		t.Fatal("world did not resume")
	}
}

func TestElapsedSecondsExcludePauses(t *testing.T) {
	s, mt := newRunningSession(t, Options{})
	mt.Advance(3 * time.Second)
	s.Tick()
	if s.State.Seconds != 3 {
		t.Fatalf("seconds = %d, want 3", s.State.Seconds)
	}
	s.SetPaused(true)
	mt.Advance(10 * time.Second)
	s.Tick()
	if s.State.Seconds != 3 {
		t.Fatalf("seconds = %d while paused, want 3", s.State.Seconds)
	}
	s.SetPaused(false)
	mt.Advance(1500 * time.Millisecond)
	s.Tick()
	if s.State.Elapsed != 4.5 || s.State.Seconds != 4 {
		t.Fatalf("elapsed = %v seconds = %d, want 4.5 and 4", s.State.Elapsed, s.State.Seconds)
	}
}

func TestCollisionEndsSession(t *testing.T) {
	bus := NewEventBus()
	crashes := 0
	bus.Subscribe(EventCollision, func(Event) { crashes++ })
	s, _ := newRunningSession(t, Options{Events: bus})

	s.Plane.Pose.TX, s.Plane.Pose.TY = 2, -1
	s.World.Tiles[3].Z = -0.7 // kind 1 ring lands on the plane this frame
	s.Tick()

	if s.State.Mode != ModeGameOver {
		t.Fatalf("mode = %v, want game over", s.State.Mode)
	}
	if crashes != 1 {
		t.Fatalf("%d collision events, want 1", crashes)
	}

	z := s.World.Tiles[0].Z
	s.Tick()
	if s.World.Tiles[0].Z != z {
		t.Fatal("world advanced after game over")
	}
	s.Handle(CmdRollLeft)
	if s.Plane.Pose.TX != 2 {
		t.Fatal("steering accepted after game over")
	}
}

func TestRestartResetsSessionButKeepsCity(t *testing.T) {
	s, mt := newRunningSession(t, Options{})
	s.City.Buildings(2, nil)
	lots := s.City.Len()
	before, _ := s.City.Floors(9, 9)

	for i := 0; i < 300; i++ {
		mt.Advance(16 * time.Millisecond)
		s.Tick()
	}
	s.Handle(CmdZoomIn)
	s.Handle(CmdRestart)

	if s.State.Mode != ModeRunning || s.State.Score != 0 || s.State.Elapsed != 0 {
		t.Fatalf("state after restart = %+v", s.State)
	}
	if s.Plane.Speed != InitialSpeed || s.Plane.Pose != (Pose{}) {
		t.Fatalf("plane after restart = %+v speed %v", s.Plane.Pose, s.Plane.Speed)
	}
	if s.World.Tiles[0].Z != -8 || s.World.Tiles[6].Z != -120 {
		t.Fatalf("tiles not reset: %+v", s.World.Tiles)
	}
	if math.Abs(s.State.Zoom-(DefaultZoom+ZoomStep)) > eps {
		t.Fatalf("zoom = %v, restart should keep it", s.State.Zoom)
	}
	if s.City.Len() != lots {
		t.Fatalf("city has %d lots after restart, want %d", s.City.Len(), lots)
	}
	if after, _ := s.City.Floors(9, 9); after != before {
		t.Fatalf("lot (9,9) changed from %d to %d", before, after)
	}
}

func TestRestartCanResetCity(t *testing.T) {
	s, _ := newRunningSession(t, Options{ResetCityOnRestart: true})
	s.City.Buildings(2, nil)
	s.Handle(CmdRestart)
	if s.City.Len() != 0 {
		t.Fatalf("city kept %d lots", s.City.Len())
	}
}

func TestReturnToMenu(t *testing.T) {
	bus := NewEventBus()
	menus := 0
	bus.Subscribe(EventMenu, func(Event) { menus++ })
	s, _ := newRunningSession(t, Options{Events: bus})
	s.Handle(CmdTogglePause)
	s.Handle(CmdMenu)
	if s.State.Mode != ModeMenu || s.State.Paused || s.Clock.Paused() {
		t.Fatalf("state = %+v", s.State)
	}
	if menus != 1 {
		t.Fatalf("%d menu events", menus)
	}
}

func TestZoomAndSpin(t *testing.T) {
	s := NewSession(Options{Time: NewManualTime(testEpoch)})
	for i := 0; i < 1000; i++ {
		s.Handle(CmdZoomIn)
	}
	if s.State.Zoom != MaxZoom {
		t.Fatalf("zoom = %v, want %v", s.State.Zoom, MaxZoom)
	}
	for i := 0; i < 1000; i++ {
		s.Handle(CmdZoomOut)
	}
	if s.State.Zoom != MinZoom {
		t.Fatalf("zoom = %v, want %v", s.State.Zoom, MinZoom)
	}
	s.Handle(CmdSpinOn)
	if !s.State.Spin {
		t.Fatal("spin on ignored")
	}
	s.Handle(CmdToggleSpin)
	if s.State.Spin {
		t.Fatal("toggle did not stop spin")
	}
	s.Handle(CmdToggleSpin)
	s.Handle(CmdSpinOff)
	if s.State.Spin {
		t.Fatal("spin off ignored")
	}
}

func TestLongFlightStaysConsistent(t *testing.T) {
	bus := NewEventBus()
	passes, landmarks := 0, 0
	bus.Subscribe(EventObstaclePassed, func(Event) { passes++ })
	bus.Subscribe(EventLandmarkPassed, func(Event) { landmarks++ })
	s, mt := newRunningSession(t, Options{Events: bus})

	prevSpeed := s.Plane.Speed
	prevScore := s.State.Score
	for i := 0; i < 3000; i++ {
		mt.Advance(16 * time.Millisecond)
		s.Tick()
		if s.State.Mode != ModeRunning {
			t.Fatalf("level flight crashed at tick %d", i)
		}
		if s.Plane.Speed < prevSpeed || s.Plane.Speed > MaxSpeed {
			t.Fatalf("speed %v after %v", s.Plane.Speed, prevSpeed)
		}
		if s.State.Score < prevScore {
			t.Fatal("score decreased")
		}
		prevSpeed, prevScore = s.Plane.Speed, s.State.Score
	}
	if s.State.Score == 0 || int(s.State.Score) != passes {
		t.Fatalf("score = %d, pass events = %d", s.State.Score, passes)
	}
	if landmarks != 1 {
		t.Fatalf("%d landmark events, want 1", landmarks)
	}

	var snap Snapshot
	s.Snapshot(&snap)
	if snap.LandmarkVisible {
		t.Fatal("landmark still visible after retiring")
	}
	if len(snap.Obstacles) != 6 || len(snap.Tiles) != 7 {
		t.Fatalf("snapshot has %d obstacles, %d tiles", len(snap.Obstacles), len(snap.Tiles))
	}
	if snap.Score != s.State.Score || snap.Mode != ModeRunning {
		t.Fatalf("snapshot state = %+v", snap.State)
	}
}

func TestSteeringClampedNextFrame(t *testing.T) {
	s, _ := newRunningSession(t, Options{})
	for i := 0; i < 40; i++ {
		s.Handle(CmdRollRight)
	}
	s.Tick()
	if s.Plane.Pose.TX != MinTX {
		t.Fatalf("TX = %v, want %v", s.Plane.Pose.TX, MinTX)
	}
	if s.Plane.Pose.RotX > MaxRotX {
		t.Fatalf("RotX = %v above limit", s.Plane.Pose.RotX)
	}
}

func TestSteeringWhilePaused(t *testing.T) {
	s, mt := newRunningSession(t, Options{})
	for i := 0; i < 10; i++ {
		mt.Advance(16 * time.Millisecond)
		s.Tick()
	}
	s.Handle(CmdTogglePause)
	score, speed := s.State.Score, s.Plane.Speed
	tiles := append([]Tile(nil), s.World.Tiles...)

	s.Handle(CmdRollLeft)
	s.Handle(CmdPitchUp)
	mt.Advance(16 * time.Millisecond)
	s.Tick()

	pose := s.Plane.Pose
	if math.Abs(pose.TX-TranslateStep) > 1e-9 || math.Abs(pose.TY+TranslateStep) > 1e-9 {
		t.Fatalf("pose = %+v, want TX %v and TY %v", pose, TranslateStep, -TranslateStep)
	}
	if pose.RotX == 0 || pose.RotZ == 0 {
		t.Fatalf("attitude not applied while paused: %+v", pose)
	}
	if s.State.Score != score || s.Plane.Speed != speed {
		t.Fatalf("score/speed moved while paused: %d/%v -> %d/%v", score, speed, s.State.Score, s.Plane.Speed)
	}
	for i := range tiles {
		if s.World.Tiles[i] != tiles[i] {
			t.Fatalf("tile %d moved while paused: %+v -> %+v", i, tiles[i], s.World.Tiles[i])
		}
	}
}
