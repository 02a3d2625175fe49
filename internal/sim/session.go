package sim

type Mode int

const (
	ModeMenu     Mode = iota
	ModeRunning       // plane in flight
	ModeGameOver      // plane hit a ring
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeRunning:
		return "running"
	case ModeGameOver:
		return "game over"
	}
	return "unknown"
}

// Command is one discrete input event from the shell.
type Command int

const (
	CmdPitchUp Command = iota
	CmdPitchDown
	CmdRollLeft
	CmdRollRight
	CmdZoomIn
	CmdZoomOut
	CmdTogglePause
	CmdSpinOn
	CmdSpinOff
	CmdToggleSpin
	CmdRestart
	CmdMenu
	CmdQuit
)

// State is the per-session scalar state read by the HUD.
type State struct {
	Mode    Mode
	Paused  bool    // only meaningful while running
	Elapsed float64 // game seconds, excludes pauses
	Seconds int
	Score   uint
	Zoom    float64
	Spin    bool
}

type Options struct {
	Seed uint64
	// ResetCityOnRestart forgets the building layout on every new session.
	ResetCityOnRestart bool
	Time               TimeSource
	Events             *EventBus
}

// Session owns all simulation state and advances it once per frame.
type Session struct {
	State     State
	Plane     *Kinematics
	World     *ScrollingWorld
	Obstacles *ObstacleTracker
	City      *TileCache
	Clouds    *CloudField
	Traffic   *TrafficSystem
	Trees     *TreeField
	Clock     *PauseClock

	events    *EventBus
	seed      uint64
	roll      uint64
	resetCity bool
}

func NewSession(opts Options) *Session {
	seed := opts.Seed
	if seed == 0 {
		seed = 1
	}
	s := &Session{
		State:     State{Mode: ModeMenu, Zoom: DefaultZoom},
		Plane:     NewKinematics(),
		World:     NewScrollingWorld(),
		Obstacles: NewObstacleTracker(),
		City:      NewTileCache(seed),
		Clouds:    NewCloudField(seed),
		Traffic:   NewTrafficSystem(seed),
		Trees:     NewTreeField(seed),
		Clock:     NewPauseClock(opts.Time),
		events:    opts.Events,
		seed:      seed,
		resetCity: opts.ResetCityOnRestart,
	}
	return s
}

// reset clears everything a session accumulates. Zoom and spin are viewer
// preferences and survive.
func (s *Session) reset() {
	s.roll++
	sessionSeed := hash2D(s.seed, int(s.roll), 0)

	s.Plane.Reset()
	s.World.Reset()
	s.Clock.Reset()
	s.Clouds.Configure(sessionSeed)
	s.Traffic.SpawnRandom(sessionSeed, NumVehicles)
	s.Trees.Generate(sessionSeed)
	if s.resetCity {
		s.City.Reset()
	}

	s.State.Paused = false
	s.State.Elapsed = 0
	s.State.Seconds = 0
	s.State.Score = 0
}

// Start begins a fresh session from any mode.
func (s *Session) Start() {
	s.reset()
	s.State.Mode = ModeRunning
	s.events.Emit(Event{Type: EventSessionStarted})
}

// ReturnToMenu abandons the current session.
func (s *Session) ReturnToMenu() {
	s.reset()
	s.State.Mode = ModeMenu
	s.events.Emit(Event{Type: EventMenu})
}

// SetPaused freezes or resumes a running session.
func (s *Session) SetPaused(paused bool) {
	if s.State.Mode != ModeRunning || s.State.Paused == paused {
		return
	}
	s.State.Paused = paused
	s.Clock.SetPaused(paused)
	data := 0
	if paused {
		data = 1
	}
	s.events.Emit(Event{Type: EventPauseChanged, Data: data})
}

// Handle applies one input command synchronously. CmdQuit is left to the shell.
func (s *Session) Handle(cmd Command) {
	switch cmd {
	case CmdPitchUp, CmdPitchDown, CmdRollLeft, CmdRollRight:
		// Steering still moves the plane while paused; only the world freezes.
		if s.State.Mode != ModeRunning {
			return
		}
		s.Plane.Apply(Steer(cmd - CmdPitchUp))
	case CmdZoomIn:
		s.State.Zoom = clampF(s.State.Zoom+ZoomStep, MinZoom, MaxZoom)
	case CmdZoomOut:
		s.State.Zoom = clampF(s.State.Zoom-ZoomStep, MinZoom, MaxZoom)
	case CmdTogglePause:
		s.SetPaused(!s.State.Paused)
	case CmdSpinOn:
		s.State.Spin = true
	case CmdSpinOff:
		s.State.Spin = false
	case CmdToggleSpin:
		s.State.Spin = !s.State.Spin
	case CmdRestart:
		s.Start()
	case CmdMenu:
		s.ReturnToMenu()
	}
}

// Tick advances one frame. It does nothing outside ModeRunning, and only
// refreshes the clock and attitude limits while paused.
func (s *Session) Tick() {
	if s.State.Mode != ModeRunning {
		return
	}

	s.State.Elapsed = s.Clock.Elapsed()
	s.State.Seconds = int(s.State.Elapsed)

	s.Plane.ClampRotation()
	if !s.State.Paused {
		s.Traffic.Update()
	}
	s.Plane.ClampTranslation()

	if s.State.Paused {
		return
	}

	speed := s.Plane.Speed
	adv := s.World.Advance(speed)
	s.Clouds.Advance(speed)
	if adv.LandmarkRetired {
		s.events.Emit(Event{Type: EventLandmarkPassed})
	}

	s.Plane.Damp()
	s.Plane.RampSpeed()

	pose := s.Plane.Pose
	res := s.Obstacles.Update(s.World, pose.TX, pose.TY)
	// Rings earlier in the walk than a collision still count.
	for _, p := range res.PassedAt {
		s.State.Score++
		s.events.Emit(Event{Type: EventObstaclePassed, Pos: p, Data: int(s.State.Score)})
	}
	if res.Collided {
		s.State.Mode = ModeGameOver
		s.events.Emit(Event{Type: EventCollision, Pos: res.CollisionAt, Data: int(s.State.Score)})
	}
}

// Snapshot is a read-only copy of everything the renderer needs for a frame.
type Snapshot struct {
	State
	Pose            Pose
	Speed           float64
	Wall            float64 // seconds since the session clock started, pauses included
	SpinDegrees     float64 // scene rotation, 0 unless spinning
	ShowcaseDegrees float64 // turntable angle for menu and game over screens
	Tiles           []Tile
	Obstacles       []Vec3
	LandmarkVisible bool
	Clouds          []Cloud
	Vehicles        []Vehicle
	Trees           []Tree
}

// Snapshot fills dst, reusing its slices.
func (s *Session) Snapshot(dst *Snapshot) {
	dst.State = s.State
	dst.Pose = s.Plane.Pose
	dst.Speed = s.Plane.Speed

	dst.Wall = s.Clock.RealElapsed()
	turn := dst.Wall * SpinRate
	dst.ShowcaseDegrees = turn
	dst.SpinDegrees = 0
	if s.State.Spin {
		dst.SpinDegrees = turn
	}

	dst.Tiles = append(dst.Tiles[:0], s.World.Tiles...)
	dst.Obstacles = s.Obstacles.Positions(s.World, dst.Pose.TX, dst.Pose.TY, dst.Obstacles[:0])
	dst.LandmarkVisible = !s.World.LandmarkPassed()
	dst.Clouds = append(dst.Clouds[:0], s.Clouds.Clouds...)
	dst.Vehicles = append(dst.Vehicles[:0], s.Traffic.Cars...)
	dst.Trees = append(dst.Trees[:0], s.Trees.Trees...)
}
