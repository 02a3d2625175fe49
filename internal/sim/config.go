package sim

// Tile layout along the travel axis (world units, +Z towards the camera).
const (
	TileRecycleZ = 20.0   // tiles at or past this Z are recycled
	TileResetZ   = -110.0 // recycled tiles restart here
	TileSize     = 20     // half extent of a tile's ground slab
)

// Forward speed (world units per frame).
const (
	InitialSpeed = 0.3
	MaxSpeed     = 0.7
	SpeedRamp    = 0.0002
)

// Obstacle checks.
const (
	CollisionRadius = 1.8
	PlaneRenderLift = 1.0 // plane model is drawn one unit above its origin
	PassWindowMin   = 0.0
	PassWindowMax   = 3.0
	PassWindow      = PassWindowMax - PassWindowMin
)

// Plane attitude and translation limits.
const (
	MinRotX = -11.0
	MaxRotX = 11.0
	MinRotZ = -15.0
	MaxRotZ = 10.0
	MinTX   = -4.1
	MaxTX   = 4.1
	MinTY   = -15.0
	MaxTY   = 0.1

	RotationDamping = 0.2
)

// Per-event control increments.
const (
	TranslateStep = 0.3
	RotateStep    = 1.0
)

// Camera.
const (
	DefaultZoom = 4.0
	ZoomStep    = 0.05
	MinZoom     = 1.0
	MaxZoom     = 8.0
	SpinRate    = 90.0 // degrees per wall-clock second
)

// Procedural city grid.
const (
	GridLimit      = 2500 // |gridX|, |gridZ| accepted by the tile cache
	CorridorHalf   = 5    // -CorridorHalf <= gridX <= CorridorHalf stays empty
	MaxFloors      = 5
	LotStep        = 2
	LotMin         = -(TileSize / 2) + 1
	LotMax         = TileSize / 2 // exclusive
	BuildingColors = 10
)

// Decorations.
const (
	NumClouds   = 20
	NumVehicles = 12
	NumTrees    = 40

	CloudResetZ = -130.0
	RoadHalfLen = 20.0
)
