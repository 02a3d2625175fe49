package sim

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Floats returns the colour as 0..1 components.
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

// Building floor channels. A floor's colour picks its red from the lot's
// gridZ, green from gridX and blue from the floor number.
var (
	buildingRed   = [BuildingColors]uint8{26, 102, 0, 230, 51, 128, 0, 179, 128, 0}
	buildingGreen = [BuildingColors]uint8{51, 0, 102, 128, 51, 0, 77, 230, 0, 51}
	buildingBlue  = [BuildingColors]uint8{102, 128, 0, 179, 230, 0, 26, 51, 128, 0}
)

// FloorColor returns the colour of one floor of the building on a lot.
func FloorColor(gridX, gridZ, floor int) RGB {
	return RGB{
		R: buildingRed[floorMod(gridZ, BuildingColors)],
		G: buildingGreen[floorMod(gridX, BuildingColors)],
		B: buildingBlue[floorMod(floor, BuildingColors)],
	}
}

var VehicleColors = [...]RGB{
	{R: 204, G: 26, B: 26},   // red
	{R: 26, G: 26, B: 204},   // blue
	{R: 230, G: 230, B: 26},  // yellow
	{R: 26, G: 179, B: 26},   // green
	{R: 230, G: 128, B: 0},   // orange
	{R: 153, G: 26, B: 153},  // purple
	{R: 51, G: 51, B: 51},    // dark gray
	{R: 230, G: 230, B: 230}, // white
}

var Palette = struct {
	SkyHorizon RGB
	SkyZenith  RGB
	Grass      RGB
	Memorial   RGB
	Asphalt    RGB
	RoadLine   RGB
	Ring       RGB
	Window     RGB
	Trunk      RGB
	Foliage    [3]RGB
	PlaneBody  RGB
	PlaneWing  RGB
	Cockpit    RGB
	Cloud      RGB
	SunCore    RGB
	Tower      RGB
	Beacon     RGB
	Parliament RGB
	MinarWhite RGB
	MinarSun   RGB
}{
	SkyHorizon: RGB{R: 135, G: 207, B: 235},
	SkyZenith:  RGB{R: 64, G: 105, B: 224},
	Grass:      RGB{R: 38, G: 140, B: 38},
	Memorial:   RGB{R: 0, G: 128, B: 26},
	Asphalt:    RGB{R: 64, G: 64, B: 71},
	RoadLine:   RGB{R: 230, G: 204, B: 26},
	Ring:       RGB{R: 0, G: 255, B: 26},
	Window:     RGB{R: 0, G: 0, B: 0},
	Trunk:      RGB{R: 115, G: 64, B: 26},
	Foliage: [3]RGB{
		{R: 26, G: 128, B: 38},
		{R: 38, G: 153, B: 51},
		{R: 51, G: 166, B: 64},
	},
	PlaneBody:  RGB{R: 128, G: 255, B: 0},
	PlaneWing:  RGB{R: 204, G: 255, B: 0},
	Cockpit:    RGB{R: 0, G: 0, B: 0},
	Cloud:      RGB{R: 255, G: 255, B: 255},
	SunCore:    RGB{R: 255, G: 255, B: 242},
	Tower:      RGB{R: 200, G: 60, B: 40},
	Beacon:     RGB{R: 255, G: 30, B: 30},
	Parliament: RGB{R: 190, G: 170, B: 140},
	MinarWhite: RGB{R: 240, G: 240, B: 240},
	MinarSun:   RGB{R: 220, G: 20, B: 40},
}
