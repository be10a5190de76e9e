package parameter

// HUD
const (
	// HUDBarWidth is the cell width of health and shield bars
	HUDBarWidth = 20

	// HUDHealthGood and HUDHealthWarn are the bar color thresholds in percent
	HUDHealthGood = 60
	HUDHealthWarn = 30

	// CellAspect is the height to width ratio of a terminal cell
	CellAspect = 2.0

	// CameraFOV is the vertical field of view in degrees
	CameraFOV = 60.0
)
