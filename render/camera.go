package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starfall/parameter"
)

const (
	cameraNear = 0.1
	cameraFar  = 400.0
)

// Camera is a perspective pinhole projecting world space onto the cell grid
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
	FOV    float64 // Vertical, degrees

	view       mgl64.Mat4
	projection mgl64.Mat4
	width      int
	height     int
}

// NewCamera creates a camera looking from eye at target
func NewCamera(eye, target, up mgl64.Vec3) *Camera {
	return &Camera{Eye: eye, Target: target, Up: up, FOV: parameter.CameraFOV}
}

// Prepare rebuilds matrices for the current eye, target and grid size
// Call once per frame after moving the camera
func (cam *Camera) Prepare(width, height int) {
	cam.width, cam.height = width, height
	aspect := 1.0
	if height > 0 {
		// Cells are taller than wide, so the grid covers fewer vertical pixels
		aspect = float64(width) / (float64(height) * parameter.CellAspect)
	}
	cam.view = mgl64.LookAtV(cam.Eye, cam.Target, cam.Up)
	cam.projection = mgl64.Perspective(mgl64.DegToRad(cam.FOV), aspect, cameraNear, cameraFar)
}

// Project maps a world point to a cell
// ok is false for points behind the camera or outside the grid; depth is view distance
func (cam *Camera) Project(p mgl64.Vec3) (col, row int, depth float64, ok bool) {
	viewPos := cam.view.Mul4x1(p.Vec4(1))
	depth = -viewPos.Z()
	if depth <= cameraNear || depth >= cameraFar {
		return 0, 0, depth, false
	}

	win := mgl64.Project(p, cam.view, cam.projection, 0, 0, cam.width, cam.height)
	col = int(math.Floor(win.X()))
	// Window origin is bottom-left, rows grow downward
	row = cam.height - 1 - int(math.Floor(win.Y()))
	if col < 0 || row < 0 || col >= cam.width || row >= cam.height {
		return col, row, depth, false
	}
	return col, row, depth, true
}

// CellsPerUnit estimates how many columns one world unit spans at depth
func (cam *Camera) CellsPerUnit(depth float64) float64 {
	if depth <= 0 || cam.height == 0 {
		return 0
	}
	rowsPerUnit := float64(cam.height) / (2 * depth * math.Tan(mgl64.DegToRad(cam.FOV)/2))
	return rowsPerUnit * parameter.CellAspect
}
