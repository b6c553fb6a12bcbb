// Package camera provides the fixed viewpoint for scene rendering.
package camera

import (
	"github.com/Faultbox/deskscene/pkg/math"
)

// Camera is a static perspective camera looking at a target point.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	FovYDeg float32
	Near    float32
	Far     float32
}

// New creates a camera placed in front of and above the desk, looking at the
// area between the lamp and the book.
func New() *Camera {
	return &Camera{
		Position: math.V3(0, 7, 22),
		Target:   math.V3(0, 2, 0),
		Up:       math.V3(0, 1, 0),
		FovYDeg:  60,
		Near:     0.1,
		Far:      100,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection for the given aspect
// ratio.
func (c *Camera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(math.Radians(c.FovYDeg), aspect, c.Near, c.Far)
}
