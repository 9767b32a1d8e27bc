package swrast

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Frustum describes a symmetric perspective view volume.
type Frustum struct {
	FovY   float64 // vertical field of view, degrees
	Aspect float64 // width / height
	Near   float64
	Far    float64
}

// Validate reports parameters that would give a singular or flipped
// projection.
func (f Frustum) Validate() error {
	if f.FovY <= 0 || f.FovY >= 180 {
		return fmt.Errorf("fov %v outside (0, 180): %w", f.FovY, ErrInvalidArgument)
	}
	if f.Aspect <= 0 {
		return fmt.Errorf("aspect ratio %v: %w", f.Aspect, ErrInvalidArgument)
	}
	if f.Near <= 0 || f.Far <= f.Near {
		return fmt.Errorf("near %v, far %v: need 0 < near < far: %w", f.Near, f.Far, ErrInvalidArgument)
	}
	return nil
}

func (f Frustum) Matrix() mgl64.Mat4 {
	return Projection(f.FovY, f.Aspect, f.Near, f.Far)
}

type Camera struct {
	cameraPosition mgl64.Vec3
	frustum        Frustum
}

func NewCamera(eye mgl64.Vec3, f Frustum) (*Camera, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &Camera{
		cameraPosition: eye,
		frustum:        f,
	}, nil
}

func (c *Camera) View() mgl64.Mat4 {
	return View(c.cameraPosition)
}

func (c *Camera) Projection() mgl64.Mat4 {
	return c.frustum.Matrix()
}

func (c *Camera) Frustum() Frustum {
	return c.frustum
}

func (c *Camera) Position() mgl64.Vec3 {
	return c.cameraPosition
}

func (c *Camera) SetPosition(x, y, z float64) {
	c.cameraPosition = mgl64.Vec3{x, y, z}
}

func (c *Camera) AddXPosition(x float64) {
	c.cameraPosition[0] += x
}

func (c *Camera) AddYPosition(y float64) {
	c.cameraPosition[1] += y
}

func (c *Camera) AddZPosition(z float64) {
	c.cameraPosition[2] += z
}
