package swrast

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
)

// World ties a mesh, a camera and a rasterizer together and renders the
// mesh rotated about the builder's axis.
type World struct {
	builder    TransformBuilder
	camera     *Camera
	rasterizer *Rasterizer
	posID      PosBufID
	indID      IndBufID
	home       mgl64.Vec3
}

func NewWorld(opts Options, mesh *Mesh) (*World, error) {
	camera, err := NewCamera(opts.Eye, opts.Frustum)
	if err != nil {
		return nil, err
	}

	r := NewRasterizer(opts.Width, opts.Height)
	r.SetDepthRange(camera.Frustum().Near, camera.Frustum().Far)

	w := &World{
		builder:    NewTransformBuilder(),
		camera:     camera,
		rasterizer: r,
		posID:      r.LoadPositions(mesh.Positions),
		indID:      r.LoadIndices(mesh.Indices),
		home:       camera.Position(),
	}
	log.Printf("World ready: %d points, %d triangles", len(mesh.Positions), mesh.TriangleCount())
	return w, nil
}

func (w *World) Eye() mgl64.Vec3 {
	return w.camera.Position()
}

// MoveEye shifts the camera by the given world-space offsets. The next
// Render picks up the new view.
func (w *World) MoveEye(dx, dy, dz float64) {
	w.camera.AddXPosition(dx)
	w.camera.AddYPosition(dy)
	w.camera.AddZPosition(dz)
}

// ResetEye puts the camera back where the world was created.
func (w *World) ResetEye() {
	w.camera.SetPosition(w.home.X(), w.home.Y(), w.home.Z())
}

// Render clears the buffers and draws the mesh at angleDegrees.
func (w *World) Render(angleDegrees float64) (*Framebuffer, error) {
	r := w.rasterizer
	r.Clear(Color | Depth)

	r.SetModel(w.builder.Model(angleDegrees))
	r.SetView(w.camera.View())
	r.SetProjection(w.camera.Projection())

	if err := r.Draw(w.posID, w.indID, Triangle); err != nil {
		return nil, err
	}
	return r.FrameBuffer(), nil
}
