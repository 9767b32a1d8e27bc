package swrast

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

type Buffers int

const (
	Color Buffers = 1 << iota
	Depth
)

type Primitive int

const (
	Line Primitive = iota
	Triangle
)

func (p Primitive) String() string {
	switch p {
	case Line:
		return "line"
	case Triangle:
		return "triangle"
	}
	return fmt.Sprintf("primitive(%d)", int(p))
}

// PosBufID and IndBufID are handles returned by the buffer loaders.
type PosBufID struct{ id int }
type IndBufID struct{ id int }

var lineColor = mgl32.Vec3{255, 255, 255}

// Rasterizer draws indexed triangles as wireframes into a framebuffer using
// the currently set model, view and projection matrices.
type Rasterizer struct {
	width, height int

	model      mgl64.Mat4
	view       mgl64.Mat4
	projection mgl64.Mat4
	near, far  float64

	posBufs map[int][]mgl64.Vec3
	indBufs map[int][][3]int
	nextID  int

	frameBuf *Framebuffer
	depthBuf []float64
}

func NewRasterizer(width, height int) *Rasterizer {
	r := &Rasterizer{
		width:      width,
		height:     height,
		model:      mgl64.Ident4(),
		view:       mgl64.Ident4(),
		projection: mgl64.Ident4(),
		near:       0.1,
		far:        100,
		posBufs:    make(map[int][]mgl64.Vec3),
		indBufs:    make(map[int][][3]int),
		frameBuf:   NewFramebuffer(width, height),
		depthBuf:   make([]float64, width*height),
	}
	r.Clear(Color | Depth)
	return r
}

func (r *Rasterizer) getNextID() int {
	r.nextID++
	return r.nextID
}

func (r *Rasterizer) LoadPositions(positions []mgl64.Vec3) PosBufID {
	id := r.getNextID()
	buf := make([]mgl64.Vec3, len(positions))
	copy(buf, positions)
	r.posBufs[id] = buf
	return PosBufID{id: id}
}

func (r *Rasterizer) LoadIndices(indices [][3]int) IndBufID {
	id := r.getNextID()
	buf := make([][3]int, len(indices))
	copy(buf, indices)
	r.indBufs[id] = buf
	return IndBufID{id: id}
}

func (r *Rasterizer) SetModel(m mgl64.Mat4)      { r.model = m }
func (r *Rasterizer) SetView(v mgl64.Mat4)       { r.view = v }
func (r *Rasterizer) SetProjection(p mgl64.Mat4) { r.projection = p }

// SetDepthRange sets the eye-space distances NDC z in [-1, 1] is stretched
// back onto when writing the depth buffer.
func (r *Rasterizer) SetDepthRange(near, far float64) {
	r.near, r.far = near, far
}

func (r *Rasterizer) Clear(buff Buffers) {
	if buff&Color == Color {
		r.frameBuf.Fill(mgl32.Vec3{0, 0, 0})
	}
	if buff&Depth == Depth {
		for i := range r.depthBuf {
			r.depthBuf[i] = math.Inf(1)
		}
	}
}

func (r *Rasterizer) FrameBuffer() *Framebuffer {
	return r.frameBuf
}

// Draw rasterizes every triangle of the index buffer. Indices are checked
// before anything is drawn. Triangles with a vertex nearer to the eye than
// the near distance are skipped.
func (r *Rasterizer) Draw(posID PosBufID, indID IndBufID, prim Primitive) error {
	if prim != Triangle {
		return fmt.Errorf("drawing %s primitives: %w", prim, ErrInvalidArgument)
	}
	buf, ok := r.posBufs[posID.id]
	if !ok {
		return fmt.Errorf("unknown position buffer %d: %w", posID.id, ErrInvalidArgument)
	}
	ind, ok := r.indBufs[indID.id]
	if !ok {
		return fmt.Errorf("unknown index buffer %d: %w", indID.id, ErrInvalidArgument)
	}
	for n, tri := range ind {
		for _, idx := range tri {
			if idx < 0 || idx >= len(buf) {
				return fmt.Errorf("triangle %d vertex %d: %w", n, idx, ErrIndexOutOfRange)
			}
		}
	}

	f1 := (r.far - r.near) / 2
	f2 := (r.far + r.near) / 2
	mvp := MVP(r.model, r.view, r.projection)

	for _, tri := range ind {
		var v [3]mgl64.Vec3
		visible := true
		for k, idx := range tri {
			clip := TransformPoint(mvp, buf[idx])
			// w is the distance in front of the eye
			if clip.W() < r.near {
				visible = false
				break
			}
			ndc := PerspectiveDivide(clip)
			v[k] = mgl64.Vec3{
				0.5 * float64(r.width) * (ndc.X() + 1),
				0.5 * float64(r.height) * (ndc.Y() + 1),
				ndc.Z()*f1 + f2,
			}
		}
		if !visible {
			continue
		}
		r.rasterizeWireframe(v)
	}
	return nil
}

func (r *Rasterizer) rasterizeWireframe(v [3]mgl64.Vec3) {
	r.drawLine(v[2], v[0])
	r.drawLine(v[2], v[1])
	r.drawLine(v[1], v[0])
}

// clipLine trims the segment to the frame rectangle with Liang-Barsky.
// ok is false when nothing of it is inside.
func (r *Rasterizer) clipLine(begin, end mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3, bool) {
	for _, v := range [6]float64{begin.X(), begin.Y(), begin.Z(), end.X(), end.Y(), end.Z()} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return begin, end, false
		}
	}

	d := end.Sub(begin)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X(), begin.X()},
		{d.X(), float64(r.width) - begin.X()},
		{-d.Y(), begin.Y()},
		{d.Y(), float64(r.height) - begin.Y()},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return begin, end, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
		if t0 > t1 {
			return begin, end, false
		}
	}
	return begin.Add(d.Mul(t0)), begin.Add(d.Mul(t1)), true
}

// drawLine is Bresenham's algorithm between two screen-space points. Depth is
// interpolated linearly along the major axis.
func (r *Rasterizer) drawLine(begin, end mgl64.Vec3) {
	begin, end, ok := r.clipLine(begin, end)
	if !ok {
		return
	}
	x0, y0 := int(math.Floor(begin.X())), int(math.Floor(begin.Y()))
	x1, y1 := int(math.Floor(end.X())), int(math.Floor(end.Y()))

	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	steps := max(dx, -dy)
	e := dx + dy
	for i := 0; ; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		r.setPixel(x0, y0, begin.Z()+(end.Z()-begin.Z())*t, lineColor)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (r *Rasterizer) setPixel(x, y int, z float64, c mgl32.Vec3) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	idx := r.getIndex(x, y)
	if z > r.depthBuf[idx] {
		return
	}
	r.depthBuf[idx] = z
	r.frameBuf.Pix[idx] = c
}

func (r *Rasterizer) getIndex(x, y int) int {
	return (r.height-1-y)*r.width + x
}
