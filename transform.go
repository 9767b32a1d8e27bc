package swrast

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DegenerateAxisEpsilon is the axis length below which a rotation is the identity.
	DegenerateAxisEpsilon = 1e-8

	// DefaultTolerance is used when comparing matrices built by different routes.
	DefaultTolerance = 1e-5
)

// TransformBuilder builds the model, view and projection matrices of the
// pipeline. It holds no state besides its configuration, so a zero value is
// not useful; use NewTransformBuilder.
type TransformBuilder struct {
	// Axis the model rotates about.
	Axis mgl64.Vec3
	// Pivot the model rotates around.
	Pivot mgl64.Vec3
	// Epsilon below which Axis counts as zero length.
	Epsilon float64
}

func NewTransformBuilder() TransformBuilder {
	return TransformBuilder{
		Axis:    mgl64.Vec3{0, 0, 1},
		Pivot:   mgl64.Vec3{0, 0, 0},
		Epsilon: DegenerateAxisEpsilon,
	}
}

var defaultBuilder = NewTransformBuilder()

// Translation returns the identity with offset in the top-right 3x1 block.
func Translation(offset mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(offset.X(), offset.Y(), offset.Z())
}

// Rotation rotates by angle radians about an arbitrary axis using Rodrigues'
// formula. The axis does not need to be unit length. An axis shorter than
// the builder's epsilon gives the identity.
func (b TransformBuilder) Rotation(axis mgl64.Vec3, angle float64) mgl64.Mat4 {
	if axis.Len() < b.Epsilon {
		return mgl64.Ident4()
	}
	a := axis.Normalize()
	c, s := math.Cos(angle), math.Sin(angle)

	skew := mgl64.Mat3FromRows(
		mgl64.Vec3{0, -a.Z(), a.Y()},
		mgl64.Vec3{a.Z(), 0, -a.X()},
		mgl64.Vec3{-a.Y(), a.X(), 0},
	)
	r := mgl64.Ident3().Mul(c).
		Add(a.OuterProd3(a).Mul(1 - c)).
		Add(skew.Mul(s))

	return r.Mat4()
}

// Model rotates by angleDegrees about the builder's axis through its pivot:
// T(pivot) * R * T(-pivot).
func (b TransformBuilder) Model(angleDegrees float64) mgl64.Mat4 {
	toOrigin := Translation(b.Pivot.Mul(-1))
	rot := b.Rotation(b.Axis, mgl64.DegToRad(angleDegrees))
	back := Translation(b.Pivot)

	return back.Mul4(rot).Mul4(toOrigin)
}

// View moves the world so that eye sits at the origin. The camera always
// looks down -z.
func View(eye mgl64.Vec3) mgl64.Mat4 {
	return Translation(eye.Mul(-1))
}

// Projection maps the view frustum to the canonical volume [-1,1]^3.
// fovY is the vertical field of view in degrees, aspect is width/height and
// near, far are positive distances from the eye. Eye-space z = -near lands
// on NDC -1 and z = -far on +1. Arguments are not checked; see
// Frustum.Validate.
func Projection(fovY, aspect, near, far float64) mgl64.Mat4 {
	top := math.Tan(mgl64.DegToRad(fovY)/2) * near
	bottom := -top
	right := aspect * top
	left := -right

	center := mgl64.Mat4FromRows(
		mgl64.Vec4{1, 0, 0, -(left + right) / 2},
		mgl64.Vec4{0, 1, 0, -(top + bottom) / 2},
		mgl64.Vec4{0, 0, 1, -(near + far) / 2},
		mgl64.Vec4{0, 0, 0, 1},
	)
	// after the flip the box spans [near, far] along +z
	scale := mgl64.Mat4FromRows(
		mgl64.Vec4{2 / (right - left), 0, 0, 0},
		mgl64.Vec4{0, 2 / (top - bottom), 0, 0},
		mgl64.Vec4{0, 0, 2 / (far - near), 0},
		mgl64.Vec4{0, 0, 0, 1},
	)
	ortho := scale.Mul4(center)

	persp2ortho := mgl64.Mat4FromRows(
		mgl64.Vec4{near, 0, 0, 0},
		mgl64.Vec4{0, near, 0, 0},
		mgl64.Vec4{0, 0, near + far, -near * far},
		mgl64.Vec4{0, 0, 1, 0},
	)

	// right-handed view space looks down -z
	flip := mgl64.Scale3D(1, 1, -1)

	return ortho.Mul4(persp2ortho).Mul4(flip)
}

// MVP composes the pipeline in its only valid order: projection * view * model.
func MVP(model, view, projection mgl64.Mat4) mgl64.Mat4 {
	return projection.Mul4(view).Mul4(model)
}

// BuildRotation is Rotation with the default degenerate-axis epsilon.
func BuildRotation(axis mgl64.Vec3, angle float64) mgl64.Mat4 {
	return defaultBuilder.Rotation(axis, angle)
}

// BuildModel rotates about z through the origin.
func BuildModel(angleDegrees float64) mgl64.Mat4 {
	return defaultBuilder.Model(angleDegrees)
}

func BuildView(eye mgl64.Vec3) mgl64.Mat4 {
	return View(eye)
}

func BuildProjection(fovY, aspect, near, far float64) mgl64.Mat4 {
	return Projection(fovY, aspect, near, far)
}
