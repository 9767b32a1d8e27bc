package swrast

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func vecAlmostEqual(a, b mgl64.Vec3, threshold float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > threshold {
			return false
		}
	}
	return true
}

var testAxes = []mgl64.Vec3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 1},
	{-2, 0.5, 3},
	{0.1, -7, 0.3},
}

var testAngles = []float64{-math.Pi, -1.3, -0.25, 0.5, math.Pi / 2, 2.9}

func TestTranslation(t *testing.T) {
	m := Translation(mgl64.Vec3{3, -4, 5})
	want := mgl64.Mat4FromRows(
		mgl64.Vec4{1, 0, 0, 3},
		mgl64.Vec4{0, 1, 0, -4},
		mgl64.Vec4{0, 0, 1, 5},
		mgl64.Vec4{0, 0, 0, 1},
	)
	if m != want {
		t.Errorf("Translation() =\n%s\nwant\n%s", FormatMatrix(m), FormatMatrix(want))
	}
}

func TestRotationZeroAngleIsIdentity(t *testing.T) {
	for _, axis := range testAxes {
		m := BuildRotation(axis, 0)
		if !m.ApproxEqualThreshold(mgl64.Ident4(), float64EqualityThreshold) {
			t.Errorf("BuildRotation(%v, 0) =\n%s", axis, FormatMatrix(m))
		}
	}
}

func TestRotationDegenerateAxis(t *testing.T) {
	testCases := []struct {
		name    string
		epsilon float64
		axis    mgl64.Vec3
	}{
		{name: "zero axis", epsilon: DegenerateAxisEpsilon, axis: mgl64.Vec3{0, 0, 0}},
		{name: "below default epsilon", epsilon: DegenerateAxisEpsilon, axis: mgl64.Vec3{1e-9, 0, 0}},
		{name: "below configured epsilon", epsilon: 1e-3, axis: mgl64.Vec3{1e-4, 1e-4, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewTransformBuilder()
			b.Epsilon = tc.epsilon
			for _, angle := range testAngles {
				if m := b.Rotation(tc.axis, angle); m != mgl64.Ident4() {
					t.Errorf("Rotation(%v, %v) =\n%s\nwant identity", tc.axis, angle, FormatMatrix(m))
				}
			}
		})
	}
}

func TestRotationIsProper(t *testing.T) {
	for _, axis := range testAxes {
		for _, angle := range testAngles {
			r := BuildRotation(axis.Normalize(), angle).Mat3()
			if !r.Transpose().Mul3(r).ApproxEqualThreshold(mgl64.Ident3(), DefaultTolerance) {
				t.Errorf("axis %v angle %v: R^T R is not identity", axis, angle)
			}
			if det := r.Det(); math.Abs(det-1) > DefaultTolerance {
				t.Errorf("axis %v angle %v: det = %v, want 1", axis, angle, det)
			}
		}
	}
}

func TestRotationRoundTrip(t *testing.T) {
	for _, axis := range testAxes {
		for _, angle := range testAngles {
			m := BuildRotation(axis, angle).Mul4(BuildRotation(axis, -angle))
			if !m.ApproxEqualThreshold(mgl64.Ident4(), DefaultTolerance) {
				t.Errorf("axis %v angle %v: R(θ)R(-θ) =\n%s", axis, angle, FormatMatrix(m))
			}
		}
	}
}

func TestRotationComposition(t *testing.T) {
	z := mgl64.Vec3{0, 0, 1}
	for _, theta := range testAngles {
		for _, phi := range testAngles {
			got := BuildRotation(z, phi).Mul4(BuildRotation(z, theta))
			want := BuildRotation(z, theta+phi)
			if !got.ApproxEqualThreshold(want, DefaultTolerance) {
				t.Errorf("R(%v)R(%v) != R(%v)", phi, theta, theta+phi)
			}
		}
	}
}

func TestRotationMatchesAngleAxis(t *testing.T) {
	for _, axis := range testAxes {
		for _, angle := range testAngles {
			got := BuildRotation(axis, angle)
			want := mgl64.HomogRotate3D(angle, axis.Normalize())
			if !got.ApproxEqualThreshold(want, DefaultTolerance) {
				t.Errorf("axis %v angle %v:\n%s\nwant\n%s", axis, angle, FormatMatrix(got), FormatMatrix(want))
			}
		}
	}
}

// alignedRotation rotates the axis onto +z, turns about z and rotates back.
func alignedRotation(axis mgl64.Vec3, angle float64) mgl64.Mat4 {
	x, y, z := axis.X(), axis.Y(), axis.Z()
	alignY := mgl64.HomogRotate3DY(-math.Atan2(x, z))
	alignX := mgl64.HomogRotate3DX(math.Atan2(y, math.Sqrt(x*x+z*z)))
	align := alignX.Mul4(alignY)
	return align.Transpose().Mul4(mgl64.HomogRotate3DZ(angle)).Mul4(align)
}

func TestRotationMatchesAxisAlignment(t *testing.T) {
	for _, axis := range testAxes {
		for _, angle := range testAngles {
			got := BuildRotation(axis, angle)
			want := alignedRotation(axis, angle)
			if !got.ApproxEqualThreshold(want, DefaultTolerance) {
				t.Errorf("axis %v angle %v:\n%s\nwant\n%s", axis, angle, FormatMatrix(got), FormatMatrix(want))
			}
		}
	}
}

func TestModelQuarterTurn(t *testing.T) {
	got := ApplyPoint(BuildModel(90), mgl64.Vec3{1, 0, 0})
	if !vecAlmostEqual(got, mgl64.Vec3{0, 1, 0}, 1e-4) {
		t.Errorf("BuildModel(90) * (1,0,0) = %v, want (0,1,0)", got)
	}
}

func TestModelPivot(t *testing.T) {
	b := NewTransformBuilder()
	b.Pivot = mgl64.Vec3{1, 1, 0}
	m := b.Model(90)

	testCases := []struct {
		name  string
		input mgl64.Vec3
		want  mgl64.Vec3
	}{
		{name: "pivot stays put", input: mgl64.Vec3{1, 1, 0}, want: mgl64.Vec3{1, 1, 0}},
		{name: "point right of pivot", input: mgl64.Vec3{2, 1, 0}, want: mgl64.Vec3{1, 2, 0}},
		{name: "z is untouched", input: mgl64.Vec3{1, 0, 4}, want: mgl64.Vec3{2, 1, 4}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ApplyPoint(m, tc.input); !vecAlmostEqual(got, tc.want, 1e-9) {
				t.Errorf("Model(90) * %v = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestViewMovesEyeToOrigin(t *testing.T) {
	eye := mgl64.Vec3{0, 0, 5}
	if got := ApplyPoint(BuildView(eye), eye); got != (mgl64.Vec3{0, 0, 0}) {
		t.Errorf("BuildView(eye) * eye = %v, want origin", got)
	}
	if got := ApplyPoint(BuildView(eye), mgl64.Vec3{1, 2, 3}); got != (mgl64.Vec3{1, 2, -2}) {
		t.Errorf("BuildView(eye) * (1,2,3) = %v, want (1,2,-2)", got)
	}
}

func TestProjectionNearFar(t *testing.T) {
	testCases := []struct {
		name                   string
		fov, aspect, near, far float64
	}{
		{name: "renderer defaults", fov: 45, aspect: 1, near: 0.1, far: 50},
		{name: "wide", fov: 90, aspect: 16.0 / 9.0, near: 1, far: 100},
		{name: "narrow", fov: 10, aspect: 0.5, near: 2, far: 3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildProjection(tc.fov, tc.aspect, tc.near, tc.far)
			if z := ApplyPoint(p, mgl64.Vec3{0, 0, -tc.near}).Z(); math.Abs(z+1) > DefaultTolerance {
				t.Errorf("near plane z = %v, want -1", z)
			}
			if z := ApplyPoint(p, mgl64.Vec3{0, 0, -tc.far}).Z(); math.Abs(z-1) > DefaultTolerance {
				t.Errorf("far plane z = %v, want 1", z)
			}
			if w := TransformPoint(p, mgl64.Vec3{0, 0, -tc.near}).W(); !almostEqual(w, tc.near) {
				t.Errorf("clip w = %v, want %v", w, tc.near)
			}
		})
	}
}

func TestProjectionFrustumEdges(t *testing.T) {
	p := BuildProjection(90, 1, 1, 100)
	if x := ApplyPoint(p, mgl64.Vec3{1, 0, -1}).X(); !almostEqual(x, 1) {
		t.Errorf("right edge x = %v, want 1", x)
	}
	if y := ApplyPoint(p, mgl64.Vec3{0, -1, -1}).Y(); !almostEqual(y, -1) {
		t.Errorf("bottom edge y = %v, want -1", y)
	}

	// aspect 2 doubles the horizontal extent
	p = BuildProjection(90, 2, 1, 100)
	if x := ApplyPoint(p, mgl64.Vec3{2, 0, -1}).X(); !almostEqual(x, 1) {
		t.Errorf("aspect 2 right edge x = %v, want 1", x)
	}
	// edges stay on the edges deeper in the frustum
	if x := ApplyPoint(p, mgl64.Vec3{-20, 0, -10}).X(); !almostEqual(x, -1) {
		t.Errorf("aspect 2 left edge at depth 10 x = %v, want -1", x)
	}
}

func TestMVPOrder(t *testing.T) {
	model := BuildModel(90)
	view := BuildView(mgl64.Vec3{3, 0, 5})
	proj := BuildProjection(90, 1, 1, 100)

	got := MVP(model, view, proj)
	if want := proj.Mul4(view).Mul4(model); got != want {
		t.Fatalf("MVP() =\n%s\nwant\n%s", FormatMatrix(got), FormatMatrix(want))
	}

	// (1,0,0) -> model (0,1,0) -> view (-3,1,-5)
	eye := ApplyPoint(view.Mul4(model), mgl64.Vec3{1, 0, 0})
	if !vecAlmostEqual(eye, mgl64.Vec3{-3, 1, -5}, 1e-9) {
		t.Errorf("view*model point = %v, want (-3,1,-5)", eye)
	}
	ndc := ApplyPoint(got, mgl64.Vec3{1, 0, 0})
	if !almostEqual(ndc.X(), -0.6) || !almostEqual(ndc.Y(), 0.2) {
		t.Errorf("ndc = %v, want x=-0.6 y=0.2", ndc)
	}
}

func TestFormatMatrix(t *testing.T) {
	want := "1.000000 0.000000 0.000000 2.000000\n" +
		"0.000000 1.000000 0.000000 0.000000\n" +
		"0.000000 0.000000 1.000000 0.000000\n" +
		"0.000000 0.000000 0.000000 1.000000"
	if got := FormatMatrix(Translation(mgl64.Vec3{2, 0, 0})); got != want {
		t.Errorf("FormatMatrix() = %q, want %q", got, want)
	}
}
