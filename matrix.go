package swrast

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// TransformPoint applies m to p as the homogeneous point (x, y, z, 1).
func TransformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec4 {
	return m.Mul4x1(p.Vec4(1))
}

// PerspectiveDivide returns (x/w, y/w, z/w). A zero w is returned as is.
func PerspectiveDivide(v mgl64.Vec4) mgl64.Vec3 {
	if v.W() == 0 {
		return v.Vec3()
	}
	return v.Vec3().Mul(1 / v.W())
}

// ApplyPoint transforms p and divides by w.
func ApplyPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return PerspectiveDivide(TransformPoint(m, p))
}

// FormatMatrix prints m row by row.
func FormatMatrix(m mgl64.Mat4) string {
	var sb strings.Builder
	for i := 0; i < 4; i++ {
		if i > 0 {
			sb.WriteString("\n")
		}
		row := m.Row(i)
		for j, val := range row {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%f", val))
		}
	}
	return sb.String()
}
