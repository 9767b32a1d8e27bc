package swrast

import "github.com/go-gl/mathgl/mgl64"

// Mesh is a list of positions and the triangles indexing into it.
type Mesh struct {
	Positions  []mgl64.Vec3
	Indices    [][3]int
	pointIndex map[mgl64.Vec3]int
}

func NewMesh() *Mesh {
	return &Mesh{
		Positions:  make([]mgl64.Vec3, 0, 16),
		pointIndex: make(map[mgl64.Vec3]int),
	}
}

// AddPoint returns the index of p, adding it only if the exact same
// coordinates are not already present.
func (m *Mesh) AddPoint(p mgl64.Vec3) int {
	if index, found := m.pointIndex[p]; found {
		return index
	}
	m.Positions = append(m.Positions, p)
	newIndex := len(m.Positions) - 1
	m.pointIndex[p] = newIndex
	return newIndex
}

func (m *Mesh) AddTriangle(a, b, c mgl64.Vec3) [3]int {
	tri := [3]int{m.AddPoint(a), m.AddPoint(b), m.AddPoint(c)}
	m.Indices = append(m.Indices, tri)
	return tri
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices)
}

// DefaultTriangle is the single triangle the renderer draws when no mesh
// file is given.
func DefaultTriangle() *Mesh {
	m := NewMesh()
	m.AddTriangle(
		mgl64.Vec3{2, 0, -2},
		mgl64.Vec3{0, 2, -2},
		mgl64.Vec3{-2, 0, -2},
	)
	return m
}
