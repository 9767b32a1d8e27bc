package swrast

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

func LoadMeshFromPLYFile(fileName string) (*Mesh, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open PLY file %s: %w", fileName, err)
	}
	defer file.Close()

	mesh, err := LoadMeshFromPLYReader(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing PLY file %s: %w", fileName, err)
	}

	return mesh, nil
}

// LoadMeshFromPLYReader reads an ASCII PLY stream. Only x, y, z of each
// vertex are used; polygons are split into a triangle fan.
func LoadMeshFromPLYReader(reader io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(reader)

	var vertexCount, faceCount int
	sawMagic, sawEnd := false, false

	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "ply":
			sawMagic = true
		case "format":
			if len(parts) < 2 || parts[1] != "ascii" {
				return nil, fmt.Errorf("only ascii PLY is supported, got %q: %w", scanner.Text(), ErrInvalidArgument)
			}
		case "element":
			if len(parts) != 3 {
				continue
			}
			n, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("element count %q: %w", parts[2], err)
			}
			switch parts[1] {
			case "vertex":
				vertexCount = n
			case "face":
				faceCount = n
			}
		case "end_header":
			sawEnd = true
		}
		if sawEnd {
			break
		}
	}
	if !sawMagic || !sawEnd {
		return nil, fmt.Errorf("missing PLY header: %w", ErrInvalidArgument)
	}

	vertices := make([]mgl64.Vec3, 0, vertexCount)
	for i := 0; i < vertexCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected end of file while reading vertices")
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) < 3 {
			return nil, fmt.Errorf("invalid vertex data on line %d: %w", i, ErrInvalidArgument)
		}
		var v mgl64.Vec3
		for k := 0; k < 3; k++ {
			f, err := strconv.ParseFloat(parts[k], 64)
			if err != nil {
				return nil, fmt.Errorf("vertex %d: %w", i, err)
			}
			v[k] = f
		}
		vertices = append(vertices, v)
	}

	mesh := NewMesh()
	for i := 0; i < faceCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected end of file while reading faces")
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			return nil, fmt.Errorf("empty face on line %d: %w", i, ErrInvalidArgument)
		}
		numFaceVerts, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		if numFaceVerts < 3 || len(parts) < numFaceVerts+1 {
			return nil, fmt.Errorf("invalid face data on line %d: %w", i, ErrInvalidArgument)
		}

		face := make([]mgl64.Vec3, numFaceVerts)
		for j := 0; j < numFaceVerts; j++ {
			idx, err := strconv.Atoi(parts[j+1])
			if err != nil {
				return nil, fmt.Errorf("face %d: %w", i, err)
			}
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d references vertex %d: %w", i, idx, ErrIndexOutOfRange)
			}
			face[j] = vertices[idx]
		}
		for j := 2; j < numFaceVerts; j++ {
			mesh.AddTriangle(face[0], face[j-1], face[j])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from PLY source: %w", err)
	}

	log.Printf("Points: %d", len(mesh.Positions))
	log.Printf("Triangles: %d", mesh.TriangleCount())
	return mesh, nil
}
