package swrast

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
)

// MeshEnv names a PLY file to render instead of the default triangle.
const MeshEnv = "SWRAST_MESH"

// RotateMode is the only mode the renderer knows. Any mode token selects it.
const RotateMode = "-r"

type Options struct {
	Width       int
	Height      int
	Eye         mgl64.Vec3
	Frustum     Frustum
	Mode        string
	Angle       float64
	Output      string
	Interactive bool
	MeshPath    string
}

func DefaultOptions() Options {
	return Options{
		Width:  700,
		Height: 700,
		Eye:    mgl64.Vec3{0, 0, 5},
		Frustum: Frustum{
			FovY:   45,
			Aspect: 1,
			Near:   0.1,
			Far:    50,
		},
		Mode:        RotateMode,
		Output:      "output.png",
		Interactive: true,
	}
}

// ParseArgs reads "[<mode> <angle> [output_filename]]" (program name not
// included). Fewer than two arguments select the interactive window.
// Arguments after the output filename are ignored.
func ParseArgs(args []string, getenv func(string) string) (Options, error) {
	opts := DefaultOptions()
	if getenv != nil {
		opts.MeshPath = getenv(MeshEnv)
	}

	if len(args) < 2 {
		return opts, nil
	}
	if len(args) > 3 {
		log.Printf("ignoring %d extra arguments", len(args)-3)
	}
	if args[0] != RotateMode {
		log.Printf("unknown mode %q, rotating", args[0])
	}
	opts.Mode = args[0]

	angle, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return opts, fmt.Errorf("angle %q: %w", args[1], ErrInvalidArgument)
	}
	opts.Angle = angle
	opts.Interactive = false

	if len(args) >= 3 {
		opts.Output = args[2]
		if !SupportedExtension(filepath.Ext(opts.Output)) {
			return opts, fmt.Errorf("output %q: %w", opts.Output, ErrUnsupportedFormat)
		}
	}
	return opts, nil
}
