// Package display shows rendered frames in an ebiten window and turns key
// presses into rotation and camera steps.
package display

import (
	"image"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// AngleStep is how far one key press turns the model, in degrees.
	AngleStep = 10.0
	// EyeStep is how far one key press moves the camera, in world units.
	EyeStep = 0.5
)

// RenderFunc produces the frame for a model angle in degrees.
type RenderFunc func(angle float64) (*image.RGBA, error)

// Eye is the camera the arrow keys drive.
type Eye interface {
	Eye() mgl64.Vec3
	MoveEye(dx, dy, dz float64)
	ResetEye()
}

// keys is the input sampled for one update.
type keys struct {
	turnLeft, turnRight bool
	left, right         bool
	forward, back       bool
	up, down            bool
	reset, quit         bool
}

type Game struct {
	render     RenderFunc
	eye        Eye
	angle      float64
	frameCount int
	width      int
	height     int
	frame      *ebiten.Image
	dirty      bool
}

func NewGame(render RenderFunc, eye Eye, angle float64, width, height int) *Game {
	return &Game{
		render: render,
		eye:    eye,
		angle:  angle,
		width:  width,
		height: height,
		dirty:  true,
	}
}

func (g *Game) Angle() float64 {
	return g.angle
}

// step applies one frame of key input and reports whether the window
// should close.
func (g *Game) step(k keys) bool {
	if k.quit {
		return true
	}
	if k.turnLeft {
		g.angle += AngleStep
		g.dirty = true
	} else if k.turnRight {
		g.angle -= AngleStep
		g.dirty = true
	}

	var d mgl64.Vec3
	switch {
	case k.left:
		d[0] = -EyeStep
	case k.right:
		d[0] = EyeStep
	}
	switch {
	case k.down:
		d[1] = -EyeStep
	case k.up:
		d[1] = EyeStep
	}
	switch {
	case k.forward:
		d[2] = -EyeStep
	case k.back:
		d[2] = EyeStep
	}
	if k.reset {
		g.eye.ResetEye()
		g.dirty = true
	} else if d != (mgl64.Vec3{}) {
		g.eye.MoveEye(d.X(), d.Y(), d.Z())
		g.dirty = true
	}
	return false
}

func (g *Game) Update() error {
	if g.step(keys{
		turnLeft:  inpututil.IsKeyJustPressed(ebiten.KeyA),
		turnRight: inpututil.IsKeyJustPressed(ebiten.KeyD),
		left:      inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		right:     inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		forward:   inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		back:      inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		up:        inpututil.IsKeyJustPressed(ebiten.KeyPageUp),
		down:      inpututil.IsKeyJustPressed(ebiten.KeyPageDown),
		reset:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		quit:      inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}) {
		return ebiten.Termination
	}

	if !g.dirty {
		return nil
	}
	img, err := g.render(g.angle)
	if err != nil {
		return err
	}
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.width, g.height)
	}
	g.frame.WritePixels(img.Pix)
	g.dirty = false

	log.Printf("frame count: %d", g.frameCount)
	g.frameCount++
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawFrame(screen, g.frame, g.angle, g.eye.Eye())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func Run(g *Game, title string) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	log.Println("Window closed.")
	return nil
}
