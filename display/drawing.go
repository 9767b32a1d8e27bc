package display

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

func drawFrame(screen, frame *ebiten.Image, angle float64, eye mgl64.Vec3) {
	if frame != nil {
		screen.DrawImage(frame, &ebiten.DrawImageOptions{})
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"angle: %.0f  eye: (%.1f, %.1f, %.1f)\nA/D rotate, arrows/PgUp/PgDn move, R reset, Esc quit\nFPS: %0.2f",
		angle, eye.X(), eye.Y(), eye.Z(), ebiten.ActualFPS()))
}
