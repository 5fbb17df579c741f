package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/izgitnew/bathroom-remodel/internal/scene"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
)

// Debug draws runtime overlays: FPS and fixture pipeline completion. The
// fixture counter makes the eventually-consistent scene visible: it climbs as
// pipelines complete, in no particular order.
type Debug struct {
	ShowFPS  bool
	fixtures *scene.Registry
	expected int
}

// New returns a Debug overlay for the given registry. expected is the number
// of fixtures the plan installs.
func New(fixtures *scene.Registry, expected int) *Debug {
	return &Debug{fixtures: fixtures, expected: expected}
}

// Draw renders enabled overlays at the top-right. Call after the 3D scene in
// the draw loop.
func (d *Debug) Draw() {
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		text := fmt.Sprintf("FPS: %d", rl.GetFPS())
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}

	if d.fixtures != nil && d.expected > 0 {
		done := d.fixtures.Len()
		color := rl.Yellow
		if done >= d.expected {
			color = rl.Green
		}
		text := fmt.Sprintf("Fixtures: %d/%d", done, d.expected)
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, color)
	}
}
