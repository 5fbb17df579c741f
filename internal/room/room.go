// Package room supplies the fixed room geometry: dimensions, surface
// coordinates read by anchor resolution, and the shell and simple fixtures
// that are built synchronously without any asset pipeline.
package room

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/izgitnew/bathroom-remodel/internal/fitting"
	"github.com/izgitnew/bathroom-remodel/internal/primitives"
)

// Room dimensions in inches. The floor is the XZ plane at Y = 0, the back
// wall faces the camera, and the front wall is left open for viewing.
const (
	Width  float32 = 120
	Height float32 = 96
	Depth  float32 = 96
	FloorY float32 = 0
)

// wallThickness is the slab thickness used when drawing walls.
const wallThickness float32 = 2

// Surfaces returns the fixed surface coordinates for anchor resolution.
// These are constants of the room, not computed from the scene.
func Surfaces() fitting.Surfaces {
	return fitting.Surfaces{
		FloorY: FloorY,
		LeftX:  -Width / 2,
		RightX: Width / 2,
		BackZ:  -Depth / 2,
		FrontZ: Depth / 2,
	}
}

// SimpleFixture is a single-primitive furnishing (towel ring, light bar)
// placed with literal coordinates; these never go through the asset pipeline.
type SimpleFixture struct {
	Prim     string
	Position rl.Vector3
	Scale    rl.Vector3
	Yaw      float32
	Color    rl.Color
}

// SimpleFixtures returns the fixed single-primitive furnishings: a towel
// ring on the right wall and a light bar above the mirror on the back wall.
func SimpleFixtures() []SimpleFixture {
	return []SimpleFixture{
		{
			Prim:     "cylinder",
			Position: rl.NewVector3(Width/2-2, 40, 20),
			Scale:    rl.NewVector3(8, 1.5, 8),
			Yaw:      math32.Pi / 2,
			Color:    rl.NewColor(200, 200, 205, 255),
		},
		{
			Prim:     "cube",
			Position: rl.NewVector3(0, 78, -Depth/2+2),
			Scale:    rl.NewVector3(30, 3, 4),
			Color:    rl.NewColor(245, 240, 220, 255),
		},
	}
}

var (
	floorColor = rl.NewColor(196, 188, 176, 255)
	wallColor  = rl.NewColor(226, 230, 232, 255)
)

// DrawShell draws the floor and the back, left, and right walls. The front
// wall is omitted so the camera can see in. Call between BeginMode3D and
// EndMode3D.
func DrawShell(prims *primitives.Registry) {
	prims.Draw("plane", rl.NewVector3(0, FloorY, 0), rl.NewVector3(Width, 1, Depth), 0, floorColor)
	prims.Draw("cube", rl.NewVector3(0, Height/2, -Depth/2-wallThickness/2),
		rl.NewVector3(Width, Height, wallThickness), 0, wallColor)
	prims.Draw("cube", rl.NewVector3(-Width/2-wallThickness/2, Height/2, 0),
		rl.NewVector3(wallThickness, Height, Depth), 0, wallColor)
	prims.Draw("cube", rl.NewVector3(Width/2+wallThickness/2, Height/2, 0),
		rl.NewVector3(wallThickness, Height, Depth), 0, wallColor)
}

// DrawSimpleFixtures draws the fixed furnishings from SimpleFixtures.
func DrawSimpleFixtures(prims *primitives.Registry) {
	for _, f := range SimpleFixtures() {
		prims.Draw(f.Prim, f.Position, f.Scale, f.Yaw, f.Color)
	}
}
