package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/izgitnew/bathroom-remodel/internal/primitives"
	"github.com/izgitnew/bathroom-remodel/internal/room"
)

const (
	gridExtent      = 120
	gridStep        = 12
	gridAlpha       = 60
	placeholderTint = 140
)

// Scene holds the orbit camera and draws the room shell, simple fixtures,
// and every fixture currently in the registry. Fixtures appear as their
// pipelines complete; drawing a partial registry is normal.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	Fixtures    *Registry
	prims       *primitives.Registry
}

// New returns a scene viewing the room through the open front wall.
// Camera orbits the room center; up is +Y.
func New(fixtures *Registry) *Scene {
	s := &Scene{Fixtures: fixtures, prims: primitives.NewRegistry()}
	s.Camera.Position = rl.NewVector3(room.Width*0.7, room.Height*0.8, room.Depth*1.1)
	s.Camera.Target = rl.NewVector3(0, room.Height*0.35, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// Update runs once per frame: orbital camera control via raylib.
func (s *Scene) Update() {
	rl.UpdateCamera(&s.Camera, rl.CameraOrbital)
}

// Draw renders the 3D scene: shell, simple fixtures, fitted fixtures, and
// optionally the floor grid. Call between ClearBackground and any 2D overlay.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera)
	s.prims.SetView(
		[3]float32{s.Camera.Position.X, s.Camera.Position.Y, s.Camera.Position.Z},
		[3]float32{0.4, 1, 0.6},
	)
	room.DrawShell(s.prims)
	room.DrawSimpleFixtures(s.prims)
	for _, f := range s.Fixtures.Snapshot() {
		s.drawFixture(f)
	}
	if s.GridVisible {
		drawFloorGrid()
	}
	rl.EndMode3D()
}

// drawFixture draws one fitted fixture. Real models go through DrawModelEx
// with the placement transform; placeholders are tinted boxes sized to the
// placement's final dimensions.
func (s *Scene) drawFixture(f Fixture) {
	p := f.Placement
	if f.Model != nil && f.Model.HasDrawable {
		rl.DrawModelEx(f.Model.Drawable, p.Position,
			rl.NewVector3(0, 1, 0), p.Yaw*rl.Rad2deg, p.Scale, rl.White)
		return
	}
	tint := rl.NewColor(placeholderTint, placeholderTint, placeholderTint, 255)
	s.prims.Draw("cube", p.Position, p.Size, p.Yaw, tint)
}

// drawFloorGrid draws a one-foot grid on the floor plane.
func drawFloorGrid() {
	c := rl.NewColor(128, 128, 128, gridAlpha)
	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridStep {
		start.X, start.Y, start.Z = float32(x), room.FloorY, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), room.FloorY, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridStep {
		start.X, start.Y, start.Z = float32(-gridExtent), room.FloorY, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), room.FloorY, float32(z)
		rl.DrawLine3D(start, end, c)
	}
}
