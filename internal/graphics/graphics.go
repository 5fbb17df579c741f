package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1600
	windowHeight = 900
	windowTitle  = "Bathroom Remodel"
)

// Run opens the window and drives the main loop. start runs once after the
// window and GL context exist (model loading uploads meshes, so the asset
// pipelines must not start earlier). Each frame calls update (camera), then
// clears the screen and calls draw.
func Run(start, update, draw func()) {
	rl.InitWindow(windowWidth, windowHeight, windowTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	if start != nil {
		start()
	}

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(24, 26, 30, 255))
		draw()
		rl.EndDrawing()
	}
}
