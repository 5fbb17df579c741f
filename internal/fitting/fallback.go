package fitting

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/izgitnew/bathroom-remodel/internal/assets"
)

// PlaceholderSource is the Source recorded on synthesized fallback models.
const PlaceholderSource = "placeholder"

// Placeholder synthesizes the fallback model for a request whose candidates
// were all exhausted: a box whose native bounds already equal the target
// footprint (laid out per the request's axis remap), so the scaling step is a
// unit no-op and placement proceeds exactly as for a real asset. Every
// fixture slot is therefore always occupied by something.
func Placeholder(req Request) *assets.Model {
	remap := req.Remap
	if remap == nil {
		remap = IdentityRemap()
	}
	var size rl.Vector3
	setAxis(&size, remap.Width, req.Footprint.Width)
	setAxis(&size, remap.Height, req.Footprint.Height)
	setAxis(&size, remap.Depth, req.Footprint.Depth)

	root := assets.NewNode(PlaceholderSource)
	root.Points = assets.BoxPoints(rl.NewBoundingBox(
		rl.NewVector3(-size.X/2, -size.Y/2, -size.Z/2),
		rl.NewVector3(size.X/2, size.Y/2, size.Z/2),
	))
	return &assets.Model{Source: PlaceholderSource, Root: root}
}
