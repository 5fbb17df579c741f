package fitting

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/izgitnew/bathroom-remodel/internal/assets"
)

// Surfaces carries the fixed room surface coordinates that anchor resolution
// reads. Interior is toward +X from the left wall, -X from the right wall,
// +Z from the back wall, -Z from the front wall.
type Surfaces struct {
	FloorY float32
	LeftX  float32
	RightX float32
	BackZ  float32
	FrontZ float32
}

// anchorPlane returns the anchored axis (0 = X, 2 = Z), the surface
// coordinate, and the interior-facing sign for a surface. ok is false for
// floor-center, which anchors no wall axis.
func (s Surfaces) anchorPlane(surf Surface) (axis int, coord, sign float32, ok bool) {
	switch surf {
	case SurfaceBackWall:
		return 2, s.BackZ, 1, true
	case SurfaceFrontWall:
		return 2, s.FrontZ, -1, true
	case SurfaceLeftWall:
		return 0, s.LeftX, 1, true
	case SurfaceRightWall:
		return 0, s.RightX, -1, true
	}
	return 0, 0, 0, false
}

// Placement is the authoritative result of fitting one fixture: the final
// scale, position, and yaw handed to the scene, plus the post-transform
// bounding size reported to the caller.
type Placement struct {
	Scale    rl.Vector3
	Position rl.Vector3
	Yaw      float32
	Size     rl.Vector3
}

// Matrix returns the full placement transform: scale, then yaw about the
// vertical axis, then translation.
func (p Placement) Matrix() rl.Matrix {
	return trs(p.Scale, p.Yaw, p.Position)
}

func trs(scale rl.Vector3, yaw float32, pos rl.Vector3) rl.Matrix {
	m := rl.MatrixScale(scale.X, scale.Y, scale.Z)
	m = rl.MatrixMultiply(m, rl.MatrixRotateY(yaw))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(pos.X, pos.Y, pos.Z))
}

// Resolve runs the placement sequence for a model against the room surfaces:
// scale, re-bound, floor contact and horizontal centering, yaw, re-bound,
// anchor offset. Every step reads bounds recomputed after the previous
// transform; reusing bounds across a transform is a correctness bug, not an
// optimization to skip.
func Resolve(m *assets.Model, req Request, room Surfaces) (Placement, error) {
	if err := req.Validate(); err != nil {
		return Placement{}, err
	}

	native := NativeBounds(m)
	scale, err := ScaleFor(native, req)
	if err != nil {
		return Placement{}, err
	}

	// Floor contact and centering come from bounds taken under scale AND
	// yaw: the transform rotates about the model's native origin before
	// translating, and assets routinely carry off-origin pivots, so
	// pre-rotation midpoints would leave a yawed model off-center. Yaw is
	// about the vertical axis, so the floor offset is unaffected by it.
	rotated := BoundsUnder(m, trs(scale, req.Yaw, rl.Vector3{}))
	center := rotated.Center()
	pos := rl.NewVector3(-center.X, room.FloorY-rotated.Min.Y, -center.Z)

	// Yaw can also swap which extent faces the anchor surface, so the
	// anchor offset reads fresh bounds under the full transform.
	placed := BoundsUnder(m, trs(scale, req.Yaw, pos))
	if axis, coord, sign, ok := room.anchorPlane(req.Anchor.Surface); ok {
		want := coord + sign*req.Anchor.Clearance
		if axis == 0 {
			have := placed.Max.X
			if sign > 0 {
				have = placed.Min.X
			}
			pos.X += want - have
		} else {
			have := placed.Max.Z
			if sign > 0 {
				have = placed.Min.Z
			}
			pos.Z += want - have
		}
	}

	size := placed.Size()
	// A degenerate native extent was scaled as unit extent; report it the
	// same way so every final dimension stays strictly positive.
	if size.X <= 0 {
		size.X = scale.X * unitExtent
	}
	if size.Y <= 0 {
		size.Y = scale.Y * unitExtent
	}
	if size.Z <= 0 {
		size.Z = scale.Z * unitExtent
	}

	p := Placement{Scale: scale, Position: pos, Yaw: req.Yaw, Size: size}
	if err := p.check(); err != nil {
		return Placement{}, err
	}
	return p, nil
}

// check guards the result invariants: positive finite size, finite position.
func (p Placement) check() error {
	for _, c := range []float32{p.Size.X, p.Size.Y, p.Size.Z} {
		if c <= 0 || math32.IsNaN(c) || math32.IsInf(c, 0) {
			return fmt.Errorf("final size (%g, %g, %g) is not strictly positive and finite",
				p.Size.X, p.Size.Y, p.Size.Z)
		}
	}
	for _, c := range []float32{p.Position.X, p.Position.Y, p.Position.Z} {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return fmt.Errorf("final position (%g, %g, %g) is not finite",
				p.Position.X, p.Position.Y, p.Position.Z)
		}
	}
	return nil
}
