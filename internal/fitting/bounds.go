package fitting

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/izgitnew/bathroom-remodel/internal/assets"
)

// Bounds is the axis-aligned bounding box of a model's geometry in one
// coordinate space. It is derived, never cached: any transform invalidates a
// previously computed Bounds, so callers recompute after every step.
type Bounds struct {
	Min rl.Vector3
	Max rl.Vector3
}

func emptyBounds() Bounds {
	inf := math32.Inf(1)
	return Bounds{
		Min: rl.NewVector3(inf, inf, inf),
		Max: rl.NewVector3(-inf, -inf, -inf),
	}
}

// IsEmpty reports whether no point has been accumulated (max < min on any axis).
func (b Bounds) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

func (b *Bounds) expand(p rl.Vector3) {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Min.Z = min(b.Min.Z, p.Z)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
	b.Max.Z = max(b.Max.Z, p.Z)
}

// Size returns the extent on each axis.
func (b Bounds) Size() rl.Vector3 {
	return rl.NewVector3(b.Max.X-b.Min.X, b.Max.Y-b.Min.Y, b.Max.Z-b.Min.Z)
}

// Center returns the midpoint on each axis.
func (b Bounds) Center() rl.Vector3 {
	return rl.NewVector3((b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2, (b.Min.Z+b.Max.Z)/2)
}

// BoundsUnder computes the tight AABB of every geometry point in the model
// tree under the given transform, composing each node's local matrix down the
// tree. It must be invoked fresh after every transform: scaling and rotation
// change which native extents map to which room axes.
func BoundsUnder(m *assets.Model, transform rl.Matrix) Bounds {
	b := emptyBounds()
	if m != nil && m.Root != nil {
		boundNode(m.Root, transform, &b)
	}
	if b.IsEmpty() {
		return Bounds{}
	}
	return b
}

// NativeBounds is BoundsUnder with the identity transform: the model's box in
// its own coordinate space.
func NativeBounds(m *assets.Model) Bounds {
	return BoundsUnder(m, rl.MatrixIdentity())
}

func boundNode(n *assets.Node, parent rl.Matrix, b *Bounds) {
	world := rl.MatrixMultiply(n.Local, parent)
	for _, p := range n.Points {
		b.expand(rl.Vector3Transform(p, world))
	}
	for _, c := range n.Children {
		boundNode(c, world, b)
	}
}
