package assets

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is one element of a loaded model hierarchy: a local transform, optional
// geometry sample points, and child nodes. Bounding analysis walks the whole
// tree, so group nodes with no points of their own are fine.
type Node struct {
	Name     string
	Local    rl.Matrix
	Points   []rl.Vector3
	Children []*Node
}

// NewNode returns a node with the given name and an identity local transform.
func NewNode(name string) *Node {
	return &Node{Name: name, Local: rl.MatrixIdentity()}
}

// Model is one loaded (or synthesized) asset: the node tree used for bounding
// analysis plus, when it came from disk, the raylib model used for drawing.
// Placeholders have no drawable.
type Model struct {
	Source      string
	Root        *Node
	Drawable    rl.Model
	HasDrawable bool
}

// BoxPoints returns the eight corners of the given bounding box. Corners are
// enough geometry for fitting: any affine transform of the box is bounded by
// the transformed corners.
func BoxPoints(box rl.BoundingBox) []rl.Vector3 {
	return []rl.Vector3{
		{X: box.Min.X, Y: box.Min.Y, Z: box.Min.Z},
		{X: box.Max.X, Y: box.Min.Y, Z: box.Min.Z},
		{X: box.Min.X, Y: box.Max.Y, Z: box.Min.Z},
		{X: box.Max.X, Y: box.Max.Y, Z: box.Min.Z},
		{X: box.Min.X, Y: box.Min.Y, Z: box.Max.Z},
		{X: box.Max.X, Y: box.Min.Y, Z: box.Max.Z},
		{X: box.Min.X, Y: box.Max.Y, Z: box.Max.Z},
		{X: box.Max.X, Y: box.Max.Y, Z: box.Max.Z},
	}
}
