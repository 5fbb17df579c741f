// Package primitives keeps a lazy cache of primitive meshes and a simple lit
// material, used for the room shell, simple fixtures, and placeholder boxes.
package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// cached holds the mesh and material for one primitive type, created on first
// draw so GPU resources are allocated after the window/GL context exists.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// Registry maps primitive type names to mesh+material.
type Registry struct {
	cache    map[string]cached
	viewPos  [3]float32
	lightDir [3]float32
}

// NewRegistry returns an empty registry; meshes are created on first use.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[string]cached),
		lightDir: [3]float32{0.4, 1, 0.6},
	}
}

// SetView sets camera position and direction-to-light for this frame. Call
// once per frame before drawing so the lit shader shades correctly.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

// defaultCylinderSlices controls cylinder mesh resolution.
const defaultCylinderSlices = 16

// ensure creates the mesh and material for a primitive type if not cached.
// Unknown types are ignored. Meshes are unit-sized and centered at the origin
// (the raylib cylinder has its base at Y=0; Draw compensates).
func (r *Registry) ensure(key string) {
	if _, ok := r.cache[key]; ok {
		return
	}
	var mesh rl.Mesh
	switch key {
	case "cube":
		mesh = rl.GenMeshCube(1, 1, 1)
	case "plane":
		mesh = rl.GenMeshPlane(1, 1, 1, 1)
	case "cylinder":
		mesh = rl.GenMeshCylinder(0.5, 1, defaultCylinderSlices)
	default:
		return
	}
	mtl := rl.LoadMaterialDefault()
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		mtl.Shader = shader
	}
	r.cache[key] = cached{mesh: mesh, mtl: mtl}
}

// Draw draws one instance of the given type at position with scale, yaw
// (radians about Y), and albedo color. Must be called between BeginMode3D and
// EndMode3D, after SetView for the frame. Unknown types are skipped.
func (r *Registry) Draw(primType string, position, scale rl.Vector3, yaw float32, color rl.Color) {
	r.ensure(primType)
	c, ok := r.cache[primType]
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = color
	}
	r.setLitShaderUniforms(c.mtl.Shader)

	sx, sy, sz := scale.X, scale.Y, scale.Z
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	transform := rl.MatrixScale(sx, sy, sz)
	if primType == "cylinder" {
		// Raylib cylinder: base Y=0, top Y=height. Center it first.
		transform = rl.MatrixMultiply(rl.MatrixTranslate(0, -0.5, 0), transform)
	}
	if yaw != 0 {
		transform = rl.MatrixMultiply(transform, rl.MatrixRotateY(yaw))
	}
	transform = rl.MatrixMultiply(transform, rl.MatrixTranslate(position.X, position.Y, position.Z))
	rl.DrawMesh(c.mesh, c.mtl, transform)
}
