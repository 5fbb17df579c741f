package assets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sentinel load errors. Both classes are recovered the same way (advance to
// the next candidate, fall back on exhaustion); they are kept distinct so the
// build log can tell a missing file from a corrupt one.
var (
	// ErrNotFound means a candidate identifier does not resolve to a loadable asset.
	ErrNotFound = errors.New("asset not found")
	// ErrDecode means a candidate resolved but its payload is malformed.
	ErrDecode = errors.New("asset malformed")
)

// Loader loads one model per call. Implementations must be stateless with
// respect to identifiers: loading the same identifier twice yields the same
// result.
type Loader interface {
	Load(ctx context.Context, identifier string) (*Model, error)
}

// FileLoader loads models from disk with raylib (glb, gltf, obj, ...).
// Dir, when set, is prepended to every identifier. Loading requires the
// window/GL context to exist, since raylib uploads meshes to the GPU.
type FileLoader struct {
	Dir string
}

// Load resolves the identifier against Dir and loads it. A missing file is
// ErrNotFound; a file raylib cannot parse into at least one mesh is ErrDecode.
// The node tree carries each mesh's bounding-box corners as geometry points,
// with the model's own transform as the root local matrix.
func (l *FileLoader) Load(ctx context.Context, identifier string) (*Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := identifier
	if l.Dir != "" {
		path = filepath.Join(l.Dir, identifier)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%s: %w", identifier, ErrNotFound)
	}
	model := rl.LoadModel(path)
	if !rl.IsModelValid(model) || model.MeshCount == 0 {
		return nil, fmt.Errorf("%s: %w", identifier, ErrDecode)
	}
	root := NewNode(identifier)
	root.Local = model.Transform
	for i, mesh := range model.GetMeshes() {
		child := NewNode(fmt.Sprintf("mesh-%d", i))
		child.Points = BoxPoints(rl.GetMeshBoundingBox(mesh))
		root.Children = append(root.Children, child)
	}
	return &Model{Source: identifier, Root: root, Drawable: model, HasDrawable: true}, nil
}
