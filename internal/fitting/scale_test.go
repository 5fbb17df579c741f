package fitting

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformByHeight(t *testing.T) {
	native := NativeBounds(boxModel(0, 0, 0, 2, 4, 1))
	req := Request{
		Candidates: []string{"x.glb"},
		Footprint:  Footprint{Width: 24, Height: 34, Depth: 22.5},
		Mode:       UniformByHeight,
	}
	s, err := ScaleFor(native, req)
	require.NoError(t, err)
	assert.Equal(t, rl.NewVector3(8.5, 8.5, 8.5), s)
}

func TestExactPerAxis(t *testing.T) {
	native := NativeBounds(boxModel(0, 0, 0, 2, 4, 1))
	req := Request{
		Candidates: []string{"x.glb"},
		Footprint:  Footprint{Width: 24, Height: 34, Depth: 22.5},
		Mode:       ExactPerAxis,
		Remap:      IdentityRemap(),
	}
	s, err := ScaleFor(native, req)
	require.NoError(t, err)
	assert.Equal(t, rl.NewVector3(12, 8.5, 22.5), s)
}

func TestExactPerAxisRequiresRemap(t *testing.T) {
	native := NativeBounds(boxModel(0, 0, 0, 2, 4, 1))
	req := Request{
		Candidates: []string{"x.glb"},
		Footprint:  Footprint{Width: 24, Height: 34, Depth: 22.5},
		Mode:       ExactPerAxis,
	}
	_, err := ScaleFor(native, req)
	assert.Error(t, err)
}

func TestExactPerAxisWithRemap(t *testing.T) {
	// Asset authored depth-on-X, width-on-Z.
	native := NativeBounds(boxModel(0, 0, 0, 5, 4, 2))
	req := Request{
		Candidates: []string{"x.glb"},
		Footprint:  Footprint{Width: 24, Height: 34, Depth: 22.5},
		Mode:       ExactPerAxis,
		Remap:      &AxisRemap{Version: AxisRemapVersion, Width: AxisZ, Height: AxisY, Depth: AxisX},
	}
	s, err := ScaleFor(native, req)
	require.NoError(t, err)
	assert.Equal(t, float32(22.5/5), s.X)
	assert.Equal(t, float32(8.5), s.Y)
	assert.Equal(t, float32(12), s.Z)
}

func TestUniformDefaultsToVerticalReference(t *testing.T) {
	// No remap declared: uniform modes reference the native vertical axis.
	native := NativeBounds(boxModel(0, 0, 0, 2, 4, 1))
	req := Request{
		Candidates: []string{"x.glb"},
		Footprint:  Footprint{Width: 8, Height: 8, Depth: 8},
		Mode:       UniformByWidth,
	}
	s, err := ScaleFor(native, req)
	require.NoError(t, err)
	assert.Equal(t, rl.NewVector3(2, 2, 2), s)
}

func TestUniformWithRemapReference(t *testing.T) {
	native := NativeBounds(boxModel(0, 0, 0, 2, 4, 8))
	req := Request{
		Candidates: []string{"x.glb"},
		Footprint:  Footprint{Width: 16, Height: 1, Depth: 1},
		Mode:       UniformByWidth,
		Remap:      &AxisRemap{Version: AxisRemapVersion, Width: AxisZ, Height: AxisY, Depth: AxisX},
	}
	s, err := ScaleFor(native, req)
	require.NoError(t, err)
	assert.Equal(t, rl.NewVector3(2, 2, 2), s)
}

func TestDegenerateExtentGuard(t *testing.T) {
	// Zero height: the denominator substitutes unit extent, so the scale
	// stays strictly positive and finite.
	native := NativeBounds(boxModel(0, 0, 0, 2, 0, 1))
	req := Request{
		Candidates: []string{"x.glb"},
		Footprint:  Footprint{Width: 24, Height: 34, Depth: 22.5},
		Mode:       UniformByHeight,
	}
	s, err := ScaleFor(native, req)
	require.NoError(t, err)
	assert.Equal(t, rl.NewVector3(34, 34, 34), s)
}

func TestUnknownModeRejected(t *testing.T) {
	native := NativeBounds(boxModel(0, 0, 0, 2, 4, 1))
	_, err := ScaleFor(native, Request{Mode: ScaleMode(99)})
	assert.Error(t, err)
}

func TestAxisRemapValidate(t *testing.T) {
	ok := IdentityRemap()
	assert.NoError(t, ok.Validate())

	bad := &AxisRemap{Version: AxisRemapVersion, Width: AxisX, Height: AxisX, Depth: AxisZ}
	assert.Error(t, bad.Validate())

	stale := &AxisRemap{Version: 2, Width: AxisX, Height: AxisY, Depth: AxisZ}
	assert.Error(t, stale.Validate())
}
