package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurfacesMatchDimensions(t *testing.T) {
	s := Surfaces()
	assert.Equal(t, FloorY, s.FloorY)
	assert.Equal(t, -Width/2, s.LeftX)
	assert.Equal(t, Width/2, s.RightX)
	assert.Equal(t, -Depth/2, s.BackZ)
	assert.Equal(t, Depth/2, s.FrontZ)
	assert.Less(t, s.LeftX, s.RightX)
	assert.Less(t, s.BackZ, s.FrontZ)
}

func TestSimpleFixturesInsideRoom(t *testing.T) {
	for _, f := range SimpleFixtures() {
		assert.GreaterOrEqual(t, f.Position.Y, FloorY, f.Prim)
		assert.LessOrEqual(t, f.Position.Y, Height, f.Prim)
		assert.GreaterOrEqual(t, f.Position.X, -Width/2, f.Prim)
		assert.LessOrEqual(t, f.Position.X, Width/2, f.Prim)
	}
}
