package fixture

import (
	"context"
	"fmt"
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izgitnew/bathroom-remodel/internal/assets"
	"github.com/izgitnew/bathroom-remodel/internal/fitting"
	"github.com/izgitnew/bathroom-remodel/internal/room"
	"github.com/izgitnew/bathroom-remodel/internal/scene"
)

// stubLoader serves fixed-size box models, fails identifiers in fail, and
// optionally blocks until the context expires.
type stubLoader struct {
	fail  map[string]error
	block bool
}

func (s *stubLoader) Load(ctx context.Context, id string) (*assets.Model, error) {
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err, ok := s.fail[id]; ok {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	root := assets.NewNode(id)
	root.Points = assets.BoxPoints(rl.NewBoundingBox(
		rl.NewVector3(0, 0, 0), rl.NewVector3(2, 4, 1)))
	return &assets.Model{Source: id, Root: root}, nil
}

func testRequest(candidates ...string) fitting.Request {
	return fitting.Request{
		Candidates: candidates,
		Footprint:  fitting.Footprint{Width: 24, Height: 34, Depth: 22.5},
		Mode:       fitting.UniformByHeight,
		Anchor:     fitting.AnchorSpec{Surface: fitting.SurfaceBackWall, Clearance: 0.5},
	}
}

func newTestBuilder(loader assets.Loader) (*Builder, *scene.Registry) {
	reg := scene.NewRegistry()
	return &Builder{
		Loader:   loader,
		Room:     room.Surfaces(),
		Registry: reg,
		Timeout:  time.Second,
	}, reg
}

func TestInstallRegistersFixture(t *testing.T) {
	b, reg := newTestBuilder(&stubLoader{})
	b.Install(context.Background(), "vanity", testRequest("vanity.glb"))
	b.Wait()

	fixtures := reg.Snapshot()
	require.Len(t, fixtures, 1)
	f := fixtures[0]
	assert.Equal(t, "vanity", f.Name)
	assert.False(t, f.Placeholder)
	assert.Equal(t, "vanity.glb", f.Model.Source)
	assert.Equal(t, rl.NewVector3(17, 34, 8.5), f.Placement.Size)
}

func TestInstallUsesSecondCandidate(t *testing.T) {
	b, reg := newTestBuilder(&stubLoader{fail: map[string]error{"a.glb": assets.ErrNotFound}})
	b.Install(context.Background(), "vanity", testRequest("a.glb", "b.glb"))
	b.Wait()

	fixtures := reg.Snapshot()
	require.Len(t, fixtures, 1)
	assert.Equal(t, "b.glb", fixtures[0].Model.Source)
	assert.False(t, fixtures[0].Placeholder)
}

func TestExhaustionPlacesExactlyOnePlaceholder(t *testing.T) {
	b, reg := newTestBuilder(&stubLoader{fail: map[string]error{
		"a.glb": assets.ErrNotFound,
		"b.glb": assets.ErrDecode,
	}})
	b.Install(context.Background(), "mirror", testRequest("a.glb", "b.glb"))
	b.Wait()

	fixtures := reg.Snapshot()
	require.Len(t, fixtures, 1)
	f := fixtures[0]
	assert.True(t, f.Placeholder)
	assert.Equal(t, fitting.PlaceholderSource, f.Model.Source)
	// Placeholder native size equals the footprint, so scaling is a no-op.
	assert.Equal(t, rl.NewVector3(1, 1, 1), f.Placement.Scale)
	assert.Equal(t, rl.NewVector3(24, 34, 22.5), f.Placement.Size)
}

func TestLoadTimeoutFallsBack(t *testing.T) {
	b, reg := newTestBuilder(&stubLoader{block: true})
	b.Timeout = 50 * time.Millisecond
	b.Install(context.Background(), "bathtub", testRequest("tub.glb"))
	b.Wait()

	fixtures := reg.Snapshot()
	require.Len(t, fixtures, 1)
	assert.True(t, fixtures[0].Placeholder)
}

func TestConcurrentInstalls(t *testing.T) {
	b, reg := newTestBuilder(&stubLoader{fail: map[string]error{
		"missing-2.glb": assets.ErrNotFound,
		"missing-5.glb": assets.ErrDecode,
	}})
	ctx := context.Background()
	const n = 8
	for i := 0; i < n; i++ {
		b.Install(ctx, fmt.Sprintf("fixture-%d", i), testRequest(fmt.Sprintf("missing-%d.glb", i)))
	}
	b.Wait()

	fixtures := reg.Snapshot()
	require.Len(t, fixtures, n)
	seen := map[string]int{}
	placeholders := 0
	for _, f := range fixtures {
		seen[f.Name]++
		if f.Placeholder {
			placeholders++
		}
	}
	assert.Len(t, seen, n)
	for name, count := range seen {
		assert.Equal(t, 1, count, name)
	}
	assert.Equal(t, 2, placeholders)
}

func TestPipelineIdempotent(t *testing.T) {
	// Same request, stateless loader: bit-identical placements.
	run := func() fitting.Placement {
		b, reg := newTestBuilder(&stubLoader{})
		b.Install(context.Background(), "vanity", testRequest("vanity.glb"))
		b.Wait()
		fixtures := reg.Snapshot()
		require.Len(t, fixtures, 1)
		return fixtures[0].Placement
	}
	assert.Equal(t, run(), run())
}
