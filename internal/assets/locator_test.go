package assets

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLoader fails the identifiers in fail and succeeds on everything else,
// recording every attempt in order.
type fakeLoader struct {
	mu    sync.Mutex
	fail  map[string]error
	calls []string
}

func (f *fakeLoader) Load(ctx context.Context, id string) (*Model, error) {
	f.mu.Lock()
	f.calls = append(f.calls, id)
	f.mu.Unlock()
	if err, ok := f.fail[id]; ok {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	root := NewNode(id)
	root.Points = BoxPoints(rl.NewBoundingBox(
		rl.NewVector3(0, 0, 0), rl.NewVector3(1, 1, 1)))
	return &Model{Source: id, Root: root}, nil
}

func TestLocateFirstSuccessShortCircuits(t *testing.T) {
	loader := &fakeLoader{fail: map[string]error{"a.glb": ErrNotFound}}
	m, err := Locate(context.Background(), loader, []string{"a.glb", "b.glb", "c.glb"})
	require.NoError(t, err)
	assert.Equal(t, "b.glb", m.Source)
	assert.Equal(t, []string{"a.glb", "b.glb"}, loader.calls)
}

func TestLocateExhaustion(t *testing.T) {
	loader := &fakeLoader{fail: map[string]error{
		"a.glb": ErrNotFound,
		"b.glb": ErrDecode,
	}}
	_, err := Locate(context.Background(), loader, []string{"a.glb", "b.glb"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	// The joined error keeps the per-candidate classes for the build log.
	assert.ErrorIs(t, err, ErrDecode)
	assert.Equal(t, []string{"a.glb", "b.glb"}, loader.calls)
}

func TestLocateEmptyCandidates(t *testing.T) {
	loader := &fakeLoader{}
	_, err := Locate(context.Background(), loader, nil)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, loader.calls)
}

func TestLocateNoDeduplication(t *testing.T) {
	// Case-variant spellings are independent candidates; both get attempted.
	loader := &fakeLoader{fail: map[string]error{
		"Vanity.glb": ErrNotFound,
		"vanity.glb": ErrNotFound,
	}}
	_, err := Locate(context.Background(), loader, []string{"Vanity.glb", "vanity.glb"})
	require.Error(t, err)
	assert.Equal(t, []string{"Vanity.glb", "vanity.glb"}, loader.calls)
}

func TestLocateNoRetry(t *testing.T) {
	loader := &fakeLoader{fail: map[string]error{"a.glb": ErrDecode}}
	_, err := Locate(context.Background(), loader, []string{"a.glb"})
	require.Error(t, err)
	assert.Equal(t, []string{"a.glb"}, loader.calls)
}

func TestLocateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	loader := &fakeLoader{}
	_, err := Locate(ctx, loader, []string{"a.glb"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, loader.calls)
}

func TestErrorClassesFolded(t *testing.T) {
	// NotFound and Decode both mean "candidate unusable"; neither is a hard
	// failure and both route the caller to the next candidate or fallback.
	assert.False(t, errors.Is(ErrNotFound, ErrDecode))
	loader := &fakeLoader{fail: map[string]error{"bad.glb": ErrDecode}}
	m, err := Locate(context.Background(), loader, []string{"bad.glb", "good.glb"})
	require.NoError(t, err)
	assert.Equal(t, "good.glb", m.Source)
}
