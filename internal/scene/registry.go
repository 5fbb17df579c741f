package scene

import (
	"sync"

	"github.com/izgitnew/bathroom-remodel/internal/assets"
	"github.com/izgitnew/bathroom-remodel/internal/fitting"
)

// Fixture is one completed furnishing: the placement plus the model to draw.
// Model is a placeholder synthesis when Placeholder is true.
type Fixture struct {
	Name        string
	Placement   fitting.Placement
	Model       *assets.Model
	Placeholder bool
}

// Registry is the shared scene graph for fitted fixtures. Pipelines complete
// in any order and each appends exactly one fixture, so insertions never
// conflict; the mutex only makes the append and the snapshot copy atomic.
// A partially filled registry is a valid state: the scene is eventually,
// not atomically, consistent.
type Registry struct {
	mu       sync.Mutex
	fixtures []Fixture
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends one fixture.
func (r *Registry) Add(f Fixture) {
	r.mu.Lock()
	r.fixtures = append(r.fixtures, f)
	r.mu.Unlock()
}

// Snapshot returns a copy of the current fixtures, safe to iterate while
// pipelines keep completing.
func (r *Registry) Snapshot() []Fixture {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Fixture, len(r.fixtures))
	copy(out, r.fixtures)
	return out
}

// Len returns the number of completed fixtures.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.fixtures)
}
