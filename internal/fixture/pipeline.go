// Package fixture runs the per-fixture fitting pipeline: locate, analyze,
// scale, place, register. Each fixture is an independent unit of work; the
// room shell never waits on it.
package fixture

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/izgitnew/bathroom-remodel/internal/assets"
	"github.com/izgitnew/bathroom-remodel/internal/fitting"
	"github.com/izgitnew/bathroom-remodel/internal/logger"
	"github.com/izgitnew/bathroom-remodel/internal/scene"
)

// DefaultTimeout bounds the locate step when the builder has none configured.
// Expiry routes to the placeholder, so no fixture slot stays empty forever.
const DefaultTimeout = 10 * time.Second

// Builder installs fixtures into a scene registry. The registry handle is
// explicit so insertions are auditable calls, not mutations of ambient state.
type Builder struct {
	Loader   assets.Loader
	Log      *logger.Logger
	Room     fitting.Surfaces
	Registry *scene.Registry
	Timeout  time.Duration

	wg sync.WaitGroup
}

// Install launches the pipeline for one fixture in its own goroutine. Steps
// within the pipeline are strictly sequential; only the locate step blocks.
// Completion order across fixtures is unspecified.
func (b *Builder) Install(ctx context.Context, name string, req fitting.Request) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.install(ctx, name, req)
	}()
}

// Wait blocks until every installed pipeline has completed. For tests and
// shutdown; the render loop never waits.
func (b *Builder) Wait() {
	b.wg.Wait()
}

func (b *Builder) install(ctx context.Context, name string, req fitting.Request) {
	timeout := b.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	lctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	model, err := assets.Locate(lctx, b.Loader, req.Candidates)
	placeholder := false
	if err != nil {
		// Exhaustion, decode failures, and deadline expiry all land here:
		// the slot still gets filled, just not with the real asset.
		b.logf("fixture %s: no candidate loaded (%v); placing placeholder", name, err)
		model = fitting.Placeholder(req)
		placeholder = true
	}

	placement, err := fitting.Resolve(model, req, b.Room)
	if err != nil {
		b.logf("fixture %s: placement failed: %v", name, err)
		return
	}

	b.Registry.Add(scene.Fixture{
		Name:        name,
		Placement:   placement,
		Model:       model,
		Placeholder: placeholder,
	})
	b.logf("fixture %s: %s placed, size %.1f x %.1f x %.1f at (%.1f, %.1f, %.1f)",
		name, model.Source,
		placement.Size.X, placement.Size.Y, placement.Size.Z,
		placement.Position.X, placement.Position.Y, placement.Position.Z)
}

func (b *Builder) logf(format string, args ...any) {
	if b.Log != nil {
		b.Log.Log(fmt.Sprintf(format, args...))
	}
}
