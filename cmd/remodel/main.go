package main

import (
	"context"
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/izgitnew/bathroom-remodel/internal/assets"
	"github.com/izgitnew/bathroom-remodel/internal/catalog"
	"github.com/izgitnew/bathroom-remodel/internal/debug"
	"github.com/izgitnew/bathroom-remodel/internal/fixture"
	"github.com/izgitnew/bathroom-remodel/internal/graphics"
	"github.com/izgitnew/bathroom-remodel/internal/logger"
	"github.com/izgitnew/bathroom-remodel/internal/prefs"
	"github.com/izgitnew/bathroom-remodel/internal/room"
	"github.com/izgitnew/bathroom-remodel/internal/scene"
)

func main() {
	p, _ := prefs.Load()
	log := logger.New()

	// Plan validation fails loudly before anything is built: a bad fixture
	// declaration is an authoring error, not something to placeholder over.
	fixtures, err := catalog.Load(p.PlanPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	reg := scene.NewRegistry()
	builder := &fixture.Builder{
		Loader:   &assets.FileLoader{Dir: p.AssetDir},
		Log:      log,
		Room:     room.Surfaces(),
		Registry: reg,
		Timeout:  time.Duration(p.LoadTimeoutSeconds) * time.Second,
	}

	scn := scene.New(reg)
	scn.GridVisible = p.GridVisible
	dbg := debug.New(reg, len(fixtures))
	dbg.ShowFPS = p.ShowFPS

	// Pipelines start once the GL context exists; the room shell draws
	// immediately and fixtures pop in as their pipelines complete.
	start := func() {
		ctx := context.Background()
		for _, f := range fixtures {
			builder.Install(ctx, f.Name, f.Request)
		}
	}
	// G toggles the grid, F the FPS overlay; both persist across runs.
	update := func() {
		scn.Update()
		changed := false
		if rl.IsKeyPressed(rl.KeyG) {
			p.GridVisible = !p.GridVisible
			scn.GridVisible = p.GridVisible
			changed = true
		}
		if rl.IsKeyPressed(rl.KeyF) {
			p.ShowFPS = !p.ShowFPS
			dbg.ShowFPS = p.ShowFPS
			changed = true
		}
		if changed {
			if err := prefs.Save(p); err != nil {
				log.Log("prefs: " + err.Error())
			}
		}
	}
	draw := func() {
		scn.Draw()
		dbg.Draw()
	}
	graphics.Run(start, update, draw)
}
